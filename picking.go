package quill

// MaxPickID is the largest id representable as a 24-bit pick color.
const MaxPickID = 1<<24 - 1

// EncodeID splits an id into the RGB channels of its pick color.
func EncodeID(id uint32) (r, g, b uint8) {
	return uint8(id >> 16), uint8(id >> 8), uint8(id)
}

// DecodeID reassembles an id from a pick color. Black decodes to 0.
func DecodeID(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// PointerEvent is a raw pointer sample delivered to Stage.HandlePointer.
type PointerEvent struct {
	Type      EventType
	X, Y      float64 // stage pixels
	Button    MouseButton
	Modifiers KeyModifiers
}

// NodeAt returns the pickable node drawn at stage pixel (x, y), or nil. The
// pick pass runs at most once between two calls to Update. Nodes disposed
// since the last pass resolve to nil.
func (s *Stage) NodeAt(x, y float64) *Node {
	if x < 0 || y < 0 {
		return nil
	}
	buf := s.pickBuffer()
	id := buf.At(int(x), int(y))
	if id == 0 {
		return nil
	}
	n := s.pickMap[id]
	if n == nil || n.disposed {
		return nil
	}
	return n
}

// pickBuffer returns the cached readback, running the pick pass if needed.
func (s *Stage) pickBuffer() PickBuffer {
	if !s.pickValid {
		s.renderPick()
		s.pickCache = s.backend.ReadPickBuffer()
		s.pickValid = true
	}
	return s.pickCache
}

// HandlePointer resolves the node under the pointer, synthesizes
// mouseover/mouseout when it differs from the previously entered node, and
// dispatches the event to the node and to stage-level listeners. It returns
// the resolved node (nil over the background).
//
// EventMouseLeave fires mouseout on the entered node and clears it. An
// entered node that has since been disposed is forgotten without a mouseout.
//
// Listeners must not modify the scene graph from inside the dispatch.
func (s *Stage) HandlePointer(ev PointerEvent) *Node {
	if s.entered != nil && s.entered.disposed {
		s.entered = nil
	}
	if ev.Type == EventMouseLeave {
		if s.entered != nil {
			prev := s.entered
			s.entered = nil
			s.dispatch(EventMouseOut, prev, ev)
		}
		s.dispatch(EventMouseLeave, nil, ev)
		return nil
	}

	target := s.NodeAt(ev.X, ev.Y)

	if target != s.entered {
		prev := s.entered
		s.entered = target
		if prev != nil {
			s.dispatch(EventMouseOut, prev, ev)
		}
		if target != nil {
			s.dispatch(EventMouseOver, target, ev)
		}
	}

	s.dispatch(ev.Type, target, ev)
	return target
}

// Entered returns the node the pointer is currently over, or nil.
func (s *Stage) Entered() *Node {
	return s.entered
}

// dispatch fires t at target's listeners, then at the stage's, then forwards
// it to the event sink.
func (s *Stage) dispatch(t EventType, target *Node, p PointerEvent) {
	ev := Event{
		Type:      t,
		Target:    target,
		StageX:    p.X,
		StageY:    p.Y,
		Button:    p.Button,
		Modifiers: p.Modifiers,
	}
	if target != nil {
		if lx, ly, err := target.GlobalToLocal(p.X, p.Y); err == nil {
			ev.LocalX, ev.LocalY = lx, ly
		}
		target.Fire(ev)
	}
	s.Fire(ev)
	s.emitInteractionEvent(ev)
}

// --- ECS bridge ---

func (s *Stage) emitInteractionEvent(ev Event) {
	if s.sink == nil {
		return
	}
	var id uint32
	if ev.Target != nil {
		id = ev.Target.ID
	}
	s.sink.EmitEvent(InteractionEvent{
		Type:      ev.Type,
		NodeID:    id,
		StageX:    ev.StageX,
		StageY:    ev.StageY,
		LocalX:    ev.LocalX,
		LocalY:    ev.LocalY,
		Button:    ev.Button,
		Modifiers: ev.Modifiers,
	})
}
