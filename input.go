package quill

import "github.com/hajimehoshi/ebiten/v2"

// pointerState tracks the single mouse pointer between samples.
type pointerState struct {
	inside   bool
	lastX    float64
	lastY    float64
	down     bool
	button   MouseButton
	downNode *Node
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// ProcessInput advances the test runner, then feeds one injected event or
// the polled mouse state through the pointer state machine. Call it once per
// tick from ebiten's Update.
func (s *Stage) ProcessInput() {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	mods := readModifiers()
	if s.processInjectedInput(mods) {
		return
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	w, h := s.backend.Size()
	inside := mx >= 0 && my >= 0 && mx < w && my < h

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	s.processPointer(x, y, inside, pressed, button, mods)
}

// processPointer turns one pointer sample into native events: mouseleave when
// the pointer exits the surface, mousemove when it moved, mousedown and
// mouseup on button edges, and click when press and release resolve to the
// same node.
func (s *Stage) processPointer(x, y float64, inside, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &s.pointer
	if !inside {
		if ps.inside {
			ps.inside = false
			s.HandlePointer(PointerEvent{Type: EventMouseLeave, X: x, Y: y, Modifiers: mods})
		}
		// A release outside the surface cancels the click.
		ps.down = false
		ps.downNode = nil
		return
	}

	if !ps.inside || x != ps.lastX || y != ps.lastY {
		ps.inside = true
		ps.lastX, ps.lastY = x, y
		s.HandlePointer(PointerEvent{Type: EventMouseMove, X: x, Y: y, Button: button, Modifiers: mods})
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.downNode = s.HandlePointer(PointerEvent{Type: EventMouseDown, X: x, Y: y, Button: button, Modifiers: mods})
	case !pressed && ps.down:
		up := s.HandlePointer(PointerEvent{Type: EventMouseUp, X: x, Y: y, Button: ps.button, Modifiers: mods})
		if up == ps.downNode {
			s.HandlePointer(PointerEvent{Type: EventClick, X: x, Y: y, Button: ps.button, Modifiers: mods})
		}
		ps.down = false
		ps.downNode = nil
	}
}
