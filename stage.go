package quill

import "time"

// EventSink is the interface for optional ECS integration.
// When set on a Stage, every dispatched pointer event is forwarded to it.
type EventSink interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries pointer event data for the ECS bridge.
type InteractionEvent struct {
	Type      EventType
	NodeID    uint32 // 0 over the background
	StageX    float64
	StageY    float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	Modifiers KeyModifiers
}

// Stage is the top-level object that owns the node tree, the id allocator,
// the backend and the picking state. It is not safe for concurrent use.
type Stage struct {
	root    *Node
	ids     *IDAllocator
	backend Backend
	program Program // last program sent to the backend

	pickMap   map[uint32]*Node
	pickCache PickBuffer
	pickValid bool
	entered   *Node

	listeners // stage-level listeners fire for every dispatched event

	sink  EventSink
	debug bool
	stats debugStats

	// Input
	pointer     pointerState
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner

	// PickDumpDir is where DumpPickBuffer writes PNG files.
	PickDumpDir   string
	pickDumpQueue []string
}

// NewStage creates a stage drawing through backend. ids may be nil, in which
// case ids start at 1 with a stride of 1.
func NewStage(backend Backend, ids *IDAllocator) *Stage {
	if backend == nil {
		panic("quill: nil backend")
	}
	if ids == nil {
		ids = NewIDAllocator(1, 1)
	}
	return &Stage{
		root:        ids.NewContainer("root"),
		ids:         ids,
		backend:     backend,
		pickMap:     make(map[uint32]*Node),
		PickDumpDir: "pickdumps",
	}
}

// Root returns the stage's root node.
func (s *Stage) Root() *Node {
	return s.root
}

// Backend returns the backend the stage draws through.
func (s *Stage) Backend() Backend {
	return s.backend
}

// NewShape creates a shape node with an id from the stage's allocator.
// The node is not attached; add it with AddChild.
func (s *Stage) NewShape(name string) *Node {
	return s.ids.NewShape(name)
}

// NewContainer creates a grouping node with an id from the stage's allocator.
func (s *Stage) NewContainer(name string) *Node {
	return s.ids.NewContainer(name)
}

// NewText creates a text node with an id from the stage's allocator.
func (s *Stage) NewText(name, content string, font *TTFFont) *Node {
	return s.ids.NewText(name, content, font)
}

// NodeByID returns the node recorded under id by the last traversal.
func (s *Stage) NodeByID(id uint32) *Node {
	return s.pickMap[id]
}

// SetEventSink sets the optional ECS bridge.
func (s *Stage) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are printed, and
// per-frame stats are logged to stderr.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Stage debug flag so that node
// operations (which lack a Stage pointer) can check it cheaply.
var globalDebug bool

// Update traverses the tree, recomputes world matrices, rebuilds the pick
// map and draws every visible node. The cached pick readback is discarded.
func (s *Stage) Update() {
	var t0 time.Time
	if s.debug {
		s.stats = debugStats{}
		t0 = time.Now()
	}

	clear(s.pickMap)
	s.pickValid = false
	s.traverse(s.root, Identity)

	if s.debug {
		s.stats.traverseTime = time.Since(t0)
		s.stats.pickNodes = len(s.pickMap)
		s.debugLog(s.stats)
	}
	s.flushPickDumps()
}

// traverse visits n and its subtree depth-first. world = local · parentWorld.
func (s *Stage) traverse(n *Node, parent Matrix) {
	if !n.Visible {
		return
	}
	world := localMatrix(n).Multiply(parent)
	n.worldMatrix = world
	s.pickMap[n.ID] = n

	switch n.Type {
	case NodeTypeShape:
		if n.Graphics != nil {
			s.drawShape(n, world)
		}
	case NodeTypeText:
		if n.Text != nil {
			s.drawText(n, world)
		}
	}

	for _, child := range n.children {
		s.traverse(child, world)
	}
}

func (s *Stage) drawShape(n *Node, world Matrix) {
	verts := n.Graphics.Vertices()
	if len(verts) == 0 {
		return
	}
	s.useProgram(ProgramVector)
	s.backend.SetTransform(world)
	s.backend.DrawTriangles(verts)
	s.stats.drawCalls++
}

// useProgram switches the backend program unless it is already active.
func (s *Stage) useProgram(p Program) {
	if s.program == p {
		return
	}
	s.program = p
	s.backend.UseProgram(p)
	s.stats.programSwitches++
}

// renderPick draws every visible, pickable node in its id color into the
// backend's pick target. Non-pickable nodes draw nothing but their children
// are still visited.
func (s *Stage) renderPick() {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.backend.BeginPick()
	s.useProgram(ProgramPick)
	s.traversePick(s.root, Identity)
	s.backend.EndPick()
	if s.debug {
		s.stats.pickTime = time.Since(t0)
	}
}

func (s *Stage) traversePick(n *Node, parent Matrix) {
	if !n.Visible {
		return
	}
	world := localMatrix(n).Multiply(parent)
	s.pickMap[n.ID] = n

	if n.Pickable {
		var verts []float32
		switch {
		case n.Type == NodeTypeShape && n.Graphics != nil:
			verts = n.Graphics.Vertices()
		case n.Type == NodeTypeText && n.Text != nil:
			verts = n.Text.solidQuad()
		}
		if len(verts) > 0 {
			s.backend.SetTransform(world)
			s.backend.SetPickID(n.ID)
			s.backend.DrawTriangles(verts)
		}
	}

	for _, child := range n.children {
		s.traversePick(child, world)
	}
}
