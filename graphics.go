package quill

// Vertex layout of the stream produced by Replay: x, y, r, g, b, a as float32.
const (
	VertexFloats      = 6
	VertexStrideBytes = VertexFloats * 4
	ColorOffsetBytes  = 2 * 4
)

// defaultLineWidth is the stroke width a RenderState starts every replay with.
const defaultLineWidth = 2

// hairlineHalfWidth is used when the stroke width is zero so that lines stay
// visible.
const hairlineHalfWidth = 0.5

// CommandKind identifies a drawing command.
type CommandKind uint8

const (
	CmdMove   CommandKind = iota // move the pen without drawing
	CmdLine                      // stroke a segment from the pen to (X, Y)
	CmdRect                      // fill an axis-aligned rectangle
	CmdCircle                    // fill a circle
	CmdClose                     // fill the polygon traced by the preceding move/line run
	CmdFill                      // set the fill color
	CmdStroke                    // set the stroke color
	CmdWidth                     // set the stroke width
	cmdKindCount
)

var commandKindNames = [cmdKindCount]string{
	CmdMove:   "move",
	CmdLine:   "line",
	CmdRect:   "rect",
	CmdCircle: "circle",
	CmdClose:  "close",
	CmdFill:   "fill",
	CmdStroke: "stroke",
	CmdWidth:  "width",
}

func (k CommandKind) String() string {
	if k < cmdKindCount {
		return commandKindNames[k]
	}
	return "unknown"
}

// hasPoint reports whether a command of this kind carries an (X, Y) pen target.
func (k CommandKind) hasPoint() bool {
	switch k {
	case CmdMove, CmdLine, CmdRect, CmdCircle:
		return true
	}
	return false
}

// Command is a single recorded drawing instruction. Which fields are
// meaningful depends on Kind.
type Command struct {
	Kind   CommandKind
	X, Y   float64
	W, H   float64 // rect size
	Radius float64 // circle radius
	Width  float64 // stroke width
	Color  Color   // fill or stroke color
}

// RenderState is the mutable pen and style state carried through one replay
// of a command buffer.
type RenderState struct {
	Pen       Vec2
	Fill      Color
	Stroke    Color
	LineWidth float64
}

// Reset restores the state every replay starts from.
func (st *RenderState) Reset() {
	st.Pen = Vec2{}
	st.Fill = ColorBlack
	st.Stroke = ColorBlack
	st.LineWidth = defaultLineWidth
}

// HalfWidth returns the half stroke width used to offset line quads.
func (st *RenderState) HalfWidth() float64 {
	if st.LineWidth <= 0 {
		return hairlineHalfWidth
	}
	return st.LineWidth / 2
}

// Graphics is an append-only buffer of drawing commands. It is compiled into
// a triangle list by Replay; nothing is drawn at record time.
type Graphics struct {
	cmds  []Command
	state RenderState
	verts []float32 // high-water-mark buffer reused by Vertices
}

// NewGraphics returns an empty command buffer.
func NewGraphics() *Graphics {
	g := &Graphics{}
	g.state.Reset()
	return g
}

func (g *Graphics) push(c Command) *Graphics {
	g.cmds = append(g.cmds, c)
	return g
}

// MoveTo moves the pen to (x, y).
func (g *Graphics) MoveTo(x, y float64) *Graphics {
	return g.push(Command{Kind: CmdMove, X: x, Y: y})
}

// LineTo strokes a segment from the pen to (x, y) with the current stroke
// color and width.
func (g *Graphics) LineTo(x, y float64) *Graphics {
	return g.push(Command{Kind: CmdLine, X: x, Y: y})
}

// DrawRect fills a w by h rectangle whose top-left corner is (x, y).
func (g *Graphics) DrawRect(x, y, w, h float64) *Graphics {
	return g.push(Command{Kind: CmdRect, X: x, Y: y, W: w, H: h})
}

// DrawCircle fills a circle centered at (x, y).
func (g *Graphics) DrawCircle(x, y, radius float64) *Graphics {
	return g.push(Command{Kind: CmdCircle, X: x, Y: y, Radius: radius})
}

// BeginFill sets the color used by rect, circle and close. For a translucent
// fill pass c.WithAlpha(a); there is no separate alpha argument.
func (g *Graphics) BeginFill(c Color) *Graphics {
	return g.push(Command{Kind: CmdFill, Color: c})
}

// BeginStroke sets the color used by LineTo. Alpha comes from c, as with
// BeginFill.
func (g *Graphics) BeginStroke(c Color) *Graphics {
	return g.push(Command{Kind: CmdStroke, Color: c})
}

// SetStrokeStyle sets the stroke width. Negative widths are clamped to 0,
// which renders as a hairline.
func (g *Graphics) SetStrokeStyle(width float64) *Graphics {
	if width < 0 {
		width = 0
	}
	return g.push(Command{Kind: CmdWidth, Width: width})
}

// ClosePath fills the polygon traced by the move/line commands immediately
// preceding it.
func (g *Graphics) ClosePath() *Graphics {
	return g.push(Command{Kind: CmdClose})
}

// Clear empties the buffer and resets the render state.
func (g *Graphics) Clear() *Graphics {
	g.cmds = g.cmds[:0]
	g.state.Reset()
	return g
}

// Commands returns the recorded commands. The slice must not be modified.
func (g *Graphics) Commands() []Command {
	return g.cmds
}

// Len returns the number of recorded commands.
func (g *Graphics) Len() int {
	return len(g.cmds)
}

// State returns the render state left behind by the most recent replay.
func (g *Graphics) State() RenderState {
	return g.state
}

// Vertices compiles the buffer into the Graphics' own vertex buffer and
// returns it. The result is valid until the next call.
func (g *Graphics) Vertices() []float32 {
	g.verts = g.Replay(&g.state, g.verts[:0])
	return g.verts
}

// Replay resets st, runs every command through its brush in order and
// appends the colorized triangles to dst (VertexFloats per vertex).
func (g *Graphics) Replay(st *RenderState, dst []float32) []float32 {
	st.Reset()
	for i, cmd := range g.cmds {
		coords := brushes[cmd.Kind](st, cmd, i, g.cmds)
		if len(coords) > 0 {
			c := st.Fill
			if cmd.Kind == CmdLine {
				c = st.Stroke
			}
			dst = appendColored(dst, coords, c)
		}
		if cmd.Kind.hasPoint() {
			st.Pen = Vec2{cmd.X, cmd.Y}
		}
	}
	return dst
}

// appendColored interleaves each (x, y) pair of coords with c and appends the
// result to dst. dst grows with a high-water-mark strategy.
func appendColored(dst []float32, coords []float64, c Color) []float32 {
	n := len(coords) / 2
	need := len(dst) + n*VertexFloats
	if cap(dst) < need {
		grown := make([]float32, len(dst), need*2)
		copy(grown, dst)
		dst = grown
	}
	r, gr, b, a := float32(c.R), float32(c.G), float32(c.B), float32(c.A)
	for i := 0; i < n; i++ {
		dst = append(dst, float32(coords[2*i]), float32(coords[2*i+1]), r, gr, b, a)
	}
	return dst
}
