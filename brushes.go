package quill

import "math"

// Circle tessellation: one segment per circleArcLength pixels of
// circumference, clamped to [minCircleSegments, maxCircleSegments].
const (
	circleArcLength   = 6
	minCircleSegments = 8
	maxCircleSegments = 60
)

// brushFunc turns one command into triangle coordinates (x, y pairs, three
// pairs per triangle). It may update st. index and cmds give access to
// earlier commands for brushes that need context.
type brushFunc func(st *RenderState, cmd Command, index int, cmds []Command) []float64

// brushes is indexed by CommandKind. Every kind has an entry.
var brushes = [cmdKindCount]brushFunc{
	CmdMove:   brushMove,
	CmdLine:   brushLine,
	CmdRect:   brushRect,
	CmdCircle: brushCircle,
	CmdClose:  brushClose,
	CmdFill:   brushFill,
	CmdStroke: brushStroke,
	CmdWidth:  brushWidth,
}

func brushMove(*RenderState, Command, int, []Command) []float64 { return nil }

func brushLine(st *RenderState, cmd Command, _ int, _ []Command) []float64 {
	return expandLine(st.Pen, Vec2{cmd.X, cmd.Y}, st.HalfWidth())
}

func brushRect(_ *RenderState, cmd Command, _ int, _ []Command) []float64 {
	x0, y0 := cmd.X, cmd.Y
	x1, y1 := cmd.X+cmd.W, cmd.Y+cmd.H
	return []float64{
		x0, y0, x1, y0, x1, y1,
		x0, y0, x1, y1, x0, y1,
	}
}

func brushCircle(_ *RenderState, cmd Command, _ int, _ []Command) []float64 {
	return expandCircle(Vec2{cmd.X, cmd.Y}, cmd.Radius)
}

// brushClose fills the polygon made of the contiguous run of move/line
// commands ending just before the close.
func brushClose(_ *RenderState, _ Command, index int, cmds []Command) []float64 {
	start := index
	for start > 0 {
		k := cmds[start-1].Kind
		if k != CmdMove && k != CmdLine {
			break
		}
		start--
	}
	if index-start < 3 {
		return nil
	}
	pts := make([]Vec2, 0, index-start)
	for _, c := range cmds[start:index] {
		pts = append(pts, Vec2{c.X, c.Y})
	}
	tris := Triangulate(pts)
	out := make([]float64, 0, len(tris)*2)
	for _, p := range tris {
		out = append(out, p.X, p.Y)
	}
	return out
}

func brushFill(st *RenderState, cmd Command, _ int, _ []Command) []float64 {
	st.Fill = cmd.Color
	return nil
}

func brushStroke(st *RenderState, cmd Command, _ int, _ []Command) []float64 {
	st.Stroke = cmd.Color
	return nil
}

func brushWidth(st *RenderState, cmd Command, _ int, _ []Command) []float64 {
	st.LineWidth = cmd.Width
	return nil
}

// perpendicular returns the unit normal of d scaled by halfWidth.
func perpendicular(d Vec2, halfWidth float64) Vec2 {
	l := math.Hypot(d.X, d.Y)
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: -d.Y / l * halfWidth, Y: d.X / l * halfWidth}
}

// expandLine returns the two triangles of the quad covering the segment
// start-end offset by halfWidth on each side. A zero-length segment yields a
// degenerate quad at start.
func expandLine(start, end Vec2, halfWidth float64) []float64 {
	n := perpendicular(Vec2{end.X - start.X, end.Y - start.Y}, halfWidth)
	a := Vec2{start.X + n.X, start.Y + n.Y}
	b := Vec2{start.X - n.X, start.Y - n.Y}
	c := Vec2{end.X - n.X, end.Y - n.Y}
	d := Vec2{end.X + n.X, end.Y + n.Y}
	return []float64{
		a.X, a.Y, b.X, b.Y, c.X, c.Y,
		c.X, c.Y, d.X, d.Y, a.X, a.Y,
	}
}

// circleSegments returns how many rim points a circle of radius r is
// tessellated into.
func circleSegments(r float64) int {
	n := int(math.Round(2 * math.Pi * r / circleArcLength))
	if n < minCircleSegments {
		n = minCircleSegments
	}
	if n > maxCircleSegments {
		n = maxCircleSegments
	}
	return n
}

// expandCircle fans triangles out from the first rim point. The last triangle
// closes back onto that point.
func expandCircle(center Vec2, radius float64) []float64 {
	segments := circleSegments(radius)
	sweep := 2 * math.Pi / float64(segments)
	rim := func(i int) (float64, float64) {
		a := float64(i) * sweep
		return center.X + radius*math.Cos(a), center.Y + radius*math.Sin(a)
	}
	x0, y0 := rim(0)
	out := make([]float64, 0, (segments-1)*6)
	for i := 2; i <= segments; i++ {
		x1, y1 := rim(i - 1)
		x2, y2 := rim(i)
		out = append(out, x0, y0, x1, y1, x2, y2)
	}
	return out
}
