package quill

import "math"

// EarAngleTolerance is how far (in radians) the summed corner angles around a
// point may deviate from 2π for the point to count as inside a triangle.
// Tuned empirically.
const EarAngleTolerance = 0.1

type vertexClass uint8

const (
	classUnclassified vertexClass = iota // reflex, or not yet examined
	classConvex
	classEar
)

type pathPoint struct {
	p     Vec2
	class vertexClass
}

// Triangulate ear-clips a simple polygon into triangles, returned as a flat
// list of vertices, three per triangle. Points are expected in clockwise
// order in screen space (Y down). Fewer than three points produce nothing.
// If no ear can be found the remaining points are emitted as a fan.
func Triangulate(points []Vec2) []Vec2 {
	if len(points) < 3 {
		return nil
	}
	pts := make([]pathPoint, len(points))
	for i, p := range points {
		pts[i] = pathPoint{p: p}
	}
	out := make([]Vec2, 0, (len(points)-2)*3)

	for len(pts) > 3 {
		classify(pts)
		ear := -1
		for i := range pts {
			if pts[i].class == classEar {
				ear = i
				break
			}
		}
		if ear < 0 {
			return appendFan(out, pts)
		}
		n := len(pts)
		prev := pts[(ear-1+n)%n].p
		next := pts[(ear+1)%n].p
		out = append(out, pts[ear].p, prev, next)
		pts = append(pts[:ear], pts[ear+1:]...)
	}
	return append(out, pts[0].p, pts[1].p, pts[2].p)
}

// classify recomputes the class of every point from scratch.
func classify(pts []pathPoint) {
	n := len(pts)
	for i := range pts {
		prev := pts[(i-1+n)%n].p
		next := pts[(i+1)%n].p
		if isConvex(pts[i].p, prev, next) {
			pts[i].class = classConvex
		} else {
			pts[i].class = classUnclassified
		}
	}
	for i := range pts {
		if pts[i].class != classConvex {
			continue
		}
		if isEar(pts, i) {
			pts[i].class = classEar
		}
	}
}

// isConvex reports whether the corner at a (between b and c) turns the
// polygon's way.
func isConvex(a, b, c Vec2) bool {
	v1 := Vec2{b.X - a.X, b.Y - a.Y}
	v2 := Vec2{a.X - c.X, a.Y - c.Y}
	return v1.X*v2.Y-v1.Y*v2.X >= 0
}

// isEar reports whether no reflex point other than the corner's neighbors
// falls inside the triangle formed by pts[i] and its neighbors.
func isEar(pts []pathPoint, i int) bool {
	n := len(pts)
	ip, in := (i-1+n)%n, (i+1)%n
	a, b, c := pts[i].p, pts[ip].p, pts[in].p
	for j := range pts {
		if j == i || j == ip || j == in || pts[j].class != classUnclassified {
			continue
		}
		if pointInTriangle(pts[j].p, a, b, c) {
			return false
		}
	}
	return true
}

// pointInTriangle sums the signed angles subtended at p by each triangle
// edge. The sum is ±2π for interior points and 0 for exterior ones.
func pointInTriangle(p, a, b, c Vec2) bool {
	sum := signedAngle(p, a, b) + signedAngle(p, b, c) + signedAngle(p, c, a)
	return math.Abs(math.Abs(sum)-2*math.Pi) < EarAngleTolerance
}

func signedAngle(p, u, v Vec2) float64 {
	ux, uy := u.X-p.X, u.Y-p.Y
	vx, vy := v.X-p.X, v.Y-p.Y
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}

func appendFan(out []Vec2, pts []pathPoint) []Vec2 {
	for i := 1; i+1 < len(pts); i++ {
		out = append(out, pts[0].p, pts[i].p, pts[i+1].p)
	}
	return out
}
