package quill

import (
	"errors"
	"math"
)

// ErrSingularTransform is returned when a matrix with a zero determinant has
// to be inverted, e.g. converting a point into a node scaled to zero.
var ErrSingularTransform = errors.New("quill: singular transform")

// Matrix is a row-major 3x3 affine matrix in row-vector convention:
//
//	| m0 m1 0 |
//	| m3 m4 0 |     x' = x*m0 + y*m3 + m6
//	| m6 m7 1 |     y' = x*m1 + y*m4 + m7
//
// Composition reads left to right: a.Multiply(b) applies a first, then b.
type Matrix [9]float64

// Identity is the identity matrix.
var Identity = Matrix{1, 0, 0, 0, 1, 0, 0, 0, 1}

// Translation returns a matrix that moves points by (tx, ty).
func Translation(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 0, 1, 0, tx, ty, 1}
}

// Scaling returns a matrix that scales points by (sx, sy).
func Scaling(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, 0, sy, 0, 0, 0, 1}
}

// Rotation returns a matrix with rotation block [cos, -sin; sin, cos].
func Rotation(radians float64) Matrix {
	sin, cos := math.Sincos(radians)
	return Matrix{cos, -sin, 0, sin, cos, 0, 0, 0, 1}
}

// Multiply returns m·o.
func (m Matrix) Multiply(o Matrix) Matrix {
	var r Matrix
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r[row*3+col] = m[row*3]*o[col] + m[row*3+1]*o[3+col] + m[row*3+2]*o[6+col]
		}
	}
	return r
}

// Invert returns the inverse of m, or ErrSingularTransform when the linear
// part has a zero determinant.
func (m Matrix) Invert() (Matrix, error) {
	det := m[0]*m[4] - m[1]*m[3]
	if det == 0 {
		return Identity, ErrSingularTransform
	}
	a := m[4] / det
	b := -m[1] / det
	c := -m[3] / det
	d := m[0] / det
	return Matrix{
		a, b, 0,
		c, d, 0,
		-(m[6]*a + m[7]*c), -(m[6]*b + m[7]*d), 1,
	}, nil
}

// Apply transforms the point (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return x*m[0] + y*m[3] + m[6], x*m[1] + y*m[4] + m[7]
}

// localMatrix builds Scale · Rotation · Translation for a node.
func localMatrix(n *Node) Matrix {
	return Scaling(n.ScaleX, n.ScaleY).
		Multiply(Rotation(n.Rotation)).
		Multiply(Translation(n.X, n.Y))
}

// --- Transform property setters ---

// SetPosition sets the node's local X and Y.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// SetScale sets the node's ScaleX and ScaleY.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
}

// SetRotation sets the node's rotation in radians.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
}

// --- Coordinate conversion ---

// LocalMatrix returns the node's own transform.
func (n *Node) LocalMatrix() Matrix {
	return localMatrix(n)
}

// WorldMatrix returns the transform from this node's local space to stage
// space, composed from the current properties of the node and its ancestors.
func (n *Node) WorldMatrix() Matrix {
	m := localMatrix(n)
	for p := n.Parent; p != nil; p = p.Parent {
		m = m.Multiply(localMatrix(p))
	}
	return m
}

// GlobalToLocal converts a stage-space point into this node's local space.
// It fails with ErrSingularTransform if the node or an ancestor is scaled to
// zero.
func (n *Node) GlobalToLocal(x, y float64) (float64, float64, error) {
	t, err := localMatrix(n).Invert()
	if err != nil {
		return 0, 0, err
	}
	for p := n.Parent; p != nil; p = p.Parent {
		inv, err := localMatrix(p).Invert()
		if err != nil {
			return 0, 0, err
		}
		t = inv.Multiply(t)
	}
	lx, ly := t.Apply(x, y)
	return lx, ly, nil
}

// LocalToGlobal converts a point in this node's local space to stage space.
func (n *Node) LocalToGlobal(x, y float64) (float64, float64) {
	return n.WorldMatrix().Apply(x, y)
}
