package quill

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fieldTween drives one float64 through a gween tween.
type fieldTween struct {
	tween *gween.Tween
	dst   *float64
}

// TweenGroup animates one or more float64 fields of a Node together. Build
// one with TweenPosition, TweenScale, TweenRotation or TweenField and call
// Update(dt) each tick. A group whose node has been disposed stops without
// writing.
//
// There is no global animation manager; callers drive their own groups.
type TweenGroup struct {
	fields []fieldTween
	target *Node
	Done   bool
}

func newTweenGroup(node *Node, duration float32, fn ease.TweenFunc, dst []*float64, to []float64) *TweenGroup {
	g := &TweenGroup{target: node, fields: make([]fieldTween, len(dst))}
	for i, p := range dst {
		g.fields[i] = fieldTween{
			tween: gween.New(float32(*p), float32(to[i]), duration, fn),
			dst:   p,
		}
	}
	return g
}

// Update advances every field by dt seconds. Done is set once all of them
// have reached their targets, or immediately if the node was disposed.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}
	done := true
	for _, f := range g.fields {
		v, finished := f.tween.Update(dt)
		*f.dst = float64(v)
		done = done && finished
	}
	g.Done = done
}

// Reset rewinds the group to its start values so it can play again.
func (g *TweenGroup) Reset() {
	for _, f := range g.fields {
		f.tween.Reset()
		v, _ := f.tween.Set(0)
		*f.dst = float64(v)
	}
	g.Done = false
}

// TweenPosition animates node.X and node.Y to (toX, toY).
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, []*float64{&node.X, &node.Y}, []float64{toX, toY})
}

// TweenScale animates node.ScaleX and node.ScaleY.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, []*float64{&node.ScaleX, &node.ScaleY}, []float64{toSX, toSY})
}

// TweenRotation animates node.Rotation (radians).
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, []*float64{&node.Rotation}, []float64{to})
}

// TweenField animates any float64 owned by node, for example a radius the
// caller redraws from each tick. The group stops when node is disposed.
func TweenField(node *Node, field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, []*float64{field}, []float64{to})
}
