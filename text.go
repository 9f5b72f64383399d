package quill

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("quill: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     lh,
	}, nil
}

// DefaultFont returns the Go Regular typeface at the given size.
func DefaultFont(size float64) (*TTFFont, error) {
	return LoadTTFFont(goregular.TTF, size)
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Size returns the font size in pixels.
func (f *TTFFont) Size() float64 {
	return f.size
}

// --- TextBlock ---

// TextBlock holds text content and its rendered texture. The texture is
// redrawn when Content, Font or Color change.
type TextBlock struct {
	Content string
	Font    *TTFFont
	Color   Color
	Align   TextAlign

	image *ebiten.Image

	// what image was last rendered from
	rContent string
	rFont    *TTFFont
	rColor   Color
	rendered bool

	quad  [6 * TexturedVertexFloats]float32
	solid [6 * VertexFloats]float32
}

// Measure returns the size of the rendered text, or 0x0 without a font.
func (tb *TextBlock) Measure() (w, h float64) {
	if tb.Font == nil || tb.Content == "" {
		return 0, 0
	}
	return tb.Font.MeasureString(tb.Content)
}

// stale reports whether the cached texture no longer matches the block.
func (tb *TextBlock) stale() bool {
	return !tb.rendered || tb.rContent != tb.Content || tb.rFont != tb.Font || tb.rColor != tb.Color
}

// texture renders the text into the cached image when stale and returns it.
// Returns nil when there is nothing to draw.
func (tb *TextBlock) texture() *ebiten.Image {
	mw, mh := tb.Measure()
	if mw == 0 || mh == 0 {
		return nil
	}
	if !tb.stale() && tb.image != nil {
		return tb.image
	}
	w := int(mw) + 1
	h := int(mh) + 1
	if tb.image != nil {
		b := tb.image.Bounds()
		if b.Dx() != w || b.Dy() != h {
			tb.image.Deallocate()
			tb.image = ebiten.NewImage(w, h)
		} else {
			tb.image.Clear()
		}
	} else {
		tb.image = ebiten.NewImage(w, h)
	}

	op := &text.DrawOptions{}
	op.ColorScale.Scale(
		float32(tb.Color.R),
		float32(tb.Color.G),
		float32(tb.Color.B),
		float32(tb.Color.A),
	)
	op.LineSpacing = tb.Font.lh
	text.Draw(tb.image, tb.Content, tb.Font.face, op)

	tb.rContent, tb.rFont, tb.rColor, tb.rendered = tb.Content, tb.Font, tb.Color, true
	return tb.image
}

// alignOffset returns the x offset of the text's left edge from the node origin.
func alignOffset(align TextAlign, w float64) float64 {
	switch align {
	case TextAlignCenter:
		return -w / 2
	case TextAlignRight:
		return -w
	}
	return 0
}

// texturedQuad fills the textured vertex stream for a w by h image drawn at
// the alignment offset.
func (tb *TextBlock) texturedQuad(w, h float64) []float32 {
	x0 := float32(alignOffset(tb.Align, w))
	x1 := x0 + float32(w)
	y1 := float32(h)
	fw, fh := float32(w), float32(h)
	tb.quad = [...]float32{
		x0, 0, 0, 0,
		x1, 0, fw, 0,
		x1, y1, fw, fh,
		x0, 0, 0, 0,
		x1, y1, fw, fh,
		x0, y1, 0, fh,
	}
	return tb.quad[:]
}

// solidQuad fills a colored vertex stream covering the text bounds. Used by
// the pick pass when a text node is made pickable.
func (tb *TextBlock) solidQuad() []float32 {
	w, h := tb.Measure()
	if w == 0 || h == 0 {
		return nil
	}
	x0 := float32(alignOffset(tb.Align, w))
	x1 := x0 + float32(w)
	y1 := float32(h)
	corners := [6][2]float32{{x0, 0}, {x1, 0}, {x1, y1}, {x0, 0}, {x1, y1}, {x0, y1}}
	for i, c := range corners {
		v := tb.solid[i*VertexFloats : (i+1)*VertexFloats]
		v[0], v[1], v[2], v[3], v[4], v[5] = c[0], c[1], 1, 1, 1, 1
	}
	return tb.solid[:]
}

// release frees the cached texture.
func (tb *TextBlock) release() {
	if tb.image != nil {
		tb.image.Deallocate()
		tb.image = nil
	}
	tb.rendered = false
}

// drawText submits a text node's texture through the textured program.
func (s *Stage) drawText(n *Node, world Matrix) {
	img := n.Text.texture()
	if img == nil {
		return
	}
	b := img.Bounds()
	s.useProgram(ProgramTextured)
	s.backend.SetTransform(world)
	s.backend.DrawTexture(img, n.Text.texturedQuad(float64(b.Dx()), float64(b.Dy())))
	s.stats.drawCalls++
}
