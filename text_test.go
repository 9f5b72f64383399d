package quill

import (
	"math"
	"strings"
	"testing"
)

func loadTestFont(t *testing.T) *TTFFont {
	t.Helper()
	f, err := DefaultFont(16)
	if err != nil {
		t.Fatalf("DefaultFont: %v", err)
	}
	return f
}

func TestLoadTTFFont_InvalidData(t *testing.T) {
	_, err := LoadTTFFont([]byte("not a font"), 12)
	if err == nil {
		t.Fatal("expected error for invalid TTF data")
	}
	if !strings.Contains(err.Error(), "failed to parse TTF data") {
		t.Errorf("err = %v", err)
	}
}

func TestDefaultFontMetrics(t *testing.T) {
	f := loadTestFont(t)
	if f.Size() != 16 {
		t.Errorf("Size = %v, want 16", f.Size())
	}
	if f.LineHeight() < 16 {
		t.Errorf("LineHeight = %v, want at least the font size", f.LineHeight())
	}
}

func TestMeasureString(t *testing.T) {
	f := loadTestFont(t)
	w1, h1 := f.MeasureString("Hi")
	w2, _ := f.MeasureString("Hi there")
	if w1 <= 0 || h1 <= 0 {
		t.Fatalf("MeasureString(Hi) = %v x %v", w1, h1)
	}
	if w2 <= w1 {
		t.Errorf("longer string should be wider: %v <= %v", w2, w1)
	}
	_, h3 := f.MeasureString("a\nb")
	if h3 < 2*f.LineHeight()-1 {
		t.Errorf("two lines height = %v, want about %v", h3, 2*f.LineHeight())
	}
}

func TestTextBlockMeasureEmpty(t *testing.T) {
	tests := []struct {
		name string
		tb   TextBlock
	}{
		{"no font", TextBlock{Content: "hello"}},
		{"no content", TextBlock{Font: loadTestFont(t)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w, h := tt.tb.Measure(); w != 0 || h != 0 {
				t.Errorf("Measure = %v x %v, want 0 x 0", w, h)
			}
			if q := tt.tb.solidQuad(); q != nil {
				t.Error("solidQuad should be nil with nothing to draw")
			}
		})
	}
}

func TestAlignOffset(t *testing.T) {
	tests := []struct {
		align TextAlign
		want  float64
	}{
		{TextAlignLeft, 0},
		{TextAlignCenter, -50},
		{TextAlignRight, -100},
	}
	for _, tt := range tests {
		if got := alignOffset(tt.align, 100); got != tt.want {
			t.Errorf("alignOffset(%v, 100) = %v, want %v", tt.align, got, tt.want)
		}
	}
}

func TestTexturedQuad(t *testing.T) {
	tb := &TextBlock{Align: TextAlignCenter}
	q := tb.texturedQuad(40, 10)
	if len(q) != 6*TexturedVertexFloats {
		t.Fatalf("len = %d, want %d", len(q), 6*TexturedVertexFloats)
	}
	// vertex 2: bottom-right, position then texel
	v := q[2*TexturedVertexFloats:]
	if v[0] != 20 || v[1] != 10 || v[2] != 40 || v[3] != 10 {
		t.Errorf("bottom-right = %v, want [20 10 40 10]", v[:4])
	}
	if q[0] != -20 || q[1] != 0 {
		t.Errorf("top-left = %v, want [-20 0]", q[:2])
	}
}

func TestSolidQuadCoversText(t *testing.T) {
	tb := &TextBlock{Content: "Hello", Font: loadTestFont(t), Align: TextAlignRight}
	w, h := tb.Measure()
	q := tb.solidQuad()
	if len(q) != 6*VertexFloats {
		t.Fatalf("len = %d, want %d", len(q), 6*VertexFloats)
	}
	if a := streamArea(q); math.Abs(a-w*h) > 0.01*w*h {
		t.Errorf("area = %v, want %v", a, w*h)
	}
	p, c := vertexAt(q, 1)
	if p.X != 0 || c != ColorWhite {
		t.Errorf("right-aligned top-right = %+v %+v, want x 0 and white", p, c)
	}
}

func TestTextBlockStale(t *testing.T) {
	f := loadTestFont(t)
	tb := &TextBlock{Content: "a", Font: f, Color: ColorBlack}
	if !tb.stale() {
		t.Fatal("unrendered block should be stale")
	}
	tb.rContent, tb.rFont, tb.rColor, tb.rendered = "a", f, ColorBlack, true
	if tb.stale() {
		t.Fatal("block matching its snapshot should not be stale")
	}

	tests := []struct {
		name   string
		mutate func(*TextBlock)
	}{
		{"content", func(tb *TextBlock) { tb.Content = "b" }},
		{"color", func(tb *TextBlock) { tb.Color = ColorWhite }},
		{"font", func(tb *TextBlock) { tb.Font = loadTestFont(t) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp := *tb
			tt.mutate(&cp)
			if !cp.stale() {
				t.Errorf("changing %s should make the block stale", tt.name)
			}
		})
	}

	tb.Align = TextAlignRight
	if tb.stale() {
		t.Error("alignment only moves the quad and should not re-render")
	}
}

func TestNewTextSetsTextBlock(t *testing.T) {
	f := loadTestFont(t)
	s := NewStage(newFakeBackend(10, 10), nil)
	n := s.NewText("label", "hello", f)
	if n.Type != NodeTypeText {
		t.Errorf("Type = %v, want text", n.Type)
	}
	if n.Text.Font != f || n.Text.Color != ColorBlack || n.Text.Align != TextAlignLeft {
		t.Errorf("Text = %+v", n.Text)
	}
}
