package quill

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchVertices is the largest multiple of 3 addressable by uint16 indices.
const maxBatchVertices = 65535

// --- White pixel singleton (no sync.Once, quill is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used as
// the source of every untextured draw.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// EbitenBackend rasterizes through ebiten.Image.DrawTriangles. Call SetScreen
// with the frame's target before the stage draws.
type EbitenBackend struct {
	screen    *ebiten.Image
	pick      *ebiten.Image
	program   Program
	transform Matrix
	pickColor [3]float32

	verts   []ebiten.Vertex // high-water-mark buffers
	indices []uint16
	pixels  []byte
}

// NewEbitenBackend returns a backend with no target bound.
func NewEbitenBackend() *EbitenBackend {
	return &EbitenBackend{transform: Identity}
}

// SetScreen sets the image normal draws go to.
func (b *EbitenBackend) SetScreen(img *ebiten.Image) {
	b.screen = img
}

// Size returns the bounds of the current screen, or 0x0 before SetScreen.
func (b *EbitenBackend) Size() (int, int) {
	if b.screen == nil {
		return 0, 0
	}
	r := b.screen.Bounds()
	return r.Dx(), r.Dy()
}

func (b *EbitenBackend) UseProgram(p Program) { b.program = p }

func (b *EbitenBackend) SetTransform(m Matrix) { b.transform = m }

func (b *EbitenBackend) SetPickID(id uint32) {
	r, g, bl := EncodeID(id)
	b.pickColor = [3]float32{float32(r) / 255, float32(g) / 255, float32(bl) / 255}
}

// target returns the image the active program draws into.
func (b *EbitenBackend) target() *ebiten.Image {
	if b.program == ProgramPick {
		return b.pick
	}
	return b.screen
}

// DrawTriangles transforms the vertex stream on the CPU and submits it. In
// the pick program vertex colors are replaced by the current id color.
func (b *EbitenBackend) DrawTriangles(verts []float32) {
	dst := b.target()
	if dst == nil || len(verts) < 3*VertexFloats {
		return
	}
	n := len(verts) / VertexFloats
	out := b.ensureVerts(n)
	m := b.transform
	pick := b.program == ProgramPick
	for i := 0; i < n; i++ {
		v := verts[i*VertexFloats : (i+1)*VertexFloats]
		x, y := m.Apply(float64(v[0]), float64(v[1]))
		ev := ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: v[2], ColorG: v[3], ColorB: v[4], ColorA: v[5],
		}
		if pick {
			ev.ColorR, ev.ColorG, ev.ColorB, ev.ColorA = b.pickColor[0], b.pickColor[1], b.pickColor[2], 1
		}
		out[i] = ev
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: !pick}
	if pick {
		op.Blend = ebiten.BlendCopy
	}
	b.submit(dst, out, ensureWhitePixel(), op)
}

// DrawTexture draws textured triangles (x, y, u, v per vertex) sampling img.
func (b *EbitenBackend) DrawTexture(img *ebiten.Image, verts []float32) {
	dst := b.target()
	if dst == nil || img == nil || len(verts) < 3*TexturedVertexFloats {
		return
	}
	n := len(verts) / TexturedVertexFloats
	out := b.ensureVerts(n)
	m := b.transform
	for i := 0; i < n; i++ {
		v := verts[i*TexturedVertexFloats : (i+1)*TexturedVertexFloats]
		x, y := m.Apply(float64(v[0]), float64(v[1]))
		out[i] = ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: v[2], SrcY: v[3],
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		}
	}
	op := &ebiten.DrawTrianglesOptions{Filter: ebiten.FilterLinear}
	b.submit(dst, out, img, op)
}

// submit draws verts as a triangle list, split into uint16-indexable batches.
func (b *EbitenBackend) submit(dst *ebiten.Image, verts []ebiten.Vertex, src *ebiten.Image, op *ebiten.DrawTrianglesOptions) {
	for len(verts) >= 3 {
		n := len(verts)
		if n > maxBatchVertices {
			n = maxBatchVertices
		}
		n -= n % 3
		dst.DrawTriangles(verts[:n], b.ensureIndices(n), src, op)
		verts = verts[n:]
	}
}

// BeginPick sizes and clears the offscreen pick target.
func (b *EbitenBackend) BeginPick() {
	w, h := b.Size()
	if w == 0 || h == 0 {
		return
	}
	if b.pick != nil {
		r := b.pick.Bounds()
		if r.Dx() != w || r.Dy() != h {
			b.pick.Deallocate()
			b.pick = nil
		}
	}
	if b.pick == nil {
		b.pick = ebiten.NewImage(w, h)
	}
	b.pick.Clear()
}

func (b *EbitenBackend) EndPick() {}

// ReadPickBuffer reads the pick target back. Ebitengine images are stored
// top-down, so FlipY is false.
func (b *EbitenBackend) ReadPickBuffer() PickBuffer {
	if b.pick == nil {
		return PickBuffer{}
	}
	r := b.pick.Bounds()
	need := 4 * r.Dx() * r.Dy()
	if cap(b.pixels) < need {
		b.pixels = make([]byte, need)
	}
	b.pixels = b.pixels[:need]
	b.pick.ReadPixels(b.pixels)
	return PickBuffer{Pix: b.pixels, Width: r.Dx(), Height: r.Dy()}
}

// ensureVerts grows the vertex buffer to n using a high-water-mark strategy
// (never shrinks). Returns the resliced buffer.
func (b *EbitenBackend) ensureVerts(n int) []ebiten.Vertex {
	if cap(b.verts) < n {
		b.verts = make([]ebiten.Vertex, n)
	}
	b.verts = b.verts[:n]
	return b.verts
}

// ensureIndices returns sequential indices 0..n-1.
func (b *EbitenBackend) ensureIndices(n int) []uint16 {
	if len(b.indices) < n {
		b.indices = make([]uint16, n)
		for i := range b.indices {
			b.indices[i] = uint16(i)
		}
	}
	return b.indices[:n]
}
