package quill

import "github.com/hajimehoshi/ebiten/v2"

// Program selects how the backend interprets subsequent draws.
type Program uint8

const (
	ProgramNone     Program = iota // no program bound yet
	ProgramVector                  // colored triangles from a command buffer
	ProgramTextured                // textured quads (text)
	ProgramPick                    // flat id colors into the offscreen pick target
)

// TexturedVertexFloats is the per-vertex float count of DrawTexture input:
// x, y, u, v with u and v in texels.
const TexturedVertexFloats = 4

// Backend is the rasterizer the stage submits geometry to. The stage calls it
// from a single goroutine, one frame at a time.
type Backend interface {
	// Size returns the drawable size in pixels.
	Size() (w, h int)
	// UseProgram switches the active program. The stage skips redundant switches.
	UseProgram(p Program)
	// SetTransform sets the world matrix applied to subsequent draws.
	SetTransform(m Matrix)
	// SetPickID sets the id color used by subsequent draws in ProgramPick.
	SetPickID(id uint32)
	// DrawTriangles draws a triangle list of VertexFloats-wide vertices.
	DrawTriangles(verts []float32)
	// DrawTexture draws a triangle list of TexturedVertexFloats-wide vertices
	// sampling img.
	DrawTexture(img *ebiten.Image, verts []float32)
	// BeginPick clears the pick target; EndPick finishes the pass.
	BeginPick()
	EndPick()
	// ReadPickBuffer reads the pick target back to the CPU.
	ReadPickBuffer() PickBuffer
}

// PickBuffer is an RGBA8 readback of the pick target.
type PickBuffer struct {
	Pix    []byte
	Width  int
	Height int
	// FlipY is set when row 0 of Pix is the bottom of the surface.
	FlipY bool
}

// At returns the id encoded at stage pixel (x, y), or 0 when out of bounds.
func (b PickBuffer) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	row := y
	if b.FlipY {
		row = b.Height - 1 - y
	}
	i := (row*b.Width + x) * 4
	if i+2 >= len(b.Pix) {
		return 0
	}
	return DecodeID(b.Pix[i], b.Pix[i+1], b.Pix[i+2])
}
