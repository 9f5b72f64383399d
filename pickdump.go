package quill

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
	"time"
)

// DumpPickBuffer queues a labeled dump of the pick buffer, written at the end
// of the next Update as a PNG in PickDumpDir. Each node shows up in its id
// color, which makes picking problems visible.
func (s *Stage) DumpPickBuffer(label string) {
	s.pickDumpQueue = append(s.pickDumpQueue, label)
}

// flushPickDumps runs the pick pass if needed and writes every queued dump.
func (s *Stage) flushPickDumps() {
	if len(s.pickDumpQueue) == 0 {
		return
	}
	defer func() { s.pickDumpQueue = s.pickDumpQueue[:0] }()

	if err := os.MkdirAll(s.PickDumpDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[quill] pick dump: mkdir %s: %v\n", s.PickDumpDir, err)
		return
	}

	img := pickImage(s.pickBuffer())
	stamp := time.Now().Format("20060102_150405")
	for _, label := range s.pickDumpQueue {
		path := fmt.Sprintf("%s/%s_%s.png", s.PickDumpDir, stamp, sanitizeLabel(label))
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[quill] pick dump: %v\n", err)
		}
	}
}

// pickImage copies a readback into a top-down opaque image.
func pickImage(buf PickBuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	stride := 4 * buf.Width
	if len(buf.Pix) < stride*buf.Height {
		return img
	}
	for y := 0; y < buf.Height; y++ {
		row := y
		if buf.FlipY {
			row = buf.Height - 1 - y
		}
		src := buf.Pix[row*stride : (row+1)*stride]
		dst := img.Pix[y*img.Stride : y*img.Stride+stride]
		copy(dst, src)
		for i := 3; i < len(dst); i += 4 {
			dst[i] = 255
		}
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
