package quill

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned (wrapped) by ParseColor for any input it cannot
// interpret. A wrong color is worse than a visible error, so nothing defaults.
var ErrInvalidColor = errors.New("quill: invalid color")

// PackedColor converts a packed 0xRRGGBB integer to an opaque Color.
func PackedColor(rgb uint32) Color {
	return Color{
		R: float64((rgb>>16)&0xFF) / 255,
		G: float64((rgb>>8)&0xFF) / 255,
		B: float64(rgb&0xFF) / 255,
		A: 1,
	}
}

// Packed returns the color as a packed 0xRRGGBB integer, dropping alpha.
func (c Color) Packed() uint32 {
	return uint32(channel8(c.R))<<16 | uint32(channel8(c.G))<<8 | uint32(channel8(c.B))
}

func channel8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

// ParseColor parses a CSS-style color string. Supported forms:
//
//	#rgb  #rrggbb
//	rgb(r, g, b)  rgba(r, g, b, a)        channels 0-255, alpha 0-1
//	hsl(h, s%, l%)  hsla(h, s%, l%, a)    hue in degrees
//
// Errors wrap ErrInvalidColor.
func ParseColor(s string) (Color, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(str, "#"):
		return parseHexColor(s, str[1:])
	case strings.HasPrefix(str, "rgba("), strings.HasPrefix(str, "rgb("):
		args, err := colorArgs(s, str)
		if err != nil {
			return Color{}, err
		}
		return parseRGBArgs(s, args)
	case strings.HasPrefix(str, "hsla("), strings.HasPrefix(str, "hsl("):
		args, err := colorArgs(s, str)
		if err != nil {
			return Color{}, err
		}
		return parseHSLArgs(s, args)
	}
	return Color{}, fmt.Errorf("%w: unrecognized format %q", ErrInvalidColor, s)
}

// MustParseColor is like ParseColor but panics on error. Intended for literals.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHexColor(orig, hex string) (Color, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w: hex color %q must have 3 or 6 digits", ErrInvalidColor, orig)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: hex color %q: %v", ErrInvalidColor, orig, err)
	}
	return PackedColor(uint32(v)), nil
}

// colorArgs extracts the comma-separated arguments between the parentheses of
// a functional color notation.
func colorArgs(orig, str string) ([]string, error) {
	open := strings.IndexByte(str, '(')
	if !strings.HasSuffix(str, ")") {
		return nil, fmt.Errorf("%w: missing closing parenthesis in %q", ErrInvalidColor, orig)
	}
	parts := strings.Split(str[open+1:len(str)-1], ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

// parseNumber parses one functional-notation argument. NaN and infinities
// are rejected along with malformed text.
func parseNumber(orig, what, arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %s: %v", ErrInvalidColor, orig, what, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q: %s is not finite", ErrInvalidColor, orig, what)
	}
	return v, nil
}

func parseRGBArgs(orig string, args []string) (Color, error) {
	if len(args) != 3 && len(args) != 4 {
		return Color{}, fmt.Errorf("%w: %q needs 3 or 4 arguments", ErrInvalidColor, orig)
	}
	var ch [3]float64
	for i := 0; i < 3; i++ {
		v, err := parseNumber(orig, "channel "+strconv.Itoa(i), args[i])
		if err != nil {
			return Color{}, err
		}
		if v < 0 || v > 255 {
			return Color{}, fmt.Errorf("%w: %q: channel %d out of range", ErrInvalidColor, orig, i)
		}
		ch[i] = v / 255
	}
	a := 1.0
	if len(args) == 4 {
		v, err := parseAlpha(orig, args[3])
		if err != nil {
			return Color{}, err
		}
		a = v
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: a}, nil
}

func parseHSLArgs(orig string, args []string) (Color, error) {
	if len(args) != 3 && len(args) != 4 {
		return Color{}, fmt.Errorf("%w: %q needs 3 or 4 arguments", ErrInvalidColor, orig)
	}
	h, err := parseNumber(orig, "hue", strings.TrimSuffix(args[0], "deg"))
	if err != nil {
		return Color{}, err
	}
	s, err := parseNumber(orig, "saturation", strings.TrimSuffix(args[1], "%"))
	if err != nil {
		return Color{}, err
	}
	l, err := parseNumber(orig, "lightness", strings.TrimSuffix(args[2], "%"))
	if err != nil {
		return Color{}, err
	}
	c := HSL(h, s/100, l/100)
	if len(args) == 4 {
		a, err := parseAlpha(orig, args[3])
		if err != nil {
			return Color{}, err
		}
		c.A = a
	}
	return c, nil
}

func parseAlpha(orig, arg string) (float64, error) {
	a, err := parseNumber(orig, "alpha", arg)
	if err != nil {
		return 0, err
	}
	if a < 0 || a > 1 {
		return 0, fmt.Errorf("%w: %q: alpha out of range", ErrInvalidColor, orig)
	}
	return a, nil
}

// HSL creates an opaque color from hue (degrees, wrapped modulo 360),
// saturation and lightness (both clamped to [0, 1]).
func HSL(h, s, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clamp01(s)
	l = clamp01(l)

	c := (1 - math.Abs(2*l-1)) * s
	sector := h / 60
	x := c * (1 - math.Abs(math.Mod(sector, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case sector < 1:
		r, g, b = c, x, 0
	case sector < 2:
		r, g, b = x, c, 0
	case sector < 3:
		r, g, b = 0, c, x
	case sector < 4:
		r, g, b = 0, x, c
	case sector < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return Color{R: r + m, G: g + m, B: b + m, A: 1}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
