package quill

import (
	"errors"
	"math"
	"testing"
)

func assertColor(t *testing.T, name string, got, want Color) {
	t.Helper()
	const eps = 1e-6
	if math.Abs(got.R-want.R) > eps || math.Abs(got.G-want.G) > eps ||
		math.Abs(got.B-want.B) > eps || math.Abs(got.A-want.A) > eps {
		t.Errorf("%s = %+v, want %+v", name, got, want)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", Color{1, 0, 0, 1}},
		{"#00FF00", Color{0, 1, 0, 1}},
		{"#00f", Color{0, 0, 1, 1}},
		{"  #fff  ", Color{1, 1, 1, 1}},
		{"rgb(255, 0, 0)", Color{1, 0, 0, 1}},
		{"rgb(0,51,255)", Color{0, 0.2, 1, 1}},
		{"rgba(255, 255, 255, 0.5)", Color{1, 1, 1, 0.5}},
		{"hsl(0, 100%, 50%)", Color{1, 0, 0, 1}},
		{"hsl(120, 100%, 50%)", Color{0, 1, 0, 1}},
		{"hsl(240, 100, 50)", Color{0, 0, 1, 1}},
		{"hsla(0, 0%, 100%, 0.25)", Color{1, 1, 1, 0.25}},
		{"HSL(360, 100%, 50%)", Color{1, 0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			assertColor(t, tt.in, got, tt.want)
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	inputs := []string{
		"",
		"red",
		"#12",
		"#12345",
		"#gggggg",
		"rgb(1, 2)",
		"rgb(1, 2, 3, 4, 5)",
		"rgb(256, 0, 0)",
		"rgb(-1, 0, 0)",
		"rgb(a, 0, 0)",
		"rgba(0, 0, 0, 2)",
		"rgb(0, 0, 0",
		"hsl(x, 50%, 50%)",
		"hsl(0, 50%)",
		"rgb(nan, 0, 0)",
		"rgb(0, Inf, 0)",
		"rgba(0, 0, 0, nan)",
		"hsl(inf, 50%, 50%)",
		"hsl(0, NaN%, 50%)",
		"hsl(0, 50%, -inf%)",
		"hsla(0, 50%, 50%, nan)",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := ParseColor(in)
			if err == nil {
				t.Fatalf("ParseColor(%q) succeeded, want error", in)
			}
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("error %v does not wrap ErrInvalidColor", err)
			}
		})
	}
}

func TestMustParseColorPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic")
		}
	}()
	MustParseColor("nope")
}

func TestPackedColor(t *testing.T) {
	assertColor(t, "PackedColor", PackedColor(0x3366CC), Color{0.2, 0.4, 0.8, 1})
	if got := PackedColor(0x3366CC).Packed(); got != 0x3366CC {
		t.Errorf("Packed = %#x, want 0x3366cc", got)
	}
}

func TestHSLWrapsAndClamps(t *testing.T) {
	assertColor(t, "hue 480", HSL(480, 1, 0.5), HSL(120, 1, 0.5))
	assertColor(t, "hue -120", HSL(-120, 1, 0.5), HSL(240, 1, 0.5))
	assertColor(t, "s>1", HSL(0, 5, 0.5), Color{1, 0, 0, 1})
	assertColor(t, "l<0", HSL(0, 1, -1), Color{0, 0, 0, 1})
	assertColor(t, "l>1", HSL(0, 1, 2), Color{1, 1, 1, 1})
	assertColor(t, "gray", HSL(77, 0, 0.5), Color{0.5, 0.5, 0.5, 1})
}

func TestColorDecode(t *testing.T) {
	var c Color
	if err := c.Decode("#00ff00"); err != nil {
		t.Fatal(err)
	}
	assertColor(t, "Decode", c, Color{0, 1, 0, 1})
	if err := c.Decode("bogus"); err == nil {
		t.Error("expected error")
	}
}

func TestColorWithAlpha(t *testing.T) {
	c := ColorWhite.WithAlpha(0.3)
	if c.A != 0.3 || c.R != 1 {
		t.Errorf("WithAlpha = %+v", c)
	}
	if ColorWhite.A != 1 {
		t.Error("WithAlpha must not modify the receiver")
	}
}
