package core

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
	}{
		{"#2c2f33", Color{R: 0x2c, G: 0x2f, B: 0x33, A: 0xff}},
		{"#B8860B", Color{R: 0xb8, G: 0x86, B: 0x0b, A: 0xff}},
		{"#ffffff", ColorWhite},
		{"#000000", ColorBlack},
	}

	for _, tc := range tests {
		got, err := ParseHex(tc.in)
		if err != nil {
			t.Errorf("ParseHex(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseHex(%q) = %+v, expected %+v", tc.in, got, tc.expected)
		}
	}
}

func TestParseHexRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "2c2f33", "#2c2f3", "#2c2f33ff", "#zzzzzz", "#-12345"} {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q) should fail", in)
		}
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	c := MustHex("#d72638")
	if c.Hex() != "#d72638" {
		t.Errorf("Hex() = %q, expected #d72638", c.Hex())
	}
}

func TestColorAlpha(t *testing.T) {
	tests := []struct {
		f        float64
		expected uint8
	}{
		{1, 255},
		{0.5, 127},
		{0, 0},
		{-0.3, 0},
		{1.7, 255},
	}

	for _, tc := range tests {
		if got := ColorWhite.Alpha(tc.f).A; got != tc.expected {
			t.Errorf("Alpha(%v).A = %d, expected %d", tc.f, got, tc.expected)
		}
	}
}

func TestColorOver(t *testing.T) {
	bg := MustHex("#3a3d42")

	if got := ColorWhite.Over(bg); got != ColorWhite {
		t.Errorf("opaque colour over anything should be itself, got %+v", got)
	}
	if got := ColorWhite.Alpha(0).Over(bg); got != bg {
		t.Errorf("transparent colour over bg should be bg, got %+v", got)
	}
}

func TestColorImplementsImageColor(t *testing.T) {
	var c color.Color = ColorWhite.Alpha(0.5)

	r, g, b, a := c.RGBA()
	if a != 127<<8|127 {
		t.Errorf("alpha = %#x, expected %#x", a, 127<<8|127)
	}
	if r != a || g != a || b != a {
		t.Errorf("premultiplied white should equal alpha, got r=%#x g=%#x b=%#x", r, g, b)
	}
}
