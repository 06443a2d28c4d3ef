package core

import (
	"fmt"
	"strconv"
)

// Color is an 8-bit straight-alpha RGBA colour.
// It implements image/color.Color so backends can hand it straight to a
// drawing library.
type Color struct {
	R, G, B, A uint8
}

// Predefined colours.
var (
	ColorWhite = Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorBlack = Color{A: 0xff}
)

// ParseHex parses a "#rrggbb" string (case-insensitive) into an opaque colour.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("color: %q is not of the form #rrggbb", s)
	}

	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color: %q: %w", s, err)
	}

	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

// MustHex is like ParseHex but panics on malformed input.
// Meant for package-level tables.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the colour as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Alpha returns c with its alpha replaced by a [0, 1] opacity.
// Out-of-range values are clamped; the result is truncated, so 0.5 gives 127.
func (c Color) Alpha(f float64) Color {
	c.A = uint8(ClampF(f, 0, 1) * 255)
	return c
}

// Over composites c on top of an opaque backdrop and returns an opaque colour.
func (c Color) Over(backdrop Color) Color {
	a := uint32(c.A)
	mix := func(fg, bg uint8) uint8 {
		return uint8((uint32(fg)*a + uint32(bg)*(255-a) + 127) / 255)
	}
	return Color{
		R: mix(c.R, backdrop.R),
		G: mix(c.G, backdrop.G),
		B: mix(c.B, backdrop.B),
		A: 0xff,
	}
}

// RGBA implements image/color.Color (alpha-premultiplied, 16 bits per channel).
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	r = uint32(c.R) * a / 0xff
	g = uint32(c.G) * a / 0xff
	b = uint32(c.B) * a / 0xff
	return r | r<<8, g | g<<8, b | b<<8, a | a<<8
}
