package core

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a packed 32-bit pixel. Byte order in memory (little-endian) is
// R, G, B, A so a []Color converts to an RGBA byte stream without reshuffling.
type Color uint32

// RGB packs an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r) | uint32(g)<<8 | uint32(b)<<16 | 0xFF000000)
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c >> 16) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// Hex formats the colour as "#rrggbb".
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}.Hex()
}

// ParseHexColor parses "#rrggbb" (or the short "#rgb" form) into an opaque Color.
func ParseHexColor(s string) (Color, error) {
	cc, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := cc.RGB255()
	return RGB(r, g, b), nil
}
