package model

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for colour strings that are not hex triplets
var ErrInvalidColor = errors.New("invalid color")

// RGB is a colour with channels in [0, 1]
type RGB struct {
	R, G, B float64
}

// White is the lightest end of every lightness ramp
var White = RGB{1, 1, 1}

// ParseColor parses "#rrggbb" or "#rgb" into an RGB triple
func ParseColor(s string) (RGB, error) {
	if n := len(s); (n != 4 && n != 7) || s[0] != '#' {
		return RGB{}, fmt.Errorf("%w %q: want #rrggbb or #rgb", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}
	// Normalise through 8 bit so that channels are exactly n/255.
	r, g, b := c.RGB255()
	return RGB{float64(r) / 255, float64(g) / 255, float64(b) / 255}, nil
}

// MustParseColor is like ParseColor but panics on error.
// Only used for the constant colour tables.
func MustParseColor(s string) RGB {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MustParseColors parses a list of hex strings
func MustParseColors(hex ...string) []RGB {
	out := make([]RGB, len(hex))
	for i, h := range hex {
		out[i] = MustParseColor(h)
	}
	return out
}

// Colorful converts to a go-colorful colour
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// FromColorful converts a go-colorful colour, clamping to the valid range
func FromColorful(c colorful.Color) RGB {
	c = c.Clamped()
	return RGB{c.R, c.G, c.B}
}

// Hex returns the "#rrggbb" form
func (c RGB) Hex() string {
	return c.Colorful().Clamped().Hex()
}

// RGBA returns the opaque 8-bit form used by image and plotting code
func (c RGB) RGBA() color.RGBA {
	r, g, b := c.Colorful().Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Equal reports whether every channel differs by at most tol
func (c RGB) Equal(o RGB, tol float64) bool {
	return math.Abs(c.R-o.R) <= tol &&
		math.Abs(c.G-o.G) <= tol &&
		math.Abs(c.B-o.B) <= tol
}

// Valid reports whether all channels are within [0, 1]
func (c RGB) Valid() bool {
	in := func(x float64) bool { return x >= 0 && x <= 1 }
	return in(c.R) && in(c.G) && in(c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("(%g, %g, %g)", c.R, c.G, c.B)
}
