package model

import (
	"image/color"
	"math"
)

// Tolerance is the per-channel slack used to decide that two colormaps are the same
const Tolerance = 1e-12

// Colormap is a listed colormap with an optional label per colour
type Colormap struct {
	Name   string
	Colors []RGB
	Labels []string
}

// Len returns the number of listed colours
func (c Colormap) Len() int {
	return len(c.Colors)
}

// Map looks up the colour for x in [0, 1]. Values outside are clipped.
func (c Colormap) Map(x float64) color.Color {
	if len(c.Colors) == 0 {
		return color.Transparent
	}
	return c.At(x).RGBA()
}

// At is Map returning the RGB triple
func (c Colormap) At(x float64) RGB {
	n := len(c.Colors)
	i := int(math.Floor(x * float64(n)))
	if i < 0 || math.IsNaN(x) {
		i = 0
	} else if i >= n {
		i = n - 1
	}
	return c.Colors[i]
}

// Equal reports whether both colormaps list the same colours within tol.
// Names and labels are not compared.
func (c Colormap) Equal(o Colormap, tol float64) bool {
	if len(c.Colors) != len(o.Colors) {
		return false
	}
	for i := range c.Colors {
		if !c.Colors[i].Equal(o.Colors[i], tol) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy
func (c Colormap) Clone() Colormap {
	return Colormap{
		Name:   c.Name,
		Colors: append([]RGB(nil), c.Colors...),
		Labels: append([]string(nil), c.Labels...),
	}
}

// Palette pairs labels with colours. Surplus colours or labels are dropped.
func (c Colormap) Palette() (*Palette, error) {
	n := min(len(c.Colors), len(c.Labels))
	pairs := make([]NamedColor, n)
	for i := range n {
		pairs[i] = NamedColor{Name: c.Labels[i], Color: c.Colors[i]}
	}
	return NewPalette(c.Name, pairs...)
}
