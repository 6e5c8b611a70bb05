// Package colormap derives lightness ramps from base colours and registers
// named colormaps with a plotting environment's colormap table.
package colormap

import (
	"fmt"

	"github.com/lunit-heesungyang/fau-colors/internal/model"
)

// LightnessLevels are the fractions used by the blended generations, lightest first
var LightnessLevels = []float64{0.125, 0.25, 0.375, 0.625, 1}

// Blend interpolates from white toward base at each fraction, in the given
// order. A fraction of 1 yields base itself.
func Blend(base string, fractions []float64) ([]model.RGB, error) {
	c, err := model.ParseColor(base)
	if err != nil {
		return nil, fmt.Errorf("blending: %w", err)
	}
	return BlendRGB(c, fractions), nil
}

// BlendRGB is Blend for an already parsed colour. Interpolation is plain
// linear RGB, without gamma handling. Fractions are clamped to [0, 1].
// The blend runs from base toward white so that a fraction of 1 returns base
// bit for bit.
func BlendRGB(base model.RGB, fractions []float64) []model.RGB {
	white := model.White.Colorful()
	target := base.Colorful()

	out := make([]model.RGB, len(fractions))
	for i, f := range fractions {
		f = max(0, min(1, f))
		out[i] = model.FromColorful(target.BlendRgb(white, 1-f))
	}
	return out
}

// Reversed returns the fractions in reverse order (darkest first for LightnessLevels)
func Reversed(fractions []float64) []float64 {
	out := make([]float64, len(fractions))
	for i, f := range fractions {
		out[len(fractions)-1-i] = f
	}
	return out
}

// Ramp builds a labelled colormap from base blended at fractions. Labels are
// prefix followed by the matching postfix; postfixes may be nil.
func Ramp(name, base string, fractions []float64, prefix string, postfixes []string) (model.Colormap, error) {
	colors, err := Blend(base, fractions)
	if err != nil {
		return model.Colormap{}, fmt.Errorf("ramp %q: %w", name, err)
	}
	cm := model.Colormap{Name: name, Colors: colors}
	for i := range colors {
		if i < len(postfixes) {
			cm.Labels = append(cm.Labels, prefix+postfixes[i])
		}
	}
	return cm, nil
}
