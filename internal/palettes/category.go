// Package palettes holds the brand colour tables of every release generation
// and the colormaps derived from them.
package palettes

import (
	"fmt"

	"github.com/lunit-heesungyang/fau-colors/internal/model"
)

// Category is one of the fixed faculty keys
type Category string

const (
	Fau  Category = "fau"
	Tech Category = "tech"
	Phil Category = "phil"
	Med  Category = "med"
	Nat  Category = "nat"
	Wiso Category = "wiso"
)

// Categories lists every category in display order
var Categories = []Category{Fau, Tech, Phil, Med, Nat, Wiso}

// CategorySet is a hex colour per category
type CategorySet struct {
	Fau, Tech, Phil, Med, Nat, Wiso string
}

// Get returns the hex colour for c
func (s CategorySet) Get(c Category) string {
	switch c {
	case Fau:
		return s.Fau
	case Tech:
		return s.Tech
	case Phil:
		return s.Phil
	case Med:
		return s.Med
	case Nat:
		return s.Nat
	case Wiso:
		return s.Wiso
	}
	return ""
}

// Hex returns the colours in category order
func (s CategorySet) Hex() []string {
	out := make([]string, len(Categories))
	for i, c := range Categories {
		out[i] = s.Get(c)
	}
	return out
}

// RGBs returns the parsed colours in category order
func (s CategorySet) RGBs() []model.RGB {
	return model.MustParseColors(s.Hex()...)
}

// Colormap builds a listed colormap of the six colours. Labels are
// "fau-<category><suffix>".
func (s CategorySet) Colormap(name, suffix string) model.Colormap {
	cm := model.Colormap{Name: name, Colors: s.RGBs()}
	for _, c := range Categories {
		cm.Labels = append(cm.Labels, fmt.Sprintf("fau-%s%s", c, suffix))
	}
	return cm
}

// Generation is one release of the colour tables
type Generation interface {
	// Name is the release year, e.g. "2024"
	Name() string
	// Colormaps returns every colormap of the release in registration order
	Colormaps() []model.Colormap
}

// Names returns the colormap names of g in registration order
func Names(g Generation) []string {
	cmaps := g.Colormaps()
	names := make([]string, len(cmaps))
	for i, c := range cmaps {
		names[i] = c.Name
	}
	return names
}
