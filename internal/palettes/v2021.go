package palettes

import (
	"github.com/lunit-heesungyang/fau-colors/internal/model"
)

// Colors2021 is the 2021 department colour table
type Colors2021 struct {
	Colors CategorySet
	Dark   CategorySet
}

// V2021 is the 2021 release
var V2021 = Colors2021{
	Colors: CategorySet{
		Fau:  "#002F6C",
		Tech: "#779FB5",
		Phil: "#FFB81C",
		Med:  "#00A3E0",
		Nat:  "#43B02A",
		Wiso: "#C8102E",
	},
	Dark: CategorySet{
		Fau:  "#041E42",
		Tech: "#41748D",
		Phil: "#E87722",
		Med:  "#0061A0",
		Nat:  "#228848",
		Wiso: "#971B2F",
	},
}

func (Colors2021) Name() string { return "2021" }

// All returns base and dark colours interleaved: fau, fau_dark, tech, ...
func (g Colors2021) All() []NamedHex {
	return interleave(g.Colors, g.Dark)
}

// Colormaps returns the department palettes followed by one ramp per entry of All
func (g Colors2021) Colormaps() []model.Colormap {
	cmaps := []model.Colormap{
		g.Colors.Colormap("departments", ""),
		g.Dark.Colormap("departments_dark", "-dark"),
		allColormap("departments_all", g.All()),
	}
	for _, c := range g.All() {
		cmaps = append(cmaps, mustRamp(c.Key, c.Hex, "fau-"+c.Key))
	}
	return cmaps
}

// NamedHex is a keyed hex colour such as ("fau_dark", "#041E42")
type NamedHex struct {
	Key string
	Hex string
}

func interleave(base, dark CategorySet) []NamedHex {
	var out []NamedHex
	for _, c := range Categories {
		out = append(out,
			NamedHex{Key: string(c), Hex: base.Get(c)},
			NamedHex{Key: string(c) + "_dark", Hex: dark.Get(c)},
		)
	}
	return out
}

func allColormap(name string, all []NamedHex) model.Colormap {
	cm := model.Colormap{Name: name}
	for _, c := range all {
		cm.Colors = append(cm.Colors, model.MustParseColor(c.Hex))
		cm.Labels = append(cm.Labels, "fau-"+c.Key)
	}
	return cm
}
