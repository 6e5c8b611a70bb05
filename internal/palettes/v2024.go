package palettes

import (
	"strings"

	"github.com/lunit-heesungyang/fau-colors/internal/model"
)

// LightRamp is a published colour at every lightness level, base first
type LightRamp struct {
	Key    string
	Levels [5]string
}

// Colors2024 is the 2024 faculty colour table
type Colors2024 struct {
	Colors      CategorySet
	Dark        CategorySet
	Black       string
	LightLevels []LightRamp
}

// V2024 is the 2024 release
var V2024 = Colors2024{
	Colors: CategorySet{
		Fau:  "#04316A",
		Tech: "#8C9FB1",
		Phil: "#FDB735",
		Med:  "#18B4F1",
		Nat:  "#7BB725",
		Wiso: "#C50F3C",
	},
	Dark: CategorySet{
		Fau:  "#041E42",
		Tech: "#2F586E",
		Phil: "#E87722",
		Med:  "#005287",
		Nat:  "#266141",
		Wiso: "#971B2F",
	},
	Black: "#000000",
	LightLevels: []LightRamp{
		{"fau", [5]string{"#04316A", "#617DA1", "#A0B1C6", "#C0CBDA", "#D3DCF2"}},
		{"fau-dark", [5]string{"#041E42", "#617188", "#A0A9B7", "#C0C7D0", "#DFE2E7"}},
		{"tech", [5]string{"#8C9FB1", "#B6C2CE", "#D3DAE1", "#E2E7EB", "#EBF5F7"}},
		{"tech-dark", [5]string{"#2F586E", "#7C96A3", "#B0BFC8", "#CBD5DB", "#E4E9EC"}},
		{"phil", [5]string{"#FDB735", "#FECE76", "#FEE4B2", "#FEEDCC", "#FFF5E0"}},
		{"phil-dark", [5]string{"#EB7722", "#EFA369", "#F6CBAB", "#F9DDC8", "#FCEDE2"}},
		{"med", [5]string{"#18B4F1", "#6DD0F6", "#A7E2FA", "#C5ECFB", "#E3FAFC"}},
		{"med-dark", [5]string{"#005287", "#5E92B3", "#9EBDD1", "#BFD4E1", "#DEE9EF"}},
		{"nat", [5]string{"#7BB725", "#ACD275", "#CDE4AC", "#DEEDC8", "#E6FCDC"}},
		{"nat-dark", [5]string{"#266141", "#769B87", "#ACC3B7", "#C9D7CF", "#E3EBE6"}},
		{"wiso", [5]string{"#C50F3C", "#DD737C", "#EBABAE", "#F1C8C9", "#FCDCE3"}},
		{"wiso-dark", [5]string{"#971B2F", "#BE717D", "#D8A9B1", "#E6C6CB", "#F2E2E5"}},
		{"black", [5]string{"#000000", "#5E5E5E", "#9E9E9E", "#BFBFBF", "#DEDEDE"}},
	},
}

func (Colors2024) Name() string { return "2024" }

// All returns base and dark colours interleaved, then black
func (g Colors2024) All() []NamedHex {
	return append(interleave(g.Colors, g.Dark), NamedHex{Key: "black", Hex: g.Black})
}

// Ramp returns the light levels published for key ("fau", "fau-dark", ...)
func (g Colors2024) Ramp(key string) (LightRamp, bool) {
	for _, r := range g.LightLevels {
		if r.Key == key {
			return r, true
		}
	}
	return LightRamp{}, false
}

// Colormaps returns the faculty palettes, one ramp per light-level entry and
// one cross-faculty palette per lightness level
func (g Colors2024) Colormaps() []model.Colormap {
	cmaps := []model.Colormap{
		g.Colors.Colormap("faculties", ""),
		g.Dark.Colormap("faculties_dark", "-dark"),
		g.level("faculties_light", "", 1, "-light"),
		allColormap("faculties_all", g.All()),
	}
	for _, r := range g.LightLevels {
		cm := model.Colormap{
			Name:   strings.ReplaceAll(r.Key, "-", "_"),
			Colors: model.MustParseColors(r.Levels[:]...),
		}
		for _, p := range LightnessPostfixes {
			cm.Labels = append(cm.Labels, "fau-"+r.Key+p)
		}
		cmaps = append(cmaps, cm)
	}
	for _, variant := range []string{"", "-dark"} {
		for i, p := range LightnessPostfixes[1:] {
			name := strings.ReplaceAll("faculties"+variant+p, "-", "_")
			cmaps = append(cmaps, g.level(name, variant, i+1, variant+p))
		}
	}
	return cmaps
}

// level collects the colour at index i of every faculty ramp ("fau"+variant, ...)
func (g Colors2024) level(name, variant string, i int, suffix string) model.Colormap {
	cm := model.Colormap{Name: name}
	for _, c := range Categories {
		r, ok := g.Ramp(string(c) + variant)
		if !ok {
			continue
		}
		cm.Colors = append(cm.Colors, model.MustParseColor(r.Levels[i]))
		cm.Labels = append(cm.Labels, "fau-"+string(c)+suffix)
	}
	return cm
}
