package palettes

import (
	"github.com/lunit-heesungyang/fau-colors/internal/colormap"
	"github.com/lunit-heesungyang/fau-colors/internal/model"
)

// LightnessPostfixes label the blended ramp levels 1, .625, .375, .25 and .125
var LightnessPostfixes = []string{"", "-625", "-375", "-250", "-125"}

// Colors2019 is the 2019 department colour table
type Colors2019 struct {
	Colors CategorySet
}

// V2019 is the 2019 release
var V2019 = Colors2019{
	Colors: CategorySet{
		Fau:  "#003865",
		Tech: "#98a4ae",
		Phil: "#c99313",
		Med:  "#00b1eb",
		Nat:  "#009b77",
		Wiso: "#8d1429",
	},
}

func (Colors2019) Name() string { return "2019" }

// Colormaps returns "departments" followed by one ramp per category
func (g Colors2019) Colormaps() []model.Colormap {
	cmaps := []model.Colormap{g.Colors.Colormap("departments", "")}
	for _, c := range Categories {
		cmaps = append(cmaps, mustRamp(string(c), g.Colors.Get(c), "fau-"+string(c)))
	}
	return cmaps
}

// mustRamp blends base at the lightness levels, darkest first
func mustRamp(name, base, prefix string) model.Colormap {
	cm, err := colormap.Ramp(name, base, colormap.Reversed(colormap.LightnessLevels), prefix, LightnessPostfixes)
	if err != nil {
		panic(err)
	}
	return cm
}
