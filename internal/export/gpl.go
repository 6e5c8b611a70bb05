package export

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/lunit-heesungyang/fau-colors/internal/model"
	"github.com/lunit-heesungyang/fau-colors/internal/storage"
)

// GPL writes every colour of cmaps, in order, as a GIMP palette to
// folder/fileName. fileName must end with ".gpl"; the palette is named after
// it without the extension.
func GPL(cmaps []model.Colormap, fileName, folder string) error {
	if err := checkExt(fileName, ".gpl"); err != nil {
		return err
	}
	return storage.WriteFile(target(folder, fileName), func(w *bufio.Writer) error {
		_, err := w.WriteString(FormatGPL(cmaps, strings.TrimSuffix(fileName, ".gpl")))
		return err
	})
}

// FormatGPL renders the palette file contents
func FormatGPL(cmaps []model.Colormap, name string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "GIMP Palette\nName: %s\n#\n", name)

	var lines []string
	for _, cm := range cmaps {
		for _, c := range cm.Colors {
			lines = append(lines, fmt.Sprintf("%3d %3d %3d", channel255(c.R), channel255(c.G), channel255(c.B)))
		}
	}
	sb.WriteString(strings.Join(lines, "\n"))
	return sb.String()
}

// channel255 truncates, it does not round
func channel255(x float64) int {
	return int(x * 255)
}
