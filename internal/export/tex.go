package export

import (
	"bufio"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lunit-heesungyang/fau-colors/internal/model"
	"github.com/lunit-heesungyang/fau-colors/internal/storage"
)

// TeX writes one \definecolor per labelled colour of cmaps to folder/fileName.
// Identical lines are written once and sorted. fileName must end with ".tex".
func TeX(cmaps []model.Colormap, fileName, folder string) error {
	if err := checkExt(fileName, ".tex"); err != nil {
		return err
	}
	body, err := FormatTeX(cmaps, fileName)
	if err != nil {
		return err
	}
	return storage.WriteFile(target(folder, fileName), func(w *bufio.Writer) error {
		_, err := w.WriteString(body)
		return err
	})
}

// FormatTeX renders the macro file contents
func FormatTeX(cmaps []model.Colormap, fileName string) (string, error) {
	var sb strings.Builder
	sb.WriteString("% Tex color file defining the FAU colors.\n")
	sb.WriteString("% To use, you need to include the `xcolor` package (\\usepackage{xcolor} in your preamble).\n")
	fmt.Fprintf(&sb, "%% Then copy this file into your project and include it with `\\input{%s}`.\n\n\n", fileName)

	seen := make(map[string]bool)
	var lines []string
	for _, cm := range cmaps {
		p, err := cm.Palette()
		if err != nil {
			return "", fmt.Errorf("colormap %q: %w", cm.Name, err)
		}
		for _, c := range p.Colors {
			line := fmt.Sprintf("\\definecolor{%s}{rgb}{%s, %s, %s}",
				c.Name, formatChannel(c.Color.R), formatChannel(c.Color.G), formatChannel(c.Color.B))
			if !seen[line] {
				seen[line] = true
				lines = append(lines, line)
			}
		}
	}
	sort.Strings(lines)
	sb.WriteString(strings.Join(lines, "\n"))
	return sb.String(), nil
}

// formatChannel prints the shortest decimal that round-trips, keeping a
// fractional part on whole numbers ("1.0", "0.5", "0.00392156862745098").
func formatChannel(x float64) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
