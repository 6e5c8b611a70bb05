package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lunit-heesungyang/fau-colors/internal/model"
)

// Color palette for consistent styling across the CLI and browser
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("#04316A") // FAU blue for titles and highlights
	ColorSecondary = lipgloss.Color("#8C9FB1") // Tech grey for selection and borders

	// Text colors
	ColorText      = lipgloss.Color("252") // Light gray for normal text
	ColorTextLight = lipgloss.Color("230") // Very light for selected items

	// Border and muted colors
	ColorBorder = lipgloss.Color("240") // Gray for borders and footers
	ColorMuted  = lipgloss.Color("241") // Slightly different gray for hints

	// Semantic colors
	ColorSuccess = lipgloss.Color("#7BB725") // Nat green
	ColorError   = lipgloss.Color("#C50F3C") // Wiso red
	ColorWarning = lipgloss.Color("#FDB735") // Phil yellow
)

// Swatch renders a block of width cells filled with c
func Swatch(c model.RGB, width int) string {
	if width < 1 {
		width = 1
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(strings.Repeat(" ", width))
}

// Strip renders one swatch per colour, side by side
func Strip(colors []model.RGB, width int) string {
	var sb strings.Builder
	for _, c := range colors {
		sb.WriteString(Swatch(c, width))
	}
	return sb.String()
}
