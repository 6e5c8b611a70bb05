package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lunit-heesungyang/fau-colors/internal/ui"
)

// Styles defines all visual styles for the TUI
type Styles struct {
	// Layout
	ListPanel    lipgloss.Style
	PreviewPanel lipgloss.Style

	// Header/Footer
	Header    lipgloss.Style
	Footer    lipgloss.Style
	StatusBar lipgloss.Style
	ErrorBar  lipgloss.Style

	// List items
	SelectedItem lipgloss.Style
	NormalItem   lipgloss.Style

	// Preview
	PreviewTitle lipgloss.Style
	PreviewHint  lipgloss.Style
}

// DefaultStyles returns the default style configuration
func DefaultStyles() Styles {
	return Styles{
		ListPanel: lipgloss.NewStyle().
			Padding(0, 1),

		PreviewPanel: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ui.ColorBorder).
			Padding(0, 1),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorTextLight).
			Background(ui.ColorPrimary).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(ui.ColorBorder).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(ui.ColorSuccess).
			Padding(0, 1),

		ErrorBar: lipgloss.NewStyle().
			Foreground(ui.ColorError).
			Padding(0, 1),

		SelectedItem: lipgloss.NewStyle().
			Background(ui.ColorSecondary).
			Foreground(ui.ColorTextLight),

		NormalItem: lipgloss.NewStyle().
			Foreground(ui.ColorText),

		PreviewTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorWarning),

		PreviewHint: lipgloss.NewStyle().
			Foreground(ui.ColorMuted),
	}
}
