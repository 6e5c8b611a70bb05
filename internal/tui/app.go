package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/lunit-heesungyang/fau-colors/internal/colormap"
	"github.com/lunit-heesungyang/fau-colors/internal/model"
	"github.com/lunit-heesungyang/fau-colors/internal/palettes"
	"github.com/lunit-heesungyang/fau-colors/internal/ui"
)

// RegState is the registration state of a colormap name in the store
type RegState int

const (
	StateFree RegState = iota
	StateRegistered
	StateConflict
)

// Icon returns the list icon for the state
func (s RegState) Icon() string {
	switch s {
	case StateRegistered:
		return ui.IconRegistered
	case StateConflict:
		return ui.IconConflict
	default:
		return ui.IconUnregistered
	}
}

// Model is the main Bubble Tea model
type Model struct {
	// Core dependencies
	generations []palettes.Generation
	store       *colormap.Store
	adapter     *colormap.Adapter
	keys        KeyMap
	styles      Styles

	// Window dimensions
	width  int
	height int

	// Colormap list state
	gen      int
	cmaps    []model.Colormap
	selected int

	// UI state
	statusMsg string
	statusErr bool

	// Sub-components
	viewport viewport.Model
}

// New creates a new TUI model browsing gens, registering into store
func New(gens []palettes.Generation, store *colormap.Store, logger *slog.Logger) Model {
	m := Model{
		generations: gens,
		store:       store,
		adapter:     colormap.NewAdapter(store, logger),
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
		viewport:    viewport.New(40, 20),
	}
	m.loadGeneration(len(gens) - 1)
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(m.width-m.width/3-4, 1)
		m.viewport.Height = max(m.height-3, 1)
		m.refreshPreview()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
			m.refreshPreview()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.cmaps)-1 {
			m.selected++
			m.refreshPreview()
		}
		return m, nil

	case key.Matches(msg, m.keys.NextGen) && len(m.generations) > 0:
		m.loadGeneration((m.gen + 1) % len(m.generations))
		return m, nil

	case key.Matches(msg, m.keys.PrevGen) && len(m.generations) > 0:
		m.loadGeneration((m.gen + len(m.generations) - 1) % len(m.generations))
		return m, nil

	case key.Matches(msg, m.keys.Register):
		m.register()
		return m, nil

	case key.Matches(msg, m.keys.Unregister):
		m.unregister()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) loadGeneration(i int) {
	if len(m.generations) == 0 {
		return
	}
	m.gen = i
	m.cmaps = m.generations[i].Colormaps()
	m.selected = 0
	m.refreshPreview()
}

// Generation returns the generation being browsed
func (m Model) Generation() palettes.Generation {
	if len(m.generations) == 0 {
		return nil
	}
	return m.generations[m.gen]
}

// Selected returns the highlighted colormap
func (m Model) Selected() (model.Colormap, bool) {
	if m.selected >= len(m.cmaps) {
		return model.Colormap{}, false
	}
	return m.cmaps[m.selected], true
}

// Status returns the status line text
func (m Model) Status() string {
	return m.statusMsg
}

func (m *Model) register() {
	g := m.Generation()
	if g == nil {
		return
	}
	name := g.Name()
	if err := m.adapter.RegisterAll(m.cmaps); err != nil {
		m.setStatus(err, "")
		return
	}
	m.setStatus(nil, fmt.Sprintf("%s Registered %d colormaps of %s", ui.IconSuccess, len(m.cmaps), name))
}

func (m *Model) unregister() {
	var names []string
	for _, cm := range m.cmaps {
		if m.state(cm) == StateRegistered {
			names = append(names, cm.Name)
		}
	}
	if err := m.adapter.UnregisterAll(names); err != nil {
		m.setStatus(err, "")
		return
	}
	m.setStatus(nil, fmt.Sprintf("%s Unregistered %d colormaps", ui.IconSuccess, len(names)))
}

func (m *Model) setStatus(err error, msg string) {
	if err != nil {
		m.statusErr = true
		m.statusMsg = ui.IconError + " " + err.Error()
		if errors.Is(err, colormap.ErrAlreadyRegistered) {
			m.statusMsg += " (unregister the other generation first)"
		}
		return
	}
	m.statusErr = false
	m.statusMsg = msg
}

// state compares cm with whatever the store holds under its name
func (m Model) state(cm model.Colormap) RegState {
	got, ok := m.store.Get(cm.Name)
	switch {
	case !ok:
		return StateFree
	case got.Equal(cm, model.Tolerance):
		return StateRegistered
	default:
		return StateConflict
	}
}

func (m *Model) refreshPreview() {
	m.viewport.SetContent(m.renderPreview(m.viewport.Width))
	m.viewport.GotoTop()
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Reserve 3 lines for header(1) + footer(1) + status(1)
	listWidth := m.width / 3
	previewWidth := m.width - listWidth
	contentHeight := max(m.height-3, 1)

	title := "FAU colors"
	if g := m.Generation(); g != nil {
		title = fmt.Sprintf("FAU colors [%s]", g.Name())
	}
	header := m.styles.Header.Render(title)

	listPanel := m.styles.ListPanel.
		Width(listWidth).
		Render(m.renderList(listWidth-2, contentHeight))

	previewPanel := m.styles.PreviewPanel.
		Width(previewWidth).
		Render(m.viewport.View())

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, previewPanel)

	footer := m.styles.Footer.Render("[j/k] move [tab] generation [r]egister [u]nregister [q]uit")
	status := m.styles.StatusBar.Render(m.statusMsg)
	if m.statusErr {
		status = m.styles.ErrorBar.Render(m.statusMsg)
	}

	view := lipgloss.JoinVertical(lipgloss.Left, header, content, footer, status)

	// Force exact terminal height to prevent scrolling issues
	lines := strings.Split(view, "\n")
	if len(lines) > m.height {
		lines = lines[:m.height]
	}
	for len(lines) < m.height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderList(width, height int) string {
	var lines []string

	// Keep the selection visible
	offset := 0
	if m.selected >= height {
		offset = m.selected - height + 1
	}

	for i := offset; i < len(m.cmaps) && i-offset < height; i++ {
		cm := m.cmaps[i]
		line := fmt.Sprintf("%s %s", m.state(cm).Icon(), cm.Name)
		if runewidth.StringWidth(line) > width {
			line = runewidth.Truncate(line, width, "…")
		}
		line = runewidth.FillRight(line, width)

		if i == m.selected {
			line = m.styles.SelectedItem.Render(line)
		} else {
			line = m.styles.NormalItem.Render(line)
		}
		lines = append(lines, line)
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderPreview(width int) string {
	cm, ok := m.Selected()
	if !ok {
		return "No colormap selected"
	}

	var lines []string
	lines = append(lines, m.styles.PreviewTitle.Render(cm.Name))
	lines = append(lines, strings.Repeat("─", max(min(width, 40), 1)))
	lines = append(lines, ui.Strip(cm.Colors, 4), "")

	labelWidth := 0
	for _, l := range cm.Labels {
		labelWidth = max(labelWidth, runewidth.StringWidth(l))
	}
	for i, c := range cm.Colors {
		label := ""
		if i < len(cm.Labels) {
			label = cm.Labels[i]
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			ui.Swatch(c, 2),
			runewidth.FillRight(label, labelWidth),
			m.styles.PreviewHint.Render(c.Hex())))
	}
	return strings.Join(lines, "\n")
}
