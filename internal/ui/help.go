package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// HelpModel is the key reference shown over the preview.
type HelpModel struct {
	NoColor bool
	Theme   Theme
	Rows    [][2]string
}

// NewHelpModel creates a help model with the preview's key bindings.
func NewHelpModel(theme Theme, noColor bool) *HelpModel {
	return &HelpModel{
		NoColor: noColor,
		Theme:   theme,
		Rows: [][2]string{
			{"tab", "focus next truncated value or error"},
			{"shift+tab", "focus previous"},
			{"esc", "clear focus"},
			{"mouse", "hover a truncated symbol to see it in full"},
			{"?", "toggle help"},
			{"q", "quit"},
		},
	}
}

func (m *HelpModel) Init() tea.Cmd { return nil }

func (m *HelpModel) Update(tea.Msg) (ChildModel, tea.Cmd) { return m, nil }

func (m *HelpModel) View() string {
	keyWidth := 0
	for _, r := range m.Rows {
		keyWidth = max(keyWidth, runewidth.StringWidth(r[0]))
	}
	keyStyle := lipgloss.NewStyle().Bold(true)
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if !m.NoColor {
		keyStyle = keyStyle.Foreground(m.Theme.FocusColor)
		box = box.BorderForeground(m.Theme.StatusColor)
	}

	lines := make([]string, len(m.Rows))
	for i, r := range m.Rows {
		lines[i] = keyStyle.Render(runewidth.FillRight(r[0], keyWidth)) + "  " + r[1]
	}
	return box.Render(strings.Join(lines, "\n"))
}
