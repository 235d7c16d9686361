package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/dispval/pkg/surface"
)

// RootModel is the top-level model. It owns the frame's surface, routes
// messages to the current child, and composites overlays last.
type RootModel struct {
	current ChildModel
	help    ChildModel

	surface  *surface.Surface
	width    int
	height   int
	showHelp bool
	quitting bool
	log      logr.Logger
}

// NewRootModel creates a root model around the initial child.
func NewRootModel(initial ChildModel) *RootModel {
	m := &RootModel{
		current: initial,
		surface: surface.New(80, 24),
		width:   80,
		height:  24,
		log:     logr.Discard(),
	}
	m.attach(initial)
	return m
}

func (m *RootModel) attach(child ChildModel) {
	if su, ok := child.(SurfaceUser); ok {
		su.SetSurface(m.surface)
	}
	if sized, ok := child.(ModelWithSize); ok {
		sized.SetSize(m.width, m.height)
	}
}

// SetHelp sets the help overlay model, toggled with "?".
func (m *RootModel) SetHelp(help ChildModel) {
	m.help = help
}

// SetLogger sets the logger.
func (m *RootModel) SetLogger(log logr.Logger) {
	m.log = log
}

// Surface returns the measurement surface of the frame.
func (m *RootModel) Surface() *surface.Surface {
	return m.surface
}

// Current returns the active child.
func (m *RootModel) Current() ChildModel {
	return m.current
}

// HelpVisible reports whether the help overlay is shown.
func (m *RootModel) HelpVisible() bool {
	return m.showHelp
}

// Init initializes the current child.
func (m *RootModel) Init() tea.Cmd {
	if m.current == nil {
		return nil
	}
	if id, ok := m.current.(ModelWithID); ok {
		m.log.V(1).Info("init", "model", id.ID())
	}
	return m.current.Init()
}

// Update handles global keys and routes everything else to the child.
func (m *RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.surface.Resize(msg.Width, msg.Height)
		if sized, ok := m.current.(ModelWithSize); ok {
			sized.SetSize(m.width, m.height)
		}
		if sized, ok := m.help.(ModelWithSize); ok {
			sized.SetSize(m.width, m.height)
		}
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "?":
			if m.help != nil {
				m.showHelp = !m.showHelp
				m.log.V(1).Info("help toggled", "visible", m.showHelp)
				return m, nil
			}
		case "esc":
			if m.showHelp {
				m.showHelp = false
				return m, nil
			}
		}
	}

	if m.current == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.current, cmd = m.current.Update(msg)
	return m, cmd
}

// Frame renders the composed frame: the child's view with every overlay
// layer spliced on top. The surface is rebuilt during the child's render.
func (m *RootModel) Frame() string {
	if m.quitting {
		return ""
	}
	m.surface.Reset()

	base := ""
	if m.current != nil {
		base = m.current.View()
	}
	base = padFrame(base, m.height)

	var layers []surface.Layer
	if op, ok := m.current.(OverlayProvider); ok {
		layers = append(layers, op.Overlays()...)
	}
	if m.showHelp && m.help != nil {
		layers = append(layers, m.helpLayer())
	}
	return surface.Compose(base, layers...)
}

func (m *RootModel) helpLayer() surface.Layer {
	content := m.help.View()
	x := max((m.width-lipgloss.Width(content))/2, 0)
	y := max((m.height-lipgloss.Height(content))/2, 0)
	return surface.Layer{ID: "help", X: x, Y: y, Content: content}
}

// View renders the frame for bubbletea.
func (m *RootModel) View() tea.View {
	v := tea.NewView(m.Frame())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	// Report modifier keys so Shift+Tab arrives as such.
	v.KeyboardEnhancements.ReportEventTypes = true
	return v
}

// padFrame extends base with blank lines up to height so overlays near the
// bottom have rows to land on.
func padFrame(base string, height int) string {
	lines := lipgloss.Height(base)
	if base == "" {
		lines = 0
	}
	for ; lines < height; lines++ {
		if base != "" || lines > 0 {
			base += "\n"
		}
	}
	return base
}
