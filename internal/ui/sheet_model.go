package ui

import (
	"image/color"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/go-logr/logr"
	"github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/dispval/pkg/display"
	"github.com/oakwood-commons/dispval/pkg/logger"
	"github.com/oakwood-commons/dispval/pkg/sheet"
	"github.com/oakwood-commons/dispval/pkg/surface"
	"github.com/oakwood-commons/dispval/pkg/truncate"
)

const (
	focusMarker   = "›"
	maxLabelWidth = 32
	columnGap     = 2
	statusHint    = "tab focus · ? help · q quit"
)

// SheetOptions configures a SheetModel.
type SheetOptions struct {
	Presenter  *display.Presenter
	Defaults   sheet.Defaults
	Truncate   []truncate.Option
	Theme      Theme
	NoColor    bool
	LabelWidth int // 0 sizes the label column to the longest label
	Spinner    spinner.Spinner
	Logger     logr.Logger
}

type sheetRow struct {
	row   sheet.Row
	req   display.Request
	err   error
	label *truncate.Label
}

// focusable reports whether keyboard focus can land on the row: it either
// carries a truncated symbol or an error tooltip.
func (r *sheetRow) focusable(p *display.Presenter) bool {
	if r.label != nil {
		return true
	}
	_, ok := p.Plan(r.req).Find(display.ChunkErrorIcon)
	return ok
}

// SheetModel previews every row of a sheet as a presented value.
type SheetModel struct {
	title     string
	rows      []*sheetRow
	presenter *display.Presenter
	theme     Theme
	noColor   bool

	labelWidth int
	spinner    spinner.Model
	surface    *surface.Surface

	focus  int
	hover  int
	rowTop int
	width  int
	height int
	log    logr.Logger
}

// NewSheetModel builds the preview of s. Rows whose request cannot be built
// are shown in the error-only state with the build error as their message.
func NewSheetModel(s *sheet.Sheet, opts SheetOptions) *SheetModel {
	log := opts.Logger
	p := opts.Presenter
	if p == nil {
		p = display.NewPresenter(display.WithLogger(log))
	}
	m := &SheetModel{
		presenter: p,
		theme:     opts.Theme,
		noColor:   opts.NoColor,
		focus:     -1,
		hover:     -1,
		log:       log,
	}
	m.spinner = spinner.New()
	m.spinner.Spinner = opts.Spinner
	if len(m.spinner.Spinner.Frames) == 0 {
		m.spinner.Spinner = spinner.Dot
	}

	if s == nil {
		s = &sheet.Sheet{}
	}
	m.title = s.Title

	widest := 0
	for _, row := range s.Rows {
		req, err := row.Request(opts.Defaults)
		if err != nil {
			log.V(1).Info("row request failed", logger.RowKey, row.ID, "error", err.Error())
			req = display.Request{ID: row.ID, IsError: display.Bool(true), Err: err}
		}
		req.Slots.Spinner = m.spinnerFrame

		r := &sheetRow{row: row, req: req, err: err}
		if anchors := p.Layout(req).Anchors; len(anchors) > 0 {
			a := anchors[0]
			lopts := append([]truncate.Option{
				truncate.WithID(a.ID),
				truncate.WithMaxChars(a.MaxChars),
				truncate.WithStyle(a.Style),
				truncate.WithLogger(log),
			}, opts.Truncate...)
			r.label = truncate.New(a.Text, lopts...)
		}
		m.rows = append(m.rows, r)
		widest = max(widest, runewidth.StringWidth(row.Label))
	}

	m.labelWidth = opts.LabelWidth
	if m.labelWidth <= 0 {
		m.labelWidth = min(widest, maxLabelWidth)
	}
	return m
}

// ID identifies the model in logs.
func (m *SheetModel) ID() string { return "sheet" }

func (m *SheetModel) spinnerFrame() string {
	return m.spinner.View()
}

// animating reports whether any row shows the spinner.
func (m *SheetModel) animating() bool {
	for _, r := range m.rows {
		if display.Resolve(r.req) == display.ModeLoading && r.req.LoaderSkeleton != nil && !*r.req.LoaderSkeleton {
			return true
		}
	}
	return false
}

// Init starts the spinner when a row needs it.
func (m *SheetModel) Init() tea.Cmd {
	if m.animating() {
		return m.spinner.Tick
	}
	return nil
}

// SetSurface sets the surface rows mount their anchors on.
func (m *SheetModel) SetSurface(s *surface.Surface) {
	m.surface = s
	for _, r := range m.rows {
		if r.label != nil {
			r.label.SetMeasurer(s)
		}
	}
}

// SetSize records the frame size.
func (m *SheetModel) SetSize(width, height int) {
	m.width, m.height = width, height
}

// Focused returns the index of the focused row, or -1.
func (m *SheetModel) Focused() int { return m.focus }

// Len returns the number of rows.
func (m *SheetModel) Len() int { return len(m.rows) }

// Request returns the presenter request built for row i.
func (m *SheetModel) Request(i int) display.Request { return m.rows[i].req }

// Label returns the truncating label of row i, if its symbol was truncated.
func (m *SheetModel) Label(i int) (*truncate.Label, bool) {
	l := m.rows[i].label
	return l, l != nil
}

// Update handles pointer motion, focus keys and spinner ticks.
func (m *SheetModel) Update(msg tea.Msg) (ChildModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.animating() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMotionMsg:
		mouse := msg.Mouse()
		m.hover = m.rowAt(mouse.Y)
		for i, r := range m.rows {
			// A focused label stays open until focus moves.
			if r.label == nil || i == m.focus {
				continue
			}
			r.label.Hover(mouse.X, mouse.Y)
		}

	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab":
			m.moveFocus(1)
		case "shift+tab":
			m.moveFocus(-1)
		case "esc":
			m.setFocus(-1)
		}
	}
	return m, nil
}

func (m *SheetModel) rowAt(y int) int {
	i := y - m.rowTop
	if i < 0 || i >= len(m.rows) {
		return -1
	}
	return i
}

func (m *SheetModel) moveFocus(dir int) {
	n := len(m.rows)
	if n == 0 {
		return
	}
	start := m.focus
	if start < 0 && dir < 0 {
		start = 0
	}
	for step := 1; step <= n; step++ {
		i := ((start+dir*step)%n + n) % n
		if m.rows[i].focusable(m.presenter) {
			m.setFocus(i)
			return
		}
	}
}

func (m *SheetModel) setFocus(i int) {
	if m.focus == i {
		return
	}
	if m.focus >= 0 {
		if l := m.rows[m.focus].label; l != nil {
			l.Blur()
		}
	}
	m.focus = i
	if i >= 0 {
		if l := m.rows[i].label; l != nil {
			l.Focus()
		}
		m.log.V(2).Info("focus moved", logger.RowKey, m.rows[i].row.ID)
	}
}

// View renders the rows and mounts truncated symbols on the surface.
func (m *SheetModel) View() string {
	var lines []string
	if m.title != "" {
		lines = append(lines, m.style(m.theme.LabelColor).Bold(true).Render(m.title), "")
	}
	m.rowTop = len(lines)

	x0 := runewidth.StringWidth(focusMarker) + 1 + m.labelWidth + columnGap
	for i, r := range m.rows {
		marker := " "
		if i == m.focus {
			marker = m.style(m.theme.FocusColor).Render(focusMarker)
		}
		label := runewidth.FillRight(runewidth.Truncate(r.row.Label, m.labelWidth, truncate.Ellipsis), m.labelWidth)

		layout := m.presenter.Layout(r.req)
		if m.surface != nil {
			y := m.rowTop + i
			for _, a := range layout.Anchors {
				m.surface.Mount(a.ID, surface.Rect{X: x0 + a.Col, Y: y, Width: a.Width, Height: 1}, a.Style)
			}
		}
		lines = append(lines, marker+" "+m.style(m.theme.LabelColor).Render(label)+strings.Repeat(" ", columnGap)+layout.Text)
	}

	lines = append(lines, "", m.statusLine())
	return strings.Join(lines, "\n")
}

// statusLine describes the focused or hovered row: its error message or the
// full text of its truncated symbol.
func (m *SheetModel) statusLine() string {
	status, style := statusHint, m.style(m.theme.StatusColor)

	i := m.focus
	if i < 0 {
		i = m.hover
	}
	if i >= 0 {
		r := m.rows[i]
		if c, ok := m.presenter.Plan(r.req).Find(display.ChunkErrorIcon); ok {
			status, style = c.Tooltip, m.style(m.theme.StatusError)
		} else if r.label != nil {
			status = r.label.AccessibleLabel()
		}
	}
	if m.width > 0 {
		status = ansi.Truncate(status, m.width, truncate.Ellipsis)
	}
	return style.Render(status)
}

func (m *SheetModel) style(c color.Color) lipgloss.Style {
	s := lipgloss.NewStyle()
	if m.noColor || c == nil {
		return s
	}
	return s.Foreground(c)
}

// Overlays returns the open truncation overlays.
func (m *SheetModel) Overlays() []surface.Layer {
	// Focus can land before the label's anchor was ever mounted. View has
	// just mounted it, so measure again.
	if m.focus >= 0 {
		if l := m.rows[m.focus].label; l != nil && !l.IsOpen() {
			l.Focus()
		}
	}
	var layers []surface.Layer
	for _, r := range m.rows {
		if r.label == nil {
			continue
		}
		if layer, ok := r.label.Layer(); ok {
			layers = append(layers, layer)
		}
	}
	return layers
}
