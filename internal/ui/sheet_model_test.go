package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/dispval/internal/config"
	"github.com/oakwood-commons/dispval/pkg/display"
	"github.com/oakwood-commons/dispval/pkg/sheet"
)

var noStyle = lipgloss.NewStyle()

const previewSheet = `
rows:
  - label: Fee
    variant: percentage
    value: 5
  - label: Token
    variant: token_amount
    value: 12
    symbol: SUPERLONGTOKEN
  - label: Broken
    error: true
    error_message: boom
  - label: Load
    loading: true
    skeleton: false
`

func loadSheet(t *testing.T, src string) *sheet.Sheet {
	t.Helper()
	s, err := sheet.Load([]byte(src))
	require.NoError(t, err)
	return s
}

func defaultConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return cfg
}

func newTestPreview(t *testing.T, src string) (*RootModel, *SheetModel) {
	t.Helper()
	root := NewPreview(loadSheet(t, src), PreviewOptions{
		Config:  defaultConfig(t),
		Theme:   fallbackTheme(),
		NoColor: true,
		Width:   60,
		Height:  12,
		Logger:  logr.Discard(),
	})
	sm, ok := root.Current().(*SheetModel)
	require.True(t, ok)
	root.Frame()
	return root, sm
}

func TestSheetModelView(t *testing.T) {
	root, sm := newTestPreview(t, previewSheet)
	require.Equal(t, 4, sm.Len())

	lines := strings.Split(ansi.Strip(root.Frame()), "\n")
	assert.Equal(t, "  Fee     5.00%", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "  Token   12 SUPERLONGT…", strings.TrimRight(lines[1], " "))
	assert.Equal(t, "  Broken  ⚠", strings.TrimRight(lines[2], " "))
	assert.True(t, strings.HasPrefix(lines[3], "  Load    "))
	assert.Contains(t, ansi.Strip(root.Frame()), statusHint)
}

func TestSheetModelMountsTruncatedSymbol(t *testing.T) {
	root, sm := newTestPreview(t, previewSheet)

	label, ok := sm.Label(1)
	require.True(t, ok)
	assert.Equal(t, "SUPERLONGTOKEN", label.Text())
	assert.Equal(t, "row-2/symbol", label.ID())

	_, ok = sm.Label(0)
	assert.False(t, ok)

	rect, _, err := root.Surface().Measure("row-2/symbol")
	require.NoError(t, err)
	// marker, space, 6 label cells, 2 gap cells, "12", symbol margin
	assert.Equal(t, 13, rect.X)
	assert.Equal(t, 1, rect.Y)
	assert.Equal(t, 11, rect.Width)
}

func TestSheetModelFocusCycle(t *testing.T) {
	root, sm := newTestPreview(t, previewSheet)
	tab := tea.KeyPressMsg{Code: tea.KeyTab}
	backTab := tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}

	assert.Equal(t, -1, sm.Focused())

	root.Update(tab)
	assert.Equal(t, 1, sm.Focused(), "first focusable row is the truncated symbol")
	label, _ := sm.Label(1)
	assert.True(t, label.IsOpen())

	root.Update(tab)
	assert.Equal(t, 2, sm.Focused(), "error rows take focus")
	assert.False(t, label.IsOpen())

	root.Update(tab)
	assert.Equal(t, 1, sm.Focused(), "focus wraps")

	root.Update(backTab)
	assert.Equal(t, 2, sm.Focused())

	root.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, -1, sm.Focused())
}

func TestSheetModelFocusShowsOverlay(t *testing.T) {
	root, sm := newTestPreview(t, previewSheet)

	root.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	require.Len(t, sm.Overlays(), 1)

	lines := strings.Split(ansi.Strip(root.Frame()), "\n")
	require.Len(t, lines, 12, "overlays never grow the frame")
	assert.Equal(t, "  Fee     5.00%", strings.TrimRight(lines[0], " "), "rows above the focused one stay visible")
	assert.Equal(t, "› Token   12  SUPERLONGTOKEN", strings.TrimRight(lines[1], " "), "overlay covers the focused symbol")
	assert.Equal(t, "  Broken  ⚠", strings.TrimRight(lines[2], " "))
	assert.Equal(t, "SUPERLONGTOKEN", strings.TrimSpace(lines[5]), "status line carries the full symbol")
}

func TestSheetModelFocusBeforeFirstFrame(t *testing.T) {
	root := NewPreview(loadSheet(t, previewSheet), PreviewOptions{
		Config:  defaultConfig(t),
		Theme:   fallbackTheme(),
		NoColor: true,
		Width:   60,
		Height:  12,
		Logger:  logr.Discard(),
	})
	sm, ok := root.Current().(*SheetModel)
	require.True(t, ok)

	root.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	require.Equal(t, 1, sm.Focused())
	label, _ := sm.Label(1)
	assert.False(t, label.IsOpen(), "nothing mounted yet")

	lines := strings.Split(ansi.Strip(root.Frame()), "\n")
	assert.True(t, label.IsOpen(), "focused label measures once its anchor is mounted")
	assert.Contains(t, lines[1], " SUPERLONGTOKEN ")
}

func TestSheetModelStatusShowsErrorMessage(t *testing.T) {
	root, _ := newTestPreview(t, previewSheet)

	root.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	root.Update(tea.KeyPressMsg{Code: tea.KeyTab})

	assert.Contains(t, ansi.Strip(root.Frame()), "boom")
}

func TestSheetModelHover(t *testing.T) {
	root, sm := newTestPreview(t, previewSheet)
	label, _ := sm.Label(1)

	root.Update(tea.MouseMotionMsg{X: 14, Y: 1})
	assert.True(t, label.IsOpen())

	root.Update(tea.MouseMotionMsg{X: 2, Y: 1})
	assert.False(t, label.IsOpen())

	root.Update(tea.MouseMotionMsg{X: 2, Y: 2})
	assert.Contains(t, ansi.Strip(root.Frame()), "boom", "hovering an error row shows its message")
}

func TestSheetModelSpinner(t *testing.T) {
	_, sm := newTestPreview(t, previewSheet)
	assert.NotNil(t, sm.Init(), "spinner rows tick")

	_, still := newTestPreview(t, "rows:\n  - label: Fee\n    value: 1\n")
	assert.Nil(t, still.Init())
}

func TestSheetModelRowErrors(t *testing.T) {
	s := &sheet.Sheet{Rows: []sheet.Row{{ID: "row-1", Label: "Bad", Value: sheet.Num("abc")}}}
	sm := NewSheetModel(s, SheetOptions{Presenter: NewPresenter(defaultConfig(t), fallbackTheme(), true, logr.Discard())})

	req := sm.Request(0)
	assert.Equal(t, display.ModeErrorOnly, display.Resolve(req))
	require.Error(t, req.Err)
	assert.Contains(t, req.Err.Error(), "parse number")
}

func TestSheetModelTitleAndLabelWidth(t *testing.T) {
	s := &sheet.Sheet{Title: "Balances", Rows: []sheet.Row{{ID: "a", Label: "Very long label", Value: sheet.Num("1")}}}
	sm := NewSheetModel(s, SheetOptions{LabelWidth: 4, NoColor: true})

	lines := strings.Split(ansi.Strip(sm.View()), "\n")
	assert.Equal(t, "Balances", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "  Ver…  1", lines[2])
}
