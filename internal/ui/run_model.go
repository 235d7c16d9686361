package ui

import (
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/go-logr/logr"
	"golang.org/x/term"

	"github.com/oakwood-commons/dispval/internal/config"
	"github.com/oakwood-commons/dispval/pkg/logger"
	"github.com/oakwood-commons/dispval/pkg/sheet"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// PreviewOptions configures the interactive preview.
type PreviewOptions struct {
	Config    config.Config
	Theme     Theme
	NoColor   bool
	Width     int // 0 detects the terminal size
	Height    int
	StartKeys []string
	Logger    logr.Logger
}

// NewPreview builds the root model previewing s.
func NewPreview(s *sheet.Sheet, opts PreviewOptions) *RootModel {
	theme := opts.Theme

	child := NewSheetModel(s, SheetOptions{
		Presenter:  NewPresenter(opts.Config, theme, opts.NoColor, opts.Logger),
		Defaults:   SheetDefaults(opts.Config),
		Truncate:   TruncateOptions(opts.Config, theme, opts.NoColor),
		Theme:      theme,
		NoColor:    opts.NoColor,
		LabelWidth: intOr(opts.Config.Preview.LabelWidth, 0),
		Spinner:    SpinnerByName(opts.Config.Preview.Spinner),
		Logger:     opts.Logger,
	})

	root := NewRootModel(child)
	root.SetLogger(opts.Logger)
	root.SetHelp(NewHelpModel(theme, opts.NoColor))

	w, h := previewSize(opts.Width, opts.Height)
	root.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return root
}

// RunPreview runs the interactive preview of s until the user quits.
// Extra ProgramOptions (e.g. custom IO) are passed to tea.NewProgram.
func RunPreview(s *sheet.Sheet, opts PreviewOptions, progOpts ...tea.ProgramOption) error {
	root := NewPreview(s, opts)
	if len(opts.StartKeys) > 0 {
		root.Frame()
		ApplyStartupKeys(root, opts.StartKeys)
	}
	if opts.Width > 0 || opts.Height > 0 {
		progOpts = append(progOpts, tea.WithWindowSize(previewSize(opts.Width, opts.Height)))
	}
	opts.Logger.V(1).Info("preview starting", logger.SheetKey, s.Title, "rows", len(s.Rows))
	_, err := tea.NewProgram(root, progOpts...).Run()
	return err
}

// previewSize fills unset dimensions from the terminal, then from defaults.
func previewSize(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			if width <= 0 {
				width = w
			}
			if height <= 0 {
				height = h
			}
		}
	}
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
