package ui

import (
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/lipgloss/v2"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/dispval/internal/config"
	"github.com/oakwood-commons/dispval/pkg/display"
	"github.com/oakwood-commons/dispval/pkg/sheet"
	"github.com/oakwood-commons/dispval/pkg/truncate"
)

// NewPresenter builds a presenter from configuration, styled by theme.
func NewPresenter(cfg config.Config, theme Theme, noColor bool, log logr.Logger) *display.Presenter {
	d := display.BuiltinDefaults()
	if n := cfg.Presenter.SymbolMaxChars; n != nil {
		d.SymbolMaxChars = *n
	}
	if w := display.ParseWidth(cfg.Presenter.SkeletonWidth); !w.IsZero() {
		d.SkeletonWidth = w
	}
	if msg := strings.TrimSpace(cfg.Presenter.ErrorMessage); msg != "" {
		d.ErrorMessage = msg
	}

	var slots display.Slots
	if icon := cfg.Presenter.ErrorIcon; icon != "" {
		slots.ErrorIcon = func() string { return icon }
	}
	if marker := cfg.Presenter.EmptyCell; marker != "" {
		slots.EmptyCell = func(s lipgloss.Style) string { return s.Render(marker) }
	}

	return display.NewPresenter(
		display.WithStyles(theme.PresenterStyles(noColor)),
		display.WithSlots(slots),
		display.WithDefaults(d),
		display.WithLogger(log),
	)
}

// SheetDefaults returns the row defaults configured for sheets.
func SheetDefaults(cfg config.Config) sheet.Defaults {
	return sheet.Defaults{Variant: cfg.Presenter.Variant, Decimals: cfg.Presenter.Decimals}
}

// TruncateOptions returns the label options configured for overlays.
func TruncateOptions(cfg config.Config, theme Theme, noColor bool) []truncate.Option {
	opts := []truncate.Option{truncate.WithBubbleStyle(theme.BubbleStyle(noColor))}
	if cfg.Truncate.OffsetX != nil || cfg.Truncate.OffsetY != nil {
		x, y := truncate.DefaultOffsetX, truncate.DefaultOffsetY
		if cfg.Truncate.OffsetX != nil {
			x = *cfg.Truncate.OffsetX
		}
		if cfg.Truncate.OffsetY != nil {
			y = *cfg.Truncate.OffsetY
		}
		opts = append(opts, truncate.WithOffset(x, y))
	}
	if cfg.Truncate.MatchTriggerWidth != nil {
		opts = append(opts, truncate.WithMatchTriggerWidth(*cfg.Truncate.MatchTriggerWidth))
	}
	return opts
}

var spinners = map[string]spinner.Spinner{
	"dot":     spinner.Dot,
	"line":    spinner.Line,
	"minidot": spinner.MiniDot,
	"points":  spinner.Points,
	"pulse":   spinner.Pulse,
	"meter":   spinner.Meter,
}

// SpinnerByName returns a bubbles spinner, defaulting to the dot spinner.
func SpinnerByName(name string) spinner.Spinner {
	if s, ok := spinners[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s
	}
	return spinner.Dot
}
