package display

import (
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/dispval/pkg/truncate"
)

// Slot contracts. The presenter only relies on these signatures and never
// inspects which implementation fills a slot.
type (
	// TooltipFunc wraps a trigger node so that message is available on it.
	TooltipFunc func(trigger, message string) string
	// TruncateFunc renders text cut to maxChars.
	TruncateFunc func(text string, maxChars int, style lipgloss.Style) string
	// SkeletonFunc renders a placeholder bar of the given width.
	SkeletonFunc func(width Width, wrapper, bar lipgloss.Style) string
	// SpinnerFunc renders the current spinner frame.
	SpinnerFunc func() string
	// ErrorIconFunc renders the error glyph.
	ErrorIconFunc func() string
	// EmptyCellFunc renders the marker shown when there is no value.
	EmptyCellFunc func(style lipgloss.Style) string
)

// Slots are the injectable visual primitives. Nil fields fall back to the
// presenter's slots and then to DefaultSlots.
type Slots struct {
	Tooltip   TooltipFunc
	Truncate  TruncateFunc
	Skeleton  SkeletonFunc
	Spinner   SpinnerFunc
	ErrorIcon ErrorIconFunc
	EmptyCell EmptyCellFunc
}

// DefaultSlots returns the built-in primitives.
func DefaultSlots() Slots {
	return Slots{
		Tooltip:   DefaultTooltip,
		Truncate:  DefaultTruncate,
		Skeleton:  DefaultSkeleton,
		Spinner:   DefaultSpinner,
		ErrorIcon: DefaultErrorIcon,
		EmptyCell: DefaultEmptyCell,
	}
}

// Or fills the nil slots of s from fallback.
func (s Slots) Or(fallback Slots) Slots {
	if s.Tooltip == nil {
		s.Tooltip = fallback.Tooltip
	}
	if s.Truncate == nil {
		s.Truncate = fallback.Truncate
	}
	if s.Skeleton == nil {
		s.Skeleton = fallback.Skeleton
	}
	if s.Spinner == nil {
		s.Spinner = fallback.Spinner
	}
	if s.ErrorIcon == nil {
		s.ErrorIcon = fallback.ErrorIcon
	}
	if s.EmptyCell == nil {
		s.EmptyCell = fallback.EmptyCell
	}
	return s
}

// DefaultTooltip returns the trigger unchanged. Like a native title
// attribute the message is not drawn inline; it travels on the chunk so a
// host can show it on demand.
func DefaultTooltip(trigger, _ string) string {
	return trigger
}

// DefaultTruncate renders a truncating label.
func DefaultTruncate(text string, maxChars int, style lipgloss.Style) string {
	return truncate.New(text, truncate.WithMaxChars(maxChars), truncate.WithStyle(style)).View()
}

// DefaultSkeleton renders a shaded bar one cell tall.
func DefaultSkeleton(width Width, wrapper, bar lipgloss.Style) string {
	return wrapper.Render(bar.Render(strings.Repeat("░", width.Cells())))
}

// DefaultSpinner renders the first frame of the bubbles dot spinner. Hosts
// that animate replace it with a function returning their live frame.
func DefaultSpinner() string {
	return spinner.Dot.Frames[0]
}

// DefaultErrorIcon renders a warning glyph.
func DefaultErrorIcon() string {
	return "⚠"
}

// DefaultEmptyCell renders a short dash.
func DefaultEmptyCell(style lipgloss.Style) string {
	return style.Render("──")
}
