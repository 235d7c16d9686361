package truncate

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/dispval/pkg/surface"
)

// TextStyle is a snapshot of the typography a trigger was rendered with.
// The overlay reuses it so the floating copy reads exactly like the label.
type TextStyle struct {
	Bold          bool
	Italic        bool
	Faint         bool
	Underline     bool
	Strikethrough bool
	Reverse       bool
	Foreground    color.Color
	Background    color.Color
	Transform     func(string) string
}

// Snapshot copies the typography properties of a resolved style.
// Layout properties (margins, padding, borders, width) are not copied.
func Snapshot(s lipgloss.Style) TextStyle {
	return TextStyle{
		Bold:          s.GetBold(),
		Italic:        s.GetItalic(),
		Faint:         s.GetFaint(),
		Underline:     s.GetUnderline(),
		Strikethrough: s.GetStrikethrough(),
		Reverse:       s.GetReverse(),
		Foreground:    s.GetForeground(),
		Background:    s.GetBackground(),
		Transform:     s.GetTransform(),
	}
}

// Style rebuilds a lipgloss style carrying only the snapshotted typography.
func (t TextStyle) Style() lipgloss.Style {
	s := lipgloss.NewStyle().
		Bold(t.Bold).
		Italic(t.Italic).
		Faint(t.Faint).
		Underline(t.Underline).
		Strikethrough(t.Strikethrough).
		Reverse(t.Reverse)
	if t.Foreground != nil {
		s = s.Foreground(t.Foreground)
	}
	if t.Background != nil {
		s = s.Background(t.Background)
	}
	if t.Transform != nil {
		s = s.Transform(t.Transform)
	}
	return s
}

// State is the transient interaction state of one label. Only Enter and
// Leave change it. When Open is true, Rect and TextStyle hold the
// measurement taken by the Enter call that opened it.
type State struct {
	Open      bool
	Rect      *surface.Rect
	TextStyle *TextStyle
}
