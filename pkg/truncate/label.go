// Package truncate renders text cut to a character budget and, while the
// label is hovered or focused, a floating overlay with the full text.
package truncate

import (
	"unicode/utf8"

	"charm.land/lipgloss/v2"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/dispval/pkg/surface"
)

const (
	// DefaultMaxChars is the character budget used when none is given.
	DefaultMaxChars = 12
	// Ellipsis is appended to truncated text.
	Ellipsis = "…"

	// DefaultOffsetX and DefaultOffsetY shift the overlay from the trigger.
	DefaultOffsetX = -1
	DefaultOffsetY = -1
)

// Measurer reads the on-frame rectangle and resolved style of a rendered
// element. *surface.Surface implements it.
type Measurer interface {
	Measure(id string) (surface.Rect, lipgloss.Style, error)
}

// Label is a truncating text label. The zero value is not usable; create
// labels with New.
type Label struct {
	id                string
	text              string
	maxChars          int
	style             lipgloss.Style
	bubbleStyle       lipgloss.Style
	matchTriggerWidth bool
	offsetX           int
	offsetY           int
	measurer          Measurer
	log               logr.Logger

	state State
}

// Option configures a Label.
type Option func(*Label)

// WithID sets the element id the label is mounted and measured under.
func WithID(id string) Option {
	return func(l *Label) { l.id = id }
}

// WithMaxChars sets the character budget.
func WithMaxChars(n int) Option {
	return func(l *Label) { l.maxChars = n }
}

// WithStyle sets the style the label itself is rendered with.
func WithStyle(s lipgloss.Style) Option {
	return func(l *Label) { l.style = s }
}

// WithBubbleStyle sets the style of the overlay panel.
func WithBubbleStyle(s lipgloss.Style) Option {
	return func(l *Label) { l.bubbleStyle = s }
}

// WithMatchTriggerWidth makes the overlay as wide as the measured label.
func WithMatchTriggerWidth(match bool) Option {
	return func(l *Label) { l.matchTriggerWidth = match }
}

// WithOffset shifts the overlay relative to the label origin.
func WithOffset(x, y int) Option {
	return func(l *Label) {
		l.offsetX = x
		l.offsetY = y
	}
}

// WithMeasurer sets the measurer used by Hover and Focus.
func WithMeasurer(m Measurer) Option {
	return func(l *Label) { l.measurer = m }
}

// WithLogger sets the logger for degraded measurement paths.
func WithLogger(log logr.Logger) Option {
	return func(l *Label) { l.log = log }
}

// DefaultBubbleStyle is the overlay panel style used when none is given.
func DefaultBubbleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color("237")).
		Padding(0, 1)
}

// New creates a label for text.
func New(text string, opts ...Option) *Label {
	l := &Label{
		text:        text,
		maxChars:    DefaultMaxChars,
		style:       lipgloss.NewStyle(),
		bubbleStyle: DefaultBubbleStyle(),
		offsetX:     DefaultOffsetX,
		offsetY:     DefaultOffsetY,
		log:         logr.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetMeasurer replaces the measurer used by Hover and Focus.
func (l *Label) SetMeasurer(m Measurer) { l.measurer = m }

// ID returns the element id of the label.
func (l *Label) ID() string { return l.id }

// Text returns the full, untruncated text.
func (l *Label) Text() string { return l.text }

// MaxChars returns the character budget.
func (l *Label) MaxChars() int { return l.maxChars }

// Style returns the style the label is rendered with.
func (l *Label) Style() lipgloss.Style { return l.style }

// IsTruncated reports whether the text is longer than the budget.
func (l *Label) IsTruncated() bool {
	return utf8.RuneCountInString(l.text) > l.maxChars
}

// Display returns the text as shown in the label: the first MaxChars
// characters followed by an ellipsis when truncated, the full text otherwise.
func (l *Label) Display() string {
	if !l.IsTruncated() {
		return l.text
	}
	runes := []rune(l.text)
	return string(runes[:max(l.maxChars, 0)]) + Ellipsis
}

// View renders the label.
func (l *Label) View() string {
	return l.style.Render(l.Display())
}

// AccessibleLabel is the full text when the label is truncated and empty
// otherwise.
func (l *Label) AccessibleLabel() string {
	if l.IsTruncated() {
		return l.text
	}
	return ""
}

// Focusable reports whether the label takes part in keyboard focus order.
// Only truncated labels do.
func (l *Label) Focusable() bool {
	return l.IsTruncated()
}

// TabIndex mirrors Focusable as a tab index: 0 when focusable, -1 otherwise.
func (l *Label) TabIndex() int {
	if l.Focusable() {
		return 0
	}
	return -1
}

// State returns a copy of the interaction state.
func (l *Label) State() State {
	return l.state
}

// IsOpen reports whether the overlay is showing.
func (l *Label) IsOpen() bool {
	return l.state.Open
}

// Enter is the open-on-interaction transition. For a truncated label it
// measures the trigger through m, stores the rectangle and typography, and
// opens the overlay. When the trigger cannot be measured the overlay closes,
// even if an earlier measurement had opened it. Enter reports whether the
// overlay is open afterwards.
func (l *Label) Enter(m Measurer) bool {
	if !l.IsTruncated() {
		return false
	}
	if m == nil {
		l.log.V(1).Info("truncate: no measurer, overlay stays closed", "id", l.id)
		l.state.Open = false
		return false
	}
	rect, style, err := m.Measure(l.id)
	if err != nil {
		l.log.V(1).Info("truncate: measurement failed, overlay stays closed", "id", l.id, "error", err.Error())
		l.state.Open = false
		return false
	}
	ts := Snapshot(style)
	l.state = State{
		Open:      true,
		Rect:      &rect,
		TextStyle: &ts,
	}
	return true
}

// Leave is the close-on-release transition. The last measurement is kept but
// has no effect until the next Enter.
func (l *Label) Leave() {
	l.state.Open = false
}
