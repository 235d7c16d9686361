package display

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/dispval/pkg/truncate"
)

// SymbolPosition places the symbol relative to the value text.
type SymbolPosition string

const (
	SymbolBefore SymbolPosition = "before"
	SymbolAfter  SymbolPosition = "after"
)

// ErrorPosition places the error indicator when it is shown next to the value.
type ErrorPosition string

const (
	ErrorBefore ErrorPosition = "before"
	ErrorAfter  ErrorPosition = "after"
)

const (
	// DefaultSymbolMaxChars is the symbol truncation budget.
	DefaultSymbolMaxChars = 10
	// DefaultSkeletonWidth is the skeleton width in pixels.
	DefaultSkeletonWidth = 60
	// PixelsPerCell converts pixel widths into terminal cells.
	PixelsPerCell = truncate.PixelsPerCell
)

// Content is an optional chunk body: plain text or a render function that
// produces an already styled node. The zero value is absent.
type Content struct {
	text   string
	render func() string
	set    bool
}

// Text wraps plain text as content. Empty text is still present content.
func Text(s string) Content {
	return Content{text: s, set: true}
}

// Node wraps a render function as content. A nil function is absent.
func Node(render func() string) Content {
	if render == nil {
		return Content{}
	}
	return Content{render: render, set: true}
}

// IsZero reports whether the content is absent.
func (c Content) IsZero() bool { return !c.set }

// Render returns the content body.
func (c Content) Render() string {
	if c.render != nil {
		return c.render()
	}
	return c.text
}

// Width is a skeleton width: a number of pixels or a CSS-like string that is
// passed through verbatim.
type Width struct {
	px  int
	raw string
}

// Px is a numeric width in pixels.
func Px(n int) Width { return Width{px: n} }

// RawWidth is a width given as a string such as "4ch", "12" or "50%".
func RawWidth(s string) Width { return Width{raw: s} }

// ParseWidth reads a configured width: a bare integer is pixels, anything
// else is kept verbatim.
func ParseWidth(s string) Width {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return Px(n)
	}
	return RawWidth(s)
}

// IsZero reports whether no width was given.
func (w Width) IsZero() bool { return w.px == 0 && w.raw == "" }

// String renders the width the way a stylesheet would receive it: numbers
// gain a px unit and strings are returned unchanged.
func (w Width) String() string {
	if w.raw != "" {
		return w.raw
	}
	return strconv.Itoa(w.px) + "px"
}

// Cells converts the width into terminal cells. Unparseable strings fall
// back to the default width.
func (w Width) Cells() int {
	if w.raw == "" {
		return pxToCells(w.px)
	}
	raw := strings.TrimSpace(w.raw)
	switch {
	case strings.HasSuffix(raw, "ch"):
		if n, err := strconv.Atoi(strings.TrimSuffix(raw, "ch")); err == nil {
			return max(n, 0)
		}
	case strings.HasSuffix(raw, "px"):
		if n, err := strconv.Atoi(strings.TrimSuffix(raw, "px")); err == nil {
			return pxToCells(n)
		}
	default:
		if n, err := strconv.Atoi(raw); err == nil {
			return pxToCells(n)
		}
	}
	return pxToCells(DefaultSkeletonWidth)
}

func pxToCells(px int) int {
	if px <= 0 {
		return 0
	}
	return (px + PixelsPerCell - 1) / PixelsPerCell
}

// Classes are per-chunk style overrides. Each one is merged on top of the
// presenter's base style for that chunk, so set properties win.
type Classes struct {
	Container       lipgloss.Style
	Value           lipgloss.Style
	Symbol          lipgloss.Style
	Truncate        lipgloss.Style
	Indicator       lipgloss.Style
	Prefix          lipgloss.Style
	SkeletonWrapper lipgloss.Style
	Skeleton        lipgloss.Style
	EmptyCell       lipgloss.Style
}

// Request is everything needed to present one value. It is rebuilt for
// every render and never stored.
type Request struct {
	// ID names the request's elements (for example "row-3") so a host can
	// mount and measure them. Optional.
	ID string

	Value          *string
	Fallback       *string
	Symbol         *string
	SymbolPosition SymbolPosition

	Sign      string
	Indicator Content
	BelowMin  bool
	AboveMax  bool
	Prefix    Content

	IsError   *bool
	IsLoading *bool
	IsPending *bool

	DisplayErrorAndValue bool
	ErrorPosition        ErrorPosition
	Err                  error
	ErrorMessage         string

	LoaderSkeleton *bool
	SkeletonWidth  Width
	SymbolMaxChars *int
	EmptyCell      Content

	Classes Classes
	Slots   Slots
}

// Str returns a pointer to s.
func Str(s string) *string { return &s }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to n.
func Int(n int) *int { return &n }

func flag(b *bool) bool { return b != nil && *b }

// ViewValue returns the text shown as the value: Value when set, otherwise
// Fallback. ok is false when both are absent.
func (r Request) ViewValue() (string, bool) {
	switch {
	case r.Value != nil:
		return *r.Value, true
	case r.Fallback != nil:
		return *r.Fallback, true
	}
	return "", false
}

// EffectiveIndicator is the explicit Indicator when given, otherwise "<"
// for BelowMin, then ">" for AboveMax, otherwise absent.
func (r Request) EffectiveIndicator() Content {
	switch {
	case !r.Indicator.IsZero():
		return r.Indicator
	case r.BelowMin:
		return Text("<")
	case r.AboveMax:
		return Text(">")
	}
	return Content{}
}

func (r Request) symbolPosition() SymbolPosition {
	if r.SymbolPosition == SymbolAfter {
		return SymbolAfter
	}
	return SymbolBefore
}

func (r Request) errorPosition() ErrorPosition {
	if r.ErrorPosition == ErrorBefore {
		return ErrorBefore
	}
	return ErrorAfter
}

func (r Request) loaderSkeleton() bool {
	return r.LoaderSkeleton == nil || *r.LoaderSkeleton
}
