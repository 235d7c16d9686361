package display

import "charm.land/lipgloss/v2"

// MergeStyles layers overrides onto base in order. Properties set on a later
// style win over earlier ones; unset properties fall through. Margins and
// padding follow the same rule even though lipgloss inheritance skips them.
func MergeStyles(base lipgloss.Style, overrides ...lipgloss.Style) lipgloss.Style {
	merged := base
	for _, o := range overrides {
		next := o.Inherit(merged)
		merged = keepBox(next, o, merged)
	}
	return merged
}

func keepBox(dst, override, prev lipgloss.Style) lipgloss.Style {
	if override.GetMarginTop() == 0 {
		dst = dst.MarginTop(prev.GetMarginTop())
	}
	if override.GetMarginRight() == 0 {
		dst = dst.MarginRight(prev.GetMarginRight())
	}
	if override.GetMarginBottom() == 0 {
		dst = dst.MarginBottom(prev.GetMarginBottom())
	}
	if override.GetMarginLeft() == 0 {
		dst = dst.MarginLeft(prev.GetMarginLeft())
	}
	if override.GetPaddingTop() == 0 {
		dst = dst.PaddingTop(prev.GetPaddingTop())
	}
	if override.GetPaddingRight() == 0 {
		dst = dst.PaddingRight(prev.GetPaddingRight())
	}
	if override.GetPaddingBottom() == 0 {
		dst = dst.PaddingBottom(prev.GetPaddingBottom())
	}
	if override.GetPaddingLeft() == 0 {
		dst = dst.PaddingLeft(prev.GetPaddingLeft())
	}
	return dst
}

// Styles are the base styles of every chunk. Hosts usually build them from
// a theme; request Classes are merged on top.
type Styles struct {
	Container       lipgloss.Style
	Value           lipgloss.Style
	Symbol          lipgloss.Style
	Truncate        lipgloss.Style
	Indicator       lipgloss.Style
	Prefix          lipgloss.Style
	Sign            lipgloss.Style
	ErrorIcon       lipgloss.Style
	SkeletonWrapper lipgloss.Style
	Skeleton        lipgloss.Style
	Spinner         lipgloss.Style
	EmptyCell       lipgloss.Style
}

// DefaultStyles are colorless base styles apart from the error icon,
// skeleton, and empty marker, which need contrast to read at all.
func DefaultStyles() Styles {
	return Styles{
		Container:       lipgloss.NewStyle(),
		Value:           lipgloss.NewStyle(),
		Symbol:          lipgloss.NewStyle(),
		Truncate:        lipgloss.NewStyle(),
		Indicator:       lipgloss.NewStyle(),
		Prefix:          lipgloss.NewStyle(),
		Sign:            lipgloss.NewStyle(),
		ErrorIcon:       lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		SkeletonWrapper: lipgloss.NewStyle(),
		Skeleton:        lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Spinner:         lipgloss.NewStyle(),
		EmptyCell:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// NoColorStyles are plain base styles for colorless output.
func NoColorStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Container:       plain,
		Value:           plain,
		Symbol:          plain,
		Truncate:        plain,
		Indicator:       plain,
		Prefix:          plain,
		Sign:            plain,
		ErrorIcon:       plain,
		SkeletonWrapper: plain,
		Skeleton:        plain,
		Spinner:         plain,
		EmptyCell:       plain,
	}
}
