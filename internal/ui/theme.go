package ui

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/dispval/internal/config"
	"github.com/oakwood-commons/dispval/pkg/display"
)

// Theme defines the colors of the preview and of presented values.
type Theme struct {
	LabelColor     color.Color // Row label column
	ValueColor     color.Color // Value text
	SymbolColor    color.Color // Unit or currency symbol
	IndicatorColor color.Color // "<" / ">" range marker
	PrefixColor    color.Color // Prefix node
	SignColor      color.Color // Sign
	ErrorColor     color.Color // Error icon
	SkeletonColor  color.Color // Loading skeleton bar
	SpinnerColor   color.Color // Loading spinner
	EmptyColor     color.Color // Empty marker
	OverlayFG      color.Color // Truncation overlay text
	OverlayBG      color.Color // Truncation overlay background
	FocusColor     color.Color // Focus marker
	StatusColor    color.Color // Status bar text
	StatusError    color.Color // Status bar error text
}

// fallbackTheme is used for colors a configured theme leaves out.
func fallbackTheme() Theme {
	return Theme{
		LabelColor:     lipgloss.Color("250"),
		ValueColor:     lipgloss.Color("255"),
		SymbolColor:    lipgloss.Color("81"),
		IndicatorColor: lipgloss.Color("214"),
		PrefixColor:    lipgloss.Color("246"),
		SignColor:      lipgloss.Color("203"),
		ErrorColor:     lipgloss.Color("160"),
		SkeletonColor:  lipgloss.Color("238"),
		SpinnerColor:   lipgloss.Color("69"),
		EmptyColor:     lipgloss.Color("240"),
		OverlayFG:      lipgloss.Color("255"),
		OverlayBG:      lipgloss.Color("237"),
		FocusColor:     lipgloss.Color("212"),
		StatusColor:    lipgloss.Color("246"),
		StatusError:    lipgloss.Color("203"),
	}
}

// ThemeFromConfig converts a configured theme, filling gaps from the
// built-in palette.
func ThemeFromConfig(cfg config.ThemeConfig) Theme {
	th := fallbackTheme()
	set := func(val config.ColorValue, dst *color.Color) {
		if v := strings.TrimSpace(string(val)); v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(cfg.LabelColor, &th.LabelColor)
	set(cfg.ValueColor, &th.ValueColor)
	set(cfg.SymbolColor, &th.SymbolColor)
	set(cfg.IndicatorColor, &th.IndicatorColor)
	set(cfg.PrefixColor, &th.PrefixColor)
	set(cfg.SignColor, &th.SignColor)
	set(cfg.ErrorColor, &th.ErrorColor)
	set(cfg.SkeletonColor, &th.SkeletonColor)
	set(cfg.SpinnerColor, &th.SpinnerColor)
	set(cfg.EmptyColor, &th.EmptyColor)
	set(cfg.OverlayFG, &th.OverlayFG)
	set(cfg.OverlayBG, &th.OverlayBG)
	set(cfg.FocusColor, &th.FocusColor)
	set(cfg.StatusColor, &th.StatusColor)
	set(cfg.StatusError, &th.StatusError)
	return th
}

// PresenterStyles builds the presenter's base chunk styles.
func (t Theme) PresenterStyles(noColor bool) display.Styles {
	if noColor {
		return display.NoColorStyles()
	}
	fg := func(c color.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	return display.Styles{
		Container:       lipgloss.NewStyle(),
		Value:           fg(t.ValueColor),
		Symbol:          fg(t.SymbolColor),
		Truncate:        lipgloss.NewStyle(),
		Indicator:       fg(t.IndicatorColor),
		Prefix:          fg(t.PrefixColor),
		Sign:            fg(t.SignColor),
		ErrorIcon:       fg(t.ErrorColor),
		SkeletonWrapper: lipgloss.NewStyle(),
		Skeleton:        fg(t.SkeletonColor),
		Spinner:         fg(t.SpinnerColor),
		EmptyCell:       fg(t.EmptyColor),
	}
}

// BubbleStyle is the frame of the truncation overlay.
func (t Theme) BubbleStyle(noColor bool) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1)
	if noColor {
		return s.Reverse(true)
	}
	return s.Foreground(t.OverlayFG).Background(t.OverlayBG)
}

var (
	loadedThemes = map[string]Theme{}
	currentTheme Theme
	themeSet     bool
)

// InitializeThemes loads every theme defined in cfg and selects cfg.Theme.
func InitializeThemes(cfg config.Config) error {
	if len(cfg.Themes) == 0 {
		return fmt.Errorf("no themes found in configuration")
	}
	loadedThemes = make(map[string]Theme, len(cfg.Themes))
	for name, th := range cfg.Themes {
		loadedThemes[name] = ThemeFromConfig(th)
	}
	if cfg.Theme == "" {
		SetTheme(fallbackTheme())
		return nil
	}
	return SetThemeByName(cfg.Theme)
}

// SetTheme overrides the global theme.
func SetTheme(t Theme) {
	currentTheme = t
	themeSet = true
}

// SetThemeByName selects a loaded theme.
func SetThemeByName(name string) error {
	if th, ok := loadedThemes[name]; ok {
		SetTheme(th)
		return nil
	}
	if len(loadedThemes) == 0 {
		return fmt.Errorf("no themes loaded; call InitializeThemes() before SetThemeByName()")
	}
	return fmt.Errorf("unknown theme %q (available: %s)", name, availableThemeNames())
}

// GetTheme returns a loaded theme by name.
func GetTheme(name string) (Theme, bool) {
	th, ok := loadedThemes[name]
	return th, ok
}

// CurrentTheme returns the selected theme, or the built-in palette.
func CurrentTheme() Theme {
	if !themeSet {
		return fallbackTheme()
	}
	return currentTheme
}

func availableThemeNames() string {
	if len(loadedThemes) == 0 {
		return "(none)"
	}
	names := make([]string, 0, len(loadedThemes))
	for name := range loadedThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
