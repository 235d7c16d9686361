package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decode parses a config file body. TOML is chosen by a .toml extension;
// everything else is YAML.
func Decode(data []byte, path string) (Config, error) {
	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("decode TOML config: %w", err)
		}
		var node yaml.Node
		if err := node.Encode(raw); err != nil {
			return cfg, fmt.Errorf("decode TOML config: %w", err)
		}
		if err := node.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("decode TOML config: %w", err)
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode YAML config: %w", err)
	}
	return cfg, nil
}

// Merge layers override onto base. Set fields win; themes merge per color.
func Merge(base, override Config) Config {
	out := base
	if override.Theme != "" {
		out.Theme = override.Theme
	}
	out.Presenter = mergePresenter(base.Presenter, override.Presenter)
	out.Truncate = mergeTruncate(base.Truncate, override.Truncate)
	out.Preview = mergePreview(base.Preview, override.Preview)

	out.Themes = make(map[string]ThemeConfig, len(base.Themes)+len(override.Themes))
	for name, th := range base.Themes {
		out.Themes[name] = th
	}
	for name, th := range override.Themes {
		out.Themes[name] = MergeTheme(out.Themes[name], th)
	}
	return out
}

func mergePresenter(base, override PresenterConfig) PresenterConfig {
	out := base
	if override.SymbolMaxChars != nil {
		out.SymbolMaxChars = override.SymbolMaxChars
	}
	if override.SkeletonWidth != "" {
		out.SkeletonWidth = override.SkeletonWidth
	}
	if override.ErrorMessage != "" {
		out.ErrorMessage = override.ErrorMessage
	}
	if override.ErrorIcon != "" {
		out.ErrorIcon = override.ErrorIcon
	}
	if override.EmptyCell != "" {
		out.EmptyCell = override.EmptyCell
	}
	if override.Variant != "" {
		out.Variant = override.Variant
	}
	if override.Decimals != nil {
		out.Decimals = override.Decimals
	}
	return out
}

func mergeTruncate(base, override TruncateConfig) TruncateConfig {
	out := base
	if override.OffsetX != nil {
		out.OffsetX = override.OffsetX
	}
	if override.OffsetY != nil {
		out.OffsetY = override.OffsetY
	}
	if override.MatchTriggerWidth != nil {
		out.MatchTriggerWidth = override.MatchTriggerWidth
	}
	return out
}

func mergePreview(base, override PreviewConfig) PreviewConfig {
	out := base
	if override.LabelWidth != nil {
		out.LabelWidth = override.LabelWidth
	}
	if override.Spinner != "" {
		out.Spinner = override.Spinner
	}
	return out
}

// MergeTheme layers the set colors of override onto base.
func MergeTheme(base, override ThemeConfig) ThemeConfig {
	out := base
	apply := func(src ColorValue, dst *ColorValue) {
		if src != "" {
			*dst = src
		}
	}
	apply(override.LabelColor, &out.LabelColor)
	apply(override.ValueColor, &out.ValueColor)
	apply(override.SymbolColor, &out.SymbolColor)
	apply(override.IndicatorColor, &out.IndicatorColor)
	apply(override.PrefixColor, &out.PrefixColor)
	apply(override.SignColor, &out.SignColor)
	apply(override.ErrorColor, &out.ErrorColor)
	apply(override.SkeletonColor, &out.SkeletonColor)
	apply(override.SpinnerColor, &out.SpinnerColor)
	apply(override.EmptyColor, &out.EmptyColor)
	apply(override.OverlayFG, &out.OverlayFG)
	apply(override.OverlayBG, &out.OverlayBG)
	apply(override.FocusColor, &out.FocusColor)
	apply(override.StatusColor, &out.StatusColor)
	apply(override.StatusError, &out.StatusError)
	return out
}

// ThemeNames lists the configured themes in order.
func (c Config) ThemeNames() []string {
	names := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ActiveTheme returns the theme selected by name, or by c.Theme when name
// is empty.
func (c Config) ActiveTheme(name string) (ThemeConfig, error) {
	if name == "" {
		name = c.Theme
	}
	th, ok := c.Themes[name]
	if !ok {
		return ThemeConfig{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(c.ThemeNames(), ", "))
	}
	return th, nil
}
