// Package config defines the dispval configuration file and its embedded
// defaults.
package config

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the complete configuration.
type Config struct {
	Theme     string                 `yaml:"theme" yamlcomment:"Active theme (dark|light or a name under themes)"`
	Presenter PresenterConfig        `yaml:"presenter" yamlcomment:"Value presentation defaults"`
	Truncate  TruncateConfig         `yaml:"truncate" yamlcomment:"Truncated symbol overlay"`
	Preview   PreviewConfig          `yaml:"preview" yamlcomment:"Interactive preview"`
	Themes    map[string]ThemeConfig `yaml:"themes" yamlcomment:"Theme definitions"`
}

// PresenterConfig holds presenter-wide defaults. Unset fields keep the
// built-in values.
type PresenterConfig struct {
	SymbolMaxChars *int   `yaml:"symbol_max_chars,omitempty" yamlcomment:"Symbols longer than this are truncated"`
	SkeletonWidth  string `yaml:"skeleton_width,omitempty" yamlcomment:"Loading skeleton width (pixels, or e.g. 4ch)"`
	ErrorMessage   string `yaml:"error_message,omitempty" yamlcomment:"Message used when an error carries none"`
	ErrorIcon      string `yaml:"error_icon,omitempty" yamlcomment:"Error glyph"`
	EmptyCell      string `yaml:"empty_cell,omitempty" yamlcomment:"Marker shown when there is no value"`
	Variant        string `yaml:"variant,omitempty" yamlcomment:"Default row variant (value|percentage|token_value|token_amount)"`
	Decimals       *int32 `yaml:"decimals,omitempty" yamlcomment:"Default decimal places for numeric values"`
}

// TruncateConfig configures truncating labels.
type TruncateConfig struct {
	OffsetX           *int  `yaml:"offset_x,omitempty" yamlcomment:"Overlay x offset in pixels"`
	OffsetY           *int  `yaml:"offset_y,omitempty" yamlcomment:"Overlay y offset in pixels"`
	MatchTriggerWidth *bool `yaml:"match_trigger_width,omitempty" yamlcomment:"Size the overlay to the truncated text"`
}

// PreviewConfig configures the interactive preview.
type PreviewConfig struct {
	LabelWidth *int   `yaml:"label_width,omitempty" yamlcomment:"Label column width (0 sizes to the longest label)"`
	Spinner    string `yaml:"spinner,omitempty" yamlcomment:"Spinner style (dot|line|minidot|points|pulse|meter)"`
}

// ColorValue stores a color token (number or name) and marshals numerics as YAML ints.
type ColorValue string

func (c ColorValue) MarshalYAML() (interface{}, error) {
	if c == "" {
		return "", nil
	}
	s := string(c)
	if _, err := strconv.Atoi(s); err == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: s}, nil
	}
	return s, nil
}

func (c *ColorValue) UnmarshalYAML(value *yaml.Node) error {
	if value == nil {
		*c = ""
		return nil
	}
	*c = ColorValue(value.Value)
	return nil
}

// ThemeConfig is a YAML-friendly theme (colors accept ints or strings).
type ThemeConfig struct {
	LabelColor     ColorValue `yaml:"label_color,omitempty" yamlcomment:"Row label color"`
	ValueColor     ColorValue `yaml:"value_color,omitempty" yamlcomment:"Value text color"`
	SymbolColor    ColorValue `yaml:"symbol_color,omitempty" yamlcomment:"Symbol color"`
	IndicatorColor ColorValue `yaml:"indicator_color,omitempty" yamlcomment:"Range indicator color"`
	PrefixColor    ColorValue `yaml:"prefix_color,omitempty" yamlcomment:"Prefix color"`
	SignColor      ColorValue `yaml:"sign_color,omitempty" yamlcomment:"Sign color"`
	ErrorColor     ColorValue `yaml:"error_color,omitempty" yamlcomment:"Error icon color"`
	SkeletonColor  ColorValue `yaml:"skeleton_color,omitempty" yamlcomment:"Loading skeleton color"`
	SpinnerColor   ColorValue `yaml:"spinner_color,omitempty" yamlcomment:"Spinner color"`
	EmptyColor     ColorValue `yaml:"empty_color,omitempty" yamlcomment:"Empty marker color"`
	OverlayFG      ColorValue `yaml:"overlay_fg,omitempty" yamlcomment:"Overlay text color"`
	OverlayBG      ColorValue `yaml:"overlay_bg,omitempty" yamlcomment:"Overlay background"`
	FocusColor     ColorValue `yaml:"focus_color,omitempty" yamlcomment:"Focused row marker color"`
	StatusColor    ColorValue `yaml:"status_color,omitempty" yamlcomment:"Status bar color"`
	StatusError    ColorValue `yaml:"status_error,omitempty" yamlcomment:"Status error color"`
}
