package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, []string{"dark", "light"}, cfg.ThemeNames())
	require.NotNil(t, cfg.Presenter.SymbolMaxChars)
	assert.Equal(t, 10, *cfg.Presenter.SymbolMaxChars)
	assert.Equal(t, "60", cfg.Presenter.SkeletonWidth)
	require.NotNil(t, cfg.Truncate.OffsetX)
	assert.Equal(t, -1, *cfg.Truncate.OffsetX)
	assert.Equal(t, ColorValue("81"), cfg.Themes["dark"].SymbolColor)
}

func TestDefaultReturnsIndependentThemes(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	a.Themes["dark"] = ThemeConfig{}
	b, err := Default()
	require.NoError(t, err)
	assert.Equal(t, ColorValue("81"), b.Themes["dark"].SymbolColor)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		path string
		data string
	}{
		{
			name: "yaml",
			path: "config.yaml",
			data: "theme: ocean\npresenter:\n  symbol_max_chars: 4\nthemes:\n  ocean:\n    symbol_color: 33\n",
		},
		{
			name: "toml",
			path: "config.TOML",
			data: "theme = \"ocean\"\n\n[presenter]\nsymbol_max_chars = 4\n\n[themes.ocean]\nsymbol_color = 33\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Decode([]byte(tt.data), tt.path)
			require.NoError(t, err)
			assert.Equal(t, "ocean", cfg.Theme)
			require.NotNil(t, cfg.Presenter.SymbolMaxChars)
			assert.Equal(t, 4, *cfg.Presenter.SymbolMaxChars)
			assert.Equal(t, ColorValue("33"), cfg.Themes["ocean"].SymbolColor)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte("theme: [unclosed"), "c.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode YAML config")

	_, err = Decode([]byte("theme = "), "c.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode TOML config")
}

func TestMerge(t *testing.T) {
	base, err := Default()
	require.NoError(t, err)

	four := 4
	yes := true
	merged := Merge(base, Config{
		Theme:     "light",
		Presenter: PresenterConfig{SymbolMaxChars: &four, EmptyCell: "n/a"},
		Truncate:  TruncateConfig{MatchTriggerWidth: &yes},
		Preview:   PreviewConfig{Spinner: "line"},
		Themes: map[string]ThemeConfig{
			"dark":  {SymbolColor: "#00ff00"},
			"ocean": {ValueColor: "33"},
		},
	})

	assert.Equal(t, "light", merged.Theme)
	assert.Equal(t, 4, *merged.Presenter.SymbolMaxChars)
	assert.Equal(t, "n/a", merged.Presenter.EmptyCell)
	assert.Equal(t, base.Presenter.ErrorMessage, merged.Presenter.ErrorMessage)
	assert.True(t, *merged.Truncate.MatchTriggerWidth)
	assert.Equal(t, -1, *merged.Truncate.OffsetY)
	assert.Equal(t, "line", merged.Preview.Spinner)
	assert.Equal(t, ColorValue("#00ff00"), merged.Themes["dark"].SymbolColor)
	assert.Equal(t, ColorValue("255"), merged.Themes["dark"].ValueColor)
	assert.Equal(t, ColorValue("33"), merged.Themes["ocean"].ValueColor)
	assert.Equal(t, ColorValue("81"), base.Themes["dark"].SymbolColor)
}

func TestActiveTheme(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	th, err := cfg.ActiveTheme("")
	require.NoError(t, err)
	assert.Equal(t, cfg.Themes["dark"], th)

	_, err = cfg.ActiveTheme("neon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: dark, light")
}

func TestColorValueYAML(t *testing.T) {
	out, err := yaml.Marshal(struct {
		A ColorValue `yaml:"a"`
	}{A: "81"})
	require.NoError(t, err)
	assert.Equal(t, "a: 81\n", string(out))

	var back struct {
		A ColorValue `yaml:"a"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("a: \"#ff0000\"\n"), &back))
	assert.Equal(t, ColorValue("#ff0000"), back.A)
}
