package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/dispval/internal/config"
	"github.com/oakwood-commons/dispval/internal/ui"
	"github.com/oakwood-commons/dispval/pkg/settings"
)

// configLoader centralizes config loading so callers avoid duplicating merge logic.
type configLoader struct {
	defaultConfig func() (config.Config, error)
}

var cfgLoader = configLoader{defaultConfig: config.Default}

func loadMergedConfig(cfgPath string) (config.Config, error) {
	return cfgLoader.loadMergedConfig(cfgPath)
}

func (l configLoader) loadMergedConfig(cfgPath string) (config.Config, error) {
	load := l.defaultConfig
	if load == nil {
		load = config.Default
	}
	cfg, err := load()
	if err != nil {
		return cfg, fmt.Errorf("load default config: %w", err)
	}
	if cfgPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	user, err := config.Decode(data, cfgPath)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", cfgPath, err)
	}
	return config.Merge(cfg, user), nil
}

// configState is the merged configuration of a run and its selected theme.
type configState struct {
	Config config.Config
	Theme  ui.Theme
}

// loadConfigState loads the merged config and applies the run's theme, or
// the config's when the run names none.
func loadConfigState(run *settings.Run) (configState, error) {
	cfg, err := loadMergedConfig(run.ConfigPath)
	if err != nil {
		return configState{}, err
	}
	if err := ui.InitializeThemes(cfg); err != nil {
		return configState{}, err
	}
	if run.Theme != "" {
		if err := ui.SetThemeByName(run.Theme); err != nil {
			return configState{}, err
		}
	}
	return configState{Config: cfg, Theme: ui.CurrentTheme()}, nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long:  "Print the embedded defaults merged with the user config file.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigView(cmd.OutOrStdout(), settings.FromContextOrDefault(cmd.Context()))
	},
}

var configThemesCmd = &cobra.Command{
	Use:     "themes",
	Aliases: []string{"theme"},
	Short:   "List available themes",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runThemesList(cmd.OutOrStdout(), settings.FromContextOrDefault(cmd.Context()))
	},
}

func runConfigView(w io.Writer, run *settings.Run) error {
	cfg, err := loadMergedConfig(run.ConfigPath)
	if err != nil {
		return err
	}
	switch configOutput {
	case "yaml", "":
		out, err := addConfigComments(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(w, out)
		return nil
	case "json":
		raw, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		var obj any
		if err := yaml.Unmarshal(raw, &obj); err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		data, err := json.MarshalIndent(obj, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	default:
		return fmt.Errorf("invalid output for config: %s (use yaml|json)", configOutput)
	}
}

func runThemesList(w io.Writer, run *settings.Run) error {
	cfg, err := loadMergedConfig(run.ConfigPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Available themes (default: %s):\n", cfg.Theme)
	for _, name := range cfg.ThemeNames() {
		fmt.Fprintf(w, " - %s\n", name)
	}
	return nil
}

// addConfigComments renders cfg as YAML with each key annotated from the
// yamlcomment tag of its field.
func addConfigComments(cfg config.Config) (string, error) {
	var doc yaml.Node
	if err := doc.Encode(cfg); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	annotate(&doc, reflect.TypeOf(cfg))

	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return b.String(), nil
}

func annotate(n *yaml.Node, t reflect.Type) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if n.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		switch t.Kind() {
		case reflect.Map:
			annotate(val, t.Elem())
		case reflect.Struct:
			f, ok := fieldByYAMLName(t, key.Value)
			if !ok {
				continue
			}
			if c := f.Tag.Get("yamlcomment"); c != "" {
				if val.Kind == yaml.ScalarNode {
					key.LineComment = c
				} else {
					key.HeadComment = c
				}
			}
			annotate(val, f.Type)
		}
	}
}

func fieldByYAMLName(t reflect.Type, name string) (reflect.StructField, bool) {
	for i := range t.NumField() {
		f := t.Field(i)
		tag, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if tag == name {
			return f, true
		}
	}
	return reflect.StructField{}, false
}
