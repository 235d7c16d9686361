package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/dispval/internal/config"
	"github.com/oakwood-commons/dispval/internal/formatter"
	"github.com/oakwood-commons/dispval/internal/limiter"
	"github.com/oakwood-commons/dispval/internal/ui"
	"github.com/oakwood-commons/dispval/pkg/logger"
	"github.com/oakwood-commons/dispval/pkg/settings"
	"github.com/oakwood-commons/dispval/pkg/sheet"
)

var (
	configFile string
	themeName  string
	noColor    bool
	verbosity  int
	logFile    string

	variantName    string
	outWidth       int
	outHeight      int
	startKeys      []string
	renderSnapshot bool
	renderOutput   string
	rowLimits      limiter.Config
	configOutput   string
)

var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName,
	Short: "Present numeric values as display strings",
	Long: settings.CliBinaryName + ` renders value sheets: rows of numbers with units, signs,
range indicators, loading and error states, the way a dashboard cell shows them.

A sheet is YAML, JSON, NDJSON or TOML. Long unit symbols are truncated; the
interactive preview shows them in full on hover or Tab focus.`,
	Example: "\n  dispval render sheet.yaml\n  dispval render - --variant percentage < sheet.json\n  dispval render sheet.yaml -o tree\n  dispval preview sheet.yaml --press '<Tab>'\n  dispval config -o json\n",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		run := settings.NewCliParams()
		run.MinLogLevel = int8(-verbosity)
		run.LogFile = logFile
		run.ConfigPath = resolveConfigPath(configFile)
		run.NoColor = noColor || os.Getenv("NO_COLOR") != ""
		run.Width = outWidth
		if cmd.Flags().Changed("theme") {
			run.Theme = themeName
		} else {
			run.Theme = ""
		}

		opts := logger.Options{Level: run.MinLogLevel}
		switch {
		case run.LogFile != "":
			f, err := logger.OpenLogFile(run.LogFile)
			if err != nil {
				return err
			}
			logCloser = f
			opts.Output = f
		case cmd.Name() == "preview":
			// The preview owns the terminal.
			opts.Output = io.Discard
		}
		lgr := logger.Setup(opts)
		lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())

		cmd.SetContext(settings.IntoContext(logger.WithLogger(context.Background(), lgr), run))
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logCloser != nil {
			_ = logCloser.Close()
			logCloser = nil
		}
	},
}

var renderCmd = &cobra.Command{
	Use:   "render [file|-]",
	Short: "Print every row of a value sheet",
	Long:  "Print every row of a value sheet. Reads stdin when the file is - or omitted.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd.Context(), cmd.OutOrStdout(), sheetPath(args))
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview [file|-]",
	Short: "Browse a value sheet interactively",
	Long: `Browse a value sheet interactively. Hover a truncated symbol or move focus
onto it with Tab to see it in full. Press ? for help and q to quit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview(cmd.Context(), sheetPath(args))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print " + settings.CliBinaryName + " version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), cliVersionString())
		return nil
	},
}

func runRender(ctx context.Context, w io.Writer, path string) error {
	run := settings.FromContextOrDefault(ctx)
	lgr := logger.FromContext(ctx)

	state, err := loadConfigState(run)
	if err != nil {
		return err
	}
	if err := applyVariantFlag(&state.Config); err != nil {
		return err
	}
	s, err := loadSheet(path)
	if err != nil {
		return err
	}
	lgr.V(1).Info("sheet loaded", logger.SheetKey, s.Title, "format", string(s.Format), "rows", len(s.Rows))

	width := run.Width
	if width <= 0 {
		width, _ = detectTerminalSize()
	}

	if renderSnapshot {
		out := ui.RenderSnapshot(s, ui.SnapshotConfig{PreviewOptions: ui.PreviewOptions{
			Config:    state.Config,
			Theme:     state.Theme,
			NoColor:   run.NoColor,
			Width:     width,
			Height:    outHeight,
			StartKeys: startKeys,
			Logger:    *lgr,
		}})
		fmt.Fprintln(w, out)
		return nil
	}

	p := ui.NewPresenter(state.Config, state.Theme, run.NoColor, *lgr)
	if renderOutput != "" && renderOutput != "text" {
		if err := formatter.ValidateOutput(renderOutput); err != nil {
			return err
		}
		out, err := formatter.Format(formatter.BuildPlan(s, p, ui.SheetDefaults(state.Config)), renderOutput, formatter.TreeOptions{})
		if err != nil {
			return err
		}
		fmt.Fprint(w, out)
		return nil
	}
	renderSheet(w, s, p, ui.SheetDefaults(state.Config), width, *lgr)
	return nil
}

func runPreview(ctx context.Context, path string) error {
	run := settings.FromContextOrDefault(ctx)
	lgr := logger.FromContext(ctx)

	state, err := loadConfigState(run)
	if err != nil {
		return err
	}
	if err := applyVariantFlag(&state.Config); err != nil {
		return err
	}
	s, err := loadSheet(path)
	if err != nil {
		return err
	}

	progOpts, cleanup := getProgramOptions()
	defer cleanup()
	return ui.RunPreview(s, ui.PreviewOptions{
		Config:    state.Config,
		Theme:     state.Theme,
		NoColor:   run.NoColor,
		Width:     run.Width,
		Height:    outHeight,
		StartKeys: startKeys,
		Logger:    *lgr,
	}, progOpts...)
}

// loadSheet reads the sheet at path and keeps the rows selected by
// --limit, --offset and --tail.
func loadSheet(path string) (*sheet.Sheet, error) {
	if err := rowLimits.Validate(); err != nil {
		return nil, err
	}
	s, err := sheet.LoadFile(path)
	if err != nil {
		return nil, err
	}
	s.Rows = limiter.Apply(rowLimits, s.Rows)
	return s, nil
}

func sheetPath(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

// applyVariantFlag makes --variant the default variant of rows that set none.
func applyVariantFlag(cfg *config.Config) error {
	if variantName == "" {
		return nil
	}
	if err := (sheet.Row{Variant: variantName}).Validate(); err != nil {
		return fmt.Errorf("--variant: %w", err)
	}
	cfg.Presenter.Variant = variantName
	return nil
}

// cliVersionString builds the version line for `version` and --version.
func cliVersionString() string {
	v := settings.VersionInformation
	return fmt.Sprintf("%s %s (commit %s, built %s, %s)", settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime, runtime.Version())
}

// resolveConfigPath returns explicit when set, otherwise the XDG path
// ($XDG_CONFIG_HOME/dispval/config.yaml, then config.toml) or the same under
// ~/.config when present.
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	for _, name := range []string{"config.yaml", "config.toml"} {
		candidate := filepath.Join(dir, settings.CliBinaryName, name)
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
	}
	return ""
}

func init() { //nolint:gochecknoinits
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "path to a YAML or TOML config file")
	pf.StringVar(&themeName, "theme", "", "theme name (default from config; see 'dispval config themes')")
	pf.BoolVar(&noColor, "no-color", false, "disable color output")
	pf.IntVarP(&verbosity, "log-level", "v", 0, "log verbosity: 0 info, 1 debug, 2 trace")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	for _, c := range []*cobra.Command{renderCmd, previewCmd} {
		c.Flags().StringVar(&variantName, "variant", "", "default variant for rows without one: value|percentage|token_value|token_amount")
		c.Flags().IntVar(&outWidth, "width", 0, "output width in columns (0 detects the terminal)")
		c.Flags().IntVar(&outHeight, "height", 0, "output height in rows (preview and --snapshot)")
		c.Flags().IntVar(&rowLimits.Limit, "limit", 0, "show only the first N rows (0 = all)")
		c.Flags().IntVar(&rowLimits.Offset, "offset", 0, "skip the first N rows")
		c.Flags().IntVar(&rowLimits.Tail, "tail", 0, "show only the last N rows; excludes --limit")
		c.Flags().StringArrayVar(&startKeys, "press", nil, "simulate keys on startup, e.g. --press '<Tab>' or --press '<S-Tab>'")
	}
	renderCmd.Flags().BoolVar(&renderSnapshot, "snapshot", false, "render one frame of the interactive preview and exit")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "text", "output format: text|tree|yaml|json")

	configCmd.PersistentFlags().StringVarP(&configOutput, "output", "o", "yaml", "output format: yaml|json")
	configCmd.AddCommand(configThemesCmd)

	rootCmd.Version = cliVersionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.AddCommand(renderCmd, previewCmd, configCmd, versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
