package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vincode/internal/app"
	"vincode/internal/config"
	"vincode/internal/dropzone"
	"vincode/internal/metrics"
	"vincode/internal/system"
	"vincode/internal/workspace"
)

var (
	logLevel string
	fromDir  string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&fromDir, "from", "", "seed the project folder with the files of this directory")
	rootCmd.Flags().String("drop-dir", "", "watch this directory and upload files dropped into it")
	rootCmd.Flags().String("export-dir", ".", "where ctrl+e writes the project archive")
}

var rootCmd = &cobra.Command{
	Use:   "vincode",
	Short: "vincode – in-memory code playground",
	Long:  "vincode is a code playground: a project tree, an editor, a live HTML/CSS/JS preview and a pretend terminal, in the terminal or the browser.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		store, err := newStore(cfg)
		if err != nil {
			return err
		}
		drop, _ := cmd.Flags().GetString("drop-dir")
		if drop == "" {
			drop = cfg.DropDir
		}
		exportDir, _ := cmd.Flags().GetString("export-dir")
		// Default action: launch the TUI
		return app.Start(store, app.Options{DropDir: drop, ExportDir: exportDir})
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads config.yaml and applies the log level. A broken file is
// reported and the defaults are used.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		system.Logger.Warn("config not loaded, using defaults", "err", err)
	}
	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	if !system.SetLevel(level) {
		system.Logger.Warn("unknown log level", "level", level)
	}
	return cfg
}

// newStore builds the workspace store with the configured editor presets
// and seeds it from --from when given.
func newStore(cfg config.Config) (*workspace.Store, error) {
	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}
	var store *workspace.Store
	store = workspace.New(
		workspace.WithLogger(system.Logger),
		workspace.WithSettings(settings),
		workspace.WithObserver(metrics.Observe(func() *workspace.Store { return store })),
	)
	if fromDir != "" {
		w := dropzone.New(fromDir, "project", store)
		n, err := w.Sync()
		if err != nil {
			return nil, fmt.Errorf("seed from %s: %w", fromDir, err)
		}
		system.Logger.Debug("seeded project", "dir", fromDir, "files", n)
	}
	return store, nil
}
