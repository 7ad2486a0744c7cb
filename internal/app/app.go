package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"vincode/internal/config"
	"vincode/internal/dropzone"
	"vincode/internal/system"
	"vincode/internal/ui"
	"vincode/internal/workspace"
)

// Options configures a TUI session.
type Options struct {
	// DropDir, when set, is watched and its files are uploaded into the
	// project while the TUI runs.
	DropDir   string
	ExportDir string
}

// Start runs the TUI program against store and returns any error.
func Start(store *workspace.Store, opts Options) error {
	// Initialize global bubblezone manager for mouse-aware zones.
	zone.NewGlobal()

	// stderr belongs to the alt screen while the program runs
	if f, err := openLogFile(); err == nil {
		system.Logger.SetOutput(f)
		defer func() {
			system.Logger.SetOutput(os.Stderr)
			_ = f.Close()
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if opts.DropDir != "" {
		w := dropzone.New(opts.DropDir, "", store)
		go func() {
			if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				system.Logger.Error("drop zone stopped", "dir", opts.DropDir, "err", err)
			}
		}()
	}

	var uiOpts []ui.Option
	if opts.ExportDir != "" {
		uiOpts = append(uiOpts, ui.WithExportDir(opts.ExportDir))
	}
	p := ui.New(store, uiOpts...)
	defer p.Close()
	if _, err := tea.NewProgram(p.Model(), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return err
	}
	return nil
}

// openLogFile opens vincode.log in the config directory for appending.
func openLogFile() (*os.File, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "vincode.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
