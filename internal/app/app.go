package app

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/carlot/internal/config"
	"github.com/five82/carlot/internal/prefs"
	"github.com/five82/carlot/internal/state"
	"github.com/five82/carlot/internal/ui"
)

// Options configure the carlot application.
type Options struct {
	Config    config.Config
	PrefsPath string // empty uses default ~/.config/carlot/prefs.toml
}

// Run boots the carlot TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	// The TUI owns the terminal, so log lines go to a file instead.
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	logFile, err := tea.LogToFile(cfg.LogPath(), "carlot")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	userPrefs, _ := prefs.Load(opts.PrefsPath)
	prefsStore := prefs.NewStore(opts.PrefsPath)

	storage, err := OpenStorage(cfg, prefsStore)
	if err != nil {
		return err
	}
	defer func() {
		if err := storage.Close(); err != nil {
			log.Printf("close storage: %v", err)
		}
	}()

	client, err := NewClient(cfg)
	if err != nil {
		return err
	}

	initial := ui.LoadRemote
	if cfg.Simulated {
		initial = ui.LoadSimulated
	}

	log.Printf("carlot starting (storage=%s, source=%s)", cfg.Storage, sourceName(cfg))
	return ui.Run(ui.Options{
		Context:     ctx,
		Store:       state.NewStore(storage),
		Fetcher:     client,
		Query:       Query(cfg),
		ThemeName:   userPrefs.Theme,
		ThemeSaver:  prefsStore,
		InitialLoad: initial,
	})
}

func sourceName(cfg config.Config) string {
	if cfg.Simulated {
		return "simulated"
	}
	return cfg.APIURL
}
