package app

import (
	"context"
	"fmt"

	"github.com/five82/lrrview/internal/config"
	"github.com/five82/lrrview/internal/logging"
	"github.com/five82/lrrview/internal/prefs"
	"github.com/five82/lrrview/internal/results"
	"github.com/five82/lrrview/internal/state"
	"github.com/five82/lrrview/internal/ui"
)

// Options configure the lrrview application. Zero values defer to the
// config file, then to built-in defaults.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/lrrview/prefs.toml
	Results    string // overrides config results location
	PageSize   int    // overrides prefs and config page size when > 0
}

// Run boots the lrrview TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	logger, err := logging.NewLogger(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Close() }()

	location := cfg.Results
	if opts.Results != "" {
		location = config.ResolveResults(opts.Results)
	}
	pageSize := resolvePageSize(opts.PageSize, userPrefs.PageSize, cfg.PageSize)

	logger.Info("lrrview starting", "results", location, "page_size", pageSize, "theme", userPrefs.Theme)

	store := &state.Store{}
	StartLoader(ctx, store, results.NewSource(), location, logger)

	uiOpts := ui.Options{
		Context:       ctx,
		Store:         store,
		PageSize:      pageSize,
		SavedPageSize: userPrefs.PageSize,
		ThemeName:     userPrefs.Theme,
		PrefsPath:     opts.PrefsPath,
		Logger:        logger,
	}
	return ui.Run(uiOpts)
}

// resolvePageSize picks the first positive size: flag, saved prefs, config.
func resolvePageSize(flag, saved, configured int) int {
	for _, size := range []int{flag, saved, configured} {
		if size > 0 {
			return size
		}
	}
	return 0
}
