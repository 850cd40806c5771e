package app

import (
	"context"
	"fmt"
	"time"

	"github.com/vitrinedev/vitrine/internal/config"
	"github.com/vitrinedev/vitrine/internal/persist"
	"github.com/vitrinedev/vitrine/internal/store"
	"github.com/vitrinedev/vitrine/internal/storeapi"
	"github.com/vitrinedev/vitrine/internal/ui"
)

// Options configure the Vitrine application.
type Options struct {
	ConfigPath   string
	DataPath     string // empty derives the path from the config's data_dir
	RefreshEvery int    // seconds; zero uses the config value
}

// Run boots the Vitrine TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dataPath := opts.DataPath
	if dataPath == "" {
		dataPath = cfg.DatabasePath()
	}
	db, err := persist.Open(dataPath)
	if err != nil {
		return fmt.Errorf("open state database: %w", err)
	}
	defer func() { _ = db.Close() }()

	client, err := storeapi.NewClient(cfg.APIBaseURL)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	st := store.New(client, db)

	// Restore durable local state before the first snapshot is rendered.
	st.InitializeAuth()
	st.LoadComparisonList()

	interval := refreshInterval(cfg, opts)
	StartRefresher(ctx, st, interval)

	return ui.Run(ui.Options{
		Context: ctx,
		Store:   st,
	})
}

func refreshInterval(cfg config.Config, opts Options) time.Duration {
	if opts.RefreshEvery > 0 {
		return time.Duration(opts.RefreshEvery) * time.Second
	}
	if cfg.RefreshSeconds > 0 {
		return time.Duration(cfg.RefreshSeconds) * time.Second
	}
	return defaultRefreshInterval
}
