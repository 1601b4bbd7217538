package main

import (
	"context"
	"fmt"

	"github.com/flipword/api/internal/app"
	"github.com/flipword/api/internal/config"
	"github.com/flipword/api/internal/store"
	"github.com/flipword/api/internal/topics"
)

// openRepository connects to the configured store. Unlike the server it
// refuses to run without one, and callers use the strict Read and Write
// operations so a store failure fails the command.
func openRepository(ctx context.Context) (*topics.Repository, func(), error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Store.URL == "" {
		return nil, nil, fmt.Errorf("STORE_URL (or REDIS_URL) is not set")
	}

	logger := app.NewLogger(cfg)
	s, err := store.Dial(ctx, cfg.Store.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to store: %w", err)
	}

	repo := app.NewRepository(cfg, staticProvider{s}, logger)
	return repo, func() { s.Close() }, nil
}

type staticProvider struct {
	s store.Store
}

func (p staticProvider) Store(context.Context) store.Store {
	return p.s
}
