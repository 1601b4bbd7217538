// Package app wires configuration into the shared pieces every binary needs.
package app

import (
	"log/slog"
	"os"

	"github.com/flipword/api/internal/auth"
	"github.com/flipword/api/internal/client"
	"github.com/flipword/api/internal/config"
	"github.com/flipword/api/internal/store"
	"github.com/flipword/api/internal/topics"
)

// NewLogger logs JSON in production and text elsewhere.
func NewLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func NewConnector(cfg *config.Config, logger *slog.Logger) *store.Connector {
	return store.NewConnector(cfg.Store.URL, store.WithLogger(logger))
}

// NewRepository builds the topics repository. The external revalidate
// webhook is appended to extra when REVALIDATE_URL is set.
func NewRepository(cfg *config.Config, provider topics.StoreProvider, logger *slog.Logger, extra ...topics.Revalidator) *topics.Repository {
	revalidators := topics.Revalidators(extra)
	if cfg.RevalidateURL != "" {
		revalidators = append(revalidators, client.NewRevalidateClient(cfg.RevalidateURL, cfg.RevalidateSecret))
	}

	opts := []topics.Option{topics.WithLogger(logger)}
	if cfg.Store.Key != "" {
		opts = append(opts, topics.WithKey(cfg.Store.Key))
	}
	if len(revalidators) > 0 {
		opts = append(opts, topics.WithRevalidator(revalidators))
	}
	return topics.NewRepository(provider, opts...)
}

func Credentials(cfg *config.Config) auth.Credentials {
	return auth.Credentials{
		Username:             cfg.Admin.Username,
		Password:             cfg.Admin.Password,
		PasswordHash:         cfg.Admin.PasswordHash,
		AllowInsecureDefault: cfg.Admin.AllowInsecureDefaultPassword,
	}
}
