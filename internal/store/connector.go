package store

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"github.com/flipword/api/internal/database"
)

// Dialer opens a Store for a connection URL.
type Dialer func(ctx context.Context, rawURL string) (Store, error)

// Connector owns the process's backing-store connection. It dials at most
// once and remembers the outcome, including "no store available", until
// Reset is called.
type Connector struct {
	url    string
	dial   Dialer
	logger *slog.Logger

	mu     sync.Mutex
	dialed bool
	store  Store
}

type ConnectorOption func(*Connector)

func WithDialer(d Dialer) ConnectorOption {
	return func(c *Connector) { c.dial = d }
}

func WithLogger(logger *slog.Logger) ConnectorOption {
	return func(c *Connector) { c.logger = logger }
}

// NewConnector does not dial; the first Store call does. An empty URL means
// the process runs from memory and the seed dataset only.
func NewConnector(rawURL string, opts ...ConnectorOption) *Connector {
	c := &Connector{
		url:    rawURL,
		dial:   Dial,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store returns the shared store, or nil when none is configured or the one
// connection attempt failed.
func (c *Connector) Store(ctx context.Context) Store {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dialed {
		return c.store
	}
	c.dialed = true

	if c.url == "" {
		c.logger.Info("no backing store configured, running from memory")
		return nil
	}

	s, err := c.dial(ctx, c.url)
	if err != nil {
		c.logger.Error("backing store connection failed", "error", err)
		return nil
	}
	c.store = s
	return c.store
}

// Reset closes the connection, if any, and forgets the cached outcome so the
// next Store call dials again.
func (c *Connector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store != nil {
		if err := c.store.Close(); err != nil {
			c.logger.Warn("closing backing store", "error", err)
		}
	}
	c.store = nil
	c.dialed = false
}

// Dial picks an implementation by URL scheme.
func Dial(ctx context.Context, rawURL string) (Store, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid store URL: %w", err)
	}

	switch u.Scheme {
	case "redis", "rediss":
		return NewRedisStore(ctx, rawURL)
	case "postgres", "postgresql":
		db, err := database.Connect(rawURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		if err := database.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate postgres: %w", err)
		}
		return NewPostgresStore(db), nil
	default:
		return nil, fmt.Errorf("unsupported store URL scheme %q", u.Scheme)
	}
}
