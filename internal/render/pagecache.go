// Package render caches rendered public pages until they are revalidated.
package render

import (
	"context"
	"sync"
	"time"
)

// HomePath is the page every other page hangs off. Revalidating it drops
// the whole cache, since deck pages are rendered from the same document.
const HomePath = "/"

type page struct {
	body       []byte
	renderedAt time.Time
}

// PageCache maps a page path to its last rendered body. A zero TTL keeps
// pages until they are revalidated.
type PageCache struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.RWMutex
	pages map[string]page
	// A render only stores its body if neither its path generation nor the
	// cache epoch moved while it ran.
	epoch       uint64
	generations map[string]uint64
}

func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{
		ttl:         ttl,
		now:         time.Now,
		pages:       make(map[string]page),
		generations: make(map[string]uint64),
	}
}

// Render returns the cached body for path, or calls fn and caches its
// result. Errors are not cached, and neither is a body whose path was
// revalidated while fn ran.
func (c *PageCache) Render(path string, fn func() ([]byte, error)) ([]byte, bool, error) {
	c.mu.RLock()
	p, ok := c.pages[path]
	epoch, gen := c.epoch, c.generations[path]
	c.mu.RUnlock()
	if ok && (c.ttl == 0 || c.now().Sub(p.renderedAt) < c.ttl) {
		return p.body, true, nil
	}

	body, err := fn()
	if err != nil {
		return nil, false, err
	}

	c.mu.Lock()
	if c.epoch == epoch && c.generations[path] == gen {
		c.pages[path] = page{body: body, renderedAt: c.now()}
	}
	c.mu.Unlock()
	return body, false, nil
}

// Revalidate drops the cached page for path. HomePath drops every page.
func (c *PageCache) Revalidate(_ context.Context, path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if path == HomePath {
		c.epoch++
		c.pages = make(map[string]page)
		return nil
	}
	c.generations[path]++
	delete(c.pages, path)
	return nil
}

// Len is the number of cached pages.
func (c *PageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pages)
}
