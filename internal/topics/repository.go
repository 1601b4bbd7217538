// Package topics owns the topics document: an in-process snapshot kept in
// step with the backing store and seeded from the built-in dataset.
//
// Writes are load, mutate in memory, save the whole document. Nothing is
// held across those steps, so two concurrent writers race and the last save
// wins, both in the store and in the snapshot.
package topics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/flipword/api/internal/model"
	"github.com/flipword/api/internal/seed"
	"github.com/flipword/api/internal/store"
)

// DefaultKey is where the document lives in the backing store.
const DefaultKey = "flipword:topics-document"

var errMalformed = errors.New("malformed topics document")

// StoreProvider hands out the backing store, or nil when there is none.
type StoreProvider interface {
	Store(ctx context.Context) store.Store
}

type Repository struct {
	provider    StoreProvider
	key         string
	seed        func() model.TopicsDocument
	revalidator Revalidator
	logger      *slog.Logger

	mu    sync.RWMutex
	cache *model.TopicsDocument
}

type Option func(*Repository)

func WithKey(key string) Option {
	return func(r *Repository) { r.key = key }
}

func WithSeed(fn func() model.TopicsDocument) Option {
	return func(r *Repository) { r.seed = fn }
}

func WithRevalidator(rv Revalidator) Option {
	return func(r *Repository) { r.revalidator = rv }
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Repository) { r.logger = logger }
}

// NewRepository builds a repository. provider may be nil for a memory-only
// repository.
func NewRepository(provider StoreProvider, opts ...Option) *Repository {
	r := &Repository{
		provider: provider,
		key:      DefaultKey,
		seed:     seed.Topics,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("component", "topics")
	return r
}

// Load returns the current document, preferring the backing store. The
// result is a private copy.
func (r *Repository) Load(ctx context.Context) model.TopicsDocument {
	s := r.store(ctx)
	if s == nil {
		return r.memory().Clone()
	}

	doc, err := r.read(ctx, s)
	switch {
	case err == nil:
		r.setMemory(doc)
		return doc.Clone()
	case errors.Is(err, store.ErrNotFound):
		mem := r.memory()
		r.logger.Info("topics document absent from store, seeding it", "key", r.key)
		r.write(ctx, s, mem)
		return mem.Clone()
	case errors.Is(err, errMalformed):
		r.logger.Warn("stored topics document is malformed, serving memory copy and leaving it untouched",
			"key", r.key, "error", err)
	default:
		r.logger.Error("failed to read topics from store", "key", r.key, "error", err)
	}
	return r.memory().Clone()
}

// Save replaces the snapshot with a copy of doc and then persists it. A
// failed persist is logged; the snapshot keeps the new document.
func (r *Repository) Save(ctx context.Context, doc model.TopicsDocument) {
	snapshot := doc.Clone()
	r.setMemory(snapshot)

	if s := r.store(ctx); s != nil {
		r.write(ctx, s, snapshot)
	}
}

func (r *Repository) ListTopics(ctx context.Context) []model.Topic {
	return r.Load(ctx).Topics
}

func (r *Repository) GetBySlug(ctx context.Context, slug string) (model.Topic, bool) {
	doc := r.Load(ctx)
	if i := doc.Index(slug); i >= 0 {
		return doc.Topics[i], true
	}
	return model.Topic{}, false
}

// FindSeedTopic looks only at the built-in dataset.
func (r *Repository) FindSeedTopic(slug string) (model.Topic, bool) {
	doc := r.seed()
	if i := doc.Index(slug); i >= 0 {
		return doc.Topics[i].Clone(), true
	}
	return model.Topic{}, false
}

// Upsert replaces the first topic with the same slug, or appends. A changed
// slug is a new topic; the old entry stays until deleted.
func (r *Repository) Upsert(ctx context.Context, topic model.Topic) {
	doc := r.Load(ctx)
	if i := doc.Index(topic.Slug); i >= 0 {
		doc.Topics[i] = topic.Clone()
	} else {
		doc.Topics = append(doc.Topics, topic.Clone())
	}
	r.Save(ctx, doc)
	r.revalidate(ctx, topic.Slug)
}

// DeleteBySlug drops every topic with the slug. Unknown slugs are a no-op
// apart from the save and revalidation.
func (r *Repository) DeleteBySlug(ctx context.Context, slug string) {
	doc := r.Load(ctx)
	kept := doc.Topics[:0]
	for _, t := range doc.Topics {
		if t.Slug != slug {
			kept = append(kept, t)
		}
	}
	doc.Topics = kept
	r.Save(ctx, doc)
	r.revalidate(ctx, slug)
}

// ReplaceAll saves doc wholesale. doc must already be validated.
func (r *Repository) ReplaceAll(ctx context.Context, doc model.TopicsDocument) {
	r.Save(ctx, doc)
	r.revalidate(ctx, "")
}

// Reset forgets the snapshot so the next read starts from the seed again.
func (r *Repository) Reset() {
	r.mu.Lock()
	r.cache = nil
	r.mu.Unlock()
}

func (r *Repository) store(ctx context.Context) store.Store {
	if r.provider == nil {
		return nil
	}
	return r.provider.Store(ctx)
}

// memory returns the snapshot, initialising it from the seed. The snapshot
// is replaced wholesale and never modified in place.
func (r *Repository) memory() model.TopicsDocument {
	r.mu.RLock()
	cache := r.cache
	r.mu.RUnlock()
	if cache != nil {
		return *cache
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cache == nil {
		doc := r.seed().Clone()
		r.cache = &doc
	}
	return *r.cache
}

func (r *Repository) setMemory(doc model.TopicsDocument) {
	r.mu.Lock()
	r.cache = &doc
	r.mu.Unlock()
}

func (r *Repository) read(ctx context.Context, s store.Store) (model.TopicsDocument, error) {
	raw, err := s.Get(ctx, r.key)
	if errors.Is(err, store.ErrNotFound) || (err == nil && len(raw) == 0) {
		recordStoreOp("get", "absent")
		return model.TopicsDocument{}, store.ErrNotFound
	}
	if err != nil {
		recordStoreOp("get", "error")
		return model.TopicsDocument{}, err
	}

	doc, err := decode(raw)
	if err != nil {
		recordStoreOp("get", "malformed")
		return model.TopicsDocument{}, err
	}
	recordStoreOp("get", "ok")
	return doc, nil
}

func (r *Repository) write(ctx context.Context, s store.Store, doc model.TopicsDocument) {
	if err := r.put(ctx, s, doc); err != nil {
		r.logger.Error("failed to write topics to store", "key", r.key, "error", err)
	}
}

func (r *Repository) put(ctx context.Context, s store.Store, doc model.TopicsDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		recordStoreOp("set", "error")
		return fmt.Errorf("encode topics document: %w", err)
	}
	if err := s.Set(ctx, r.key, raw); err != nil {
		recordStoreOp("set", "error")
		return err
	}
	recordStoreOp("set", "ok")
	return nil
}

func (r *Repository) revalidate(ctx context.Context, slug string) {
	if r.revalidator == nil {
		return
	}
	paths := []string{HomePath}
	if slug != "" {
		paths = append(paths, TopicPath(slug))
	}
	for _, p := range paths {
		err := r.revalidator.Revalidate(ctx, p)
		recordRevalidation(err)
		if err != nil {
			r.logger.Warn("revalidation failed", "path", p, "error", err)
		}
	}
}

// decode only insists that "topics" is present and is an array; the shape
// of the entries is trusted.
func decode(raw []byte) (model.TopicsDocument, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return model.TopicsDocument{}, fmt.Errorf("%w: %v", errMalformed, err)
	}
	topics, ok := envelope["topics"]
	if !ok {
		return model.TopicsDocument{}, fmt.Errorf("%w: no topics field", errMalformed)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(topics), []byte("[")) {
		return model.TopicsDocument{}, fmt.Errorf("%w: topics is not an array", errMalformed)
	}

	var doc model.TopicsDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.TopicsDocument{}, fmt.Errorf("%w: %v", errMalformed, err)
	}
	return doc, nil
}
