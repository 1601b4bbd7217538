package topics

import (
	"context"
	"errors"
	"fmt"

	"github.com/flipword/api/internal/model"
	"github.com/flipword/api/internal/store"
)

// ErrNoStore is returned by the strict operations when the repository has
// no backing store to read from or write to.
var ErrNoStore = errors.New("no backing store configured")

// The strict operations below are for offline tools editing the store
// directly. Unlike Load and Save they never fall back to the snapshot: any
// read or write failure is returned and nothing is revalidated.

// Read returns the stored document. An absent document reads as the seed.
func (r *Repository) Read(ctx context.Context) (model.TopicsDocument, error) {
	s := r.store(ctx)
	if s == nil {
		return model.TopicsDocument{}, ErrNoStore
	}
	doc, err := r.read(ctx, s)
	if errors.Is(err, store.ErrNotFound) {
		return r.seed().Clone(), nil
	}
	if err != nil {
		return model.TopicsDocument{}, fmt.Errorf("read %s: %w", r.key, err)
	}
	return doc, nil
}

// WriteTopic is Upsert against the stored document. A failed read writes
// nothing.
func (r *Repository) WriteTopic(ctx context.Context, topic model.Topic) error {
	doc, err := r.Read(ctx)
	if err != nil {
		return err
	}
	if i := doc.Index(topic.Slug); i >= 0 {
		doc.Topics[i] = topic.Clone()
	} else {
		doc.Topics = append(doc.Topics, topic.Clone())
	}
	if err := r.commit(ctx, doc); err != nil {
		return err
	}
	r.revalidate(ctx, topic.Slug)
	return nil
}

// WriteDocument is ReplaceAll that reports a failed write.
func (r *Repository) WriteDocument(ctx context.Context, doc model.TopicsDocument) error {
	if err := r.commit(ctx, doc.Clone()); err != nil {
		return err
	}
	r.revalidate(ctx, "")
	return nil
}

func (r *Repository) commit(ctx context.Context, doc model.TopicsDocument) error {
	s := r.store(ctx)
	if s == nil {
		return ErrNoStore
	}
	if err := r.put(ctx, s, doc); err != nil {
		return fmt.Errorf("write %s: %w", r.key, err)
	}
	r.setMemory(doc)
	return nil
}
