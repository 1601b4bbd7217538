package topics

import (
	"context"
	"errors"
)

//go:generate mockgen -source=revalidate.go -destination=../mocks/topics/mock_revalidator.go -package=mock_topics

// Revalidator is told that whatever was rendered for path is stale.
type Revalidator interface {
	Revalidate(ctx context.Context, path string) error
}

// RevalidatorFunc adapts a function to Revalidator.
type RevalidatorFunc func(ctx context.Context, path string) error

func (f RevalidatorFunc) Revalidate(ctx context.Context, path string) error {
	return f(ctx, path)
}

// Revalidators fans a signal out to every member and joins their errors.
type Revalidators []Revalidator

func (rs Revalidators) Revalidate(ctx context.Context, path string) error {
	var errs []error
	for _, r := range rs {
		if r == nil {
			continue
		}
		if err := r.Revalidate(ctx, path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// HomePath is the topic listing.
const HomePath = "/"

// TopicPath is the page of one topic.
func TopicPath(slug string) string {
	return "/" + slug
}
