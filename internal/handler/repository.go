package handler

import (
	"context"

	"github.com/flipword/api/internal/model"
)

// TopicsRepository is the part of topics.Repository the handlers use.
type TopicsRepository interface {
	Load(ctx context.Context) model.TopicsDocument
	ListTopics(ctx context.Context) []model.Topic
	GetBySlug(ctx context.Context, slug string) (model.Topic, bool)
	Upsert(ctx context.Context, topic model.Topic)
	DeleteBySlug(ctx context.Context, slug string)
	ReplaceAll(ctx context.Context, doc model.TopicsDocument)
}
