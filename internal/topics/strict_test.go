package topics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_topics "github.com/flipword/api/internal/mocks/topics"
	"github.com/flipword/api/internal/model"
	"github.com/flipword/api/internal/seed"
	"github.com/flipword/api/internal/topics"
)

func TestRepository_Read(t *testing.T) {
	ctx := context.Background()

	t.Run("absent reads as seed", func(t *testing.T) {
		s := newFakeStore()
		doc, err := newRepo(t, s).Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, seed.Topics(), doc)
		assert.Zero(t, s.sets, "reading never seeds the store")
	})

	t.Run("stored", func(t *testing.T) {
		s := newFakeStore()
		s.data[topics.DefaultKey] = []byte(`{"topics":[{"slug":"food","title":"Food","words":[]}]}`)
		doc, err := newRepo(t, s).Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"food"}, slugs(doc.Topics))
	})

	t.Run("malformed", func(t *testing.T) {
		s := newFakeStore()
		s.data[topics.DefaultKey] = []byte(`{"topics":{}}`)
		_, err := newRepo(t, s).Read(ctx)
		assert.ErrorContains(t, err, "malformed topics document")
	})

	t.Run("get error", func(t *testing.T) {
		s := newFakeStore()
		s.getErr = errors.New("connection reset")
		_, err := newRepo(t, s).Read(ctx)
		assert.ErrorContains(t, err, "connection reset")
	})

	t.Run("no store", func(t *testing.T) {
		_, err := newRepo(t, nil).Read(ctx)
		assert.ErrorIs(t, err, topics.ErrNoStore)
	})
}

func TestRepository_WriteTopic(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	rv := mock_topics.NewMockRevalidator(ctrl)
	gomock.InOrder(
		rv.EXPECT().Revalidate(gomock.Any(), "/").Return(nil),
		rv.EXPECT().Revalidate(gomock.Any(), "/travel").Return(nil),
	)
	s := newFakeStore()
	s.data[topics.DefaultKey] = []byte(`{"topics":[{"slug":"food","title":"Food","words":[]}]}`)
	repo := newRepo(t, s, topics.WithRevalidator(rv))

	require.NoError(t, repo.WriteTopic(ctx, travel()))

	assert.Equal(t, []string{"food", "travel"}, slugs(s.document(t).Topics))
	assert.Equal(t, []string{"food", "travel"}, slugs(repo.Load(ctx).Topics))
}

func TestRepository_WriteTopicFailures(t *testing.T) {
	tests := []struct {
		name   string
		getErr error
		setErr error
		stored string
		want   string
	}{
		{name: "get error", getErr: errors.New("connection reset"), want: "connection reset"},
		{name: "malformed", stored: `[]`, want: "malformed topics document"},
		{name: "set error", setErr: errors.New("READONLY replica"), want: "READONLY replica"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			ctrl := gomock.NewController(t)
			rv := mock_topics.NewMockRevalidator(ctrl)
			rv.EXPECT().Revalidate(gomock.Any(), gomock.Any()).Times(0)

			s := newFakeStore()
			s.getErr, s.setErr = tt.getErr, tt.setErr
			if tt.stored != "" {
				s.data[topics.DefaultKey] = []byte(tt.stored)
			}
			repo := newRepo(t, s, topics.WithRevalidator(rv))

			err := repo.WriteTopic(ctx, travel())
			assert.ErrorContains(t, err, tt.want)
			assert.Zero(t, s.sets)
			if tt.stored != "" {
				assert.Equal(t, tt.stored, string(s.data[topics.DefaultKey]))
			}
		})
	}
}

func TestRepository_WriteDocument(t *testing.T) {
	ctx := context.Background()
	doc := model.TopicsDocument{Topics: []model.Topic{travel()}}

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rv := mock_topics.NewMockRevalidator(ctrl)
		rv.EXPECT().Revalidate(gomock.Any(), "/").Return(nil)
		s := newFakeStore()
		repo := newRepo(t, s, topics.WithRevalidator(rv))

		require.NoError(t, repo.WriteDocument(ctx, doc))
		assert.Equal(t, doc, s.document(t))
	})

	t.Run("set error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rv := mock_topics.NewMockRevalidator(ctrl)
		rv.EXPECT().Revalidate(gomock.Any(), gomock.Any()).Times(0)
		s := newFakeStore()
		s.setErr = errors.New("READONLY replica")
		repo := newRepo(t, s, topics.WithRevalidator(rv))

		assert.ErrorContains(t, repo.WriteDocument(ctx, doc), "READONLY replica")
		assert.Equal(t, seed.Topics(), repo.Load(ctx), "a failed write leaves the snapshot alone")
	})

	t.Run("no store", func(t *testing.T) {
		assert.ErrorIs(t, newRepo(t, nil).WriteDocument(ctx, doc), topics.ErrNoStore)
	})
}
