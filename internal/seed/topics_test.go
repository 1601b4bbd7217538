package seed

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopics(t *testing.T) {
	doc := Topics()
	require.Len(t, doc.Topics, 1)

	topic := doc.Topics[0]
	assert.Equal(t, "exam-1", topic.Slug)
	assert.Equal(t, "word bank(exam-1)", topic.Title)
	assert.Len(t, topic.Words, len(exam1))

	seen := make(map[string]bool)
	for i, w := range topic.Words {
		assert.NoError(t, uuid.Validate(w.ID))
		assert.Equal(t, WordID("exam-1", i), w.ID)
		assert.False(t, seen[w.ID], "duplicate id %s", w.ID)
		seen[w.ID] = true
	}
}

func TestTopics_FreshCopies(t *testing.T) {
	a := Topics()
	a.Topics[0].Words[0].En = "changed"
	a.Topics[0].Title = "changed"

	b := Topics()
	assert.NotEqual(t, "changed", b.Topics[0].Words[0].En)
	assert.NotEqual(t, "changed", b.Topics[0].Title)
}

func TestTopic(t *testing.T) {
	topic, ok := Topic("exam-1")
	require.True(t, ok)
	assert.Equal(t, "exam-1", topic.Slug)

	_, ok = Topic("missing")
	assert.False(t, ok)
}

func TestWordID_Stable(t *testing.T) {
	assert.Equal(t, WordID("exam-1", 3), WordID("exam-1", 3))
	assert.NotEqual(t, WordID("exam-1", 3), WordID("exam-1", 4))
	assert.NotEqual(t, WordID("exam-1", 3), WordID("exam-2", 3))
}
