package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flipword/api/internal/model"
)

func word(en string) model.Word {
	return model.Word{En: en, Zh: "词", Pos: "n.", EnSent: "A " + en + ".", ZhSent: "一个。"}
}

func TestTopic_Clone(t *testing.T) {
	orig := model.Topic{Slug: "travel", Title: "Travel", Words: []model.Word{word("map")}}

	cp := orig.Clone()
	assert.Equal(t, orig, cp)

	cp.Words[0].En = "changed"
	cp.Words = append(cp.Words, word("ticket"))
	assert.Equal(t, "map", orig.Words[0].En)
	assert.Len(t, orig.Words, 1)
}

func TestTopic_CloneKeepsEmptiness(t *testing.T) {
	tests := []struct {
		name  string
		words []model.Word
	}{
		{"nil", nil},
		{"empty", []model.Word{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp := model.Topic{Slug: "s", Title: "S", Words: tt.words}.Clone()
			assert.Equal(t, tt.words == nil, cp.Words == nil)
			assert.Empty(t, cp.Words)
		})
	}
}

func TestTopicsDocument_Clone(t *testing.T) {
	orig := model.TopicsDocument{Topics: []model.Topic{
		{Slug: "travel", Title: "Travel", Words: []model.Word{word("map")}},
		{Slug: "bare", Title: "Bare"},
	}}

	cp := orig.Clone()
	assert.Equal(t, orig, cp)
	assert.Nil(t, cp.Topics[1].Words)

	cp.Topics[0].Title = "Changed"
	cp.Topics[0].Words[0].En = "changed"
	assert.Equal(t, "Travel", orig.Topics[0].Title)
	assert.Equal(t, "map", orig.Topics[0].Words[0].En)
}

func TestTopicsDocument_CloneKeepsNilTopics(t *testing.T) {
	assert.Nil(t, model.TopicsDocument{}.Clone().Topics)
	assert.NotNil(t, model.TopicsDocument{Topics: []model.Topic{}}.Clone().Topics)
}
