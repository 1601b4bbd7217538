package model

import "strings"

// Topic is a named deck of words. Slug is the lookup key and the URL segment.
type Topic struct {
	Slug  string `json:"slug" yaml:"slug" binding:"required,slug"`
	Title string `json:"title" yaml:"title" binding:"required"`
	Words []Word `json:"words" yaml:"words" binding:"dive"`
}

// TopicsDocument is the whole persisted state. It is always read and written
// as one unit.
type TopicsDocument struct {
	Topics []Topic `json:"topics" yaml:"topics" binding:"dive"`
}

// Clone returns a deep copy of the topic. A nil Words stays nil.
func (t Topic) Clone() Topic {
	out := Topic{Slug: t.Slug, Title: t.Title}
	if t.Words != nil {
		out.Words = make([]Word, len(t.Words))
		copy(out.Words, t.Words)
	}
	return out
}

// Sanitize trims the slug, title and every word field.
func (t *Topic) Sanitize() {
	t.Slug = strings.TrimSpace(t.Slug)
	t.Title = strings.TrimSpace(t.Title)
	for i := range t.Words {
		t.Words[i].Sanitize()
	}
}

// Clone returns a deep copy of the document. Mutating the copy never touches
// the original. A nil Topics stays nil.
func (d TopicsDocument) Clone() TopicsDocument {
	if d.Topics == nil {
		return TopicsDocument{}
	}
	out := TopicsDocument{Topics: make([]Topic, len(d.Topics))}
	for i, t := range d.Topics {
		out.Topics[i] = t.Clone()
	}
	return out
}

// Index returns the position of the first topic with the slug, or -1.
func (d TopicsDocument) Index(slug string) int {
	for i, t := range d.Topics {
		if t.Slug == slug {
			return i
		}
	}
	return -1
}

// Sanitize trims every topic in the document.
func (d *TopicsDocument) Sanitize() {
	for i := range d.Topics {
		d.Topics[i].Sanitize()
	}
}
