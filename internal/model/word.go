package model

import "strings"

// Word is one vocabulary card: an English term, its Chinese translation,
// part of speech and an example sentence in each language.
type Word struct {
	ID     string `json:"id" yaml:"id" binding:"omitempty,uuid"`
	En     string `json:"en" yaml:"en" binding:"required"`
	Zh     string `json:"zh" yaml:"zh" binding:"required"`
	Pos    string `json:"pos" yaml:"pos" binding:"required"`
	EnSent string `json:"enSent" yaml:"enSent" binding:"required"`
	ZhSent string `json:"zhSent" yaml:"zhSent" binding:"required"`
}

// Sanitize trims surrounding whitespace from every field.
func (w *Word) Sanitize() {
	w.ID = strings.TrimSpace(w.ID)
	w.En = strings.TrimSpace(w.En)
	w.Zh = strings.TrimSpace(w.Zh)
	w.Pos = strings.TrimSpace(w.Pos)
	w.EnSent = strings.TrimSpace(w.EnSent)
	w.ZhSent = strings.TrimSpace(w.ZhSent)
}

// Fields returns the text fields keyed by their JSON name, in display order.
func (w Word) Fields() [][2]string {
	return [][2]string{
		{"en", w.En},
		{"zh", w.Zh},
		{"pos", w.Pos},
		{"enSent", w.EnSent},
		{"zhSent", w.ZhSent},
	}
}
