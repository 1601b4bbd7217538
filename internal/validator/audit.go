package validator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/flipword/api/internal/model"
)

// Issue is one integrity problem in a stored document.
type Issue struct {
	Topic   string `json:"topic"`
	Path    string `json:"path"`
	Problem string `json:"problem"`
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.Topic, i.Path, i.Problem)
}

// Audit reports everything wrong with doc without changing it. Unlike
// PrepareDocument it also flags word ids that are not UUIDs and values
// that still carry surrounding whitespace.
func Audit(doc model.TopicsDocument) []Issue {
	var issues []Issue
	slugs := make(map[string]int)

	for ti, t := range doc.Topics {
		base := fmt.Sprintf("topics[%d]", ti)
		add := func(path, format string, args ...any) {
			issues = append(issues, Issue{Topic: t.Slug, Path: path, Problem: fmt.Sprintf(format, args...)})
		}

		if !ValidSlug(t.Slug) {
			add(base+".slug", "invalid slug %q", t.Slug)
		}
		if first, ok := slugs[t.Slug]; ok {
			add(base+".slug", "duplicate of topics[%d]", first)
		} else {
			slugs[t.Slug] = ti
		}
		checkText(base+".title", t.Title, add)

		ids := make(map[string]int)
		for wi, w := range t.Words {
			wbase := fmt.Sprintf("%s.words[%d]", base, wi)
			switch {
			case w.ID == "":
				add(wbase+".id", "missing id")
			case uuid.Validate(w.ID) != nil:
				add(wbase+".id", "id %q is not a UUID", w.ID)
			}
			if first, ok := ids[w.ID]; ok && w.ID != "" {
				add(wbase+".id", "duplicate of words[%d]", first)
			} else {
				ids[w.ID] = wi
			}
			for _, f := range w.Fields() {
				checkText(wbase+"."+f[0], f[1], add)
			}
		}
	}
	return issues
}

func checkText(path, value string, add func(path, format string, args ...any)) {
	trimmed := strings.TrimSpace(value)
	switch {
	case trimmed == "":
		add(path, "empty")
	case trimmed != value:
		add(path, "surrounding whitespace")
	}
}
