// Package validator checks topics and documents before they reach the
// repository. Field rules live in the binding tags of the model types.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync/atomic"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/google/uuid"

	"github.com/flipword/api/internal/model"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidSlug reports whether s may be used as a topic slug.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// Validator wraps a go-playground validator configured for the model's
// binding tags, with English messages.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func New() (*Validator, error) {
	validate := validator.New()
	validate.SetTagName("binding")

	trans, err := configure(validate)
	if err != nil {
		return nil, err
	}
	return &Validator{validate: validate, trans: trans}, nil
}

// RegisterGin adds the slug rule and JSON field names to gin's own
// validator so ShouldBindJSON understands the model tags.
func RegisterGin() error {
	validate, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not a go-playground validator")
	}
	trans, err := configure(validate)
	if err != nil {
		return err
	}
	ginTrans.Store(&trans)
	return nil
}

// ginTrans is the translator registered on gin's engine, used for binding
// errors that the package's own validator did not produce.
var ginTrans atomic.Pointer[ut.Translator]

func configure(validate *validator.Validate) (ut.Translator, error) {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		// Surrounding whitespace is trimmed before the strict check in
		// PrepareTopic, so binding lets it through.
		return ValidSlug(strings.TrimSpace(fl.Field().String()))
	}); err != nil {
		return nil, fmt.Errorf("failed to register slug validation: %w", err)
	}
	if err := validate.RegisterTranslation("slug", trans, func(ut ut.Translator) error {
		return ut.Add("slug", "{0} may only contain lowercase letters, digits and hyphens", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("slug", fe.Field())
		return t
	}); err != nil {
		return nil, fmt.Errorf("failed to register slug translation: %w", err)
	}
	return trans, nil
}

// Error lists every problem found in one value.
type Error struct {
	Problems []string
}

func (e *Error) Error() string {
	return strings.Join(e.Problems, "; ")
}

// PrepareTopic trims every field, gives new words an id and validates the
// result. Existing ids are kept as they are.
func (v *Validator) PrepareTopic(t *model.Topic) error {
	t.Sanitize()
	if t.Words == nil {
		t.Words = []model.Word{}
	}
	for i := range t.Words {
		if t.Words[i].ID == "" {
			t.Words[i].ID = uuid.NewString()
		}
	}

	var problems []string
	if err := v.validate.Struct(t); err != nil {
		problems = append(problems, v.translate(err)...)
	}
	problems = append(problems, duplicateWordIDs(*t)...)
	if len(problems) > 0 {
		return &Error{Problems: problems}
	}
	return nil
}

// PrepareDocument runs PrepareTopic on every topic and rejects repeated
// slugs.
func (v *Validator) PrepareDocument(doc *model.TopicsDocument) error {
	if doc.Topics == nil {
		doc.Topics = []model.Topic{}
	}

	var problems []string
	seen := make(map[string]bool, len(doc.Topics))
	for i := range doc.Topics {
		if err := v.PrepareTopic(&doc.Topics[i]); err != nil {
			var verr *Error
			if errors.As(err, &verr) {
				for _, p := range verr.Problems {
					problems = append(problems, fmt.Sprintf("topics[%d]: %s", i, p))
				}
			}
		}
		slug := doc.Topics[i].Slug
		if seen[slug] {
			problems = append(problems, fmt.Sprintf("topics[%d]: duplicate slug %q", i, slug))
		}
		seen[slug] = true
	}
	if len(problems) > 0 {
		return &Error{Problems: problems}
	}
	return nil
}

// Messages renders a binding error from gin in the same words as
// PrepareTopic.
func (v *Validator) Messages(err error) []string {
	return v.translate(err)
}

func (v *Validator) translate(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Translate(v.trans)
		if gt := ginTrans.Load(); gt != nil && msg == fe.Error() {
			msg = fe.Translate(*gt)
		}
		out = append(out, fmt.Sprintf("%s: %s", fieldPath(fe.Namespace()), msg))
	}
	return out
}

// fieldPath drops the struct name: "Topic.words[0].en" becomes "words[0].en".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func duplicateWordIDs(t model.Topic) []string {
	var problems []string
	seen := make(map[string]bool, len(t.Words))
	for i, w := range t.Words {
		if seen[w.ID] {
			problems = append(problems, fmt.Sprintf("words[%d]: duplicate id %q", i, w.ID))
		}
		seen[w.ID] = true
	}
	return problems
}
