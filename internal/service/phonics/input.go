package phonics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/phonics-backend/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DefaultBrowseLimit is the page size when none is given.
const DefaultBrowseLimit = 20

// ResolveInput is a resolve request.
type ResolveInput struct {
	PhonemeInput      string   `validate:"required"`
	SectionsRequested []string `validate:"max=20,dive,max=64"`
	UserID            string   `validate:"max=128"`
}

// Validate trims the query and checks all fields.
func (i *ResolveInput) Validate() error {
	i.PhonemeInput = strings.TrimSpace(i.PhonemeInput)
	return validateStruct(i, map[string]fieldSpec{
		"PhonemeInput":      {name: "phoneme_input", messages: map[string]string{"required": "Phoneme input is required"}},
		"SectionsRequested": {name: "sections_requested"},
		"UserID":            {name: "user_id"},
	})
}

// BrowseInput is a stage browser request. A nil Stage lists every stage.
type BrowseInput struct {
	Stage  *int `validate:"omitempty,min=1,max=8"`
	Limit  int  `validate:"min=1"`
	Offset int  `validate:"min=0"`
}

// Validate checks all fields.
func (i *BrowseInput) Validate() error {
	return validateStruct(i, map[string]fieldSpec{
		"Stage":  {name: "stage", messages: map[string]string{"min": "must be between 1 and 8", "max": "must be between 1 and 8"}},
		"Limit":  {name: "limit", messages: map[string]string{"min": "must be at least 1"}},
		"Offset": {name: "offset", messages: map[string]string{"min": "must not be negative"}},
	})
}

type fieldSpec struct {
	name     string
	messages map[string]string // validator tag -> message
}

// validateStruct runs struct-tag validation and converts failures into
// domain field errors.
func validateStruct(v any, fields map[string]fieldSpec) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	out := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field, index := fe.StructField(), ""
		if i := strings.IndexByte(field, '['); i > 0 {
			field, index = field[:i], field[i:]
		}
		spec, ok := fields[field]
		if !ok {
			spec = fieldSpec{name: strings.ToLower(field)}
		}
		msg, ok := spec.messages[fe.Tag()]
		if !ok {
			msg = defaultMessage(fe)
		}
		out = append(out, domain.FieldError{Field: spec.name + index, Message: msg})
	}
	return domain.NewValidationErrors(out)
}

func defaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "max":
		return "too long (max " + fe.Param() + ")"
	case "min":
		return "too small (min " + fe.Param() + ")"
	default:
		return "invalid"
	}
}
