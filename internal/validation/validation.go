// Package validation contains the logic for validating request data.
//
// It uses the `validator` library to enforce rules declared in struct tags
// (required fields, email format, coordinate ranges) and converts the
// failures into field errors the client can display next to its inputs.
package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/deppfellow/ecoleta/internal/model"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator instance.
//
// Field names in reported errors come from the first of the `form`,
// `query`, `param` or `json` tags, so they match what the client sent.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(fieldName)
		_ = validate.RegisterValidation("item_ids", isItemIDList)
	})
	return validate
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	return Validator().Struct(s)
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"form", "query", "param", "json"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// isItemIDList accepts a comma-separated list of positive item ids.
func isItemIDList(fl validator.FieldLevel) bool {
	_, err := model.ParseItemIDs(fl.Field().String())
	return err == nil
}
