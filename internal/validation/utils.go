package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/deppfellow/ecoleta/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request types that know how to validate
// themselves.
//
// Typical pattern:
//   - declare validator tags on the struct (`validate:"required,email"`)
//   - implement Validate() by calling Struct(req)
//   - return CustomValidationErrors for rules tags cannot express
type Validatable interface {
	Validate() error
}

// CustomValidationError is a single validation issue for a specific field
// that cannot be expressed with validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds path params, query params and the body into
// payload, then validates it.
//
// Binding failures and validation failures both become a 400 *errs.HTTPError;
// the latter carries one FieldError per invalid field.
//
// payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		message, fieldErrors := bindError(c, err)
		return errs.NewBadRequestError(message, fieldErrors != nil, nil, fieldErrors, nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

// bindError turns an Echo binding failure into a client message. A value
// that does not fit its field type is reported as a field error.
//
// Echo wraps conversion failures of path, query and form values in a 400
// *echo.HTTPError whose Internal error is the strconv failure; the field is
// recovered by matching the rejected value against the request.
func bindError(c echo.Context, err error) (string, []errs.FieldError) {
	var bindingErr *echo.BindingError
	if errors.As(err, &bindingErr) {
		return "Validation failed", invalidValue(bindingErr.Field)
	}

	var echoErr *echo.HTTPError
	if !errors.As(err, &echoErr) {
		return "Invalid request payload", nil
	}

	if echoErr.Code == http.StatusBadRequest && echoErr.Internal != nil {
		var numErr *strconv.NumError
		if errors.As(echoErr.Internal, &numErr) {
			return "Validation failed", invalidValue(fieldWithValue(c, numErr.Num))
		}

		var typeErr *json.UnmarshalTypeError
		if errors.As(echoErr.Internal, &typeErr) {
			return "Validation failed", invalidValue(typeErr.Field)
		}

		return "Invalid request payload", nil
	}

	if msg, ok := echoErr.Message.(string); ok && msg != "" {
		return msg, nil
	}

	return "Invalid request payload", nil
}

func invalidValue(field string) []errs.FieldError {
	return []errs.FieldError{{
		Field: field,
		Error: "has an invalid value",
	}}
}

// fieldWithValue returns the name of the path, query or form parameter carrying
// value, or "" when none does.
func fieldWithValue(c echo.Context, value string) string {
	values := c.ParamValues()
	for i, name := range c.ParamNames() {
		if i < len(values) && values[i] == value {
			return name
		}
	}

	for _, form := range []url.Values{c.QueryParams(), c.Request().PostForm} {
		for name, vs := range form {
			for _, v := range vs {
				if v == value {
					return name
				}
			}
		}
	}

	return ""
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, err := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: err.Field,
				Error: err.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Validation failed", []errs.FieldError{{Field: "", Error: err.Error()}}
	}

	for _, err := range validationErrors {
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "len":
			msg = fmt.Sprintf("must have exactly %s characters", err.Param())

		case "gt":
			msg = fmt.Sprintf("must be greater than %s", err.Param())

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		case "email":
			msg = "must be a valid email address"

		case "alpha":
			msg = "must contain letters only"

		case "numeric":
			msg = "must contain digits only"

		case "latitude":
			msg = "must be a valid latitude"

		case "longitude":
			msg = "must be a valid longitude"

		case "item_ids":
			msg = "must be a comma-separated list of item ids"

		case "e164":
			msg = "must be a valid phone number with country code"

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", err.Field(), err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", err.Field(), err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: strings.ToLower(err.Field()),
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
