package errs

import "strings"

// FieldError is a validation problem attached to a single form or query field.
//
//	{ "field": "items", "error": "must be a comma-separated list of item ids" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ActionType tells the client what kind of follow-up an error expects.
type ActionType string

const (
	// ActionTypeRedirect asks the client to navigate to Action.Value.
	ActionTypeRedirect ActionType = "redirect"
)

// Action is an optional hint the client can act upon after an error.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the single client-facing error type of the API.
//
// It is serialized as-is by the global error handler:
//   - Code: machine readable code, e.g. "POINT_NOT_FOUND".
//   - Message: human readable message, always present.
//   - Status: the HTTP status written with the body.
//   - Override: whether the client may show Message verbatim.
//   - Errors: per-field validation errors.
//   - Action: optional follow-up instruction.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
	Action   *Action      `json:"action"`
}

// Error returns the client message so logs and wrapped errors read naturally.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is an *HTTPError as well.
//
// Only the type is compared, not Code or Status, so errors.Is(err, &HTTPError{})
// answers "did this already become a client error?".
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of e carrying a different message.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Action:   e.Action,
	}
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
