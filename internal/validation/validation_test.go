package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/ecoleta/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name     string  `json:"name" validate:"required,min=2"`
	Email    string  `json:"email" validate:"required,email"`
	UF       string  `json:"uf" validate:"required,len=2,alpha"`
	Latitude float64 `json:"latitude" validate:"latitude"`
}

func (r *sampleRequest) Validate() error {
	return Struct(r)
}

type customRequest struct {
	Items string `query:"items"`
}

func (r *customRequest) Validate() error {
	if r.Items == "" {
		return CustomValidationErrors{{Field: "items", Message: "is required"}}
	}
	return nil
}

func newJSONContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func fieldMessages(e *errs.HTTPError) map[string]string {
	out := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		out[fe.Field] = fe.Error
	}
	return out
}

func TestBindAndValidate_Valid(t *testing.T) {
	c := newJSONContext(`{"name":"Mercado","email":"a@b.com","uf":"SC","latitude":-27.2}`)

	req := &sampleRequest{}
	require.NoError(t, BindAndValidate(c, req))
	assert.Equal(t, "SC", req.UF)
}

func TestBindAndValidate_FieldErrorsUseWireNames(t *testing.T) {
	c := newJSONContext(`{"name":"M","email":"nope","uf":"S1","latitude":123}`)

	err := BindAndValidate(c, &sampleRequest{})
	httpErr := asHTTPError(t, err)

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.True(t, httpErr.Override)

	msgs := fieldMessages(httpErr)
	assert.Equal(t, "must be at least 2 characters", msgs["name"])
	assert.Equal(t, "must be a valid email address", msgs["email"])
	assert.Equal(t, "must contain letters only", msgs["uf"])
	assert.Equal(t, "must be a valid latitude", msgs["latitude"])
}

func TestBindAndValidate_Required(t *testing.T) {
	c := newJSONContext(`{}`)

	httpErr := asHTTPError(t, BindAndValidate(c, &sampleRequest{}))
	msgs := fieldMessages(httpErr)
	assert.Equal(t, "is required", msgs["name"])
	assert.Equal(t, "is required", msgs["email"])
	assert.Equal(t, "is required", msgs["uf"])
}

func TestBindAndValidate_MalformedBody(t *testing.T) {
	c := newJSONContext(`{"name":`)

	httpErr := asHTTPError(t, BindAndValidate(c, &sampleRequest{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotEmpty(t, httpErr.Message)
	assert.Empty(t, httpErr.Errors)
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/points", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	httpErr := asHTTPError(t, BindAndValidate(c, &customRequest{}))
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, errs.FieldError{Field: "items", Error: "is required"}, httpErr.Errors[0])
}

type itemsRequest struct {
	Items string `query:"items" validate:"required,item_ids"`
}

func (r *itemsRequest) Validate() error {
	return Struct(r)
}

func TestBindAndValidate_ItemIDs(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"valid", "items=1,%202", ""},
		{"letters", "items=1,a", "must be a comma-separated list of item ids"},
		{"trailing comma", "items=1,", "must be a comma-separated list of item ids"},
		{"zero", "items=0", "must be a comma-separated list of item ids"},
		{"missing", "", "is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/points?"+tt.query, nil)
			c := e.NewContext(req, httptest.NewRecorder())

			err := BindAndValidate(c, &itemsRequest{})
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}

			httpErr := asHTTPError(t, err)
			assert.Equal(t, tt.want, fieldMessages(httpErr)["items"])
		})
	}
}

type pathRequest struct {
	ID int64 `param:"id" validate:"gt=0"`
}

func (r *pathRequest) Validate() error {
	return Struct(r)
}

func TestBindAndValidate_InvalidPathParam(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/points/abc", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/points/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	httpErr := asHTTPError(t, BindAndValidate(c, &pathRequest{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.NotContains(t, httpErr.Message, "strconv")
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, errs.FieldError{Field: "id", Error: "has an invalid value"}, httpErr.Errors[0])
}

func TestBindAndValidate_ZeroPathParam(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/points/0", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/points/:id")
	c.SetParamNames("id")
	c.SetParamValues("0")

	httpErr := asHTTPError(t, BindAndValidate(c, &pathRequest{}))
	assert.Equal(t, "must be greater than 0", fieldMessages(httpErr)["id"])
}

type limitRequest struct {
	Limit int `query:"limit"`
}

func (r *limitRequest) Validate() error {
	return nil
}

func TestBindAndValidate_InvalidQueryParam(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/points?limit=ten", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	httpErr := asHTTPError(t, BindAndValidate(c, &limitRequest{}))
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, errs.FieldError{Field: "limit", Error: "has an invalid value"}, httpErr.Errors[0])
}

func TestBindAndValidate_WrongJSONType(t *testing.T) {
	c := newJSONContext(`{"name":"Mercado","email":"a@b.com","uf":"SC","latitude":"north"}`)

	httpErr := asHTTPError(t, BindAndValidate(c, &sampleRequest{}))
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, errs.FieldError{Field: "latitude", Error: "has an invalid value"}, httpErr.Errors[0])
}
