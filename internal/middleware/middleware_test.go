package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/ecoleta/internal/config"
	"github.com/deppfellow/ecoleta/internal/errs"
	"github.com/deppfellow/ecoleta/internal/server"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *server.Server {
	log := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server:  config.ServerConfig{RateLimit: 1},
			Upload:  config.UploadConfig{MaxSize: "1K"},
		},
		Logger: &log,
	}
}

func newEcho(s *server.Server) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
	return e
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())

	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = GetRequestID(c)
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "upstream-id", seen)
	assert.Equal(t, "upstream-id", rec.Header().Get(RequestIDHeader))
}

func TestEnhanceContext_StoresLogger(t *testing.T) {
	s := newTestServer()
	e := echo.New()
	e.Use(RequestID(), NewContextEnhancer(s).EnhanceContext())

	e.GET("/", func(c echo.Context) error {
		assert.NotNil(t, c.Get(LoggerKey))
		assert.NotNil(t, zerolog.Ctx(c.Request().Context()))
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "http error is rendered as is",
			err:        errs.NewBadRequestError("Point not found.", true, ptr("POINT_NOT_FOUND"), nil, nil),
			wantStatus: http.StatusBadRequest,
			wantCode:   "POINT_NOT_FOUND",
		},
		{
			name: "foreign key violation from a wrapped pg error",
			err: fmt.Errorf("inserting point items: %w", &pgconn.PgError{
				Code:           "23503",
				TableName:      "point_items",
				ConstraintName: "point_items_item_id_fkey",
			}),
			wantStatus: http.StatusBadRequest,
			wantCode:   "ITEM_NOT_FOUND",
		},
		{
			name:       "unknown error is hidden behind 500",
			err:        errors.New("connection reset by peer"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
		{
			name:       "echo error keeps its status",
			err:        echo.ErrStatusRequestEntityTooLarge,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "REQUEST_ENTITY_TOO_LARGE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEcho(newTestServer())
			e.GET("/", func(c echo.Context) error { return tt.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestGlobalErrorHandler_UnknownRoute(t *testing.T) {
	e := newEcho(newTestServer())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decode(t, rec).Message)
}

func TestUploadBodyLimit(t *testing.T) {
	s := newTestServer()
	e := newEcho(s)
	e.POST("/points", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, NewGlobalMiddlewares(s).UploadBodyLimit())

	body := make([]byte, 2048)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/points", bytes.NewReader(body)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRateLimit_Denies(t *testing.T) {
	s := newTestServer()
	e := newEcho(s)
	e.Use(NewRateLimitMiddleware(s).Limit())
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	var last int
	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		last = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}

func ptr(s string) *string { return &s }
