package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/deppfellow/ecoleta/internal/server"
	"github.com/labstack/echo/v4"
)

// OpenAPIHandler serves the API documentation UI. The page loads
// /static/openapi.json and renders it with a CDN-hosted viewer.
type OpenAPIHandler struct {
	Handler
	path string
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		path:    "static/openapi.html",
	}
}

// ServeOpenAPIUI serves static/openapi.html with caching disabled so doc
// changes show up immediately.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	templateBytes, err := os.ReadFile(h.path)

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(templateBytes)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
