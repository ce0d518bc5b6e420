package router

import (
	"github.com/deppfellow/ecoleta/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that are not part of the
// API itself:
//  1. health status
//  2. docs UI
//  3. static docs assets (openapi.json, openapi.html)
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.Static("/static", "static")

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
