// Package router initializes the HTTP router (Echo).
//
// It installs the global middleware chain and maps the API routes to
// their handlers.
package router

import (
	"github.com/deppfellow/ecoleta/internal/handler"
	"github.com/deppfellow/ecoleta/internal/middleware"
	"github.com/deppfellow/ecoleta/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance.
//
// Middleware order matters:
//  1. CORS and secure headers
//  2. RequestID, then New Relic, so both exist for the context logger
//  3. EnhanceContext builds the request-scoped logger
//  4. RequestLogger and Recover run with that logger available
//  5. the rate limiter, last, so denied requests are logged and traced
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)
	registerPointRoutes(router, h, middlewares)
	registerItemRoutes(router, h)

	// Uploaded point images and item icons.
	router.Static("/uploads", s.Config.Upload.Dir)

	return router
}
