package router

import (
	"net/http"

	"github.com/deppfellow/ecoleta/internal/handler"
	"github.com/deppfellow/ecoleta/internal/middleware"
	"github.com/labstack/echo/v4"
)

func registerPointRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	points := r.Group("/points")

	points.GET("", handler.Handle(h.Points.Handler, h.Points.ListPoints, http.StatusOK))
	points.GET("/:id", handler.Handle(h.Points.Handler, h.Points.GetPoint, http.StatusOK))
	points.POST("", handler.Handle(h.Points.Handler, h.Points.CreatePoint, http.StatusOK), m.Global.UploadBodyLimit())
}

func registerItemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/items", handler.Handle(h.Items.Handler, h.Items.ListItems, http.StatusOK))
}
