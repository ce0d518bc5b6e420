package handler

import (
	"github.com/deppfellow/ecoleta/internal/server"
	"github.com/deppfellow/ecoleta/internal/service"
)

// Handlers groups all HTTP handlers so router setup receives one value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Points  *PointHandler
	Items   *ItemHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Points:  NewPointHandler(s, services.Points),
		Items:   NewItemHandler(s, services.Items),
	}
}
