package handler

import (
	"context"

	"github.com/deppfellow/ecoleta/internal/dto"
	"github.com/deppfellow/ecoleta/internal/model"
	"github.com/deppfellow/ecoleta/internal/server"
	"github.com/labstack/echo/v4"
)

// ItemService is what ItemHandler needs from the service layer.
type ItemService interface {
	List(ctx context.Context) ([]model.Item, error)
}

// ItemHandler serves /items.
type ItemHandler struct {
	Handler
	items ItemService
}

func NewItemHandler(s *server.Server, items ItemService) *ItemHandler {
	return &ItemHandler{
		Handler: NewHandler(s),
		items:   items,
	}
}

// ListItems handles GET /items.
func (h *ItemHandler) ListItems(c echo.Context, _ *dto.ListItemsRequest) ([]dto.ItemResponse, error) {
	items, err := h.items.List(c.Request().Context())
	if err != nil {
		return nil, err
	}

	return dto.NewItemResponses(items, h.server.Config.Server.PublicURL), nil
}
