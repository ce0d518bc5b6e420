package service

import (
	"context"

	"github.com/deppfellow/ecoleta/internal/model"
)

// ItemStore is the repository surface ItemService needs.
type ItemStore interface {
	List(ctx context.Context) ([]model.Item, error)
}

// ItemService lists the recyclable item categories.
type ItemService struct {
	items ItemStore
}

func NewItemService(items ItemStore) *ItemService {
	return &ItemService{items: items}
}

func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	return s.items.List(ctx)
}
