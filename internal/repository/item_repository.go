package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/ecoleta/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ItemRepository reads the seeded recyclable item categories.
type ItemRepository struct {
	pool *pgxpool.Pool
}

func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

// List returns every item ordered by id.
func (r *ItemRepository) List(ctx context.Context) ([]model.Item, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, image, title FROM items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Item])
	if err != nil {
		return nil, fmt.Errorf("scanning items: %w", err)
	}

	return items, nil
}
