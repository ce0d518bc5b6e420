package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/ecoleta/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PointRepository reads and writes collection points.
type PointRepository struct {
	pool *pgxpool.Pool
}

// NewPointRepository builds a repository over an existing pool.
func NewPointRepository(pool *pgxpool.Pool) *PointRepository {
	return &PointRepository{pool: pool}
}

const pointColumns = `p.id, p.image, p.name, p.email, p.whatsapp, p.latitude, p.longitude, p.city, p.uf`

// List returns the points in filter.City/filter.UF accepting at least one of
// filter.ItemIDs. A point matching several items is returned once.
func (r *PointRepository) List(ctx context.Context, filter model.PointFilter) ([]model.Point, error) {
	const q = `
		SELECT DISTINCT ` + pointColumns + `
		FROM points p
		JOIN point_items pi ON pi.point_id = p.id
		WHERE pi.item_id = ANY($1)
		  AND p.city = $2
		  AND p.uf = $3
		ORDER BY p.id
	`

	rows, err := r.pool.Query(ctx, q, []int64(filter.ItemIDs), filter.City, filter.UF)
	if err != nil {
		return nil, fmt.Errorf("querying points: %w", err)
	}

	points, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Point])
	if err != nil {
		return nil, fmt.Errorf("scanning points: %w", err)
	}

	return points, nil
}

// GetByID returns a single point or ErrPointNotFound.
func (r *PointRepository) GetByID(ctx context.Context, id int64) (*model.Point, error) {
	const q = `SELECT ` + pointColumns + ` FROM points p WHERE p.id = $1`

	rows, err := r.pool.Query(ctx, q, id)
	if err != nil {
		return nil, fmt.Errorf("querying point %d: %w", id, err)
	}

	point, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Point])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPointNotFound
		}
		return nil, fmt.Errorf("scanning point %d: %w", id, err)
	}

	return &point, nil
}

// ListItemTitles returns the titles of the items a point accepts, in the
// order the associations were created.
func (r *PointRepository) ListItemTitles(ctx context.Context, pointID int64) ([]string, error) {
	const q = `
		SELECT i.title
		FROM items i
		JOIN point_items pi ON pi.item_id = i.id
		WHERE pi.point_id = $1
		ORDER BY pi.id
	`

	rows, err := r.pool.Query(ctx, q, pointID)
	if err != nil {
		return nil, fmt.Errorf("querying items of point %d: %w", pointID, err)
	}

	titles, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scanning items of point %d: %w", pointID, err)
	}

	return titles, nil
}

// CreateWithItems inserts point and one point_items row per entry of
// itemIDs in a single transaction. On any failure nothing is persisted.
//
// The returned point carries the id assigned by the store.
func (r *PointRepository) CreateWithItems(ctx context.Context, point model.Point, itemIDs model.ItemIDs) (*model.Point, error) {
	const insertPoint = `
		INSERT INTO points (image, name, email, whatsapp, latitude, longitude, city, uf)
		VALUES ($1, $2, $3, $4, $5::numeric, $6::numeric, $7, $8)
		RETURNING id
	`
	// One statement for the whole batch; duplicates in $2 become duplicate rows.
	const insertPointItems = `
		INSERT INTO point_items (point_id, item_id)
		SELECT $1, item_id FROM unnest($2::bigint[]) AS item_id
	`

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertPoint,
			point.Image,
			point.Name,
			point.Email,
			point.Whatsapp,
			point.Latitude.String(),
			point.Longitude.String(),
			point.City,
			point.UF,
		).Scan(&point.ID)
		if err != nil {
			return fmt.Errorf("inserting point: %w", err)
		}

		tag, err := tx.Exec(ctx, insertPointItems, point.ID, []int64(itemIDs))
		if err != nil {
			return fmt.Errorf("inserting point items: %w", err)
		}
		if tag.RowsAffected() != int64(len(itemIDs)) {
			return fmt.Errorf("inserting point items: wrote %d of %d rows", tag.RowsAffected(), len(itemIDs))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &point, nil
}
