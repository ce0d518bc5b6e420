//go:build integration

package repository

// Integration tests against a real PostgreSQL started with testcontainers.
// Run with: go test -tags integration ./internal/repository/...

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/ecoleta/internal/database"
	"github.com/deppfellow/ecoleta/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// Seeded by 004_seed_items.sql.
const (
	itemLamps       int64 = 1
	itemBatteries   int64 = 2
	itemPaper       int64 = 3
	itemElectronics int64 = 4
	itemOrganic     int64 = 5
	itemOil         int64 = 6
)

func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("ecoleta_test"),
		tcPostgres.WithUsername("ecoleta"),
		tcPostgres.WithPassword("ecoleta"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(pgC) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	conn, err := pgx.Connect(ctx, dsn)
	require.NoError(t, err)
	log := zerolog.Nop()
	require.NoError(t, database.MigrateConn(ctx, &log, conn))
	require.NoError(t, conn.Close(ctx))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func newPoint(name, city, uf string) model.Point {
	return model.Point{
		Image:     name + ".jpg",
		Name:      name,
		Email:     name + "@ecoleta.dev",
		Whatsapp:  "5511999999999",
		Latitude:  decimal.RequireFromString("-23.550520"),
		Longitude: decimal.RequireFromString("-46.633308"),
		City:      city,
		UF:        uf,
	}
}

func countRows(t *testing.T, pool *pgxpool.Pool, q string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, pool.QueryRow(context.Background(), q, args...).Scan(&n))
	return n
}

func TestPointRepository(t *testing.T) {
	pool := setupPool(t)
	points := NewPointRepository(pool)
	items := NewItemRepository(pool)
	ctx := context.Background()

	t.Run("items are seeded", func(t *testing.T) {
		all, err := items.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 6)
		assert.Equal(t, "Lâmpadas", all[0].Title)
		assert.Equal(t, "lampadas.svg", all[0].Image)
	})

	t.Run("create writes one association per id, duplicates kept", func(t *testing.T) {
		created, err := points.CreateWithItems(ctx, newPoint("dup", "Recife", "PE"), model.ItemIDs{itemPaper, itemPaper, itemOil})
		require.NoError(t, err)
		require.NotZero(t, created.ID)

		n := countRows(t, pool, `SELECT count(*) FROM point_items WHERE point_id = $1`, created.ID)
		assert.Equal(t, 3, n)
	})

	t.Run("failed association insert leaves no point behind", func(t *testing.T) {
		before := countRows(t, pool, `SELECT count(*) FROM points`)

		_, err := points.CreateWithItems(ctx, newPoint("ghost", "Natal", "RN"), model.ItemIDs{itemLamps, 999999})
		require.Error(t, err)

		var pgErr *pgconn.PgError
		require.True(t, errors.As(err, &pgErr))
		assert.Equal(t, "23503", pgErr.Code)

		assert.Equal(t, before, countRows(t, pool, `SELECT count(*) FROM points`))
		assert.Equal(t, 0, countRows(t, pool, `SELECT count(*) FROM points WHERE name = 'ghost'`))
	})

	t.Run("uf must have two characters", func(t *testing.T) {
		_, err := points.CreateWithItems(ctx, newPoint("longuf", "Natal", "R"), model.ItemIDs{itemLamps})
		require.Error(t, err)
	})

	t.Run("list filters by city, uf and items without duplicates", func(t *testing.T) {
		both, err := points.CreateWithItems(ctx, newPoint("both", "Campinas", "SP"), model.ItemIDs{itemLamps, itemBatteries})
		require.NoError(t, err)
		onlyOne, err := points.CreateWithItems(ctx, newPoint("one", "Campinas", "SP"), model.ItemIDs{itemBatteries})
		require.NoError(t, err)
		_, err = points.CreateWithItems(ctx, newPoint("other-items", "Campinas", "SP"), model.ItemIDs{itemOrganic})
		require.NoError(t, err)
		_, err = points.CreateWithItems(ctx, newPoint("other-city", "Santos", "SP"), model.ItemIDs{itemLamps})
		require.NoError(t, err)
		_, err = points.CreateWithItems(ctx, newPoint("other-uf", "Campinas", "MG"), model.ItemIDs{itemLamps})
		require.NoError(t, err)

		found, err := points.List(ctx, model.PointFilter{City: "Campinas", UF: "SP", ItemIDs: model.ItemIDs{itemLamps, itemBatteries}})
		require.NoError(t, err)

		require.Len(t, found, 2)
		assert.Equal(t, both.ID, found[0].ID)
		assert.Equal(t, onlyOne.ID, found[1].ID)
		assert.True(t, decimal.RequireFromString("-23.550520").Equal(found[0].Latitude))
	})

	t.Run("list with no match is empty, not nil", func(t *testing.T) {
		found, err := points.List(ctx, model.PointFilter{City: "Nowhere", UF: "XX", ItemIDs: model.ItemIDs{itemLamps}})
		require.NoError(t, err)
		assert.NotNil(t, found)
		assert.Empty(t, found)
	})

	t.Run("round trip returns the titles of the registered items", func(t *testing.T) {
		created, err := points.CreateWithItems(ctx, newPoint("roundtrip", "Salvador", "BA"), model.ItemIDs{itemPaper, itemElectronics, itemOrganic})
		require.NoError(t, err)

		got, err := points.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "roundtrip", got.Name)
		assert.Equal(t, "BA", got.UF)

		titles, err := points.ListItemTitles(ctx, created.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Papéis e Papelão", "Resíduos Eletrônicos", "Resíduos Orgânicos"}, titles)
	})

	t.Run("unknown id is ErrPointNotFound", func(t *testing.T) {
		_, err := points.GetByID(ctx, 999999)
		assert.ErrorIs(t, err, ErrPointNotFound)
	})

	t.Run("deleting a point cascades to its associations", func(t *testing.T) {
		created, err := points.CreateWithItems(ctx, newPoint("cascade", "Belém", "PA"), model.ItemIDs{itemOil})
		require.NoError(t, err)

		_, err = pool.Exec(ctx, `DELETE FROM points WHERE id = $1`, created.ID)
		require.NoError(t, err)

		assert.Equal(t, 0, countRows(t, pool, `SELECT count(*) FROM point_items WHERE point_id = $1`, created.ID))
	})
}
