//go:build integration

package infra_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/infra"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/model"
)

// Exercises the postgres leg of the driver switch against a real server:
// placeholder translation, RETURNING support, and the conditional decrement.
func TestPostgresBackend(t *testing.T) {
	ctx := context.Background()

	pg, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("logistics"),
		tcpostgres.WithUsername("logistics"),
		tcpostgres.WithPassword("logistics"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(pg) })

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := infra.NewDatabase("postgres", dsn, "")
	require.NoError(t, err)
	assert.Equal(t, "postgres", db.Driver())

	product := model.Product{SKU: "SKU-IT-1", Name: "Crate", Category: "packaging"}
	require.NoError(t, db.Gorm().Create(&product).Error)
	require.NoError(t, db.Gorm().Create(&model.Inventory{ProductID: product.ID, CurrentStock: 10, AvailableStock: 10}).Error)

	// `?` placeholders are translated to $n by the dialector
	var stock int
	require.NoError(t, db.FetchOne(ctx, &stock,
		`SELECT current_stock FROM inventory WHERE product_id = ?`, product.ID))
	assert.Equal(t, 10, stock)

	affected, err := db.Execute(ctx,
		`UPDATE inventory SET current_stock = current_stock - ? WHERE product_id = ? AND current_stock >= ?`,
		4, product.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = db.Execute(ctx,
		`UPDATE inventory SET current_stock = current_stock - ? WHERE product_id = ? AND current_stock >= ?`,
		100, product.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	id, err := db.InsertReturningID(ctx,
		`INSERT INTO products (sku, name, category, unit, safety_stock, created_at, updated_at)
		 VALUES (?, ?, ?, 'piece', 0, NOW(), NOW())`, "SKU-IT-2", "Drum", "packaging")
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))
}

func TestRedisConnection(t *testing.T) {
	ctx := context.Background()

	rc, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(rc) })

	uri, err := rc.ConnectionString(ctx)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(uri)
	require.NoError(t, err)
	assert.NoError(t, rdb.Ping(ctx).Err())
}
