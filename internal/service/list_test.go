package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/dto"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/listquery"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/model"
)

func seedReceipts(t *testing.T, l *ledger, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		l.receive(t, dto.ReceiveInboundRequest{
			Supplier:      fmt.Sprintf("Supplier %c", 'A'+i%3),
			InboundNumber: fmt.Sprintf("IN%03d", i),
			ProductName:   fmt.Sprintf("Product %d", i%2),
			Category:      "general",
			Quantity:      10 + i,
		})
	}
}

func TestInboundListPagination(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	seedReceipts(t, l, 7)

	page1, err := l.inbound.List(ctx, listquery.Params{Page: 1, PageSize: 3, Sort: "inbound_number ASC"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), page1.Total)
	assert.Equal(t, 1, page1.Page)
	assert.Equal(t, 3, page1.PageSize)
	require.Len(t, page1.Rows, 3)
	assert.Equal(t, "IN000", page1.Rows[0].InboundNumber)

	page3, err := l.inbound.List(ctx, listquery.Params{Page: 3, PageSize: 3, Sort: "inbound_number ASC"})
	require.NoError(t, err)
	require.Len(t, page3.Rows, 1)
	assert.Equal(t, "IN006", page3.Rows[0].InboundNumber)

	// past the end: still a valid, empty page
	page9, err := l.inbound.List(ctx, listquery.Params{Page: 9, PageSize: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(7), page9.Total)
	assert.Empty(t, page9.Rows)
}

func TestInboundListSearch(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	seedReceipts(t, l, 6)

	// supplier match, case-insensitive substring
	res, err := l.inbound.List(ctx, listquery.Params{Search: "supplier a"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Total)

	// inbound number match
	res, err = l.inbound.List(ctx, listquery.Params{Search: "IN003"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)

	// product name match through the join
	res, err = l.inbound.List(ctx, listquery.Params{Search: "Product 1"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Total)

	res, err = l.inbound.List(ctx, listquery.Params{Search: "no such thing"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Total)
}

func TestInboundListStatusFilter(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	seedReceipts(t, l, 4)

	_, err := l.inbound.BatchStatus(ctx, dto.BatchStatusRequest{IDs: []string{"IN000", "IN001"}, Status: "pending"})
	require.NoError(t, err)

	res, err := l.inbound.List(ctx, listquery.Params{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Total)

	res, err = l.inbound.List(ctx, listquery.Params{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Total)
}

func TestInboundListSortWhitelist(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	seedReceipts(t, l, 3)

	asc, err := l.inbound.List(ctx, listquery.Params{Sort: "quantity ASC"})
	require.NoError(t, err)
	require.Len(t, asc.Rows, 3)
	assert.Equal(t, 10, asc.Rows[0].Quantity)

	// hostile sort input silently falls back to the default ordering
	res, err := l.inbound.List(ctx, listquery.Params{Sort: "quantity; DROP TABLE inbound_records"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Total)

	// table is still there
	res, err = l.inbound.List(ctx, listquery.Params{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Total)
}

func TestInboundExportScopes(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	seedReceipts(t, l, 5)

	full, err := l.inbound.Export(ctx, listquery.Params{Page: 2, PageSize: 2, Export: "csv"})
	require.NoError(t, err)
	assert.Len(t, full, 5, "default export covers the whole filtered set")

	paged, err := l.inbound.Export(ctx, listquery.Params{
		Page: 2, PageSize: 2, Export: "csv", Scope: "page", Sort: "inbound_number ASC",
	})
	require.NoError(t, err)
	require.Len(t, paged, 2)
	assert.Equal(t, "IN002", paged[0].InboundNumber)

	rec := paged[0].CSVRecord()
	assert.Len(t, rec, len(dto.InboundCSVHeader))
	assert.Equal(t, "IN002", rec[0])
}

func TestInventoryStockStatusBuckets(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	// in-stock: above safety threshold (default 0)
	l.receive(t, dto.ReceiveInboundRequest{Supplier: "S", ProductName: "Plenty", Category: "c", Quantity: 10})
	// out-of-stock: received then fully shipped
	l.receive(t, dto.ReceiveInboundRequest{Supplier: "S", ProductName: "Gone", Category: "c", Quantity: 5})
	_, err := l.outbound.Ship(ctx, dto.ShipOutboundRequest{Customer: "A", ProductName: "Gone", Quantity: 5}, nil)
	require.NoError(t, err)
	// low-stock: stock above zero but under the safety threshold
	low := l.receive(t, dto.ReceiveInboundRequest{Supplier: "S", ProductName: "Scarce", Category: "c", Quantity: 2})
	require.NoError(t, l.db.Gorm().Model(&model.Product{}).
		Where("sku = ?", low.ProductSKU).
		Update("safety_stock", 5).Error)

	res, err := l.inventory.List(ctx, listquery.Params{Sort: "p.name ASC"})
	require.NoError(t, err)
	require.Equal(t, int64(3), res.Total)

	byName := map[string]string{}
	for _, row := range res.Rows {
		byName[row.Name] = row.StockStatus
	}
	assert.Equal(t, "in-stock", byName["Plenty"])
	assert.Equal(t, "out-of-stock", byName["Gone"])
	assert.Equal(t, "low-stock", byName["Scarce"])

	// filter on the derived column
	res, err = l.inventory.List(ctx, listquery.Params{Status: "low-stock"})
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "Scarce", res.Rows[0].Name)
}

func TestInventorySearchAndCategories(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	l.receive(t, dto.ReceiveInboundRequest{Supplier: "S", ProductName: "Steel Bolt", Category: "hardware", Quantity: 5})
	l.receive(t, dto.ReceiveInboundRequest{Supplier: "S", ProductName: "Steel Nut", Category: "hardware", Quantity: 5})
	l.receive(t, dto.ReceiveInboundRequest{Supplier: "S", ProductName: "Manila Rope", Category: "rigging", Quantity: 5})

	res, err := l.inventory.List(ctx, listquery.Params{Search: "steel"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Total)

	res, err = l.inventory.List(ctx, listquery.Params{Category: "rigging"})
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "Manila Rope", res.Rows[0].Name)

	cats, err := l.inventory.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"hardware", "rigging"}, cats)
}

func TestStats(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	l.receive(t, dto.ReceiveInboundRequest{Supplier: "S", ProductName: "A", Category: "c", Quantity: 30})
	l.receive(t, dto.ReceiveInboundRequest{Supplier: "S", ProductName: "B", Category: "c", Quantity: 20})
	_, err := l.outbound.Ship(ctx, dto.ShipOutboundRequest{Customer: "X", ProductName: "A", Quantity: 10}, nil)
	require.NoError(t, err)

	require.NoError(t, l.db.Gorm().Create(&model.Order{
		OrderNumber: "ORD1", UserID: 1, CustomerName: "X", ServiceType: "standard", Status: "shipped",
	}).Error)
	require.NoError(t, l.db.Gorm().Create(&model.Order{
		OrderNumber: "ORD2", UserID: 1, CustomerName: "Y", ServiceType: "standard", Status: "delivered",
		CreatedAt: time.Now().Add(-48 * time.Hour),
	}).Error)

	stats, err := l.inventory.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(40), stats.TotalInventory)
	assert.Equal(t, int64(2), stats.TodayInbound)
	assert.Equal(t, int64(1), stats.TodayOutbound)
	assert.Equal(t, int64(1), stats.InTransit)
}
