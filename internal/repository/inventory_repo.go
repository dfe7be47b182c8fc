package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/apierror"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/dto"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/listquery"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/storage"
)

// InventorySortFields is the whitelist for the stock overview's sort
// parameter. stock_status sorts on the derived column.
var InventorySortFields = []string{"p.sku", "p.name", "p.category", "i.current_stock", "p.safety_stock", "stock_status", "p.created_at"}

const inventoryDefaultSort = "p.created_at DESC"

// stockStatusExpr buckets each product by its safety threshold.
const stockStatusExpr = `CASE
	WHEN i.current_stock > p.safety_stock THEN 'in-stock'
	WHEN i.current_stock > 0 THEN 'low-stock'
	ELSE 'out-of-stock'
END`

type InventoryRepository interface {
	List(ctx context.Context, p listquery.Params) ([]dto.InventoryRow, int64, error)
	DetailBySKU(ctx context.Context, sku string) (*dto.InventoryDetail, error)
	TotalStock(ctx context.Context) (int64, error)
	Categories(ctx context.Context) ([]string, error)
	MovementCounts(ctx context.Context, from, to time.Time) (inbound, outbound int64, err error)
}

type inventoryRepository struct {
	db *storage.DB
}

func NewInventoryRepository(db *storage.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) inventoryWhere(p listquery.Params) *whereClause {
	w := &whereClause{}
	if p.Search != "" {
		like := listquery.Like(p.Search)
		w.add(`(LOWER(p.name) LIKE LOWER(?)
			OR LOWER(p.sku) LIKE LOWER(?)
			OR LOWER(COALESCE(p.description, '')) LIKE LOWER(?))`, like, like, like)
	}
	if p.Category != "" {
		w.add("p.category = ?", p.Category)
	}
	if p.Status != "" {
		w.add(stockStatusExpr+" = ?", p.Status)
	}
	return w
}

func (r *inventoryRepository) List(ctx context.Context, p listquery.Params) ([]dto.InventoryRow, int64, error) {
	w := r.inventoryWhere(p)
	base := ` FROM inventory i JOIN products p ON p.id = i.product_id` + w.sql()

	var total int64
	if err := r.db.FetchOne(ctx, &total, "SELECT COUNT(*)"+base, w.args...); err != nil {
		return nil, 0, err
	}

	order := listquery.SanitizeSort(p.Sort, InventorySortFields, inventoryDefaultSort)
	query := `SELECT p.sku, p.name, p.category, p.safety_stock,
		i.current_stock, i.available_stock, i.reserved_stock, i.last_updated,
		` + stockStatusExpr + ` AS stock_status` + base +
		" ORDER BY " + order + " LIMIT ? OFFSET ?"

	rows := []dto.InventoryRow{}
	args := append(append([]interface{}{}, w.args...), p.PageSize, p.Offset())
	if err := r.db.FetchAll(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *inventoryRepository) DetailBySKU(ctx context.Context, sku string) (*dto.InventoryDetail, error) {
	var detail dto.InventoryDetail
	err := r.db.FetchOne(ctx, &detail,
		`SELECT p.id, p.sku, p.name, p.category, p.description, p.unit,
			p.safety_stock, p.created_at,
			i.current_stock, i.available_stock, i.reserved_stock, i.last_updated,
			`+stockStatusExpr+` AS stock_status
		   FROM products p
		   JOIN inventory i ON i.product_id = p.id
		  WHERE p.sku = ?`, sku)
	if errors.Is(err, storage.ErrNoRows) {
		return nil, apierror.NotFound("product not found")
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *inventoryRepository) TotalStock(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.FetchOne(ctx, &total,
		`SELECT COALESCE(SUM(current_stock), 0) FROM inventory`)
	if errors.Is(err, storage.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *inventoryRepository) Categories(ctx context.Context) ([]string, error) {
	cats := []string{}
	err := r.db.FetchAll(ctx, &cats,
		`SELECT DISTINCT category FROM products ORDER BY category`)
	if err != nil {
		return nil, err
	}
	return cats, nil
}

// MovementCounts counts inbound and outbound records created in [from, to).
func (r *inventoryRepository) MovementCounts(ctx context.Context, from, to time.Time) (int64, int64, error) {
	var inbound, outbound int64
	if err := r.db.FetchOne(ctx, &inbound,
		`SELECT COUNT(*) FROM inbound_records WHERE created_at >= ? AND created_at < ?`,
		from, to); err != nil {
		return 0, 0, err
	}
	if err := r.db.FetchOne(ctx, &outbound,
		`SELECT COUNT(*) FROM outbound_records WHERE created_at >= ? AND created_at < ?`,
		from, to); err != nil {
		return 0, 0, err
	}
	return inbound, outbound, nil
}
