package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/apierror"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/model"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/storage"
)

type ProductRepository interface {
	// EnsureProduct finds a product by name (case-insensitive) or creates
	// it (with a generated SKU and a zero inventory row). Receipt path only.
	EnsureProduct(ctx context.Context, db *storage.DB, name, category string) (*model.Product, error)
	// ResolveProduct finds an existing product by name or SKU,
	// case-insensitively. It never creates.
	ResolveProduct(ctx context.Context, db *storage.DB, nameOrSKU string) (*model.Product, error)
	IncrementStock(ctx context.Context, db *storage.DB, productID uint, qty int) error
	// DecrementStockIfAvailable atomically checks and decrements; it
	// reports false when on-hand stock is below qty.
	DecrementStockIfAvailable(ctx context.Context, db *storage.DB, productID uint, qty int) (bool, error)
	CurrentStock(ctx context.Context, db *storage.DB, productID uint) (int, error)
}

type productRepository struct{}

func NewProductRepository() ProductRepository {
	return &productRepository{}
}

var (
	skuMu        sync.Mutex
	lastSKUStamp int64
)

// nextSKU generates "SKU<unix-millis>" identifiers; the stamp is bumped under
// the lock so two products created in the same millisecond never collide.
func nextSKU() string {
	skuMu.Lock()
	defer skuMu.Unlock()
	ms := time.Now().UnixMilli()
	if ms <= lastSKUStamp {
		ms = lastSKUStamp + 1
	}
	lastSKUStamp = ms
	return fmt.Sprintf("SKU%d", ms)
}

func (r *productRepository) EnsureProduct(ctx context.Context, db *storage.DB, name, category string) (*model.Product, error) {
	var product model.Product
	err := db.Gorm().WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&product).Error
	if err == nil {
		return &product, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Storage("find product", err)
	}

	product = model.Product{
		SKU:      nextSKU(),
		Name:     name,
		Category: category,
	}
	if err := db.Gorm().WithContext(ctx).Create(&product).Error; err != nil {
		return nil, apierror.Storage("create product", err)
	}
	inv := model.Inventory{ProductID: product.ID, LastUpdated: time.Now()}
	if err := db.Gorm().WithContext(ctx).Create(&inv).Error; err != nil {
		return nil, apierror.Storage("create inventory", err)
	}
	return &product, nil
}

func (r *productRepository) ResolveProduct(ctx context.Context, db *storage.DB, nameOrSKU string) (*model.Product, error) {
	var product model.Product
	err := db.FetchOne(ctx, &product,
		`SELECT * FROM products WHERE LOWER(name) = LOWER(?) OR LOWER(sku) = LOWER(?) LIMIT 1`,
		nameOrSKU, nameOrSKU)
	if errors.Is(err, storage.ErrNoRows) {
		return nil, storage.ErrNoRows
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) IncrementStock(ctx context.Context, db *storage.DB, productID uint, qty int) error {
	affected, err := db.Execute(ctx,
		`UPDATE inventory
		    SET current_stock = current_stock + ?,
		        available_stock = available_stock + ?,
		        last_updated = ?
		  WHERE product_id = ?`,
		qty, qty, time.Now(), productID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apierror.Storage("increment stock", errors.New("inventory row missing"))
	}
	return nil
}

func (r *productRepository) DecrementStockIfAvailable(ctx context.Context, db *storage.DB, productID uint, qty int) (bool, error) {
	affected, err := db.Execute(ctx,
		`UPDATE inventory
		    SET current_stock = current_stock - ?,
		        available_stock = available_stock - ?,
		        last_updated = ?
		  WHERE product_id = ? AND current_stock >= ?`,
		qty, qty, time.Now(), productID, qty)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *productRepository) CurrentStock(ctx context.Context, db *storage.DB, productID uint) (int, error) {
	var stock int
	err := db.FetchOne(ctx, &stock,
		`SELECT current_stock FROM inventory WHERE product_id = ?`, productID)
	if errors.Is(err, storage.ErrNoRows) {
		return 0, storage.ErrNoRows
	}
	if err != nil {
		return 0, err
	}
	return stock, nil
}
