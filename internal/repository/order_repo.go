package repository

import (
	"context"
	"errors"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/apierror"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/dto"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/listquery"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/model"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/storage"
)

// OrderSortFields is the whitelist for the order list's sort parameter.
var OrderSortFields = []string{"order_number", "customer_name", "total_weight", "total_amount", "service_type", "created_at", "status"}

const orderDefaultSort = "created_at DESC"

type OrderRepository interface {
	List(ctx context.Context, p listquery.Params) ([]dto.OrderRow, int64, error)
	Detail(ctx context.Context, number string) (*dto.OrderDetailResponse, error)
	BatchStatus(ctx context.Context, numbers []string, status string) (int64, error)
	BatchDelete(ctx context.Context, numbers []string) (int64, error)
	CountByStatuses(ctx context.Context, statuses []string) (int64, error)
}

type orderRepository struct {
	db *storage.DB
}

func NewOrderRepository(db *storage.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) orderWhere(p listquery.Params) *whereClause {
	w := &whereClause{}
	if p.Search != "" {
		like := listquery.Like(p.Search)
		w.add(`(LOWER(order_number) LIKE LOWER(?)
			OR LOWER(customer_name) LIKE LOWER(?)
			OR LOWER(COALESCE(customer_phone, '')) LIKE LOWER(?)
			OR LOWER(COALESCE(customer_address, '')) LIKE LOWER(?))`, like, like, like, like)
	}
	if p.Status != "" {
		w.add("status = ?", p.Status)
	}
	from, to := listquery.DateRange(p.StartDate, p.EndDate)
	w.addRange("created_at", from, to)
	return w
}

func (r *orderRepository) List(ctx context.Context, p listquery.Params) ([]dto.OrderRow, int64, error) {
	w := r.orderWhere(p)
	base := ` FROM orders` + w.sql()

	var total int64
	if err := r.db.FetchOne(ctx, &total, "SELECT COUNT(*)"+base, w.args...); err != nil {
		return nil, 0, err
	}

	order := listquery.SanitizeSort(p.Sort, OrderSortFields, orderDefaultSort)
	query := `SELECT order_number, customer_name, total_weight, total_amount,
		service_type, status, created_at` + base +
		" ORDER BY " + order + " LIMIT ? OFFSET ?"

	rows := []dto.OrderRow{}
	args := append(append([]interface{}{}, w.args...), p.PageSize, p.Offset())
	if err := r.db.FetchAll(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *orderRepository) Detail(ctx context.Context, number string) (*dto.OrderDetailResponse, error) {
	var order dto.OrderDetail
	err := r.db.FetchOne(ctx, &order,
		`SELECT id, order_number, user_id, customer_name, customer_phone,
			customer_address, service_type, total_weight, total_amount,
			status, notes, created_at
		   FROM orders WHERE order_number = ?`, number)
	if errors.Is(err, storage.ErrNoRows) {
		return nil, apierror.NotFound("order not found")
	}
	if err != nil {
		return nil, err
	}

	items := []dto.OrderItemRow{}
	err = r.db.FetchAll(ctx, &items,
		`SELECT id, product_id, quantity, unit_price, total_price
		   FROM order_items WHERE order_id = ? ORDER BY id`, order.ID)
	if err != nil {
		return nil, err
	}
	return &dto.OrderDetailResponse{Order: order, Items: items}, nil
}

func (r *orderRepository) BatchStatus(ctx context.Context, numbers []string, status string) (int64, error) {
	tx := r.db.Gorm().WithContext(ctx).
		Model(&model.Order{}).
		Where("order_number IN ?", numbers).
		Update("status", status)
	if tx.Error != nil {
		return 0, apierror.Storage("batch status orders", tx.Error)
	}
	return tx.RowsAffected, nil
}

func (r *orderRepository) BatchDelete(ctx context.Context, numbers []string) (int64, error) {
	tx := r.db.Gorm().WithContext(ctx).
		Where("order_number IN ?", numbers).
		Delete(&model.Order{})
	if tx.Error != nil {
		return 0, apierror.Storage("batch delete orders", tx.Error)
	}
	return tx.RowsAffected, nil
}

func (r *orderRepository) CountByStatuses(ctx context.Context, statuses []string) (int64, error) {
	var count int64
	err := r.db.Gorm().WithContext(ctx).
		Model(&model.Order{}).
		Where("status IN ?", statuses).
		Count(&count).Error
	if err != nil {
		return 0, apierror.Storage("count orders", err)
	}
	return count, nil
}
