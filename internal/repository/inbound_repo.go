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

// InboundSortFields is the whitelist for the inbound list's sort parameter.
var InboundSortFields = []string{"inbound_number", "supplier", "quantity", "created_at", "status"}

const inboundDefaultSort = "created_at DESC"

type InboundRepository interface {
	Insert(ctx context.Context, db *storage.DB, rec *model.InboundRecord) error
	List(ctx context.Context, p listquery.Params) ([]dto.InboundRow, int64, error)
	FindByNumber(ctx context.Context, db *storage.DB, number string) (*model.InboundRecord, error)
	Detail(ctx context.Context, number string) (*dto.InboundDetail, error)
	BatchStatus(ctx context.Context, numbers []string, status string) (int64, error)
	BatchDelete(ctx context.Context, numbers []string) (int64, error)
}

type inboundRepository struct {
	db *storage.DB
}

func NewInboundRepository(db *storage.DB) InboundRepository {
	return &inboundRepository{db: db}
}

func (r *inboundRepository) Insert(ctx context.Context, db *storage.DB, rec *model.InboundRecord) error {
	if err := db.Gorm().WithContext(ctx).Create(rec).Error; err != nil {
		if storage.IsUniqueViolation(err) {
			return apierror.Conflict("inbound number already exists")
		}
		return apierror.Storage("insert inbound record", err)
	}
	return nil
}

func (r *inboundRepository) inboundWhere(p listquery.Params) *whereClause {
	w := &whereClause{}
	if p.Search != "" {
		like := listquery.Like(p.Search)
		w.add(`(LOWER(ir.inbound_number) LIKE LOWER(?)
			OR LOWER(p.name) LIKE LOWER(?)
			OR LOWER(p.sku) LIKE LOWER(?)
			OR LOWER(ir.supplier) LIKE LOWER(?))`, like, like, like, like)
	}
	if p.Status != "" {
		w.add("ir.status = ?", p.Status)
	}
	from, to := listquery.DateRange(p.StartDate, p.EndDate)
	w.addRange("ir.created_at", from, to)
	return w
}

func (r *inboundRepository) List(ctx context.Context, p listquery.Params) ([]dto.InboundRow, int64, error) {
	w := r.inboundWhere(p)
	base := ` FROM inbound_records ir JOIN products p ON p.id = ir.product_id` + w.sql()

	var total int64
	if err := r.db.FetchOne(ctx, &total, "SELECT COUNT(*)"+base, w.args...); err != nil {
		return nil, 0, err
	}

	order := listquery.SanitizeSort(p.Sort, InboundSortFields, inboundDefaultSort)
	query := `SELECT ir.inbound_number, ir.supplier, ir.quantity,
		ir.created_at AS created_at, ir.status AS status,
		p.name AS product_name, p.sku AS sku` + base +
		" ORDER BY " + order + " LIMIT ? OFFSET ?"

	rows := []dto.InboundRow{}
	args := append(append([]interface{}{}, w.args...), p.PageSize, p.Offset())
	if err := r.db.FetchAll(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *inboundRepository) FindByNumber(ctx context.Context, db *storage.DB, number string) (*model.InboundRecord, error) {
	var rec model.InboundRecord
	err := db.FetchOne(ctx, &rec,
		`SELECT * FROM inbound_records WHERE inbound_number = ?`, number)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *inboundRepository) Detail(ctx context.Context, number string) (*dto.InboundDetail, error) {
	var detail dto.InboundDetail
	err := r.db.FetchOne(ctx, &detail,
		`SELECT ir.id, ir.inbound_number, ir.supplier, ir.product_id, ir.quantity,
			ir.unit_price, ir.total_amount, ir.status, ir.inbound_time,
			ir.notes, ir.created_by, ir.created_at,
			p.name AS product_name, p.sku AS sku
		   FROM inbound_records ir
		   JOIN products p ON p.id = ir.product_id
		  WHERE ir.inbound_number = ?`, number)
	if errors.Is(err, storage.ErrNoRows) {
		return nil, apierror.NotFound("inbound record not found")
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *inboundRepository) BatchStatus(ctx context.Context, numbers []string, status string) (int64, error) {
	tx := r.db.Gorm().WithContext(ctx).
		Model(&model.InboundRecord{}).
		Where("inbound_number IN ?", numbers).
		Update("status", status)
	if tx.Error != nil {
		return 0, apierror.Storage("batch status inbound", tx.Error)
	}
	return tx.RowsAffected, nil
}

func (r *inboundRepository) BatchDelete(ctx context.Context, numbers []string) (int64, error) {
	tx := r.db.Gorm().WithContext(ctx).
		Where("inbound_number IN ?", numbers).
		Delete(&model.InboundRecord{})
	if tx.Error != nil {
		return 0, apierror.Storage("batch delete inbound", tx.Error)
	}
	return tx.RowsAffected, nil
}
