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

// OutboundSortFields is the whitelist for the outbound list's sort parameter.
var OutboundSortFields = []string{"outbound_number", "customer", "quantity", "created_at", "status"}

const outboundDefaultSort = "created_at DESC"

type OutboundRepository interface {
	Insert(ctx context.Context, db *storage.DB, rec *model.OutboundRecord) error
	List(ctx context.Context, p listquery.Params) ([]dto.OutboundRow, int64, error)
	Detail(ctx context.Context, number string) (*dto.OutboundDetail, error)
	BatchStatus(ctx context.Context, numbers []string, status string) (int64, error)
	BatchDelete(ctx context.Context, numbers []string) (int64, error)
}

type outboundRepository struct {
	db *storage.DB
}

func NewOutboundRepository(db *storage.DB) OutboundRepository {
	return &outboundRepository{db: db}
}

func (r *outboundRepository) Insert(ctx context.Context, db *storage.DB, rec *model.OutboundRecord) error {
	if err := db.Gorm().WithContext(ctx).Create(rec).Error; err != nil {
		if storage.IsUniqueViolation(err) {
			return apierror.Conflict("outbound number already exists")
		}
		return apierror.Storage("insert outbound record", err)
	}
	return nil
}

func (r *outboundRepository) outboundWhere(p listquery.Params) *whereClause {
	w := &whereClause{}
	if p.Search != "" {
		like := listquery.Like(p.Search)
		w.add(`(LOWER(ob.outbound_number) LIKE LOWER(?)
			OR LOWER(p.name) LIKE LOWER(?)
			OR LOWER(ob.customer) LIKE LOWER(?))`, like, like, like)
	}
	if p.Status != "" {
		w.add("ob.status = ?", p.Status)
	}
	from, to := listquery.DateRange(p.StartDate, p.EndDate)
	w.addRange("ob.created_at", from, to)
	return w
}

func (r *outboundRepository) List(ctx context.Context, p listquery.Params) ([]dto.OutboundRow, int64, error) {
	w := r.outboundWhere(p)
	base := ` FROM outbound_records ob JOIN products p ON p.id = ob.product_id` + w.sql()

	var total int64
	if err := r.db.FetchOne(ctx, &total, "SELECT COUNT(*)"+base, w.args...); err != nil {
		return nil, 0, err
	}

	order := listquery.SanitizeSort(p.Sort, OutboundSortFields, outboundDefaultSort)
	query := `SELECT ob.outbound_number, ob.customer, ob.quantity,
		ob.created_at AS created_at, ob.status AS status,
		p.name AS product_name, p.sku AS sku` + base +
		" ORDER BY " + order + " LIMIT ? OFFSET ?"

	rows := []dto.OutboundRow{}
	args := append(append([]interface{}{}, w.args...), p.PageSize, p.Offset())
	if err := r.db.FetchAll(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *outboundRepository) Detail(ctx context.Context, number string) (*dto.OutboundDetail, error) {
	var detail dto.OutboundDetail
	err := r.db.FetchOne(ctx, &detail,
		`SELECT ob.id, ob.outbound_number, ob.order_id, ob.customer, ob.product_id,
			ob.quantity, ob.destination, ob.status, ob.outbound_time,
			ob.notes, ob.created_by, ob.created_at,
			ir.inbound_number AS inbound_number,
			p.name AS product_name, p.sku AS sku
		   FROM outbound_records ob
		   JOIN products p ON p.id = ob.product_id
		   LEFT JOIN inbound_records ir ON ir.id = ob.inbound_record_id
		  WHERE ob.outbound_number = ?`, number)
	if errors.Is(err, storage.ErrNoRows) {
		return nil, apierror.NotFound("outbound record not found")
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *outboundRepository) BatchStatus(ctx context.Context, numbers []string, status string) (int64, error) {
	tx := r.db.Gorm().WithContext(ctx).
		Model(&model.OutboundRecord{}).
		Where("outbound_number IN ?", numbers).
		Update("status", status)
	if tx.Error != nil {
		return 0, apierror.Storage("batch status outbound", tx.Error)
	}
	return tx.RowsAffected, nil
}

func (r *outboundRepository) BatchDelete(ctx context.Context, numbers []string) (int64, error) {
	tx := r.db.Gorm().WithContext(ctx).
		Where("outbound_number IN ?", numbers).
		Delete(&model.OutboundRecord{})
	if tx.Error != nil {
		return 0, apierror.Storage("batch delete outbound", tx.Error)
	}
	return tx.RowsAffected, nil
}
