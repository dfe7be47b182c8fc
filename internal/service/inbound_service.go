package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/apierror"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/dto"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/listquery"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/model"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/repository"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/storage"
)

// exportMaxRows caps a full-set CSV export.
const exportMaxRows = 100000

type InboundService interface {
	Receive(ctx context.Context, req dto.ReceiveInboundRequest, createdBy *uint) (*dto.ReceiveInboundResponse, error)
	List(ctx context.Context, p listquery.Params) (*dto.InboundListResponse, error)
	Export(ctx context.Context, p listquery.Params) ([]dto.InboundRow, error)
	Detail(ctx context.Context, number string) (*dto.InboundDetail, error)
	BatchStatus(ctx context.Context, req dto.BatchStatusRequest) (*dto.BatchResponse, error)
	BatchDelete(ctx context.Context, req dto.BatchDeleteRequest) (*dto.BatchResponse, error)
}

type inboundService struct {
	db       *storage.DB
	inbound  repository.InboundRepository
	products repository.ProductRepository
	log      zerolog.Logger
}

func NewInboundService(db *storage.DB, inbound repository.InboundRepository, products repository.ProductRepository, log zerolog.Logger) InboundService {
	return &inboundService{
		db:       db,
		inbound:  inbound,
		products: products,
		log:      log.With().Str("component", "inbound_service").Logger(),
	}
}

// Receive records a stock receipt: the product row is found or created, the
// history row inserted, and stock incremented — all inside one transaction so
// a duplicate inbound number can never leave a half-applied receipt behind.
func (s *inboundService) Receive(ctx context.Context, req dto.ReceiveInboundRequest, createdBy *uint) (*dto.ReceiveInboundResponse, error) {
	supplier := strings.TrimSpace(req.Supplier)
	productName := strings.TrimSpace(req.ProductName)
	category := strings.TrimSpace(req.Category)
	if supplier == "" || productName == "" || category == "" {
		return nil, apierror.Validation("supplier, productName and category are required")
	}
	if req.Quantity < 0 {
		return nil, apierror.Validation("quantity must be a non-negative integer")
	}

	number := strings.TrimSpace(req.InboundNumber)
	if number == "" {
		number = businessNumber("IN")
	}

	var totalAmount *decimal.Decimal
	if req.UnitPrice != nil {
		t := req.UnitPrice.Mul(decimal.NewFromInt(int64(req.Quantity)))
		totalAmount = &t
	}

	var sku string
	err := s.db.Transaction(ctx, func(tx *storage.DB) error {
		product, err := s.products.EnsureProduct(ctx, tx, productName, category)
		if err != nil {
			return err
		}
		sku = product.SKU

		rec := &model.InboundRecord{
			InboundNumber: number,
			Supplier:      supplier,
			ProductID:     product.ID,
			Quantity:      req.Quantity,
			UnitPrice:     req.UnitPrice,
			TotalAmount:   totalAmount,
			Status:        "completed",
			InboundTime:   listquery.NormalizeDate(req.InboundTime),
			Notes:         req.Notes,
			CreatedBy:     createdBy,
		}
		if err := s.inbound.Insert(ctx, tx, rec); err != nil {
			return err
		}
		return s.products.IncrementStock(ctx, tx, product.ID, req.Quantity)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("inbound_number", number).Str("product", productName).
		Int("quantity", req.Quantity).Msg("stock received")
	return &dto.ReceiveInboundResponse{
		Success:       true,
		InboundNumber: number,
		ProductSKU:    sku,
	}, nil
}

func (s *inboundService) List(ctx context.Context, p listquery.Params) (*dto.InboundListResponse, error) {
	p.Normalize()
	rows, total, err := s.inbound.List(ctx, p)
	if err != nil {
		return nil, err
	}
	return &dto.InboundListResponse{
		Page:     p.Page,
		PageSize: p.PageSize,
		Total:    total,
		Rows:     rows,
	}, nil
}

// Export returns the rows for a CSV download: the current page when
// scope=page, otherwise the whole filtered set.
func (s *inboundService) Export(ctx context.Context, p listquery.Params) ([]dto.InboundRow, error) {
	p.Normalize()
	if !p.PageScoped() {
		p.Page = 1
		p.PageSize = exportMaxRows
	}
	rows, _, err := s.inbound.List(ctx, p)
	return rows, err
}

func (s *inboundService) Detail(ctx context.Context, number string) (*dto.InboundDetail, error) {
	return s.inbound.Detail(ctx, number)
}

func (s *inboundService) BatchStatus(ctx context.Context, req dto.BatchStatusRequest) (*dto.BatchResponse, error) {
	if len(req.IDs) == 0 || strings.TrimSpace(req.Status) == "" {
		return nil, apierror.Validation("ids and status are required")
	}
	affected, err := s.inbound.BatchStatus(ctx, req.IDs, req.Status)
	if err != nil {
		return nil, err
	}
	return &dto.BatchResponse{Success: true, Affected: affected}, nil
}

// BatchDelete removes history rows without reversing the stock they moved;
// inventory reconciliation against the remaining history will diverge.
func (s *inboundService) BatchDelete(ctx context.Context, req dto.BatchDeleteRequest) (*dto.BatchResponse, error) {
	if len(req.IDs) == 0 {
		return nil, apierror.Validation("ids are required")
	}
	affected, err := s.inbound.BatchDelete(ctx, req.IDs)
	if err != nil {
		return nil, err
	}
	s.log.Warn().Int64("deleted", affected).Msg("inbound history deleted, stock not reversed")
	return &dto.BatchResponse{Success: true, Affected: affected}, nil
}
