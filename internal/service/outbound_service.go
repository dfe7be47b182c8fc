package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/apierror"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/dto"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/listquery"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/model"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/repository"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/storage"
)

type OutboundService interface {
	Ship(ctx context.Context, req dto.ShipOutboundRequest, createdBy *uint) (*dto.ShipOutboundResponse, error)
	List(ctx context.Context, p listquery.Params) (*dto.OutboundListResponse, error)
	Export(ctx context.Context, p listquery.Params) ([]dto.OutboundRow, error)
	Detail(ctx context.Context, number string) (*dto.OutboundDetail, error)
	BatchStatus(ctx context.Context, req dto.BatchStatusRequest) (*dto.BatchResponse, error)
	BatchDelete(ctx context.Context, req dto.BatchDeleteRequest) (*dto.BatchResponse, error)
}

type outboundService struct {
	db       *storage.DB
	outbound repository.OutboundRepository
	inbound  repository.InboundRepository
	products repository.ProductRepository
	log      zerolog.Logger
}

func NewOutboundService(db *storage.DB, outbound repository.OutboundRepository, inbound repository.InboundRepository, products repository.ProductRepository, log zerolog.Logger) OutboundService {
	return &outboundService{
		db:       db,
		outbound: outbound,
		inbound:  inbound,
		products: products,
		log:      log.With().Str("component", "outbound_service").Logger(),
	}
}

// Ship records a stock shipment. The stock check and decrement are one
// conditional UPDATE, so two concurrent shipments can never take the same
// units; everything runs inside a transaction and a failed check leaves no
// side effects.
func (s *outboundService) Ship(ctx context.Context, req dto.ShipOutboundRequest, createdBy *uint) (*dto.ShipOutboundResponse, error) {
	customer := strings.TrimSpace(req.Customer)
	productName := strings.TrimSpace(req.ProductName)
	if customer == "" || productName == "" {
		return nil, apierror.Validation("customer and productName are required")
	}
	if req.Quantity <= 0 {
		return nil, apierror.Validation("quantity must be a positive integer")
	}

	number := businessNumber("OUT")
	var (
		remaining  int
		inboundRef *string
	)
	err := s.db.Transaction(ctx, func(tx *storage.DB) error {
		product, err := s.products.ResolveProduct(ctx, tx, productName)
		if errors.Is(err, storage.ErrNoRows) {
			return apierror.NotFound("product not found: %s", productName)
		}
		if err != nil {
			return err
		}

		var inboundID *uint
		if ref := strings.TrimSpace(req.Ref()); ref != "" {
			lot, err := s.inbound.FindByNumber(ctx, tx, ref)
			if errors.Is(err, storage.ErrNoRows) {
				return apierror.NotFound("inbound record not found: %s", ref)
			}
			if err != nil {
				return err
			}
			inboundID = &lot.ID
			inboundRef = &lot.InboundNumber
		}

		ok, err := s.products.DecrementStockIfAvailable(ctx, tx, product.ID, req.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			available, err := s.products.CurrentStock(ctx, tx, product.ID)
			if err != nil && !errors.Is(err, storage.ErrNoRows) {
				return err
			}
			return apierror.InsufficientStock(available)
		}

		rec := &model.OutboundRecord{
			OutboundNumber:  number,
			InboundRecordID: inboundID,
			Customer:        customer,
			ProductID:       product.ID,
			Quantity:        req.Quantity,
			Destination:     req.Destination,
			Status:          "completed",
			OutboundTime:    listquery.NormalizeDate(req.OutboundTime),
			Notes:           req.Notes,
			CreatedBy:       createdBy,
		}
		if err := s.outbound.Insert(ctx, tx, rec); err != nil {
			return err
		}

		remaining, err = s.products.CurrentStock(ctx, tx, product.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("outbound_number", number).Str("product", productName).
		Int("quantity", req.Quantity).Int("remaining", remaining).Msg("stock shipped")
	return &dto.ShipOutboundResponse{
		Success:        true,
		OutboundNumber: number,
		Remaining:      remaining,
		InboundRef:     inboundRef,
	}, nil
}

func (s *outboundService) List(ctx context.Context, p listquery.Params) (*dto.OutboundListResponse, error) {
	p.Normalize()
	rows, total, err := s.outbound.List(ctx, p)
	if err != nil {
		return nil, err
	}
	return &dto.OutboundListResponse{
		Page:     p.Page,
		PageSize: p.PageSize,
		Total:    total,
		Rows:     rows,
	}, nil
}

func (s *outboundService) Export(ctx context.Context, p listquery.Params) ([]dto.OutboundRow, error) {
	p.Normalize()
	if !p.PageScoped() {
		p.Page = 1
		p.PageSize = exportMaxRows
	}
	rows, _, err := s.outbound.List(ctx, p)
	return rows, err
}

func (s *outboundService) Detail(ctx context.Context, number string) (*dto.OutboundDetail, error) {
	return s.outbound.Detail(ctx, number)
}

func (s *outboundService) BatchStatus(ctx context.Context, req dto.BatchStatusRequest) (*dto.BatchResponse, error) {
	if len(req.IDs) == 0 || strings.TrimSpace(req.Status) == "" {
		return nil, apierror.Validation("ids and status are required")
	}
	affected, err := s.outbound.BatchStatus(ctx, req.IDs, req.Status)
	if err != nil {
		return nil, err
	}
	return &dto.BatchResponse{Success: true, Affected: affected}, nil
}

func (s *outboundService) BatchDelete(ctx context.Context, req dto.BatchDeleteRequest) (*dto.BatchResponse, error) {
	if len(req.IDs) == 0 {
		return nil, apierror.Validation("ids are required")
	}
	affected, err := s.outbound.BatchDelete(ctx, req.IDs)
	if err != nil {
		return nil, err
	}
	s.log.Warn().Int64("deleted", affected).Msg("outbound history deleted, stock not reversed")
	return &dto.BatchResponse{Success: true, Affected: affected}, nil
}
