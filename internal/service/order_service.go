package service

import (
	"context"
	"strings"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/apierror"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/dto"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/listquery"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/repository"
)

type OrderService interface {
	List(ctx context.Context, p listquery.Params) (*dto.OrderListResponse, error)
	Export(ctx context.Context, p listquery.Params) ([]dto.OrderRow, error)
	Detail(ctx context.Context, number string) (*dto.OrderDetailResponse, error)
	BatchStatus(ctx context.Context, req dto.BatchStatusRequest) (*dto.BatchResponse, error)
	BatchDelete(ctx context.Context, req dto.BatchDeleteRequest) (*dto.BatchResponse, error)
}

type orderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) OrderService {
	return &orderService{orders: orders}
}

func (s *orderService) List(ctx context.Context, p listquery.Params) (*dto.OrderListResponse, error) {
	p.Normalize()
	rows, total, err := s.orders.List(ctx, p)
	if err != nil {
		return nil, err
	}
	return &dto.OrderListResponse{
		Page:     p.Page,
		PageSize: p.PageSize,
		Total:    total,
		Rows:     rows,
	}, nil
}

func (s *orderService) Export(ctx context.Context, p listquery.Params) ([]dto.OrderRow, error) {
	p.Normalize()
	if !p.PageScoped() {
		p.Page = 1
		p.PageSize = exportMaxRows
	}
	rows, _, err := s.orders.List(ctx, p)
	return rows, err
}

func (s *orderService) Detail(ctx context.Context, number string) (*dto.OrderDetailResponse, error) {
	return s.orders.Detail(ctx, number)
}

func (s *orderService) BatchStatus(ctx context.Context, req dto.BatchStatusRequest) (*dto.BatchResponse, error) {
	if len(req.IDs) == 0 || strings.TrimSpace(req.Status) == "" {
		return nil, apierror.Validation("ids and status are required")
	}
	affected, err := s.orders.BatchStatus(ctx, req.IDs, req.Status)
	if err != nil {
		return nil, err
	}
	return &dto.BatchResponse{Success: true, Affected: affected}, nil
}

func (s *orderService) BatchDelete(ctx context.Context, req dto.BatchDeleteRequest) (*dto.BatchResponse, error) {
	if len(req.IDs) == 0 {
		return nil, apierror.Validation("ids are required")
	}
	affected, err := s.orders.BatchDelete(ctx, req.IDs)
	if err != nil {
		return nil, err
	}
	return &dto.BatchResponse{Success: true, Affected: affected}, nil
}
