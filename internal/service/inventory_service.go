package service

import (
	"context"
	"time"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/dto"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/listquery"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/repository"
)

// inTransitStatuses are the order states counted as "in transit" on the
// dashboard.
var inTransitStatuses = []string{"processing", "shipped"}

type InventoryService interface {
	List(ctx context.Context, p listquery.Params) (*dto.InventoryListResponse, error)
	Export(ctx context.Context, p listquery.Params) ([]dto.InventoryRow, error)
	DetailBySKU(ctx context.Context, sku string) (*dto.InventoryDetail, error)
	Categories(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (*dto.StatsResponse, error)
}

type inventoryService struct {
	inventory repository.InventoryRepository
	orders    repository.OrderRepository
}

func NewInventoryService(inventory repository.InventoryRepository, orders repository.OrderRepository) InventoryService {
	return &inventoryService{inventory: inventory, orders: orders}
}

func (s *inventoryService) List(ctx context.Context, p listquery.Params) (*dto.InventoryListResponse, error) {
	p.Normalize()
	rows, total, err := s.inventory.List(ctx, p)
	if err != nil {
		return nil, err
	}
	return &dto.InventoryListResponse{
		Page:     p.Page,
		PageSize: p.PageSize,
		Total:    total,
		Rows:     rows,
	}, nil
}

func (s *inventoryService) Export(ctx context.Context, p listquery.Params) ([]dto.InventoryRow, error) {
	p.Normalize()
	if !p.PageScoped() {
		p.Page = 1
		p.PageSize = exportMaxRows
	}
	rows, _, err := s.inventory.List(ctx, p)
	return rows, err
}

func (s *inventoryService) DetailBySKU(ctx context.Context, sku string) (*dto.InventoryDetail, error) {
	return s.inventory.DetailBySKU(ctx, sku)
}

func (s *inventoryService) Categories(ctx context.Context) ([]string, error) {
	return s.inventory.Categories(ctx)
}

// Stats aggregates the dashboard counters. "Today" is the server's local
// calendar day.
func (s *inventoryService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	total, err := s.inventory.TotalStock(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	inbound, outbound, err := s.inventory.MovementCounts(ctx, dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}

	inTransit, err := s.orders.CountByStatuses(ctx, inTransitStatuses)
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		TotalInventory: total,
		TodayInbound:   inbound,
		TodayOutbound:  outbound,
		InTransit:      inTransit,
	}, nil
}
