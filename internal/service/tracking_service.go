package service

import (
	"context"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/dto"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/repository"
)

type TrackingService interface {
	Track(ctx context.Context, trackingNumber string) (*dto.TrackingResponse, error)
}

type trackingService struct {
	tracking repository.TrackingRepository
}

func NewTrackingService(tracking repository.TrackingRepository) TrackingService {
	return &trackingService{tracking: tracking}
}

func (s *trackingService) Track(ctx context.Context, trackingNumber string) (*dto.TrackingResponse, error) {
	t, err := s.tracking.FindByNumber(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}

	updates := make([]dto.TrackingUpdateRow, 0, len(t.Updates))
	for _, u := range t.Updates {
		updates = append(updates, dto.TrackingUpdateRow{
			Status:     u.Status,
			Location:   u.Location,
			UpdateTime: u.UpdateTime,
			Notes:      u.Notes,
		})
	}
	return &dto.TrackingResponse{
		TrackingNumber:    t.TrackingNumber,
		Status:            t.CurrentStatus,
		Location:          t.CurrentLocation,
		EstimatedDelivery: t.EstimatedDelivery,
		Updates:           updates,
	}, nil
}
