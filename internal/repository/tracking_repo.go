package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/apierror"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/model"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/storage"
)

type TrackingRepository interface {
	FindByNumber(ctx context.Context, trackingNumber string) (*model.Tracking, error)
}

type trackingRepository struct {
	db *storage.DB
}

func NewTrackingRepository(db *storage.DB) TrackingRepository {
	return &trackingRepository{db: db}
}

func (r *trackingRepository) FindByNumber(ctx context.Context, trackingNumber string) (*model.Tracking, error) {
	var t model.Tracking
	err := r.db.Gorm().WithContext(ctx).
		Preload("Updates", func(db *gorm.DB) *gorm.DB {
			return db.Order("update_time DESC")
		}).
		Where("tracking_number = ?", trackingNumber).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("tracking number not found")
	}
	if err != nil {
		return nil, apierror.Storage("find tracking", err)
	}
	return &t, nil
}
