package model

import "time"

// Tracking is the public shipment-tracking head row; history lives in
// TrackingUpdate (append-only).
type Tracking struct {
	ID                uint   `gorm:"primaryKey"`
	TrackingNumber    string `gorm:"uniqueIndex;not null"`
	OrderID           *uint  `gorm:"index"`
	CurrentStatus     string `gorm:"not null"`
	CurrentLocation   *string
	EstimatedDelivery *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Updates []TrackingUpdate `gorm:"foreignKey:TrackingID"`
}

// TableName overrides GORM's default pluralization (trackings → tracking).
func (Tracking) TableName() string { return "tracking" }

// TrackingUpdate is one status event in a shipment's history.
type TrackingUpdate struct {
	ID         uint   `gorm:"primaryKey"`
	TrackingID uint   `gorm:"not null;index"`
	Status     string `gorm:"not null"`
	Location   *string
	UpdateTime time.Time
	Notes      *string
}
