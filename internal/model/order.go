package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a customer-facing shipment request. Status is free text with the
// conventional lifecycle pending → processing/shipped → delivered; the
// transitions are not enforced here.
type Order struct {
	ID              uint   `gorm:"primaryKey"`
	OrderNumber     string `gorm:"uniqueIndex;not null"`
	UserID          uint   `gorm:"not null;index"`
	CustomerName    string `gorm:"not null"`
	CustomerPhone   *string
	CustomerAddress *string
	ServiceType     string `gorm:"not null"`
	TotalWeight     *decimal.Decimal `gorm:"type:decimal(12,2)"`
	TotalAmount     *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status          string `gorm:"not null;default:'pending'"`
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

// OrderItem is one product line inside an order.
type OrderItem struct {
	ID         uint `gorm:"primaryKey"`
	OrderID    uint `gorm:"not null;index"`
	ProductID  uint `gorm:"not null"`
	Quantity   int  `gorm:"not null"`
	UnitPrice  *decimal.Decimal `gorm:"type:decimal(12,2)"`
	TotalPrice *decimal.Decimal `gorm:"type:decimal(12,2)"`
}
