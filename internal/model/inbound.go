package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InboundRecord is an immutable stock-receipt history row. It is never
// mutated after creation except by the batch status/delete admin actions
// (which deliberately do not touch inventory).
type InboundRecord struct {
	ID            uint   `gorm:"primaryKey"`
	InboundNumber string `gorm:"uniqueIndex;not null"`
	Supplier      string `gorm:"not null"`
	ProductID     uint   `gorm:"not null;index"`
	Quantity      int    `gorm:"not null"`
	UnitPrice     *decimal.Decimal `gorm:"type:decimal(12,2)"`
	TotalAmount   *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status        string `gorm:"not null;default:'completed'"`
	InboundTime   time.Time
	Notes         string
	CreatedBy     *uint
	CreatedAt     time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}
