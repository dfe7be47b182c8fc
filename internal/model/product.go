package model

import "time"

// Product is the catalog entry behind every stock movement. SKU is the
// business key; descriptive fields may change but the row is never deleted
// by the core flows.
type Product struct {
	ID          uint   `gorm:"primaryKey"`
	SKU         string `gorm:"uniqueIndex;not null"`
	Name        string `gorm:"index;not null"`
	Category    string `gorm:"not null"`
	Description *string
	Unit        string `gorm:"not null;default:'piece'"`
	SafetyStock int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Inventory is 1:1 with Product. current_stock is the authoritative on-hand
// quantity; available_stock tracks it in lockstep (reserved_stock is carried
// for schema compatibility but unused by the core flows).
// Invariant: current_stock >= 0.
type Inventory struct {
	ID             uint `gorm:"primaryKey"`
	ProductID      uint `gorm:"uniqueIndex;not null"`
	CurrentStock   int  `gorm:"not null;default:0"`
	ReservedStock  int  `gorm:"not null;default:0"`
	AvailableStock int  `gorm:"not null;default:0"`
	LastUpdated    time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

// TableName overrides GORM's default pluralization (inventories → inventory).
func (Inventory) TableName() string { return "inventory" }
