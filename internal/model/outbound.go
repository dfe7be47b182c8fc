package model

import "time"

// OutboundRecord is an immutable stock-shipment history row.
// InboundRecordID optionally links the shipment to the inbound lot it draws
// against; earlier revisions embedded the inbound number as a "[ref:...]"
// tag inside Notes, which this column replaces.
type OutboundRecord struct {
	ID              uint   `gorm:"primaryKey"`
	OutboundNumber  string `gorm:"uniqueIndex;not null"`
	OrderID         *uint  `gorm:"index"`
	InboundRecordID *uint  `gorm:"index"`
	Customer        string `gorm:"not null"`
	ProductID       uint   `gorm:"not null;index"`
	Quantity        int    `gorm:"not null"`
	Destination     string
	Status          string `gorm:"not null;default:'completed'"`
	OutboundTime    time.Time
	Notes           string
	CreatedBy       *uint
	CreatedAt       time.Time

	Product       *Product       `gorm:"foreignKey:ProductID"`
	InboundRecord *InboundRecord `gorm:"foreignKey:InboundRecordID"`
}
