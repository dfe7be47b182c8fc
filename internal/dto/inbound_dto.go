package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReceiveInboundRequest struct {
	Supplier      string           `json:"supplier" validate:"required"`
	InboundNumber string           `json:"inboundNumber"` // generated when empty
	ProductName   string           `json:"productName" validate:"required"`
	Category      string           `json:"category" validate:"required"`
	Quantity      int              `json:"quantity" validate:"min=0"`
	UnitPrice     *decimal.Decimal `json:"unitPrice"`
	InboundTime   string           `json:"inboundTime"`
	Notes         string           `json:"notes"`
}

type ReceiveInboundResponse struct {
	Success       bool   `json:"success"`
	InboundNumber string `json:"inbound_number"`
	ProductSKU    string `json:"sku"`
}

// InboundRow is one row of the inbound list/export view.
type InboundRow struct {
	InboundNumber string    `json:"inbound_number"`
	Supplier      string    `json:"supplier"`
	Quantity      int       `json:"quantity"`
	CreatedAt     time.Time `json:"created_at"`
	Status        string    `json:"status"`
	ProductName   string    `json:"product_name"`
	SKU           string    `json:"sku"`
}

// InboundCSVHeader mirrors the row's column order in the list query.
var InboundCSVHeader = []string{"inbound_number", "supplier", "quantity", "created_at", "status", "product_name", "sku"}

func (r InboundRow) CSVRecord() []string {
	return []string{
		r.InboundNumber,
		r.Supplier,
		itoa(r.Quantity),
		r.CreatedAt.UTC().Format(time.RFC3339),
		r.Status,
		r.ProductName,
		r.SKU,
	}
}

type InboundListResponse struct {
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
	Total    int64        `json:"total"`
	Rows     []InboundRow `json:"rows"`
}

// InboundDetail is the single-record lookup joined with product info.
type InboundDetail struct {
	ID            uint             `json:"id"`
	InboundNumber string           `json:"inbound_number"`
	Supplier      string           `json:"supplier"`
	ProductID     uint             `json:"product_id"`
	Quantity      int              `json:"quantity"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	TotalAmount   *decimal.Decimal `json:"total_amount"`
	Status        string           `json:"status"`
	InboundTime   time.Time        `json:"inbound_time"`
	Notes         string           `json:"notes"`
	CreatedBy     *uint            `json:"created_by"`
	CreatedAt     time.Time        `json:"created_at"`
	ProductName   string           `json:"product_name"`
	SKU           string           `json:"sku"`
}
