package dto

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// OrderRow is one row of the order list/export view.
type OrderRow struct {
	OrderNumber  string           `json:"order_number"`
	CustomerName string           `json:"customer_name"`
	TotalWeight  *decimal.Decimal `json:"total_weight"`
	TotalAmount  *decimal.Decimal `json:"total_amount"`
	ServiceType  string           `json:"service_type"`
	Status       string           `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
}

var OrderCSVHeader = []string{"order_number", "customer_name", "total_weight", "total_amount", "service_type", "status", "created_at"}

func (r OrderRow) CSVRecord() []string {
	return []string{
		r.OrderNumber,
		r.CustomerName,
		decStr(r.TotalWeight),
		decStr(r.TotalAmount),
		r.ServiceType,
		r.Status,
		r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type OrderListResponse struct {
	Page     int        `json:"page"`
	PageSize int        `json:"pageSize"`
	Total    int64      `json:"total"`
	Rows     []OrderRow `json:"rows"`
}

type OrderItemRow struct {
	ID         uint             `json:"id"`
	ProductID  uint             `json:"product_id"`
	Quantity   int              `json:"quantity"`
	UnitPrice  *decimal.Decimal `json:"unit_price"`
	TotalPrice *decimal.Decimal `json:"total_price"`
}

type OrderDetailResponse struct {
	Order OrderDetail    `json:"order"`
	Items []OrderItemRow `json:"items"`
}

type OrderDetail struct {
	ID              uint             `json:"id"`
	OrderNumber     string           `json:"order_number"`
	UserID          uint             `json:"user_id"`
	CustomerName    string           `json:"customer_name"`
	CustomerPhone   *string          `json:"customer_phone"`
	CustomerAddress *string          `json:"customer_address"`
	ServiceType     string           `json:"service_type"`
	TotalWeight     *decimal.Decimal `json:"total_weight"`
	TotalAmount     *decimal.Decimal `json:"total_amount"`
	Status          string           `json:"status"`
	Notes           string           `json:"notes"`
	CreatedAt       time.Time        `json:"created_at"`
}

func itoa(n int) string { return strconv.Itoa(n) }

func decStr(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
