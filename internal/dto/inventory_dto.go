package dto

import "time"

// InventoryRow is one row of the stock overview. StockStatus is derived in
// SQL: in-stock above the safety threshold, low-stock above zero,
// out-of-stock otherwise.
type InventoryRow struct {
	SKU            string    `json:"sku"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	SafetyStock    int       `json:"safety_stock"`
	CurrentStock   int       `json:"current_stock"`
	AvailableStock int       `json:"available_stock"`
	ReservedStock  int       `json:"reserved_stock"`
	LastUpdated    time.Time `json:"last_updated"`
	StockStatus    string    `json:"stock_status"`
}

var InventoryCSVHeader = []string{"sku", "name", "category", "safety_stock", "current_stock", "available_stock", "reserved_stock", "last_updated", "stock_status"}

func (r InventoryRow) CSVRecord() []string {
	return []string{
		r.SKU,
		r.Name,
		r.Category,
		itoa(r.SafetyStock),
		itoa(r.CurrentStock),
		itoa(r.AvailableStock),
		itoa(r.ReservedStock),
		r.LastUpdated.UTC().Format(time.RFC3339),
		r.StockStatus,
	}
}

type InventoryListResponse struct {
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
	Total    int64          `json:"total"`
	Rows     []InventoryRow `json:"rows"`
}

type InventoryDetail struct {
	ID             uint      `json:"id"`
	SKU            string    `json:"sku"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Description    *string   `json:"description"`
	Unit           string    `json:"unit"`
	SafetyStock    int       `json:"safety_stock"`
	CurrentStock   int       `json:"current_stock"`
	AvailableStock int       `json:"available_stock"`
	ReservedStock  int       `json:"reserved_stock"`
	LastUpdated    time.Time `json:"last_updated"`
	StockStatus    string    `json:"stock_status"`
	CreatedAt      time.Time `json:"created_at"`
}

type StatsResponse struct {
	TotalInventory int64 `json:"totalInventory"`
	TodayInbound   int64 `json:"todayInbound"`
	TodayOutbound  int64 `json:"todayOutbound"`
	InTransit      int64 `json:"inTransit"`
}
