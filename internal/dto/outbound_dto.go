package dto

import "time"

type ShipOutboundRequest struct {
	Customer string `json:"customer" validate:"required"`
	// InboundRef points at the inbound lot this shipment draws against.
	// Older admin consoles posted the same value under "outboundNumber";
	// both spellings are accepted, InboundRef wins when both are set.
	InboundRef   string `json:"inboundNumber"`
	LegacyRef    string `json:"outboundNumber"`
	ProductName  string `json:"productName" validate:"required"`
	Quantity     int    `json:"quantity" validate:"gt=0"`
	Destination  string `json:"destination"`
	OutboundTime string `json:"outboundTime"`
	Notes        string `json:"notes"`
}

// Ref resolves the inbound-lot reference across both accepted spellings.
func (r ShipOutboundRequest) Ref() string {
	if r.InboundRef != "" {
		return r.InboundRef
	}
	return r.LegacyRef
}

type ShipOutboundResponse struct {
	Success        bool    `json:"success"`
	OutboundNumber string  `json:"outbound_number"`
	Remaining      int     `json:"remaining"`
	InboundRef     *string `json:"inbound_ref,omitempty"`
}

// OutboundRow is one row of the outbound list/export view.
type OutboundRow struct {
	OutboundNumber string    `json:"outbound_number"`
	Customer       string    `json:"customer"`
	Quantity       int       `json:"quantity"`
	CreatedAt      time.Time `json:"created_at"`
	Status         string    `json:"status"`
	ProductName    string    `json:"product_name"`
	SKU            string    `json:"sku"`
}

var OutboundCSVHeader = []string{"outbound_number", "customer", "quantity", "created_at", "status", "product_name", "sku"}

func (r OutboundRow) CSVRecord() []string {
	return []string{
		r.OutboundNumber,
		r.Customer,
		itoa(r.Quantity),
		r.CreatedAt.UTC().Format(time.RFC3339),
		r.Status,
		r.ProductName,
		r.SKU,
	}
}

type OutboundListResponse struct {
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
	Total    int64         `json:"total"`
	Rows     []OutboundRow `json:"rows"`
}

type OutboundDetail struct {
	ID             uint      `json:"id"`
	OutboundNumber string    `json:"outbound_number"`
	OrderID        *uint     `json:"order_id"`
	InboundNumber  *string   `json:"inbound_number"` // linked inbound lot, if any
	Customer       string    `json:"customer"`
	ProductID      uint      `json:"product_id"`
	Quantity       int       `json:"quantity"`
	Destination    string    `json:"destination"`
	Status         string    `json:"status"`
	OutboundTime   time.Time `json:"outbound_time"`
	Notes          string    `json:"notes"`
	CreatedBy      *uint     `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	ProductName    string    `json:"product_name"`
	SKU            string    `json:"sku"`
}
