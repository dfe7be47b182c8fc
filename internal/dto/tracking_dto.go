package dto

import "time"

type TrackingUpdateRow struct {
	Status     string    `json:"status"`
	Location   *string   `json:"location"`
	UpdateTime time.Time `json:"update_time"`
	Notes      *string   `json:"notes"`
}

type TrackingResponse struct {
	TrackingNumber    string              `json:"tracking_number"`
	Status            string              `json:"status"`
	Location          *string             `json:"location"`
	EstimatedDelivery *time.Time          `json:"estimated_delivery"`
	Updates           []TrackingUpdateRow `json:"updates"`
}
