package dto

// BatchStatusRequest updates the status of several history rows, keyed by
// their business numbers.
type BatchStatusRequest struct {
	IDs    []string `json:"ids" validate:"required,min=1"`
	Status string   `json:"status" validate:"required"`
}

// BatchDeleteRequest deletes history rows by business number. It does NOT
// reverse the stock mutations those rows produced.
type BatchDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

type BatchResponse struct {
	Success  bool  `json:"success"`
	Affected int64 `json:"affected"`
}
