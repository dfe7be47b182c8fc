package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/service"
)

type TrackingHandler struct{ svc service.TrackingService }

func NewTrackingHandler(svc service.TrackingService) *TrackingHandler {
	return &TrackingHandler{svc: svc}
}

// Track godoc
// @Summary Public shipment tracking lookup
// @Tags tracking
// @Produce json
// @Param trackingNumber path string true "Tracking number"
// @Success 200 {object} dto.TrackingResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/tracking/{trackingNumber} [get]
func (h *TrackingHandler) Track(c *gin.Context) {
	resp, err := h.svc.Track(c.Request.Context(), c.Param("trackingNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
