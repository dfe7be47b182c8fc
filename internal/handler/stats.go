package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/service"
)

type StatsHandler struct{ svc service.InventoryService }

func NewStatsHandler(svc service.InventoryService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// Stats godoc
// @Summary Dashboard counters
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StatsResponse
// @Router /api/admin/stats [get]
func (h *StatsHandler) Stats(c *gin.Context) {
	resp, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
