package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/apierror"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/dto"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/listquery"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/service"
)

type OrderHandler struct{ svc service.OrderService }

func NewOrderHandler(svc service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// List godoc
// @Summary List customer orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.OrderListResponse
// @Router /api/admin/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var p listquery.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid query parameters"))
		return
	}

	if p.ExportCSV() {
		rows, err := h.svc.Export(c.Request.Context(), p)
		if err != nil {
			respondError(c, err)
			return
		}
		records := make([][]string, 0, len(rows))
		for _, r := range rows {
			records = append(records, r.CSVRecord())
		}
		if err := listquery.WriteCSV(c.Writer, "orders.csv", dto.OrderCSVHeader, records); err != nil {
			_ = c.Error(err)
		}
		return
	}

	resp, err := h.svc.List(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Detail godoc
// @Summary Order detail with line items
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param orderNumber path string true "Order number"
// @Success 200 {object} dto.OrderDetailResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/admin/orders/{orderNumber} [get]
func (h *OrderHandler) Detail(c *gin.Context) {
	resp, err := h.svc.Detail(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) BatchStatus(c *gin.Context) {
	var req dto.BatchStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.BatchStatus(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) BatchDelete(c *gin.Context) {
	var req dto.BatchDeleteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.BatchDelete(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
