package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/apierror"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/dto"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/listquery"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/service"
)

type InventoryHandler struct{ svc service.InventoryService }

func NewInventoryHandler(svc service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// List godoc
// @Summary Stock overview across all products
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search term"
// @Param category query string false "Category filter"
// @Param status query string false "Stock status filter (in-stock, low-stock, out-of-stock)"
// @Success 200 {object} dto.InventoryListResponse
// @Router /api/admin/inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
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
		if err := listquery.WriteCSV(c.Writer, "inventory.csv", dto.InventoryCSVHeader, records); err != nil {
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
// @Summary Product and stock detail by SKU
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param sku path string true "Product SKU"
// @Success 200 {object} dto.InventoryDetail
// @Failure 404 {object} apierror.APIError
// @Router /api/admin/inventory/{sku} [get]
func (h *InventoryHandler) Detail(c *gin.Context) {
	resp, err := h.svc.DetailBySKU(c.Request.Context(), c.Param("sku"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Categories lists the distinct product categories for filter dropdowns.
func (h *InventoryHandler) Categories(c *gin.Context) {
	cats, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}
