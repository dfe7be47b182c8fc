package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/apierror"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/dto"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/listquery"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/service"
)

type OutboundHandler struct{ svc service.OutboundService }

func NewOutboundHandler(svc service.OutboundService) *OutboundHandler {
	return &OutboundHandler{svc: svc}
}

// Ship godoc
// @Summary Record a stock shipment
// @Tags outbound
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ShipOutboundRequest true "Shipment data"
// @Success 201 {object} dto.ShipOutboundResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/admin/outbound [post]
func (h *OutboundHandler) Ship(c *gin.Context) {
	var req dto.ShipOutboundRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Ship(c.Request.Context(), req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List outbound records
// @Tags outbound
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.OutboundListResponse
// @Router /api/admin/outbound [get]
func (h *OutboundHandler) List(c *gin.Context) {
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
		if err := listquery.WriteCSV(c.Writer, "outbound_records.csv", dto.OutboundCSVHeader, records); err != nil {
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
// @Summary Look up one outbound record by its number
// @Tags outbound
// @Produce json
// @Security BearerAuth
// @Param outboundNumber path string true "Outbound number"
// @Success 200 {object} dto.OutboundDetail
// @Failure 404 {object} apierror.APIError
// @Router /api/admin/outbound/{outboundNumber} [get]
func (h *OutboundHandler) Detail(c *gin.Context) {
	resp, err := h.svc.Detail(c.Request.Context(), c.Param("outboundNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OutboundHandler) BatchStatus(c *gin.Context) {
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

func (h *OutboundHandler) BatchDelete(c *gin.Context) {
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
