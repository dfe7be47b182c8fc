package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/apierror"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/dto"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/listquery"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/middleware"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/service"
)

type InboundHandler struct{ svc service.InboundService }

func NewInboundHandler(svc service.InboundService) *InboundHandler {
	return &InboundHandler{svc: svc}
}

// Receive godoc
// @Summary Record a stock receipt
// @Tags inbound
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ReceiveInboundRequest true "Receipt data"
// @Success 201 {object} dto.ReceiveInboundResponse
// @Failure 400 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /api/admin/inbound [post]
func (h *InboundHandler) Receive(c *gin.Context) {
	var req dto.ReceiveInboundRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Receive(c.Request.Context(), req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List inbound records
// @Tags inbound
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search term"
// @Param status query string false "Status filter"
// @Param sort query string false "Sort field and direction"
// @Param page query int false "Page (1-based)"
// @Param pageSize query int false "Rows per page (max 100)"
// @Param export query string false "Set to csv for a CSV download"
// @Success 200 {object} dto.InboundListResponse
// @Router /api/admin/inbound [get]
func (h *InboundHandler) List(c *gin.Context) {
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
		if err := listquery.WriteCSV(c.Writer, "inbound_records.csv", dto.InboundCSVHeader, records); err != nil {
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
// @Summary Look up one inbound record by its number
// @Tags inbound
// @Produce json
// @Security BearerAuth
// @Param inboundNumber path string true "Inbound number"
// @Success 200 {object} dto.InboundDetail
// @Failure 404 {object} apierror.APIError
// @Router /api/admin/inbound/{inboundNumber} [get]
func (h *InboundHandler) Detail(c *gin.Context) {
	resp, err := h.svc.Detail(c.Request.Context(), c.Param("inboundNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InboundHandler) BatchStatus(c *gin.Context) {
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

func (h *InboundHandler) BatchDelete(c *gin.Context) {
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

// currentUserID pulls the acting user out of the JWT claims, when present.
func currentUserID(c *gin.Context) *uint {
	claims := middleware.GetClaims(c)
	if claims == nil || claims.UserID == 0 {
		return nil
	}
	id := claims.UserID
	return &id
}
