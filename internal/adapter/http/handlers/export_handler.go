package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/alexferreiraaf/osmaster/internal/adapter/http/export"
	"github.com/alexferreiraaf/osmaster/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	queries usecase.IQueryUseCase
}

func NewExportHandler(queries usecase.IQueryUseCase) *ExportHandler {
	return &ExportHandler{queries: queries}
}

// ExportOrders godoc
// @Summary  Download the order list as a spreadsheet
// @Tags     orders
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    q  query  string  false  "search term"
// @Success  200  {file}  file
// @Security Bearer
// @Router   /orders/export [get]
func (h *ExportHandler) ExportOrders(c *gin.Context) {
	orders, err := h.queries.ListOrders(c.Request.Context(), c.Query("q"), 0)
	if err != nil {
		respondError(c, err)
		return
	}

	data, err := export.OrdersWorkbook(orders)
	if err != nil {
		respondError(c, fmt.Errorf("render export: %w", err))
		return
	}

	fileName := fmt.Sprintf("ordens-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, export.ContentType, data)
}
