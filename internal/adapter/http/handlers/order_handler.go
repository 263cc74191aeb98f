package handlers

import (
	"net/http"
	"strconv"

	request "github.com/alexferreiraaf/osmaster/internal/adapter/http/dto/request"
	response "github.com/alexferreiraaf/osmaster/internal/adapter/http/dto/response"
	"github.com/alexferreiraaf/osmaster/internal/adapter/http/middleware"
	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase"
	"github.com/alexferreiraaf/osmaster/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLimit = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Parâmetro limit inválido", http.StatusBadRequest)

// OrderHandler serves the order list, the dashboard counters and every
// lifecycle mutation.
type OrderHandler struct {
	orders  usecase.IOrderUseCase
	queries usecase.IQueryUseCase
}

func NewOrderHandler(orders usecase.IOrderUseCase, queries usecase.IQueryUseCase) *OrderHandler {
	return &OrderHandler{orders: orders, queries: queries}
}

// ListOrders godoc
// @Summary      List orders
// @Description  Newest first. q filters by client, service or id (case-insensitive).
// @Tags         orders
// @Produce      json
// @Param        q      query  string  false  "search term"
// @Param        limit  query  int     false  "max items"
// @Success      200  {array}   response.OrderResponse
// @Failure      401  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(errInvalidLimit.HTTPStatus, errInvalidLimit.ToHTTPError())
			return
		}
		limit = n
	}

	orders, err := h.queries.ListOrders(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetOrderStats godoc
// @Summary  Dashboard counters
// @Tags     orders
// @Produce  json
// @Success  200  {object}  response.OrderStatsResponse
// @Security Bearer
// @Router   /orders/stats [get]
func (h *OrderHandler) GetOrderStats(c *gin.Context) {
	stats, err := h.queries.GetOrderStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderStats(stats))
}

// GetOrder godoc
// @Summary  Get an order
// @Tags     orders
// @Produce  json
// @Param    id   path      string  true  "order id"
// @Success  200  {object}  response.OrderResponse
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.queries.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// CreateOrder godoc
// @Summary  Create an order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    payload  body      request.OrderRequest  true  "order form"
// @Success  201      {object}  response.OrderResponse
// @Failure  400      {object}  pkg.HTTPError
// @Security Bearer
// @Router   /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	o, err := h.orders.CreateOrder(c.Request.Context(), payload.ToInput(), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(o))
}

// UpdateOrder godoc
// @Summary      Edit the order form fields
// @Description  Status, checklist, assignment and attachments are not touched.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "order id"
// @Param        payload  body      request.OrderRequest  true  "order form"
// @Success      200      {object}  response.OrderResponse
// @Security     Bearer
// @Router       /orders/{id} [put]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	o, err := h.orders.UpdateOrderDetails(c.Request.Context(), c.Param("id"), payload.ToDetails(), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// UpdateStatus godoc
// @Summary  Move an order through the workflow
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id       path      string                       true  "order id"
// @Param    payload  body      request.UpdateStatusRequest  true  "new status"
// @Success  200      {object}  response.OrderResponse
// @Failure  409      {object}  pkg.HTTPError
// @Security Bearer
// @Router   /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	o, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), entities.OrderStatus(payload.Status), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// UpdateChecklist godoc
// @Summary  Merge checklist items
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id       path      string                          true  "order id"
// @Param    payload  body      request.UpdateChecklistRequest  true  "items to change"
// @Success  200      {object}  response.OrderResponse
// @Security Bearer
// @Router   /orders/{id}/checklist [patch]
func (h *OrderHandler) UpdateChecklist(c *gin.Context) {
	var payload request.UpdateChecklistRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	o, err := h.orders.UpdateChecklist(c.Request.Context(), c.Param("id"), payload.Items, middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// UpdateDescription godoc
// @Summary  Replace the order notes
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id       path      string                            true  "order id"
// @Param    payload  body      request.UpdateDescriptionRequest  true  "notes"
// @Success  200      {object}  response.OrderResponse
// @Security Bearer
// @Router   /orders/{id}/description [patch]
func (h *OrderHandler) UpdateDescription(c *gin.Context) {
	var payload request.UpdateDescriptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	o, err := h.orders.UpdateDescription(c.Request.Context(), c.Param("id"), payload.Description, middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// AssignTechnician godoc
// @Summary  Assign or unassign a technician
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id       path      string                           true  "order id"
// @Param    payload  body      request.AssignTechnicianRequest  true  "roster name, empty or none"
// @Success  200      {object}  response.OrderResponse
// @Security Bearer
// @Router   /orders/{id}/assignee [patch]
func (h *OrderHandler) AssignTechnician(c *gin.Context) {
	var payload request.AssignTechnicianRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	o, err := h.orders.AssignTechnician(c.Request.Context(), c.Param("id"), payload.AssignedTo, middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// DeleteOrder godoc
// @Summary  Delete an order
// @Tags     orders
// @Param    id  path  string  true  "order id"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.orders.DeleteOrder(c.Request.Context(), c.Param("id"), middleware.CurrentUser(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
