package handlers

import (
	"net/http"

	request "github.com/alexferreiraaf/osmaster/internal/adapter/http/dto/request"
	response "github.com/alexferreiraaf/osmaster/internal/adapter/http/dto/response"
	"github.com/alexferreiraaf/osmaster/internal/adapter/http/middleware"
	"github.com/alexferreiraaf/osmaster/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RosterHandler is the admin page of technicians.
type RosterHandler struct {
	usecase usecase.IRosterUseCase
}

func NewRosterHandler(uc usecase.IRosterUseCase) *RosterHandler {
	return &RosterHandler{usecase: uc}
}

// ListEmployees godoc
// @Summary  List technicians
// @Tags     employees
// @Produce  json
// @Success  200  {array}  response.EmployeeResponse
// @Security Bearer
// @Router   /employees [get]
func (h *RosterHandler) ListEmployees(c *gin.Context) {
	list, err := h.usecase.ListEmployees(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEmployees(list))
}

// CreateEmployee godoc
// @Summary  Add a technician
// @Tags     employees
// @Accept   json
// @Produce  json
// @Param    payload  body      request.CreateEmployeeRequest  true  "name"
// @Success  201      {object}  response.EmployeeResponse
// @Failure  409      {object}  pkg.HTTPError
// @Security Bearer
// @Router   /employees [post]
func (h *RosterHandler) CreateEmployee(c *gin.Context) {
	var payload request.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	e, err := h.usecase.AddEmployee(c.Request.Context(), payload.Name, middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromEmployee(e))
}

// DeleteEmployee godoc
// @Summary      Remove a technician
// @Description  Orders assigned to the technician become unassigned.
// @Tags         employees
// @Param        name  path  string  true  "technician name (any case)"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /employees/{name} [delete]
func (h *RosterHandler) DeleteEmployee(c *gin.Context) {
	if err := h.usecase.DeleteEmployee(c.Request.Context(), c.Param("name"), middleware.CurrentUser(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
