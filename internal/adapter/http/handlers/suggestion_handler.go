package handlers

import (
	"net/http"

	request "github.com/alexferreiraaf/osmaster/internal/adapter/http/dto/request"
	response "github.com/alexferreiraaf/osmaster/internal/adapter/http/dto/response"
	"github.com/alexferreiraaf/osmaster/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SuggestionHandler struct {
	usecase usecase.ISuggestionUseCase
}

func NewSuggestionHandler(uc usecase.ISuggestionUseCase) *SuggestionHandler {
	return &SuggestionHandler{usecase: uc}
}

// SuggestTechnician godoc
// @Summary      Suggest a technician for an order being drafted
// @Description  Advisory only; the name is not checked against the roster.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        payload  body      request.SuggestTechnicianRequest  true  "service and location"
// @Success      200      {object}  response.SuggestionResponse
// @Failure      503      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/suggest-technician [post]
func (h *SuggestionHandler) SuggestTechnician(c *gin.Context) {
	var payload request.SuggestTechnicianRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Suggest(c.Request.Context(), payload.Service, payload.ClientCity, payload.ClientState)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSuggestion(s))
}
