package handlers

import (
	"net/http"

	request "github.com/alexferreiraaf/osmaster/internal/adapter/http/dto/request"
	response "github.com/alexferreiraaf/osmaster/internal/adapter/http/dto/response"
	"github.com/alexferreiraaf/osmaster/internal/adapter/http/middleware"
	"github.com/alexferreiraaf/osmaster/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Register godoc
// @Summary  Create an account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    payload  body      request.RegisterRequest  true  "account"
// @Success  201      {object}  response.UserResponse
// @Failure  409      {object}  pkg.HTTPError
// @Router   /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	u, err := h.usecase.Register(c.Request.Context(), payload.Name, payload.Email, payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(u))
}

// Login godoc
// @Summary  Open a session
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    payload  body      request.LoginRequest  true  "credentials"
// @Success  200      {object}  response.SessionResponse
// @Failure  401      {object}  pkg.HTTPError
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// Logout godoc
// @Summary  Close the current session
// @Tags     auth
// @Success  204
// @Security Bearer
// @Router   /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.usecase.Logout(c.Request.Context(), middleware.BearerToken(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary  Current user
// @Tags     auth
// @Produce  json
// @Success  200  {object}  response.UserResponse
// @Failure  401  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromUser(middleware.CurrentUser(c)))
}

// RequestPasswordReset godoc
// @Summary      Send a password reset link
// @Description  Always 202, whether or not the email has an account.
// @Tags         auth
// @Accept       json
// @Param        payload  body  request.PasswordResetRequest  true  "email"
// @Success      202
// @Router       /auth/password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var payload request.PasswordResetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	if err := h.usecase.ResetPassword(c.Request.Context(), payload.Email); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// ConfirmPasswordReset godoc
// @Summary  Set a new password with a reset token
// @Tags     auth
// @Accept   json
// @Param    payload  body  request.ConfirmPasswordResetRequest  true  "token and new password"
// @Success  204
// @Failure  400  {object}  pkg.HTTPError
// @Router   /auth/password-reset/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var payload request.ConfirmPasswordResetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	if err := h.usecase.ConfirmPasswordReset(c.Request.Context(), payload.Token, payload.Password); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
