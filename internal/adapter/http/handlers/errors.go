package handlers

import (
	"errors"
	"net/http"

	"github.com/alexferreiraaf/osmaster/internal/usecase"
	"github.com/alexferreiraaf/osmaster/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Corpo da requisição inválido", http.StatusBadRequest)
)

// mapError translates use case errors into the HTTP error contract.
func mapError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("VALIDATION_ERROR", "Dados inválidos", err, http.StatusBadRequest).WithDetails(verr.Fields)
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Sessão ausente ou expirada", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "E-mail ou senha incorretos", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Ordem de serviço não encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return pkg.NewDomainErrorSimple("EMPLOYEE_NOT_FOUND", "Funcionário não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDuplicateName):
		return pkg.NewDomainErrorSimple("DUPLICATE_NAME", "Já existe um funcionário com este nome", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Transição de status não permitida", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrEmailInUse):
		return pkg.NewDomainErrorSimple("EMAIL_IN_USE", "E-mail já cadastrado", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidResetToken):
		return pkg.NewDomainErrorSimple("INVALID_RESET_TOKEN", "Link de redefinição inválido ou expirado", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSuggestionUnavailable):
		return pkg.NewDomainError("SUGGESTION_UNAVAILABLE", "Sugestão de técnico indisponível", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Serviço temporariamente indisponível", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// respondError writes the mapped error and records the cause for the
// request logger.
func respondError(c *gin.Context, err error) {
	appErr := mapError(err)
	_ = c.Error(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
