package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase"
	"github.com/alexferreiraaf/osmaster/pkg"

	"github.com/gin-gonic/gin"
)

const userKey = "osmaster.user"

var (
	errMissingToken     = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Sessão ausente ou expirada", http.StatusUnauthorized)
	errSessionsDown     = pkg.NewDomainErrorSimple("STORE_UNAVAILABLE", "Serviço de sessão indisponível", http.StatusServiceUnavailable)
	errSessionLookupErr = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
)

// RequireAuth resolves the bearer token to the acting user and stores it in
// the request context. Requests without a live session stop with 401.
func RequireAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		user, err := auth.CurrentUser(c.Request.Context(), token)
		if err != nil {
			appErr := errSessionLookupErr
			switch {
			case errors.Is(err, usecase.ErrUnauthenticated):
				appErr = errMissingToken
			case errors.Is(err, usecase.ErrStoreUnavailable):
				appErr = errSessionsDown
			}
			_ = c.Error(err)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// BearerToken extracts the token from "Authorization: Bearer <token>".
func BearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

// CurrentUser returns the user set by RequireAuth, or the zero User on
// public routes.
func CurrentUser(c *gin.Context) entities.User {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(entities.User); ok {
			return u
		}
	}
	return entities.User{}
}

// SetUser is used by tests that mount handlers without RequireAuth.
func SetUser(c *gin.Context, u entities.User) {
	c.Set(userKey, u)
}
