package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexferreiraaf/osmaster/internal/adapter/http/handlers"
	"github.com/alexferreiraaf/osmaster/internal/adapter/http/handlers/mocks"
	"github.com/alexferreiraaf/osmaster/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	router  *gin.Engine
	auth    *mocks.MockIAuthUseCase
	orders  *mocks.MockIOrderUseCase
	queries *mocks.MockIQueryUseCase
	roster  *mocks.MockIRosterUseCase
}

func newRouterFixture(t *testing.T) routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	f := routerFixture{
		auth:    mocks.NewMockIAuthUseCase(ctrl),
		orders:  mocks.NewMockIOrderUseCase(ctrl),
		queries: mocks.NewMockIQueryUseCase(ctrl),
		roster:  mocks.NewMockIRosterUseCase(ctrl),
	}
	h := Handlers{
		Orders:      handlers.NewOrderHandler(f.orders, f.queries),
		Attachments: handlers.NewAttachmentHandler(mocks.NewMockIAttachmentUseCase(ctrl), 0),
		Roster:      handlers.NewRosterHandler(f.roster),
		Auth:        handlers.NewAuthHandler(f.auth),
		Suggestion:  handlers.NewSuggestionHandler(mocks.NewMockISuggestionUseCase(ctrl)),
		Export:      handlers.NewExportHandler(f.queries),
	}
	f.router = NewRouter(h, f.auth, nil)
	return f
}

func (f routerFixture) do(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestRouter(t *testing.T) {
	t.Run("ping is public", func(t *testing.T) {
		f := newRouterFixture(t)
		w := f.do(http.MethodGet, "/v1/ping", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	})

	t.Run("swagger is served", func(t *testing.T) {
		f := newRouterFixture(t)
		w := f.do(http.MethodGet, "/swagger/doc.json", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "/orders/{id}/status")
	})

	t.Run("orders require a session", func(t *testing.T) {
		f := newRouterFixture(t)
		for _, path := range []string{"/v1/orders", "/v1/orders/stats", "/v1/employees", "/v1/orders/export"} {
			w := f.do(http.MethodGet, path, "")
			assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		}
	})

	t.Run("me requires a session but login does not", func(t *testing.T) {
		f := newRouterFixture(t)
		assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/v1/auth/me", "").Code)
		// Empty body fails binding before reaching the use case.
		assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/v1/auth/login", "").Code)
	})

	t.Run("static order routes win over the id route", func(t *testing.T) {
		f := newRouterFixture(t)
		f.auth.EXPECT().CurrentUser(gomock.Any(), "tok").Return(entities.User{Name: "Ana", Email: "ana@example.com"}, nil).Times(2)
		f.queries.EXPECT().GetOrderStats(gomock.Any()).Return(entities.OrderStats{}, nil)
		f.queries.EXPECT().GetOrder(gomock.Any(), "OS-1").Return(entities.Order{ID: "OS-1"}, nil)

		assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/v1/orders/stats", "tok").Code)
		assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/v1/orders/OS-1", "tok").Code)
	})

	t.Run("acting user reaches the use case", func(t *testing.T) {
		f := newRouterFixture(t)
		ana := entities.User{Name: "Ana", Email: "ana@example.com"}
		f.auth.EXPECT().CurrentUser(gomock.Any(), "tok").Return(ana, nil)
		f.roster.EXPECT().DeleteEmployee(gomock.Any(), "Carlos", ana).Return(nil)

		assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, "/v1/employees/Carlos", "tok").Code)
	})
}
