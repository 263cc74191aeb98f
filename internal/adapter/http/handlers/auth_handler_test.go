package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexferreiraaf/osmaster/internal/adapter/http/handlers/mocks"
	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler(t *testing.T) {
	build := func(t *testing.T) (*gin.Engine, *mocks.MockIAuthUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)
		r := newTestRouter()
		r.POST("/v1/auth/register", h.Register)
		r.POST("/v1/auth/login", h.Login)
		r.POST("/v1/auth/logout", h.Logout)
		r.GET("/v1/auth/me", h.Me)
		r.POST("/v1/auth/password-reset", h.RequestPasswordReset)
		r.POST("/v1/auth/password-reset/confirm", h.ConfirmPasswordReset)
		return r, uc
	}

	t.Run("register", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().Register(gomock.Any(), "Ana", "ana@example.com", "segredo").Return(testUser, nil)

		w := doJSON(r, http.MethodPost, "/v1/auth/register", `{"name":"Ana","email":"ana@example.com","password":"segredo"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("register email in use", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.User{}, usecase.ErrEmailInUse)

		w := doJSON(r, http.MethodPost, "/v1/auth/register", `{"name":"Ana","email":"ana@example.com","password":"segredo"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("login", func(t *testing.T) {
		r, uc := build(t)
		exp := time.Now().Add(time.Hour).UTC()
		uc.EXPECT().Login(gomock.Any(), "ana@example.com", "segredo").Return(entities.Session{Token: "tok-1", User: testUser, ExpiresAt: exp}, nil)

		w := doJSON(r, http.MethodPost, "/v1/auth/login", `{"email":"ana@example.com","password":"segredo"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["token"] != "tok-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("login invalid credentials", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Session{}, usecase.ErrInvalidCredentials)

		w := doJSON(r, http.MethodPost, "/v1/auth/login", `{"email":"ana@example.com","password":"x"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("logout uses bearer token", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().Logout(gomock.Any(), "tok-1").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer tok-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("me", func(t *testing.T) {
		r, _ := build(t)
		w := doJSON(r, http.MethodGet, "/v1/auth/me", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["email"] != testUser.Email {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("password reset is accepted", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().ResetPassword(gomock.Any(), "ana@example.com").Return(nil)

		w := doJSON(r, http.MethodPost, "/v1/auth/password-reset", `{"email":"ana@example.com"}`)
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
	})

	t.Run("confirm reset", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().ConfirmPasswordReset(gomock.Any(), "reset-1", "nova-senha").Return(nil)

		w := doJSON(r, http.MethodPost, "/v1/auth/password-reset/confirm", `{"token":"reset-1","password":"nova-senha"}`)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("confirm reset with a used token", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().ConfirmPasswordReset(gomock.Any(), "reset-1", "nova-senha").Return(usecase.ErrInvalidResetToken)

		w := doJSON(r, http.MethodPost, "/v1/auth/password-reset/confirm", `{"token":"reset-1","password":"nova-senha"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
