package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/alexferreiraaf/osmaster/internal/adapter/http/handlers/mocks"
	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRosterHandler(t *testing.T) {
	build := func(t *testing.T) (*gin.Engine, *mocks.MockIRosterUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRosterUseCase(ctrl)
		h := NewRosterHandler(uc)
		r := newTestRouter()
		r.GET("/v1/employees", h.ListEmployees)
		r.POST("/v1/employees", h.CreateEmployee)
		r.DELETE("/v1/employees/:name", h.DeleteEmployee)
		return r, uc
	}

	t.Run("list", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().ListEmployees(gomock.Any()).Return([]entities.Employee{{Name: "Beatriz"}, {Name: "Carlos"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/employees", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[0]["name"] != "Beatriz" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("create", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().AddEmployee(gomock.Any(), " Carlos ", testUser).Return(entities.Employee{Name: "Carlos", CreatedAt: time.Now()}, nil)

		w := doJSON(r, http.MethodPost, "/v1/employees", `{"name":" Carlos "}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("create requires name", func(t *testing.T) {
		r, _ := build(t)
		w := doJSON(r, http.MethodPost, "/v1/employees", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().AddEmployee(gomock.Any(), "carlos", testUser).Return(entities.Employee{}, usecase.ErrDuplicateName)

		w := doJSON(r, http.MethodPost, "/v1/employees", `{"name":"carlos"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().DeleteEmployee(gomock.Any(), "Álvaro", testUser).Return(nil)

		w := doJSON(r, http.MethodDelete, "/v1/employees/%C3%81lvaro", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().DeleteEmployee(gomock.Any(), "Zé", testUser).Return(usecase.ErrEmployeeNotFound)

		w := doJSON(r, http.MethodDelete, "/v1/employees/Z%C3%A9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
