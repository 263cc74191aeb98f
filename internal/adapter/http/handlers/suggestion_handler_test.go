package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/alexferreiraaf/osmaster/internal/adapter/http/handlers/mocks"
	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestSuggestionHandler_SuggestTechnician(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISuggestionUseCase(ctrl)
		r := newTestRouter()
		r.POST("/v1/orders/suggest-technician", NewSuggestionHandler(uc).SuggestTechnician)

		uc.EXPECT().Suggest(gomock.Any(), "Instalação", "Niterói", "RJ").
			Return(entities.Suggestion{Name: "Carlos", Reason: "atende a região"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/orders/suggest-technician", `{"service":"Instalação","clientCity":"Niterói","clientState":"RJ"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["suggestedTechnician"] != "Carlos" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("helper unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISuggestionUseCase(ctrl)
		r := newTestRouter()
		r.POST("/v1/orders/suggest-technician", NewSuggestionHandler(uc).SuggestTechnician)

		uc.EXPECT().Suggest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Suggestion{}, fmt.Errorf("%w: timeout", usecase.ErrSuggestionUnavailable))

		w := doJSON(r, http.MethodPost, "/v1/orders/suggest-technician", `{"service":"Instalação"}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
