package handlers

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/alexferreiraaf/osmaster/internal/adapter/http/export"
	"github.com/alexferreiraaf/osmaster/internal/adapter/http/handlers/mocks"
	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase"

	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func TestExportHandler_ExportOrders(t *testing.T) {
	t.Run("workbook download", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := mocks.NewMockIQueryUseCase(ctrl)
		r := newTestRouter()
		r.GET("/v1/orders/export", NewExportHandler(queries).ExportOrders)

		queries.EXPECT().ListOrders(gomock.Any(), "maria", 0).Return([]entities.Order{sampleOrder()}, nil)

		w := doJSON(r, http.MethodGet, "/v1/orders/export?q=maria", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Type"); got != export.ContentType {
			t.Fatalf("unexpected content type %q", got)
		}
		if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "ordens-") || !strings.Contains(cd, ".xlsx") {
			t.Fatalf("unexpected content disposition %q", cd)
		}

		f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
		if err != nil {
			t.Fatalf("response is not a workbook: %v", err)
		}
		defer f.Close()
		id, err := f.GetCellValue(export.SheetName, "A2")
		if err != nil || id != "OS-2025-0000ABCD" {
			t.Fatalf("expected order id in A2, got %q (%v)", id, err)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := mocks.NewMockIQueryUseCase(ctrl)
		r := newTestRouter()
		r.GET("/v1/orders/export", NewExportHandler(queries).ExportOrders)

		queries.EXPECT().ListOrders(gomock.Any(), "", 0).Return(nil, usecase.ErrStoreUnavailable)

		w := doJSON(r, http.MethodGet, "/v1/orders/export", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
