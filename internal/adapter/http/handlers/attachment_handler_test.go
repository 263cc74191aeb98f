package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexferreiraaf/osmaster/internal/adapter/http/handlers/mocks"
	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newUploadRequest(t *testing.T, path, field, fileName string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		fw, err := mw.CreateFormFile(field, fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		_, _ = fw.Write(data)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestAttachmentHandler_UploadAttachment(t *testing.T) {
	build := func(t *testing.T, maxSize int64) (*gin.Engine, *mocks.MockIAttachmentUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAttachmentUseCase(ctrl)
		h := NewAttachmentHandler(uc, maxSize)
		r := newTestRouter()
		r.POST("/v1/orders/:id/attachments/:kind", h.UploadAttachment)
		return r, uc
	}

	t.Run("accepted", func(t *testing.T) {
		r, uc := build(t, 0)
		uc.EXPECT().StartUpload(gomock.Any(), "os-1", entities.AttachmentImage, "fachada.png", []byte("png-bytes"), testUser).
			Return(nil, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newUploadRequest(t, "/v1/orders/os-1/attachments/image", "file", "fachada.png", []byte("png-bytes")))
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["uploadStatus"] != "uploading" || body["orderId"] != "os-1" || body["kind"] != "image" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("missing file field", func(t *testing.T) {
		r, _ := build(t, 0)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, newUploadRequest(t, "/v1/orders/os-1/attachments/image", "", "", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("oversized file is truncated to max+1 for the use case", func(t *testing.T) {
		r, uc := build(t, 4)
		uc.EXPECT().StartUpload(gomock.Any(), "os-1", entities.AttachmentCertificate, "loja.pfx", []byte("12345"), testUser).
			Return(nil, &usecase.ValidationError{Fields: map[string]string{"file": "arquivo muito grande"}})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newUploadRequest(t, "/v1/orders/os-1/attachments/certificate", "file", "loja.pfx", []byte("123456789")))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("body over the cap is rejected before the use case", func(t *testing.T) {
		r, _ := build(t, 4)
		big := bytes.Repeat([]byte("x"), 2*multipartOverhead)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newUploadRequest(t, "/v1/orders/os-1/attachments/image", "file", "big.png", big))
		if w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413, got %d", w.Code)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		r, uc := build(t, 0)
		uc.EXPECT().StartUpload(gomock.Any(), "nope", entities.AttachmentImage, "a.png", gomock.Any(), testUser).
			Return(nil, usecase.ErrOrderNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newUploadRequest(t, "/v1/orders/nope/attachments/image", "file", "a.png", []byte("x")))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
