package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	response "github.com/alexferreiraaf/osmaster/internal/adapter/http/dto/response"
	"github.com/alexferreiraaf/osmaster/internal/adapter/http/middleware"
	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase"
	"github.com/alexferreiraaf/osmaster/pkg"

	"github.com/gin-gonic/gin"
)

// multipartOverhead leaves room for boundaries, headers and small fields
// around the file itself.
const multipartOverhead = 1 << 20

var (
	errMissingFile  = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Envie o arquivo no campo \"file\"", http.StatusBadRequest)
	errFileTooLarge = pkg.NewDomainErrorSimple("FILE_TOO_LARGE", "Arquivo excede o tamanho máximo permitido", http.StatusRequestEntityTooLarge)
)

type AttachmentHandler struct {
	usecase usecase.IAttachmentUseCase
	maxSize int64
}

// NewAttachmentHandler reads at most maxSize+1 bytes of each file so the use
// case can reject oversized uploads without buffering them whole.
func NewAttachmentHandler(uc usecase.IAttachmentUseCase, maxSize int64) *AttachmentHandler {
	if maxSize <= 0 {
		maxSize = usecase.DefaultMaxAttachmentSize
	}
	return &AttachmentHandler{usecase: uc, maxSize: maxSize}
}

// UploadAttachment godoc
// @Summary      Upload the certificate or the image of an order
// @Description  The transfer runs in background; poll the order until uploadStatus is uploaded or failed.
// @Tags         orders
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "order id"
// @Param        kind  path      string  true  "certificate or image"
// @Param        file  formData  file    true  "file"
// @Success      202   {object}  response.UploadAcceptedResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      413   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{id}/attachments/{kind} [post]
func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxSize+multipartOverhead)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			_ = c.Error(err)
			c.JSON(errFileTooLarge.HTTPStatus, errFileTooLarge.ToHTTPError())
			return
		}
		c.JSON(errMissingFile.HTTPStatus, errMissingFile.ToHTTPError())
		return
	}

	f, err := fh.Open()
	if err != nil {
		respondError(c, fmt.Errorf("open upload: %w", err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxSize+1))
	if err != nil {
		respondError(c, fmt.Errorf("read upload: %w", err))
		return
	}

	kind := entities.AttachmentKind(c.Param("kind"))
	if _, err := h.usecase.StartUpload(c.Request.Context(), c.Param("id"), kind, fh.Filename, data, middleware.CurrentUser(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, response.UploadAcceptedResponse{
		OrderID:      c.Param("id"),
		Kind:         string(kind),
		FileName:     fh.Filename,
		UploadStatus: string(entities.UploadStatusUploading),
	})
}
