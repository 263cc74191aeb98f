package usecase

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase/interfaces"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

const (
	DefaultMaxAttachmentSize = 10 << 20
	DefaultUploadTimeout     = 2 * time.Minute

	// recordTimeout bounds the final status write, which must still happen
	// when the upload itself ran out of time.
	recordTimeout = 10 * time.Second

	certificateExtension   = ".pfx"
	certificateContentType = "application/x-pkcs12"
)

type AttachmentConfig struct {
	MaxSize int64
	Timeout time.Duration
}

// UploadResult is the final state of an attachment once its task finished.
type UploadResult struct {
	OrderID    string
	Kind       entities.AttachmentKind
	Attachment entities.Attachment
}

// UploadTask tracks one background upload.
type UploadTask struct {
	done   chan struct{}
	result UploadResult
	err    error
}

// Done is closed once the upload and the order update have finished.
func (t *UploadTask) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task finishes or ctx is done. Cancelling ctx only
// stops waiting; the upload keeps running.
func (t *UploadTask) Wait(ctx context.Context) (UploadResult, error) {
	select {
	case <-t.done:
		return t.result, t.err
	case <-ctx.Done():
		return UploadResult{}, ctx.Err()
	}
}

// IAttachmentUseCase handles certificate and image uploads for orders.

type IAttachmentUseCase interface {
	StartUpload(ctx context.Context, orderID string, kind entities.AttachmentKind, fileName string, data []byte, user entities.User) (*UploadTask, error)
	Wait(ctx context.Context) error
}

type AttachmentUseCase struct {
	orders interfaces.IOrderRepository
	blobs  interfaces.IBlobStore
	cfg    AttachmentConfig
	logger *zap.Logger
	wg     sync.WaitGroup
}

var _ IAttachmentUseCase = (*AttachmentUseCase)(nil)

func NewAttachmentUseCase(orders interfaces.IOrderRepository, blobs interfaces.IBlobStore, cfg AttachmentConfig, logger *zap.Logger) *AttachmentUseCase {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultMaxAttachmentSize
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultUploadTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttachmentUseCase{orders: orders, blobs: blobs, cfg: cfg, logger: logger.Named("attachment.usecase")}
}

// StartUpload validates the file, marks the attachment as uploading and
// hands the transfer to a background task. The task outlives the request
// context but is bounded by the configured timeout.
func (u *AttachmentUseCase) StartUpload(
	ctx context.Context,
	orderID string,
	kind entities.AttachmentKind,
	fileName string,
	data []byte,
	user entities.User,
) (*UploadTask, error) {
	user, err := requireUser(user)
	if err != nil {
		return nil, err
	}

	orderID = strings.TrimSpace(orderID)
	fileName = filepath.Base(strings.TrimSpace(fileName))
	contentType, err := u.validate(kind, fileName, data)
	if err != nil {
		return nil, err
	}
	if orderID == "" {
		return nil, ErrOrderNotFound
	}

	pending := entities.Attachment{FileName: fileName, UploadStatus: entities.UploadStatusUploading}
	marked, err := u.orders.Update(ctx, orderID, attachmentPatch(kind, pending, user))
	if err != nil {
		return nil, storeErr(err)
	}
	if marked.ID == "" {
		return nil, ErrOrderNotFound
	}

	task := &UploadTask{done: make(chan struct{})}
	u.wg.Add(1)
	go func() {
		defer u.wg.Done()
		defer close(task.done)

		bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.cfg.Timeout)
		defer cancel()
		task.result, task.err = u.upload(bg, orderID, kind, fileName, contentType, data, user)
	}()
	return task, nil
}

func (u *AttachmentUseCase) upload(
	ctx context.Context,
	orderID string,
	kind entities.AttachmentKind,
	fileName, contentType string,
	data []byte,
	user entities.User,
) (UploadResult, error) {
	log := u.logger.With(zap.String("order_id", orderID), zap.String("kind", string(kind)), zap.String("file", fileName))

	att := entities.Attachment{FileName: fileName}
	key := path.Join("orders", orderID, string(kind), fileName)
	url, upErr := u.blobs.Upload(ctx, key, data, contentType)
	if upErr != nil {
		att.UploadStatus = entities.UploadStatusFailed
		att.UploadError = upErr.Error()
		log.Error("attachment upload failed", zap.Error(upErr))
	} else {
		att.UploadStatus = entities.UploadStatusUploaded
		att.URL = url
	}

	result := UploadResult{OrderID: orderID, Kind: kind, Attachment: att}
	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()
	updated, err := u.orders.Update(recordCtx, orderID, attachmentPatch(kind, att, user))
	if err != nil {
		log.Error("failed to record attachment status", zap.Error(err))
		return result, storeErr(err)
	}
	if updated.ID == "" {
		log.Warn("order removed while uploading")
		return result, ErrOrderNotFound
	}
	if upErr != nil {
		return result, fmt.Errorf("upload %s: %w", fileName, upErr)
	}

	log.Info("attachment uploaded", zap.String("url", url))
	return result, nil
}

// Wait blocks until every in-flight upload finished or ctx is done.
func (u *AttachmentUseCase) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		u.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (u *AttachmentUseCase) validate(kind entities.AttachmentKind, fileName string, data []byte) (string, error) {
	verr := newValidationError()
	if !kind.Valid() {
		verr.add("kind", "Tipo de anexo inválido.")
		return "", verr
	}
	if fileName == "" || fileName == "." || fileName == string(filepath.Separator) {
		verr.add("file", "Nome do arquivo é obrigatório.")
	}
	if len(data) == 0 {
		verr.add("file", "Arquivo vazio.")
	}
	if int64(len(data)) > u.cfg.MaxSize {
		verr.add("file", fmt.Sprintf("O arquivo deve ter no máximo %d bytes.", u.cfg.MaxSize))
	}
	if err := verr.orNil(); err != nil {
		return "", err
	}

	switch kind {
	case entities.AttachmentCertificate:
		if !strings.EqualFold(filepath.Ext(fileName), certificateExtension) {
			verr.add("file", "O certificado deve ser um arquivo .pfx.")
			return "", verr
		}
		return certificateContentType, nil
	default:
		mt := mimetype.Detect(data)
		if !strings.HasPrefix(mt.String(), "image/") {
			verr.add("file", "O arquivo deve ser uma imagem.")
			return "", verr
		}
		return mt.String(), nil
	}
}

func attachmentPatch(kind entities.AttachmentKind, att entities.Attachment, user entities.User) entities.OrderPatch {
	p := entities.OrderPatch{UpdatedBy: user.Name, UpdatedAt: time.Now().UTC()}
	if kind == entities.AttachmentCertificate {
		p.Certificate = &att
	} else {
		p.Image = &att
	}
	return p
}
