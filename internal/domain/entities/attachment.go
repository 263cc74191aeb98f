package entities

type AttachmentKind string

const (
	AttachmentCertificate AttachmentKind = "certificate"
	AttachmentImage       AttachmentKind = "image"
)

func (k AttachmentKind) Valid() bool {
	return k == AttachmentCertificate || k == AttachmentImage
}

type UploadStatus string

const (
	UploadStatusUploading UploadStatus = "uploading"
	UploadStatusUploaded  UploadStatus = "uploaded"
	UploadStatusFailed    UploadStatus = "failed"
)

// Attachment is a file linked to an order. URL is set once the upload
// finished; UploadError only when it failed.
type Attachment struct {
	FileName     string       `json:"fileName"`
	URL          string       `json:"url,omitempty"`
	UploadStatus UploadStatus `json:"uploadStatus"`
	UploadError  string       `json:"uploadError,omitempty"`
}
