package interfaces

import "context"

// IBlobStore uploads attachment bytes and returns a downloadable URL.
type IBlobStore interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
}
