package service

import (
	"context"
	"io"
)

// Uploader stores a file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string, contentType string) (string, error)
	Delete(ctx context.Context, publicID string) error
}
