package media_storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/recruai/platform-api/internal/application/service"
	"github.com/recruai/platform-api/internal/config"
)

// localAdapter writes uploads to local disk and serves them from /uploads.
// It is the fallback store when cloudinary is unavailable or unconfigured.
type localAdapter struct {
	baseDir string
}

func NewLocalAdapter(cfg config.Config) (service.Uploader, error) {
	baseDir := cfg.Uploads.LocalDir
	if baseDir == "" {
		baseDir = "uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create uploads dir: %w", err)
	}
	return &localAdapter{baseDir: baseDir}, nil
}

func (a *localAdapter) Upload(ctx context.Context, file io.Reader, folder string, publicID string, contentType string) (string, error) {
	dir := filepath.Join(a.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create upload folder: %w", err)
	}

	path := filepath.Join(dir, publicID)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("cannot create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("cannot write upload file: %w", err)
	}

	return "/uploads/" + filepath.ToSlash(filepath.Join(folder, publicID)), nil
}

func (a *localAdapter) Delete(ctx context.Context, publicID string) error {
	matches, err := filepath.Glob(filepath.Join(a.baseDir, "*", "*", "*", publicID))
	if err != nil {
		return fmt.Errorf("cannot locate upload file: %w", err)
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			return fmt.Errorf("cannot delete upload file: %w", err)
		}
	}
	return nil
}
