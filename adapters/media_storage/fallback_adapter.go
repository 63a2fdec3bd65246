package media_storage

import (
	"bytes"
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/recruai/platform-api/internal/application/service"
	"github.com/recruai/platform-api/pkg/logger"
)

// fallbackAdapter tries the primary store first and falls back to the
// secondary when the primary fails. The file is buffered up front so both
// attempts can read it; upload sizes are capped at the handler boundary.
type fallbackAdapter struct {
	primary   service.Uploader
	secondary service.Uploader
	logger    logger.Logger
}

func NewFallbackAdapter(primary, secondary service.Uploader, log logger.Logger) service.Uploader {
	return &fallbackAdapter{
		primary:   primary,
		secondary: secondary,
		logger:    log,
	}
}

func (a *fallbackAdapter) Upload(ctx context.Context, file io.Reader, folder string, publicID string, contentType string) (string, error) {
	buf, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	url, err := a.primary.Upload(ctx, bytes.NewReader(buf), folder, publicID, contentType)
	if err == nil {
		return url, nil
	}
	a.logger.Warn("Primary upload store failed, using fallback",
		zap.String("public_id", publicID), zap.Error(err))

	return a.secondary.Upload(ctx, bytes.NewReader(buf), folder, publicID, contentType)
}

func (a *fallbackAdapter) Delete(ctx context.Context, publicID string) error {
	if err := a.primary.Delete(ctx, publicID); err != nil {
		a.logger.Warn("Primary upload store delete failed",
			zap.String("public_id", publicID), zap.Error(err))
	}
	return a.secondary.Delete(ctx, publicID)
}
