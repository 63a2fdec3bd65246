package media

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recruai/platform-api/internal/application/service"
	"github.com/recruai/platform-api/internal/application/usecase/identity"
	"github.com/recruai/platform-api/internal/domain/owner"
	"github.com/recruai/platform-api/pkg/apperror"
	"github.com/recruai/platform-api/pkg/logger"
)

// MaxUploadSize caps profile picture uploads at 5MB.
const MaxUploadSize = 5 << 20

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

type UploadPictureUseCase struct {
	resolver  *identity.Resolver
	ownerRepo owner.Repository
	uploader  service.Uploader
	cache     service.ProfileCache
	logger    logger.Logger
}

func NewUploadPictureUseCase(
	resolver *identity.Resolver,
	ownerRepo owner.Repository,
	uploader service.Uploader,
	cache service.ProfileCache,
	log logger.Logger,
) *UploadPictureUseCase {
	return &UploadPictureUseCase{
		resolver:  resolver,
		ownerRepo: ownerRepo,
		uploader:  uploader,
		cache:     cache,
		logger:    log,
	}
}

type UploadPictureInput struct {
	Filename    string
	Size        int64
	ContentType string
	File        io.Reader
}

// Execute validates, stores and records a new profile picture, returning its
// public URL.
func (uc *UploadPictureUseCase) Execute(ctx context.Context, identityToken string, input UploadPictureInput) (string, error) {
	o, err := uc.resolver.ResolveOwner(ctx, identityToken)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(input.Filename))
	if !allowedExtensions[ext] {
		return "", apperror.NewInvalidInput("file type not allowed, expected png, jpg, jpeg or gif", nil)
	}
	if input.Size > MaxUploadSize {
		return "", apperror.NewInvalidInput("file exceeds the 5MB limit", nil)
	}

	folder := fmt.Sprintf("users/%s/profile", o.ID.String())
	publicID := uuid.New().String() + ext

	url, err := uc.uploader.Upload(ctx, input.File, folder, publicID, input.ContentType)
	if err != nil {
		return "", apperror.NewInternal("failed to store profile picture", err)
	}

	previous := o.ProfilePicture
	o.ProfilePicture = &url
	if err := uc.ownerRepo.Update(ctx, o); err != nil {
		go uc.uploader.Delete(context.Background(), publicID)
		return "", err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, o.ID)
	}
	if previous != nil {
		uc.logger.Info("Profile picture replaced",
			zap.String("user_id", o.ID.String()), zap.String("previous", *previous))
	}
	return url, nil
}
