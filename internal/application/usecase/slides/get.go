package slides

import (
	"context"

	"github.com/google/uuid"

	"github.com/recruai/platform-api/internal/application/usecase/identity"
	"github.com/recruai/platform-api/internal/domain/presentation"
	"github.com/recruai/platform-api/pkg/apperror"
	"github.com/recruai/platform-api/pkg/logger"
)

type GetSlidesUseCase struct {
	resolver *identity.Resolver
	repo     presentation.Repository
	logger   logger.Logger
}

func NewGetSlidesUseCase(resolver *identity.Resolver, repo presentation.Repository, log logger.Logger) *GetSlidesUseCase {
	return &GetSlidesUseCase{
		resolver: resolver,
		repo:     repo,
		logger:   log,
	}
}

type SlideView struct {
	SlideNumber int     `json:"slide_number"`
	HTMLContent string  `json:"html_content"`
	ImageURL    *string `json:"image_url"`
}

// Execute returns the finished slides of one presentation. An unknown id and
// another owner's presentation read identically as not found.
func (uc *GetSlidesUseCase) Execute(ctx context.Context, identityToken string, presentationID string) ([]SlideView, error) {
	o, err := uc.resolver.ResolveOwner(ctx, identityToken)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(presentationID)
	if err != nil {
		return nil, apperror.NewInvalidInput("invalid presentation id", err)
	}

	slides, err := uc.repo.ListSlides(ctx, id, o.ID)
	if err != nil {
		return nil, err
	}
	if len(slides) == 0 {
		return nil, apperror.NewNotFound("Presentation", presentationID)
	}

	views := make([]SlideView, len(slides))
	for i, s := range slides {
		views[i] = SlideView{
			SlideNumber: s.SlideNumber,
			HTMLContent: s.HTMLContent,
			ImageURL:    s.ImageURL,
		}
	}
	return views, nil
}
