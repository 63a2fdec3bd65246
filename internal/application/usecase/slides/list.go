package slides

import (
	"context"

	"github.com/recruai/platform-api/internal/application/usecase/identity"
	"github.com/recruai/platform-api/internal/domain/presentation"
	"github.com/recruai/platform-api/pkg/logger"
)

type ListUseCase struct {
	resolver *identity.Resolver
	repo     presentation.Repository
	logger   logger.Logger
}

func NewListUseCase(resolver *identity.Resolver, repo presentation.Repository, log logger.Logger) *ListUseCase {
	return &ListUseCase{
		resolver: resolver,
		repo:     repo,
		logger:   log,
	}
}

type PresentationSummary struct {
	PresentationID string  `json:"presentation_id"`
	Title          string  `json:"title"`
	Topic          string  `json:"topic"`
	SlideCount     int     `json:"slide_count"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
	ExpiresAt      *string `json:"expires_at"`
}

func (uc *ListUseCase) Execute(ctx context.Context, identityToken string) ([]PresentationSummary, error) {
	o, err := uc.resolver.ResolveOwner(ctx, identityToken)
	if err != nil {
		return nil, err
	}

	presentations, err := uc.repo.ListByOwner(ctx, o.ID)
	if err != nil {
		return nil, err
	}

	summaries := make([]PresentationSummary, len(presentations))
	for i, p := range presentations {
		s := PresentationSummary{
			PresentationID: p.ID.String(),
			Title:          p.Title,
			Topic:          p.Topic,
			SlideCount:     p.SlideCount,
			Status:         p.Status,
			CreatedAt:      p.CreatedAt.Format("2006-01-02T15:04:05"),
		}
		if p.ExpiresAt != nil {
			expires := p.ExpiresAt.Format("2006-01-02T15:04:05")
			s.ExpiresAt = &expires
		}
		summaries[i] = s
	}
	return summaries, nil
}
