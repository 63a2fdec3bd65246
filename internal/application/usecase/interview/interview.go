package interview

import (
	"context"
	"time"

	"github.com/recruai/platform-api/internal/application/usecase/identity"
	"github.com/recruai/platform-api/internal/domain/interview"
	"github.com/recruai/platform-api/pkg/apperror"
	"github.com/recruai/platform-api/pkg/logger"
)

type UseCase struct {
	resolver *identity.Resolver
	repo     interview.Repository
	logger   logger.Logger
}

func NewUseCase(resolver *identity.Resolver, repo interview.Repository, log logger.Logger) *UseCase {
	return &UseCase{
		resolver: resolver,
		repo:     repo,
		logger:   log,
	}
}

func (uc *UseCase) List(ctx context.Context, identityToken string) ([]*interview.Interview, error) {
	o, err := uc.resolver.ResolveOwner(ctx, identityToken)
	if err != nil {
		return nil, err
	}
	return uc.repo.ListByOwner(ctx, o.ID)
}

type ScheduleInput struct {
	Title       string
	ScheduledAt time.Time
}

func (uc *UseCase) Schedule(ctx context.Context, identityToken string, input ScheduleInput) (*interview.Interview, error) {
	o, err := uc.resolver.ResolveOwner(ctx, identityToken)
	if err != nil {
		return nil, err
	}
	if input.Title == "" {
		return nil, apperror.NewInvalidInput("interview title is required", nil)
	}
	if input.ScheduledAt.IsZero() {
		return nil, apperror.NewInvalidInput("scheduled_at is required", nil)
	}

	iv := &interview.Interview{
		OwnerID:     o.ID,
		Title:       input.Title,
		ScheduledAt: input.ScheduledAt,
		Status:      interview.StatusScheduled,
	}
	if err := uc.repo.Create(ctx, iv); err != nil {
		return nil, err
	}
	return iv, nil
}
