package auth

import (
	"context"

	"go.uber.org/zap"

	"github.com/recruai/platform-api/internal/application/usecase/identity"
	"github.com/recruai/platform-api/internal/domain/owner"
	"github.com/recruai/platform-api/pkg/apperror"
	"github.com/recruai/platform-api/pkg/logger"
)

// AccountUseCase serves the signed-in user's own record and plan changes.
type AccountUseCase struct {
	resolver  *identity.Resolver
	ownerRepo owner.Repository
	logger    logger.Logger
}

func NewAccountUseCase(resolver *identity.Resolver, repo owner.Repository, log logger.Logger) *AccountUseCase {
	return &AccountUseCase{
		resolver:  resolver,
		ownerRepo: repo,
		logger:    log,
	}
}

func (uc *AccountUseCase) Me(ctx context.Context, identityToken string) (*owner.Owner, error) {
	return uc.resolver.ResolveOwner(ctx, identityToken)
}

func (uc *AccountUseCase) UpdatePlan(ctx context.Context, identityToken string, plan string) (*owner.Owner, error) {
	if plan != owner.PlanTrial && plan != owner.PlanPro {
		return nil, apperror.NewInvalidInput("plan must be trial or pro", nil)
	}

	o, err := uc.resolver.ResolveOwner(ctx, identityToken)
	if err != nil {
		return nil, err
	}

	o.Plan = plan
	if err := uc.ownerRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	uc.logger.Info("Plan updated", zap.String("user_id", o.ID.String()), zap.String("plan", plan))
	return o, nil
}
