package auth

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/recruai/platform-api/internal/domain/owner"
	"github.com/recruai/platform-api/pkg/apperror"
	"github.com/recruai/platform-api/pkg/auth"
	"github.com/recruai/platform-api/pkg/logger"
)

type LoginUseCase struct {
	ownerRepo owner.Repository
	jwtSvc    *auth.JWTService
	logger    logger.Logger
}

func NewLoginUseCase(repo owner.Repository, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		ownerRepo: repo,
		jwtSvc:    jwtSvc,
		logger:    log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string
	Owner       *owner.Owner
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	o, err := uc.ownerRepo.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email answers identically to a wrong password.
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewUnauthorized("invalid credentials", nil)
		}
		return nil, err
	}

	if !auth.CheckPasswordHash(input.Password, o.PasswordHash) {
		return nil, apperror.NewUnauthorized("invalid credentials", nil)
	}

	token, err := uc.jwtSvc.GenerateToken(o.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("user_id", o.ID.String()))
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	return &LoginOutput{AccessToken: token, Owner: o}, nil
}
