package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recruai/platform-api/internal/domain/owner"
	"github.com/recruai/platform-api/pkg/apperror"
	"github.com/recruai/platform-api/pkg/auth"
	"github.com/recruai/platform-api/pkg/logger"
)

type RegisterUseCase struct {
	ownerRepo owner.Repository
	jwtSvc    *auth.JWTService
	logger    logger.Logger
}

func NewRegisterUseCase(repo owner.Repository, jwtSvc *auth.JWTService, log logger.Logger) *RegisterUseCase {
	return &RegisterUseCase{
		ownerRepo: repo,
		jwtSvc:    jwtSvc,
		logger:    log,
	}
}

type RegisterInput struct {
	Email    string
	Username string
	Password string
	Name     string
	Role     string
	Timezone string
}

type RegisterOutput struct {
	AccessToken string
	Owner       *owner.Owner
}

// Execute creates a new account on the trial plan and signs the caller in.
func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if input.Email == "" || input.Password == "" {
		return nil, apperror.NewInvalidInput("email and password are required", nil)
	}
	if len(input.Password) < 8 {
		return nil, apperror.NewInvalidInput("password must be at least 8 characters", nil)
	}

	role := input.Role
	if role != owner.RoleOrganization {
		role = owner.RoleIndividual
	}

	// Usernames are unique; the insert's constraint is the backstop for races.
	if input.Username != "" {
		if _, err := uc.ownerRepo.FindByUsername(ctx, input.Username); err == nil {
			return nil, apperror.NewConflict("user", "username", input.Username)
		} else if !errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		uc.logger.Error("Failed to hash password", err)
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	o := &owner.Owner{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		Plan:         owner.PlanTrial,
	}
	if input.Username != "" {
		o.Username = &input.Username
	}
	if input.Name != "" {
		o.Name = &input.Name
	}
	if input.Timezone != "" {
		o.Timezone = &input.Timezone
	}

	if err := uc.ownerRepo.Create(ctx, o); err != nil {
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(o.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("user_id", o.ID.String()))
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	uc.logger.Info("User registered", zap.String("user_id", o.ID.String()))
	return &RegisterOutput{AccessToken: token, Owner: o}, nil
}
