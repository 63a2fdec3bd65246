package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruai/platform-api/internal/domain/owner"
	"github.com/recruai/platform-api/pkg/apperror"
	"github.com/recruai/platform-api/pkg/auth"
	"github.com/recruai/platform-api/pkg/logger"
)

type fakeOwnerRepo struct {
	byID       map[uuid.UUID]*owner.Owner
	byEmail    map[string]*owner.Owner
	byUsername map[string]*owner.Owner
}

func newFakeOwnerRepo() *fakeOwnerRepo {
	return &fakeOwnerRepo{
		byID:       make(map[uuid.UUID]*owner.Owner),
		byEmail:    make(map[string]*owner.Owner),
		byUsername: make(map[string]*owner.Owner),
	}
}

func (r *fakeOwnerRepo) FindByID(_ context.Context, id uuid.UUID) (*owner.Owner, error) {
	if o, ok := r.byID[id]; ok {
		return o, nil
	}
	return nil, apperror.NewAppError(apperror.ErrNotFound, "User not found", "", nil)
}

func (r *fakeOwnerRepo) FindByEmail(_ context.Context, email string) (*owner.Owner, error) {
	if o, ok := r.byEmail[email]; ok {
		return o, nil
	}
	return nil, apperror.NewAppError(apperror.ErrNotFound, "User not found", "", nil)
}

func (r *fakeOwnerRepo) FindByUsername(_ context.Context, username string) (*owner.Owner, error) {
	if o, ok := r.byUsername[username]; ok {
		return o, nil
	}
	return nil, apperror.NewAppError(apperror.ErrNotFound, "User not found", "", nil)
}

func (r *fakeOwnerRepo) Create(_ context.Context, o *owner.Owner) error {
	if _, exists := r.byEmail[o.Email]; exists {
		return apperror.NewConflict("user", "email", o.Email)
	}
	r.byID[o.ID] = o
	r.byEmail[o.Email] = o
	if o.Username != nil {
		r.byUsername[*o.Username] = o
	}
	return nil
}

func (r *fakeOwnerRepo) Update(_ context.Context, o *owner.Owner) error {
	r.byID[o.ID] = o
	r.byEmail[o.Email] = o
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeOwnerRepo()
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	log := logger.NewNopLogger()

	register := NewRegisterUseCase(repo, jwtSvc, log)
	out, err := register.Execute(context.Background(), RegisterInput{
		Email:    "  Alice@Example.COM ",
		Password: "correct-horse",
		Name:     "Alice",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "alice@example.com", out.Owner.Email)
	assert.Equal(t, owner.RoleIndividual, out.Owner.Role)
	assert.Equal(t, owner.PlanTrial, out.Owner.Plan)
	assert.NotEqual(t, "correct-horse", out.Owner.PasswordHash)

	claims, err := jwtSvc.ValidateToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, out.Owner.ID.String(), claims.Subject)

	login := NewLoginUseCase(repo, jwtSvc, log)
	loggedIn, err := login.Execute(context.Background(), LoginInput{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, out.Owner.ID, loggedIn.Owner.ID)
	assert.NotEmpty(t, loggedIn.AccessToken)
}

func TestRegisterValidation(t *testing.T) {
	register := NewRegisterUseCase(newFakeOwnerRepo(), auth.NewJWTService("s", time.Hour), logger.NewNopLogger())

	_, err := register.Execute(context.Background(), RegisterInput{Password: "longenough"})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = register.Execute(context.Background(), RegisterInput{Email: "a@b.com"})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = register.Execute(context.Background(), RegisterInput{Email: "a@b.com", Password: "short"})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestRegisterUnknownRoleFallsBackToIndividual(t *testing.T) {
	register := NewRegisterUseCase(newFakeOwnerRepo(), auth.NewJWTService("s", time.Hour), logger.NewNopLogger())

	out, err := register.Execute(context.Background(), RegisterInput{
		Email:    "b@example.com",
		Password: "longenough",
		Role:     "superadmin",
	})
	require.NoError(t, err)
	assert.Equal(t, owner.RoleIndividual, out.Owner.Role)

	out, err = register.Execute(context.Background(), RegisterInput{
		Email:    "org@example.com",
		Password: "longenough",
		Role:     owner.RoleOrganization,
	})
	require.NoError(t, err)
	assert.Equal(t, owner.RoleOrganization, out.Owner.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeOwnerRepo()
	register := NewRegisterUseCase(repo, auth.NewJWTService("s", time.Hour), logger.NewNopLogger())

	_, err := register.Execute(context.Background(), RegisterInput{Email: "dup@example.com", Password: "longenough"})
	require.NoError(t, err)

	_, err = register.Execute(context.Background(), RegisterInput{Email: "dup@example.com", Password: "longenough"})
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newFakeOwnerRepo()
	register := NewRegisterUseCase(repo, auth.NewJWTService("s", time.Hour), logger.NewNopLogger())

	_, err := register.Execute(context.Background(), RegisterInput{
		Email:    "first@example.com",
		Username: "taken",
		Password: "longenough",
	})
	require.NoError(t, err)

	_, err = register.Execute(context.Background(), RegisterInput{
		Email:    "second@example.com",
		Username: "taken",
		Password: "longenough",
	})
	require.ErrorIs(t, err, apperror.ErrConflict)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details, "username")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeOwnerRepo()
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	log := logger.NewNopLogger()

	register := NewRegisterUseCase(repo, jwtSvc, log)
	_, err := register.Execute(context.Background(), RegisterInput{Email: "c@example.com", Password: "longenough"})
	require.NoError(t, err)

	login := NewLoginUseCase(repo, jwtSvc, log)

	// Wrong password and unknown email answer identically.
	_, wrongPass := login.Execute(context.Background(), LoginInput{Email: "c@example.com", Password: "nope-nope"})
	_, unknown := login.Execute(context.Background(), LoginInput{Email: "ghost@example.com", Password: "whatever"})

	require.Error(t, wrongPass)
	require.Error(t, unknown)
	assert.ErrorIs(t, wrongPass, apperror.ErrUnauthorized)
	assert.ErrorIs(t, unknown, apperror.ErrUnauthorized)

	var appErrPass, appErrUnknown *apperror.AppError
	require.True(t, errors.As(wrongPass, &appErrPass))
	require.True(t, errors.As(unknown, &appErrUnknown))
	assert.Equal(t, appErrPass.Message, appErrUnknown.Message)
}

func TestLoginNormalizesEmail(t *testing.T) {
	repo := newFakeOwnerRepo()
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	log := logger.NewNopLogger()

	register := NewRegisterUseCase(repo, jwtSvc, log)
	_, err := register.Execute(context.Background(), RegisterInput{Email: "d@example.com", Password: "longenough"})
	require.NoError(t, err)

	login := NewLoginUseCase(repo, jwtSvc, log)
	out, err := login.Execute(context.Background(), LoginInput{
		Email:    strings.ToUpper("d@example.com"),
		Password: "longenough",
	})
	require.NoError(t, err)
	assert.Equal(t, "d@example.com", out.Owner.Email)
}
