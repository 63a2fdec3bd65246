package org

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/recruai/platform-api/internal/application/usecase/identity"
	"github.com/recruai/platform-api/internal/domain/org"
	"github.com/recruai/platform-api/pkg/apperror"
	"github.com/recruai/platform-api/pkg/logger"
)

type UseCase struct {
	resolver *identity.Resolver
	repo     org.Repository
	logger   logger.Logger
}

func NewUseCase(resolver *identity.Resolver, repo org.Repository, log logger.Logger) *UseCase {
	return &UseCase{
		resolver: resolver,
		repo:     repo,
		logger:   log,
	}
}

func (uc *UseCase) List(ctx context.Context, identityToken string) ([]*org.Organization, error) {
	if _, err := uc.resolver.ResolveOwner(ctx, identityToken); err != nil {
		return nil, err
	}
	return uc.repo.List(ctx)
}

func (uc *UseCase) Get(ctx context.Context, identityToken string, id int64) (*org.Organization, error) {
	if _, err := uc.resolver.ResolveOwner(ctx, identityToken); err != nil {
		return nil, err
	}
	return uc.repo.FindByID(ctx, id)
}

type Input struct {
	Name             string
	Description      *string
	Website          *string
	ContactEmail     *string
	ContactName      *string
	Location         *string
	CompanySize      *string
	Industry         *string
	Mission          *string
	Vision           *string
	SocialMediaLinks *string
	ProfileImage     *string
	BannerImage      *string
	Timezone         string
}

func (uc *UseCase) Create(ctx context.Context, identityToken string, input Input) (*org.Organization, error) {
	if _, err := uc.resolver.ResolveOwner(ctx, identityToken); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, apperror.NewInvalidInput("organization name is required", nil)
	}
	if input.Timezone == "" {
		input.Timezone = "UTC"
	}

	// Names are unique; the insert's constraint is the backstop for races.
	if _, err := uc.repo.FindByName(ctx, input.Name); err == nil {
		return nil, apperror.NewConflict("organization", "name", input.Name)
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	o := &org.Organization{
		Name:             input.Name,
		Description:      input.Description,
		Website:          input.Website,
		ContactEmail:     input.ContactEmail,
		ContactName:      input.ContactName,
		Location:         input.Location,
		CompanySize:      input.CompanySize,
		Industry:         input.Industry,
		Mission:          input.Mission,
		Vision:           input.Vision,
		SocialMediaLinks: input.SocialMediaLinks,
		ProfileImage:     input.ProfileImage,
		BannerImage:      input.BannerImage,
		Timezone:         input.Timezone,
	}
	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	uc.logger.Info("Organization created", zap.Int64("org_id", o.ID), zap.String("name", o.Name))
	return o, nil
}

func (uc *UseCase) Update(ctx context.Context, identityToken string, id int64, input Input) (*org.Organization, error) {
	if _, err := uc.resolver.ResolveOwner(ctx, identityToken); err != nil {
		return nil, err
	}

	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		o.Name = input.Name
	}
	if input.Timezone != "" {
		o.Timezone = input.Timezone
	}
	applyIfSet(&o.Description, input.Description)
	applyIfSet(&o.Website, input.Website)
	applyIfSet(&o.ContactEmail, input.ContactEmail)
	applyIfSet(&o.ContactName, input.ContactName)
	applyIfSet(&o.Location, input.Location)
	applyIfSet(&o.CompanySize, input.CompanySize)
	applyIfSet(&o.Industry, input.Industry)
	applyIfSet(&o.Mission, input.Mission)
	applyIfSet(&o.Vision, input.Vision)
	applyIfSet(&o.SocialMediaLinks, input.SocialMediaLinks)
	applyIfSet(&o.ProfileImage, input.ProfileImage)
	applyIfSet(&o.BannerImage, input.BannerImage)

	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (uc *UseCase) Delete(ctx context.Context, identityToken string, id int64) error {
	if _, err := uc.resolver.ResolveOwner(ctx, identityToken); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func applyIfSet(target **string, value *string) {
	if value != nil {
		*target = value
	}
}
