package jobpost

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/recruai/platform-api/adapters/event"
	"github.com/recruai/platform-api/internal/application/usecase/identity"
	"github.com/recruai/platform-api/internal/domain/jobpost"
	"github.com/recruai/platform-api/internal/domain/org"
	"github.com/recruai/platform-api/pkg/apperror"
	"github.com/recruai/platform-api/pkg/logger"
)

// EventPublisher is the slice of the kafka client the job post use case
// needs; nil disables event publishing.
type EventPublisher interface {
	PublishPostEvent(ctx context.Context, payload event.PostEventPayload) error
}

type UseCase struct {
	resolver *identity.Resolver
	repo     jobpost.Repository
	orgRepo  org.Repository
	events   EventPublisher
	logger   logger.Logger
}

func NewUseCase(
	resolver *identity.Resolver,
	repo jobpost.Repository,
	orgRepo org.Repository,
	events EventPublisher,
	log logger.Logger,
) *UseCase {
	return &UseCase{
		resolver: resolver,
		repo:     repo,
		orgRepo:  orgRepo,
		events:   events,
		logger:   log,
	}
}

func (uc *UseCase) List(ctx context.Context, identityToken string, f jobpost.Filter) ([]*jobpost.JobPost, error) {
	if _, err := uc.resolver.ResolveOwner(ctx, identityToken); err != nil {
		return nil, err
	}
	if f.Status == "" {
		f.Status = jobpost.StatusActive
	}
	return uc.repo.List(ctx, f)
}

func (uc *UseCase) Get(ctx context.Context, identityToken string, id int64) (*jobpost.JobPost, error) {
	if _, err := uc.resolver.ResolveOwner(ctx, identityToken); err != nil {
		return nil, err
	}
	return uc.repo.FindByID(ctx, id)
}

type Input struct {
	OrganizationID      int64
	Title               string
	Description         *string
	Location            *string
	EmploymentType      *string
	Category            *string
	SalaryMin           *int64
	SalaryMax           *int64
	SalaryCurrency      string
	Requirements        *string
	ApplicationDeadline *time.Time
	Status              string
}

func (uc *UseCase) Create(ctx context.Context, identityToken string, input Input) (*jobpost.JobPost, error) {
	if _, err := uc.resolver.ResolveOwner(ctx, identityToken); err != nil {
		return nil, err
	}
	if input.Title == "" {
		return nil, apperror.NewInvalidInput("job post title is required", nil)
	}
	if _, err := uc.orgRepo.FindByID(ctx, input.OrganizationID); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = jobpost.StatusActive
	}
	currency := input.SalaryCurrency
	if currency == "" {
		currency = "USD"
	}

	p := &jobpost.JobPost{
		OrganizationID:      input.OrganizationID,
		Title:               input.Title,
		Description:         input.Description,
		Location:            input.Location,
		EmploymentType:      input.EmploymentType,
		Category:            input.Category,
		SalaryMin:           input.SalaryMin,
		SalaryMax:           input.SalaryMax,
		SalaryCurrency:      currency,
		Requirements:        input.Requirements,
		ApplicationDeadline: input.ApplicationDeadline,
		Status:              status,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.publish("post.created", p)
	return p, nil
}

func (uc *UseCase) Update(ctx context.Context, identityToken string, id int64, input Input) (*jobpost.JobPost, error) {
	if _, err := uc.resolver.ResolveOwner(ctx, identityToken); err != nil {
		return nil, err
	}

	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		p.Title = input.Title
	}
	if input.Status != "" {
		p.Status = input.Status
	}
	if input.SalaryCurrency != "" {
		p.SalaryCurrency = input.SalaryCurrency
	}
	if input.Description != nil {
		p.Description = input.Description
	}
	if input.Location != nil {
		p.Location = input.Location
	}
	if input.EmploymentType != nil {
		p.EmploymentType = input.EmploymentType
	}
	if input.Category != nil {
		p.Category = input.Category
	}
	if input.SalaryMin != nil {
		p.SalaryMin = input.SalaryMin
	}
	if input.SalaryMax != nil {
		p.SalaryMax = input.SalaryMax
	}
	if input.Requirements != nil {
		p.Requirements = input.Requirements
	}
	if input.ApplicationDeadline != nil {
		p.ApplicationDeadline = input.ApplicationDeadline
	}

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.publish("post.updated", p)
	return p, nil
}

func (uc *UseCase) Delete(ctx context.Context, identityToken string, id int64) error {
	if _, err := uc.resolver.ResolveOwner(ctx, identityToken); err != nil {
		return err
	}

	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.publish("post.deleted", p)
	return nil
}

func (uc *UseCase) publish(eventType string, p *jobpost.JobPost) {
	if uc.events == nil {
		return
	}
	payload := event.PostEventPayload{
		EventType:  eventType,
		PostID:     p.ID,
		OrgID:      p.OrganizationID,
		OccurredAt: time.Now().UTC(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.events.PublishPostEvent(ctx, payload); err != nil {
			uc.logger.Warn("Failed to publish post event",
				zap.String("event_type", eventType), zap.Int64("post_id", p.ID), zap.Error(err))
		}
	}()
}
