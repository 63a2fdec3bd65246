package section

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recruai/platform-api/adapters/event"
	"github.com/recruai/platform-api/internal/application/service"
	"github.com/recruai/platform-api/internal/application/usecase/identity"
	"github.com/recruai/platform-api/internal/domain/section"
	"github.com/recruai/platform-api/pkg/apperror"
	"github.com/recruai/platform-api/pkg/logger"
)

// EventPublisher is the slice of the kafka client the section use case
// needs; nil disables event publishing.
type EventPublisher interface {
	PublishProfileEvent(ctx context.Context, payload event.ProfileEventPayload) error
}

// UseCase implements list/create/update/delete for every section kind. All
// four operations are parameterized by schema only; there is no per-kind
// branching here or anywhere below.
type UseCase struct {
	resolver *identity.Resolver
	repo     section.Repository
	events   EventPublisher
	cache    service.ProfileCache
	logger   logger.Logger
}

func NewUseCase(
	resolver *identity.Resolver,
	repo section.Repository,
	events EventPublisher,
	cache service.ProfileCache,
	log logger.Logger,
) *UseCase {
	return &UseCase{
		resolver: resolver,
		repo:     repo,
		events:   events,
		cache:    cache,
		logger:   log,
	}
}

func (uc *UseCase) List(ctx context.Context, schema *section.Schema, identityToken string) ([]map[string]any, error) {
	o, err := uc.resolver.ResolveOwner(ctx, identityToken)
	if err != nil {
		return nil, err
	}

	items, err := uc.repo.ListByOwner(ctx, schema, o.ID)
	if err != nil {
		return nil, err
	}

	serialized := make([]map[string]any, len(items))
	for i, item := range items {
		serialized[i] = schema.Serialize(item)
	}
	return serialized, nil
}

func (uc *UseCase) Create(ctx context.Context, schema *section.Schema, identityToken string, payload map[string]any) (map[string]any, error) {
	o, err := uc.resolver.ResolveOwner(ctx, identityToken)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, apperror.NewInvalidInput("missing "+schema.Resource+" data", nil)
	}

	item := schema.Build(o.ID, payload)
	if err := uc.repo.Insert(ctx, schema, item); err != nil {
		return nil, err
	}

	uc.afterWrite(o.ID, schema, "section.created", item.ID)
	return schema.Serialize(item), nil
}

func (uc *UseCase) Update(ctx context.Context, schema *section.Schema, identityToken string, itemID int64, payload map[string]any) (map[string]any, error) {
	o, err := uc.resolver.ResolveOwner(ctx, identityToken)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, apperror.NewInvalidInput("missing "+schema.Resource+" data", nil)
	}

	// Owner- and tag-scoped lookup: someone else's row, or a row tagged for
	// the sibling resource, reads as not found.
	item, err := uc.repo.FindByID(ctx, schema, itemID, o.ID)
	if err != nil {
		return nil, err
	}

	schema.ApplyUpdate(item, payload)
	if err := uc.repo.Update(ctx, schema, item); err != nil {
		return nil, err
	}

	uc.afterWrite(o.ID, schema, "section.updated", item.ID)
	return schema.Serialize(item), nil
}

func (uc *UseCase) Delete(ctx context.Context, schema *section.Schema, identityToken string, itemID int64) error {
	o, err := uc.resolver.ResolveOwner(ctx, identityToken)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, schema, itemID, o.ID); err != nil {
		return err
	}

	uc.afterWrite(o.ID, schema, "section.deleted", itemID)
	return nil
}

// afterWrite invalidates the owner's cached profile and publishes the
// mutation event. Both are fire-and-forget relative to the request.
func (uc *UseCase) afterWrite(ownerID uuid.UUID, schema *section.Schema, eventType string, itemID int64) {
	if uc.cache != nil {
		uc.cache.Invalidate(context.Background(), ownerID)
	}
	if uc.events == nil {
		return
	}
	payload := event.ProfileEventPayload{
		EventType:  eventType,
		OwnerID:    ownerID.String(),
		Resource:   schema.Resource,
		ItemID:     itemID,
		OccurredAt: time.Now().UTC(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.events.PublishProfileEvent(ctx, payload); err != nil {
			uc.logger.Warn("Failed to publish profile event",
				zap.String("resource", schema.Resource), zap.Error(err))
		}
	}()
}
