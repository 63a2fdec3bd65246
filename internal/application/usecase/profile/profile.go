package profile

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recruai/platform-api/internal/application/service"
	"github.com/recruai/platform-api/internal/application/usecase/identity"
	"github.com/recruai/platform-api/internal/domain/owner"
	"github.com/recruai/platform-api/internal/domain/section"
	"github.com/recruai/platform-api/pkg/logger"
)

// UseCase assembles and replaces the consolidated profile view: the owner's
// top-level fields plus every registered section kind under its plural key.
type UseCase struct {
	resolver  *identity.Resolver
	ownerRepo owner.Repository
	sections  section.Repository
	cache     service.ProfileCache
	logger    logger.Logger
}

func NewUseCase(
	resolver *identity.Resolver,
	ownerRepo owner.Repository,
	sections section.Repository,
	cache service.ProfileCache,
	log logger.Logger,
) *UseCase {
	return &UseCase{
		resolver:  resolver,
		ownerRepo: ownerRepo,
		sections:  sections,
		cache:     cache,
		logger:    log,
	}
}

// bulkSchemas are the collections the aggregate PUT replaces wholesale.
// Other section kinds are read into the aggregate view but only mutable
// through their own per-item endpoints.
var bulkSchemas = map[string]*section.Schema{
	"experience": section.Experience,
	"education":  section.Education,
	"projects":   section.Projects,
	"skills":     section.Skills,
}

func (uc *UseCase) GetFullProfile(ctx context.Context, identityToken string) (map[string]any, error) {
	o, err := uc.resolver.ResolveOwner(ctx, identityToken)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx, o.ID); ok {
			return cached, nil
		}
	}

	payload, err := uc.buildPayload(ctx, o)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, o.ID, payload)
	}
	return payload, nil
}

func (uc *UseCase) buildPayload(ctx context.Context, o *owner.Owner) (map[string]any, error) {
	payload := map[string]any{
		"profile_id": o.ID.String(),
		"personalDetails": map[string]any{
			"fullName": derefOr(o.Name, ""),
			"email":    o.Email,
			"phone":    deref(o.Phone),
			"location": deref(o.Location),
			"linkedin": deref(o.LinkedinURL),
			"github":   deref(o.GithubURL),
			"website":  deref(o.WebsiteURL),
		},
		"summary":         deref(o.Summary),
		"profile_picture": deref(o.ProfilePicture),
		"show_analytics":  o.IsPro(),
	}

	for _, schema := range section.All() {
		items, err := uc.sections.ListByOwner(ctx, schema, o.ID)
		if err != nil {
			return nil, err
		}

		// Skills flatten to a plain name list; everything else serializes
		// through its schema.
		if schema == section.Skills {
			names := make([]string, len(items))
			for i, item := range items {
				names[i] = item.Text("name")
			}
			payload[schema.ListKey] = names
			continue
		}

		serialized := make([]map[string]any, len(items))
		for i, item := range items {
			serialized[i] = schema.Serialize(item)
		}
		payload[schema.ListKey] = serialized
	}

	return payload, nil
}

// UpdateFullProfile applies top-level field updates, then replaces each
// collection present in the payload with a full delete-and-reinsert. No
// diffing: rows get fresh identities on every bulk update, and concurrent
// bulk updates are last-write-wins by design.
func (uc *UseCase) UpdateFullProfile(ctx context.Context, identityToken string, data map[string]any) (map[string]any, error) {
	o, err := uc.resolver.ResolveOwner(ctx, identityToken)
	if err != nil {
		return nil, err
	}

	applyOwnerFields(o, data)
	if err := uc.ownerRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	for key, schema := range bulkSchemas {
		raw, ok := data[key]
		if !ok {
			continue
		}
		items, err := uc.buildItems(schema, o.ID, raw)
		if err != nil {
			return nil, err
		}
		if err := uc.sections.ReplaceByOwner(ctx, schema, o.ID, items); err != nil {
			return nil, err
		}
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, o.ID)
	}
	uc.logger.Info("Profile replaced", zap.String("owner_id", o.ID.String()))

	return uc.buildPayload(ctx, o)
}

func (uc *UseCase) buildItems(schema *section.Schema, ownerID uuid.UUID, raw any) ([]*section.Item, error) {
	entries, ok := raw.([]any)
	if !ok {
		return []*section.Item{}, nil
	}

	items := make([]*section.Item, 0, len(entries))
	for _, entry := range entries {
		// Skills arrive as bare strings in the bulk payload.
		if name, ok := entry.(string); ok {
			if name == "" {
				continue
			}
			items = append(items, schema.Build(ownerID, map[string]any{"name": name}))
			continue
		}
		payload, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		items = append(items, schema.Build(ownerID, payload))
	}
	return items, nil
}

func applyOwnerFields(o *owner.Owner, data map[string]any) {
	if personal, ok := data["personalDetails"].(map[string]any); ok {
		if name, ok := personal["fullName"].(string); ok && name != "" {
			o.Name = &name
		}
		setIfPresent(personal, "email", func(v string) { o.Email = v })
		setPtrIfPresent(personal, "phone", &o.Phone)
		setPtrIfPresent(personal, "location", &o.Location)
		setPtrIfPresent(personal, "linkedin", &o.LinkedinURL)
		setPtrIfPresent(personal, "github", &o.GithubURL)
		setPtrIfPresent(personal, "website", &o.WebsiteURL)
	}
	setPtrIfPresent(data, "summary", &o.Summary)
}

func setIfPresent(data map[string]any, key string, assign func(string)) {
	if v, ok := data[key].(string); ok && v != "" {
		assign(v)
	}
}

func setPtrIfPresent(data map[string]any, key string, target **string) {
	raw, ok := data[key]
	if !ok {
		return
	}
	if v, ok := raw.(string); ok {
		if v == "" {
			*target = nil
			return
		}
		*target = &v
	}
}

func deref(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
