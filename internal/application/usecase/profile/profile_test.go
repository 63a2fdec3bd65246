package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruai/platform-api/internal/application/usecase/identity"
	"github.com/recruai/platform-api/internal/domain/owner"
	"github.com/recruai/platform-api/internal/domain/section"
	"github.com/recruai/platform-api/pkg/apperror"
	"github.com/recruai/platform-api/pkg/logger"
)

type fakeOwnerRepo struct {
	owners map[uuid.UUID]*owner.Owner
}

func (r *fakeOwnerRepo) FindByID(_ context.Context, id uuid.UUID) (*owner.Owner, error) {
	if o, ok := r.owners[id]; ok {
		return o, nil
	}
	return nil, apperror.NewAppError(apperror.ErrNotFound, "User not found", "", nil)
}

func (r *fakeOwnerRepo) FindByEmail(context.Context, string) (*owner.Owner, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeOwnerRepo) FindByUsername(context.Context, string) (*owner.Owner, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeOwnerRepo) Create(context.Context, *owner.Owner) error { return nil }
func (r *fakeOwnerRepo) Update(context.Context, *owner.Owner) error { return nil }

type fakeSectionRepo struct {
	nextID int64
	rows   map[string][]*section.Item
}

func newFakeSectionRepo() *fakeSectionRepo {
	return &fakeSectionRepo{nextID: 1, rows: make(map[string][]*section.Item)}
}

func (r *fakeSectionRepo) bucket(schema *section.Schema) string {
	if schema.Tag != nil {
		return schema.Table + ":" + schema.Tag.Value
	}
	return schema.Table
}

func (r *fakeSectionRepo) ListByOwner(_ context.Context, schema *section.Schema, ownerID uuid.UUID) ([]*section.Item, error) {
	var out []*section.Item
	for _, item := range r.rows[r.bucket(schema)] {
		if item.OwnerID == ownerID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeSectionRepo) FindByID(_ context.Context, schema *section.Schema, id int64, ownerID uuid.UUID) (*section.Item, error) {
	return nil, apperror.NewNotFound(schema.Label, "unknown")
}

func (r *fakeSectionRepo) Insert(_ context.Context, schema *section.Schema, item *section.Item) error {
	item.ID = r.nextID
	r.nextID++
	key := r.bucket(schema)
	r.rows[key] = append(r.rows[key], item)
	return nil
}

func (r *fakeSectionRepo) Update(context.Context, *section.Schema, *section.Item) error {
	return errors.New("not implemented")
}

func (r *fakeSectionRepo) Delete(context.Context, *section.Schema, int64, uuid.UUID) error {
	return errors.New("not implemented")
}

func (r *fakeSectionRepo) ReplaceByOwner(_ context.Context, schema *section.Schema, ownerID uuid.UUID, items []*section.Item) error {
	key := r.bucket(schema)
	var kept []*section.Item
	for _, existing := range r.rows[key] {
		if existing.OwnerID != ownerID {
			kept = append(kept, existing)
		}
	}
	for _, item := range items {
		item.ID = r.nextID
		r.nextID++
		kept = append(kept, item)
	}
	r.rows[key] = kept
	return nil
}

type fakeCache struct {
	entries     map[uuid.UUID]map[string]any
	invalidated int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[uuid.UUID]map[string]any)}
}

func (c *fakeCache) Get(_ context.Context, ownerID uuid.UUID) (map[string]any, bool) {
	payload, ok := c.entries[ownerID]
	return payload, ok
}

func (c *fakeCache) Set(_ context.Context, ownerID uuid.UUID, payload map[string]any) {
	c.entries[ownerID] = payload
}

func (c *fakeCache) Invalidate(_ context.Context, ownerID uuid.UUID) {
	delete(c.entries, ownerID)
	c.invalidated++
}

func newTestProfile(t *testing.T) (*UseCase, *fakeSectionRepo, *fakeCache, *owner.Owner) {
	t.Helper()

	name := "Alice Nguyen"
	o := &owner.Owner{
		ID:    uuid.New(),
		Email: "alice@example.com",
		Name:  &name,
		Plan:  owner.PlanPro,
	}
	ownerRepo := &fakeOwnerRepo{owners: map[uuid.UUID]*owner.Owner{o.ID: o}}
	sections := newFakeSectionRepo()
	cache := newFakeCache()

	uc := NewUseCase(identity.NewResolver(ownerRepo), ownerRepo, sections, cache, logger.NewNopLogger())
	return uc, sections, cache, o
}

func TestGetFullProfileShape(t *testing.T) {
	uc, sections, _, o := newTestProfile(t)
	ctx := context.Background()

	require.NoError(t, sections.Insert(ctx, section.Skills, section.Skills.Build(o.ID, map[string]any{"skill_name": "Go"})))
	require.NoError(t, sections.Insert(ctx, section.Skills, section.Skills.Build(o.ID, map[string]any{"skill_name": "SQL"})))
	require.NoError(t, sections.Insert(ctx, section.Experience, section.Experience.Build(o.ID, map[string]any{
		"job_title": "Engineer",
		"company":   "Acme",
	})))

	payload, err := uc.GetFullProfile(ctx, o.ID.String())
	require.NoError(t, err)

	assert.Equal(t, o.ID.String(), payload["profile_id"])
	assert.Equal(t, true, payload["show_analytics"])

	personal, ok := payload["personalDetails"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Alice Nguyen", personal["fullName"])
	assert.Equal(t, "alice@example.com", personal["email"])

	// Skills flatten to bare names, other sections keep their wire shape.
	assert.Equal(t, []string{"Go", "SQL"}, payload["skills"])
	experience, ok := payload["experience"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, experience, 1)
	assert.Equal(t, "Engineer", experience[0]["job_title"])

	// Every registered section key is present even when empty.
	for _, schema := range section.All() {
		assert.Contains(t, payload, schema.ListKey)
	}
}

func TestGetFullProfileUsesCache(t *testing.T) {
	uc, _, cache, o := newTestProfile(t)
	ctx := context.Background()

	first, err := uc.GetFullProfile(ctx, o.ID.String())
	require.NoError(t, err)

	_, cached := cache.Get(ctx, o.ID)
	assert.True(t, cached)

	cache.entries[o.ID]["profile_id"] = "sentinel"
	second, err := uc.GetFullProfile(ctx, o.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "sentinel", second["profile_id"])
	assert.NotEqual(t, first["profile_id"], second["profile_id"])
}

func TestUpdateFullProfileReplacesCollections(t *testing.T) {
	uc, sections, cache, o := newTestProfile(t)
	ctx := context.Background()

	payload, err := uc.UpdateFullProfile(ctx, o.ID.String(), map[string]any{
		"experience": []any{
			map[string]any{"job_title": "Engineer", "company": "Acme"},
			map[string]any{"job_title": "Lead", "company": "Initech"},
		},
		"skills": []any{"Go", "Kafka"},
	})
	require.NoError(t, err)

	experience, _ := payload["experience"].([]map[string]any)
	require.Len(t, experience, 2)
	assert.Equal(t, []string{"Go", "Kafka"}, payload["skills"])

	// Replacing with an empty list clears the collection.
	payload, err = uc.UpdateFullProfile(ctx, o.ID.String(), map[string]any{
		"experience": []any{},
	})
	require.NoError(t, err)
	experience, _ = payload["experience"].([]map[string]any)
	assert.Empty(t, experience)

	// Skills were absent from the second payload, so they survive.
	assert.Equal(t, []string{"Go", "Kafka"}, payload["skills"])

	items, err := sections.ListByOwner(ctx, section.Experience, o.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.Equal(t, 2, cache.invalidated)
}

func TestUpdateFullProfileOwnerFields(t *testing.T) {
	uc, _, _, o := newTestProfile(t)
	ctx := context.Background()

	payload, err := uc.UpdateFullProfile(ctx, o.ID.String(), map[string]any{
		"personalDetails": map[string]any{
			"fullName": "Alice N.",
			"phone":    "+1-555-0100",
			"linkedin": "https://linkedin.com/in/alice",
		},
		"summary": "Backend engineer.",
	})
	require.NoError(t, err)

	personal, _ := payload["personalDetails"].(map[string]any)
	assert.Equal(t, "Alice N.", personal["fullName"])
	assert.Equal(t, "+1-555-0100", personal["phone"])
	assert.Equal(t, "Backend engineer.", payload["summary"])

	// Present empty string clears a field, absence leaves it alone.
	payload, err = uc.UpdateFullProfile(ctx, o.ID.String(), map[string]any{
		"personalDetails": map[string]any{"phone": ""},
	})
	require.NoError(t, err)
	personal, _ = payload["personalDetails"].(map[string]any)
	assert.Nil(t, personal["phone"])
	assert.Equal(t, "https://linkedin.com/in/alice", personal["linkedin"])
	assert.Equal(t, "Backend engineer.", payload["summary"])
}

func TestUpdateFullProfileUnknownOwner(t *testing.T) {
	uc, _, _, _ := newTestProfile(t)

	_, err := uc.UpdateFullProfile(context.Background(), uuid.NewString(), map[string]any{})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
