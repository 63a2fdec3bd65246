package jobpost

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruai/platform-api/internal/application/usecase/identity"
	"github.com/recruai/platform-api/internal/domain/jobpost"
	"github.com/recruai/platform-api/internal/domain/org"
	"github.com/recruai/platform-api/internal/domain/owner"
	"github.com/recruai/platform-api/pkg/apperror"
	"github.com/recruai/platform-api/pkg/logger"
)

type fakeOwnerRepo struct {
	o *owner.Owner
}

func (r *fakeOwnerRepo) FindByID(_ context.Context, id uuid.UUID) (*owner.Owner, error) {
	if r.o != nil && r.o.ID == id {
		return r.o, nil
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

type fakeOrgRepo struct {
	orgs map[int64]*org.Organization
}

func (r *fakeOrgRepo) List(context.Context) ([]*org.Organization, error) { return nil, nil }

func (r *fakeOrgRepo) FindByID(_ context.Context, id int64) (*org.Organization, error) {
	if o, ok := r.orgs[id]; ok {
		return o, nil
	}
	return nil, apperror.NewNotFound("Organization", "unknown")
}

func (r *fakeOrgRepo) FindByName(context.Context, string) (*org.Organization, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeOrgRepo) Create(context.Context, *org.Organization) error { return nil }
func (r *fakeOrgRepo) Update(context.Context, *org.Organization) error { return nil }
func (r *fakeOrgRepo) Delete(context.Context, int64) error             { return nil }

type fakePostRepo struct {
	nextID int64
	posts  map[int64]*jobpost.JobPost
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{nextID: 1, posts: make(map[int64]*jobpost.JobPost)}
}

func (r *fakePostRepo) List(_ context.Context, f jobpost.Filter) ([]*jobpost.JobPost, error) {
	var out []*jobpost.JobPost
	for _, p := range r.posts {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.OrganizationID != 0 && p.OrganizationID != f.OrganizationID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePostRepo) FindByID(_ context.Context, id int64) (*jobpost.JobPost, error) {
	if p, ok := r.posts[id]; ok {
		return p, nil
	}
	return nil, apperror.NewNotFound("Job post", "unknown")
}

func (r *fakePostRepo) Create(_ context.Context, p *jobpost.JobPost) error {
	p.ID = r.nextID
	r.nextID++
	r.posts[p.ID] = p
	return nil
}

func (r *fakePostRepo) Update(_ context.Context, p *jobpost.JobPost) error {
	if _, ok := r.posts[p.ID]; !ok {
		return apperror.NewNotFound("Job post", "unknown")
	}
	r.posts[p.ID] = p
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.posts[id]; !ok {
		return apperror.NewNotFound("Job post", "unknown")
	}
	delete(r.posts, id)
	return nil
}

func newTestUseCase(t *testing.T) (*UseCase, *fakePostRepo, *owner.Owner) {
	t.Helper()

	o := &owner.Owner{ID: uuid.New(), Email: "recruiter@example.com", Role: owner.RoleOrganization}
	orgRepo := &fakeOrgRepo{orgs: map[int64]*org.Organization{1: {ID: 1, Name: "Acme"}}}
	repo := newFakePostRepo()

	uc := NewUseCase(identity.NewResolver(&fakeOwnerRepo{o: o}), repo, orgRepo, nil, logger.NewNopLogger())
	return uc, repo, o
}

func TestCreateDefaults(t *testing.T) {
	uc, _, o := newTestUseCase(t)

	p, err := uc.Create(context.Background(), o.ID.String(), Input{
		OrganizationID: 1,
		Title:          "Backend Engineer",
	})
	require.NoError(t, err)
	assert.Equal(t, jobpost.StatusActive, p.Status)
	assert.Equal(t, "USD", p.SalaryCurrency)
	assert.NotZero(t, p.ID)
}

func TestCreateRequiresTitle(t *testing.T) {
	uc, _, o := newTestUseCase(t)

	_, err := uc.Create(context.Background(), o.ID.String(), Input{OrganizationID: 1})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestCreateRequiresExistingOrganization(t *testing.T) {
	uc, _, o := newTestUseCase(t)

	_, err := uc.Create(context.Background(), o.ID.String(), Input{
		OrganizationID: 999,
		Title:          "Ghost role",
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestListDefaultsToActive(t *testing.T) {
	uc, repo, o := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, o.ID.String(), Input{OrganizationID: 1, Title: "Open role"})
	require.NoError(t, err)
	closed, err := uc.Create(ctx, o.ID.String(), Input{OrganizationID: 1, Title: "Closed role", Status: jobpost.StatusClosed})
	require.NoError(t, err)

	posts, err := uc.List(ctx, o.ID.String(), jobpost.Filter{})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Open role", posts[0].Title)

	posts, err = uc.List(ctx, o.ID.String(), jobpost.Filter{Status: jobpost.StatusClosed})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, closed.ID, posts[0].ID)

	assert.Len(t, repo.posts, 2)
}

func TestUpdatePartial(t *testing.T) {
	uc, _, o := newTestUseCase(t)
	ctx := context.Background()

	desc := "Build APIs"
	created, err := uc.Create(ctx, o.ID.String(), Input{
		OrganizationID: 1,
		Title:          "Backend Engineer",
		Description:    &desc,
	})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, o.ID.String(), created.ID, Input{Status: jobpost.StatusClosed})
	require.NoError(t, err)
	assert.Equal(t, jobpost.StatusClosed, updated.Status)
	assert.Equal(t, "Backend Engineer", updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Build APIs", *updated.Description)
}

func TestGetUnknownPost(t *testing.T) {
	uc, _, o := newTestUseCase(t)

	_, err := uc.Get(context.Background(), o.ID.String(), 404)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDelete(t *testing.T) {
	uc, repo, o := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, o.ID.String(), Input{OrganizationID: 1, Title: "Temp role"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, o.ID.String(), created.ID))
	assert.Empty(t, repo.posts)

	err = uc.Delete(ctx, o.ID.String(), created.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
