package owner

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	PlanTrial = "trial"
	PlanPro   = "pro"

	RoleIndividual   = "individual"
	RoleOrganization = "organization"
)

// Owner is the authenticated principal every profile section row belongs to.
type Owner struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Username       *string   `json:"username"`
	Name           *string   `json:"name"`
	PasswordHash   string    `json:"-"`
	Role           string    `json:"role"`
	Plan           string    `json:"plan"`
	ProfilePicture *string   `json:"profile_picture"`
	Timezone       *string   `json:"timezone"`
	Phone          *string   `json:"phone"`
	Location       *string   `json:"location"`
	LinkedinURL    *string   `json:"linkedin_url"`
	GithubURL      *string   `json:"github_url"`
	WebsiteURL     *string   `json:"website_url"`
	Summary        *string   `json:"summary"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (o *Owner) IsPro() bool {
	return o.Plan == PlanPro
}

type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Owner, error)
	FindByEmail(ctx context.Context, email string) (*Owner, error)
	FindByUsername(ctx context.Context, username string) (*Owner, error)
	Create(ctx context.Context, o *Owner) error
	Update(ctx context.Context, o *Owner) error
}
