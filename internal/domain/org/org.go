package org

import (
	"context"
	"time"
)

// Organization is a top-level entity owned by membership rather than by a
// single user.
type Organization struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Description      *string   `json:"description"`
	Website          *string   `json:"website"`
	ContactEmail     *string   `json:"contact_email"`
	ContactName      *string   `json:"contact_name"`
	Location         *string   `json:"location"`
	CompanySize      *string   `json:"company_size"`
	Industry         *string   `json:"industry"`
	Mission          *string   `json:"mission"`
	Vision           *string   `json:"vision"`
	SocialMediaLinks *string   `json:"social_media_links"`
	ProfileImage     *string   `json:"profile_image"`
	BannerImage      *string   `json:"banner_image"`
	Timezone         string    `json:"timezone"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Repository interface {
	List(ctx context.Context) ([]*Organization, error)
	FindByID(ctx context.Context, id int64) (*Organization, error)
	FindByName(ctx context.Context, name string) (*Organization, error)
	Create(ctx context.Context, o *Organization) error
	Update(ctx context.Context, o *Organization) error
	Delete(ctx context.Context, id int64) error
}
