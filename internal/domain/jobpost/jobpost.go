package jobpost

import (
	"context"
	"time"
)

const (
	StatusActive = "active"
	StatusClosed = "closed"
	StatusDraft  = "draft"
)

// JobPost belongs to an organization, many-to-one.
type JobPost struct {
	ID                  int64      `json:"id"`
	OrganizationID      int64      `json:"organization_id"`
	Title               string     `json:"title"`
	Description         *string    `json:"description"`
	Location            *string    `json:"location"`
	EmploymentType      *string    `json:"employment_type"`
	Category            *string    `json:"category"`
	SalaryMin           *int64     `json:"salary_min"`
	SalaryMax           *int64     `json:"salary_max"`
	SalaryCurrency      string     `json:"salary_currency"`
	Requirements        *string    `json:"requirements"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	Status              string     `json:"status"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// Filter narrows the post listing; zero values mean "no constraint" except
// Status, which handlers default to active.
type Filter struct {
	Status         string
	Category       string
	Location       string
	EmploymentType string
	OrganizationID int64
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]*JobPost, error)
	FindByID(ctx context.Context, id int64) (*JobPost, error)
	Create(ctx context.Context, p *JobPost) error
	Update(ctx context.Context, p *JobPost) error
	Delete(ctx context.Context, id int64) error
}
