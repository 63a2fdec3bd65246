package presentation

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	StatusGenerating = "generating"
	StatusCompleted  = "completed"
	StatusError      = "error"
)

// Presentation is a generated artifact, not user-authored content.
type Presentation struct {
	ID         uuid.UUID  `json:"id"`
	OwnerID    uuid.UUID  `json:"owner_id"`
	Title      string     `json:"title"`
	Topic      string     `json:"topic"`
	SlideCount int        `json:"slide_count"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ExpiresAt  *time.Time `json:"expires_at"`
}

type Slide struct {
	ID             int64     `json:"id"`
	PresentationID uuid.UUID `json:"presentation_id"`
	SlideNumber    int       `json:"slide_number"`
	HTMLContent    string    `json:"html_content"`
	ImageURL       *string   `json:"image_url"`
	CreatedAt      time.Time `json:"created_at"`
}

type Repository interface {
	Create(ctx context.Context, p *Presentation) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, slideCount int) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Presentation, error)
	AddSlide(ctx context.Context, s *Slide) error
	ListSlides(ctx context.Context, presentationID uuid.UUID, ownerID uuid.UUID) ([]*Slide, error)
}
