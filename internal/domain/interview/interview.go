package interview

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Interview struct {
	ID          int64     `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Repository interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Interview, error)
	Create(ctx context.Context, iv *Interview) error
	// CompleteExpired flips scheduled interviews whose time has passed to
	// completed and reports how many rows changed. Re-running it on already
	// completed rows is a no-op.
	CompleteExpired(ctx context.Context, now time.Time) (int64, error)
}
