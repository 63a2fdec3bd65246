package service

import (
	"context"

	"github.com/google/uuid"
)

// ProfileCache holds the aggregated profile payload per owner. Every profile
// or section write must invalidate the owner's entry; cache failures are
// soft and never surface to the request.
type ProfileCache interface {
	Get(ctx context.Context, ownerID uuid.UUID) (map[string]any, bool)
	Set(ctx context.Context, ownerID uuid.UUID, payload map[string]any)
	Invalidate(ctx context.Context, ownerID uuid.UUID)
}
