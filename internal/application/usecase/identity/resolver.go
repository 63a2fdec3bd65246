package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/recruai/platform-api/internal/domain/owner"
	"github.com/recruai/platform-api/pkg/apperror"
)

// Resolver turns an authenticated identity into the owning user record. It
// is the single authorization gate: every handler resolves the owner before
// touching storage, and row-level ownership is checked against the result.
type Resolver struct {
	ownerRepo owner.Repository
}

func NewResolver(repo owner.Repository) *Resolver {
	return &Resolver{ownerRepo: repo}
}

// ResolveOwner coerces the raw token subject to an owner key and loads the
// owner row. A subject that is not a well-formed key is an identity problem;
// a well-formed key with no row is a missing owner.
func (r *Resolver) ResolveOwner(ctx context.Context, identity string) (*owner.Owner, error) {
	id, err := uuid.Parse(identity)
	if err != nil {
		return nil, apperror.NewInvalidIdentity("token subject is not a valid owner id")
	}

	o, err := r.ownerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("User", identity)
		}
		return nil, err
	}
	return o, nil
}
