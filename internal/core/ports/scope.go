package ports

import (
	"context"

	"github.com/rentaldesk/rental-api/internal/core/domain"
)

// ScopeResolver walks the ownership chain of any entity kind.
type ScopeResolver interface {
	// OwnerOf returns the owner id of the entity, or kind.NotFound() when it
	// does not exist.
	OwnerOf(ctx context.Context, kind domain.EntityKind, id uint) (uint, error)
}
