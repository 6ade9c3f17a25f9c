package service

import (
	"context"

	"github.com/rentaldesk/rental-api/internal/core/domain"
	"github.com/rentaldesk/rental-api/internal/core/ports"
)

// authorize fails with kind.NotFound() unless the entity resolves to ownerID.
func authorize(ctx context.Context, scope ports.ScopeResolver, kind domain.EntityKind, id, ownerID uint) error {
	got, err := scope.OwnerOf(ctx, kind, id)
	if err != nil {
		return err
	}
	if got != ownerID {
		return kind.NotFound()
	}
	return nil
}
