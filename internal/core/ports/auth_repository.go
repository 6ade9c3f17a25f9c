package ports

import (
	"context"

	"github.com/rentaldesk/rental-api/internal/core/domain"
)

// OwnerRepository defines persistence for owner accounts and roles.
type OwnerRepository interface {
	// Create inserts the owner. Unique-key races surface as domain.ErrDuplicateAccount.
	Create(ctx context.Context, owner *domain.Owner) error
	// FindByID and FindByEmail preload the owner's role.
	FindByID(ctx context.Context, id uint) (*domain.Owner, error)
	FindByEmail(ctx context.Context, email string) (*domain.Owner, error)
	// EmailTaken and PhoneTaken ignore the account identified by exceptID.
	EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error)
	PhoneTaken(ctx context.Context, phone string, exceptID uint) (bool, error)
	Update(ctx context.Context, owner *domain.Owner) error
	// EnsureRole returns the role with authority, creating it when missing.
	EnsureRole(ctx context.Context, authority string) (*domain.Role, error)
	ListRoles(ctx context.Context) ([]domain.Role, error)
}
