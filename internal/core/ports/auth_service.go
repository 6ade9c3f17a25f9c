package ports

import (
	"context"

	"github.com/rentaldesk/rental-api/internal/core/domain"
)

// RegisterInput carries a new owner's sign-up details.
type RegisterInput struct {
	Fullname string
	Phone    string
	Email    string
	Password string
}

// ProfilePatch holds the optional profile fields an owner may change.
type ProfilePatch struct {
	Fullname *string
	Phone    *string
	Email    *string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.Owner, error)
	Login(ctx context.Context, email, password string) (string, *domain.Owner, error)
	Profile(ctx context.Context, ownerID uint) (*domain.Owner, error)
	UpdateProfile(ctx context.Context, ownerID uint, patch ProfilePatch) (*domain.Owner, error)
	ChangePassword(ctx context.Context, ownerID uint, oldPassword, newPassword string) error
	Roles(ctx context.Context) ([]domain.Role, error)
	// Authenticate confirms the token subject still exists and is active.
	Authenticate(ctx context.Context, ownerID uint) error
}
