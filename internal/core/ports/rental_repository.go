package ports

import (
	"context"

	"github.com/rentaldesk/rental-api/internal/core/domain"
)

// RentalRepository persists contracts. Every method that touches both the
// contract and its room does so in one transaction.
type RentalRepository interface {
	// CreateActive flips the room to unavailable with a conditional update and
	// inserts the contract as active. A room that is no longer available or
	// too small yields domain.ErrRoomUnavailable or domain.ErrOverCapacity.
	CreateActive(ctx context.Context, rr *domain.RentedRoom) error
	FindByID(ctx context.Context, id uint) (*domain.RentedRoom, error)
	// FindDetails preloads the room and invoices.
	FindDetails(ctx context.Context, id uint) (*domain.RentedRoom, error)
	List(ctx context.Context, filter domain.RentalFilter) ([]domain.RentedRoom, error)
	// Update writes the patchable fields; monthly_rent and room_id are never
	// written. A non-nil active that differs from the stored flag claims the
	// room for rr.NumberOfTenants or releases it in the same transaction.
	// The bool reports whether the flag changed.
	Update(ctx context.Context, rr *domain.RentedRoom, active *bool) (bool, error)
	// Terminate marks an active contract inactive and frees its room. It
	// reports false when the contract was already inactive.
	Terminate(ctx context.Context, id uint) (bool, error)
	// Delete removes the contract and its invoices, freeing the room when the
	// contract was active.
	Delete(ctx context.Context, id uint) error
}

// InvoiceRepository persists invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	FindByID(ctx context.Context, id uint) (*domain.Invoice, error)
	// FindDetails preloads the contract and its room.
	FindDetails(ctx context.Context, id uint) (*domain.Invoice, error)
	List(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error)
	Save(ctx context.Context, inv *domain.Invoice) error
	// MarkPaid sets is_paid and backfills payment_date from created_at in a
	// single statement. It reports false when the invoice was already paid.
	MarkPaid(ctx context.Context, id uint) (bool, error)
	Delete(ctx context.Context, id uint) error
}
