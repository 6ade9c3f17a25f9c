package ports

import (
	"context"

	"github.com/rentaldesk/rental-api/internal/core/domain"
)

// AuditRecorder accepts audit events without blocking the caller.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// AuditRepository persists and reads the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
	// ListByContract returns contract and invoice events of one contract, oldest first.
	ListByContract(ctx context.Context, rrID uint) ([]domain.AuditEvent, error)
}

// IdempotencyStore remembers which entity a client-supplied key created.
type IdempotencyStore interface {
	Lookup(ctx context.Context, scope string, ownerID uint, key string) (uint, bool, error)
	Remember(ctx context.Context, scope string, ownerID uint, key string, id uint) error
}
