package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rentaldesk/rental-api/internal/core/domain"
	"github.com/rentaldesk/rental-api/internal/core/ports"
)

// Idempotency scopes.
const (
	idemContracts = "rented_rooms"
	idemInvoices  = "invoices"
)

// lifecycle bundles the optional collaborators shared by the tenancy and
// billing services. A nil recorder or store disables that concern.
type lifecycle struct {
	recorder ports.AuditRecorder
	idem     ports.IdempotencyStore
	log      zerolog.Logger
	now      func() time.Time
}

func (l lifecycle) record(kind domain.EntityKind, id, rrID, ownerID uint, action domain.AuditAction, details map[string]any) {
	if l.recorder == nil {
		return
	}
	l.recorder.Record(domain.AuditEvent{
		ID:         uuid.NewString(),
		EntityKind: kind,
		EntityID:   id,
		ContractID: rrID,
		OwnerID:    ownerID,
		Action:     action,
		OccurredAt: l.now().UTC(),
		Details:    details,
	})
}

// lookup returns the id a previous request created under key. Store
// failures are logged and treated as a miss.
func (l lifecycle) lookup(ctx context.Context, scope string, ownerID uint, key string) (uint, bool) {
	if l.idem == nil || key == "" {
		return 0, false
	}
	id, ok, err := l.idem.Lookup(ctx, scope, ownerID, key)
	if err != nil {
		l.log.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed, processing anyway")
		return 0, false
	}
	return id, ok
}

func (l lifecycle) remember(ctx context.Context, scope string, ownerID uint, key string, id uint) {
	if l.idem == nil || key == "" {
		return
	}
	if err := l.idem.Remember(ctx, scope, ownerID, key, id); err != nil {
		l.log.Warn().Err(err).Str("idempotency_key", key).Msg("failed to store idempotency key")
	}
}
