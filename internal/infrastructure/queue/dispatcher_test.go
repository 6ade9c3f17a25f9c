package queue

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rentaldesk/rental-api/internal/core/domain"
)

type stubAuditRepo struct {
	mu       sync.Mutex
	inserted []domain.AuditEvent
	err      error
}

func (r *stubAuditRepo) Insert(_ context.Context, e *domain.AuditEvent) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inserted = append(r.inserted, *e)
	return nil
}

func (r *stubAuditRepo) ListByContract(context.Context, uint) ([]domain.AuditEvent, error) {
	return nil, nil
}

func TestDispatcher_PreservesPerContractOrder(t *testing.T) {
	repo := &stubAuditRepo{}
	d := NewDispatcher(3, repo, zerolog.Nop())

	actions := []domain.AuditAction{
		domain.ActionContractCreated,
		domain.ActionInvoiceCreated,
		domain.ActionInvoicePaid,
		domain.ActionContractTerminated,
	}
	for _, a := range actions {
		d.Record(domain.AuditEvent{ContractID: 7, Action: a})
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	cancel()
	d.Wait()

	if len(repo.inserted) != len(actions) {
		t.Fatalf("expected %d events, got %d", len(actions), len(repo.inserted))
	}
	for i, a := range actions {
		if repo.inserted[i].Action != a {
			t.Errorf("event %d: expected %s, got %s", i, a, repo.inserted[i].Action)
		}
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(5, &stubAuditRepo{}, zerolog.Nop())
	for id := uint(1); id < 50; id++ {
		first := d.shardIndex(id)
		if first < 0 || first >= 5 {
			t.Fatalf("shard %d out of range for id %d", first, id)
		}
		if again := d.shardIndex(id); again != first {
			t.Fatalf("shard for id %d changed: %d then %d", id, first, again)
		}
	}
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	repo := &stubAuditRepo{}
	d := NewDispatcher(1, repo, zerolog.Nop())

	// Workers are not started, so the buffer fills up and Record must not block.
	for i := 0; i < channelBuffer+10; i++ {
		d.Record(domain.AuditEvent{ContractID: 1, Action: domain.ActionContractUpdated})
	}
	if got := len(d.workers[0]); got != channelBuffer {
		t.Fatalf("expected a full buffer of %d, got %d", channelBuffer, got)
	}
}

func TestDispatcher_WriteFailureIsNotFatal(t *testing.T) {
	repo := &stubAuditRepo{err: errors.New("mongo down")}
	d := NewDispatcher(1, repo, zerolog.Nop())
	d.Record(domain.AuditEvent{ContractID: 1, Action: domain.ActionContractCreated})

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	cancel()
	d.Wait()

	if len(repo.inserted) != 0 {
		t.Fatalf("expected no stored events, got %d", len(repo.inserted))
	}
}
