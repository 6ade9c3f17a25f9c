package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentaldesk/rental-api/internal/core/ports"
)

// TestRentalLifecycle walks a room from creation through rental, billing,
// payment and termination to deletion.
func TestRentalLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	rec := &recorderStub{}
	houses, rooms := newCatalog(store)
	tenancy := NewTenancyService(&memRentalRepo{memStore: store}, memRoomRepo{store}, store, rec, nil, nil, zerolog.Nop())
	billing := NewBillingService(&memInvoiceRepo{memStore: store}, store, rec, nil, zerolog.Nop())

	house, err := houses.Create(ctx, ownerA, ports.HouseInput{Name: "H1", FloorCount: 3})
	if err != nil {
		t.Fatalf("create house: %v", err)
	}
	room, err := rooms.Create(ctx, ownerA, ports.RoomInput{HouseID: house.ID, Name: "R1", Capacity: 2, Price: 2_500_000})
	if err != nil {
		t.Fatalf("create room: %v", err)
	}

	contract, err := tenancy.CreateContract(ctx, ownerA, contractInput(room.ID, 2))
	if err != nil {
		t.Fatalf("create contract: %v", err)
	}
	c1 := contract.Contract
	if c1.MonthlyRent != 2_500_000 || store.rooms[room.ID].IsAvailable {
		t.Fatalf("expected rented room at 2500000, got rent=%v available=%v", c1.MonthlyRent, store.rooms[room.ID].IsAvailable)
	}

	in := invoiceInput(c1.ID)
	in.DueDate = time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC)
	invoice, err := billing.CreateInvoice(ctx, ownerA, in)
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	paid, err := billing.MarkPaid(ctx, ownerA, invoice.Invoice.ID)
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if !paid.IsPaid || paid.PaymentDate == nil {
		t.Fatalf("expected paid invoice with payment date")
	}

	if _, err := tenancy.TerminateContract(ctx, ownerA, c1.ID); err != nil {
		t.Fatalf("terminate: %v", err)
	}
	if !store.rooms[room.ID].IsAvailable || store.rentals[c1.ID].IsActive {
		t.Fatalf("expected available room and inactive contract after termination")
	}

	if err := rooms.Delete(ctx, ownerA, room.ID); err != nil {
		t.Fatalf("delete room: %v", err)
	}
	if _, ok := store.rooms[room.ID]; ok {
		t.Fatalf("room should be gone")
	}

	want := []string{"contract.created", "invoice.created", "invoice.paid", "contract.terminated"}
	got := rec.actions()
	if len(got) != len(want) {
		t.Fatalf("expected actions %v, got %v", want, got)
	}
	for i := range want {
		if string(got[i]) != want[i] {
			t.Errorf("action %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
