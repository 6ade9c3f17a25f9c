package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rentaldesk/rental-api/internal/core/domain"
	"github.com/rentaldesk/rental-api/internal/core/ports"
)

func newCatalog(store *memStore) (*HouseService, *RoomService) {
	return NewHouseService(memHouseRepo{store}, store, zerolog.Nop()),
		NewRoomService(memRoomRepo{store}, store, zerolog.Nop())
}

func TestHouseService_CreateValidates(t *testing.T) {
	houses, _ := newCatalog(newMemStore())
	ctx := context.Background()

	_, err := houses.Create(ctx, ownerA, ports.HouseInput{Name: "   ", FloorCount: 2})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for blank name, got %v", err)
	}

	h, err := houses.Create(ctx, ownerA, ports.HouseInput{Name: " Nha A ", FloorCount: 3, District: "Q1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if h.Name != "Nha A" || h.OwnerID != ownerA {
		t.Errorf("unexpected house %+v", h)
	}
}

func TestHouseService_OwnerScope(t *testing.T) {
	store := newMemStore()
	houses, _ := newCatalog(store)
	h := store.addHouse(ownerA)
	ctx := context.Background()

	if _, err := houses.Get(ctx, ownerB, h.ID); !errors.Is(err, domain.ErrHouseNotFound) {
		t.Errorf("Get: expected ErrHouseNotFound, got %v", err)
	}
	name := "taken over"
	if _, err := houses.Update(ctx, ownerB, h.ID, ports.HousePatch{Name: &name}); !errors.Is(err, domain.ErrHouseNotFound) {
		t.Errorf("Update: expected ErrHouseNotFound, got %v", err)
	}
	if err := houses.Delete(ctx, ownerB, h.ID); !errors.Is(err, domain.ErrHouseNotFound) {
		t.Errorf("Delete: expected ErrHouseNotFound, got %v", err)
	}
	if store.houses[h.ID].Name != "H" {
		t.Errorf("house must be unchanged")
	}
}

func TestHouseService_DeleteBlockedByOccupiedRoom(t *testing.T) {
	f := newTenancyFixture(nil)
	houses, _ := newCatalog(f.store)
	ctx := context.Background()
	if _, err := f.svc.CreateContract(ctx, ownerA, contractInput(f.room.ID, 1)); err != nil {
		t.Fatalf("create contract: %v", err)
	}

	err := houses.Delete(ctx, ownerA, f.room.HouseID)
	if !errors.Is(err, domain.ErrHouseOccupied) {
		t.Fatalf("expected ErrHouseOccupied, got %v", err)
	}
	if _, ok := f.store.houses[f.room.HouseID]; !ok {
		t.Errorf("house must not be deleted")
	}
}

func TestHouseService_DeleteCascades(t *testing.T) {
	store := newMemStore()
	houses, _ := newCatalog(store)
	h := store.addHouse(ownerA)
	r := store.addRoom(h.ID, 2, 100)

	if err := houses.Delete(context.Background(), ownerA, h.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := store.rooms[r.ID]; ok {
		t.Errorf("rooms should be removed with their house")
	}
}

func TestRoomService_CreateUnderOtherOwnersHouse(t *testing.T) {
	store := newMemStore()
	_, rooms := newCatalog(store)
	h := store.addHouse(ownerA)

	_, err := rooms.Create(context.Background(), ownerB, ports.RoomInput{HouseID: h.ID, Name: "101", Capacity: 2, Price: 100})
	if !errors.Is(err, domain.ErrHouseNotFound) {
		t.Fatalf("expected ErrHouseNotFound, got %v", err)
	}
	if len(store.rooms) != 0 {
		t.Errorf("no room should be stored")
	}
}

func TestRoomService_CreateStartsAvailable(t *testing.T) {
	store := newMemStore()
	_, rooms := newCatalog(store)
	h := store.addHouse(ownerA)

	r, err := rooms.Create(context.Background(), ownerA, ports.RoomInput{HouseID: h.ID, Name: "101", Capacity: 2, Price: 2_500_000})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !r.IsAvailable || !store.rooms[r.ID].IsAvailable {
		t.Errorf("new rooms must be available")
	}

	_, err = rooms.Create(context.Background(), ownerA, ports.RoomInput{HouseID: h.ID, Name: "102", Capacity: 0, Price: 1})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error for zero capacity, got %v", err)
	}
}

func TestRoomService_UpdateKeepsAvailability(t *testing.T) {
	f := newTenancyFixture(nil)
	_, rooms := newCatalog(f.store)
	ctx := context.Background()
	res, err := f.svc.CreateContract(ctx, ownerA, contractInput(f.room.ID, 1))
	if err != nil {
		t.Fatalf("create contract: %v", err)
	}

	price := 3_000_000.0
	r, err := rooms.Update(ctx, ownerA, f.room.ID, ports.RoomPatch{Price: &price})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if r.IsAvailable || f.store.rooms[f.room.ID].IsAvailable {
		t.Errorf("room update must not touch availability")
	}
	if f.store.rooms[f.room.ID].Price != price {
		t.Errorf("price not updated")
	}
	if rr := f.store.rentals[res.Contract.ID]; rr.MonthlyRent != 2_500_000 {
		t.Errorf("contract rent must keep its snapshot, got %v", rr.MonthlyRent)
	}
}

func TestRoomService_ListHouseFilterScoped(t *testing.T) {
	store := newMemStore()
	_, rooms := newCatalog(store)
	mine := store.addHouse(ownerA)
	theirs := store.addHouse(ownerB)
	store.addRoom(mine.ID, 1, 1)
	store.addRoom(theirs.ID, 1, 1)
	ctx := context.Background()

	got, err := rooms.List(ctx, domain.RoomFilter{OwnerID: ownerA})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].HouseID != mine.ID {
		t.Errorf("expected only owner A's room, got %+v", got)
	}

	_, err = rooms.List(ctx, domain.RoomFilter{OwnerID: ownerA, HouseID: &theirs.ID})
	if !errors.Is(err, domain.ErrHouseNotFound) {
		t.Errorf("expected ErrHouseNotFound for a foreign house filter, got %v", err)
	}
}

func TestRoomService_DeleteBlockedByActiveContract(t *testing.T) {
	f := newTenancyFixture(nil)
	_, rooms := newCatalog(f.store)
	ctx := context.Background()
	if _, err := f.svc.CreateContract(ctx, ownerA, contractInput(f.room.ID, 1)); err != nil {
		t.Fatalf("create contract: %v", err)
	}

	if err := rooms.Delete(ctx, ownerA, f.room.ID); !errors.Is(err, domain.ErrRoomOccupied) {
		t.Fatalf("expected ErrRoomOccupied, got %v", err)
	}
}
