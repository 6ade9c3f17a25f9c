package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rentaldesk/rental-api/internal/core/domain"
	"github.com/rentaldesk/rental-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory store shared by the stub repositories
// ---------------------------------------------------------------------------

// memStore mirrors the relational model closely enough for the services:
// the contract repository keeps room availability in step, like the real
// transactional implementation.
type memStore struct {
	houses   map[uint]*domain.House
	rooms    map[uint]*domain.Room
	rentals  map[uint]*domain.RentedRoom
	invoices map[uint]*domain.Invoice
	nextID   uint
	now      time.Time
}

func newMemStore() *memStore {
	return &memStore{
		houses:   make(map[uint]*domain.House),
		rooms:    make(map[uint]*domain.Room),
		rentals:  make(map[uint]*domain.RentedRoom),
		invoices: make(map[uint]*domain.Invoice),
		now:      time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (m *memStore) id() uint {
	m.nextID++
	return m.nextID
}

func (m *memStore) addHouse(ownerID uint) *domain.House {
	h := &domain.House{ID: m.id(), Name: "H", FloorCount: 1, OwnerID: ownerID}
	m.houses[h.ID] = h
	return h
}

func (m *memStore) addRoom(houseID uint, capacity int, price float64) *domain.Room {
	r := &domain.Room{ID: m.id(), Name: "R", Capacity: capacity, Price: price, HouseID: houseID, IsAvailable: true}
	m.rooms[r.ID] = r
	return r
}

// OwnerOf implements ports.ScopeResolver by walking the in-memory chain.
func (m *memStore) OwnerOf(_ context.Context, kind domain.EntityKind, id uint) (uint, error) {
	houseID := uint(0)
	switch kind {
	case domain.KindHouse:
		houseID = id
	case domain.KindRoom:
		if r, ok := m.rooms[id]; ok {
			houseID = r.HouseID
		}
	case domain.KindRentedRoom:
		if rr, ok := m.rentals[id]; ok {
			houseID = m.rooms[rr.RoomID].HouseID
		}
	case domain.KindInvoice:
		if inv, ok := m.invoices[id]; ok {
			houseID = m.rooms[m.rentals[inv.RentedRoomID].RoomID].HouseID
		}
	}
	h, ok := m.houses[houseID]
	if !ok {
		return 0, kind.NotFound()
	}
	return h.OwnerID, nil
}

// ---------------------------------------------------------------------------
// Rooms
// ---------------------------------------------------------------------------

type memRoomRepo struct{ *memStore }

func (r memRoomRepo) Create(_ context.Context, room *domain.Room) error {
	room.ID = r.id()
	clone := *room
	r.rooms[room.ID] = &clone
	return nil
}

func (r memRoomRepo) FindByID(_ context.Context, id uint) (*domain.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	clone := *room
	return &clone, nil
}

func (r memRoomRepo) FindDetails(ctx context.Context, id uint) (*domain.Room, error) {
	return r.FindByID(ctx, id)
}

func (r memRoomRepo) List(_ context.Context, f domain.RoomFilter) ([]domain.Room, error) {
	var out []domain.Room
	for _, room := range r.rooms {
		if r.houses[room.HouseID].OwnerID != f.OwnerID {
			continue
		}
		if f.HouseID != nil && room.HouseID != *f.HouseID {
			continue
		}
		if f.AvailableOnly && !room.IsAvailable {
			continue
		}
		out = append(out, *room)
	}
	return out, nil
}

func (r memRoomRepo) Update(_ context.Context, room *domain.Room) error {
	stored := r.rooms[room.ID]
	stored.Name, stored.Capacity, stored.Description, stored.Price = room.Name, room.Capacity, room.Description, room.Price
	return nil
}

func (r memRoomRepo) CountOccupancy(_ context.Context, roomID uint) (domain.Occupancy, error) {
	var occ domain.Occupancy
	if !r.rooms[roomID].IsAvailable {
		occ.OccupiedRooms = 1
	}
	for _, rr := range r.rentals {
		if rr.RoomID == roomID && rr.IsActive {
			occ.ActiveContracts++
		}
	}
	return occ, nil
}

func (r memRoomRepo) Delete(_ context.Context, roomID uint) error {
	for id, rr := range r.rentals {
		if rr.RoomID == roomID {
			delete(r.rentals, id)
		}
	}
	delete(r.rooms, roomID)
	return nil
}

// ---------------------------------------------------------------------------
// Houses
// ---------------------------------------------------------------------------

type memHouseRepo struct{ *memStore }

func (r memHouseRepo) Create(_ context.Context, h *domain.House) error {
	h.ID = r.id()
	clone := *h
	r.houses[h.ID] = &clone
	return nil
}

func (r memHouseRepo) FindByID(_ context.Context, id uint) (*domain.House, error) {
	h, ok := r.houses[id]
	if !ok {
		return nil, domain.ErrHouseNotFound
	}
	clone := *h
	return &clone, nil
}

func (r memHouseRepo) ListByOwner(_ context.Context, ownerID uint, _ domain.Page) ([]domain.House, error) {
	var out []domain.House
	for _, h := range r.houses {
		if h.OwnerID == ownerID {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (r memHouseRepo) Update(_ context.Context, h *domain.House) error {
	clone := *h
	r.houses[h.ID] = &clone
	return nil
}

func (r memHouseRepo) CountOccupancy(ctx context.Context, houseID uint) (domain.Occupancy, error) {
	var total domain.Occupancy
	for _, room := range r.rooms {
		if room.HouseID != houseID {
			continue
		}
		occ, _ := memRoomRepo{r.memStore}.CountOccupancy(ctx, room.ID)
		total.OccupiedRooms += occ.OccupiedRooms
		total.ActiveContracts += occ.ActiveContracts
	}
	return total, nil
}

func (r memHouseRepo) Delete(ctx context.Context, houseID uint) error {
	for id, room := range r.rooms {
		if room.HouseID == houseID {
			_ = memRoomRepo{r.memStore}.Delete(ctx, id)
		}
	}
	delete(r.houses, houseID)
	return nil
}

// ---------------------------------------------------------------------------
// Contracts
// ---------------------------------------------------------------------------

type memRentalRepo struct {
	*memStore
	updateCalls int
}

func (r *memRentalRepo) CreateActive(_ context.Context, rr *domain.RentedRoom) error {
	room, ok := r.rooms[rr.RoomID]
	switch {
	case !ok:
		return domain.ErrRoomNotFound
	case !room.IsAvailable:
		return domain.ErrRoomUnavailable
	case room.Capacity < rr.NumberOfTenants:
		return domain.ErrOverCapacity
	}
	room.IsAvailable = false
	rr.ID = r.id()
	rr.MonthlyRent = room.Price
	rr.IsActive = true
	rr.CreatedAt = r.now
	clone := *rr
	r.rentals[rr.ID] = &clone
	return nil
}

func (r *memRentalRepo) FindByID(_ context.Context, id uint) (*domain.RentedRoom, error) {
	rr, ok := r.rentals[id]
	if !ok {
		return nil, domain.ErrRentedRoomNotFound
	}
	clone := *rr
	return &clone, nil
}

func (r *memRentalRepo) FindDetails(ctx context.Context, id uint) (*domain.RentedRoom, error) {
	rr, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	room := *r.rooms[rr.RoomID]
	rr.Room = &room
	return rr, nil
}

func (r *memRentalRepo) List(_ context.Context, f domain.RentalFilter) ([]domain.RentedRoom, error) {
	var out []domain.RentedRoom
	for _, rr := range r.rentals {
		if r.houses[r.rooms[rr.RoomID].HouseID].OwnerID != f.OwnerID {
			continue
		}
		if f.RoomID != nil && rr.RoomID != *f.RoomID {
			continue
		}
		if f.ActiveOnly && !rr.IsActive {
			continue
		}
		out = append(out, *rr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memRentalRepo) Update(_ context.Context, rr *domain.RentedRoom, active *bool) (bool, error) {
	r.updateCalls++
	stored, ok := r.rentals[rr.ID]
	if !ok {
		return false, domain.ErrRentedRoomNotFound
	}
	changed := active != nil && *active != stored.IsActive
	if changed {
		room := r.rooms[stored.RoomID]
		if *active {
			switch {
			case !room.IsAvailable:
				return false, domain.ErrRoomUnavailable
			case rr.NumberOfTenants > room.Capacity:
				return false, domain.ErrOverCapacity
			}
		}
		room.IsAvailable = !*active
	}

	rent, roomID, isActive := stored.MonthlyRent, stored.RoomID, stored.IsActive
	*stored = *rr
	stored.MonthlyRent, stored.RoomID, stored.IsActive = rent, roomID, isActive
	if changed {
		stored.IsActive = *active
	}
	return changed, nil
}

func (r *memRentalRepo) Terminate(_ context.Context, id uint) (bool, error) {
	rr, ok := r.rentals[id]
	if !ok {
		return false, domain.ErrRentedRoomNotFound
	}
	if !rr.IsActive {
		return false, nil
	}
	rr.IsActive = false
	r.rooms[rr.RoomID].IsAvailable = true
	return true, nil
}

func (r *memRentalRepo) Delete(_ context.Context, id uint) error {
	rr, ok := r.rentals[id]
	if !ok {
		return domain.ErrRentedRoomNotFound
	}
	if rr.IsActive {
		r.rooms[rr.RoomID].IsAvailable = true
	}
	for invID, inv := range r.invoices {
		if inv.RentedRoomID == id {
			delete(r.invoices, invID)
		}
	}
	delete(r.rentals, id)
	return nil
}

// ---------------------------------------------------------------------------
// Invoices
// ---------------------------------------------------------------------------

type memInvoiceRepo struct {
	*memStore
	lastFilter domain.InvoiceFilter
}

func (r *memInvoiceRepo) Create(_ context.Context, inv *domain.Invoice) error {
	inv.ID = r.id()
	inv.CreatedAt = r.now
	clone := *inv
	r.invoices[inv.ID] = &clone
	return nil
}

func (r *memInvoiceRepo) FindByID(_ context.Context, id uint) (*domain.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, domain.ErrInvoiceNotFound
	}
	clone := *inv
	return &clone, nil
}

func (r *memInvoiceRepo) FindDetails(ctx context.Context, id uint) (*domain.Invoice, error) {
	return r.FindByID(ctx, id)
}

func (r *memInvoiceRepo) List(_ context.Context, f domain.InvoiceFilter) ([]domain.Invoice, error) {
	r.lastFilter = f
	var out []domain.Invoice
	for _, inv := range r.invoices {
		if f.RentedRoomID != nil && inv.RentedRoomID != *f.RentedRoomID {
			continue
		}
		if f.IsPaid != nil && inv.IsPaid != *f.IsPaid {
			continue
		}
		out = append(out, *inv)
	}
	return out, nil
}

func (r *memInvoiceRepo) Save(_ context.Context, inv *domain.Invoice) error {
	clone := *inv
	r.invoices[inv.ID] = &clone
	return nil
}

func (r *memInvoiceRepo) MarkPaid(_ context.Context, id uint) (bool, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return false, domain.ErrInvoiceNotFound
	}
	if inv.IsPaid {
		return false, nil
	}
	inv.MarkPaid()
	return true, nil
}

func (r *memInvoiceRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.invoices[id]; !ok {
		return domain.ErrInvoiceNotFound
	}
	delete(r.invoices, id)
	return nil
}

// ---------------------------------------------------------------------------
// Optional collaborators
// ---------------------------------------------------------------------------

type recorderStub struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (r *recorderStub) Record(e domain.AuditEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorderStub) actions() []domain.AuditAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditAction, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Action)
	}
	return out
}

type memIdempotency struct {
	keys map[string]uint
}

func newMemIdempotency() *memIdempotency {
	return &memIdempotency{keys: make(map[string]uint)}
}

func (m *memIdempotency) Lookup(_ context.Context, scope string, ownerID uint, key string) (uint, bool, error) {
	id, ok := m.keys[idemKey(scope, ownerID, key)]
	return id, ok, nil
}

func (m *memIdempotency) Remember(_ context.Context, scope string, ownerID uint, key string, id uint) error {
	m.keys[idemKey(scope, ownerID, key)] = id
	return nil
}

func idemKey(scope string, ownerID uint, key string) string {
	return fmt.Sprintf("%s:%d:%s", scope, ownerID, key)
}

var (
	_ ports.ScopeResolver     = (*memStore)(nil)
	_ ports.RoomRepository    = memRoomRepo{}
	_ ports.HouseRepository   = memHouseRepo{}
	_ ports.RentalRepository  = (*memRentalRepo)(nil)
	_ ports.InvoiceRepository = (*memInvoiceRepo)(nil)
	_ ports.AuditRecorder     = (*recorderStub)(nil)
	_ ports.IdempotencyStore  = (*memIdempotency)(nil)
)
