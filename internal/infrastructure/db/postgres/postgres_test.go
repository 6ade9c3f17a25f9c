package postgres

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rentaldesk/rental-api/internal/core/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := Open(sqlite.Open(dsn), Config{MaxOpenConns: 1, LogLevel: "silent"}, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

type fixture struct {
	owner   *domain.Owner
	house   *domain.House
	room    *domain.Room
	rentals *RentalRepository
	rooms   *RoomRepository
}

func seedOwner(t *testing.T, db *gorm.DB, email, phone string) *domain.Owner {
	t.Helper()
	ctx := context.Background()
	owners := NewOwnerRepository(db)
	role, err := owners.EnsureRole(ctx, domain.RoleOwner)
	require.NoError(t, err)
	o := &domain.Owner{Fullname: "Owner " + phone, Phone: phone, Email: email, PasswordHash: "x", RoleID: role.ID, IsActive: true}
	require.NoError(t, owners.Create(ctx, o))
	return o
}

func seed(t *testing.T, db *gorm.DB, email, phone string) fixture {
	t.Helper()
	ctx := context.Background()
	o := seedOwner(t, db, email, phone)
	h := &domain.House{Name: "H1", FloorCount: 3, Ward: "W", District: "D", AddressLine: "1 Main St", OwnerID: o.ID}
	require.NoError(t, NewHouseRepository(db).Create(ctx, h))
	rooms := NewRoomRepository(db)
	r := &domain.Room{Name: "R1", Capacity: 2, Price: 3_000_000, HouseID: h.ID, IsAvailable: true}
	require.NoError(t, rooms.Create(ctx, r))
	return fixture{owner: o, house: h, room: r, rentals: NewRentalRepository(db), rooms: rooms}
}

func newContract(roomID uint, tenants int) *domain.RentedRoom {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.RentedRoom{
		TenantName:           "Tenant",
		TenantPhone:          "0912345678",
		NumberOfTenants:      tenants,
		StartDate:            start,
		EndDate:              start.AddDate(1, 0, 0),
		Deposit:              3_000_000,
		ElectricityUnitPrice: domain.DefaultElectricityUnitPrice,
		WaterPrice:           domain.DefaultWaterPrice,
		InternetPrice:        domain.DefaultInternetPrice,
		GeneralPrice:         domain.DefaultGeneralPrice,
		RoomID:               roomID,
	}
}

func TestOwnerRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	first := seedOwner(t, db, "a@example.com", "0900000001")

	owners := NewOwnerRepository(db)
	err := owners.Create(ctx, &domain.Owner{Fullname: "Other", Phone: "0900000002", Email: "a@example.com", PasswordHash: "x", RoleID: first.RoleID, IsActive: true})
	assert.ErrorIs(t, err, domain.ErrDuplicateAccount)

	taken, err := owners.EmailTaken(ctx, "a@example.com", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = owners.EmailTaken(ctx, "a@example.com", first.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	got, err := owners.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleOwner, got.Authority())

	_, err = owners.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrOwnerNotFound)
}

func TestScopeResolver_OwnerOf(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	f := seed(t, db, "a@example.com", "0900000001")
	rr := newContract(f.room.ID, 1)
	require.NoError(t, f.rentals.CreateActive(ctx, rr))
	inv := &domain.Invoice{Price: 1, DueDate: time.Now().UTC(), RentedRoomID: rr.ID}
	require.NoError(t, NewInvoiceRepository(db).Create(ctx, inv))

	scope := NewScopeResolver(db)
	cases := []struct {
		kind domain.EntityKind
		id   uint
	}{
		{domain.KindHouse, f.house.ID},
		{domain.KindRoom, f.room.ID},
		{domain.KindRentedRoom, rr.ID},
		{domain.KindInvoice, inv.ID},
	}
	for _, tc := range cases {
		got, err := scope.OwnerOf(ctx, tc.kind, tc.id)
		require.NoError(t, err, tc.kind)
		assert.Equal(t, f.owner.ID, got, tc.kind)
	}

	_, err := scope.OwnerOf(ctx, domain.KindRoom, 9999)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestRentalRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	f := seed(t, db, "a@example.com", "0900000001")

	rr := newContract(f.room.ID, 2)
	require.NoError(t, f.rentals.CreateActive(ctx, rr))
	assert.True(t, rr.IsActive)
	assert.Equal(t, 3_000_000.0, rr.MonthlyRent)

	room, err := f.rooms.FindByID(ctx, f.room.ID)
	require.NoError(t, err)
	assert.False(t, room.IsAvailable)

	err = f.rentals.CreateActive(ctx, newContract(f.room.ID, 1))
	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)

	changed, err := f.rentals.Terminate(ctx, rr.ID)
	require.NoError(t, err)
	assert.True(t, changed)
	room, err = f.rooms.FindByID(ctx, f.room.ID)
	require.NoError(t, err)
	assert.True(t, room.IsAvailable)

	// A second contract takes the room; terminating the old one again must
	// not free it.
	second := newContract(f.room.ID, 1)
	require.NoError(t, f.rentals.CreateActive(ctx, second))
	changed, err = f.rentals.Terminate(ctx, rr.ID)
	require.NoError(t, err)
	assert.False(t, changed)
	room, err = f.rooms.FindByID(ctx, f.room.ID)
	require.NoError(t, err)
	assert.False(t, room.IsAvailable)

	active := true
	_, err = f.rentals.Update(ctx, rr, &active)
	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)

	require.NoError(t, f.rentals.Delete(ctx, second.ID))
	room, err = f.rooms.FindByID(ctx, f.room.ID)
	require.NoError(t, err)
	assert.True(t, room.IsAvailable)

	changed, err = f.rentals.Update(ctx, rr, &active)
	require.NoError(t, err)
	assert.True(t, changed)
	got, err := f.rentals.FindByID(ctx, rr.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

func TestRentalRepository_OverCapacity(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db, "a@example.com", "0900000001")

	err := f.rentals.CreateActive(context.Background(), newContract(f.room.ID, 3))
	assert.ErrorIs(t, err, domain.ErrOverCapacity)

	room, err := f.rooms.FindByID(context.Background(), f.room.ID)
	require.NoError(t, err)
	assert.True(t, room.IsAvailable)
}

func TestRentalRepository_UpdateKeepsMonthlyRent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	f := seed(t, db, "a@example.com", "0900000001")
	rr := newContract(f.room.ID, 1)
	require.NoError(t, f.rentals.CreateActive(ctx, rr))

	rr.MonthlyRent = 1
	rr.TenantName = "Renamed"
	rr.IsActive = false
	changed, err := f.rentals.Update(ctx, rr, nil)
	require.NoError(t, err)
	assert.False(t, changed)

	got, err := f.rentals.FindByID(ctx, rr.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.TenantName)
	assert.Equal(t, 3_000_000.0, got.MonthlyRent)
	assert.True(t, got.IsActive)
}

func TestRentalRepository_ReactivateWithPatchedTenants(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	f := seed(t, db, "a@example.com", "0900000001")
	rr := newContract(f.room.ID, 2)
	require.NoError(t, f.rentals.CreateActive(ctx, rr))
	_, err := f.rentals.Terminate(ctx, rr.ID)
	require.NoError(t, err)

	f.room.Capacity = 1
	require.NoError(t, f.rooms.Update(ctx, f.room))

	stale, err := f.rentals.FindByID(ctx, rr.ID)
	require.NoError(t, err)
	active := true
	_, err = f.rentals.Update(ctx, stale, &active)
	assert.ErrorIs(t, err, domain.ErrOverCapacity)

	stale.NumberOfTenants = 1
	changed, err := f.rentals.Update(ctx, stale, &active)
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := f.rentals.FindByID(ctx, rr.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
	assert.Equal(t, 1, got.NumberOfTenants)
	room, err := f.rooms.FindByID(ctx, f.room.ID)
	require.NoError(t, err)
	assert.False(t, room.IsAvailable)

	inactive := false
	stale.TenantName = "Moved out"
	changed, err = f.rentals.Update(ctx, stale, &inactive)
	require.NoError(t, err)
	assert.True(t, changed)
	got, err = f.rentals.FindByID(ctx, rr.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.Equal(t, "Moved out", got.TenantName)
	room, err = f.rooms.FindByID(ctx, f.room.ID)
	require.NoError(t, err)
	assert.True(t, room.IsAvailable)
}

func TestRoomRepository_UpdateKeepsAvailability(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	f := seed(t, db, "a@example.com", "0900000001")
	require.NoError(t, f.rentals.CreateActive(ctx, newContract(f.room.ID, 1)))

	f.room.IsAvailable = true
	f.room.Name = "R1b"
	require.NoError(t, f.rooms.Update(ctx, f.room))

	got, err := f.rooms.FindByID(ctx, f.room.ID)
	require.NoError(t, err)
	assert.Equal(t, "R1b", got.Name)
	assert.False(t, got.IsAvailable)
}

func TestGuardedDeletes(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	f := seed(t, db, "a@example.com", "0900000001")
	houses := NewHouseRepository(db)
	rr := newContract(f.room.ID, 1)
	require.NoError(t, f.rentals.CreateActive(ctx, rr))

	occ, err := houses.CountOccupancy(ctx, f.house.ID)
	require.NoError(t, err)
	assert.True(t, occ.Blocked())
	assert.ErrorIs(t, houses.Delete(ctx, f.house.ID), domain.ErrHouseOccupied)
	assert.ErrorIs(t, f.rooms.Delete(ctx, f.room.ID), domain.ErrRoomOccupied)

	_, err = f.rentals.Terminate(ctx, rr.ID)
	require.NoError(t, err)
	require.NoError(t, NewAssetRepository(db).Create(ctx, &domain.Asset{Name: "Bed", RoomID: f.room.ID}))
	require.NoError(t, NewInvoiceRepository(db).Create(ctx, &domain.Invoice{Price: 1, DueDate: time.Now().UTC(), RentedRoomID: rr.ID}))

	require.NoError(t, houses.Delete(ctx, f.house.ID))
	_, err = f.rooms.FindByID(ctx, f.room.ID)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	_, err = f.rentals.FindByID(ctx, rr.ID)
	assert.ErrorIs(t, err, domain.ErrRentedRoomNotFound)

	var invoices int64
	require.NoError(t, db.Model(&domain.Invoice{}).Count(&invoices).Error)
	assert.Zero(t, invoices)
}

func TestInvoiceRepository_MarkPaidTwice(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	f := seed(t, db, "a@example.com", "0900000001")
	rr := newContract(f.room.ID, 1)
	require.NoError(t, f.rentals.CreateActive(ctx, rr))

	invoices := NewInvoiceRepository(db)
	inv := &domain.Invoice{Price: 3_000_000, DueDate: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), RentedRoomID: rr.ID}
	require.NoError(t, invoices.Create(ctx, inv))

	paid, err := invoices.MarkPaid(ctx, inv.ID)
	require.NoError(t, err)
	assert.True(t, paid)
	first, err := invoices.FindDetails(ctx, inv.ID)
	require.NoError(t, err)
	require.NotNil(t, first.PaymentDate)
	assert.True(t, first.IsPaid)
	require.NotNil(t, first.RentedRoom)
	require.NotNil(t, first.RentedRoom.Room)
	assert.Equal(t, f.room.ID, first.RentedRoom.Room.ID)

	paid, err = invoices.MarkPaid(ctx, inv.ID)
	require.NoError(t, err)
	assert.False(t, paid)
	second, err := invoices.FindByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.True(t, first.PaymentDate.Equal(*second.PaymentDate))

	_, err = invoices.MarkPaid(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestOwnerIsolation(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	a := seed(t, db, "a@example.com", "0900000001")
	b := seed(t, db, "b@example.com", "0900000002")

	rooms, err := a.rooms.List(ctx, domain.RoomFilter{OwnerID: a.owner.ID})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, a.room.ID, rooms[0].ID)

	rooms, err = a.rooms.List(ctx, domain.RoomFilter{OwnerID: a.owner.ID, HouseID: &b.house.ID})
	require.NoError(t, err)
	assert.Empty(t, rooms)

	rrB := newContract(b.room.ID, 1)
	require.NoError(t, b.rentals.CreateActive(ctx, rrB))
	invoices := NewInvoiceRepository(db)
	require.NoError(t, invoices.Create(ctx, &domain.Invoice{Price: 1, DueDate: time.Now().UTC(), RentedRoomID: rrB.ID}))

	listA, err := invoices.List(ctx, domain.InvoiceFilter{OwnerID: a.owner.ID})
	require.NoError(t, err)
	assert.Empty(t, listA)

	listB, err := invoices.List(ctx, domain.InvoiceFilter{OwnerID: b.owner.ID})
	require.NoError(t, err)
	assert.Len(t, listB, 1)

	contracts, err := a.rentals.List(ctx, domain.RentalFilter{OwnerID: a.owner.ID})
	require.NoError(t, err)
	assert.Empty(t, contracts)
}

func TestInvoiceRepository_ListFilters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	f := seed(t, db, "a@example.com", "0900000001")
	rr := newContract(f.room.ID, 1)
	require.NoError(t, f.rentals.CreateActive(ctx, rr))

	invoices := NewInvoiceRepository(db)
	jan := &domain.Invoice{Price: 1, DueDate: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), RentedRoomID: rr.ID}
	feb := &domain.Invoice{Price: 2, DueDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), RentedRoomID: rr.ID}
	require.NoError(t, invoices.Create(ctx, jan))
	require.NoError(t, invoices.Create(ctx, feb))
	_, err := invoices.MarkPaid(ctx, jan.ID)
	require.NoError(t, err)

	start, next, ok := domain.ParseMonth("2024-02")
	require.True(t, ok)
	got, err := invoices.List(ctx, domain.InvoiceFilter{OwnerID: f.owner.ID, DueFrom: &start, DueBefore: &next})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, feb.ID, got[0].ID)

	unpaid := false
	got, err = invoices.List(ctx, domain.InvoiceFilter{OwnerID: f.owner.ID, IsPaid: &unpaid, HouseID: &f.house.ID, RoomID: &f.room.ID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, feb.ID, got[0].ID)
}

func TestReportRepository_InclusiveRange(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	f := seed(t, db, "a@example.com", "0900000001")
	rr := newContract(f.room.ID, 1)
	require.NoError(t, f.rentals.CreateActive(ctx, rr))

	invoices := NewInvoiceRepository(db)
	lastDay := time.Date(2024, 1, 31, 18, 0, 0, 0, time.UTC)
	nextDay := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, invoices.Create(ctx, &domain.Invoice{Price: 100, DueDate: lastDay, PaymentDate: &lastDay, IsPaid: true, RentedRoomID: rr.ID}))
	require.NoError(t, invoices.Create(ctx, &domain.Invoice{Price: 50, DueDate: nextDay, PaymentDate: &nextDay, IsPaid: true, RentedRoomID: rr.ID}))
	require.NoError(t, invoices.Create(ctx, &domain.Invoice{Price: 70, DueDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), RentedRoomID: rr.ID}))

	from, until, err := domain.DateRange{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}.Bounds()
	require.NoError(t, err)

	reports := NewReportRepository(db)
	paid, err := reports.PaidInvoices(ctx, f.owner.ID, from, until)
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, 100.0, paid[0].Price)

	pending, err := reports.CountUnpaidDue(ctx, f.owner.ID, from, until)
	require.NoError(t, err)
	assert.EqualValues(t, 1, pending)

	counts, err := reports.Overview(ctx, f.owner.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OverviewCounts{Houses: 1, Rooms: 1, OccupiedRooms: 1, ActiveContracts: 1, PendingInvoices: 1}, counts)
}
