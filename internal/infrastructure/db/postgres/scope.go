package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/rentaldesk/rental-api/internal/core/domain"
)

// ownerPath is the join chain from an entity table up to houses.owner_id.
type ownerPath struct {
	table string
	key   string
	joins []string
}

const (
	joinRoomHouse   = "JOIN houses ON houses.house_id = rooms.house_id"
	joinRentalRoom  = "JOIN rooms ON rooms.room_id = rented_rooms.room_id"
	joinAssetRoom   = "JOIN rooms ON rooms.room_id = assets.room_id"
	joinInvoiceRent = "JOIN rented_rooms ON rented_rooms.rr_id = invoices.rr_id"
)

var ownerPaths = map[domain.EntityKind]ownerPath{
	domain.KindHouse:      {table: "houses", key: "houses.house_id"},
	domain.KindRoom:       {table: "rooms", key: "rooms.room_id", joins: []string{joinRoomHouse}},
	domain.KindAsset:      {table: "assets", key: "assets.asset_id", joins: []string{joinAssetRoom, joinRoomHouse}},
	domain.KindRentedRoom: {table: "rented_rooms", key: "rented_rooms.rr_id", joins: []string{joinRentalRoom, joinRoomHouse}},
	domain.KindInvoice:    {table: "invoices", key: "invoices.invoice_id", joins: []string{joinInvoiceRent, joinRentalRoom, joinRoomHouse}},
}

// ScopeResolver implements ports.ScopeResolver over the ownership joins.
type ScopeResolver struct {
	db *gorm.DB
}

func NewScopeResolver(db *gorm.DB) *ScopeResolver {
	return &ScopeResolver{db: db}
}

func (s *ScopeResolver) OwnerOf(ctx context.Context, kind domain.EntityKind, id uint) (uint, error) {
	path, ok := ownerPaths[kind]
	if !ok {
		return 0, fmt.Errorf("owner of %s: unknown entity kind", kind)
	}

	var row struct{ OwnerID uint }
	q := s.db.WithContext(ctx).Table(path.table).Select("houses.owner_id AS owner_id")
	for _, j := range path.joins {
		q = q.Joins(j)
	}
	res := q.Where(path.key+" = ?", id).Limit(1).Scan(&row)
	if res.Error != nil {
		return 0, fmt.Errorf("owner of %s: %w", kind, res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, kind.NotFound()
	}
	return row.OwnerID, nil
}

// ownedBy restricts a query on kind's table to rows owned by ownerID.
func ownedBy(kind domain.EntityKind, ownerID uint) func(*gorm.DB) *gorm.DB {
	path := ownerPaths[kind]
	return func(db *gorm.DB) *gorm.DB {
		for _, j := range path.joins {
			db = db.Joins(j)
		}
		return db.Where("houses.owner_id = ?", ownerID)
	}
}

func paginate(p domain.Page) func(*gorm.DB) *gorm.DB {
	p = p.Normalize()
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Skip).Limit(p.Limit)
	}
}
