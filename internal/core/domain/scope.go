package domain

// EntityKind names an entity type reachable through the ownership chain.
type EntityKind string

const (
	KindHouse      EntityKind = "house"
	KindRoom       EntityKind = "room"
	KindAsset      EntityKind = "asset"
	KindRentedRoom EntityKind = "rented_room"
	KindInvoice    EntityKind = "invoice"
)

// NotFound returns the kind's not-found error. Entities owned by someone
// else are reported with the same error.
func (k EntityKind) NotFound() error {
	switch k {
	case KindHouse:
		return ErrHouseNotFound
	case KindRoom:
		return ErrRoomNotFound
	case KindAsset:
		return ErrAssetNotFound
	case KindRentedRoom:
		return ErrRentedRoomNotFound
	case KindInvoice:
		return ErrInvoiceNotFound
	default:
		return &Error{Kind: ErrNotFound, Msg: string(k) + " not found"}
	}
}

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 500
)

// Page is a skip/limit window over a listing.
type Page struct {
	Skip  int
	Limit int
}

// Normalize clamps the page to sane bounds.
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}
