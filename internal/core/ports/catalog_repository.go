package ports

import (
	"context"

	"github.com/rentaldesk/rental-api/internal/core/domain"
)

type HouseRepository interface {
	Create(ctx context.Context, h *domain.House) error
	FindByID(ctx context.Context, id uint) (*domain.House, error)
	ListByOwner(ctx context.Context, ownerID uint, page domain.Page) ([]domain.House, error)
	Update(ctx context.Context, h *domain.House) error
	CountOccupancy(ctx context.Context, houseID uint) (domain.Occupancy, error)
	// Delete re-checks occupancy inside its transaction and cascades to
	// rooms, assets, contracts and invoices.
	Delete(ctx context.Context, houseID uint) error
}

type RoomRepository interface {
	Create(ctx context.Context, r *domain.Room) error
	FindByID(ctx context.Context, id uint) (*domain.Room, error)
	// FindDetails preloads the house, assets and contracts.
	FindDetails(ctx context.Context, id uint) (*domain.Room, error)
	List(ctx context.Context, filter domain.RoomFilter) ([]domain.Room, error)
	// Update writes the descriptive fields; is_available is never touched.
	Update(ctx context.Context, r *domain.Room) error
	CountOccupancy(ctx context.Context, roomID uint) (domain.Occupancy, error)
	Delete(ctx context.Context, roomID uint) error
}

type AssetRepository interface {
	Create(ctx context.Context, a *domain.Asset) error
	FindByID(ctx context.Context, id uint) (*domain.Asset, error)
	ListByRoom(ctx context.Context, roomID uint) ([]domain.Asset, error)
	Update(ctx context.Context, a *domain.Asset) error
	Delete(ctx context.Context, id uint) error
}
