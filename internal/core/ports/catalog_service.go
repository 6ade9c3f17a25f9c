package ports

import (
	"context"

	"github.com/rentaldesk/rental-api/internal/core/domain"
)

type HouseInput struct {
	Name        string
	FloorCount  int
	Ward        string
	District    string
	AddressLine string
}

type HousePatch struct {
	Name        *string
	FloorCount  *int
	Ward        *string
	District    *string
	AddressLine *string
}

type RoomInput struct {
	HouseID     uint
	Name        string
	Capacity    int
	Description *string
	Price       float64
}

// RoomPatch has no availability field: the flag belongs to the tenancy flow.
type RoomPatch struct {
	Name        *string
	Capacity    *int
	Description *string
	Price       *float64
}

type AssetInput struct {
	RoomID   uint
	Name     string
	ImageURL *string
}

type AssetPatch struct {
	Name     *string
	ImageURL *string
}

type HouseService interface {
	Create(ctx context.Context, ownerID uint, in HouseInput) (*domain.House, error)
	List(ctx context.Context, ownerID uint, page domain.Page) ([]domain.House, error)
	Get(ctx context.Context, ownerID, houseID uint) (*domain.House, error)
	Update(ctx context.Context, ownerID, houseID uint, patch HousePatch) (*domain.House, error)
	Delete(ctx context.Context, ownerID, houseID uint) error
}

type RoomService interface {
	Create(ctx context.Context, ownerID uint, in RoomInput) (*domain.Room, error)
	List(ctx context.Context, filter domain.RoomFilter) ([]domain.Room, error)
	Get(ctx context.Context, ownerID, roomID uint) (*domain.Room, error)
	Details(ctx context.Context, ownerID, roomID uint) (*domain.Room, error)
	Update(ctx context.Context, ownerID, roomID uint, patch RoomPatch) (*domain.Room, error)
	Delete(ctx context.Context, ownerID, roomID uint) error
}

type AssetService interface {
	Create(ctx context.Context, ownerID uint, in AssetInput) (*domain.Asset, error)
	ListByRoom(ctx context.Context, ownerID, roomID uint) ([]domain.Asset, error)
	Get(ctx context.Context, ownerID, assetID uint) (*domain.Asset, error)
	Update(ctx context.Context, ownerID, assetID uint, patch AssetPatch) (*domain.Asset, error)
	Delete(ctx context.Context, ownerID, assetID uint) error
}
