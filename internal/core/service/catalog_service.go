package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rentaldesk/rental-api/internal/core/domain"
	"github.com/rentaldesk/rental-api/internal/core/ports"
)

// HouseService manages houses and guards their deletion.
type HouseService struct {
	houses ports.HouseRepository
	scope  ports.ScopeResolver
	log    zerolog.Logger
}

func NewHouseService(houses ports.HouseRepository, scope ports.ScopeResolver, log zerolog.Logger) *HouseService {
	return &HouseService{houses: houses, scope: scope, log: log}
}

func (s *HouseService) Create(ctx context.Context, ownerID uint, in ports.HouseInput) (*domain.House, error) {
	h := &domain.House{
		Name:        strings.TrimSpace(in.Name),
		FloorCount:  in.FloorCount,
		Ward:        in.Ward,
		District:    in.District,
		AddressLine: in.AddressLine,
		OwnerID:     ownerID,
	}
	if err := validateHouse(h); err != nil {
		return nil, err
	}
	if err := s.houses.Create(ctx, h); err != nil {
		return nil, err
	}
	s.log.Info().Uint("house_id", h.ID).Uint("owner_id", ownerID).Msg("house created")
	return h, nil
}

func (s *HouseService) List(ctx context.Context, ownerID uint, page domain.Page) ([]domain.House, error) {
	return s.houses.ListByOwner(ctx, ownerID, page.Normalize())
}

func (s *HouseService) Get(ctx context.Context, ownerID, houseID uint) (*domain.House, error) {
	if err := authorize(ctx, s.scope, domain.KindHouse, houseID, ownerID); err != nil {
		return nil, err
	}
	return s.houses.FindByID(ctx, houseID)
}

func (s *HouseService) Update(ctx context.Context, ownerID, houseID uint, patch ports.HousePatch) (*domain.House, error) {
	h, err := s.Get(ctx, ownerID, houseID)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		h.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.FloorCount != nil {
		h.FloorCount = *patch.FloorCount
	}
	if patch.Ward != nil {
		h.Ward = *patch.Ward
	}
	if patch.District != nil {
		h.District = *patch.District
	}
	if patch.AddressLine != nil {
		h.AddressLine = *patch.AddressLine
	}
	if err := validateHouse(h); err != nil {
		return nil, err
	}
	if err := s.houses.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// Delete rejects houses with an occupied room or an active contract.
func (s *HouseService) Delete(ctx context.Context, ownerID, houseID uint) error {
	if err := authorize(ctx, s.scope, domain.KindHouse, houseID, ownerID); err != nil {
		return err
	}
	occ, err := s.houses.CountOccupancy(ctx, houseID)
	if err != nil {
		return err
	}
	if occ.Blocked() {
		return domain.ErrHouseOccupied
	}
	if err := s.houses.Delete(ctx, houseID); err != nil {
		return err
	}
	s.log.Info().Uint("house_id", houseID).Uint("owner_id", ownerID).Msg("house deleted")
	return nil
}

func validateHouse(h *domain.House) error {
	if h.Name == "" {
		return domain.Validation("name is required")
	}
	if h.FloorCount < 0 {
		return domain.Validation("floor count must not be negative")
	}
	return nil
}

// RoomService manages rooms. Availability is never written here.
type RoomService struct {
	rooms ports.RoomRepository
	scope ports.ScopeResolver
	log   zerolog.Logger
}

func NewRoomService(rooms ports.RoomRepository, scope ports.ScopeResolver, log zerolog.Logger) *RoomService {
	return &RoomService{rooms: rooms, scope: scope, log: log}
}

func (s *RoomService) Create(ctx context.Context, ownerID uint, in ports.RoomInput) (*domain.Room, error) {
	if err := authorize(ctx, s.scope, domain.KindHouse, in.HouseID, ownerID); err != nil {
		return nil, err
	}
	r := &domain.Room{
		Name:        strings.TrimSpace(in.Name),
		Capacity:    in.Capacity,
		Description: in.Description,
		Price:       in.Price,
		HouseID:     in.HouseID,
		IsAvailable: true,
	}
	if err := validateRoom(r); err != nil {
		return nil, err
	}
	if err := s.rooms.Create(ctx, r); err != nil {
		return nil, err
	}
	s.log.Info().Uint("room_id", r.ID).Uint("house_id", r.HouseID).Msg("room created")
	return r, nil
}

// List returns the owner's rooms. A HouseID filter must name an owned house.
func (s *RoomService) List(ctx context.Context, filter domain.RoomFilter) ([]domain.Room, error) {
	if filter.HouseID != nil {
		if err := authorize(ctx, s.scope, domain.KindHouse, *filter.HouseID, filter.OwnerID); err != nil {
			return nil, err
		}
	}
	filter.Page = filter.Page.Normalize()
	return s.rooms.List(ctx, filter)
}

func (s *RoomService) Get(ctx context.Context, ownerID, roomID uint) (*domain.Room, error) {
	if err := authorize(ctx, s.scope, domain.KindRoom, roomID, ownerID); err != nil {
		return nil, err
	}
	return s.rooms.FindByID(ctx, roomID)
}

func (s *RoomService) Details(ctx context.Context, ownerID, roomID uint) (*domain.Room, error) {
	if err := authorize(ctx, s.scope, domain.KindRoom, roomID, ownerID); err != nil {
		return nil, err
	}
	return s.rooms.FindDetails(ctx, roomID)
}

func (s *RoomService) Update(ctx context.Context, ownerID, roomID uint, patch ports.RoomPatch) (*domain.Room, error) {
	r, err := s.Get(ctx, ownerID, roomID)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		r.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Capacity != nil {
		r.Capacity = *patch.Capacity
	}
	if patch.Description != nil {
		r.Description = patch.Description
	}
	if patch.Price != nil {
		r.Price = *patch.Price
	}
	if err := validateRoom(r); err != nil {
		return nil, err
	}
	if err := s.rooms.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Delete rejects rooms that are occupied or under an active contract.
func (s *RoomService) Delete(ctx context.Context, ownerID, roomID uint) error {
	if err := authorize(ctx, s.scope, domain.KindRoom, roomID, ownerID); err != nil {
		return err
	}
	occ, err := s.rooms.CountOccupancy(ctx, roomID)
	if err != nil {
		return err
	}
	if occ.Blocked() {
		return domain.ErrRoomOccupied
	}
	if err := s.rooms.Delete(ctx, roomID); err != nil {
		return err
	}
	s.log.Info().Uint("room_id", roomID).Uint("owner_id", ownerID).Msg("room deleted")
	return nil
}

func validateRoom(r *domain.Room) error {
	if r.Name == "" {
		return domain.Validation("name is required")
	}
	if r.Capacity < 1 {
		return domain.Validation("capacity must be at least 1")
	}
	if r.Price < 0 {
		return domain.Validation("price must not be negative")
	}
	return nil
}

// AssetService manages room assets.
type AssetService struct {
	assets ports.AssetRepository
	scope  ports.ScopeResolver
}

func NewAssetService(assets ports.AssetRepository, scope ports.ScopeResolver) *AssetService {
	return &AssetService{assets: assets, scope: scope}
}

func (s *AssetService) Create(ctx context.Context, ownerID uint, in ports.AssetInput) (*domain.Asset, error) {
	if err := authorize(ctx, s.scope, domain.KindRoom, in.RoomID, ownerID); err != nil {
		return nil, err
	}
	a := &domain.Asset{Name: strings.TrimSpace(in.Name), ImageURL: in.ImageURL, RoomID: in.RoomID}
	if a.Name == "" {
		return nil, domain.Validation("name is required")
	}
	if err := s.assets.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AssetService) ListByRoom(ctx context.Context, ownerID, roomID uint) ([]domain.Asset, error) {
	if err := authorize(ctx, s.scope, domain.KindRoom, roomID, ownerID); err != nil {
		return nil, err
	}
	return s.assets.ListByRoom(ctx, roomID)
}

func (s *AssetService) Get(ctx context.Context, ownerID, assetID uint) (*domain.Asset, error) {
	if err := authorize(ctx, s.scope, domain.KindAsset, assetID, ownerID); err != nil {
		return nil, err
	}
	return s.assets.FindByID(ctx, assetID)
}

func (s *AssetService) Update(ctx context.Context, ownerID, assetID uint, patch ports.AssetPatch) (*domain.Asset, error) {
	a, err := s.Get(ctx, ownerID, assetID)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		a.Name = strings.TrimSpace(*patch.Name)
		if a.Name == "" {
			return nil, domain.Validation("name is required")
		}
	}
	if patch.ImageURL != nil {
		a.ImageURL = patch.ImageURL
	}
	if err := s.assets.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AssetService) Delete(ctx context.Context, ownerID, assetID uint) error {
	if err := authorize(ctx, s.scope, domain.KindAsset, assetID, ownerID); err != nil {
		return err
	}
	return s.assets.Delete(ctx, assetID)
}
