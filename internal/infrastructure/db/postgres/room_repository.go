package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/rentaldesk/rental-api/internal/core/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	if err := r.db.WithContext(ctx).Omit("House", "Assets", "RentedRooms").Create(room).Error; err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uint) (*domain.Room, error) {
	var room domain.Room
	if err := r.db.WithContext(ctx).First(&room, "room_id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrRoomNotFound)
	}
	return &room, nil
}

func (r *RoomRepository) FindDetails(ctx context.Context, id uint) (*domain.Room, error) {
	var room domain.Room
	err := r.db.WithContext(ctx).
		Preload("House").
		Preload("Assets", func(db *gorm.DB) *gorm.DB { return db.Order("asset_id") }).
		Preload("RentedRooms", func(db *gorm.DB) *gorm.DB { return db.Order("rr_id") }).
		First(&room, "room_id = ?", id).Error
	if err != nil {
		return nil, translate(err, domain.ErrRoomNotFound)
	}
	return &room, nil
}

func (r *RoomRepository) List(ctx context.Context, filter domain.RoomFilter) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).Model(&domain.Room{}).
		Scopes(ownedBy(domain.KindRoom, filter.OwnerID))
	if filter.HouseID != nil {
		q = q.Where("rooms.house_id = ?", *filter.HouseID)
	}
	if filter.AvailableOnly {
		q = q.Where("rooms.is_available = ?", true)
	}

	rooms := []domain.Room{}
	if err := q.Order("rooms.room_id").Scopes(paginate(filter.Page)).Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	err := r.db.WithContext(ctx).Model(room).
		Select("name", "capacity", "description", "price", "updated_at").
		Updates(room).Error
	if err != nil {
		return fmt.Errorf("update room: %w", err)
	}
	return nil
}

func (r *RoomRepository) CountOccupancy(ctx context.Context, roomID uint) (domain.Occupancy, error) {
	return roomOccupancy(r.db.WithContext(ctx), roomID)
}

func (r *RoomRepository) Delete(ctx context.Context, roomID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		occ, err := roomOccupancy(tx, roomID)
		if err != nil {
			return err
		}
		if occ.Blocked() {
			return domain.ErrRoomOccupied
		}

		rentals := tx.Model(&domain.RentedRoom{}).Select("rr_id").Where("room_id = ?", roomID)
		if err := tx.Where("rr_id IN (?)", rentals).Delete(&domain.Invoice{}).Error; err != nil {
			return fmt.Errorf("delete room invoices: %w", err)
		}
		if err := tx.Where("room_id = ?", roomID).Delete(&domain.RentedRoom{}).Error; err != nil {
			return fmt.Errorf("delete room contracts: %w", err)
		}
		if err := tx.Where("room_id = ?", roomID).Delete(&domain.Asset{}).Error; err != nil {
			return fmt.Errorf("delete room assets: %w", err)
		}

		res := tx.Where("room_id = ?", roomID).Delete(&domain.Room{})
		if res.Error != nil {
			return fmt.Errorf("delete room: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrRoomNotFound
		}
		return nil
	})
}

func roomOccupancy(db *gorm.DB, roomID uint) (domain.Occupancy, error) {
	var occ domain.Occupancy
	err := db.Model(&domain.Room{}).
		Where("room_id = ? AND is_available = ?", roomID, false).
		Count(&occ.OccupiedRooms).Error
	if err != nil {
		return occ, fmt.Errorf("count occupied room: %w", err)
	}
	err = db.Model(&domain.RentedRoom{}).
		Where("room_id = ? AND is_active = ?", roomID, true).
		Count(&occ.ActiveContracts).Error
	if err != nil {
		return occ, fmt.Errorf("count active contracts: %w", err)
	}
	return occ, nil
}
