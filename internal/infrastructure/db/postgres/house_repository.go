package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/rentaldesk/rental-api/internal/core/domain"
)

type HouseRepository struct {
	db *gorm.DB
}

func NewHouseRepository(db *gorm.DB) *HouseRepository {
	return &HouseRepository{db: db}
}

func (r *HouseRepository) Create(ctx context.Context, h *domain.House) error {
	if err := r.db.WithContext(ctx).Create(h).Error; err != nil {
		return fmt.Errorf("create house: %w", err)
	}
	return nil
}

func (r *HouseRepository) FindByID(ctx context.Context, id uint) (*domain.House, error) {
	var h domain.House
	if err := r.db.WithContext(ctx).First(&h, "house_id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrHouseNotFound)
	}
	return &h, nil
}

func (r *HouseRepository) ListByOwner(ctx context.Context, ownerID uint, page domain.Page) ([]domain.House, error) {
	houses := []domain.House{}
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("house_id").
		Scopes(paginate(page)).
		Find(&houses).Error
	if err != nil {
		return nil, fmt.Errorf("list houses: %w", err)
	}
	return houses, nil
}

func (r *HouseRepository) Update(ctx context.Context, h *domain.House) error {
	err := r.db.WithContext(ctx).Model(h).
		Select("name", "floor_count", "ward", "district", "address_line", "updated_at").
		Updates(h).Error
	if err != nil {
		return fmt.Errorf("update house: %w", err)
	}
	return nil
}

func (r *HouseRepository) CountOccupancy(ctx context.Context, houseID uint) (domain.Occupancy, error) {
	return houseOccupancy(r.db.WithContext(ctx), houseID)
}

func (r *HouseRepository) Delete(ctx context.Context, houseID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		occ, err := houseOccupancy(tx, houseID)
		if err != nil {
			return err
		}
		if occ.Blocked() {
			return domain.ErrHouseOccupied
		}

		rooms := tx.Model(&domain.Room{}).Select("room_id").Where("house_id = ?", houseID)
		rentals := tx.Model(&domain.RentedRoom{}).Select("rr_id").Where("room_id IN (?)", rooms)
		steps := []struct {
			name string
			run  func() error
		}{
			{"invoices", func() error { return tx.Where("rr_id IN (?)", rentals).Delete(&domain.Invoice{}).Error }},
			{"rented rooms", func() error { return tx.Where("room_id IN (?)", rooms).Delete(&domain.RentedRoom{}).Error }},
			{"assets", func() error { return tx.Where("room_id IN (?)", rooms).Delete(&domain.Asset{}).Error }},
			{"rooms", func() error { return tx.Where("house_id = ?", houseID).Delete(&domain.Room{}).Error }},
		}
		for _, step := range steps {
			if err := step.run(); err != nil {
				return fmt.Errorf("delete house %s: %w", step.name, err)
			}
		}

		res := tx.Where("house_id = ?", houseID).Delete(&domain.House{})
		if res.Error != nil {
			return fmt.Errorf("delete house: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrHouseNotFound
		}
		return nil
	})
}

func houseOccupancy(db *gorm.DB, houseID uint) (domain.Occupancy, error) {
	var occ domain.Occupancy
	err := db.Model(&domain.Room{}).
		Where("house_id = ? AND is_available = ?", houseID, false).
		Count(&occ.OccupiedRooms).Error
	if err != nil {
		return occ, fmt.Errorf("count occupied rooms: %w", err)
	}
	err = db.Model(&domain.RentedRoom{}).
		Joins("JOIN rooms ON rooms.room_id = rented_rooms.room_id").
		Where("rooms.house_id = ? AND rented_rooms.is_active = ?", houseID, true).
		Count(&occ.ActiveContracts).Error
	if err != nil {
		return occ, fmt.Errorf("count active contracts: %w", err)
	}
	return occ, nil
}
