package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rentaldesk/rental-api/internal/core/domain"
)

// contractColumns are the columns Update may write.
var contractColumns = []string{
	"tenant_name", "tenant_phone", "number_of_tenants", "contract_url",
	"start_date", "end_date", "deposit", "initial_electricity_num",
	"electricity_unit_price", "water_price", "internet_price", "general_price",
	"updated_at",
}

type RentalRepository struct {
	db *gorm.DB
}

func NewRentalRepository(db *gorm.DB) *RentalRepository {
	return &RentalRepository{db: db}
}

// CreateActive claims the room and inserts the contract in one transaction.
// MonthlyRent is re-read from the claimed row.
func (r *RentalRepository) CreateActive(ctx context.Context, rr *domain.RentedRoom) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room, err := claimRoom(tx, rr.RoomID, rr.NumberOfTenants)
		if err != nil {
			return err
		}
		rr.MonthlyRent = room.Price
		rr.IsActive = true
		if err := tx.Omit(clause.Associations).Create(rr).Error; err != nil {
			return fmt.Errorf("create contract: %w", err)
		}
		return nil
	})
}

func (r *RentalRepository) FindByID(ctx context.Context, id uint) (*domain.RentedRoom, error) {
	var rr domain.RentedRoom
	if err := r.db.WithContext(ctx).First(&rr, "rr_id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrRentedRoomNotFound)
	}
	return &rr, nil
}

func (r *RentalRepository) FindDetails(ctx context.Context, id uint) (*domain.RentedRoom, error) {
	var rr domain.RentedRoom
	err := r.db.WithContext(ctx).
		Preload("Room").
		Preload("Invoices", func(db *gorm.DB) *gorm.DB { return db.Order("invoice_id") }).
		First(&rr, "rr_id = ?", id).Error
	if err != nil {
		return nil, translate(err, domain.ErrRentedRoomNotFound)
	}
	return &rr, nil
}

func (r *RentalRepository) List(ctx context.Context, filter domain.RentalFilter) ([]domain.RentedRoom, error) {
	q := r.db.WithContext(ctx).Model(&domain.RentedRoom{}).
		Scopes(ownedBy(domain.KindRentedRoom, filter.OwnerID))
	if filter.RoomID != nil {
		q = q.Where("rented_rooms.room_id = ?", *filter.RoomID)
	}
	if filter.ActiveOnly {
		q = q.Where("rented_rooms.is_active = ?", true)
	}

	out := []domain.RentedRoom{}
	err := q.Preload("Room").
		Order("rented_rooms.rr_id").
		Scopes(paginate(filter.Page)).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	return out, nil
}

// Update writes the patchable columns. When active differs from the stored
// flag the room is claimed for rr.NumberOfTenants or released in the same
// transaction. It reports whether the flag changed.
func (r *RentalRepository) Update(ctx context.Context, rr *domain.RentedRoom, active *bool) (bool, error) {
	changed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stored, err := lockContract(tx, rr.ID)
		if err != nil {
			return err
		}
		if active != nil && *active != stored.IsActive {
			if *active {
				_, err = claimRoom(tx, stored.RoomID, rr.NumberOfTenants)
			} else {
				err = releaseRoom(tx, stored.RoomID)
			}
			if err != nil {
				return err
			}
			err = tx.Model(&domain.RentedRoom{}).
				Where("rr_id = ?", rr.ID).
				Update("is_active", *active).Error
			if err != nil {
				return fmt.Errorf("set contract active: %w", err)
			}
			changed = true
		}
		if err := tx.Model(rr).Select(contractColumns).Updates(rr).Error; err != nil {
			return fmt.Errorf("update contract: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

// Terminate frees the room only when this call deactivated the contract.
func (r *RentalRepository) Terminate(ctx context.Context, id uint) (bool, error) {
	changed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rr, err := lockContract(tx, id)
		if err != nil {
			return err
		}
		res := tx.Model(&domain.RentedRoom{}).
			Where("rr_id = ? AND is_active = ?", id, true).
			Update("is_active", false)
		if res.Error != nil {
			return fmt.Errorf("terminate contract: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil
		}
		changed = true
		return releaseRoom(tx, rr.RoomID)
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

func (r *RentalRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rr, err := lockContract(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Where("rr_id = ?", id).Delete(&domain.Invoice{}).Error; err != nil {
			return fmt.Errorf("delete contract invoices: %w", err)
		}
		if err := tx.Where("rr_id = ?", id).Delete(&domain.RentedRoom{}).Error; err != nil {
			return fmt.Errorf("delete contract: %w", err)
		}
		if rr.IsActive {
			return releaseRoom(tx, rr.RoomID)
		}
		return nil
	})
}

// claimRoom flips an available room with enough capacity to unavailable.
// When nothing matched it reports why.
func claimRoom(tx *gorm.DB, roomID uint, tenants int) (*domain.Room, error) {
	res := tx.Model(&domain.Room{}).
		Where("room_id = ? AND is_available = ? AND capacity >= ?", roomID, true, tenants).
		Update("is_available", false)
	if res.Error != nil {
		return nil, fmt.Errorf("claim room: %w", res.Error)
	}

	var room domain.Room
	if err := tx.First(&room, "room_id = ?", roomID).Error; err != nil {
		return nil, translate(err, domain.ErrRoomNotFound)
	}
	if res.RowsAffected == 1 {
		return &room, nil
	}
	if !room.IsAvailable {
		return nil, domain.ErrRoomUnavailable
	}
	return nil, domain.ErrOverCapacity
}

func releaseRoom(tx *gorm.DB, roomID uint) error {
	err := tx.Model(&domain.Room{}).
		Where("room_id = ?", roomID).
		Update("is_available", true).Error
	if err != nil {
		return fmt.Errorf("release room: %w", err)
	}
	return nil
}

// lockContract reads the contract row FOR UPDATE where the dialect supports it.
func lockContract(tx *gorm.DB, id uint) (*domain.RentedRoom, error) {
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var rr domain.RentedRoom
	if err := q.First(&rr, "rr_id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrRentedRoomNotFound)
	}
	return &rr, nil
}
