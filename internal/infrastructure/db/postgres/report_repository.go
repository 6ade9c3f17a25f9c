package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/rentaldesk/rental-api/internal/core/domain"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) PaidInvoices(ctx context.Context, ownerID uint, from, until time.Time) ([]domain.Invoice, error) {
	out := []domain.Invoice{}
	err := r.db.WithContext(ctx).Model(&domain.Invoice{}).
		Scopes(ownedBy(domain.KindInvoice, ownerID)).
		Where("invoices.is_paid = ?", true).
		Where("invoices.payment_date >= ? AND invoices.payment_date < ?", from, until).
		Order("invoices.payment_date").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("paid invoices: %w", err)
	}
	return out, nil
}

func (r *ReportRepository) CountUnpaidDue(ctx context.Context, ownerID uint, from, until time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Invoice{}).
		Scopes(ownedBy(domain.KindInvoice, ownerID)).
		Where("invoices.is_paid = ?", false).
		Where("invoices.due_date >= ? AND invoices.due_date < ?", from, until).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count unpaid invoices: %w", err)
	}
	return n, nil
}

func (r *ReportRepository) Overview(ctx context.Context, ownerID uint) (domain.OverviewCounts, error) {
	db := r.db.WithContext(ctx)
	var c domain.OverviewCounts

	counters := []struct {
		name  string
		dest  *int64
		query func() *gorm.DB
	}{
		{"houses", &c.Houses, func() *gorm.DB {
			return db.Model(&domain.House{}).Where("owner_id = ?", ownerID)
		}},
		{"rooms", &c.Rooms, func() *gorm.DB {
			return db.Model(&domain.Room{}).Scopes(ownedBy(domain.KindRoom, ownerID))
		}},
		{"available rooms", &c.AvailableRooms, func() *gorm.DB {
			return db.Model(&domain.Room{}).Scopes(ownedBy(domain.KindRoom, ownerID)).
				Where("rooms.is_available = ?", true)
		}},
		{"occupied rooms", &c.OccupiedRooms, func() *gorm.DB {
			return db.Model(&domain.Room{}).Scopes(ownedBy(domain.KindRoom, ownerID)).
				Where("rooms.is_available = ?", false)
		}},
		{"active contracts", &c.ActiveContracts, func() *gorm.DB {
			return db.Model(&domain.RentedRoom{}).Scopes(ownedBy(domain.KindRentedRoom, ownerID)).
				Where("rented_rooms.is_active = ?", true)
		}},
		{"pending invoices", &c.PendingInvoices, func() *gorm.DB {
			return db.Model(&domain.Invoice{}).Scopes(ownedBy(domain.KindInvoice, ownerID)).
				Where("invoices.is_paid = ?", false)
		}},
	}
	for _, counter := range counters {
		if err := counter.query().Count(counter.dest).Error; err != nil {
			return c, fmt.Errorf("count %s: %w", counter.name, err)
		}
	}
	return c, nil
}
