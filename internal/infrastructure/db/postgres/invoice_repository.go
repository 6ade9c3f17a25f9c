package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rentaldesk/rental-api/internal/core/domain"
)

var invoiceColumns = []string{
	"price", "water_price", "internet_price", "general_price",
	"electricity_price", "electricity_num", "water_num",
	"due_date", "payment_date", "is_paid", "updated_at",
}

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(inv).Error; err != nil {
		return fmt.Errorf("create invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id uint) (*domain.Invoice, error) {
	var inv domain.Invoice
	if err := r.db.WithContext(ctx).First(&inv, "invoice_id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrInvoiceNotFound)
	}
	return &inv, nil
}

func (r *InvoiceRepository) FindDetails(ctx context.Context, id uint) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.WithContext(ctx).
		Preload("RentedRoom.Room").
		First(&inv, "invoice_id = ?", id).Error
	if err != nil {
		return nil, translate(err, domain.ErrInvoiceNotFound)
	}
	return &inv, nil
}

func (r *InvoiceRepository) List(ctx context.Context, f domain.InvoiceFilter) ([]domain.Invoice, error) {
	q := r.db.WithContext(ctx).Model(&domain.Invoice{}).
		Scopes(ownedBy(domain.KindInvoice, f.OwnerID))
	if f.RentedRoomID != nil {
		q = q.Where("invoices.rr_id = ?", *f.RentedRoomID)
	}
	if f.HouseID != nil {
		q = q.Where("houses.house_id = ?", *f.HouseID)
	}
	if f.RoomID != nil {
		q = q.Where("rooms.room_id = ?", *f.RoomID)
	}
	if f.IsPaid != nil {
		q = q.Where("invoices.is_paid = ?", *f.IsPaid)
	}
	if f.DueFrom != nil {
		q = q.Where("invoices.due_date >= ?", *f.DueFrom)
	}
	if f.DueBefore != nil {
		q = q.Where("invoices.due_date < ?", *f.DueBefore)
	}

	out := []domain.Invoice{}
	err := q.Preload("RentedRoom.Room").
		Order("invoices.due_date DESC, invoices.invoice_id DESC").
		Scopes(paginate(f.Page)).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return out, nil
}

func (r *InvoiceRepository) Save(ctx context.Context, inv *domain.Invoice) error {
	err := r.db.WithContext(ctx).Model(inv).Select(invoiceColumns).Updates(inv).Error
	if err != nil {
		return fmt.Errorf("save invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) MarkPaid(ctx context.Context, id uint) (bool, error) {
	db := r.db.WithContext(ctx)
	res := db.Model(&domain.Invoice{}).
		Where("invoice_id = ? AND is_paid = ?", id, false).
		Updates(map[string]any{
			"is_paid":      true,
			"payment_date": gorm.Expr("COALESCE(payment_date, created_at)"),
		})
	if res.Error != nil {
		return false, fmt.Errorf("mark invoice paid: %w", res.Error)
	}
	if res.RowsAffected == 1 {
		return true, nil
	}

	var n int64
	if err := db.Model(&domain.Invoice{}).Where("invoice_id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("mark invoice paid: %w", err)
	}
	if n == 0 {
		return false, domain.ErrInvoiceNotFound
	}
	return false, nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("invoice_id = ?", id).Delete(&domain.Invoice{})
	if res.Error != nil {
		return fmt.Errorf("delete invoice: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}
