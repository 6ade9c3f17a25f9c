package ports

import (
	"context"
	"time"

	"github.com/rentaldesk/rental-api/internal/core/domain"
)

type CreateInvoiceInput struct {
	RentedRoomID     uint
	Price            float64
	WaterPrice       float64
	InternetPrice    float64
	GeneralPrice     float64
	ElectricityPrice float64
	ElectricityNum   float64
	WaterNum         float64
	DueDate          time.Time
	PaymentDate      *time.Time
	IdempotencyKey   string
}

type InvoicePatch struct {
	Price            *float64
	WaterPrice       *float64
	InternetPrice    *float64
	GeneralPrice     *float64
	ElectricityPrice *float64
	ElectricityNum   *float64
	WaterNum         *float64
	DueDate          *time.Time
	PaymentDate      *time.Time
	IsPaid           *bool
}

// InvoiceQuery is the raw listing request. A malformed Month is ignored.
type InvoiceQuery struct {
	Month   string
	HouseID *uint
	RoomID  *uint
	IsPaid  *bool
	Page    domain.Page
}

type InvoiceResult struct {
	Invoice        *domain.Invoice
	AlreadyExisted bool
}

type BillingService interface {
	CreateInvoice(ctx context.Context, ownerID uint, in CreateInvoiceInput) (*InvoiceResult, error)
	GetInvoice(ctx context.Context, ownerID, invoiceID uint) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, ownerID uint, q InvoiceQuery) ([]domain.Invoice, error)
	ListPending(ctx context.Context, ownerID uint, page domain.Page) ([]domain.Invoice, error)
	ListByContract(ctx context.Context, ownerID, rrID uint) ([]domain.Invoice, error)
	UpdateInvoice(ctx context.Context, ownerID, invoiceID uint, patch InvoicePatch) (*domain.Invoice, error)
	MarkPaid(ctx context.Context, ownerID, invoiceID uint) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, ownerID, invoiceID uint) error
}
