package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentaldesk/rental-api/internal/api/metrics"
	"github.com/rentaldesk/rental-api/internal/core/domain"
	"github.com/rentaldesk/rental-api/internal/core/ports"
)

// BillingService manages invoices of owned contracts.
type BillingService struct {
	invoices ports.InvoiceRepository
	scope    ports.ScopeResolver
	lifecycle
}

// NewBillingService wires the service. recorder and idem may be nil.
func NewBillingService(
	invoices ports.InvoiceRepository,
	scope ports.ScopeResolver,
	recorder ports.AuditRecorder,
	idem ports.IdempotencyStore,
	log zerolog.Logger,
) *BillingService {
	return &BillingService{
		invoices:  invoices,
		scope:     scope,
		lifecycle: lifecycle{recorder: recorder, idem: idem, log: log, now: time.Now},
	}
}

// CreateInvoice bills a contract. Terminated contracts may still be billed.
func (s *BillingService) CreateInvoice(ctx context.Context, ownerID uint, in ports.CreateInvoiceInput) (*ports.InvoiceResult, error) {
	if id, ok := s.lookup(ctx, idemInvoices, ownerID, in.IdempotencyKey); ok {
		if existing, err := s.invoices.FindDetails(ctx, id); err == nil {
			s.log.Info().Str("idempotency_key", in.IdempotencyKey).Uint("invoice_id", existing.ID).Msg("idempotent replay")
			return &ports.InvoiceResult{Invoice: existing, AlreadyExisted: true}, nil
		}
	}

	if err := authorize(ctx, s.scope, domain.KindRentedRoom, in.RentedRoomID, ownerID); err != nil {
		return nil, err
	}

	inv := &domain.Invoice{
		Price:            in.Price,
		WaterPrice:       in.WaterPrice,
		InternetPrice:    in.InternetPrice,
		GeneralPrice:     in.GeneralPrice,
		ElectricityPrice: in.ElectricityPrice,
		ElectricityNum:   in.ElectricityNum,
		WaterNum:         in.WaterNum,
		DueDate:          in.DueDate.UTC(),
		PaymentDate:      utcPtr(in.PaymentDate),
		RentedRoomID:     in.RentedRoomID,
	}
	if err := validateCharges(inv); err != nil {
		return nil, err
	}
	if err := s.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}
	s.remember(ctx, idemInvoices, ownerID, in.IdempotencyKey, inv.ID)
	s.record(domain.KindInvoice, inv.ID, inv.RentedRoomID, ownerID, domain.ActionInvoiceCreated, map[string]any{
		"total": inv.Total().InexactFloat64(),
	})

	s.log.Info().Uint("invoice_id", inv.ID).Uint("rr_id", inv.RentedRoomID).Msg("invoice created")

	created, err := s.invoices.FindDetails(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	return &ports.InvoiceResult{Invoice: created}, nil
}

// GetInvoice returns the invoice with its contract and room.
func (s *BillingService) GetInvoice(ctx context.Context, ownerID, invoiceID uint) (*domain.Invoice, error) {
	if err := authorize(ctx, s.scope, domain.KindInvoice, invoiceID, ownerID); err != nil {
		return nil, err
	}
	return s.invoices.FindDetails(ctx, invoiceID)
}

// ListInvoices applies every supplied filter. A malformed month is ignored.
func (s *BillingService) ListInvoices(ctx context.Context, ownerID uint, q ports.InvoiceQuery) ([]domain.Invoice, error) {
	filter := domain.InvoiceFilter{
		OwnerID: ownerID,
		HouseID: q.HouseID,
		RoomID:  q.RoomID,
		IsPaid:  q.IsPaid,
		Page:    q.Page.Normalize(),
	}
	if q.Month != "" {
		if start, next, ok := domain.ParseMonth(q.Month); ok {
			filter.DueFrom, filter.DueBefore = &start, &next
		} else {
			s.log.Debug().Str("month", q.Month).Msg("ignoring malformed month filter")
		}
	}
	return s.invoices.List(ctx, filter)
}

func (s *BillingService) ListPending(ctx context.Context, ownerID uint, page domain.Page) ([]domain.Invoice, error) {
	unpaid := false
	return s.invoices.List(ctx, domain.InvoiceFilter{OwnerID: ownerID, IsPaid: &unpaid, Page: page.Normalize()})
}

func (s *BillingService) ListByContract(ctx context.Context, ownerID, rrID uint) ([]domain.Invoice, error) {
	if err := authorize(ctx, s.scope, domain.KindRentedRoom, rrID, ownerID); err != nil {
		return nil, err
	}
	return s.invoices.List(ctx, domain.InvoiceFilter{
		OwnerID:      ownerID,
		RentedRoomID: &rrID,
		Page:         domain.Page{Limit: domain.MaxPageLimit},
	})
}

func (s *BillingService) UpdateInvoice(ctx context.Context, ownerID, invoiceID uint, patch ports.InvoicePatch) (*domain.Invoice, error) {
	if err := authorize(ctx, s.scope, domain.KindInvoice, invoiceID, ownerID); err != nil {
		return nil, err
	}
	inv, err := s.invoices.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	applyInvoicePatch(inv, patch)
	if err := validateCharges(inv); err != nil {
		return nil, err
	}
	if err := s.invoices.Save(ctx, inv); err != nil {
		return nil, err
	}
	return s.invoices.FindDetails(ctx, invoiceID)
}

// MarkPaid is idempotent: a second call keeps the first payment date.
func (s *BillingService) MarkPaid(ctx context.Context, ownerID, invoiceID uint) (*domain.Invoice, error) {
	if err := authorize(ctx, s.scope, domain.KindInvoice, invoiceID, ownerID); err != nil {
		return nil, err
	}
	paid, err := s.invoices.MarkPaid(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	inv, err := s.invoices.FindDetails(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if !paid {
		return inv, nil
	}
	metrics.InvoicesPaidTotal.Inc()
	s.record(domain.KindInvoice, inv.ID, inv.RentedRoomID, ownerID, domain.ActionInvoicePaid, map[string]any{
		"total": inv.Total().InexactFloat64(),
	})

	s.log.Info().Uint("invoice_id", inv.ID).Msg("invoice paid")
	return inv, nil
}

func (s *BillingService) DeleteInvoice(ctx context.Context, ownerID, invoiceID uint) error {
	if err := authorize(ctx, s.scope, domain.KindInvoice, invoiceID, ownerID); err != nil {
		return err
	}
	inv, err := s.invoices.FindByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if err := s.invoices.Delete(ctx, invoiceID); err != nil {
		return err
	}
	s.record(domain.KindInvoice, inv.ID, inv.RentedRoomID, ownerID, domain.ActionInvoiceDeleted, nil)
	return nil
}

func applyInvoicePatch(inv *domain.Invoice, p ports.InvoicePatch) {
	if p.Price != nil {
		inv.Price = *p.Price
	}
	if p.WaterPrice != nil {
		inv.WaterPrice = *p.WaterPrice
	}
	if p.InternetPrice != nil {
		inv.InternetPrice = *p.InternetPrice
	}
	if p.GeneralPrice != nil {
		inv.GeneralPrice = *p.GeneralPrice
	}
	if p.ElectricityPrice != nil {
		inv.ElectricityPrice = *p.ElectricityPrice
	}
	if p.ElectricityNum != nil {
		inv.ElectricityNum = *p.ElectricityNum
	}
	if p.WaterNum != nil {
		inv.WaterNum = *p.WaterNum
	}
	if p.DueDate != nil {
		inv.DueDate = p.DueDate.UTC()
	}
	if p.PaymentDate != nil {
		inv.PaymentDate = utcPtr(p.PaymentDate)
	}
	if p.IsPaid != nil {
		inv.IsPaid = *p.IsPaid
	}
}

func validateCharges(inv *domain.Invoice) error {
	for _, v := range []float64{inv.Price, inv.WaterPrice, inv.InternetPrice, inv.GeneralPrice, inv.ElectricityPrice, inv.ElectricityNum, inv.WaterNum} {
		if v < 0 {
			return domain.Validation("charges must not be negative")
		}
	}
	if inv.DueDate.IsZero() {
		return domain.Validation("due date is required")
	}
	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
