package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rentaldesk/rental-api/internal/core/domain"
	"github.com/rentaldesk/rental-api/internal/core/ports"
)

type stubBillingService struct {
	ports.BillingService
	createFn func(ctx context.Context, ownerID uint, in ports.CreateInvoiceInput) (*ports.InvoiceResult, error)
	listFn   func(ctx context.Context, ownerID uint, q ports.InvoiceQuery) ([]domain.Invoice, error)
	payFn    func(ctx context.Context, ownerID, invoiceID uint) (*domain.Invoice, error)
	updateFn func(ctx context.Context, ownerID, invoiceID uint, patch ports.InvoicePatch) (*domain.Invoice, error)
}

func (s *stubBillingService) CreateInvoice(ctx context.Context, ownerID uint, in ports.CreateInvoiceInput) (*ports.InvoiceResult, error) {
	return s.createFn(ctx, ownerID, in)
}

func (s *stubBillingService) ListInvoices(ctx context.Context, ownerID uint, q ports.InvoiceQuery) ([]domain.Invoice, error) {
	return s.listFn(ctx, ownerID, q)
}

func (s *stubBillingService) MarkPaid(ctx context.Context, ownerID, invoiceID uint) (*domain.Invoice, error) {
	return s.payFn(ctx, ownerID, invoiceID)
}

func (s *stubBillingService) UpdateInvoice(ctx context.Context, ownerID, invoiceID uint, patch ports.InvoicePatch) (*domain.Invoice, error) {
	return s.updateFn(ctx, ownerID, invoiceID, patch)
}

func TestInvoiceHandler_Create(t *testing.T) {
	due := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	stub := &stubBillingService{
		createFn: func(ctx context.Context, ownerID uint, in ports.CreateInvoiceInput) (*ports.InvoiceResult, error) {
			if in.RentedRoomID != 11 || in.Price != 2500000 || !in.DueDate.Equal(due) {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.InvoiceResult{Invoice: &domain.Invoice{
				ID:           5,
				RentedRoomID: 11,
				Price:        2500000,
				WaterPrice:   80000,
				DueDate:      due,
				RentedRoom:   &domain.RentedRoom{ID: 11, Room: &domain.Room{ID: 3}},
			}}, nil
		},
	}
	body := `{"rr_id":11,"price":2500000,"water_price":80000,"due_date":"2025-02-01T00:00:00Z"}`
	c, rec := newTestContext(http.MethodPost, "/invoices", body, 9)

	if err := NewInvoiceHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp invoiceWithDetailsResponse
	decodeBody(t, rec, &resp)
	if resp.Total != 2580000 {
		t.Fatalf("expected total 2580000, got %v", resp.Total)
	}
	if resp.RentedRoom == nil || resp.Room == nil || resp.Room.RoomID != 3 {
		t.Fatalf("expected contract and room details: %s", rec.Body.String())
	}
}

func TestInvoiceHandler_Create_NegativeCharge(t *testing.T) {
	body := `{"rr_id":11,"price":-1,"due_date":"2025-02-01T00:00:00Z"}`
	c, _ := newTestContext(http.MethodPost, "/invoices", body, 9)

	err := NewInvoiceHandler(&stubBillingService{}).Create(c)
	expectHTTPError(t, err, http.StatusUnprocessableEntity)
}

func TestInvoiceHandler_List_Filters(t *testing.T) {
	stub := &stubBillingService{
		listFn: func(ctx context.Context, ownerID uint, q ports.InvoiceQuery) ([]domain.Invoice, error) {
			if q.Month != "2025-01" {
				t.Fatalf("month not forwarded: %q", q.Month)
			}
			if q.HouseID == nil || *q.HouseID != 2 {
				t.Fatalf("house filter not parsed: %+v", q.HouseID)
			}
			if q.RoomID != nil {
				t.Fatalf("room filter should be unset")
			}
			if q.IsPaid == nil || *q.IsPaid {
				t.Fatalf("is_paid=false not parsed: %+v", q.IsPaid)
			}
			return []domain.Invoice{{ID: 1}}, nil
		},
	}
	c, rec := newTestContext(http.MethodGet, "/invoices?month=2025-01&house_id=2&is_paid=false", "", 9)

	if err := NewInvoiceHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp []invoiceWithDetailsResponse
	decodeBody(t, rec, &resp)
	if len(resp) != 1 {
		t.Fatalf("expected one invoice, got %d", len(resp))
	}
}

func TestInvoiceHandler_List_BadFilter(t *testing.T) {
	c, _ := newTestContext(http.MethodGet, "/invoices?is_paid=maybe", "", 9)

	err := NewInvoiceHandler(&stubBillingService{}).List(c)
	expectHTTPError(t, err, http.StatusBadRequest)
}

func TestInvoiceHandler_Pay_NotFound(t *testing.T) {
	stub := &stubBillingService{
		payFn: func(ctx context.Context, ownerID, invoiceID uint) (*domain.Invoice, error) {
			return nil, domain.ErrInvoiceNotFound
		},
	}
	c, _ := newTestContext(http.MethodPost, "/invoices/7/pay", "", 9)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := NewInvoiceHandler(stub).Pay(c); err != domain.ErrInvoiceNotFound {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
}
