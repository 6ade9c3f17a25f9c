package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/rentaldesk/rental-api/internal/core/domain"
	"github.com/rentaldesk/rental-api/internal/core/ports"
)

func TestParseRequestDate(t *testing.T) {
	cases := map[string]time.Time{
		"2025-01-02":                time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		"2025-01-02T15:04:05":       time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC),
		"2025-01-02T15:04:05Z":      time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC),
		"2025-01-02T22:04:05+07:00": time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC),
	}
	for in, want := range cases {
		got, err := parseRequestDate(in)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if !got.Equal(want) || got.Location() != time.UTC {
			t.Errorf("%q: got %v, want %v", in, got, want)
		}
	}

	for _, bad := range []string{"", "02/01/2025", "2025-13-01", "2025-01-02 15:04"} {
		if _, err := parseRequestDate(bad); err == nil {
			t.Errorf("%q should not parse", bad)
		}
	}
}

func TestRentalHandler_Create_DateFormats(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	formats := map[string][2]string{
		"date only": {"2025-01-01", "2025-12-31"},
		"no zone":   {"2025-01-01T00:00:00", "2025-12-31T00:00:00"},
		"rfc3339":   {"2025-01-01T07:00:00+07:00", "2025-12-31T00:00:00Z"},
	}
	for name, dates := range formats {
		t.Run(name, func(t *testing.T) {
			stub := &stubTenancyService{
				createFn: func(ctx context.Context, ownerID uint, in ports.CreateContractInput) (*ports.ContractResult, error) {
					if !in.StartDate.Equal(start) || !in.EndDate.Equal(end) {
						t.Fatalf("unexpected dates %v - %v", in.StartDate, in.EndDate)
					}
					if in.StartDate.Location() != time.UTC {
						t.Fatalf("start date not UTC: %v", in.StartDate.Location())
					}
					return &ports.ContractResult{Contract: &domain.RentedRoom{ID: 11, RoomID: 3, StartDate: in.StartDate, EndDate: in.EndDate}}, nil
				},
			}
			body := fmt.Sprintf(`{"room_id":3,"tenant_name":"Binh","tenant_phone":"0901234567","number_of_tenants":1,
				"start_date":%q,"end_date":%q}`, dates[0], dates[1])
			c, rec := newTestContext(http.MethodPost, "/rented-rooms", body, 9)

			if err := NewRentalHandler(stub).Create(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusCreated {
				t.Fatalf("expected 201, got %d", rec.Code)
			}
		})
	}
}

func TestRentalHandler_Create_BadDate(t *testing.T) {
	body := `{"room_id":3,"tenant_name":"Binh","tenant_phone":"0901234567","number_of_tenants":1,
		"start_date":"01/01/2025","end_date":"2025-12-31"}`
	c, _ := newTestContext(http.MethodPost, "/rented-rooms", body, 9)

	err := NewRentalHandler(&stubTenancyService{}).Create(c)
	expectHTTPError(t, err, http.StatusBadRequest)
}

func TestRentalHandler_Create_MissingDate(t *testing.T) {
	body := `{"room_id":3,"tenant_name":"Binh","tenant_phone":"0901234567","number_of_tenants":1,
		"end_date":"2025-12-31"}`
	c, _ := newTestContext(http.MethodPost, "/rented-rooms", body, 9)

	err := NewRentalHandler(&stubTenancyService{}).Create(c)
	expectHTTPError(t, err, http.StatusUnprocessableEntity)
}

func TestInvoiceHandler_Create_DateFormats(t *testing.T) {
	due := time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC)
	paid := time.Date(2025, 2, 3, 10, 30, 0, 0, time.UTC)
	formats := map[string][2]string{
		"date only": {"2025-02-05", "2025-02-03T10:30:00Z"},
		"no zone":   {"2025-02-05T00:00:00", "2025-02-03T10:30:00"},
		"rfc3339":   {"2025-02-05T00:00:00Z", "2025-02-03T17:30:00+07:00"},
	}
	for name, dates := range formats {
		t.Run(name, func(t *testing.T) {
			stub := &stubBillingService{
				createFn: func(ctx context.Context, ownerID uint, in ports.CreateInvoiceInput) (*ports.InvoiceResult, error) {
					if !in.DueDate.Equal(due) || in.DueDate.Location() != time.UTC {
						t.Fatalf("unexpected due date %v", in.DueDate)
					}
					if in.PaymentDate == nil || !in.PaymentDate.Equal(paid) {
						t.Fatalf("unexpected payment date %v", in.PaymentDate)
					}
					return &ports.InvoiceResult{Invoice: &domain.Invoice{ID: 5, RentedRoomID: 11, DueDate: in.DueDate}}, nil
				},
			}
			body := fmt.Sprintf(`{"rr_id":11,"price":2500000,"due_date":%q,"payment_date":%q}`, dates[0], dates[1])
			c, rec := newTestContext(http.MethodPost, "/invoices", body, 9)

			if err := NewInvoiceHandler(stub).Create(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusCreated {
				t.Fatalf("expected 201, got %d", rec.Code)
			}
		})
	}
}

func TestInvoiceHandler_Update_DateOnly(t *testing.T) {
	due := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	stub := &stubBillingService{
		updateFn: func(ctx context.Context, ownerID, invoiceID uint, patch ports.InvoicePatch) (*domain.Invoice, error) {
			if patch.DueDate == nil || !patch.DueDate.Equal(due) {
				t.Fatalf("unexpected due date %v", patch.DueDate)
			}
			if patch.PaymentDate != nil {
				t.Fatalf("absent payment date must stay nil, got %v", patch.PaymentDate)
			}
			return &domain.Invoice{ID: invoiceID, DueDate: *patch.DueDate}, nil
		},
	}
	c, rec := newTestContext(http.MethodPut, "/invoices/5", `{"due_date":"2025-03-01"}`, 9)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := NewInvoiceHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
