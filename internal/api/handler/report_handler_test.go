package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/rentaldesk/rental-api/internal/core/domain"
	"github.com/rentaldesk/rental-api/internal/core/ports"
)

type stubReportService struct {
	ports.ReportService
	statsFn func(ctx context.Context, ownerID uint, period domain.DateRange) (*domain.RevenueStats, error)
}

func (s *stubReportService) RevenueStats(ctx context.Context, ownerID uint, period domain.DateRange) (*domain.RevenueStats, error) {
	return s.statsFn(ctx, ownerID, period)
}

type stubRevenueReport struct {
	report *domain.RevenueReport
}

func (s *stubRevenueReport) Generate(ctx context.Context, ownerID uint, period domain.DateRange) (*domain.RevenueReport, error) {
	return s.report, nil
}

func TestReportHandler_RevenueStats(t *testing.T) {
	stub := &stubReportService{
		statsFn: func(ctx context.Context, ownerID uint, period domain.DateRange) (*domain.RevenueStats, error) {
			want := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
			if !period.Start.Equal(want) || period.End.Day() != 31 {
				t.Fatalf("unexpected period: %+v", period)
			}
			return &domain.RevenueStats{
				TotalRevenue:          5000000,
				PaidInvoicesCount:     2,
				PendingInvoicesCount:  1,
				AverageMonthlyRevenue: 5000000,
			}, nil
		},
	}
	c, rec := newTestContext(http.MethodPost, "/reports/revenue-stats", `{"start_date":"2025-01-01","end_date":"2025-01-31"}`, 9)

	if err := NewReportHandler(stub, nil).RevenueStats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]any
	decodeBody(t, rec, &resp)
	if resp["total_revenue"] != float64(5000000) || resp["paid_invoices"] != float64(2) || resp["pending_invoices"] != float64(1) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, ok := resp["avg_monthly_revenue"]; !ok {
		t.Fatalf("avg_monthly_revenue missing: %+v", resp)
	}
}

func TestReportHandler_RevenueStats_BadDate(t *testing.T) {
	c, _ := newTestContext(http.MethodPost, "/reports/revenue-stats", `{"start_date":"01/01/2025","end_date":"2025-01-31"}`, 9)

	err := NewReportHandler(&stubReportService{}, nil).RevenueStats(c)
	expectHTTPError(t, err, http.StatusUnprocessableEntity)
}

func TestReportHandler_RevenueStats_ReversedRange(t *testing.T) {
	stub := &stubReportService{
		statsFn: func(ctx context.Context, ownerID uint, period domain.DateRange) (*domain.RevenueStats, error) {
			_, _, err := period.Bounds()
			return nil, err
		},
	}
	c, _ := newTestContext(http.MethodPost, "/reports/revenue-stats", `{"start_date":"2025-02-01","end_date":"2025-01-01"}`, 9)

	err := NewReportHandler(stub, nil).RevenueStats(c)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestReportHandler_RevenueReport_Degraded(t *testing.T) {
	ai := &stubRevenueReport{report: &domain.RevenueReport{
		Report:   "Unable to generate revenue report: text generation is not configured",
		Period:   "2025-01-01 to 2025-01-31",
		Degraded: true,
	}}
	c, rec := newTestContext(http.MethodPost, "/ai/generate-revenue-report", `{"start_date":"2025-01-01","end_date":"2025-01-31"}`, 9)

	if err := NewReportHandler(nil, ai).RevenueReport(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	decodeBody(t, rec, &resp)
	if resp["report"] != ai.report.Report || resp["period"] != ai.report.Period {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, leaked := resp["Degraded"]; leaked {
		t.Fatalf("internal flag leaked: %+v", resp)
	}
}
