package ports

import (
	"context"
	"time"

	"github.com/rentaldesk/rental-api/internal/core/domain"
)

// ReportRepository serves owner-scoped read models for reporting.
type ReportRepository interface {
	// PaidInvoices returns paid invoices with payment_date in [from, until).
	PaidInvoices(ctx context.Context, ownerID uint, from, until time.Time) ([]domain.Invoice, error)
	// CountUnpaidDue counts unpaid invoices with due_date in [from, until).
	CountUnpaidDue(ctx context.Context, ownerID uint, from, until time.Time) (int64, error)
	Overview(ctx context.Context, ownerID uint) (domain.OverviewCounts, error)
}

type ReportService interface {
	RevenueStats(ctx context.Context, ownerID uint, period domain.DateRange) (*domain.RevenueStats, error)
	SystemOverview(ctx context.Context, ownerID uint) (*domain.SystemOverview, error)
}

// TextGenerator turns a prompt into generated text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type RevenueReportService interface {
	// Generate never fails on generator errors; they are rendered into the report text.
	Generate(ctx context.Context, ownerID uint, period domain.DateRange) (*domain.RevenueReport, error)
}
