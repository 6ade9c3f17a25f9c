package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentaldesk/rental-api/internal/core/domain"
	"github.com/rentaldesk/rental-api/internal/core/ports"
)

// ReportService computes owner-scoped revenue and portfolio aggregates.
type ReportService struct {
	repo ports.ReportRepository
	now  func() time.Time
}

func NewReportService(repo ports.ReportRepository) *ReportService {
	return &ReportService{repo: repo, now: time.Now}
}

// RevenueStats sums paid invoices whose payment date falls on a day in the
// period, end day included.
func (s *ReportService) RevenueStats(ctx context.Context, ownerID uint, period domain.DateRange) (*domain.RevenueStats, error) {
	from, until, err := period.Bounds()
	if err != nil {
		return nil, err
	}

	paid, err := s.repo.PaidInvoices(ctx, ownerID, from, until)
	if err != nil {
		return nil, err
	}
	pending, err := s.repo.CountUnpaidDue(ctx, ownerID, from, until)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	monthly := make(map[string]decimal.Decimal)
	for i := range paid {
		amount := paid[i].Total()
		total = total.Add(amount)
		if paid[i].PaymentDate != nil {
			month := paid[i].PaymentDate.UTC().Format("2006-01")
			monthly[month] = monthly[month].Add(amount)
		}
	}

	avg := decimal.Zero
	if len(monthly) > 0 {
		sum := decimal.Zero
		for _, v := range monthly {
			sum = sum.Add(v)
		}
		avg = sum.Div(decimal.NewFromInt(int64(len(monthly))))
	}

	return &domain.RevenueStats{
		TotalRevenue:          total.InexactFloat64(),
		PaidInvoicesCount:     int64(len(paid)),
		PendingInvoicesCount:  pending,
		AverageMonthlyRevenue: avg.InexactFloat64(),
		StartDate:             from,
		EndDate:               until.AddDate(0, 0, -1),
	}, nil
}

// SystemOverview snapshots the owner's portfolio at the current instant.
func (s *ReportService) SystemOverview(ctx context.Context, ownerID uint) (*domain.SystemOverview, error) {
	counts, err := s.repo.Overview(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	paid, err := s.repo.PaidInvoices(ctx, ownerID, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	revenue := decimal.Zero
	for i := range paid {
		revenue = revenue.Add(paid[i].Total())
	}

	return &domain.SystemOverview{
		TotalHouses:         counts.Houses,
		TotalRooms:          counts.Rooms,
		AvailableRooms:      counts.AvailableRooms,
		OccupiedRooms:       counts.OccupiedRooms,
		ActiveContracts:     counts.ActiveContracts,
		PendingInvoices:     counts.PendingInvoices,
		CurrentMonthRevenue: revenue.InexactFloat64(),
		OccupancyRate:       occupancyRate(counts.OccupiedRooms, counts.Rooms),
		GeneratedAt:         now,
	}, nil
}

// occupancyRate is occupied/total as a percentage rounded to 2 decimals, 0
// without rooms.
func occupancyRate(occupied, total int64) float64 {
	if total == 0 {
		return 0
	}
	return decimal.NewFromInt(occupied).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(total)).
		Round(2).
		InexactFloat64()
}
