package domain

import "time"

// DateRange is a closed range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Bounds returns the half-open instant range [start of Start, start of the
// day after End) in UTC, so End is included as a whole day.
func (r DateRange) Bounds() (from, until time.Time, err error) {
	from = truncateDay(r.Start)
	until = truncateDay(r.End).AddDate(0, 0, 1)
	if truncateDay(r.End).Before(from) {
		return time.Time{}, time.Time{}, Validation("start date must be before end date")
	}
	return from, until, nil
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RevenueStats aggregates paid revenue for one owner over a date range.
type RevenueStats struct {
	TotalRevenue          float64   `json:"total_revenue"`
	PaidInvoicesCount     int64     `json:"paid_invoices_count"`
	PendingInvoicesCount  int64     `json:"pending_invoices_count"`
	AverageMonthlyRevenue float64   `json:"average_monthly_revenue"`
	StartDate             time.Time `json:"start_date"`
	EndDate               time.Time `json:"end_date"`
}

// OverviewCounts are the raw counters behind a SystemOverview.
type OverviewCounts struct {
	Houses          int64
	Rooms           int64
	AvailableRooms  int64
	OccupiedRooms   int64
	ActiveContracts int64
	PendingInvoices int64
}

// SystemOverview is a point-in-time snapshot of an owner's portfolio.
type SystemOverview struct {
	TotalHouses         int64     `json:"total_houses"`
	TotalRooms          int64     `json:"total_rooms"`
	AvailableRooms      int64     `json:"available_rooms"`
	OccupiedRooms       int64     `json:"occupied_rooms"`
	ActiveContracts     int64     `json:"active_contracts"`
	PendingInvoices     int64     `json:"pending_invoices"`
	CurrentMonthRevenue float64   `json:"current_month_revenue"`
	OccupancyRate       float64   `json:"occupancy_rate"`
	GeneratedAt         time.Time `json:"generated_at"`
}

// RevenueReport is the narrative produced by the text generator.
type RevenueReport struct {
	Report    string    `json:"report"`
	Period    string    `json:"period"`
	Timestamp time.Time `json:"timestamp"`
	// Degraded is set when Report holds the generator's error instead of a narrative.
	Degraded bool `json:"-"`
}
