package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rentaldesk/rental-api/internal/api/metrics"
	"github.com/rentaldesk/rental-api/internal/core/domain"
	"github.com/rentaldesk/rental-api/internal/core/ports"
)

const dateLayout = "2006-01-02"

// periodRequest is an inclusive range of calendar days.
type periodRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
}

func (r periodRequest) toRange() domain.DateRange {
	// Both fields passed the datetime validator.
	start, _ := time.Parse(dateLayout, r.StartDate)
	end, _ := time.Parse(dateLayout, r.EndDate)
	return domain.DateRange{Start: start, End: end}
}

type revenueStatsResponse struct {
	TotalRevenue      float64 `json:"total_revenue"`
	PaidInvoices      int64   `json:"paid_invoices"`
	PendingInvoices   int64   `json:"pending_invoices"`
	AvgMonthlyRevenue float64 `json:"avg_monthly_revenue"`
}

type revenueReportResponse struct {
	Report    string    `json:"report"`
	Period    string    `json:"period"`
	Timestamp time.Time `json:"timestamp"`
}

// ReportHandler serves /reports and /ai.
type ReportHandler struct {
	reports ports.ReportService
	ai      ports.RevenueReportService
}

func NewReportHandler(reports ports.ReportService, ai ports.RevenueReportService) *ReportHandler {
	return &ReportHandler{reports: reports, ai: ai}
}

// RevenueStats handles POST /reports/revenue-stats.
//
// @Summary      Revenue statistics for a period
// @Description  Paid revenue with payment date inside the period, end day included.
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      periodRequest  true  "Reporting period"
// @Success      200   {object}  revenueStatsResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /reports/revenue-stats [post]
func (h *ReportHandler) RevenueStats(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	var req periodRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	stats, err := h.reports.RevenueStats(c.Request().Context(), oid, req.toRange())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, revenueStatsResponse{
		TotalRevenue:      stats.TotalRevenue,
		PaidInvoices:      stats.PaidInvoicesCount,
		PendingInvoices:   stats.PendingInvoicesCount,
		AvgMonthlyRevenue: stats.AverageMonthlyRevenue,
	})
}

// SystemOverview handles GET /reports/system-overview.
//
// @Summary      Portfolio snapshot
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.SystemOverview
// @Router       /reports/system-overview [get]
func (h *ReportHandler) SystemOverview(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	overview, err := h.reports.SystemOverview(c.Request().Context(), oid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}

// RevenueReport handles POST /ai/generate-revenue-report. Generator failures
// are reported inside the text with a 200.
//
// @Summary      Narrative revenue report
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      periodRequest  true  "Reporting period"
// @Success      200   {object}  revenueReportResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /ai/generate-revenue-report [post]
func (h *ReportHandler) RevenueReport(c echo.Context) error {
	oid, err := ownerID(c)
	if err != nil {
		return err
	}
	var req periodRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	report, err := h.ai.Generate(c.Request().Context(), oid, req.toRange())
	if err != nil {
		return err
	}
	result := "ok"
	if report.Degraded {
		result = "degraded"
	}
	metrics.AIReportsTotal.WithLabelValues(result).Inc()

	return c.JSON(http.StatusOK, revenueReportResponse{
		Report:    report.Report,
		Period:    report.Period,
		Timestamp: report.Timestamp,
	})
}
