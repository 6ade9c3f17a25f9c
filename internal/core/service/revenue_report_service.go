package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/rentaldesk/rental-api/internal/core/domain"
	"github.com/rentaldesk/rental-api/internal/core/ports"
)

const dayLayout = "2006-01-02"

// RevenueReportService asks a text generator to narrate revenue figures.
type RevenueReportService struct {
	reports   ports.ReportService
	generator ports.TextGenerator
	log       zerolog.Logger
	now       func() time.Time
}

func NewRevenueReportService(reports ports.ReportService, generator ports.TextGenerator, log zerolog.Logger) *RevenueReportService {
	return &RevenueReportService{reports: reports, generator: generator, log: log, now: time.Now}
}

// Generate builds the report. Generator failures become the report text so
// the request still succeeds.
func (s *RevenueReportService) Generate(ctx context.Context, ownerID uint, period domain.DateRange) (*domain.RevenueReport, error) {
	stats, err := s.reports.RevenueStats(ctx, ownerID, period)
	if err != nil {
		return nil, err
	}

	out := &domain.RevenueReport{
		Period:    stats.StartDate.Format(dayLayout) + " to " + stats.EndDate.Format(dayLayout),
		Timestamp: s.now().UTC(),
	}

	text, err := s.generator.Generate(ctx, buildRevenuePrompt(stats))
	if err != nil {
		s.log.Warn().Err(err).Uint("owner_id", ownerID).Msg("revenue report generation failed")
		out.Report = fmt.Sprintf("Unable to generate revenue report: %v", err)
		out.Degraded = true
		return out, nil
	}
	out.Report = sanitizeMarkdown(text)
	return out, nil
}

func buildRevenuePrompt(st *domain.RevenueStats) string {
	totalInvoices := st.PaidInvoicesCount + st.PendingInvoicesCount
	paymentRate := 0.0
	avgInvoice := decimal.Zero
	revenue := decimal.NewFromFloat(st.TotalRevenue)
	if totalInvoices > 0 {
		paymentRate = float64(st.PaidInvoicesCount) / float64(totalInvoices) * 100
		avgInvoice = revenue.Div(decimal.NewFromInt(totalInvoices))
	}

	var b strings.Builder
	b.WriteString("You are a revenue analyst for a rental property business. Answer in Markdown using exactly the layout below, with no emoji or decorative characters.\n\n")
	b.WriteString("## REVENUE ANALYSIS\n")
	fmt.Fprintf(&b, "- **Reporting period:** %s - %s\n\n", st.StartDate.Format(dayLayout), st.EndDate.Format(dayLayout))
	b.WriteString("## KEY METRICS\n")
	fmt.Fprintf(&b, "- **Total revenue:** %s VND\n", groupThousands(revenue))
	fmt.Fprintf(&b, "- **Payment rate:** %.1f%%\n", paymentRate)
	fmt.Fprintf(&b, "- **Number of invoices:** %d\n", totalInvoices)
	fmt.Fprintf(&b, "- **Average invoice value:** %s VND\n\n", groupThousands(avgInvoice))
	b.WriteString("## STRENGTHS\n- List at most 3 short points based on the data above.\n\n")
	b.WriteString("## ISSUES\n- List at most 3 short points focused on risks or weaknesses.\n\n")
	b.WriteString("## RECOMMENDATIONS\n- Give 3-4 concrete, actionable suggestions about the issues raised. Stay on topic.\n\n")
	b.WriteString("FORMAT RULES:\n")
	b.WriteString("- Use only '-' for bullets.\n")
	b.WriteString("- No extra blank lines and no code fences.\n")
	b.WriteString("- No introduction or conclusion sentences.\n")
	b.WriteString("- Each bullet at most 1-2 sentences and 120 characters.\n")
	return b.String()
}

// groupThousands renders a whole-number amount with comma separators.
func groupThousands(d decimal.Decimal) string {
	s := d.Round(0).String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

var (
	oddBullet      = regexp.MustCompile(`^[•—–]+\s*`)
	dashBullet     = regexp.MustCompile(`^-\s*`)
	decorativeRule = regexp.MustCompile(`^[-–—\s]+$`)
	headingEmoji   = regexp.MustCompile(`^(##\s*)[\x{2600}-\x{27BF}\x{1F300}-\x{1FAFF}]\s*`)
	bulletEmoji    = regexp.MustCompile(`^(-\s*)[\x{2600}-\x{27BF}\x{1F300}-\x{1FAFF}]\s*`)
	blankLineRuns  = regexp.MustCompile(`\n{3,}`)
)

// sanitizeMarkdown normalises generated Markdown: "- " bullets only, no code
// fences, no decorative rules, no leading emoji, at most one blank line.
func sanitizeMarkdown(content string) string {
	if content == "" {
		return content
	}
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		switch line {
		case "```", "```markdown", "```md":
			continue
		}
		line = oddBullet.ReplaceAllString(line, "- ")
		line = dashBullet.ReplaceAllString(line, "- ")
		if line != "" && decorativeRule.MatchString(line) {
			continue
		}
		line = headingEmoji.ReplaceAllString(line, "$1")
		line = bulletEmoji.ReplaceAllString(line, "$1")
		out = append(out, line)
	}
	text := strings.Join(out, "\n")
	text = blankLineRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
