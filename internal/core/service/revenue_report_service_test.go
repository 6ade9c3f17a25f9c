package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/rentaldesk/rental-api/internal/core/domain"
)

type generatorStub struct {
	text   string
	err    error
	prompt string
}

func (g *generatorStub) Generate(_ context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.text, g.err
}

func newRevenueReport(gen *generatorStub) *RevenueReportService {
	repo := &reportRepoStub{
		paid: []domain.Invoice{
			paidOn(day(2025, 1, 10), 2_000_000),
			paidOn(day(2025, 1, 15), 1_000_000),
		},
		pending: 1,
	}
	svc := NewRevenueReportService(NewReportService(repo), gen, zerolog.Nop())
	svc.now = func() time.Time { return day(2025, 2, 1) }
	return svc
}

func TestRevenueReport_Generated(t *testing.T) {
	gen := &generatorStub{text: "```markdown\n## 📊 REVENUE ANALYSIS\n• good month\n```"}
	svc := newRevenueReport(gen)

	rep, err := svc.Generate(context.Background(), ownerA, domain.DateRange{Start: day(2025, 1, 1), End: day(2025, 1, 31)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Degraded {
		t.Errorf("report should not be degraded")
	}
	if rep.Report != "## REVENUE ANALYSIS\n- good month" {
		t.Errorf("unexpected report %q", rep.Report)
	}
	if rep.Period != "2025-01-01 to 2025-01-31" {
		t.Errorf("unexpected period %q", rep.Period)
	}

	for _, want := range []string{
		"**Total revenue:** 3,000,000 VND",
		"**Payment rate:** 66.7%",
		"**Number of invoices:** 3",
		"**Average invoice value:** 1,000,000 VND",
		"2025-01-01 - 2025-01-31",
	} {
		if !strings.Contains(gen.prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestRevenueReport_GeneratorFailureDegrades(t *testing.T) {
	gen := &generatorStub{err: errors.New("quota exceeded")}
	svc := newRevenueReport(gen)

	rep, err := svc.Generate(context.Background(), ownerA, domain.DateRange{Start: day(2025, 1, 1), End: day(2025, 1, 31)})
	if err != nil {
		t.Fatalf("generator failures must not fail the request, got %v", err)
	}
	if !rep.Degraded {
		t.Errorf("expected degraded report")
	}
	if rep.Report != "Unable to generate revenue report: quota exceeded" {
		t.Errorf("unexpected report %q", rep.Report)
	}
}

func TestRevenueReport_InvalidRange(t *testing.T) {
	gen := &generatorStub{text: "unused"}
	svc := newRevenueReport(gen)

	_, err := svc.Generate(context.Background(), ownerA, domain.DateRange{Start: day(2025, 2, 1), End: day(2025, 1, 1)})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if gen.prompt != "" {
		t.Errorf("generator must not be called")
	}
}

func TestBuildRevenuePrompt_NoInvoices(t *testing.T) {
	prompt := buildRevenuePrompt(&domain.RevenueStats{StartDate: day(2025, 1, 1), EndDate: day(2025, 1, 31)})

	if !strings.Contains(prompt, "**Payment rate:** 0.0%") || !strings.Contains(prompt, "**Average invoice value:** 0 VND") {
		t.Errorf("expected zero metrics, got:\n%s", prompt)
	}
}

func TestGroupThousands(t *testing.T) {
	tests := map[string]string{
		"0":          "0",
		"999":        "999",
		"1000":       "1,000",
		"2500000":    "2,500,000",
		"1234567.6":  "1,234,568",
		"-4500":      "-4,500",
		"1000000000": "1,000,000,000",
	}
	for in, want := range tests {
		if got := groupThousands(decimal.RequireFromString(in)); got != want {
			t.Errorf("groupThousands(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestSanitizeMarkdown(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"empty", "", ""},
		{"strips fences", "```\n## A\n```", "## A"},
		{"normalises bullets", "• one\n— two\n-three", "- one\n- two\n- three"},
		{"drops decorative rules", "## A\n-----\n- x", "## A\n- x"},
		{"strips leading emoji", "## 💡 TIPS\n- ✅ done", "## TIPS\n- done"},
		{"collapses blank lines", "## A\n\n\n\n- x", "## A\n\n- x"},
		{"crlf", "## A\r\n- x\r\n", "## A\n- x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeMarkdown(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
