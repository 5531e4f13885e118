package mailer

import (
	"strings"
	"testing"

	"github.com/Brundha-2004/smartspend/pkg/monthsum"

	"github.com/shopspring/decimal"
)

func newDisabled(t *testing.T) *Mailer {
	m, err := New(Config{Enabled: false, BaseURL: "http://localhost:8082"})
	if err != nil {
		t.Fatalf("new mailer: %v", err)
	}
	return m
}

func TestTemplatesParse(t *testing.T) {
	m := newDisabled(t)
	for _, name := range []string{"verification.html", "budget_warning.html", "budget_exceeded.html", "monthly_summary.html"} {
		if m.tmpl.Lookup(name) == nil {
			t.Fatalf("template %s missing", name)
		}
	}
}

func TestDisabledSendsAreNoops(t *testing.T) {
	m := newDisabled(t)
	if err := m.SendVerification("u@example.com", "tok"); err != nil {
		t.Fatalf("verification: %v", err)
	}
	if err := m.SendBudgetWarning("u@example.com", "FOOD", decimal.NewFromInt(100), 85); err != nil {
		t.Fatalf("warning: %v", err)
	}
	if err := m.SendBudgetExceeded("u@example.com", "FOOD", decimal.NewFromInt(100), 150); err != nil {
		t.Fatalf("exceeded: %v", err)
	}
	report := &monthsum.Report{Month: 6, Year: 2024}
	if err := m.SendMonthlySummary("u@example.com", report); err != nil {
		t.Fatalf("summary: %v", err)
	}
}

func TestSummaryTemplateRenders(t *testing.T) {
	m := newDisabled(t)
	report := &monthsum.Report{
		Month:         6,
		Year:          2024,
		TotalIncome:   decimal.NewFromInt(3000),
		TotalExpenses: decimal.NewFromInt(500),
		NetSavings:    decimal.NewFromInt(2500),
		BudgetStatuses: []monthsum.BudgetStatus{
			{Category: "FOOD", Amount: decimal.NewFromInt(100), Spent: decimal.NewFromInt(150), Utilization: 150},
		},
		TopCategories: []monthsum.CategorySpending{
			{Name: "FOOD", Amount: decimal.NewFromInt(150), Percentage: 100},
		},
	}
	var out strings.Builder
	err := m.tmpl.ExecuteTemplate(&out, "monthly_summary.html", map[string]any{
		"Report":          report,
		"ExceededBudgets": report.ExceededCount(),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := out.String()
	for _, want := range []string{"6/2024", "FOOD", "150.00%", "1 exceeded"} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered summary missing %q:\n%s", want, html)
		}
	}
}
