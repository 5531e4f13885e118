package monthsum

import (
	"errors"
	"testing"
	"time"

	"github.com/Brundha-2004/smartspend/models"

	"github.com/shopspring/decimal"
)

type fakeLedger struct {
	transactions []models.Transaction
	err          error
}

func (f *fakeLedger) TransactionsInRange(userID uint, start, end time.Time) ([]models.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Transaction
	for _, tx := range f.transactions {
		if tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

func (f *fakeLedger) ExpenseTotal(userID uint, category models.Category, month, year int) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}
	total := decimal.Zero
	for _, tx := range f.transactions {
		if tx.Type == models.TypeExpense && tx.Category == category &&
			int(tx.Date.Month()) == month && tx.Date.Year() == year {
			total = total.Add(tx.Amount)
		}
	}
	return total, nil
}

type fakeBudgets struct {
	budgets []models.Budget
	err     error
}

func (f *fakeBudgets) BudgetsForPeriod(userID uint, month, year int) ([]models.Budget, error) {
	return f.budgets, f.err
}

func tx(typ models.TransactionType, category models.Category, amount int64, day int) models.Transaction {
	return models.Transaction{
		UserID:   3,
		Amount:   decimal.NewFromInt(amount),
		Category: category,
		Type:     typ,
		Date:     time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC),
	}
}

func TestPeriodBounds(t *testing.T) {
	cases := []struct {
		month, year int
		lastDay     int
	}{
		{6, 2024, 30},
		{12, 2023, 31},
		{2, 2024, 29}, // leap year
		{2, 2023, 28},
	}
	for _, c := range cases {
		start, end := PeriodBounds(c.month, c.year)
		if start.Day() != 1 || int(start.Month()) != c.month || start.Year() != c.year {
			t.Fatalf("bad start %v for %d/%d", start, c.month, c.year)
		}
		if end.Day() != c.lastDay || int(end.Month()) != c.month {
			t.Fatalf("bad end %v for %d/%d, want day %d", end, c.month, c.year, c.lastDay)
		}
	}
}

func TestSummarizeTotalsAndNetSavings(t *testing.T) {
	ledger := &fakeLedger{transactions: []models.Transaction{
		tx(models.TypeIncome, models.CategorySalary, 3000, 1),
		tx(models.TypeExpense, models.CategoryFood, 400, 5),
		tx(models.TypeExpense, models.CategoryTransport, 100, 9),
	}}
	a := New(ledger, &fakeBudgets{})
	report, err := a.Summarize(3, 6, 2024)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if !report.TotalIncome.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("total income = %s", report.TotalIncome)
	}
	if !report.TotalExpenses.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("total expenses = %s", report.TotalExpenses)
	}
	if !report.NetSavings.Equal(decimal.NewFromInt(2500)) {
		t.Fatalf("net savings = %s", report.NetSavings)
	}
}

func TestSummarizeBudgetStatuses(t *testing.T) {
	ledger := &fakeLedger{transactions: []models.Transaction{
		tx(models.TypeExpense, models.CategoryFood, 85, 10),
		tx(models.TypeExpense, models.CategoryTransport, 20, 11),
	}}
	budgets := &fakeBudgets{budgets: []models.Budget{
		{ID: 1, UserID: 3, Category: models.CategoryFood, Month: 6, Year: 2024, Amount: decimal.NewFromInt(100)},
		{ID: 2, UserID: 3, Category: models.CategoryTransport, Month: 6, Year: 2024, Amount: decimal.Zero},
	}}
	a := New(ledger, budgets)
	report, err := a.Summarize(3, 6, 2024)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if len(report.BudgetStatuses) != 2 {
		t.Fatalf("expected 2 budget statuses, got %d", len(report.BudgetStatuses))
	}
	food := report.BudgetStatuses[0]
	if food.Utilization != 85 {
		t.Fatalf("food utilization = %v", food.Utilization)
	}
	transport := report.BudgetStatuses[1]
	if transport.Utilization != 0 {
		t.Fatalf("zero-cap budget must report 0 utilization, got %v", transport.Utilization)
	}
	if report.ExceededCount() != 0 {
		t.Fatalf("exceeded count = %d", report.ExceededCount())
	}
}

func TestSummarizeTopCategories(t *testing.T) {
	ledger := &fakeLedger{transactions: []models.Transaction{
		tx(models.TypeExpense, models.CategoryFood, 500, 1),
		tx(models.TypeExpense, models.CategoryTransport, 300, 2),
		tx(models.TypeExpense, models.CategoryShopping, 100, 3),
		tx(models.TypeExpense, models.CategoryHealth, 50, 4),
		tx(models.TypeExpense, models.CategoryTravel, 30, 5),
		tx(models.TypeExpense, models.CategoryUtilities, 20, 6),
		tx(models.TypeIncome, models.CategorySalary, 9000, 7),
	}}
	a := New(ledger, &fakeBudgets{})
	report, err := a.Summarize(3, 6, 2024)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if len(report.TopCategories) != TopCategoryLimit {
		t.Fatalf("expected top %d, got %d", TopCategoryLimit, len(report.TopCategories))
	}
	if report.TopCategories[0].Name != string(models.CategoryFood) {
		t.Fatalf("expected FOOD first, got %s", report.TopCategories[0].Name)
	}
	// UTILITIES (smallest) must be the truncated entry.
	for _, c := range report.TopCategories {
		if c.Name == string(models.CategoryUtilities) {
			t.Fatal("smallest category should have been truncated")
		}
	}
	sum := 0.0
	for _, c := range report.TopCategories {
		sum += c.Percentage
	}
	if sum > 100.0001 {
		t.Fatalf("percentages sum to %v, want <= 100", sum)
	}
}

func TestSummarizePercentagesCoverTotalWhenAllRanked(t *testing.T) {
	ledger := &fakeLedger{transactions: []models.Transaction{
		tx(models.TypeExpense, models.CategoryFood, 60, 1),
		tx(models.TypeExpense, models.CategoryTransport, 40, 2),
	}}
	a := New(ledger, &fakeBudgets{})
	report, err := a.Summarize(3, 6, 2024)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	sum := 0.0
	for _, c := range report.TopCategories {
		sum += c.Percentage
	}
	if sum < 99.9999 || sum > 100.0001 {
		t.Fatalf("percentages sum to %v, want 100", sum)
	}
}

func TestSummarizeEmptyMonth(t *testing.T) {
	a := New(&fakeLedger{}, &fakeBudgets{})
	report, err := a.Summarize(3, 2, 2024)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if !report.TotalIncome.IsZero() || !report.TotalExpenses.IsZero() || !report.NetSavings.IsZero() {
		t.Fatalf("expected zero totals, got %+v", report)
	}
	if len(report.BudgetStatuses) != 0 {
		t.Fatalf("expected no budget statuses, got %d", len(report.BudgetStatuses))
	}
	if len(report.TopCategories) != 0 {
		t.Fatalf("expected no top categories, got %d", len(report.TopCategories))
	}
}

func TestSummarizeRejectsBadMonth(t *testing.T) {
	a := New(&fakeLedger{}, &fakeBudgets{})
	for _, month := range []int{0, 13, -1} {
		if _, err := a.Summarize(3, month, 2024); err == nil {
			t.Fatalf("month %d should be rejected", month)
		}
	}
}

func TestSummarizePropagatesLedgerError(t *testing.T) {
	a := New(&fakeLedger{err: errors.New("db gone")}, &fakeBudgets{})
	if _, err := a.Summarize(3, 6, 2024); err == nil {
		t.Fatal("expected ledger error to surface")
	}
}
