// Package monthsum builds the monthly financial summary for one user: income
// and expense totals, per-budget utilization, and the top spending
// categories. It is a pure read over the ledger and budget stores; nothing is
// persisted.
package monthsum

import (
	"fmt"
	"sort"
	"time"

	"github.com/Brundha-2004/smartspend/models"

	"github.com/shopspring/decimal"
)

// TopCategoryLimit caps the category ranking in the report.
const TopCategoryLimit = 5

// Ledger reads transaction state.
type Ledger interface {
	TransactionsInRange(userID uint, start, end time.Time) ([]models.Transaction, error)
	ExpenseTotal(userID uint, category models.Category, month, year int) (decimal.Decimal, error)
}

// Budgets reads budget caps for one calendar month.
type Budgets interface {
	BudgetsForPeriod(userID uint, month, year int) ([]models.Budget, error)
}

// BudgetStatus is the derived utilization of one budget. Never persisted.
type BudgetStatus struct {
	Category    models.Category `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Spent       decimal.Decimal `json:"spent"`
	Utilization float64         `json:"utilization"`
}

// CategorySpending is one row of the category ranking.
type CategorySpending struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
}

// Report is the assembled monthly summary.
type Report struct {
	Month          int                `json:"month"`
	Year           int                `json:"year"`
	TotalIncome    decimal.Decimal    `json:"total_income"`
	TotalExpenses  decimal.Decimal    `json:"total_expenses"`
	NetSavings     decimal.Decimal    `json:"net_savings"`
	BudgetStatuses []BudgetStatus     `json:"budget_statuses"`
	TopCategories  []CategorySpending `json:"top_categories"`
}

// PeriodBounds returns the first and last calendar day of (year, month).
// time.Date normalizes day 0 of the next month to the month's last day, so
// variable month lengths and leap-year February need no special casing.
func PeriodBounds(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return start, end
}

// Aggregator computes summary reports from injected readers.
type Aggregator struct {
	ledger  Ledger
	budgets Budgets
}

func New(ledger Ledger, budgets Budgets) *Aggregator {
	return &Aggregator{ledger: ledger, budgets: budgets}
}

// Summarize assembles the report for one user and month.
func (a *Aggregator) Summarize(userID uint, month, year int) (*Report, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month out of range: %d", month)
	}
	start, end := PeriodBounds(month, year)

	transactions, err := a.ledger.TransactionsInRange(userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}

	report := &Report{
		Month:          month,
		Year:           year,
		TotalIncome:    decimal.Zero,
		TotalExpenses:  decimal.Zero,
		BudgetStatuses: []BudgetStatus{},
		TopCategories:  []CategorySpending{},
	}

	spentByCategory := make(map[models.Category]decimal.Decimal)
	for _, tx := range transactions {
		switch tx.Type {
		case models.TypeIncome:
			report.TotalIncome = report.TotalIncome.Add(tx.Amount)
		case models.TypeExpense:
			report.TotalExpenses = report.TotalExpenses.Add(tx.Amount)
			spentByCategory[tx.Category] = spentByCategory[tx.Category].Add(tx.Amount)
		}
	}
	report.NetSavings = report.TotalIncome.Sub(report.TotalExpenses)

	budgets, err := a.budgets.BudgetsForPeriod(userID, month, year)
	if err != nil {
		return nil, fmt.Errorf("load budgets: %w", err)
	}
	for _, budget := range budgets {
		spent, err := a.ledger.ExpenseTotal(userID, budget.Category, month, year)
		if err != nil {
			return nil, fmt.Errorf("expense total for %s: %w", budget.Category, err)
		}
		utilization := 0.0
		if !budget.Amount.IsZero() {
			utilization = spent.Mul(decimal.NewFromInt(100)).Div(budget.Amount).InexactFloat64()
		}
		report.BudgetStatuses = append(report.BudgetStatuses, BudgetStatus{
			Category:    budget.Category,
			Amount:      budget.Amount,
			Spent:       spent,
			Utilization: utilization,
		})
	}

	report.TopCategories = rankCategories(spentByCategory, report.TotalExpenses)
	return report, nil
}

// rankCategories orders per-category expense sums descending by amount and
// truncates to TopCategoryLimit. Ties break on category name so the ranking
// is deterministic. Shares are 0 when the period has no expense spend.
func rankCategories(spent map[models.Category]decimal.Decimal, total decimal.Decimal) []CategorySpending {
	ranked := make([]CategorySpending, 0, len(spent))
	for category, amount := range spent {
		percentage := 0.0
		if total.IsPositive() {
			percentage = amount.Mul(decimal.NewFromInt(100)).Div(total).InexactFloat64()
		}
		ranked = append(ranked, CategorySpending{
			Name:       string(category),
			Amount:     amount,
			Percentage: percentage,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].Amount.Equal(ranked[j].Amount) {
			return ranked[i].Amount.GreaterThan(ranked[j].Amount)
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > TopCategoryLimit {
		ranked = ranked[:TopCategoryLimit]
	}
	return ranked
}

// ExceededCount reports how many budgets in the report sit at or above their
// cap. Used by the summary email template.
func (r *Report) ExceededCount() int {
	n := 0
	for _, status := range r.BudgetStatuses {
		if status.Utilization >= 100 {
			n++
		}
	}
	return n
}
