// Package budgetalert decides, after each recorded expense, whether the
// owning user should be told that a monthly category budget is close to or
// over its cap.
package budgetalert

import (
	"fmt"
	"log"
	"sync"

	"github.com/Brundha-2004/smartspend/models"

	"github.com/shopspring/decimal"
)

// Utilization bands, in percent of the budget cap.
const (
	WarnThreshold   = 80.0
	ExceedThreshold = 100.0
)

// Store supplies the budget and accumulated spend for one user period.
type Store interface {
	// BudgetFor returns nil (and no error) when no budget exists.
	BudgetFor(userID uint, category models.Category, month, year int) (*models.Budget, error)
	// ExpenseTotal sums all EXPENSE amounts for the user/category/month/year.
	ExpenseTotal(userID uint, category models.Category, month, year int) (decimal.Decimal, error)
}

// Notifier dispatches the alert emails. Implementations may no-op.
type Notifier interface {
	SendBudgetWarning(to string, category string, amount decimal.Decimal, utilization float64) error
	SendBudgetExceeded(to string, category string, amount decimal.Decimal, utilization float64) error
}

type band int

const (
	bandNone band = iota
	bandWarning
	bandExceeded
)

type sentKey struct {
	budgetID uint
	b        band
}

// Evaluator re-checks category utilization on every qualifying expense write.
// With dedupe disabled (the default) every write inside a triggering band
// re-sends the notification; with dedupe enabled each (budget, band) pair
// notifies at most once per process lifetime.
type Evaluator struct {
	store    Store
	notifier Notifier
	dedupe   bool

	mu   sync.Mutex
	sent map[sentKey]struct{}
}

func New(store Store, notifier Notifier, dedupe bool) *Evaluator {
	return &Evaluator{
		store:    store,
		notifier: notifier,
		dedupe:   dedupe,
		sent:     make(map[sentKey]struct{}),
	}
}

// Evaluate runs after tx has been persisted, so the spend total already
// includes it. Notifier failures are logged and swallowed; only storage
// failures surface, and callers are expected to log those too rather than
// fail the originating write.
func (e *Evaluator) Evaluate(email string, tx *models.Transaction) error {
	if tx.Type != models.TypeExpense {
		return nil
	}
	month := int(tx.Date.Month())
	year := tx.Date.Year()

	budget, err := e.store.BudgetFor(tx.UserID, tx.Category, month, year)
	if err != nil {
		return fmt.Errorf("budget lookup: %w", err)
	}
	if budget == nil {
		return nil
	}
	if budget.Amount.IsZero() {
		return nil // a zero cap can never be utilized
	}

	totalSpent, err := e.store.ExpenseTotal(tx.UserID, tx.Category, month, year)
	if err != nil {
		return fmt.Errorf("expense total: %w", err)
	}

	utilization := totalSpent.Mul(decimal.NewFromInt(100)).Div(budget.Amount).InexactFloat64()

	switch {
	case utilization >= ExceedThreshold:
		e.dispatch(budget, bandExceeded, func() error {
			return e.notifier.SendBudgetExceeded(email, string(budget.Category), budget.Amount, utilization)
		})
	case utilization >= WarnThreshold:
		e.dispatch(budget, bandWarning, func() error {
			return e.notifier.SendBudgetWarning(email, string(budget.Category), budget.Amount, utilization)
		})
	}
	return nil
}

func (e *Evaluator) dispatch(budget *models.Budget, b band, send func() error) {
	if e.dedupe {
		key := sentKey{budgetID: budget.ID, b: b}
		e.mu.Lock()
		_, already := e.sent[key]
		if !already {
			e.sent[key] = struct{}{}
		}
		e.mu.Unlock()
		if already {
			return
		}
	}
	if err := send(); err != nil {
		log.Printf("budget alert notification failed (category=%s): %v", budget.Category, err)
	}
}
