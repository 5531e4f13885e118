package main

import (
	"errors"
	"time"

	"github.com/Brundha-2004/smartspend/models"
	"github.com/Brundha-2004/smartspend/pkg/monthsum"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// dbStore adapts the global gorm handle to the narrow read interfaces the
// alert evaluator and summary aggregator consume.
type dbStore struct{}

func (dbStore) BudgetFor(userID uint, category models.Category, month, year int) (*models.Budget, error) {
	var budget models.Budget
	err := db.Where("user_id = ? AND category = ? AND month = ? AND year = ?",
		userID, category, month, year).First(&budget).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

func (dbStore) ExpenseTotal(userID uint, category models.Category, month, year int) (decimal.Decimal, error) {
	start, end := monthsum.PeriodBounds(month, year)
	return sumAmount(db.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ? AND category = ? AND date >= ? AND date <= ?",
			userID, models.TypeExpense, category, start, end))
}

func (dbStore) TransactionsInRange(userID uint, start, end time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := db.Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date asc, id asc").
		Find(&transactions).Error
	return transactions, err
}

func (dbStore) BudgetsForPeriod(userID uint, month, year int) ([]models.Budget, error) {
	var budgets []models.Budget
	err := db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Order("id asc").
		Find(&budgets).Error
	return budgets, err
}

// sumAmount runs SUM(amount) on an already-filtered transaction query.
func sumAmount(q *gorm.DB) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	if err := q.Select("COALESCE(SUM(amount), 0) AS total").Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}
