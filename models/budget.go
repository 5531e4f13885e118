package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget caps spending for one category in one calendar month. The composite
// unique index enforces at most one cap per (user, category, month, year)
// even when concurrent creates race past the application existence check.
type Budget struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	UserID    uint            `gorm:"not null;uniqueIndex:idx_budget_period" json:"user_id"`
	Category  Category        `gorm:"size:32;not null;uniqueIndex:idx_budget_period" json:"category"`
	Month     int             `gorm:"not null;uniqueIndex:idx_budget_period" json:"month"` // 1-12
	Year      int             `gorm:"not null;uniqueIndex:idx_budget_period" json:"year"`
	Amount    decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
}
