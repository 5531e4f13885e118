package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single income or expense record belonging to a user.
type Transaction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	UserID      uint            `gorm:"index;not null" json:"user_id"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"` // always > 0
	Category    Category        `gorm:"size:32;not null;index" json:"category"`
	Type        TransactionType `gorm:"size:16;not null" json:"type"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Description string          `gorm:"size:512" json:"description"`
}
