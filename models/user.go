package models

import (
	"time"
)

// User model. Enabled stays false until the verification token is consumed.
type User struct {
	ID                uint          `gorm:"primaryKey" json:"id"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
	Email             string        `gorm:"size:255;not null;uniqueIndex" json:"email"`
	HashedPassword    []byte        `gorm:"not null" json:"-"`
	FirstName         string        `gorm:"size:100" json:"first_name"`
	LastName          string        `gorm:"size:100" json:"last_name"`
	Enabled           bool          `gorm:"default:false;not null" json:"enabled"`
	VerificationToken *string       `gorm:"size:64;index" json:"-"` // single use, cleared on verify
	Transactions      []Transaction `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Budgets           []Budget      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
