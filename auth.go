package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/Brundha-2004/smartspend/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser creates a disabled account with a single-use verification
// token and triggers the verification email. The email dispatch never fails
// the registration.
func RegisterUser(email, password, firstName, lastName string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("valid email required")
	}
	if len(password) < 6 { // basic password policy
		return nil, fmt.Errorf("password too short (min 6)")
	}
	// pre-check existing (optimistic)
	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrDuplicateEmail
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	token := uuid.NewString()
	user := models.User{
		Email:             email,
		HashedPassword:    hashedPassword,
		FirstName:         strings.TrimSpace(firstName),
		LastName:          strings.TrimSpace(lastName),
		Enabled:           false,
		VerificationToken: &token,
	}
	if err := db.Create(&user).Error; err != nil {
		if isUniqueConstraintError(err) { // race condition after initial check
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	if err := mail.SendVerification(user.Email, token); err != nil {
		log.Printf("verification email failed for %s: %v", user.Email, err)
	}
	return &user, nil
}

// VerifyUser consumes a verification token. A token that was already used
// (cleared to null) simply fails the lookup and reports false.
func VerifyUser(token string) bool {
	if strings.TrimSpace(token) == "" {
		return false
	}
	var user models.User
	if err := db.Where("verification_token = ?", token).First(&user).Error; err != nil {
		return false
	}
	user.Enabled = true
	user.VerificationToken = nil
	if err := db.Save(&user).Error; err != nil {
		log.Printf("failed to persist verification for %s: %v", user.Email, err)
		return false
	}
	return true
}

// Authenticate checks credentials and verification state. Unknown emails and
// password mismatches report the same error.
func Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", strings.TrimSpace(email)).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.HashedPassword, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.Enabled {
		return nil, ErrNotVerified
	}
	return &user, nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "already exists")
}
