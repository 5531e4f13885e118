package main

import "errors"

// Application error taxonomy. Handlers translate these to HTTP statuses with
// errors.Is; anything unclassified becomes a generic 500.
var (
	ErrNotFound           = errors.New("not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrDuplicateBudget    = errors.New("budget already exists for this category and month")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("please verify your email first")
)
