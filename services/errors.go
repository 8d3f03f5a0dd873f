package services

import "errors"

// Sentinel errors controllers map onto HTTP statuses.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrProfileNotFound    = errors.New("health profile not found")
	ErrProfileExists      = errors.New("health profile already exists")
	ErrChallengeNotFound  = errors.New("challenge not found")
	ErrChallengeCompleted = errors.New("challenge already completed")
)
