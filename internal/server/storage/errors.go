package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this email already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrEntryNotFound indicates that log entry does not exist or belongs to another user
	ErrEntryNotFound = errors.New("entry not found")

	// ErrResetTokenMismatch indicates that the pending reset token is absent,
	// superseded or expired
	ErrResetTokenMismatch = errors.New("reset token mismatch")

	// ErrUnavailable indicates that the database cannot be reached
	ErrUnavailable = errors.New("storage unavailable")
)
