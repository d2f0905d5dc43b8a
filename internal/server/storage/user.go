package storage

//go:generate moq -out storage_mock.go . UserStorage LogStorage

import (
	"context"
	"time"

	"github.com/iudanet/codehours/internal/models"
)

// UserStorage defines interface for credential persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage
	// Returns ErrUserAlreadyExists if email already exists
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves user by exact email
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// SetResetToken stores a pending reset token with its expiry,
	// replacing any previous one
	// Returns ErrUserNotFound if user doesn't exist
	SetResetToken(ctx context.Context, userID, token string, expiry time.Time) error

	// CompletePasswordReset replaces the password hash and clears reset state
	// in one statement, only if token matches the pending one and has not
	// expired at now
	// Returns ErrResetTokenMismatch otherwise
	CompletePasswordReset(ctx context.Context, userID, token, passwordHash string, now time.Time) error
}
