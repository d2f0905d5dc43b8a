package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iudanet/codehours/internal/models"
	"github.com/iudanet/codehours/internal/server/storage"
)

const userColumns = `id, email, password_hash, reset_token, reset_token_expiry, created_at`

// CreateUser creates a new user in the storage
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, reset_token, reset_token_expiry, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.ResetToken,
		user.ResetTokenExpiry,
		user.CreatedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrUserAlreadyExists
		}
		return wrapErr("insert user", err)
	}

	return nil
}

// GetUserByEmail retrieves user by email
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// GetUserByID retrieves user by ID
func (s *Storage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return s.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
}

func (s *Storage) getUser(ctx context.Context, query, arg string) (*models.User, error) {
	user := &models.User{}
	var (
		resetToken  sql.NullString
		resetExpiry sql.NullTime
	)

	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&resetToken,
		&resetExpiry,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, storage.ErrUserNotFound
		}
		return nil, wrapErr("get user", err)
	}

	if resetToken.Valid && resetExpiry.Valid {
		token := resetToken.String
		expiry := resetExpiry.Time.UTC()
		user.ResetToken = &token
		user.ResetTokenExpiry = &expiry
	}

	return user, nil
}

// SetResetToken stores a pending reset token, replacing any previous one
func (s *Storage) SetResetToken(ctx context.Context, userID, token string, expiry time.Time) error {
	query := `UPDATE users SET reset_token = $1, reset_token_expiry = $2 WHERE id = $3`

	result, err := s.db.ExecContext(ctx, query, token, expiry.UTC(), userID)
	if err != nil {
		if isInvalidID(err) {
			return storage.ErrUserNotFound
		}
		return wrapErr("set reset token", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return wrapErr("get rows affected", err)
	}
	if rows == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}

// CompletePasswordReset replaces password hash and clears reset state
// if the presented token is still pending
func (s *Storage) CompletePasswordReset(ctx context.Context, userID, token, passwordHash string, now time.Time) error {
	query := `
		UPDATE users
		SET password_hash = $1, reset_token = NULL, reset_token_expiry = NULL
		WHERE id = $2 AND reset_token = $3 AND reset_token_expiry > $4
	`

	result, err := s.db.ExecContext(ctx, query, passwordHash, userID, token, now.UTC())
	if err != nil {
		if isInvalidID(err) {
			return storage.ErrResetTokenMismatch
		}
		return wrapErr("complete password reset", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return wrapErr("get rows affected", err)
	}
	if rows == 0 {
		return storage.ErrResetTokenMismatch
	}

	return nil
}
