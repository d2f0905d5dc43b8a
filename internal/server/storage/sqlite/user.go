package sqlite

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
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		nullString(user.ResetToken),
		nullUnixMilli(user.ResetTokenExpiry),
		user.CreatedAt.UTC(),
	)

	if err != nil {
		// Проверяем на duplicate email
		if isUniqueViolation(err) {
			return storage.ErrUserAlreadyExists
		}
		return wrapErr("insert user", err)
	}

	return nil
}

// GetUserByEmail retrieves user by email
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return s.getUser(ctx, query, email)
}

// GetUserByID retrieves user by ID
func (s *Storage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return s.getUser(ctx, query, userID)
}

func (s *Storage) getUser(ctx context.Context, query string, arg string) (*models.User, error) {
	user := &models.User{}
	var (
		resetToken  sql.NullString
		resetExpiry sql.NullInt64
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
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, wrapErr("get user", err)
	}

	// Токен и срок действия всегда выставляются и очищаются вместе
	if resetToken.Valid && resetExpiry.Valid {
		token := resetToken.String
		expiry := time.UnixMilli(resetExpiry.Int64).UTC()
		user.ResetToken = &token
		user.ResetTokenExpiry = &expiry
	}

	return user, nil
}

// SetResetToken stores a pending reset token, replacing any previous one
func (s *Storage) SetResetToken(ctx context.Context, userID, token string, expiry time.Time) error {
	query := `UPDATE users SET reset_token = ?, reset_token_expiry = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, token, expiry.UnixMilli(), userID)
	if err != nil {
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
		SET password_hash = ?, reset_token = NULL, reset_token_expiry = NULL
		WHERE id = ? AND reset_token = ? AND reset_token_expiry > ?
	`

	result, err := s.db.ExecContext(ctx, query, passwordHash, userID, token, now.UnixMilli())
	if err != nil {
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

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullUnixMilli(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixMilli(), Valid: true}
}
