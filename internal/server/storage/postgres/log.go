package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/codehours/internal/models"
	"github.com/iudanet/codehours/internal/server/storage"
)

const entryColumns = `id, user_id, date, hours, project, notes, created_at, updated_at`

// CreateEntry stores a new log entry
func (s *Storage) CreateEntry(ctx context.Context, entry *models.LogEntry) error {
	query := `
		INSERT INTO log_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.db.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Date,
		entry.Hours,
		entry.Project,
		entry.Notes,
		entry.CreatedAt.UTC(),
		entry.UpdatedAt.UTC(),
	)
	if err != nil {
		return wrapErr("insert entry", err)
	}

	return nil
}

// ListEntries returns user entries ordered by date descending
func (s *Storage) ListEntries(ctx context.Context, userID string, filter models.LogFilter) ([]*models.LogEntry, error) {
	var (
		where = []string{"user_id = $1"}
		args  = []any{userID}
	)

	if filter.Start != nil {
		args = append(args, *filter.Start)
		where = append(where, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.End != nil {
		args = append(args, *filter.End)
		where = append(where, fmt.Sprintf("date <= $%d", len(args)))
	}

	query := `SELECT ` + entryColumns + ` FROM log_entries
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY date DESC, created_at DESC`

	return s.queryEntries(ctx, query, args...)
}

// RecentEntries returns up to limit most recent entries ordered by date ascending
func (s *Storage) RecentEntries(ctx context.Context, userID string, limit int) ([]*models.LogEntry, error) {
	query := `
		SELECT ` + entryColumns + ` FROM (
			SELECT ` + entryColumns + ` FROM log_entries
			WHERE user_id = $1
			ORDER BY date DESC, created_at DESC
			LIMIT $2
		) recent
		ORDER BY date ASC, created_at ASC
	`

	return s.queryEntries(ctx, query, userID, limit)
}

// UpdateEntry applies a partial update scoped to the owner in one statement
func (s *Storage) UpdateEntry(ctx context.Context, userID, id string, update models.LogUpdate, updatedAt time.Time) (*models.LogEntry, error) {
	query := `
		UPDATE log_entries
		SET date = COALESCE($1::date, date),
		    hours = COALESCE($2::double precision, hours),
		    project = COALESCE($3::text, project),
		    notes = COALESCE($4::text, notes),
		    updated_at = $5
		WHERE id = $6 AND user_id = $7
		RETURNING ` + entryColumns

	var date sql.NullString
	if update.Date != nil {
		date = sql.NullString{String: update.Date.String(), Valid: true}
	}

	entry, err := scanEntry(s.db.QueryRowContext(ctx, query,
		date,
		update.Hours,
		update.Project,
		update.Notes,
		updatedAt.UTC(),
		id,
		userID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, storage.ErrEntryNotFound
		}
		return nil, wrapErr("update entry", err)
	}

	return entry, nil
}

// DeleteEntry removes an entry scoped to the owner
func (s *Storage) DeleteEntry(ctx context.Context, userID, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM log_entries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		if isInvalidID(err) {
			return storage.ErrEntryNotFound
		}
		return wrapErr("delete entry", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return wrapErr("get rows affected", err)
	}
	if rows == 0 {
		return storage.ErrEntryNotFound
	}

	return nil
}

func (s *Storage) queryEntries(ctx context.Context, query string, args ...any) ([]*models.LogEntry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		if isInvalidID(err) {
			return []*models.LogEntry{}, nil
		}
		return nil, wrapErr("query entries", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	entries := make([]*models.LogEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, wrapErr("scan entry", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapErr("iterate entries", err)
	}

	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*models.LogEntry, error) {
	entry := &models.LogEntry{}
	if err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Date,
		&entry.Hours,
		&entry.Project,
		&entry.Notes,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return entry, nil
}
