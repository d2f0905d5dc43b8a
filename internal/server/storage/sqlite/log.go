package sqlite

import (
	"context"
	"database/sql"
	"errors"
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
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
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
		where = []string{"user_id = ?"}
		args  = []any{userID}
	)

	// Даты хранятся как "YYYY-MM-DD", лексикографическое сравнение совпадает с хронологическим
	if filter.Start != nil {
		where = append(where, "date >= ?")
		args = append(args, *filter.Start)
	}
	if filter.End != nil {
		where = append(where, "date <= ?")
		args = append(args, *filter.End)
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
			WHERE user_id = ?
			ORDER BY date DESC, created_at DESC
			LIMIT ?
		)
		ORDER BY date ASC, created_at ASC
	`

	return s.queryEntries(ctx, query, userID, limit)
}

// UpdateEntry applies a partial update scoped to the owner
func (s *Storage) UpdateEntry(ctx context.Context, userID, id string, update models.LogUpdate, updatedAt time.Time) (*models.LogEntry, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, wrapErr("begin transaction", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// NULL оставляет текущее значение колонки
	query := `
		UPDATE log_entries
		SET date = COALESCE(?, date),
		    hours = COALESCE(?, hours),
		    project = COALESCE(?, project),
		    notes = COALESCE(?, notes),
		    updated_at = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := tx.ExecContext(ctx, query,
		nullableDate(update.Date),
		nullableFloat(update.Hours),
		nullString(update.Project),
		nullString(update.Notes),
		updatedAt.UTC(),
		id,
		userID,
	)
	if err != nil {
		return nil, wrapErr("update entry", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, wrapErr("get rows affected", err)
	}
	if rows == 0 {
		return nil, storage.ErrEntryNotFound
	}

	entry, err := scanEntry(tx.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM log_entries WHERE id = ? AND user_id = ?`, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEntryNotFound
		}
		return nil, wrapErr("get entry", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, wrapErr("commit transaction", err)
	}

	return entry, nil
}

// DeleteEntry removes an entry scoped to the owner
func (s *Storage) DeleteEntry(ctx context.Context, userID, id string) error {
	query := `DELETE FROM log_entries WHERE id = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
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
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Date,
		&entry.Hours,
		&entry.Project,
		&entry.Notes,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func nullableDate(d *models.Date) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}

func nullableFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
