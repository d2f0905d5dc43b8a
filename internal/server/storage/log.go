package storage

import (
	"context"
	"time"

	"github.com/iudanet/codehours/internal/models"
)

// LogStorage defines interface for hour log persistence.
// Every method is scoped by userID; entries of other users are invisible.
type LogStorage interface {
	// CreateEntry stores a new entry
	CreateEntry(ctx context.Context, entry *models.LogEntry) error

	// ListEntries returns user entries ordered by date descending,
	// filtered by inclusive date bounds when set
	// Returns empty slice if no entries found
	ListEntries(ctx context.Context, userID string, filter models.LogFilter) ([]*models.LogEntry, error)

	// RecentEntries returns up to limit most recent entries ordered by date ascending
	RecentEntries(ctx context.Context, userID string, limit int) ([]*models.LogEntry, error)

	// UpdateEntry applies a partial update and sets updated_at
	// Returns ErrEntryNotFound if entry doesn't exist for this user
	UpdateEntry(ctx context.Context, userID, id string, update models.LogUpdate, updatedAt time.Time) (*models.LogEntry, error)

	// DeleteEntry removes an entry
	// Returns ErrEntryNotFound if entry doesn't exist for this user
	DeleteEntry(ctx context.Context, userID, id string) error
}

// Pinger reports database reachability (used by health check)
type Pinger interface {
	Ping(ctx context.Context) error
}

// Storage combines everything the server needs from a backend
type Storage interface {
	UserStorage
	LogStorage
	Pinger
	Close() error
}
