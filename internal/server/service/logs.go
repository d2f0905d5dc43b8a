package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/codehours/internal/models"
	"github.com/iudanet/codehours/internal/server/storage"
)

const (
	MsgLogInputRequired = "date and hours required"
	MsgNoUpdatableField = "No updatable fields provided"
	MsgEntryNotFound    = "Not found or not allowed"
	MsgInvalidDate      = "date must be in YYYY-MM-DD format"
)

// CreateLogInput данные новой записи. Project и Notes необязательны.
type CreateLogInput struct {
	Hours   *float64
	Project *string
	Notes   *string
	Date    string
}

// UpdateLogInput частичное обновление записи.
// Date и Project учитываются, если не пустые; Hours и Notes, если не nil.
type UpdateLogInput struct {
	Hours   *float64
	Notes   *string
	Date    string
	Project string
}

// LogService CRUD записей о часах, всегда в рамках одного пользователя
type LogService struct {
	logger *slog.Logger
	logs   storage.LogStorage
	now    func() time.Time
}

// NewLogService создает LogService
func NewLogService(logger *slog.Logger, logs storage.LogStorage, now func() time.Time) *LogService {
	if now == nil {
		now = time.Now
	}
	return &LogService{logger: logger, logs: logs, now: now}
}

// List возвращает записи пользователя, новые сверху
func (s *LogService) List(ctx context.Context, userID string, filter models.LogFilter) ([]*models.LogEntry, error) {
	entries, err := s.logs.ListEntries(ctx, userID, filter)
	if err != nil {
		return nil, storageError("list entries", err)
	}
	return entries, nil
}

// Create сохраняет новую запись. Отрицательные часы не отклоняются.
func (s *LogService) Create(ctx context.Context, userID string, in CreateLogInput) (*models.LogEntry, error) {
	if in.Date == "" || in.Hours == nil {
		return nil, invalidInput(MsgLogInputRequired)
	}

	date, err := models.ParseDate(in.Date)
	if err != nil {
		return nil, invalidInput(MsgInvalidDate)
	}

	now := s.now().UTC()
	entry := &models.LogEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Date:      date,
		Hours:     *in.Hours,
		Project:   models.DefaultProject,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Project != nil {
		entry.Project = *in.Project
	}
	if in.Notes != nil {
		entry.Notes = *in.Notes
	}

	if err := s.logs.CreateEntry(ctx, entry); err != nil {
		return nil, storageError("create entry", err)
	}

	s.logger.InfoContext(ctx, "log entry created",
		slog.String("user_id", userID),
		slog.String("entry_id", entry.ID))

	return entry, nil
}

// Update меняет только переданные поля и выставляет updated_at
func (s *LogService) Update(ctx context.Context, userID, id string, in UpdateLogInput) (*models.LogEntry, error) {
	var update models.LogUpdate

	if in.Date != "" {
		date, err := models.ParseDate(in.Date)
		if err != nil {
			return nil, invalidInput(MsgInvalidDate)
		}
		update.Date = &date
	}
	if in.Hours != nil {
		update.Hours = in.Hours
	}
	if in.Project != "" {
		project := in.Project
		update.Project = &project
	}
	if in.Notes != nil {
		update.Notes = in.Notes
	}

	if update.IsEmpty() {
		return nil, invalidInput(MsgNoUpdatableField)
	}

	entry, err := s.logs.UpdateEntry(ctx, userID, id, update, s.now().UTC())
	if err != nil {
		if errors.Is(err, storage.ErrEntryNotFound) {
			return nil, newError(KindNotFound, MsgEntryNotFound, err)
		}
		return nil, storageError("update entry", err)
	}

	s.logger.InfoContext(ctx, "log entry updated",
		slog.String("user_id", userID),
		slog.String("entry_id", id))

	return entry, nil
}

// Delete удаляет запись пользователя
func (s *LogService) Delete(ctx context.Context, userID, id string) error {
	if err := s.logs.DeleteEntry(ctx, userID, id); err != nil {
		if errors.Is(err, storage.ErrEntryNotFound) {
			return newError(KindNotFound, MsgEntryNotFound, err)
		}
		return storageError("delete entry", err)
	}

	s.logger.InfoContext(ctx, "log entry deleted",
		slog.String("user_id", userID),
		slog.String("entry_id", id))

	return nil
}
