package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/iudanet/codehours/internal/forecast"
	"github.com/iudanet/codehours/internal/models"
	"github.com/iudanet/codehours/internal/server/storage"
)

// ForecastService загружает историю и строит прогноз
type ForecastService struct {
	logger *slog.Logger
	logs   storage.LogStorage
	now    func() time.Time
}

// NewForecastService создает ForecastService
func NewForecastService(logger *slog.Logger, logs storage.LogStorage, now func() time.Time) *ForecastService {
	if now == nil {
		now = time.Now
	}
	return &ForecastService{logger: logger, logs: logs, now: now}
}

// Forecast строит прогноз на horizon дней.
// history == nil: берутся последние forecast.MaxHistory записей пользователя.
// Пустой, но не nil срез используется как есть.
func (s *ForecastService) Forecast(ctx context.Context, userID string, history []models.HistoryPoint, horizon int) (models.Forecast, error) {
	if history == nil {
		entries, err := s.logs.RecentEntries(ctx, userID, forecast.MaxHistory)
		if err != nil {
			return models.Forecast{}, storageError("recent entries", err)
		}
		history = forecast.FromEntries(entries)
	}

	result := forecast.Project(history, horizon, s.now())

	s.logger.DebugContext(ctx, "forecast computed",
		slog.String("user_id", userID),
		slog.Int("history", result.HistoryCount),
		slog.Int("horizon", len(result.Predictions)))

	return result, nil
}
