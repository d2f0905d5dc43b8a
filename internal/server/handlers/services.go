package handlers

import (
	"context"

	"github.com/iudanet/codehours/internal/models"
	"github.com/iudanet/codehours/internal/server/service"
)

// Authenticator проверяет сессионный токен
type Authenticator interface {
	Authenticate(token string) (*service.Session, error)
}

// AuthService операции аутентификации, которые нужны HTTP слою
type AuthService interface {
	Authenticator
	Register(ctx context.Context, email, password string) (*service.AuthResult, error)
	Login(ctx context.Context, email, password string) (*service.AuthResult, error)
	RequestPasswordReset(ctx context.Context, email string) (*service.ResetRequest, error)
	CompletePasswordReset(ctx context.Context, token, newPassword string) (string, error)
	Me(ctx context.Context, userID string) (*models.User, error)
}

// LogService операции с журналом часов
type LogService interface {
	List(ctx context.Context, userID string, filter models.LogFilter) ([]*models.LogEntry, error)
	Create(ctx context.Context, userID string, in service.CreateLogInput) (*models.LogEntry, error)
	Update(ctx context.Context, userID, id string, in service.UpdateLogInput) (*models.LogEntry, error)
	Delete(ctx context.Context, userID, id string) error
}

// ForecastService построение прогноза
type ForecastService interface {
	Forecast(ctx context.Context, userID string, history []models.HistoryPoint, horizon int) (models.Forecast, error)
}

var (
	_ AuthService     = (*service.AuthService)(nil)
	_ LogService      = (*service.LogService)(nil)
	_ ForecastService = (*service.ForecastService)(nil)
)
