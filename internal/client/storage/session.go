package storage

import (
	"context"
	"time"
)

//go:generate moq -out storage_mock.go . SessionStorage

// Session is the locally cached login of the CLI user.
type Session struct {
	ExpiresAt time.Time `json:"expires_at"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ServerURL string    `json:"server_url"`
}

// IsExpired reports whether the session token has expired at moment now.
// Нулевой ExpiresAt считается бессрочным: сервер сам отвергнет токен.
func (s *Session) IsExpired(now time.Time) bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(s.ExpiresAt)
}

// SessionStorage хранит единственную текущую сессию клиента
type SessionStorage interface {
	SaveSession(ctx context.Context, session *Session) error
	GetSession(ctx context.Context) (*Session, error)
	DeleteSession(ctx context.Context) error
}
