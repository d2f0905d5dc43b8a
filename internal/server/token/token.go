// Package token выпускает и проверяет подписанные bearer-токены (HS256).
//
// Сессионные токены и токены сброса пароля подписываются одним секретом,
// но различаются audience, поэтому токен сброса нельзя предъявить как
// сессию и наоборот.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "codehours"

// Purpose назначение токена, хранится в audience
type Purpose string

const (
	PurposeSession Purpose = "session"
	PurposeReset   Purpose = "password-reset"
)

// ErrInvalidToken возвращается для любой ошибки проверки токена:
// подпись, формат, срок действия, назначение
var ErrInvalidToken = errors.New("invalid token")

// Claims представляет JWT claims приложения
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Config содержит конфигурацию для токенов
type Config struct {
	Secret     []byte
	SessionTTL time.Duration
	ResetTTL   time.Duration
}

// Manager выпускает и проверяет токены
type Manager struct {
	now        func() time.Time
	secret     []byte
	sessionTTL time.Duration
	resetTTL   time.Duration
}

// Option настраивает Manager
type Option func(*Manager)

// WithClock подменяет источник времени (для тестов)
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager создает Manager
func NewManager(cfg Config, opts ...Option) *Manager {
	m := &Manager{
		secret:     cfg.Secret,
		sessionTTL: cfg.SessionTTL,
		resetTTL:   cfg.ResetTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// IssueSession создает сессионный токен
func (m *Manager) IssueSession(userID, email string) (string, time.Time, error) {
	return m.issue(PurposeSession, m.sessionTTL, userID, email)
}

// IssueReset создает токен сброса пароля
func (m *Manager) IssueReset(userID, email string) (string, time.Time, error) {
	return m.issue(PurposeReset, m.resetTTL, userID, email)
}

// VerifySession проверяет сессионный токен
func (m *Manager) VerifySession(tokenString string) (*Claims, error) {
	return m.verify(PurposeSession, tokenString)
}

// VerifyReset проверяет токен сброса пароля
func (m *Manager) VerifyReset(tokenString string) (*Claims, error) {
	return m.verify(PurposeReset, tokenString)
}

func (m *Manager) issue(purpose Purpose, ttl time.Duration, userID, email string) (string, time.Time, error) {
	now := m.now()
	expiresAt := jwt.NewNumericDate(now.Add(ttl))

	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{string(purpose)},
			ExpiresAt: expiresAt,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt.Time, nil
}

func (m *Manager) verify(purpose Purpose, tokenString string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(string(purpose)),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)

	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
