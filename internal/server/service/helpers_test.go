package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/codehours/internal/server/storage/sqlite"
	"github.com/iudanet/codehours/internal/server/token"
)

type fakeClock struct {
	now time.Time
	mu  sync.Mutex
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTokenManager(clock *fakeClock) *token.Manager {
	return token.NewManager(token.Config{
		Secret:     []byte("test-secret"),
		SessionTTL: 7 * 24 * time.Hour,
		ResetTTL:   time.Hour,
	}, token.WithClock(clock.Now))
}

func setupTestStorage(t *testing.T) *sqlite.Storage {
	t.Helper()
	s, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

type testEnv struct {
	storage  *sqlite.Storage
	clock    *fakeClock
	auth     *AuthService
	logs     *LogService
	forecast *ForecastService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	s := setupTestStorage(t)
	clock := newFakeClock()
	logger := testLogger()
	return &testEnv{
		storage:  s,
		clock:    clock,
		auth:     NewAuthService(logger, s, testTokenManager(clock), WithAuthClock(clock.Now), WithBcryptCost(bcrypt.MinCost)),
		logs:     NewLogService(logger, s, clock.Now),
		forecast: NewForecastService(logger, s, clock.Now),
	}
}

// registerUser регистрирует пользователя и возвращает его ID
func (e *testEnv) registerUser(t *testing.T, email string) string {
	t.Helper()
	res, err := e.auth.Register(context.Background(), email, "password123")
	require.NoError(t, err)
	return res.User.ID
}

func ptr[T any](v T) *T {
	return &v
}
