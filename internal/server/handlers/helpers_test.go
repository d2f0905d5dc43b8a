package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/codehours/internal/server/service"
	"github.com/iudanet/codehours/internal/server/storage"
	"github.com/iudanet/codehours/internal/server/storage/sqlite"
	"github.com/iudanet/codehours/internal/server/token"
	"github.com/iudanet/codehours/pkg/api"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTokens() *token.Manager {
	return token.NewManager(token.Config{
		Secret:     []byte("handlers-test-secret"),
		SessionTTL: 7 * 24 * time.Hour,
		ResetTTL:   time.Hour,
	})
}

// testAPI собирает handler'ы поверх переданных хранилищ
type testAPI struct {
	router http.Handler
	auth   *service.AuthService
}

func newTestAPIWith(t *testing.T, users storage.UserStorage, logs storage.LogStorage, exposeReset bool) *testAPI {
	t.Helper()
	logger := setupTestLogger()

	authSvc := service.NewAuthService(logger, users, testTokens(), service.WithBcryptCost(bcrypt.MinCost))
	authHandler := NewAuthHandler(logger, authSvc, exposeReset)
	logHandler := NewLogHandler(logger, authSvc, service.NewLogService(logger, logs, nil))
	forecastHandler := NewForecastHandler(logger, authSvc, service.NewForecastService(logger, logs, nil))

	r := chi.NewRouter()
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/forgot-password", authHandler.ForgotPassword)
	r.Post("/api/auth/reset-password", authHandler.ResetPassword)
	r.Get("/api/me", authHandler.Me)
	r.Get("/api/logs", logHandler.List)
	r.Post("/api/logs", logHandler.Create)
	r.Put("/api/logs/{id}", logHandler.Update)
	r.Delete("/api/logs/{id}", logHandler.Delete)
	r.Post("/api/forecast", forecastHandler.Forecast)

	return &testAPI{router: r, auth: authSvc}
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	s, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return newTestAPIWith(t, s, s, true)
}

// do выполняет запрос; body кодируется в JSON, если это не строка
func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// register регистрирует пользователя и возвращает сессионный токен
func (a *testAPI) register(t *testing.T, email string) api.AuthResponse {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/auth/register", "", api.RegisterRequest{Email: email, Password: "password123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[api.AuthResponse](t, w)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

func requireError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
	assertJSON(t, w)
	resp := decode[api.ErrorResponse](t, w)
	require.Equal(t, http.StatusText(status), resp.Error)
	if message != "" {
		require.Equal(t, message, resp.Message)
	}
}

func assertJSON(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
}
