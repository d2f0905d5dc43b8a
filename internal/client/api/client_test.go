package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/codehours/internal/models"
	"github.com/iudanet/codehours/pkg/api"
)

// newTestServer поднимает httptest сервер с одним обработчиком
func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:4000/")

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:4000", client.BaseURL())
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestClient_Register(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req api.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "dev@example.com", req.Email)
		assert.Equal(t, "secret123", req.Password)

		writeJSON(w, http.StatusOK, api.AuthResponse{
			User:  api.UserInfo{ID: "user-1", Email: "dev@example.com"},
			Token: "session-token",
		})
	})

	resp, err := client.Register(context.Background(), api.RegisterRequest{Email: "dev@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.User.ID)
	assert.Equal(t, "session-token", resp.Token)
}

func TestClient_Register_Error(t *testing.T) {
	tests := []struct {
		responseBody   any
		name           string
		expectedErrMsg string
		statusCode     int
	}{
		{
			name:           "user exists",
			statusCode:     http.StatusBadRequest,
			responseBody:   api.ErrorResponse{Error: "Bad Request", Message: "User exists"},
			expectedErrMsg: "server error (400): User exists",
		},
		{
			name:           "error without message",
			statusCode:     http.StatusInternalServerError,
			responseBody:   api.ErrorResponse{Error: "Internal Server Error"},
			expectedErrMsg: "server error (500): Internal Server Error",
		},
		{
			name:           "plain text body",
			statusCode:     http.StatusBadGateway,
			responseBody:   "upstream down",
			expectedErrMsg: "server error (502): upstream down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				if body, ok := tt.responseBody.(string); ok {
					w.WriteHeader(tt.statusCode)
					_, _ = w.Write([]byte(body))
					return
				}
				writeJSON(w, tt.statusCode, tt.responseBody)
			})

			resp, err := client.Register(context.Background(), api.RegisterRequest{Email: "a@b.c", Password: "x"})
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Contains(t, err.Error(), tt.expectedErrMsg)

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
		})
	}
}

func TestClient_Login(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		writeJSON(w, http.StatusOK, api.AuthResponse{
			User:  api.UserInfo{ID: "user-1", Email: "dev@example.com"},
			Token: "session-token",
		})
	})

	resp, err := client.Login(context.Background(), api.LoginRequest{Email: "dev@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", resp.User.Email)
}

func TestClient_Login_Unauthorized(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized", Message: "Invalid credentials"})
	})

	_, err := client.Login(context.Background(), api.LoginRequest{Email: "dev@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestClient_PasswordReset(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/forgot-password":
			var req api.ForgotPasswordRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "dev@example.com", req.Email)
			writeJSON(w, http.StatusOK, api.ForgotPasswordResponse{Message: "sent", ResetToken: "reset-token"})
		case "/api/auth/reset-password":
			var req api.ResetPasswordRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "reset-token", req.Token)
			assert.Equal(t, "newpassword", req.NewPassword)
			writeJSON(w, http.StatusOK, api.MessageResponse{Message: "done"})
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	forgot, err := client.ForgotPassword(ctx, "dev@example.com")
	require.NoError(t, err)
	assert.Equal(t, "reset-token", forgot.ResetToken)

	reset, err := client.ResetPassword(ctx, api.ResetPasswordRequest{Token: forgot.ResetToken, NewPassword: "newpassword"})
	require.NoError(t, err)
	assert.Equal(t, "done", reset.Message)
}

func TestClient_Me(t *testing.T) {
	created := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/me", r.URL.Path)
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, api.MeResponse{ID: "user-1", Email: "dev@example.com", CreatedAt: created})
	})

	me, err := client.Me(context.Background(), "session-token")
	require.NoError(t, err)
	assert.Equal(t, "user-1", me.ID)
	assert.True(t, created.Equal(me.CreatedAt))
}

func TestClient_Me_Unauthorized(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized", Message: "Invalid token"})
	})

	_, err := client.Me(context.Background(), "expired")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_ListLogs(t *testing.T) {
	tests := []struct {
		start     *models.Date
		end       *models.Date
		name      string
		wantQuery string
	}{
		{name: "no filter", wantQuery: ""},
		{name: "start only", start: ptrDate("2024-01-01"), wantQuery: "start=2024-01-01"},
		{name: "both bounds", start: ptrDate("2024-01-01"), end: ptrDate("2024-01-31"), wantQuery: "end=2024-01-31&start=2024-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/logs", r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				writeJSON(w, http.StatusOK, []*models.LogEntry{
					{ID: "log-1", Date: models.MustParseDate("2024-01-02"), Hours: 3, Project: "General"},
				})
			})

			entries, err := client.ListLogs(context.Background(), "session-token", tt.start, tt.end)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, "log-1", entries[0].ID)
			assert.Equal(t, "2024-01-02", entries[0].Date.String())
		})
	}
}

func TestClient_CreateLog(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/logs", r.URL.Path)

		var req api.CreateLogRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.Hours)
		assert.InDelta(t, 2.5, *req.Hours, 1e-9)
		assert.Equal(t, "2024-01-05", req.Date)
		assert.Nil(t, req.Project)

		writeJSON(w, http.StatusCreated, models.LogEntry{
			ID: "log-1", Date: models.MustParseDate("2024-01-05"), Hours: 2.5, Project: models.DefaultProject,
		})
	})

	hours := 2.5
	entry, err := client.CreateLog(context.Background(), "session-token", api.CreateLogRequest{Date: "2024-01-05", Hours: &hours})
	require.NoError(t, err)
	assert.Equal(t, "log-1", entry.ID)
	assert.Equal(t, models.DefaultProject, entry.Project)
}

func TestClient_UpdateLog(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/logs/log-1", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"project":"Backend"}`, string(body))

		writeJSON(w, http.StatusOK, models.LogEntry{ID: "log-1", Project: "Backend"})
	})

	entry, err := client.UpdateLog(context.Background(), "session-token", "log-1", api.UpdateLogRequest{Project: "Backend"})
	require.NoError(t, err)
	assert.Equal(t, "Backend", entry.Project)
}

func TestClient_DeleteLog(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/logs/log-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteLog(context.Background(), "session-token", "log-1"))
}

func TestClient_DeleteLog_NotFound(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, api.ErrorResponse{Error: "Not Found", Message: "Not found or not allowed"})
	})

	err := client.DeleteLog(context.Background(), "session-token", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server error (404): Not found or not allowed")
}

func TestClient_Forecast(t *testing.T) {
	tests := []struct {
		name     string
		wantBody string
		history  []models.HistoryPoint
		horizon  int
	}{
		{
			name:     "history from journal",
			horizon:  7,
			wantBody: `{"horizon":7}`,
		},
		{
			name:     "explicit history",
			horizon:  2,
			history:  []models.HistoryPoint{{Date: models.MustParseDate("2024-01-01"), Hours: 4}},
			wantBody: `{"history":[{"date":"2024-01-01","hours":4}],"horizon":2}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/forecast", r.URL.Path)
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.JSONEq(t, tt.wantBody, string(body))

				writeJSON(w, http.StatusOK, models.Forecast{
					Predictions:  []models.Prediction{{Date: models.MustParseDate("2024-01-02"), Hours: 4, Lower: 4, Upper: 4}},
					HistoryCount: 1,
				})
			})

			fc, err := client.Forecast(context.Background(), "session-token", tt.history, tt.horizon)
			require.NoError(t, err)
			assert.Equal(t, 1, fc.HistoryCount)
			require.Len(t, fc.Predictions, 1)
			assert.Equal(t, "2024-01-02", fc.Predictions[0].Date.String())
		})
	}
}

func TestClient_Health(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		writeJSON(w, http.StatusOK, api.HealthResponse{Status: "ok", Version: "1.0.0"})
	})

	resp, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
}

func TestClient_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	client := NewClient(server.URL)
	server.Close()

	_, err := client.Health(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

func ptrDate(s string) *models.Date {
	d := models.MustParseDate(s)
	return &d
}
