package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLogging(t *testing.T) {
	tests := []struct {
		handler       http.HandlerFunc
		name          string
		method        string
		path          string
		expectedLevel string
		expectedCode  int
	}{
		{
			name:   "200 OK",
			method: http.MethodGet,
			path:   "/api/logs",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("[]"))
			},
			expectedCode:  http.StatusOK,
			expectedLevel: "INFO",
		},
		{
			name:   "201 Created",
			method: http.MethodPost,
			path:   "/api/logs",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"id":"123"}`))
			},
			expectedCode:  http.StatusCreated,
			expectedLevel: "INFO",
		},
		{
			name:   "404 Not Found",
			method: http.MethodDelete,
			path:   "/api/logs/missing",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedLevel: "WARN",
		},
		{
			name:   "503 Service Unavailable",
			method: http.MethodPost,
			path:   "/api/auth/login",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			expectedCode:  http.StatusServiceUnavailable,
			expectedLevel: "ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := Logging(newJSONLogger(&buf))(tt.handler)

			req := httptest.NewRequest(tt.method, tt.path+"?email=secret@example.com", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.expectedLevel, entry["level"])
			assert.Equal(t, "HTTP request", entry["msg"])
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.path, entry["path"])
			assert.Equal(t, float64(tt.expectedCode), entry["status"])
			assert.NotContains(t, buf.String(), "secret@example.com")
		})
	}
}

func TestLogging_BytesWritten(t *testing.T) {
	var buf bytes.Buffer
	handler := Logging(newJSONLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/me", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, float64(5), entry["bytes_written"])
}

func TestLogging_SkipPaths(t *testing.T) {
	var buf bytes.Buffer
	handler := Logging(newJSONLogger(&buf), "/health")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, buf.String())

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/me", nil))
	assert.Contains(t, buf.String(), "/api/me")
}
