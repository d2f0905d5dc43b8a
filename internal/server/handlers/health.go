package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/codehours/internal/server/service"
	"github.com/iudanet/codehours/internal/server/storage"
	"github.com/iudanet/codehours/pkg/api"
)

const healthTimeout = 2 * time.Second

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	db      storage.Pinger
	version string
	responder
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *slog.Logger, db storage.Pinger, version string) *HealthHandler {
	return &HealthHandler{
		responder: responder{logger: logger},
		db:        db,
		version:   version,
	}
}

// Health обрабатывает GET /health
// Проверяет доступность базы данных
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.ErrorContext(ctx, "health check failed", slog.Any("error", err))
		h.sendJSON(w, api.ErrorResponse{
			Error:   http.StatusText(http.StatusServiceUnavailable),
			Message: service.MsgUnavailable,
		}, http.StatusServiceUnavailable)
		return
	}

	h.sendJSON(w, api.HealthResponse{Status: "ok", Version: h.version}, http.StatusOK)
}
