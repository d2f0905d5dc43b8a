package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/codehours/internal/models"
	"github.com/iudanet/codehours/internal/server/service"
	"github.com/iudanet/codehours/internal/validation"
	"github.com/iudanet/codehours/pkg/api"
)

// LogHandler обрабатывает запросы к журналу часов
type LogHandler struct {
	auth Authenticator
	logs LogService
	responder
}

// NewLogHandler создает новый handler журнала
func NewLogHandler(logger *slog.Logger, auth Authenticator, logs LogService) *LogHandler {
	return &LogHandler{
		responder: responder{logger: logger},
		auth:      auth,
		logs:      logs,
	}
}

// List обрабатывает GET /api/logs?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *LogHandler) List(w http.ResponseWriter, r *http.Request) {
	session, ok := h.authenticate(w, r, h.auth)
	if !ok {
		return
	}

	query := r.URL.Query()
	start, err := validation.ParseOptionalDate("start", query.Get("start"))
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	end, err := validation.ParseOptionalDate("end", query.Get("end"))
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := h.logs.List(r.Context(), session.UserID, models.LogFilter{Start: start, End: end})
	if err != nil {
		h.sendServiceError(r.Context(), w, "list logs", err)
		return
	}

	h.sendJSON(w, entries, http.StatusOK)
}

// Create обрабатывает POST /api/logs
func (h *LogHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := h.authenticate(w, r, h.auth)
	if !ok {
		return
	}

	var req api.CreateLogRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.logs.Create(r.Context(), session.UserID, service.CreateLogInput{
		Date:    req.Date,
		Hours:   req.Hours,
		Project: req.Project,
		Notes:   req.Notes,
	})
	if err != nil {
		h.sendServiceError(r.Context(), w, "create log", err)
		return
	}

	h.sendJSON(w, entry, http.StatusCreated)
}

// Update обрабатывает PUT /api/logs/{id}
func (h *LogHandler) Update(w http.ResponseWriter, r *http.Request) {
	session, ok := h.authenticate(w, r, h.auth)
	if !ok {
		return
	}

	var req api.UpdateLogRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.logs.Update(r.Context(), session.UserID, chi.URLParam(r, "id"), service.UpdateLogInput{
		Date:    req.Date,
		Hours:   req.Hours,
		Project: req.Project,
		Notes:   req.Notes,
	})
	if err != nil {
		h.sendServiceError(r.Context(), w, "update log", err)
		return
	}

	h.sendJSON(w, entry, http.StatusOK)
}

// Delete обрабатывает DELETE /api/logs/{id}
func (h *LogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session, ok := h.authenticate(w, r, h.auth)
	if !ok {
		return
	}

	if err := h.logs.Delete(r.Context(), session.UserID, chi.URLParam(r, "id")); err != nil {
		h.sendServiceError(r.Context(), w, "delete log", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
