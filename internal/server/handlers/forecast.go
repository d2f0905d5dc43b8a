package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/codehours/internal/validation"
	"github.com/iudanet/codehours/pkg/api"
)

// ForecastHandler обрабатывает запросы прогноза
type ForecastHandler struct {
	auth     Authenticator
	forecast ForecastService
	responder
}

// NewForecastHandler создает новый handler прогноза
func NewForecastHandler(logger *slog.Logger, auth Authenticator, forecast ForecastService) *ForecastHandler {
	return &ForecastHandler{
		responder: responder{logger: logger},
		auth:      auth,
		forecast:  forecast,
	}
}

// Forecast обрабатывает POST /api/forecast
func (h *ForecastHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	session, ok := h.authenticate(w, r, h.auth)
	if !ok {
		return
	}

	var req api.ForecastRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	history, err := validation.ParseHistory(req.History)
	if err != nil {
		h.logger.WarnContext(r.Context(), "invalid forecast history", slog.Any("error", err))
		h.sendError(w, validation.ErrInvalidHistory.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.forecast.Forecast(r.Context(), session.UserID, history, validation.ParseHorizon(req.Horizon))
	if err != nil {
		h.sendServiceError(r.Context(), w, "forecast", err)
		return
	}

	h.sendJSON(w, result, http.StatusOK)
}
