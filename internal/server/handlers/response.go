package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/codehours/internal/server/service"
	"github.com/iudanet/codehours/pkg/api"
)

const (
	maxBodySize = 1 << 20

	msgInvalidBody  = "invalid request body"
	msgMissingToken = "Missing token"
)

var errMissingToken = errors.New("missing bearer token")

// responder общие методы ответа для всех handler'ов
type responder struct {
	logger *slog.Logger
}

// sendJSON отправляет JSON ответ
func (h responder) sendJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h responder) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}

// sendServiceError отображает ошибку сервиса в HTTP статус.
// Клиент получает только сообщение, причина пишется в лог.
func (h responder) sendServiceError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	status := statusFor(service.KindOf(err))
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, op+" failed", slog.Any("error", err))
	} else {
		h.logger.WarnContext(ctx, op+" rejected", slog.Any("error", err))
	}
	h.sendError(w, service.MessageOf(err), status)
}

// decodeJSON читает тело запроса. Пустое тело считается пустым объектом.
func (h responder) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		h.logger.WarnContext(r.Context(), "failed to decode request body", slog.Any("error", err))
		h.sendError(w, msgInvalidBody, http.StatusBadRequest)
		return false
	}
	return true
}

// authenticate проверяет bearer token и возвращает сессию.
// При ошибке ответ 401 уже отправлен.
func (h responder) authenticate(w http.ResponseWriter, r *http.Request, auth Authenticator) (*service.Session, bool) {
	tokenString, err := bearerToken(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "missing authorization header")
		h.sendError(w, msgMissingToken, http.StatusUnauthorized)
		return nil, false
	}

	session, err := auth.Authenticate(tokenString)
	if err != nil {
		h.sendServiceError(r.Context(), w, "authenticate", err)
		return nil, false
	}
	return session, true
}

// bearerToken извлекает токен из заголовка "Authorization: Bearer <token>"
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	scheme, tokenString, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", errMissingToken
	}
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", errMissingToken
	}
	return tokenString, nil
}

func statusFor(kind service.Kind) int {
	switch kind {
	case service.KindInvalidInput, service.KindConflict:
		return http.StatusBadRequest
	case service.KindUnauthorized, service.KindInvalidToken:
		return http.StatusUnauthorized
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
