package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/codehours/internal/server/service"
	"github.com/iudanet/codehours/pkg/api"
)

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	auth AuthService
	responder
	exposeResetToken bool
}

// NewAuthHandler создает новый handler для авторизации.
// exposeResetToken возвращает токен сброса в ответе (только для разработки).
func NewAuthHandler(logger *slog.Logger, auth AuthService, exposeResetToken bool) *AuthHandler {
	return &AuthHandler{
		responder:        responder{logger: logger},
		auth:             auth,
		exposeResetToken: exposeResetToken,
	}
}

// Register обрабатывает POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	res, err := h.auth.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		h.sendServiceError(r.Context(), w, "register", err)
		return
	}

	h.sendJSON(w, authResponse(res), http.StatusOK)
}

// Login обрабатывает POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	res, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.sendServiceError(r.Context(), w, "login", err)
		return
	}

	h.sendJSON(w, authResponse(res), http.StatusOK)
}

// ForgotPassword обрабатывает POST /api/auth/forgot-password
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req api.ForgotPasswordRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	res, err := h.auth.RequestPasswordReset(r.Context(), req.Email)
	if err != nil {
		h.sendServiceError(r.Context(), w, "forgot password", err)
		return
	}

	resp := api.ForgotPasswordResponse{Message: res.Message}
	if h.exposeResetToken {
		resp.ResetToken = res.Token
	}
	h.sendJSON(w, resp, http.StatusOK)
}

// ResetPassword обрабатывает POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req api.ResetPasswordRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	msg, err := h.auth.CompletePasswordReset(r.Context(), req.Token, req.NewPassword)
	if err != nil {
		// Недействительный токен сброса это ошибка запроса, а не сессии
		if service.KindOf(err) == service.KindInvalidToken {
			h.logger.WarnContext(r.Context(), "reset password rejected", slog.Any("error", err))
			h.sendError(w, service.MessageOf(err), http.StatusBadRequest)
			return
		}
		h.sendServiceError(r.Context(), w, "reset password", err)
		return
	}

	h.sendJSON(w, api.MessageResponse{Message: msg}, http.StatusOK)
}

// Me обрабатывает GET /api/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := h.authenticate(w, r, h.auth)
	if !ok {
		return
	}

	user, err := h.auth.Me(r.Context(), session.UserID)
	if err != nil {
		h.sendServiceError(r.Context(), w, "me", err)
		return
	}

	h.sendJSON(w, api.MeResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, http.StatusOK)
}

func authResponse(res *service.AuthResult) api.AuthResponse {
	return api.AuthResponse{
		User: api.UserInfo{
			ID:    res.User.ID,
			Email: res.User.Email,
		},
		Token: res.Token,
	}
}
