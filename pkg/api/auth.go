package api

import "time"

// CredentialsRequest тело запроса регистрации и входа
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest = CredentialsRequest

// LoginRequest представляет запрос на аутентификацию
type LoginRequest = CredentialsRequest

// UserInfo публичные данные пользователя
type UserInfo struct {
	ID    string `json:"id"`    // UUID пользователя
	Email string `json:"email"` // email как при регистрации
}

// AuthResponse ответ на успешную регистрацию или вход
type AuthResponse struct {
	User  UserInfo `json:"user"`
	Token string   `json:"token"` // сессионный bearer token
}

// ForgotPasswordRequest запрос на сброс пароля
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPasswordResponse ответ на запрос сброса пароля.
// ResetToken заполняется только в dev режиме (вместо письма).
type ForgotPasswordResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken,omitempty"`
}

// ResetPasswordRequest завершение сброса пароля
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// MessageResponse ответ, содержащий только сообщение
type MessageResponse struct {
	Message string `json:"message"`
}

// MeResponse профиль текущего пользователя
type MeResponse struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Email     string    `json:"email"`
}

// HealthResponse ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // текст HTTP статуса
	Message string `json:"message,omitempty"` // сообщение для пользователя
}
