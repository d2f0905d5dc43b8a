package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/codehours/internal/models"
	"github.com/iudanet/codehours/internal/server/storage"
	"github.com/iudanet/codehours/internal/server/token"
	"github.com/iudanet/codehours/internal/validation"
)

// Сообщения, которые видит клиент
const (
	MsgInvalidCredentials = "Invalid credentials"
	MsgUserExists         = "User exists"
	MsgResetRequested     = "If the email exists, a password reset link has been sent."
	MsgResetInputRequired = "Token and new password (min 8 chars) required"
	MsgInvalidResetToken  = "Invalid or expired reset token"
	MsgPasswordReset      = "Password reset successfully. You can now login with your new password."
	MsgInvalidToken       = "Invalid token"
	MsgUserNotFound       = "Not found"
)

// Session результат проверки сессионного токена
type Session struct {
	UserID string
	Email  string
}

// AuthResult пользователь и выданный ему сессионный токен
type AuthResult struct {
	ExpiresAt time.Time
	User      *models.User
	Token     string
}

// ResetRequest результат запроса сброса пароля.
// Token пустой, если email не найден. Показывать его клиенту можно только в dev режиме.
type ResetRequest struct {
	Message string
	Token   string
}

// AuthService регистрация, вход, сброс пароля и проверка сессий
type AuthService struct {
	logger     *slog.Logger
	users      storage.UserStorage
	tokens     *token.Manager
	now        func() time.Time
	bcryptCost int
}

// AuthOption настраивает AuthService
type AuthOption func(*AuthService)

// WithAuthClock подменяет источник времени
func WithAuthClock(now func() time.Time) AuthOption {
	return func(s *AuthService) {
		s.now = now
	}
}

// WithBcryptCost задает стоимость bcrypt (в тестах можно bcrypt.MinCost)
func WithBcryptCost(cost int) AuthOption {
	return func(s *AuthService) {
		s.bcryptCost = cost
	}
}

// NewAuthService создает AuthService
func NewAuthService(logger *slog.Logger, users storage.UserStorage, tokens *token.Manager, opts ...AuthOption) *AuthService {
	s := &AuthService{
		logger:     logger,
		users:      users,
		tokens:     tokens,
		now:        time.Now,
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register создает пользователя и выдает сессионный токен
func (s *AuthService) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	if err := validation.ValidateCredentials(email, password); err != nil {
		return nil, invalidInput(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, newError(KindInternal, "Server error", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			s.logger.WarnContext(ctx, "user already exists", slog.String("email", email))
			return nil, newError(KindConflict, MsgUserExists, err)
		}
		return nil, storageError("create user", err)
	}

	s.logger.InfoContext(ctx, "user registered", slog.String("user_id", user.ID))

	return s.issueSession(ctx, user)
}

// Login проверяет пароль и выдает сессионный токен.
// Неизвестный email и неверный пароль неразличимы для клиента.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if err := validation.ValidateCredentials(email, password); err != nil {
		return nil, invalidInput(err.Error())
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			s.logger.WarnContext(ctx, "login failed: unknown email")
			return nil, newError(KindUnauthorized, MsgInvalidCredentials, err)
		}
		return nil, storageError("get user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.WarnContext(ctx, "login failed: wrong password", slog.String("user_id", user.ID))
		return nil, newError(KindUnauthorized, MsgInvalidCredentials, err)
	}

	s.logger.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID))

	return s.issueSession(ctx, user)
}

func (s *AuthService) issueSession(ctx context.Context, user *models.User) (*AuthResult, error) {
	tokenString, expiresAt, err := s.tokens.IssueSession(user.ID, user.Email)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to issue session token", slog.Any("error", err))
		return nil, newError(KindInternal, "Server error", err)
	}
	return &AuthResult{User: user, Token: tokenString, ExpiresAt: expiresAt}, nil
}

// RequestPasswordReset выпускает токен сброса, если email существует.
// Ответ одинаковый для существующих и несуществующих адресов.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (*ResetRequest, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, invalidInput(err.Error())
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			s.logger.InfoContext(ctx, "password reset requested for unknown email")
			return &ResetRequest{Message: MsgResetRequested}, nil
		}
		return nil, storageError("get user", err)
	}

	resetToken, expiresAt, err := s.tokens.IssueReset(user.ID, user.Email)
	if err != nil {
		return nil, newError(KindInternal, "Server error", err)
	}

	if err := s.users.SetResetToken(ctx, user.ID, resetToken, expiresAt); err != nil {
		return nil, storageError("set reset token", err)
	}

	// Письмо не отправляется: вместо этого пишем в лог
	s.logger.InfoContext(ctx, "password reset link issued",
		slog.String("user_id", user.ID),
		slog.Time("expires_at", expiresAt))
	s.logger.DebugContext(ctx, "password reset token", slog.String("token", resetToken))

	return &ResetRequest{Message: MsgResetRequested, Token: resetToken}, nil
}

// CompletePasswordReset меняет пароль по токену сброса. Токен одноразовый.
func (s *AuthService) CompletePasswordReset(ctx context.Context, resetToken, newPassword string) (string, error) {
	if resetToken == "" || validation.ValidateNewPassword(newPassword) != nil {
		return "", newError(KindInvalidToken, MsgResetInputRequired, nil)
	}

	claims, err := s.tokens.VerifyReset(resetToken)
	if err != nil {
		s.logger.WarnContext(ctx, "invalid reset token", slog.Any("error", err))
		return "", newError(KindInvalidToken, MsgInvalidResetToken, err)
	}

	user, err := s.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return "", newError(KindInvalidToken, MsgInvalidResetToken, err)
		}
		return "", storageError("get user", err)
	}

	now := s.now()
	if !user.HasPendingReset() || *user.ResetToken != resetToken || !user.ResetTokenExpiry.After(now) {
		s.logger.WarnContext(ctx, "reset token superseded or expired", slog.String("user_id", user.ID))
		return "", newError(KindInvalidToken, MsgInvalidResetToken, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return "", newError(KindInternal, "Server error", err)
	}

	// Повторная проверка токена внутри UPDATE: параллельный сброс пройдет только один раз
	if err := s.users.CompletePasswordReset(ctx, user.ID, resetToken, string(hash), now); err != nil {
		if errors.Is(err, storage.ErrResetTokenMismatch) {
			return "", newError(KindInvalidToken, MsgInvalidResetToken, err)
		}
		return "", storageError("complete password reset", err)
	}

	s.logger.InfoContext(ctx, "password reset completed", slog.String("user_id", user.ID))

	return MsgPasswordReset, nil
}

// Authenticate проверяет сессионный токен и возвращает сессию
func (s *AuthService) Authenticate(tokenString string) (*Session, error) {
	claims, err := s.tokens.VerifySession(tokenString)
	if err != nil {
		return nil, newError(KindInvalidToken, MsgInvalidToken, err)
	}
	return &Session{UserID: claims.UserID, Email: claims.Email}, nil
}

// Me возвращает профиль пользователя
func (s *AuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, newError(KindNotFound, MsgUserNotFound, err)
		}
		return nil, storageError("get user", err)
	}
	return user, nil
}
