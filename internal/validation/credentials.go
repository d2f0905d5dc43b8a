package validation

import (
	"errors"
	"fmt"
	"strings"
)

// MinPasswordLen минимальная длина нового пароля при сбросе
const MinPasswordLen = 8

var (
	// ErrCredentialsRequired email или пароль не переданы
	ErrCredentialsRequired = errors.New("Email and password required")
	// ErrEmailRequired email не передан
	ErrEmailRequired = errors.New("Email required")
)

// ValidateCredentials проверяет наличие email и пароля.
// Формат email не проверяется: email хранится и сравнивается как есть.
func ValidateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return ErrCredentialsRequired
	}
	return nil
}

// ValidateEmail проверяет наличие email
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	return nil
}

// ValidateNewPassword проверяет минимальную длину нового пароля (в символах)
func ValidateNewPassword(password string) error {
	if len([]rune(password)) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}
	return nil
}
