package service

import (
	"errors"
	"fmt"

	"github.com/iudanet/codehours/internal/server/storage"
)

// Kind категория ошибки сервисного слоя. Граница (HTTP) отображает ее в статус.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindUnauthorized
	KindInvalidToken
	KindNotFound
	KindConflict
	KindUnavailable
)

// MsgUnavailable сообщение для недоступной базы данных
const MsgUnavailable = "Database connection error. Please check if the database is running."

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindUnauthorized:
		return "unauthorized"
	case KindInvalidToken:
		return "invalid_token"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// Error ошибка сервиса: категория, сообщение для пользователя и исходная причина.
// Message можно показывать клиенту, Err только логировать.
type Error struct {
	Err     error
	Message string
	Kind    Kind
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf возвращает категорию ошибки. Ошибки не из сервиса считаются Internal.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// MessageOf возвращает сообщение для клиента
func MessageOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Message
	}
	return "Server error"
}

func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func invalidInput(message string) *Error {
	return newError(KindInvalidInput, message, nil)
}

// storageError переводит непредвиденную ошибку хранилища в Unavailable или Internal
func storageError(op string, err error) *Error {
	if errors.Is(err, storage.ErrUnavailable) {
		return newError(KindUnavailable, MsgUnavailable, fmt.Errorf("%s: %w", op, err))
	}
	return newError(KindInternal, "Server error", fmt.Errorf("%s: %w", op, err))
}
