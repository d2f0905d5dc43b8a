package models

import "time"

// User представляет зарегистрированного пользователя
type User struct {
	ResetToken       *string    `json:"-"`          // ожидающий reset token (nil если сброс не запрошен)
	ResetTokenExpiry *time.Time `json:"-"`          // срок действия reset token, выставляется вместе с ResetToken
	CreatedAt        time.Time  `json:"created_at"` // время регистрации
	ID               string     `json:"id"`         // UUID пользователя
	Email            string     `json:"email"`      // уникальный email (регистр сохраняется как есть)
	PasswordHash     string     `json:"-"`          // bcrypt хеш пароля
}

// HasPendingReset сообщает, ожидает ли пользователь завершения сброса пароля
func (u *User) HasPendingReset() bool {
	return u.ResetToken != nil && u.ResetTokenExpiry != nil
}
