package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout формат календарного дня в JSON и в хранилище
const DateLayout = "2006-01-02"

// ErrInvalidDate возвращается, если строку нельзя разобрать как дату
var ErrInvalidDate = errors.New("invalid date")

// Date календарный день без времени (UTC полночь)
type Date struct {
	t time.Time
}

// NewDate создает дату из года, месяца и дня
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf возвращает календарный день момента t в UTC
func DateOf(t time.Time) Date {
	u := t.UTC()
	return NewDate(u.Year(), u.Month(), u.Day())
}

// ParseDate разбирает "YYYY-MM-DD" или RFC3339 timestamp.
// Для timestamp берется календарный день в UTC.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return DateOf(t), nil
	}
	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// MustParseDate как ParseDate, но паникует при ошибке. Для тестов и констант.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time возвращает дату как time.Time (UTC полночь)
func (d Date) Time() time.Time { return d.t }

// IsZero сообщает, что дата не задана
func (d Date) IsZero() bool { return d.t.IsZero() }

// AddDays сдвигает дату на n календарных дней
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Before сообщает, что d раньше other
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// After сообщает, что d позже other
func (d Date) After(other Date) bool { return d.t.After(other.t) }

func (d Date) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// MarshalJSON кодирует дату строкой "YYYY-MM-DD"
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON принимает строку "YYYY-MM-DD" или RFC3339
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: expected string", ErrInvalidDate)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value реализует driver.Valuer: дата хранится как текст "YYYY-MM-DD"
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan реализует sql.Scanner для TEXT (SQLite) и DATE (PostgreSQL) колонок
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		// DATE из PostgreSQL приходит как полночь; берем календарные поля как есть
		*d = NewDate(v.Year(), v.Month(), v.Day())
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidDate, src)
	}
}
