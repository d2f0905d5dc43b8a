package models

import "time"

// DefaultProject категория, которая присваивается записи без явного проекта
const DefaultProject = "General"

// LogEntry представляет запись о затраченных часах за один календарный день
type LogEntry struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Date      Date      `json:"date"`
	ID        string    `json:"id"`
	UserID    string    `json:"-"` // владелец записи, не меняется после создания
	Project   string    `json:"project"`
	Notes     string    `json:"notes"`
	Hours     float64   `json:"hours"`
}

// LogFilter задает необязательный диапазон дат (границы включительно)
type LogFilter struct {
	Start *Date
	End   *Date
}

// LogUpdate описывает частичное обновление записи.
// nil означает "поле не передано".
type LogUpdate struct {
	Date    *Date
	Hours   *float64
	Project *string
	Notes   *string
}

// IsEmpty возвращает true, если ни одно поле не передано
func (u LogUpdate) IsEmpty() bool {
	return u.Date == nil && u.Hours == nil && u.Project == nil && u.Notes == nil
}

// Apply применяет переданные поля к записи
func (u LogUpdate) Apply(entry *LogEntry) {
	if u.Date != nil {
		entry.Date = *u.Date
	}
	if u.Hours != nil {
		entry.Hours = *u.Hours
	}
	if u.Project != nil {
		entry.Project = *u.Project
	}
	if u.Notes != nil {
		entry.Notes = *u.Notes
	}
}
