package api

import "encoding/json"

// CreateLogRequest тело POST /api/logs
type CreateLogRequest struct {
	Hours   *float64 `json:"hours"`
	Project *string  `json:"project,omitempty"`
	Notes   *string  `json:"notes,omitempty"`
	Date    string   `json:"date"`
}

// UpdateLogRequest тело PUT /api/logs/{id}.
// Пустые date/project и отсутствующие hours/notes не меняют запись.
type UpdateLogRequest struct {
	Hours   *float64 `json:"hours,omitempty"`
	Notes   *string  `json:"notes,omitempty"`
	Date    string   `json:"date,omitempty"`
	Project string   `json:"project,omitempty"`
}

// ForecastRequest тело POST /api/forecast.
// Поля разбираются вручную: history может отсутствовать, horizon может быть строкой.
type ForecastRequest struct {
	History json.RawMessage `json:"history,omitempty"`
	Horizon json.RawMessage `json:"horizon,omitempty"`
}
