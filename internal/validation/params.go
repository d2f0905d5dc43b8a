package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/codehours/internal/forecast"
	"github.com/iudanet/codehours/internal/models"
)

// ParseOptionalDate разбирает необязательный параметр даты (например, из query string).
// Пустая строка дает nil.
func ParseOptionalDate(name, value string) (*models.Date, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	d, err := models.ParseDate(value)
	if err != nil {
		return nil, fmt.Errorf("%s must be a date in YYYY-MM-DD format", name)
	}
	return &d, nil
}

// ParseHorizon разбирает поле horizon запроса прогноза.
// Отсутствует, null или не число -> forecast.DefaultHorizon.
// Число или числовая строка -> ограничивается [1, 90].
func ParseHorizon(raw json.RawMessage) int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return forecast.DefaultHorizon
	}

	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return forecast.ClampHorizon(number)
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
			return forecast.ClampHorizon(parsed)
		}
	}

	return forecast.DefaultHorizon
}

// ErrInvalidHistory history не является списком точек {date, hours}
var ErrInvalidHistory = errors.New("history must be a list of {date, hours} points")

// ParseHistory разбирает поле history запроса прогноза.
// Если поле отсутствует или не является массивом, возвращается nil:
// история будет загружена из журнала пользователя.
func ParseHistory(raw json.RawMessage) ([]models.HistoryPoint, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, nil
	}

	var points []models.HistoryPoint
	if err := json.Unmarshal(raw, &points); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHistory, err)
	}
	for _, p := range points {
		if p.Date.IsZero() {
			return nil, ErrInvalidHistory
		}
	}
	if points == nil {
		points = []models.HistoryPoint{}
	}
	return points, nil
}
