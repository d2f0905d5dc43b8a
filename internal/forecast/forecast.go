// Package forecast строит детерминированную краткосрочную проекцию часов.
//
// Никакой статистики здесь нет: от последнего известного значения
// откладывается затухающая синусоида sin(i/3)*0.5, границы фиксированы
// на уровне ±20%.
package forecast

import (
	"math"
	"time"

	"github.com/iudanet/codehours/internal/models"
)

const (
	// DefaultHorizon количество дней, если горизонт не задан или не число
	DefaultHorizon = 7
	// MinHorizon минимальный горизонт
	MinHorizon = 1
	// MaxHorizon максимальный горизонт
	MaxHorizon = 90
	// MaxHistory сколько последних записей берется, если история не передана
	MaxHistory = 90

	amplitude  = 0.5
	period     = 3.0
	lowerRatio = 0.8
	upperRatio = 1.2
)

// ClampHorizon приводит запрошенный горизонт к [MinHorizon, MaxHorizon],
// дробная часть отбрасывается. NaN дает DefaultHorizon.
func ClampHorizon(requested float64) int {
	if math.IsNaN(requested) {
		return DefaultHorizon
	}
	clamped := math.Max(MinHorizon, math.Min(MaxHorizon, requested))
	return int(math.Trunc(clamped))
}

// Project строит прогноз на horizon дней после последней точки истории.
// now используется только при пустой истории.
func Project(history []models.HistoryPoint, horizon int, now time.Time) models.Forecast {
	horizon = ClampHorizon(float64(horizon))

	lastDate := models.DateOf(now)
	lastHours := 1.0
	if n := len(history); n > 0 {
		last := history[n-1]
		lastDate = last.Date
		if last.Hours != 0 && !math.IsNaN(last.Hours) {
			lastHours = last.Hours
		}
	}

	predictions := make([]models.Prediction, 0, horizon)
	for i := 0; i < horizon; i++ {
		hours := math.Max(0, lastHours+math.Sin(float64(i)/period)*amplitude)
		predictions = append(predictions, models.Prediction{
			Date:  lastDate.AddDays(i + 1),
			Hours: round2(hours),
			Lower: round2(hours * lowerRatio),
			Upper: round2(hours * upperRatio),
		})
	}

	return models.Forecast{
		HistoryCount: len(history),
		Predictions:  predictions,
	}
}

// FromEntries превращает записи журнала в точки истории, сохраняя порядок
func FromEntries(entries []*models.LogEntry) []models.HistoryPoint {
	points := make([]models.HistoryPoint, 0, len(entries))
	for _, e := range entries {
		points = append(points, models.HistoryPoint{Date: e.Date, Hours: e.Hours})
	}
	return points
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
