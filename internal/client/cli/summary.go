package cli

import "github.com/iudanet/codehours/internal/models"

// logSummary итог по списку записей
type logSummary struct {
	Count   int
	Total   float64
	Average float64
}

// summarize считает сумму и среднее по записям (среднее на запись, 0 для пустого списка)
func summarize(entries []*models.LogEntry) logSummary {
	s := logSummary{Count: len(entries)}
	for _, e := range entries {
		s.Total += e.Hours
	}
	if s.Count > 0 {
		s.Average = s.Total / float64(s.Count)
	}
	return s
}

// forecastDay строка прогноза с отметкой выше/ниже среднего
type forecastDay struct {
	models.Prediction
	High bool
}

// forecastView данные для forecastTemplate
type forecastView struct {
	Days         []forecastDay
	HistoryCount int
	Total        float64
	Average      float64
}

func newForecastView(fc *models.Forecast) forecastView {
	view := forecastView{HistoryCount: fc.HistoryCount}
	for _, p := range fc.Predictions {
		view.Total += p.Hours
	}
	if n := len(fc.Predictions); n > 0 {
		view.Average = view.Total / float64(n)
	}
	for _, p := range fc.Predictions {
		view.Days = append(view.Days, forecastDay{Prediction: p, High: p.Hours >= view.Average})
	}
	return view
}
