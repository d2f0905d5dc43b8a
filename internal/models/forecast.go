package models

// HistoryPoint точка истории, используемая для прогноза
type HistoryPoint struct {
	Date  Date    `json:"date"`
	Hours float64 `json:"hours"`
}

// Prediction прогноз часов на один день с нижней и верхней границей
type Prediction struct {
	Date  Date    `json:"date"`
	Hours float64 `json:"hours"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Forecast результат прогноза
type Forecast struct {
	Predictions  []Prediction `json:"predictions"`
	HistoryCount int          `json:"historyCount"`
}
