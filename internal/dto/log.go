package dto

import (
	"math"
	"time"

	"github.com/lumumba11/carbon-tracker-dashboard/internal/models"
)

// Round2 rounds to two decimal places for display. Services keep full
// precision; only the API boundary rounds.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

type AddLogRequest struct {
	Category string  `json:"category"`
	Quantity float64 `json:"quantity"`
}

type LogEntryResponse struct {
	ID        int64   `json:"id"`
	Category  string  `json:"category"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	CO2e      float64 `json:"co2e"`
	Timestamp string  `json:"timestamp"`
}

func NewLogEntryResponse(e models.LogEntry) LogEntryResponse {
	unit := ""
	if factor, ok := e.Category.Factor(); ok {
		unit = factor.Unit
	}
	return LogEntryResponse{
		ID:        e.ID,
		Category:  string(e.Category),
		Quantity:  e.Quantity,
		Unit:      unit,
		CO2e:      Round2(e.CO2e),
		Timestamp: e.Timestamp.Format(time.RFC3339),
	}
}

func NewLogEntryResponses(entries []models.LogEntry) []LogEntryResponse {
	out := make([]LogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, NewLogEntryResponse(e))
	}
	return out
}
