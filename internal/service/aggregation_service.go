package service

import (
	"github.com/lumumba11/carbon-tracker-dashboard/internal/models"

	"go.uber.org/zap"
)

// dayLabelLayout gives the "Jan 2" month+day labels the charts group by.
// Year is deliberately absent: entries on the same month and day of
// different years share a bucket.
const dayLabelLayout = "Jan 2"

// AggregationService derives daily and category aggregates from the raw
// log. Everything here is recomputed on demand from the authoritative
// entries; nothing is cached or incrementally maintained.
type AggregationService struct {
	logger *zap.Logger
}

func NewAggregationService(logger *zap.Logger) *AggregationService {
	return &AggregationService{logger: logger}
}

// Daily groups entries by calendar-day label and sums CO2e per group.
// Groups appear in the order their day label first occurs in the log; no
// chronological sort is applied. Values keep full precision — display
// rounding happens at the API boundary.
func (s *AggregationService) Daily(entries []models.LogEntry) []models.DailyAggregate {
	var out []models.DailyAggregate
	index := make(map[string]int, len(entries))

	for _, e := range entries {
		day := e.Timestamp.Format(dayLabelLayout)
		if i, ok := index[day]; ok {
			out[i].TotalCO2e += e.CO2e
			continue
		}
		index[day] = len(out)
		out = append(out, models.DailyAggregate{Day: day, TotalCO2e: e.CO2e})
	}
	return out
}

// ByCategory groups entries by category and sums CO2e per group, in
// first-seen category order.
func (s *AggregationService) ByCategory(entries []models.LogEntry) []models.CategoryAggregate {
	var out []models.CategoryAggregate
	index := make(map[string]int, len(entries))

	for _, e := range entries {
		cat := string(e.Category)
		if i, ok := index[cat]; ok {
			out[i].TotalCO2e += e.CO2e
			continue
		}
		index[cat] = len(out)
		out = append(out, models.CategoryAggregate{Category: cat, TotalCO2e: e.CO2e})
	}
	return out
}

// Total sums CO2e over the whole log.
func (s *AggregationService) Total(entries []models.LogEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.CO2e
	}
	return total
}
