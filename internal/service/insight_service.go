package service

import (
	"github.com/lumumba11/carbon-tracker-dashboard/internal/models"

	"go.uber.org/zap"
)

// Reference averages, kg CO2e. Weekly figures back the comparison chart;
// the daily figure is what the assistant quotes.
const (
	KenyaWeeklyAverageKg  = 85
	GlobalWeeklyAverageKg = 120
	GlobalDailyAverageKg  = 17
)

// weeklyWindowDays is the fixed divisor behind the daily average. The log
// is always treated as one week of data regardless of its actual span.
const weeklyWindowDays = 7

// InsightService turns aggregates and the weekly goal into the dashboard's
// summary figures.
type InsightService struct {
	agg    *AggregationService
	logger *zap.Logger
}

func NewInsightService(agg *AggregationService, logger *zap.Logger) *InsightService {
	return &InsightService{agg: agg, logger: logger}
}

// Derive computes insights for the given log and weekly goal. An empty log
// yields zero totals and the empty highest-category sentinel rather than an
// error.
func (s *InsightService) Derive(entries []models.LogEntry, weeklyGoal float64) models.Insights {
	total := s.agg.Total(entries)
	raw := total / weeklyGoal * 100

	status := models.StatusOnTrack
	if raw > 100 {
		status = models.StatusOverBudget
	}

	progress := raw
	if progress > 100 {
		progress = 100
	}

	return models.Insights{
		TotalEmissions:  total,
		WeeklyAverage:   total / weeklyWindowDays,
		WeeklyGoal:      weeklyGoal,
		GoalProgressRaw: raw,
		GoalProgress:    progress,
		Status:          status,
		HighestCategory: HighestCategory(s.agg.ByCategory(entries)),
	}
}

// Compare places the weekly total next to the Kenyan and global averages.
func (s *InsightService) Compare(totalEmissions float64) models.Comparison {
	return models.Comparison{
		You:           totalEmissions,
		KenyaAverage:  KenyaWeeklyAverageKg,
		GlobalAverage: GlobalWeeklyAverageKg,
	}
}

// HighestCategory returns the aggregate with the largest total. Ties keep
// the first aggregate encountered in slice order; this is the one
// deterministic tie-break used everywhere, including the assistant. An
// empty slice yields the {"", 0} sentinel.
func HighestCategory(aggregates []models.CategoryAggregate) models.CategoryAggregate {
	highest := models.CategoryAggregate{}
	for _, a := range aggregates {
		if a.TotalCO2e > highest.TotalCO2e {
			highest = a
		}
	}
	return highest
}
