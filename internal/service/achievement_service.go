package service

import (
	"github.com/lumumba11/carbon-tracker-dashboard/internal/models"

	"go.uber.org/zap"
)

// AchievementService derives earned badges from the log. Badges are a pure
// function of the current session state, recomputed on read like every
// other aggregate.
type AchievementService struct {
	agg    *AggregationService
	logger *zap.Logger
}

func NewAchievementService(agg *AggregationService, logger *zap.Logger) *AchievementService {
	return &AchievementService{agg: agg, logger: logger}
}

// Earned returns the badges the current log qualifies for, in a fixed
// order.
func (s *AchievementService) Earned(entries []models.LogEntry, weeklyGoal float64) []models.Achievement {
	var out []models.Achievement

	if len(entries) >= 1 {
		out = append(out, models.Achievement{
			Code:        "first_steps",
			Title:       "First Steps",
			Description: "Logged your first activity",
		})
	}
	if len(entries) >= 7 {
		out = append(out, models.Achievement{
			Code:        "data_devotee",
			Title:       "Data Devotee",
			Description: "Logged seven or more activities",
		})
	}
	if len(s.agg.Daily(entries)) >= 7 {
		out = append(out, models.Achievement{
			Code:        "week_of_awareness",
			Title:       "Week of Awareness",
			Description: "Tracked activities across seven different days",
		})
	}
	if len(entries) >= 1 && s.agg.Total(entries) <= weeklyGoal {
		out = append(out, models.Achievement{
			Code:        "under_budget",
			Title:       "Under Budget",
			Description: "Kept total emissions within your weekly goal",
		})
	}
	return out
}
