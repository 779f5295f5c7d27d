package dto

import "github.com/lumumba11/carbon-tracker-dashboard/internal/models"

type DailyPoint struct {
	Day       string  `json:"day"`
	Emissions float64 `json:"emissions"`
}

type CategoryPoint struct {
	Category   string  `json:"category"`
	Emissions  float64 `json:"emissions"`
	Percentage float64 `json:"percentage"`
}

type HighestCategoryResponse struct {
	Category  string  `json:"category"`
	TotalCO2e float64 `json:"total_co2e"`
}

type ComparisonResponse struct {
	You           float64 `json:"you"`
	KenyaAverage  float64 `json:"kenya_average"`
	GlobalAverage float64 `json:"global_average"`
}

type InsightsResponse struct {
	TotalEmissions  float64                 `json:"total_emissions"`
	WeeklyAverage   float64                 `json:"weekly_average"`
	WeeklyGoal      float64                 `json:"weekly_goal"`
	GoalProgress    float64                 `json:"goal_progress"`
	Status          string                  `json:"status"`
	HighestCategory HighestCategoryResponse `json:"highest_category"`
	Comparison      ComparisonResponse      `json:"comparison"`
}

type RecommendationResponse struct {
	Category string `json:"category,omitempty"`
	Title    string `json:"title"`
	Tip      string `json:"tip"`
	Impact   string `json:"impact"`
}

type AchievementResponse struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type DashboardSummary struct {
	TotalEmissions float64 `json:"total_emissions"`
	WeeklyGoal     float64 `json:"weekly_goal"`
	LogsCount      int     `json:"logs_count"`
	Status         string  `json:"status"`
}

type DashboardResponse struct {
	Summary           DashboardSummary         `json:"summary"`
	DailyTrend        []DailyPoint             `json:"daily_trend"`
	CategoryBreakdown []CategoryPoint          `json:"category_breakdown"`
	Insights          InsightsResponse         `json:"insights"`
	Recommendations   []RecommendationResponse `json:"recommendations"`
	Achievements      []AchievementResponse    `json:"achievements"`
}

type SetGoalRequest struct {
	WeeklyGoal float64 `json:"weekly_goal"`
}

func NewDailyPoints(aggs []models.DailyAggregate) []DailyPoint {
	out := make([]DailyPoint, 0, len(aggs))
	for _, a := range aggs {
		out = append(out, DailyPoint{Day: a.Day, Emissions: Round2(a.TotalCO2e)})
	}
	return out
}

// NewCategoryPoints renders category aggregates with each group's share of
// the full-precision total.
func NewCategoryPoints(aggs []models.CategoryAggregate, total float64) []CategoryPoint {
	out := make([]CategoryPoint, 0, len(aggs))
	for _, a := range aggs {
		var pct float64
		if total > 0 {
			pct = a.TotalCO2e / total * 100
		}
		out = append(out, CategoryPoint{
			Category:   a.Category,
			Emissions:  Round2(a.TotalCO2e),
			Percentage: Round1(pct),
		})
	}
	return out
}

func NewInsightsResponse(in models.Insights, cmp models.Comparison) InsightsResponse {
	return InsightsResponse{
		TotalEmissions: Round2(in.TotalEmissions),
		WeeklyAverage:  Round1(in.WeeklyAverage),
		WeeklyGoal:     in.WeeklyGoal,
		GoalProgress:   Round1(in.GoalProgress),
		Status:         string(in.Status),
		HighestCategory: HighestCategoryResponse{
			Category:  in.HighestCategory.Category,
			TotalCO2e: Round2(in.HighestCategory.TotalCO2e),
		},
		Comparison: ComparisonResponse{
			You:           Round2(cmp.You),
			KenyaAverage:  cmp.KenyaAverage,
			GlobalAverage: cmp.GlobalAverage,
		},
	}
}

func NewRecommendationResponses(recs []models.Recommendation) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, RecommendationResponse{
			Category: r.Category,
			Title:    r.Title,
			Tip:      r.Tip,
			Impact:   r.Impact,
		})
	}
	return out
}

func NewAchievementResponses(achievements []models.Achievement) []AchievementResponse {
	out := make([]AchievementResponse, 0, len(achievements))
	for _, a := range achievements {
		out = append(out, AchievementResponse{
			Code:        a.Code,
			Title:       a.Title,
			Description: a.Description,
		})
	}
	return out
}
