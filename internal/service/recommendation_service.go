package service

import (
	"github.com/lumumba11/carbon-tracker-dashboard/internal/models"

	"go.uber.org/zap"
)

// recommendationRule fires when the aggregate for its category exceeds the
// threshold (kg CO2e). Rules are independent: every matching rule produces
// its recommendation, in table order.
type recommendationRule struct {
	category  models.ActivityCategory
	threshold float64
	rec       models.Recommendation
}

var recommendationRules = []recommendationRule{
	{
		category:  models.CategoryElectricity,
		threshold: 30,
		rec: models.Recommendation{
			Category: string(models.CategoryElectricity),
			Title:    "High Electricity Usage",
			Tip:      "Switch to LED bulbs and unplug devices when not in use",
			Impact:   "↓ 20-30% reduction",
		},
	},
	{
		category:  models.CategoryCar,
		threshold: 10,
		rec: models.Recommendation{
			Category: string(models.CategoryCar),
			Title:    "Transportation Impact",
			Tip:      "Try carpooling or public transport 2-3 days per week",
			Impact:   "↓ 40% reduction",
		},
	},
	{
		category:  models.CategoryFood,
		threshold: 15,
		rec: models.Recommendation{
			Category: string(models.CategoryFood),
			Title:    "Food Footprint",
			Tip:      "Reduce meat consumption and choose local produce",
			Impact:   "↓ 25% reduction",
		},
	},
}

var fallbackRecommendation = models.Recommendation{
	Title:  "Great Work!",
	Tip:    "You're doing well. Keep maintaining sustainable habits",
	Impact: "✓ Stay green",
}

// RecommendationService evaluates the fixed rule table against category
// aggregates.
type RecommendationService struct {
	logger *zap.Logger
}

func NewRecommendationService(logger *zap.Logger) *RecommendationService {
	return &RecommendationService{logger: logger}
}

// Evaluate returns one recommendation per matching rule, in rule order.
// When nothing matches it returns exactly the single fallback tip.
func (s *RecommendationService) Evaluate(aggregates []models.CategoryAggregate) []models.Recommendation {
	totals := make(map[models.ActivityCategory]float64, len(aggregates))
	for _, a := range aggregates {
		totals[models.ActivityCategory(a.Category)] = a.TotalCO2e
	}

	var out []models.Recommendation
	for _, rule := range recommendationRules {
		if totals[rule.category] > rule.threshold {
			out = append(out, rule.rec)
		}
	}
	if len(out) == 0 {
		out = append(out, fallbackRecommendation)
	}
	return out
}
