package handlers

import (
	"github.com/lumumba11/carbon-tracker-dashboard/internal/dto"
	"github.com/lumumba11/carbon-tracker-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	agg          *service.AggregationService
	insights     *service.InsightService
	recs         *service.RecommendationService
	achievements *service.AchievementService
	logger       *zap.Logger
}

func NewDashboardHandler(
	agg *service.AggregationService,
	insights *service.InsightService,
	recs *service.RecommendationService,
	achievements *service.AchievementService,
	logger *zap.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		agg:          agg,
		insights:     insights,
		recs:         recs,
		achievements: achievements,
		logger:       logger,
	}
}

// Dashboard returns everything the dashboard view needs in one payload:
// summary, daily trend, category breakdown, insights, recommendations,
// and earned achievements. All of it is derived from the log on this read.
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	sess, err := sessionFrom(c)
	if err != nil {
		return err
	}

	entries := sess.Log.Entries()
	goal := sess.WeeklyGoal()

	total := h.agg.Total(entries)
	byCategory := h.agg.ByCategory(entries)
	insights := h.insights.Derive(entries, goal)

	return c.JSON(dto.DashboardResponse{
		Summary: dto.DashboardSummary{
			TotalEmissions: dto.Round2(total),
			WeeklyGoal:     goal,
			LogsCount:      len(entries),
			Status:         string(insights.Status),
		},
		DailyTrend:        dto.NewDailyPoints(h.agg.Daily(entries)),
		CategoryBreakdown: dto.NewCategoryPoints(byCategory, total),
		Insights:          dto.NewInsightsResponse(insights, h.insights.Compare(total)),
		Recommendations:   dto.NewRecommendationResponses(h.recs.Evaluate(byCategory)),
		Achievements:      dto.NewAchievementResponses(h.achievements.Earned(entries, goal)),
	})
}

// Insights returns the derived summary. The weekly_goal query parameter
// overrides the session goal for this evaluation only.
func (h *DashboardHandler) Insights(c *fiber.Ctx) error {
	sess, err := sessionFrom(c)
	if err != nil {
		return err
	}

	goal := sess.WeeklyGoal()
	if override := c.QueryFloat("weekly_goal", 0); override > 0 {
		goal = override
	}

	entries := sess.Log.Entries()
	insights := h.insights.Derive(entries, goal)
	return c.JSON(dto.NewInsightsResponse(insights, h.insights.Compare(insights.TotalEmissions)))
}

// Recommendations evaluates the rule table against the current category
// aggregates.
func (h *DashboardHandler) Recommendations(c *fiber.Ctx) error {
	sess, err := sessionFrom(c)
	if err != nil {
		return err
	}

	byCategory := h.agg.ByCategory(sess.Log.Entries())
	return c.JSON(dto.NewRecommendationResponses(h.recs.Evaluate(byCategory)))
}

// Achievements lists the badges the session has earned so far.
func (h *DashboardHandler) Achievements(c *fiber.Ctx) error {
	sess, err := sessionFrom(c)
	if err != nil {
		return err
	}

	earned := h.achievements.Earned(sess.Log.Entries(), sess.WeeklyGoal())
	return c.JSON(dto.NewAchievementResponses(earned))
}

// SetGoal updates the session's weekly goal.
func (h *DashboardHandler) SetGoal(c *fiber.Ctx) error {
	sess, err := sessionFrom(c)
	if err != nil {
		return err
	}

	var req dto.SetGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := sess.SetWeeklyGoal(req.WeeklyGoal); err != nil {
		return respondError(c, err)
	}

	h.logger.Info("Weekly goal updated",
		zap.String("session_id", sess.ID.String()),
		zap.Float64("weekly_goal", req.WeeklyGoal),
	)
	return c.JSON(fiber.Map{"weekly_goal": req.WeeklyGoal})
}
