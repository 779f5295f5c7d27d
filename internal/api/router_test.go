package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lumumba11/carbon-tracker-dashboard/internal/api/handlers"
	"github.com/lumumba11/carbon-tracker-dashboard/internal/dto"
	"github.com/lumumba11/carbon-tracker-dashboard/internal/service"
	"github.com/lumumba11/carbon-tracker-dashboard/internal/session"
	"github.com/lumumba11/carbon-tracker-dashboard/pkg/config"
	"github.com/lumumba11/carbon-tracker-dashboard/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, seed bool) *fiber.App {
	t.Helper()
	log := zap.NewNop()

	agg := service.NewAggregationService(log)
	insights := service.NewInsightService(agg, log)
	recs := service.NewRecommendationService(log)
	achievements := service.NewAchievementService(agg, log)

	manager := session.NewManager(config.TrackerConfig{
		DefaultWeeklyGoal: 50,
		WelcomeDelay:      time.Millisecond,
		TypingDelay:       time.Millisecond,
		SeedSample:        seed,
	}, agg, log)
	t.Cleanup(manager.Shutdown)

	return SetupRouter(
		handlers.NewLogHandler(log),
		handlers.NewDashboardHandler(agg, insights, recs, achievements, log),
		handlers.NewChatHandler(log),
		handlers.NewSessionHandler(manager, log),
		manager,
		log,
	)
}

func doJSON(t *testing.T, app *fiber.App, method, path, sessionID string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set(middleware.HeaderSessionID, sessionID)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, payload
}

func TestHealthProbes(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, false)

	resp, body := doJSON(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "healthy")

	resp, body = doJSON(t, app, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Carbon Tracking API is running!")
}

func TestAddLogRoundTrip(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, false)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/logs", "", dto.AddLogRequest{
		Category: "electricity",
		Quantity: 100,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	sessionID := resp.Header.Get(middleware.HeaderSessionID)
	require.NotEmpty(t, sessionID)

	var entry dto.LogEntryResponse
	require.NoError(t, json.Unmarshal(body, &entry))
	assert.Equal(t, int64(1), entry.ID)
	assert.Equal(t, "electricity", entry.Category)
	assert.Equal(t, "kWh", entry.Unit)
	assert.InDelta(t, 18.0, entry.CO2e, 1e-9)

	// The same session immediately sees the entry in its aggregates.
	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/dashboard", sessionID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dashboard dto.DashboardResponse
	require.NoError(t, json.Unmarshal(body, &dashboard))
	assert.Equal(t, 1, dashboard.Summary.LogsCount)
	assert.InDelta(t, 18.0, dashboard.Summary.TotalEmissions, 1e-9)
	require.Len(t, dashboard.CategoryBreakdown, 1)
	assert.Equal(t, "electricity", dashboard.CategoryBreakdown[0].Category)
	assert.InDelta(t, 100.0, dashboard.CategoryBreakdown[0].Percentage, 1e-9)

	// 18 kg is under every rule threshold: single fallback tip.
	require.Len(t, dashboard.Recommendations, 1)
	assert.Equal(t, "Great Work!", dashboard.Recommendations[0].Title)
}

func TestAddLogValidation(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, false)

	tests := []struct {
		name string
		req  dto.AddLogRequest
	}{
		{"unknown category", dto.AddLogRequest{Category: "plane", Quantity: 10}},
		{"zero quantity", dto.AddLogRequest{Category: "car", Quantity: 0}},
		{"negative quantity", dto.AddLogRequest{Category: "car", Quantity: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, app, http.MethodPost, "/api/v1/logs", "", tt.req)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Contains(t, string(body), "error")
		})
	}
}

func TestDashboardWithSeededSession(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, true)

	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/dashboard", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dashboard dto.DashboardResponse
	require.NoError(t, json.Unmarshal(body, &dashboard))

	assert.Equal(t, 7, dashboard.Summary.LogsCount)
	assert.InDelta(t, 122.9, dashboard.Summary.TotalEmissions, 0.01)
	assert.Equal(t, "over_budget", dashboard.Summary.Status)

	// electricity, car, food, bus, electronics in first-seen order.
	require.Len(t, dashboard.CategoryBreakdown, 5)
	assert.Equal(t, "electricity", dashboard.CategoryBreakdown[0].Category)
	assert.InDelta(t, 58.5, dashboard.CategoryBreakdown[0].Emissions, 0.01)

	assert.Equal(t, "electricity", dashboard.Insights.HighestCategory.Category)

	// The seed spans seven days, one entry per day.
	assert.Len(t, dashboard.DailyTrend, 7)

	// electricity 58.5 > 30 fires; car 5.4 and food 7.5 stay under.
	require.Len(t, dashboard.Recommendations, 1)
	assert.Equal(t, "High Electricity Usage", dashboard.Recommendations[0].Title)
}

func TestSetGoalAffectsInsights(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, true)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/insights", "", nil)
	sessionID := resp.Header.Get(middleware.HeaderSessionID)
	require.NotEmpty(t, sessionID)

	resp, _ = doJSON(t, app, http.MethodPut, "/api/v1/goal", sessionID, dto.SetGoalRequest{WeeklyGoal: 200})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/insights", sessionID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var insights dto.InsightsResponse
	require.NoError(t, json.Unmarshal(body, &insights))
	assert.Equal(t, 200.0, insights.WeeklyGoal)
	assert.Equal(t, "on_track", insights.Status)

	resp, _ = doJSON(t, app, http.MethodPut, "/api/v1/goal", sessionID, dto.SetGoalRequest{WeeklyGoal: -1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChatFlow(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, false)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/chat/open", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sessionID := resp.Header.Get(middleware.HeaderSessionID)
	require.NotEmpty(t, sessionID)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/chat/messages", sessionID, dto.SubmitChatRequest{Text: "hello there"})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var userMsg dto.ChatMessageResponse
	require.NoError(t, json.Unmarshal(body, &userMsg))
	assert.Equal(t, "user", userMsg.Sender)

	// The reply lands in history after the typing delay.
	var history dto.ChatHistoryResponse
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		_, body = doJSON(t, app, http.MethodGet, "/api/v1/chat/messages", sessionID, nil)
		require.NoError(t, json.Unmarshal(body, &history))
		if n := len(history.Messages); n > 0 && history.Messages[n-1].Sender == "assistant" && history.Messages[n-1].Text != "" && !history.Composing {
			break
		}
		time.Sleep(2 * time.Millisecond)
	}

	last := history.Messages[len(history.Messages)-1]
	require.Equal(t, "assistant", last.Sender)
	assert.Contains(t, last.Text, "Hello!")
	assert.Len(t, last.SuggestedActions, 4)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/chat/quick-actions", sessionID, dto.QuickActionRequest{Query: "bogus"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChatSubmitWhileComposing(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, false)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/chat/open", "", nil)
	sessionID := resp.Header.Get(middleware.HeaderSessionID)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/chat/messages", sessionID, dto.SubmitChatRequest{Text: "first"})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	// With the 1ms typing delay this is racy by nature; only assert when
	// the second submit actually lands inside the composing window.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/chat/messages", sessionID, dto.SubmitChatRequest{Text: "second"})
	if resp.StatusCode == http.StatusConflict {
		return
	}
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
}

func TestSessionEnd(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, true)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/dashboard", "", nil)
	sessionID := resp.Header.Get(middleware.HeaderSessionID)

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/v1/session", sessionID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The old token no longer resolves; a fresh session is minted.
	resp, _ = doJSON(t, app, http.MethodGet, "/api/v1/dashboard", sessionID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEqual(t, sessionID, resp.Header.Get(middleware.HeaderSessionID))
}

func TestAchievementsEndpoint(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, true)

	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/achievements", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var earned []dto.AchievementResponse
	require.NoError(t, json.Unmarshal(body, &earned))

	codes := make([]string, 0, len(earned))
	for _, a := range earned {
		codes = append(codes, a.Code)
	}
	// Seven entries across seven days, but 122.9 kg blows the 50 kg goal.
	assert.Contains(t, codes, "first_steps")
	assert.Contains(t, codes, "data_devotee")
	assert.Contains(t, codes, "week_of_awareness")
	assert.NotContains(t, codes, "under_budget")
}
