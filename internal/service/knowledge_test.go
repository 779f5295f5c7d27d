package service

import (
	"strings"
	"testing"

	"github.com/lumumba11/carbon-tracker-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeReplyGreeting(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"hello there", "Hi!", "hey", "Good Morning everyone"} {
		text, actions := ComposeReply(input, Snapshot{})
		assert.Equal(t, greetingText, text, "input %q", input)
		require.Len(t, actions, 4, "input %q", input)
	}
}

func TestComposeReplyThanks(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"thanks", "thank you so much", "ok thx"} {
		text, actions := ComposeReply(input, Snapshot{})
		assert.Equal(t, thanksText, text, "input %q", input)
		assert.Nil(t, actions, "input %q", input)
	}
}

func TestComposeReplyEmissionsQuotesLiveNumbers(t *testing.T) {
	t.Parallel()

	snap := Snapshot{TotalEmissions: 122.9}
	text, actions := ComposeReply("what is my carbon footprint?", snap)
	assert.Nil(t, actions)
	assert.Contains(t, text, "122.9 kg CO₂e")
	assert.Contains(t, text, "17.6 kg per day")
	// 17.56 kg/day is above the 17 kg global average.
	assert.Contains(t, text, "room for improvement")

	low := Snapshot{TotalEmissions: 35}
	text, _ = ComposeReply("how much co2 did I emit?", low)
	assert.Contains(t, text, "doing great")
}

func TestComposeReplyReduceNamesHighestCategory(t *testing.T) {
	t.Parallel()

	snap := Snapshot{
		TotalEmissions: 60,
		Categories: []models.CategoryAggregate{
			{Category: "electricity", TotalCO2e: 20},
			{Category: "car", TotalCO2e: 40},
		},
	}
	text, _ := ComposeReply("How can I reduce emissions?", snap)
	assert.Contains(t, text, "car")
	assert.Contains(t, text, "highest impact area")
}

func TestComposeReplyReduceWithoutData(t *testing.T) {
	t.Parallel()

	text, _ := ComposeReply("give me tips", Snapshot{})
	assert.Contains(t, text, "most effective ways to reduce")
}

func TestComposeReplyElectricity(t *testing.T) {
	t.Parallel()

	snap := Snapshot{
		Categories: []models.CategoryAggregate{
			{Category: "electricity", TotalCO2e: 58.5},
		},
	}
	text, _ := ComposeReply("my kwh usage", snap)
	assert.Contains(t, text, "58.5 kg CO₂e")
	assert.Contains(t, text, "LED bulbs")

	text, _ = ComposeReply("my kwh usage", Snapshot{})
	assert.Contains(t, text, "Track your electricity usage")
}

func TestComposeReplyTopicRouting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		fragment string
	}{
		{"tell me about climate change", "defining challenge"},
		{"can I compensate by planting something?", "Offsetting should come AFTER"},
		{"what goal should I set?", "Short-term goal"},
		{"is my diet a problem?", "Food choices"},
		{"my daily commute", "Transportation is often the biggest source"},
	}
	for _, tt := range tests {
		text, actions := ComposeReply(tt.input, Snapshot{TotalEmissions: 70})
		assert.Contains(t, text, tt.fragment, "input %q", tt.input)
		assert.Nil(t, actions, "input %q", tt.input)
	}
}

func TestComposeReplyFallback(t *testing.T) {
	t.Parallel()

	text, actions := ComposeReply("qwertyuiop", Snapshot{})
	assert.Equal(t, fallbackText, text)
	require.Len(t, actions, 4)
}

func TestQuickActionQueriesResolveToTopics(t *testing.T) {
	t.Parallel()

	// Every canonical quick-action query must route somewhere other than
	// the fallback.
	for _, action := range QuickActions() {
		text, _ := ComposeReply(action.Query, Snapshot{TotalEmissions: 70})
		assert.NotEqual(t, fallbackText, text, "query %q", action.Query)
	}
}

func TestQuickActionByQuery(t *testing.T) {
	t.Parallel()

	action, ok := QuickActionByQuery("reduce")
	require.True(t, ok)
	assert.Equal(t, "How can I reduce emissions?", action.Label)

	_, ok = QuickActionByQuery("self-destruct")
	assert.False(t, ok)
}

func TestComposeReplyNormalizesCase(t *testing.T) {
	t.Parallel()

	upper, _ := ComposeReply("  REDUCE MY EMISSIONS  ", Snapshot{})
	lower, _ := ComposeReply("reduce my emissions", Snapshot{})
	assert.Equal(t, lower, upper)
	assert.True(t, strings.Contains(upper, "reduce") || strings.Contains(upper, "impact"))
}
