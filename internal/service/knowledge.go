package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lumumba11/carbon-tracker-dashboard/internal/models"
)

// Snapshot is the aggregate state a reply is derived from. It is captured
// fresh when the reply is composed so the numbers quoted are live.
type Snapshot struct {
	TotalEmissions float64
	Categories     []models.CategoryAggregate
}

// SnapshotFunc supplies the current aggregates to the assistant.
type SnapshotFunc func() Snapshot

// chatTopic enumerates the knowledge-base topics. Adding a topic means
// adding a const here and an entry to knowledgeBase below.
type chatTopic int

const (
	topicReduce chatTopic = iota
	topicEmissions
	topicElectricity
	topicTransport
	topicFood
	topicClimate
	topicOffset
	topicGoal
)

type knowledgeEntry struct {
	topic    chatTopic
	keywords []string
	respond  func(Snapshot) string
}

var (
	greetingPattern = regexp.MustCompile(`^(hi|hello|hey|good (morning|afternoon|evening))`)
	thanksPattern   = regexp.MustCompile(`thank|thx`)
)

const (
	welcomeText = "👋 Hi! I'm your Carbon Assistant. I can help you understand your emissions, give personalized tips, answer questions about climate change, and guide you toward a greener lifestyle. How can I help you today?"

	greetingText = "Hello! 👋 I'm here to help you understand and reduce your carbon footprint. What would you like to know?"

	thanksText = "You're welcome! 🌱 Remember, every small action counts toward a healthier planet. Is there anything else I can help you with?"

	fallbackText = "I'm not sure about that specific question, but I can help you with:\n\n• Understanding your carbon footprint\n• Tips for reducing emissions\n• Information about climate change\n• Setting and achieving goals\n• Sustainable lifestyle advice\n\nWhat would you like to explore?"
)

// QuickActions returns the fixed suggestion menu. Selecting an action
// submits its Query through the normal message pipeline.
func QuickActions() []models.QuickAction {
	return []models.QuickAction{
		{Label: "How can I reduce emissions?", Query: "reduce"},
		{Label: "Tips for sustainable living", Query: "tips"},
		{Label: "Explain my footprint", Query: "emissions"},
		{Label: "Climate change info", Query: "climate"},
	}
}

// QuickActionByQuery resolves a canonical query back to its menu entry.
func QuickActionByQuery(query string) (models.QuickAction, bool) {
	for _, a := range QuickActions() {
		if a.Query == query {
			return a, true
		}
	}
	return models.QuickAction{}, false
}

// knowledgeBase is scanned in order; the first entry with a keyword
// substring match in the input wins. The reduce topic is scanned first so
// questions like "how can I reduce emissions?" route to the reduction
// advice instead of the emissions summary.
var knowledgeBase = []knowledgeEntry{
	{
		topic:    topicReduce,
		keywords: []string{"reduce", "lower", "decrease", "cut", "less", "minimize", "tips", "help"},
		respond:  reduceReply,
	},
	{
		topic:    topicEmissions,
		keywords: []string{"emission", "emissions", "carbon", "co2", "footprint", "total", "how much"},
		respond:  emissionsReply,
	},
	{
		topic:    topicElectricity,
		keywords: []string{"electricity", "power", "energy", "kwh", "lights", "appliances"},
		respond:  electricityReply,
	},
	{
		topic:    topicTransport,
		keywords: []string{"transport", "car", "bus", "travel", "commute", "driving", "fuel"},
		respond:  transportReply,
	},
	{
		topic:    topicFood,
		keywords: []string{"food", "eat", "diet", "meat", "vegetarian", "vegan", "meal"},
		respond:  foodReply,
	},
	{
		topic:    topicClimate,
		keywords: []string{"climate", "change", "warming", "global", "crisis", "danger", "impact", "effects"},
		respond:  climateReply,
	},
	{
		topic:    topicOffset,
		keywords: []string{"offset", "compensate", "carbon credit", "neutralize", "plant trees"},
		respond:  offsetReply,
	},
	{
		topic:    topicGoal,
		keywords: []string{"goal", "target", "aim", "achieve", "recommend", "should"},
		respond:  goalReply,
	},
}

// ComposeReply derives the assistant's reply to the given input. It is a
// pure function of the input text and the snapshot: greeting and thanks
// patterns first, then the ordered knowledge base, then the fallback with
// the full quick-action menu.
func ComposeReply(input string, snap Snapshot) (string, []models.QuickAction) {
	normalized := strings.ToLower(strings.TrimSpace(input))

	if greetingPattern.MatchString(normalized) {
		return greetingText, QuickActions()
	}
	if thanksPattern.MatchString(normalized) {
		return thanksText, nil
	}

	for _, entry := range knowledgeBase {
		for _, keyword := range entry.keywords {
			if strings.Contains(normalized, keyword) {
				return entry.respond(snap), nil
			}
		}
	}

	return fallbackText, QuickActions()
}

func emissionsReply(snap Snapshot) string {
	total := snap.TotalEmissions
	daily := total / weeklyWindowDays

	verdict := "There's room for improvement. Let me suggest some ways to reduce it."
	if daily < GlobalDailyAverageKg {
		verdict = "You're doing great! 🌟"
	}
	return fmt.Sprintf(
		"Based on your data, your total weekly emissions are %.1f kg CO₂e, averaging %.1f kg per day. The global average is about %d kg CO₂e per day. %s",
		total, daily, GlobalDailyAverageKg, verdict,
	)
}

func electricityReply(snap Snapshot) string {
	tips := strings.Join([]string{
		"💡 Switch to LED bulbs - they use 75% less energy",
		"🔌 Unplug devices when not in use to avoid phantom power",
		"🌡️ Set your thermostat 2°C lower in winter, 2°C higher in summer",
		"⚡ Use energy-efficient appliances (A+++ rating)",
		"☀️ Consider installing solar panels for long-term savings",
	}, "\n")

	for _, cat := range snap.Categories {
		if cat.Category == string(models.CategoryElectricity) {
			return fmt.Sprintf("Your electricity emissions are %.1f kg CO₂e this week. Here are some tips:\n\n%s", cat.TotalCO2e, tips)
		}
	}
	return "Track your electricity usage to get personalized insights! Here are general tips:\n\n" + tips
}

func transportReply(Snapshot) string {
	tips := strings.Join([]string{
		"🚲 Bike or walk for trips under 5km",
		"🚌 Use public transport - it's 45% more efficient per passenger",
		"🚗 Carpool with colleagues or friends",
		"🏠 Work from home when possible",
		"🔋 Consider an electric or hybrid vehicle",
		"🚂 Choose trains over planes for medium distances",
	}, "\n")
	return "Transportation is often the biggest source of personal emissions. Try these:\n\n" + tips
}

func foodReply(Snapshot) string {
	return "🍽️ Food choices have a huge climate impact! Here's how to reduce it:\n\n" +
		"🥕 Eat more plant-based meals - beef has 20x the emissions of vegetables\n" +
		"🌾 Choose local and seasonal produce\n" +
		"🥡 Reduce food waste - plan meals and store food properly\n" +
		"🐟 If eating meat, choose chicken or fish over beef\n" +
		"🥤 Drink tap water instead of bottled\n" +
		"♻️ Compost food scraps"
}

func reduceReply(snap Snapshot) string {
	highest := HighestCategory(snap.Categories)
	if highest.Category != "" {
		return fmt.Sprintf(
			"Your highest impact area is %s. Focus here for maximum effect! Would you like specific tips for reducing %s emissions?",
			highest.Category, highest.Category,
		)
	}
	return "Here are the most effective ways to reduce your carbon footprint:\n\n" +
		"1. 🚗 Transportation: Switch to public transit, bike, or electric vehicles\n" +
		"2. ⚡ Energy: Use renewable energy and improve home efficiency\n" +
		"3. 🍽️ Food: Eat more plants, waste less food\n" +
		"4. 🛍️ Consumption: Buy less, choose sustainable products\n" +
		"5. ♻️ Waste: Recycle, compost, and avoid single-use items"
}

func climateReply(Snapshot) string {
	return "🌍 Climate change is the defining challenge of our time:\n\n" +
		"🌡️ Global temperatures have risen 1.1°C since pre-industrial times\n" +
		"🌊 Sea levels are rising 3.4mm per year\n" +
		"🔥 Extreme weather events are becoming more frequent\n" +
		"❄️ Arctic ice is melting at 13% per decade\n" +
		"🌪️ We need to limit warming to 1.5°C to avoid catastrophic impacts\n\n" +
		"Every action counts! Your tracking and reduction efforts make a real difference."
}

func offsetReply(Snapshot) string {
	return "🌳 Carbon offsetting can complement your reduction efforts:\n\n" +
		"✅ Best options:\n" +
		"• Plant native trees (1 tree absorbs ~21kg CO₂/year)\n" +
		"• Support verified renewable energy projects\n" +
		"• Invest in carbon capture technology\n" +
		"• Fund reforestation programs\n\n" +
		"⚠️ Remember: Offsetting should come AFTER reducing emissions. Reduction is always better than compensation!"
}

func goalReply(snap Snapshot) string {
	current := snap.TotalEmissions / weeklyWindowDays
	target := current * 0.8
	return fmt.Sprintf(
		"🎯 Based on your current %.1f kg CO₂e/day:\n\n"+
			"Short-term goal: Reduce to %.1f kg/day (20%% reduction)\n"+
			"Medium-term: Aim for 10 kg/day (Kenya average)\n"+
			"Long-term: Target 2 kg/day (Paris Agreement goal)\n\n"+
			"Start with small changes that fit your lifestyle. Even 10%% reduction makes a difference!",
		current, target,
	)
}
