package models

// CategoryAggregate is the summed CO2e for one category present in the log.
// Category is a plain string so the empty sentinel ({"", 0}) can represent
// "no data" without inventing a fake category.
type CategoryAggregate struct {
	Category  string
	TotalCO2e float64
}

// DailyAggregate is the summed CO2e for one calendar day label. Labels use
// month+day granularity only; entries on the same month and day of
// different years fall into the same bucket.
type DailyAggregate struct {
	Day       string
	TotalCO2e float64
}

// GoalStatus classifies total emissions against the weekly goal.
type GoalStatus string

const (
	StatusOnTrack    GoalStatus = "on_track"
	StatusOverBudget GoalStatus = "over_budget"
)

// Insights is the derived summary for the current log and weekly goal.
// GoalProgress is clamped to [0,100] for display; GoalProgressRaw keeps the
// unclamped value the status decision is made from.
type Insights struct {
	TotalEmissions  float64
	WeeklyAverage   float64
	WeeklyGoal      float64
	GoalProgressRaw float64
	GoalProgress    float64
	Status          GoalStatus
	HighestCategory CategoryAggregate
}

// Comparison places the user's weekly total next to the reference averages
// shown on the insights page.
type Comparison struct {
	You           float64
	KenyaAverage  float64
	GlobalAverage float64
}
