package models

// Recommendation is one tip produced by the rule table. Category is empty
// for the fallback recommendation that fires when no rule matches.
type Recommendation struct {
	Category string
	Title    string
	Tip      string
	Impact   string
}
