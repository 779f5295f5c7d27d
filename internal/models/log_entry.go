package models

import (
	"fmt"
	"time"
)

// LogEntry is one logged activity. CO2e is computed from the factor table
// when the entry is created and never changes afterwards; entries are
// append-only and owned by the log store.
type LogEntry struct {
	ID        int64            `json:"id"`
	Category  ActivityCategory `json:"category"`
	Quantity  float64          `json:"quantity"`
	Timestamp time.Time        `json:"timestamp"`
	CO2e      float64          `json:"co2e"`
}

// ValidationError reports a rejected input on a synchronous operation. The
// caller surfaces it inline; the operation simply did not happen.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
