package repository

import (
	"math"
	"sync"
	"time"

	"github.com/lumumba11/carbon-tracker-dashboard/internal/models"

	"go.uber.org/zap"
)

// LogStore owns the activity log for one session: entry identity, insertion
// timestamps, and the frozen CO2e values. Entries are append-only; there is
// no edit or delete. All state lives in memory and dies with the session.
type LogStore struct {
	mu      sync.RWMutex
	nextID  int64
	entries []models.LogEntry
	now     func() time.Time
	logger  *zap.Logger
}

func NewLogStore(logger *zap.Logger) *LogStore {
	return &LogStore{
		nextID: 1,
		now:    time.Now,
		logger: logger,
	}
}

// Append validates the input, computes CO2e from the factor table, and
// appends a new entry stamped with the current time. The CO2e is frozen at
// this point and never recomputed.
func (s *LogStore) Append(category models.ActivityCategory, quantity float64) (models.LogEntry, error) {
	return s.AppendAt(category, quantity, s.now())
}

// AppendAt is Append with an explicit timestamp. Session seeding uses it to
// backdate the sample entries.
func (s *LogStore) AppendAt(category models.ActivityCategory, quantity float64, at time.Time) (models.LogEntry, error) {
	factor, ok := category.Factor()
	if !ok {
		return models.LogEntry{}, &models.ValidationError{
			Field:  "category",
			Reason: "unknown category " + string(category),
		}
	}
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return models.LogEntry{}, &models.ValidationError{
			Field:  "quantity",
			Reason: "must be a finite number",
		}
	}
	if quantity <= 0 {
		return models.LogEntry{}, &models.ValidationError{
			Field:  "quantity",
			Reason: "must be greater than zero",
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := models.LogEntry{
		ID:        s.nextID,
		Category:  category,
		Quantity:  quantity,
		Timestamp: at,
		CO2e:      quantity * factor.PerUnit,
	}
	s.nextID++
	s.entries = append(s.entries, entry)

	s.logger.Debug("Activity logged",
		zap.Int64("entry_id", entry.ID),
		zap.String("category", string(category)),
		zap.Float64("quantity", quantity),
		zap.Float64("co2e", entry.CO2e),
	)
	return entry, nil
}

// Entries returns a copy of the log in insertion order.
func (s *LogStore) Entries() []models.LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.LogEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Recent returns up to limit entries, newest first.
func (s *LogStore) Recent(limit int) []models.LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.entries)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]models.LogEntry, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.entries[i])
	}
	return out
}

// Len reports the number of logged entries.
func (s *LogStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
