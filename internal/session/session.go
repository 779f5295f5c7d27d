package session

import (
	"math"
	"sync"
	"time"

	"github.com/lumumba11/carbon-tracker-dashboard/internal/models"
	"github.com/lumumba11/carbon-tracker-dashboard/internal/repository"
	"github.com/lumumba11/carbon-tracker-dashboard/internal/service"

	"github.com/google/uuid"
)

// Session is the explicit unit of user state: the activity log, the weekly
// goal, and the assistant. It is created when a client first shows up and
// discarded on End; nothing survives it.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	Log       *repository.LogStore
	Assistant *service.Assistant

	mu         sync.RWMutex
	weeklyGoal float64
}

// WeeklyGoal returns the configured goal in kg CO2e.
func (s *Session) WeeklyGoal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.weeklyGoal
}

// SetWeeklyGoal updates the goal. Only positive finite values are accepted.
func (s *Session) SetWeeklyGoal(goal float64) error {
	if math.IsNaN(goal) || math.IsInf(goal, 0) || goal <= 0 {
		return &models.ValidationError{
			Field:  "weekly_goal",
			Reason: "must be a positive finite number",
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weeklyGoal = goal
	return nil
}

// end tears the session down; pending assistant timers become no-ops.
func (s *Session) end() {
	s.Assistant.Teardown()
}
