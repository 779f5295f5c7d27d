package session

import (
	"sync"
	"time"

	"github.com/lumumba11/carbon-tracker-dashboard/internal/repository"
	"github.com/lumumba11/carbon-tracker-dashboard/internal/service"
	"github.com/lumumba11/carbon-tracker-dashboard/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Manager owns every live session. Sessions are created on first contact,
// looked up by ID on each request, and dropped on End or Shutdown.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	cfg    config.TrackerConfig
	agg    *service.AggregationService
	logger *zap.Logger
}

func NewManager(cfg config.TrackerConfig, agg *service.AggregationService, logger *zap.Logger) *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*Session),
		cfg:      cfg,
		agg:      agg,
		logger:   logger,
	}
}

// Create builds a fresh session with the default weekly goal, the sample
// log (unless disabled), and an assistant wired to the session's live
// aggregates.
func (m *Manager) Create() *Session {
	sess := &Session{
		ID:         uuid.New(),
		CreatedAt:  time.Now(),
		Log:        repository.NewLogStore(m.logger),
		weeklyGoal: m.cfg.DefaultWeeklyGoal,
	}
	sess.Assistant = service.NewAssistant(
		m.snapshotFor(sess),
		m.cfg.WelcomeDelay,
		m.cfg.TypingDelay,
		m.logger,
	)

	if m.cfg.SeedSample {
		seedSampleLog(sess.Log, m.logger)
	}

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	m.logger.Info("Session created",
		zap.String("session_id", sess.ID.String()),
		zap.Int("seeded_entries", sess.Log.Len()),
	)
	return sess
}

// Get looks up a live session.
func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

// End tears down and forgets a session. It reports whether the session
// existed.
func (m *Manager) End(id uuid.UUID) bool {
	m.mu.Lock()
	sess, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return false
	}
	sess.end()
	m.logger.Info("Session ended", zap.String("session_id", id.String()))
	return true
}

// Shutdown ends every live session.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[uuid.UUID]*Session)
	m.mu.Unlock()

	for _, sess := range sessions {
		sess.end()
	}
}

func (m *Manager) snapshotFor(sess *Session) service.SnapshotFunc {
	return func() service.Snapshot {
		entries := sess.Log.Entries()
		return service.Snapshot{
			TotalEmissions: m.agg.Total(entries),
			Categories:     m.agg.ByCategory(entries),
		}
	}
}
