package service

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/lumumba11/carbon-tracker-dashboard/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrAssistantClosed is returned when a message is submitted while the
	// chat window is not open.
	ErrAssistantClosed = errors.New("assistant is closed")

	// ErrAssistantBusy is returned when a message is submitted while a
	// reply is still being composed. Input is disabled during composing,
	// so concurrent submissions are rejected, not queued.
	ErrAssistantBusy = errors.New("assistant is composing a reply")
)

// Assistant is the per-session conversational state machine: open/closed
// state, append-only message history, and the composing sub-state. The two
// delays (welcome pacing and typing simulation) are local single-shot
// timers, not I/O; both are cancelled by Teardown so nothing mutates state
// after the owning session ends.
type Assistant struct {
	mu        sync.Mutex
	open      bool
	composing bool
	destroyed bool
	messages  []models.ChatMessage

	welcomeTimer *time.Timer
	replyTimer   *time.Timer

	welcomeDelay time.Duration
	typingDelay  time.Duration
	snapshot     SnapshotFunc
	now          func() time.Time
	logger       *zap.Logger
}

func NewAssistant(snapshot SnapshotFunc, welcomeDelay, typingDelay time.Duration, logger *zap.Logger) *Assistant {
	return &Assistant{
		welcomeDelay: welcomeDelay,
		typingDelay:  typingDelay,
		snapshot:     snapshot,
		now:          time.Now,
		logger:       logger,
	}
}

// Open transitions Closed -> Open. On an open with empty history the
// welcome message is scheduled after the pacing delay; history from earlier
// opens is retained, so the welcome only ever happens once per session.
func (a *Assistant) Open() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.destroyed || a.open {
		return
	}
	a.open = true

	if len(a.messages) == 0 && a.welcomeTimer == nil {
		a.welcomeTimer = time.AfterFunc(a.welcomeDelay, a.deliverWelcome)
	}
}

// Close transitions Open -> Closed. A welcome still pending is cancelled;
// it will be rescheduled if the window is reopened before any message
// exists. A pending reply is left to land in the retained history.
func (a *Assistant) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.open {
		return
	}
	a.open = false

	if a.welcomeTimer != nil {
		a.welcomeTimer.Stop()
		a.welcomeTimer = nil
	}
}

// Submit runs the message protocol: append the user message, enter the
// composing sub-state, and schedule the reply after the typing delay. Only
// one reply may be in flight; submissions while composing are rejected.
func (a *Assistant) Submit(text string) (models.ChatMessage, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return models.ChatMessage{}, &models.ValidationError{
			Field:  "text",
			Reason: "must not be empty",
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.destroyed || !a.open {
		return models.ChatMessage{}, ErrAssistantClosed
	}
	if a.composing {
		return models.ChatMessage{}, ErrAssistantBusy
	}

	msg := models.ChatMessage{
		ID:        uuid.New(),
		Sender:    models.SenderUser,
		Text:      trimmed,
		Timestamp: a.now(),
	}
	a.messages = append(a.messages, msg)
	a.composing = true
	a.replyTimer = time.AfterFunc(a.typingDelay, func() { a.deliverReply(trimmed) })

	return msg, nil
}

// SubmitQuickAction submits a quick action's canonical query through the
// same pipeline as typed input.
func (a *Assistant) SubmitQuickAction(query string) (models.ChatMessage, error) {
	action, ok := QuickActionByQuery(query)
	if !ok {
		return models.ChatMessage{}, &models.ValidationError{
			Field:  "query",
			Reason: "unknown quick action",
		}
	}
	return a.Submit(action.Query)
}

// Messages returns a copy of the history in append order.
func (a *Assistant) Messages() []models.ChatMessage {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]models.ChatMessage, len(a.messages))
	copy(out, a.messages)
	return out
}

// IsOpen reports whether the chat window is open.
func (a *Assistant) IsOpen() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.open
}

// IsComposing reports whether a reply is in flight.
func (a *Assistant) IsComposing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.composing
}

// Teardown ends the assistant's life: both timers are cancelled and any
// callback that already fired becomes a no-op. Called when the owning
// session ends.
func (a *Assistant) Teardown() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.destroyed = true
	a.open = false
	a.composing = false

	if a.welcomeTimer != nil {
		a.welcomeTimer.Stop()
		a.welcomeTimer = nil
	}
	if a.replyTimer != nil {
		a.replyTimer.Stop()
		a.replyTimer = nil
	}
}

func (a *Assistant) deliverWelcome() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.welcomeTimer = nil
	if a.destroyed || !a.open || len(a.messages) > 0 {
		return
	}
	a.messages = append(a.messages, models.ChatMessage{
		ID:        uuid.New(),
		Sender:    models.SenderAssistant,
		Text:      welcomeText,
		Timestamp: a.now(),
	})
}

func (a *Assistant) deliverReply(input string) {
	// Snapshot outside the assistant lock: the snapshot closure reads the
	// session's log store, which has its own lock.
	snap := a.snapshot()
	text, actions := ComposeReply(input, snap)

	a.mu.Lock()
	defer a.mu.Unlock()

	a.replyTimer = nil
	if a.destroyed {
		return
	}
	a.messages = append(a.messages, models.ChatMessage{
		ID:               uuid.New(),
		Sender:           models.SenderAssistant,
		Text:             text,
		Timestamp:        a.now(),
		SuggestedActions: actions,
	})
	a.composing = false

	a.logger.Debug("Assistant reply composed",
		zap.Int("history_len", len(a.messages)),
		zap.Int("suggested_actions", len(actions)),
	)
}
