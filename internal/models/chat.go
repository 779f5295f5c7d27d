package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatSender identifies who authored a chat message.
type ChatSender string

const (
	SenderUser      ChatSender = "user"
	SenderAssistant ChatSender = "assistant"
)

// QuickAction is a predefined suggestion; selecting it submits Query
// through the normal message pipeline as if the user had typed it.
type QuickAction struct {
	Label string `json:"label"`
	Query string `json:"query"`
}

// ChatMessage is one entry in the assistant's append-only history.
// SuggestedActions is nil except on assistant messages that offer the
// quick-action menu.
type ChatMessage struct {
	ID               uuid.UUID     `json:"id"`
	Sender           ChatSender    `json:"sender"`
	Text             string        `json:"text"`
	Timestamp        time.Time     `json:"timestamp"`
	SuggestedActions []QuickAction `json:"suggested_actions,omitempty"`
}
