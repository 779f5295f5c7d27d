package dto

import (
	"time"

	"github.com/lumumba11/carbon-tracker-dashboard/internal/models"
)

type SubmitChatRequest struct {
	Text string `json:"text"`
}

type QuickActionRequest struct {
	Query string `json:"query"`
}

type QuickActionResponse struct {
	Label string `json:"label"`
	Query string `json:"query"`
}

type ChatMessageResponse struct {
	ID               string                `json:"id"`
	Sender           string                `json:"sender"`
	Text             string                `json:"text"`
	Timestamp        string                `json:"timestamp"`
	SuggestedActions []QuickActionResponse `json:"suggested_actions,omitempty"`
}

type ChatHistoryResponse struct {
	Open      bool                  `json:"open"`
	Composing bool                  `json:"composing"`
	Messages  []ChatMessageResponse `json:"messages"`
}

func NewChatMessageResponse(m models.ChatMessage) ChatMessageResponse {
	var actions []QuickActionResponse
	for _, a := range m.SuggestedActions {
		actions = append(actions, QuickActionResponse{Label: a.Label, Query: a.Query})
	}
	return ChatMessageResponse{
		ID:               m.ID.String(),
		Sender:           string(m.Sender),
		Text:             m.Text,
		Timestamp:        m.Timestamp.Format(time.RFC3339),
		SuggestedActions: actions,
	}
}

func NewChatMessageResponses(msgs []models.ChatMessage) []ChatMessageResponse {
	out := make([]ChatMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, NewChatMessageResponse(m))
	}
	return out
}
