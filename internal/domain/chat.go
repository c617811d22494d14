package domain

import "context"

// Chat message roles.
const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)

// ChatMessage is one entry in the append-only chat transcript.
// swagger:model ChatMessage
type ChatMessage struct {
	Role    string `json:"role"`
	Text    string `json:"text"`
	IsError bool   `json:"is_error,omitempty"`
}

// TextGenerator is the generative-text collaborator. Callers convert failures
// to fallback strings; a generation error is never surfaced to the user.
type TextGenerator interface {
	// GenerateAnnouncement drafts an announcement email for the event.
	GenerateAnnouncement(ctx context.Context, event *Event) (string, error)
	// GenerateChat answers a user message given a serialized system context.
	GenerateChat(ctx context.Context, userMessage, systemContext string) (string, error)
}

// ChatService answers user messages with network context and keeps the
// session transcript.
type ChatService interface {
	Send(ctx context.Context, userMessage string) (*ChatMessage, error)
	History(ctx context.Context) []ChatMessage
}
