package domain

import (
	"context"
	"time"
)

// MessageRole identifies the sender of a chat message.
type MessageRole string

const (
	MessageRoleUser  MessageRole = "user"
	MessageRoleModel MessageRole = "model"
)

// Message is one turn of the support-chat transcript.
type Message struct {
	ID        string
	Role      MessageRole
	Text      string
	CreatedAt time.Time
}

// TranscriptRepository stores each user's support-chat transcript. The
// transcript is replaced wholesale on every update; there is no incremental
// append at the storage layer.
type TranscriptRepository interface {
	// Get returns the transcript in order. An absent transcript is an empty
	// slice, not an error.
	Get(ctx context.Context, userID string) ([]Message, error)
	// Replace overwrites the stored transcript with the given messages,
	// preserving their order.
	Replace(ctx context.Context, userID string, messages []Message) error
}
