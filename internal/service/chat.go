package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/msomdec/wysider/internal/domain"
)

const chatGreeting = "Hello! I am here to help you navigate WySider. How can I assist you today?"

// ChatService runs the CAI support assistant over each user's persistent
// transcript.
type ChatService struct {
	transcripts domain.TranscriptRepository
	support     Generator
}

// NewChatService creates a new ChatService.
func NewChatService(transcripts domain.TranscriptRepository, support Generator) *ChatService {
	return &ChatService{transcripts: transcripts, support: support}
}

// History returns the user's transcript. An empty transcript is seeded with
// the assistant's greeting; the greeting is only persisted once a real
// exchange happens.
func (s *ChatService) History(ctx context.Context, userID string) ([]domain.Message, error) {
	messages, err := s.transcripts.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get transcript: %w", err)
	}
	if len(messages) == 0 {
		messages = []domain.Message{{
			ID:        uuid.NewString(),
			Role:      domain.MessageRoleModel,
			Text:      chatGreeting,
			CreatedAt: time.Now().UTC(),
		}}
	}
	return messages, nil
}

// Send appends the user's message, asks the support assistant for a reply
// with the prior turns as context, and replaces the stored transcript
// wholesale. When the assistant is unreachable the user's turn is still
// persisted and the error is returned for inline display.
func (s *ChatService) Send(ctx context.Context, userID, text string) ([]domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrInvalidInput)
	}

	history, err := s.History(ctx, userID)
	if err != nil {
		return nil, err
	}

	messages := append(history, domain.Message{
		ID:        uuid.NewString(),
		Role:      domain.MessageRoleUser,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})

	reply, genErr := s.support.Generate(ctx, text, history)
	if genErr == nil {
		messages = append(messages, domain.Message{
			ID:        uuid.NewString(),
			Role:      domain.MessageRoleModel,
			Text:      reply,
			CreatedAt: time.Now().UTC(),
		})
	}

	if err := s.transcripts.Replace(ctx, userID, messages); err != nil {
		return nil, fmt.Errorf("replace transcript: %w", err)
	}

	if genErr != nil {
		return messages, genErr
	}
	return messages, nil
}
