package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/msomdec/wysider/internal/agent"
	"github.com/msomdec/wysider/internal/domain"
)

// Generator produces a completion for a prompt with prior conversation turns
// as context.
type Generator interface {
	Generate(ctx context.Context, prompt string, history []domain.Message) (string, error)
}

// StrategyService turns business ideas into strategy writeups and manages
// the user's saved concepts.
type StrategyService struct {
	concepts   domain.ConceptRepository
	strategist Generator
}

// NewStrategyService creates a new StrategyService.
func NewStrategyService(concepts domain.ConceptRepository, strategist Generator) *StrategyService {
	return &StrategyService{concepts: concepts, strategist: strategist}
}

// Generate runs the Marketer Agent over the raw idea and returns the
// strategy text.
func (s *StrategyService) Generate(ctx context.Context, idea string) (string, error) {
	if strings.TrimSpace(idea) == "" {
		return "", fmt.Errorf("%w: idea is required", domain.ErrInvalidInput)
	}
	return s.strategist.Generate(ctx, agent.StrategyPrompt(idea), nil)
}

// Save upserts a concept for the user. A missing id gets one assigned; a
// missing title is derived from the idea. Saving twice with the same id
// overwrites rather than duplicates.
func (s *StrategyService) Save(ctx context.Context, userID string, concept *domain.Concept) error {
	if strings.TrimSpace(concept.Idea) == "" {
		return fmt.Errorf("%w: idea is required", domain.ErrInvalidInput)
	}

	if concept.ID == "" {
		concept.ID = uuid.NewString()
	}
	if concept.Title == "" {
		concept.Title = titleFromIdea(concept.Idea)
	}
	concept.UserID = userID

	if err := s.concepts.Upsert(ctx, concept); err != nil {
		return fmt.Errorf("save concept: %w", err)
	}
	return nil
}

// List returns the user's saved concepts, newest first.
func (s *StrategyService) List(ctx context.Context, userID string) ([]domain.Concept, error) {
	return s.concepts.ListByUser(ctx, userID)
}

// titleFromIdea takes the first few words of the idea as a title.
func titleFromIdea(idea string) string {
	words := strings.Fields(idea)
	if len(words) == 0 {
		return "New Concept Strategy"
	}
	if len(words) <= 5 {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:5], " ") + "..."
}
