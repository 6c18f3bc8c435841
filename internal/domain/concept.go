package domain

import (
	"context"
	"time"
)

// Concept is a saved business idea together with its generated strategy.
// Concepts are owned by exactly one user and upserted by id; apart from an
// id-keyed overwrite they are never mutated.
type Concept struct {
	ID        string
	UserID    string
	Title     string
	Idea      string
	Strategy  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ConceptRepository defines persistence operations for concepts.
type ConceptRepository interface {
	ListByUser(ctx context.Context, userID string) ([]Concept, error)
	// Upsert inserts the concept or, when a concept with the same id already
	// exists for the owner, overwrites it. Last write wins.
	Upsert(ctx context.Context, concept *Concept) error
}
