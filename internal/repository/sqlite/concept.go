package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/msomdec/wysider/internal/domain"
)

// ConceptRepository implements domain.ConceptRepository using SQLite.
type ConceptRepository struct {
	db *sql.DB
}

func (r *ConceptRepository) ListByUser(ctx context.Context, userID string) ([]domain.Concept, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, idea, strategy, created_at, updated_at
		 FROM concepts WHERE user_id = ? ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query concepts: %w", err)
	}
	defer rows.Close()

	var concepts []domain.Concept
	for rows.Next() {
		var c domain.Concept
		if err := rows.Scan(&c.ID, &c.UserID, &c.Title, &c.Idea, &c.Strategy,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan concept: %w", err)
		}
		concepts = append(concepts, c)
	}
	return concepts, rows.Err()
}

func (r *ConceptRepository) Upsert(ctx context.Context, concept *domain.Concept) error {
	now := time.Now().UTC()
	if concept.CreatedAt.IsZero() {
		concept.CreatedAt = now
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO concepts (id, user_id, title, idea, strategy, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, id) DO UPDATE SET
		   title = excluded.title,
		   idea = excluded.idea,
		   strategy = excluded.strategy,
		   updated_at = excluded.updated_at`,
		concept.ID, concept.UserID, concept.Title, concept.Idea, concept.Strategy,
		concept.CreatedAt, now,
	)
	if err != nil {
		return fmt.Errorf("upsert concept: %w", err)
	}

	concept.UpdatedAt = now
	return nil
}
