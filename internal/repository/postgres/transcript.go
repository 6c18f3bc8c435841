package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/msomdec/wysider/internal/domain"
)

// TranscriptRepository implements domain.TranscriptRepository using PostgreSQL.
type TranscriptRepository struct {
	db *sql.DB
}

func (r *TranscriptRepository) Get(ctx context.Context, userID string) ([]domain.Message, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT message_id, role, text, created_at
		 FROM transcript_messages WHERE user_id = $1 ORDER BY position`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query transcript: %w", err)
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.Role, &m.Text, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *TranscriptRepository) Replace(ctx context.Context, userID string, messages []domain.Message) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM transcript_messages WHERE user_id = $1", userID,
	); err != nil {
		return fmt.Errorf("clear transcript: %w", err)
	}

	for i, m := range messages {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO transcript_messages (user_id, position, message_id, role, text, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			userID, i, m.ID, m.Role, m.Text, m.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert message %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transcript: %w", err)
	}
	return nil
}
