package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/msomdec/wysider/internal/domain"
)

func TestTranscriptRepository_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createTestUser(t, db, "u1", "chat@example.com")

	now := time.Now().UTC().Truncate(time.Second)
	messages := []domain.Message{
		{ID: "m1", Role: domain.MessageRoleModel, Text: "Hello!", CreatedAt: now},
		{ID: "m2", Role: domain.MessageRoleUser, Text: "Hi there", CreatedAt: now.Add(time.Second)},
		{ID: "m3", Role: domain.MessageRoleModel, Text: "How can I help?", CreatedAt: now.Add(2 * time.Second)},
	}

	if err := db.Transcripts().Replace(ctx, user.ID, messages); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	got, err := db.Transcripts().Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got) != len(messages) {
		t.Fatalf("expected %d messages, got %d", len(messages), len(got))
	}
	for i := range messages {
		if got[i].ID != messages[i].ID || got[i].Role != messages[i].Role || got[i].Text != messages[i].Text {
			t.Fatalf("message %d mismatch: got %+v, want %+v", i, got[i], messages[i])
		}
	}
}

func TestTranscriptRepository_ReplaceIsWholesale(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createTestUser(t, db, "u1", "chat@example.com")
	now := time.Now().UTC()

	first := []domain.Message{
		{ID: "a", Role: domain.MessageRoleUser, Text: "old", CreatedAt: now},
		{ID: "b", Role: domain.MessageRoleModel, Text: "older", CreatedAt: now},
	}
	if err := db.Transcripts().Replace(ctx, user.ID, first); err != nil {
		t.Fatalf("first Replace: %v", err)
	}

	second := []domain.Message{
		{ID: "c", Role: domain.MessageRoleUser, Text: "new", CreatedAt: now},
	}
	if err := db.Transcripts().Replace(ctx, user.ID, second); err != nil {
		t.Fatalf("second Replace: %v", err)
	}

	got, err := db.Transcripts().Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 message after wholesale replace, got %d", len(got))
	}
	if got[0].ID != "c" {
		t.Fatalf("expected message c, got %s", got[0].ID)
	}
}

func TestTranscriptRepository_GetEmptyOnFirstRead(t *testing.T) {
	db := newTestDB(t)

	user := createTestUser(t, db, "u1", "fresh@example.com")

	got, err := db.Transcripts().Get(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty transcript, got %d messages", len(got))
	}
}
