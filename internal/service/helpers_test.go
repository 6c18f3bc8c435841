package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/msomdec/wysider/internal/domain"
	"github.com/msomdec/wysider/internal/repository/sqlite"
	"github.com/msomdec/wysider/internal/service"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestAuthService(t *testing.T) (*service.AuthService, *sqlite.DB) {
	t.Helper()
	db := newTestDB(t)
	// Use cost 4 for fast tests.
	auth := service.NewAuthService(db.Users(), testJWTSecret, 4)
	return auth, db
}

func registerTestUser(t *testing.T, auth *service.AuthService, email string) *domain.User {
	t.Helper()
	user, err := auth.Register(context.Background(), email, "Test User", "password123", "password123", domain.PlanStandard)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return user
}

// fixedGenerator always replies with the same text.
type fixedGenerator struct {
	reply string
}

func (g *fixedGenerator) Generate(ctx context.Context, prompt string, history []domain.Message) (string, error) {
	return g.reply, nil
}

// failingGenerator always fails with the given error.
type failingGenerator struct {
	err error
}

func (g *failingGenerator) Generate(ctx context.Context, prompt string, history []domain.Message) (string, error) {
	return "", g.err
}
