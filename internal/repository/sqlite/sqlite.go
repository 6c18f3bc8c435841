package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/msomdec/wysider/internal/domain"
	"github.com/msomdec/wysider/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// DB is the local SQLite-backed store. It is scoped to one device and
// initializes empty collections on first read.
type DB struct {
	sqlDB *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// Set a reasonable connection pool for SQLite.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{sqlDB: db}, nil
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.sqlDB)
}

// Close closes the underlying database handle.
func (db *DB) Close() error {
	return db.sqlDB.Close()
}

// Users returns the user repository backed by this database.
func (db *DB) Users() domain.UserRepository {
	return &UserRepository{db: db.sqlDB}
}

// Concepts returns the concept repository backed by this database.
func (db *DB) Concepts() domain.ConceptRepository {
	return &ConceptRepository{db: db.sqlDB}
}

// Transcripts returns the transcript repository backed by this database.
func (db *DB) Transcripts() domain.TranscriptRepository {
	return &TranscriptRepository{db: db.sqlDB}
}
