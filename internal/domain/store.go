package domain

import "context"

// Store bundles the repositories of one storage backend together with its
// lifecycle operations. Both backends (local SQLite, remote Postgres) expose
// the identical surface so the backend is selected once at startup and never
// inspected again.
type Store interface {
	Users() UserRepository
	Concepts() ConceptRepository
	Transcripts() TranscriptRepository
	Migrate(ctx context.Context) error
	Close() error
}
