// Package repo contains the storage implementations for packing lists.
// Two implementations satisfy ListRepo: a Postgres one (pgx) and an
// in-memory one used when no database is configured and in tests.
// No business logic lives here — only persistence and type mapping.
package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hmdeck/cruise-packing/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ListRepo defines the persistence operations for PackingLists.
// The service layer depends on this interface, not a concrete implementation,
// which allows the service to be unit-tested with a mock.
type ListRepo interface {
	// Create persists a new list and returns the stored record with its
	// generated id and created_at/updated_at populated (equal at creation).
	Create(ctx context.Context, list domain.PackingList) (domain.PackingList, error)

	// GetByID retrieves a single list by id.
	// Returns domain.ErrNotFound if no list with that id exists.
	GetByID(ctx context.Context, id string) (domain.PackingList, error)

	// List returns all lists. Order is unspecified.
	List(ctx context.Context) ([]domain.PackingList, error)

	// Update applies the patch to an existing list atomically (no partial
	// merge is ever visible to a concurrent reader), bumps updated_at, and
	// returns the updated record. created_at is never touched.
	// Returns domain.ErrNotFound if no list with that id exists; a missing
	// id is never upserted.
	Update(ctx context.Context, id string, patch domain.ListPatch) (domain.PackingList, error)

	// Delete removes a list by id. Returns domain.ErrNotFound if it does
	// not exist, so a second delete of the same id fails.
	Delete(ctx context.Context, id string) error
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanList to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}
