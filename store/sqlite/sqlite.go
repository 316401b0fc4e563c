/*
Package sqlite provides a SQLite-backed payout.Store.

PURPOSE:
  Persists the payout ledger: one append-only row per released payout
  stage. In production the same patterns apply to PostgreSQL with only minor
  SQL dialect differences.

APPEND-ONLY ENFORCEMENT:
  - No UPDATE or DELETE statements on payout_entries
  - A unique index on (rental_id, milestone) makes milestone webhook
    retries idempotent at the database level

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging):
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/payouts.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - payout: Store interface and Entry model
  - store/memory: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/castaway/points-engine/payout"
)

// Store implements payout.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Payout entries (append-only ledger)
	CREATE TABLE IF NOT EXISTS payout_entries (
		id TEXT PRIMARY KEY,
		rental_id TEXT NOT NULL,
		milestone TEXT NOT NULL,
		stage INTEGER NOT NULL,
		amount_cents INTEGER NOT NULL,
		total_cents INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	-- One entry per (rental, milestone): milestone webhook retries are
	-- idempotent at the database level
	CREATE UNIQUE INDEX IF NOT EXISTS idx_unique_rental_milestone
		ON payout_entries(rental_id, milestone);

	CREATE INDEX IF NOT EXISTS idx_payout_entries_rental
		ON payout_entries(rental_id, created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// PAYOUT LEDGER
// =============================================================================

// Append writes a new payout entry. Returns DuplicateMilestoneError when
// the rental's milestone already has a row.
func (s *Store) Append(ctx context.Context, e payout.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Surface the conflicting entry ID rather than a bare constraint error.
	var existingID string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM payout_entries WHERE rental_id = ? AND milestone = ?`,
		e.RentalID, e.Milestone,
	).Scan(&existingID)
	if err == nil {
		return &payout.DuplicateMilestoneError{
			RentalID:   e.RentalID,
			Milestone:  e.Milestone,
			ExistingID: existingID,
		}
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check milestone: %w", err)
	}

	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO payout_entries (id, rental_id, milestone, stage, amount_cents, total_cents, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.RentalID, e.Milestone, e.Stage, e.AmountCents, e.TotalCents,
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert payout entry: %w", err)
	}
	return nil
}

// ListByRental returns a rental's payout entries ordered by creation time.
func (s *Store) ListByRental(ctx context.Context, rentalID string) ([]payout.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, rental_id, milestone, stage, amount_cents, total_cents, created_at
		FROM payout_entries
		WHERE rental_id = ?
		ORDER BY created_at, id`,
		rentalID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query payout entries: %w", err)
	}
	defer rows.Close()

	var entries []payout.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetEntry returns one entry by ID.
func (s *Store) GetEntry(ctx context.Context, id string) (*payout.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, rental_id, milestone, stage, amount_cents, total_cents, created_at
		FROM payout_entries
		WHERE id = ?`,
		id,
	)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, payout.ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(r rowScanner) (payout.Entry, error) {
	var e payout.Entry
	var createdAt string
	if err := r.Scan(&e.ID, &e.RentalID, &e.Milestone, &e.Stage, &e.AmountCents, &e.TotalCents, &createdAt); err != nil {
		return payout.Entry{}, err
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return payout.Entry{}, fmt.Errorf("failed to parse created_at %q: %w", createdAt, err)
	}
	e.CreatedAt = t
	return e, nil
}
