package payout

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// ENTRY - One payout ledger row
// =============================================================================

// Entry records one released payout stage for a rental. Entries are
// append-only: a milestone that was recorded in error is corrected with a
// compensating entry, never edited.
type Entry struct {
	ID          string
	RentalID    string
	Milestone   string
	Stage       int
	AmountCents int64
	TotalCents  int64
	CreatedAt   time.Time
}

// =============================================================================
// SENTINEL ERRORS
// =============================================================================

var (
	// ErrDuplicateMilestone is returned when a rental's milestone already
	// has a ledger entry. Expected on webhook retries.
	ErrDuplicateMilestone = errors.New("milestone already recorded for rental")

	// ErrEntryNotFound is returned when a requested entry doesn't exist.
	ErrEntryNotFound = errors.New("payout entry not found")
)

// DuplicateMilestoneError carries the conflicting entry's identity.
type DuplicateMilestoneError struct {
	RentalID   string
	Milestone  string
	ExistingID string
}

func (e *DuplicateMilestoneError) Error() string {
	return fmt.Sprintf("milestone %q already recorded for rental %s (entry: %s)",
		e.Milestone, e.RentalID, e.ExistingID)
}

func (e *DuplicateMilestoneError) Unwrap() error { return ErrDuplicateMilestone }

// =============================================================================
// STORE INTERFACE
// =============================================================================

// Store persists payout entries. Implementations must be safe for
// concurrent use and enforce one entry per (rental, milestone).
type Store interface {
	// Append writes a new entry. Returns DuplicateMilestoneError when the
	// rental's milestone was already recorded.
	Append(ctx context.Context, e Entry) error

	// ListByRental returns a rental's entries ordered by creation time.
	ListByRental(ctx context.Context, rentalID string) ([]Entry, error)

	// GetEntry returns one entry by ID, or ErrEntryNotFound.
	GetEntry(ctx context.Context, id string) (*Entry, error)
}
