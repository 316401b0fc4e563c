// Package memory provides an in-memory payout.Store for tests and dev.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/castaway/points-engine/payout"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Store struct {
	mu       sync.RWMutex
	byRental map[string][]payout.Entry
	byID     map[string]payout.Entry
	recorded map[milestoneKey]string // (rental, milestone) → entry ID
}

type milestoneKey struct {
	RentalID  string
	Milestone string
}

func New() *Store {
	return &Store{
		byRental: make(map[string][]payout.Entry),
		byID:     make(map[string]payout.Entry),
		recorded: make(map[milestoneKey]string),
	}
}

// Append adds a single entry. Append-only; one entry per (rental, milestone).
func (s *Store) Append(_ context.Context, e payout.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := milestoneKey{RentalID: e.RentalID, Milestone: e.Milestone}
	if existing, ok := s.recorded[k]; ok {
		return &payout.DuplicateMilestoneError{
			RentalID:   e.RentalID,
			Milestone:  e.Milestone,
			ExistingID: existing,
		}
	}

	entries := s.byRental[e.RentalID]
	i := sort.Search(len(entries), func(i int) bool {
		return entries[i].CreatedAt.After(e.CreatedAt)
	})
	entries = append(entries, payout.Entry{})
	copy(entries[i+1:], entries[i:])
	entries[i] = e
	s.byRental[e.RentalID] = entries

	s.byID[e.ID] = e
	s.recorded[k] = e.ID
	return nil
}

func (s *Store) ListByRental(_ context.Context, rentalID string) ([]payout.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]payout.Entry, len(s.byRental[rentalID]))
	copy(result, s.byRental[rentalID])
	return result, nil
}

func (s *Store) GetEntry(_ context.Context, id string) (*payout.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.byID[id]
	if !ok {
		return nil, payout.ErrEntryNotFound
	}
	return &e, nil
}
