package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castaway/points-engine/payout"
	"github.com/castaway/points-engine/store/memory"
	"github.com/castaway/points-engine/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================
// Both implementations are exercised against the same payout.Store contract.

func stores(t *testing.T) map[string]payout.Store {
	sq, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sq.Close() })

	return map[string]payout.Store{
		"sqlite": sq,
		"memory": memory.New(),
	}
}

func entry(id, rentalID, milestone string, stage int, amount int64, at time.Time) payout.Entry {
	return payout.Entry{
		ID:          id,
		RentalID:    rentalID,
		Milestone:   milestone,
		Stage:       stage,
		AmountCents: amount,
		TotalCents:  250000,
		CreatedAt:   at,
	}
}

// =============================================================================
// LEDGER CONTRACT TESTS
// =============================================================================

func TestStore_AppendAndList(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			e1 := entry("pe-1", "rental-1", "contract_executed", 70, 175000, base)
			e2 := entry("pe-2", "rental-1", "check_out", 30, 75000, base.Add(72*time.Hour))
			e3 := entry("pe-3", "rental-2", "contract_executed", 70, 175000, base)

			require.NoError(t, store.Append(ctx, e1))
			require.NoError(t, store.Append(ctx, e2))
			require.NoError(t, store.Append(ctx, e3))

			entries, err := store.ListByRental(ctx, "rental-1")
			require.NoError(t, err)
			require.Len(t, entries, 2)
			assert.Equal(t, "pe-1", entries[0].ID, "entries ordered by creation time")
			assert.Equal(t, "pe-2", entries[1].ID)
			assert.Equal(t, int64(175000), entries[0].AmountCents)
			assert.Equal(t, 30, entries[1].Stage)
		})
	}
}

func TestStore_DuplicateMilestone_Rejected(t *testing.T) {
	// GIVEN: A rental with a recorded contract_executed payout
	// WHEN: The same milestone arrives again (webhook retry)
	// THEN: DuplicateMilestoneError naming the existing entry

	ctx := context.Background()
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			first := entry("pe-1", "rental-1", "contract_executed", 70, 175000, base)
			require.NoError(t, store.Append(ctx, first))

			retry := entry("pe-retry", "rental-1", "contract_executed", 70, 175000, base.Add(time.Minute))
			err := store.Append(ctx, retry)

			assert.ErrorIs(t, err, payout.ErrDuplicateMilestone)
			var dupErr *payout.DuplicateMilestoneError
			require.ErrorAs(t, err, &dupErr)
			assert.Equal(t, "pe-1", dupErr.ExistingID)

			// Different milestone on the same rental is fine.
			assert.NoError(t, store.Append(ctx,
				entry("pe-2", "rental-1", "check_out", 30, 75000, base.Add(time.Hour))))
		})
	}
}

func TestStore_GetEntry(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			want := entry("pe-1", "rental-1", "check_out", 30, 75000, base)
			require.NoError(t, store.Append(ctx, want))

			got, err := store.GetEntry(ctx, "pe-1")
			require.NoError(t, err)
			assert.Equal(t, want.RentalID, got.RentalID)
			assert.Equal(t, want.AmountCents, got.AmountCents)
			assert.True(t, got.CreatedAt.Equal(base))

			_, err = store.GetEntry(ctx, "missing")
			assert.ErrorIs(t, err, payout.ErrEntryNotFound)
		})
	}
}

func TestStore_ListByRental_EmptyRental(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			entries, err := store.ListByRental(ctx, "nothing-here")
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}
