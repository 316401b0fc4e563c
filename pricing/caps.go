/*
caps.go - Stay-level guest price caps and owner payout ceilings

PURPOSE:
  Expands a stay into nights, evaluates the seasonal band (and resort
  modifier) per night, and aggregates:

  - strictest cap:  minimum final cap across nights. The platform never
                    promises a guest cap higher than its most restrictive
                    night.
  - average cap:    half-up rounded mean across nights.
  - owner ceiling:  cap minus the fixed per-point platform fee, never
                    negative.

  A simpler dollar-denominated variant (StayGuestPriceCap / MaxOwnerPayout)
  omits the resort modifier; both variants share the same minimum-across-
  nights selection.
*/
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/castaway/points-engine/calendar"
)

// =============================================================================
// CAP SUMMARY TYPES
// =============================================================================

// NightCap is the cap evaluation for one night.
type NightCap struct {
	Night               calendar.Date
	Season              Season
	BaseCapCents        int64 // guest cap from the season's band
	ResortModifierCents int64
	FinalCapCents       int64 // max(0, base + modifier)
}

// CapSummary is the stay-level aggregation.
type CapSummary struct {
	Nights                       []NightCap
	StrictestCapCents            int64
	StrictestSeason              Season
	AverageCapCents              int64
	MaxOwnerPayoutStrictestCents int64
	MaxOwnerPayoutAverageCents   int64
}

// =============================================================================
// CAP ENGINE
// =============================================================================

// ComputeCapsForStay evaluates guest price caps for every night of a stay
// and derives the stay-level caps and owner payout ceilings. Night
// expansion follows the shared [check-in, check-out) rule, so a non-forward
// check-out collapses to a single night.
func ComputeCapsForStay(checkIn, checkOut calendar.Date, resortCode string) CapSummary {
	modifier := ResortModifierCents(resortCode)
	dates := calendar.StayNights(checkIn, checkOut)

	summary := CapSummary{Nights: make([]NightCap, 0, len(dates))}
	var sum int64

	for _, d := range dates {
		season := ClassifySeason(d)
		base := BandFor(season).GuestCapCents
		final := base + modifier
		if final < 0 {
			final = 0
		}

		nc := NightCap{
			Night:               d,
			Season:              season,
			BaseCapCents:        base,
			ResortModifierCents: modifier,
			FinalCapCents:       final,
		}
		summary.Nights = append(summary.Nights, nc)
		sum += final

		if len(summary.Nights) == 1 || final < summary.StrictestCapCents {
			summary.StrictestCapCents = final
			summary.StrictestSeason = season
		}
	}

	summary.AverageCapCents = roundedMeanCents(sum, int64(len(summary.Nights)))
	summary.MaxOwnerPayoutStrictestCents = ownerCeiling(summary.StrictestCapCents)
	summary.MaxOwnerPayoutAverageCents = ownerCeiling(summary.AverageCapCents)
	return summary
}

// StayGuestPriceCap is the modifier-free variant used by listing
// validation: the strictest night's guest cap in whole dollars, plus the
// season that set it. Shares the minimum-across-nights rule with
// ComputeCapsForStay.
func StayGuestPriceCap(checkIn, checkOut calendar.Date) (int64, Season) {
	var capCents int64
	var season Season

	for i, d := range calendar.StayNights(checkIn, checkOut) {
		s := ClassifySeason(d)
		c := BandFor(s).GuestCapCents
		if i == 0 || c < capCents {
			capCents = c
			season = s
		}
	}
	return centsToDollars(capCents), season
}

// MaxOwnerPayout is the owner's per-point ceiling in dollars for a stay:
// the strictest guest cap minus the platform fee, never negative.
func MaxOwnerPayout(checkIn, checkOut calendar.Date) int64 {
	capDollars, _ := StayGuestPriceCap(checkIn, checkOut)
	payout := capDollars - centsToDollars(FeePerPointCents)
	if payout < 0 {
		return 0
	}
	return payout
}

// =============================================================================
// SUGGESTED PAYOUTS
// =============================================================================

// SuggestedOwnerPayouts offers owners a short list of per-point asking
// prices below the ceiling: {max-2, max-1, max} dollars, each clamped to
// the global minimum floor, deduplicated, and filtered to (0, max].
func SuggestedOwnerPayouts(maxDollars int64) []int64 {
	var out []int64
	for _, candidate := range []int64{maxDollars - 2, maxDollars - 1, maxDollars} {
		if candidate < MinOwnerPayoutDollars {
			candidate = MinOwnerPayoutDollars
		}
		if candidate <= 0 || candidate > maxDollars {
			continue
		}
		if len(out) > 0 && out[len(out)-1] == candidate {
			continue
		}
		out = append(out, candidate)
	}
	return out
}

// =============================================================================
// MONEY HELPERS
// =============================================================================

func ownerCeiling(capCents int64) int64 {
	payout := capCents - FeePerPointCents
	if payout < 0 {
		return 0
	}
	return payout
}

// roundedMeanCents computes a half-up rounded mean without float drift.
func roundedMeanCents(sum, n int64) int64 {
	if n == 0 {
		return 0
	}
	return decimal.NewFromInt(sum).
		Div(decimal.NewFromInt(n)).
		Round(0).
		IntPart()
}

// centsToDollars converts whole-dollar cent values (band table entries are
// always whole dollars) to dollars, truncating any stray cents.
func centsToDollars(cents int64) int64 {
	return decimal.NewFromInt(cents).
		Div(decimal.NewFromInt(100)).
		Floor().
		IntPart()
}
