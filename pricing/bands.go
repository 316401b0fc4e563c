package pricing

import "github.com/castaway/points-engine/calendar"

// =============================================================================
// PRICING BANDS - Per-season reference table (cents per point)
// =============================================================================

// FeePerPointCents is the platform's fixed per-point fee ($7/point). The
// maximum owner payout is always the guest cap minus this fee.
const FeePerPointCents int64 = 700

// MinOwnerPayoutDollars is the global floor for suggested owner payouts.
const MinOwnerPayoutDollars int64 = 14

// Band is one row of the pricing-band table: what owners may charge and
// what guests may be charged, per point, for a season.
type Band struct {
	Season              Season
	MinOwnerCents       int64
	SuggestedOwnerCents int64
	MaxOwnerCents       int64
	GuestCapCents       int64
}

// bandTable has exactly six rows, one per season.
var bandTable = map[Season]Band{
	SeasonChristmas: {
		Season:              SeasonChristmas,
		MinOwnerCents:       2800,
		SuggestedOwnerCents: 3000,
		MaxOwnerCents:       3100,
		GuestCapCents:       3800,
	},
	SeasonMarathon: {
		Season:              SeasonMarathon,
		MinOwnerCents:       2500,
		SuggestedOwnerCents: 2700,
		MaxOwnerCents:       2800,
		GuestCapCents:       3500,
	},
	SeasonHalloween: {
		Season:              SeasonHalloween,
		MinOwnerCents:       2300,
		SuggestedOwnerCents: 2500,
		MaxOwnerCents:       2600,
		GuestCapCents:       3300,
	},
	SeasonSpringBreak: {
		Season:              SeasonSpringBreak,
		MinOwnerCents:       2300,
		SuggestedOwnerCents: 2500,
		MaxOwnerCents:       2600,
		GuestCapCents:       3300,
	},
	SeasonHigh: {
		Season:              SeasonHigh,
		MinOwnerCents:       2100,
		SuggestedOwnerCents: 2300,
		MaxOwnerCents:       2400,
		GuestCapCents:       3100,
	},
	SeasonNormal: {
		Season:              SeasonNormal,
		MinOwnerCents:       1900,
		SuggestedOwnerCents: 2100,
		MaxOwnerCents:       2200,
		GuestCapCents:       2900,
	},
}

// BandFor returns the pricing band for a season.
func BandFor(season Season) Band { return bandTable[season] }

// BandForDate classifies the date and returns its band. This is what the
// owner listing flow shows when an owner picks a check-in date.
func BandForDate(d calendar.Date) Band { return BandFor(ClassifySeason(d)) }
