package calendar

// =============================================================================
// STAY EXPANSION - The shared [check-in, check-out) rule
// =============================================================================

// StayNights expands a stay into its nights: every date in
// [checkIn, checkOut), check-in inclusive, check-out exclusive.
//
// A check-out that is not strictly after check-in collapses to a single
// night at check-in. This is a documented input-normalization fallback, not
// an error: callers pass whatever the guest typed and still get a usable
// quote.
func StayNights(checkIn, checkOut Date) []Date {
	if !checkOut.After(checkIn) {
		return []Date{checkIn}
	}
	nights := make([]Date, 0, DaysBetween(checkIn, checkOut))
	for d := checkIn; d.Before(checkOut); d = d.AddDays(1) {
		nights = append(nights, d)
	}
	return nights
}

// StayNightsCount expands a stay given an explicit night count. Counts below
// one collapse to a single night, mirroring StayNights.
func StayNightsCount(checkIn Date, count int) []Date {
	if count < 1 {
		count = 1
	}
	return StayNights(checkIn, checkIn.AddDays(count))
}
