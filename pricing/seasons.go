/*
Package pricing is the date-banded pricing-cap engine.

PURPOSE:
  Classifies calendar dates into demand seasons, maps seasons to owner/guest
  pricing bands, applies per-resort modifiers, and derives stay-level guest
  price caps and owner payout ceilings.

KEY CONCEPTS:
  - Season:   One of six demand classifications (month/day only, no year)
  - Band:     Per-season owner min/suggested/max and guest cap, in cents
  - Modifier: Flat per-resort dollar adjustment to the guest cap
  - Strictest cap: The minimum per-night cap governs the whole stay

DESIGN PRINCIPLES:
  1. All money is integer cents; decimal is used only for rounding, never
     float arithmetic.
  2. Reference tables are ordered literals; precedence is data, not
     control flow.
  3. Pure and stateless: safe for unlimited concurrency.

SEE ALSO:
  - bands.go: Season → band table
  - caps.go: Stay-level cap derivation
*/
package pricing

import (
	"time"

	"github.com/castaway/points-engine/calendar"
)

// =============================================================================
// SEASONS
// =============================================================================

type Season string

const (
	SeasonChristmas   Season = "christmas"
	SeasonMarathon    Season = "marathon"
	SeasonHalloween   Season = "halloween"
	SeasonSpringBreak Season = "spring_break"
	SeasonHigh        Season = "high"
	SeasonNormal      Season = "normal"
)

// seasonWindows is evaluated in order; the first containing window wins.
// Christmas is checked before Marathon on purpose: both can contain
// Jan 1–5, and Christmas pricing governs those dates. Do not reorder.
var seasonWindows = []struct {
	Window calendar.Window
	Season Season
}{
	{window(time.December, 15, time.January, 5), SeasonChristmas}, // wraps year boundary
	{window(time.January, 1, time.January, 15), SeasonMarathon},
	{window(time.October, 1, time.October, 31), SeasonHalloween},
	{window(time.March, 1, time.April, 20), SeasonSpringBreak},
	{window(time.May, 15, time.August, 31), SeasonHigh},
}

func window(m1 time.Month, d1 int, m2 time.Month, d2 int) calendar.Window {
	return calendar.Window{
		Start: calendar.NewMonthDay(m1, d1),
		End:   calendar.NewMonthDay(m2, d2),
	}
}

// ClassifySeason assigns a demand season to a calendar date. Only month and
// day are examined; the year never matters. Dates outside every window are
// the normal season.
func ClassifySeason(d calendar.Date) Season {
	md := d.MonthDay()
	for _, sw := range seasonWindows {
		if sw.Window.Contains(md) {
			return sw.Season
		}
	}
	return SeasonNormal
}
