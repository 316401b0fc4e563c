/*
Package calc is the points quote engine.

PURPOSE:
  Converts a stay request (resort, room, view, date range) into a nightly
  points breakdown and total, using the chart registry for per-night rates.

PIPELINE:
  request → room/view resolution → night expansion → per-night rate lookup
  → breakdown + total

DESIGN PRINCIPLES:
  1. Pure and stateless: the engine reads the immutable registry and the
     request, nothing else. Safe for unlimited concurrency.
  2. Fail fast on configuration (unsupported resort/room), tolerate data
     gaps (zero-point nights, missing chart years).
  3. The total is always the sum of the nightly breakdown; there is no
     second code path that could drift.

SEE ALSO:
  - rooms.go: Label → room code resolution
  - errors.go: Error taxonomy
  - charts: Rate lookup
*/
package calc

import (
	"github.com/castaway/points-engine/calendar"
	"github.com/castaway/points-engine/charts"
)

// =============================================================================
// REQUEST / RESULT TYPES
// =============================================================================

// StayRequest describes a stay to quote. Either Nights or CheckOut sets the
// stay length; when both are present Nights wins. A zero ChartYear defaults
// to the check-in year.
type StayRequest struct {
	ResortCode string
	Room       string // free-text label or concrete room code
	View       string // optional; empty → room's default view
	CheckIn    calendar.Date
	CheckOut   calendar.Date
	Nights     int
	ChartYear  int
}

// Night is one quoted calendar night.
type Night struct {
	Date   calendar.Date
	Points int
}

// Quote is the engine's output. TotalPoints always equals the sum over
// Nights. ZeroPointDates lists data-gap nights (outside every travel
// period) so callers can surface a warning; the engine itself does not.
type Quote struct {
	ResortCode     string
	Room           string
	View           string
	ChartYear      int // chart year actually used; differs from the request on fallback
	Nights         []Night
	TotalPoints    int
	ZeroPointDates []calendar.Date
}

// =============================================================================
// QUOTE ENGINE
// =============================================================================

// QuoteStay quotes a stay. Configuration problems (unsupported resort or
// room) fail before any rate lookup; zero-point nights and chart-year
// fallback are silent per-night conditions.
func QuoteStay(reg *charts.Registry, req StayRequest) (*Quote, error) {
	room, view, err := ResolveRoomAndView(reg, req.ResortCode, req.Room, req.View)
	if err != nil {
		return nil, err
	}

	var nights []calendar.Date
	if req.Nights > 0 {
		nights = calendar.StayNightsCount(req.CheckIn, req.Nights)
	} else {
		nights = calendar.StayNights(req.CheckIn, req.CheckOut)
	}

	chartYear := req.ChartYear
	if chartYear == 0 {
		chartYear = req.CheckIn.Year()
	}

	quote := &Quote{
		ResortCode: req.ResortCode,
		Room:       room,
		View:       view,
		ChartYear:  chartYear,
		Nights:     make([]Night, 0, len(nights)),
	}

	for _, date := range nights {
		nr, ok := reg.LookupRate(req.ResortCode, room, view, date, chartYear)
		if !ok {
			// Resort passed resolution but the chart has no row for this
			// room/view: configuration gap, same class as unsupported room.
			return nil, &UnsupportedRoomError{
				ResortCode: req.ResortCode,
				Label:      req.Room,
				Candidates: []string{room},
			}
		}
		quote.ChartYear = nr.ChartYear
		quote.Nights = append(quote.Nights, Night{Date: date, Points: nr.Points})
		quote.TotalPoints += nr.Points
		if !nr.InPeriod {
			quote.ZeroPointDates = append(quote.ZeroPointDates, date)
		}
	}
	return quote, nil
}

// =============================================================================
// UI-FACING WRAPPER
// =============================================================================

// StayPointsInput is the loosely-typed input from UI callers: wire dates
// and a free-text room label.
type StayPointsInput struct {
	ResortCode string
	Room       string
	View       string
	CheckIn    string // YYYY-MM-DD
	CheckOut   string // YYYY-MM-DD, optional when Nights > 0
	Nights     int
	ChartYear  int
}

// StaySummary adds the night count for display callers.
type StaySummary struct {
	Quote
	TotalNights int
}

// CalculateStayPoints is the thin wrapper over QuoteStay for callers that
// pass wire-format dates. Check-out parsing failures collapse the stay to a
// single night (input-normalization fallback); a bad check-in is a hard
// error since nothing sensible can be quoted without it.
func CalculateStayPoints(reg *charts.Registry, in StayPointsInput) (*StaySummary, error) {
	checkIn, err := calendar.ParseDate(in.CheckIn)
	if err != nil {
		return nil, err
	}

	req := StayRequest{
		ResortCode: in.ResortCode,
		Room:       in.Room,
		View:       in.View,
		CheckIn:    checkIn,
		Nights:     in.Nights,
		ChartYear:  in.ChartYear,
	}
	if in.Nights <= 0 {
		checkOut, err := calendar.ParseDate(in.CheckOut)
		if err != nil {
			checkOut = checkIn // collapses to one night
		}
		req.CheckOut = checkOut
	}

	quote, err := QuoteStay(reg, req)
	if err != nil {
		return nil, err
	}
	return &StaySummary{Quote: *quote, TotalNights: len(quote.Nights)}, nil
}
