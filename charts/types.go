/*
Package charts holds the resort point-chart reference data and its lookup
engine.

PURPOSE:
  Converts (resort, room, view, date, chart year) into a points-per-night
  rate. Charts are static reference data: loaded once, read-only for the
  process lifetime.

KEY CONCEPTS:
  - Resort:       Calculator code + supported rooms/views (ordered)
  - ChartYear:    One year's rate table for a resort
  - TravelPeriod: A set of month/day windows sharing one rate row
  - Rate:         SunThu vs FriSat points (the two day-type buckets)

LOOKUP POLICY:
  - Requested chart year missing → fall back to the nearest available year
    (availability over precision; the result reports the year used).
  - Date outside every travel period → zero points, not an error.
  - Friday and Saturday nights use the FriSat column; every other weekday
    uses SunThu.

SEE ALSO:
  - registry.go: Lookup implementation
  - data.go: Compiled-in chart data (no logic)
*/
package charts

import (
	"time"

	"github.com/castaway/points-engine/calendar"
)

// =============================================================================
// RATE - Points per night, split by day-type bucket
// =============================================================================

// Rate holds the two day-type columns of a chart row.
type Rate struct {
	SunThu int
	FriSat int
}

// ForDate picks the column for a night's weekday. Friday and Saturday are
// the premium bucket; Sunday through Thursday share the other.
func (r Rate) ForDate(d calendar.Date) int {
	switch d.Weekday() {
	case time.Friday, time.Saturday:
		return r.FriSat
	default:
		return r.SunThu
	}
}

// =============================================================================
// ROOM/VIEW KEY
// =============================================================================

// RoomView keys a chart row: a concrete room code plus a view code.
type RoomView struct {
	Room string
	View string
}

// =============================================================================
// TRAVEL PERIOD - Month/day banded rate rows
// =============================================================================

// TravelPeriod is a named set of month/day windows that share one rate row
// per room/view. Periods within a chart year are ordered; the first period
// whose windows contain a date wins. Together the periods should partition
// the calendar; a date outside all of them quotes at zero points.
type TravelPeriod struct {
	Name    string
	Windows []calendar.Window
	Rates   map[RoomView]Rate
}

// Contains reports whether any of the period's windows cover the date.
func (tp TravelPeriod) Contains(d calendar.Date) bool {
	md := d.MonthDay()
	for _, w := range tp.Windows {
		if w.Contains(md) {
			return true
		}
	}
	return false
}

// =============================================================================
// CHART YEAR
// =============================================================================

// ChartYear is one resort's rate table for one calendar year.
type ChartYear struct {
	Year    int
	Periods []TravelPeriod
}

// =============================================================================
// RESORT - Supported rooms and views (ordered reference data)
// =============================================================================

// RoomConfig lists a room's supported views. The order is authoritative
// reference data: the first view is the default when a caller does not
// specify one.
type RoomConfig struct {
	Code  string
	Views []string
}

// Resort describes one property's calculator metadata.
type Resort struct {
	Code  string
	Name  string
	Rooms []RoomConfig
}

// SupportsRoom reports whether the resort offers the concrete room code.
func (r *Resort) SupportsRoom(code string) bool {
	for _, rc := range r.Rooms {
		if rc.Code == code {
			return true
		}
	}
	return false
}

// Views returns the ordered view list for a room, or nil if the room is not
// offered.
func (r *Resort) Views(room string) []string {
	for _, rc := range r.Rooms {
		if rc.Code == room {
			return rc.Views
		}
	}
	return nil
}

// DefaultView returns the first supported view for a room.
func (r *Resort) DefaultView(room string) (string, bool) {
	views := r.Views(room)
	if len(views) == 0 {
		return "", false
	}
	return views[0], true
}

// SupportsView reports whether the room offers the view at this resort.
func (r *Resort) SupportsView(room, view string) bool {
	for _, v := range r.Views(room) {
		if v == view {
			return true
		}
	}
	return false
}
