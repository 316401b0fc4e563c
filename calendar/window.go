package calendar

import "time"

// =============================================================================
// MONTH/DAY KEY - Year-independent calendar position
// =============================================================================

// MonthDay identifies a position in the calendar without a year. Both the
// seasonal pricing bands and the resort point charts band the calendar by
// month/day, independent of year.
type MonthDay struct {
	Month time.Month
	Day   int
}

func NewMonthDay(month time.Month, day int) MonthDay {
	return MonthDay{Month: month, Day: day}
}

// Key encodes the month/day as month*100+day for ordering (Dec 15 → 1215).
func (md MonthDay) Key() int { return int(md.Month)*100 + md.Day }

// =============================================================================
// WINDOW - Possibly wrap-around month/day range
// =============================================================================

// Window is an inclusive month/day range. When Start sorts after End the
// window wraps the year boundary (e.g., Dec 15 → Jan 5).
type Window struct {
	Start MonthDay
	End   MonthDay
}

// Contains reports whether the month/day falls inside the window, using a
// cyclic comparison so wrap-around windows work:
//
//	startKey <= endKey:  key in [startKey, endKey]
//	startKey >  endKey:  key >= startKey OR key <= endKey
func (w Window) Contains(md MonthDay) bool {
	key, start, end := md.Key(), w.Start.Key(), w.End.Key()
	if start <= end {
		return key >= start && key <= end
	}
	return key >= start || key <= end
}
