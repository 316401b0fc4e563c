package charts

import (
	"sort"

	"github.com/castaway/points-engine/calendar"
)

// =============================================================================
// REGISTRY - Loaded chart data, read-only after construction
// =============================================================================

// Registry holds every resort's metadata and chart years. It is built once
// at startup and never mutated, so concurrent lookups need no locking.
type Registry struct {
	resorts map[string]*Resort
	charts  map[string]map[int]*ChartYear
}

// NewRegistry builds a registry from resort metadata and chart years.
// Chart data for unknown resorts is dropped.
func NewRegistry(resorts []*Resort, charts map[string][]*ChartYear) *Registry {
	reg := &Registry{
		resorts: make(map[string]*Resort, len(resorts)),
		charts:  make(map[string]map[int]*ChartYear),
	}
	for _, r := range resorts {
		reg.resorts[r.Code] = r
	}
	for code, years := range charts {
		if _, ok := reg.resorts[code]; !ok {
			continue
		}
		byYear := make(map[int]*ChartYear, len(years))
		for _, cy := range years {
			byYear[cy.Year] = cy
		}
		reg.charts[code] = byYear
	}
	return reg
}

// Resort returns the metadata for a calculator code.
func (reg *Registry) Resort(code string) (*Resort, bool) {
	r, ok := reg.resorts[code]
	return r, ok
}

// Resorts returns all resorts ordered by code.
func (reg *Registry) Resorts() []*Resort {
	out := make([]*Resort, 0, len(reg.resorts))
	for _, r := range reg.resorts {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// HasCharts reports whether any chart year exists for the resort.
func (reg *Registry) HasCharts(code string) bool {
	return len(reg.charts[code]) > 0
}

// ChartYears returns the available chart years for a resort, ascending.
func (reg *Registry) ChartYears(code string) []int {
	years := make([]int, 0, len(reg.charts[code]))
	for y := range reg.charts[code] {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// chartFor resolves the chart year to use. Exact match first; otherwise the
// latest available year at or before the request, otherwise the earliest
// available. The fallback trades precision for availability: a quote against
// a not-yet-published year reuses existing rates instead of failing.
func (reg *Registry) chartFor(code string, year int) (*ChartYear, bool) {
	byYear := reg.charts[code]
	if len(byYear) == 0 {
		return nil, false
	}
	if cy, ok := byYear[year]; ok {
		return cy, true
	}
	years := reg.ChartYears(code)
	pick := years[0]
	for _, y := range years {
		if y <= year {
			pick = y
		}
	}
	return byYear[pick], true
}

// =============================================================================
// RATE LOOKUP
// =============================================================================

// NightRate is the result of a single-night rate lookup.
type NightRate struct {
	Points    int  // zero when the date falls outside every travel period
	ChartYear int  // chart year actually used; differs from the request on fallback
	InPeriod  bool // false for zero-point data-gap nights
}

// LookupRate resolves points-per-night for one date. The boolean is false
// only when the resort has no chart data at all or no chart row exists for
// the room/view, configuration problems callers should have screened out.
// A date outside every travel period succeeds with zero points.
func (reg *Registry) LookupRate(resortCode, room, view string, date calendar.Date, chartYear int) (NightRate, bool) {
	cy, ok := reg.chartFor(resortCode, chartYear)
	if !ok {
		return NightRate{}, false
	}

	key := RoomView{Room: room, View: view}
	seen := false
	for _, tp := range cy.Periods {
		rate, has := tp.Rates[key]
		if !has {
			continue
		}
		seen = true
		if tp.Contains(date) {
			return NightRate{
				Points:    rate.ForDate(date),
				ChartYear: cy.Year,
				InPeriod:  true,
			}, true
		}
	}
	if !seen {
		return NightRate{}, false
	}
	// Data gap: the room/view exists but no period covers this date.
	return NightRate{ChartYear: cy.Year}, true
}
