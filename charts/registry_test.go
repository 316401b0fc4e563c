package charts_test

import (
	"testing"
	"time"

	"github.com/castaway/points-engine/calendar"
	"github.com/castaway/points-engine/charts"
)

// =============================================================================
// DAY-TYPE BUCKETING TESTS
// =============================================================================

func TestRate_ForDate_FridaySaturdayPremium(t *testing.T) {
	// GIVEN: A rate row with distinct SunThu/FriSat columns
	// WHEN: Evaluating each weekday
	// THEN: Only Friday and Saturday hit the FriSat column

	rate := charts.Rate{SunThu: 10, FriSat: 13}

	// 2026-09-07 is a Monday
	monday := calendar.MustParseDate("2026-09-07")
	for i := 0; i < 7; i++ {
		d := monday.AddDays(i)
		got := rate.ForDate(d)
		want := 10
		if wd := d.Weekday(); wd == time.Friday || wd == time.Saturday {
			want = 13
		}
		if got != want {
			t.Errorf("%s (%s): got %d, want %d", d, d.Weekday(), got, want)
		}
	}
}

// =============================================================================
// LOOKUP TESTS
// =============================================================================

func TestLookupRate_ExactYear(t *testing.T) {
	reg := charts.Default()

	// 2026-09-07 is a Monday in the adventure period: BLT DS/S SunThu = 9
	nr, ok := reg.LookupRate("BLT", "DS", "S", calendar.MustParseDate("2026-09-07"), 2026)
	if !ok {
		t.Fatal("expected lookup to succeed")
	}
	if nr.Points != 9 {
		t.Errorf("expected 9 points, got %d", nr.Points)
	}
	if nr.ChartYear != 2026 || !nr.InPeriod {
		t.Errorf("unexpected result: %+v", nr)
	}
}

func TestLookupRate_MissingYear_FallsBack(t *testing.T) {
	// GIVEN: No 2099 chart exists for BLT
	// WHEN: Looking up a 2099 rate
	// THEN: The latest available year is used silently; the result reports it

	reg := charts.Default()

	nr, ok := reg.LookupRate("BLT", "DS", "S", calendar.MustParseDate("2099-09-07"), 2099)
	if !ok {
		t.Fatal("expected fallback lookup to succeed")
	}
	if nr.Points <= 0 {
		t.Errorf("expected positive points from fallback chart, got %d", nr.Points)
	}
	if nr.ChartYear != 2026 {
		t.Errorf("expected fallback to 2026 chart, got %d", nr.ChartYear)
	}
}

func TestLookupRate_PastYear_FallsBackToEarliest(t *testing.T) {
	// GIVEN: PVB only has a 2026 chart
	// WHEN: Requesting 2020
	// THEN: The earliest available year is used

	reg := charts.Default()

	nr, ok := reg.LookupRate("PVB", "DS", "S", calendar.MustParseDate("2020-03-10"), 2020)
	if !ok {
		t.Fatal("expected lookup to succeed")
	}
	if nr.ChartYear != 2026 {
		t.Errorf("expected 2026 chart, got %d", nr.ChartYear)
	}
	if nr.Points <= 0 {
		t.Errorf("expected positive points, got %d", nr.Points)
	}
}

func TestLookupRate_UnknownResort_NotFound(t *testing.T) {
	reg := charts.Default()

	_, ok := reg.LookupRate("XYZ", "DS", "S", calendar.MustParseDate("2026-03-10"), 2026)
	if ok {
		t.Error("expected not-found for unknown resort")
	}
}

func TestLookupRate_UnknownRoomView_NotFound(t *testing.T) {
	reg := charts.Default()

	// BLT has no grand villa with standard view
	_, ok := reg.LookupRate("BLT", "GV", "S", calendar.MustParseDate("2026-03-10"), 2026)
	if ok {
		t.Error("expected not-found for room/view with no chart row")
	}
}

func TestLookupRate_YearFallback_SameMonthDayRates(t *testing.T) {
	// GIVEN: A 2099 stay date falling back onto the 2026 chart
	// WHEN: Comparing against the equivalent 2026 date
	// THEN: Rates agree per month/day band (weekday may differ the points
	//       column, so compare a Monday to a Monday)

	reg := charts.Default()

	// 2099-09-07 is a Monday, as is 2026-09-07.
	a, _ := reg.LookupRate("VGF", "DS", "LV", calendar.MustParseDate("2099-09-07"), 2099)
	b, _ := reg.LookupRate("VGF", "DS", "LV", calendar.MustParseDate("2026-09-07"), 2026)
	if a.Points != b.Points {
		t.Errorf("fallback rate %d differs from source chart rate %d", a.Points, b.Points)
	}
}

// =============================================================================
// COVERAGE / DATA SHAPE TESTS
// =============================================================================

func TestDefaultCharts_FullYearCoverage(t *testing.T) {
	// GIVEN: The compiled-in chart data
	// WHEN: Walking every day of 2026 for each resort's first room/view
	// THEN: Every date lands in some travel period (no data gaps shipped)

	reg := charts.Default()

	for _, res := range reg.Resorts() {
		room := res.Rooms[0].Code
		view := res.Rooms[0].Views[0]
		d := calendar.NewDate(2026, time.January, 1)
		end := calendar.NewDate(2026, time.December, 31)
		for d.BeforeOrEqual(end) {
			nr, ok := reg.LookupRate(res.Code, room, view, d, 2026)
			if !ok {
				t.Fatalf("%s %s/%s: lookup failed", res.Code, room, view)
			}
			if !nr.InPeriod {
				t.Errorf("%s %s/%s: %s outside all travel periods", res.Code, room, view, d)
			}
			if nr.Points <= 0 {
				t.Errorf("%s %s/%s: non-positive rate on %s", res.Code, room, view, d)
			}
			d = d.AddDays(1)
		}
	}
}

func TestResort_DefaultView_FirstInList(t *testing.T) {
	reg := charts.Default()

	res, ok := reg.Resort("BLT")
	if !ok {
		t.Fatal("BLT missing")
	}
	view, ok := res.DefaultView("DS")
	if !ok || view != "S" {
		t.Errorf("expected default view S, got %q (ok=%v)", view, ok)
	}
	if _, ok := res.DefaultView("BG"); ok {
		t.Error("expected no default view for unsupported room")
	}
}
