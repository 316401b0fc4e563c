package calc_test

import (
	"errors"
	"testing"

	"github.com/castaway/points-engine/calc"
)

// =============================================================================
// ROOM LABEL RESOLUTION TESTS
// =============================================================================

func TestResolveRoomAndView_GenericStudio_FirstSupportedVariantWins(t *testing.T) {
	// GIVEN: "Studio" expands to deluxe, duo, tower, resort studio, inn room
	// WHEN: Resolving per resort
	// THEN: The first variant the resort offers wins

	reg := testRegistry()

	cases := []struct {
		resort   string
		wantRoom string
	}{
		{"BLT", "DS"},  // deluxe studio
		{"VGF", "DS"},  // deluxe studio before resort studio in candidate order
		{"PVB", "DS"},  // duo studio exists but deluxe is first candidate
	}
	for _, c := range cases {
		room, _, err := calc.ResolveRoomAndView(reg, c.resort, "Studio", "")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.resort, err)
		}
		if room != c.wantRoom {
			t.Errorf("%s: got room %s, want %s", c.resort, room, c.wantRoom)
		}
	}
}

func TestResolveRoomAndView_LabelNormalization(t *testing.T) {
	reg := testRegistry()

	for _, label := range []string{"2-Bedroom", "two bedroom", "2 BEDROOM", "2bedroom"} {
		room, _, err := calc.ResolveRoomAndView(reg, "BLT", label, "")
		if err != nil {
			t.Fatalf("label %q: unexpected error: %v", label, err)
		}
		if room != "2B" {
			t.Errorf("label %q: got %s, want 2B", label, room)
		}
	}
}

func TestResolveRoomAndView_TwoBedroomFallsThroughToTreehouse(t *testing.T) {
	// GIVEN: SSR offers 2B, so the first candidate wins there
	// WHEN: Resolving "2 Bedroom" at PVB where 2B also exists
	// THEN: 2B; the bungalow/treehouse candidates are only reached at
	//       resorts without a standard two-bedroom

	reg := testRegistry()

	room, _, err := calc.ResolveRoomAndView(reg, "PVB", "2 Bedroom", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room != "2B" {
		t.Errorf("got %s, want 2B", room)
	}
}

func TestResolveRoomAndView_GrandVilla(t *testing.T) {
	reg := testRegistry()

	room, view, err := calc.ResolveRoomAndView(reg, "BLT", "Grand Villa", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room != "GV" {
		t.Errorf("got room %s, want GV", room)
	}
	// GV at BLT has no standard view; default is lake view.
	if view != "LV" {
		t.Errorf("got view %s, want LV", view)
	}
}

func TestResolveRoomAndView_ConcreteCodePassesThrough(t *testing.T) {
	reg := testRegistry()

	room, view, err := calc.ResolveRoomAndView(reg, "PVB", "duo", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room != "DUO" || view != "S" {
		t.Errorf("got %s/%s, want DUO/S", room, view)
	}
}

func TestResolveRoomAndView_UnsupportedViewFallsBackToDefault(t *testing.T) {
	reg := testRegistry()

	// VGF has no theme-park view.
	_, view, err := calc.ResolveRoomAndView(reg, "VGF", "Studio", "TP")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view != "S" {
		t.Errorf("got view %s, want default S", view)
	}
}

func TestResolveRoomAndView_UnknownResort(t *testing.T) {
	reg := testRegistry()

	_, _, err := calc.ResolveRoomAndView(reg, "ZZZ", "Studio", "")
	if !errors.Is(err, calc.ErrUnsupportedResort) {
		t.Errorf("expected ErrUnsupportedResort, got %v", err)
	}
}

func TestResolveRoomAndView_UnknownRoom(t *testing.T) {
	reg := testRegistry()

	_, _, err := calc.ResolveRoomAndView(reg, "SSR", "Overwater Bungalow", "")
	var roomErr *calc.UnsupportedRoomError
	if !errors.As(err, &roomErr) {
		t.Fatalf("expected UnsupportedRoomError, got %v", err)
	}
	if roomErr.ResortCode != "SSR" || roomErr.Label != "Overwater Bungalow" {
		t.Errorf("unexpected error context: %+v", roomErr)
	}
}
