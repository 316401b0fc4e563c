/*
rooms.go - Room label and view resolution

PURPOSE:
  Maps loosely-typed room labels from the booking UI ("Studio",
  "2-Bedroom", "Grand Villa") onto the engine's concrete room codes, and
  picks a default view when the caller leaves it out.

RESOLUTION POLICY:
  - Labels normalize to uppercase alphanumerics before matching.
  - A generic label expands to an ordered candidate list; the first
    candidate the resort actually offers wins. "STUDIO" covers every studio
    variant across resorts (deluxe, duo, tower, resort studio, inn room).
  - A label that is already a concrete room code passes through.
  - No view given → the room's first supported view (ordered reference
    data, not alphabetical).
  - A view the room does not offer falls back to the default view, an
    input-normalization fallback, not an error.
*/
package calc

import (
	"strings"

	"github.com/castaway/points-engine/charts"
)

// =============================================================================
// LABEL NORMALIZATION AND ALIASES
// =============================================================================

// normalizeLabel uppercases and strips everything but letters and digits:
// "2-Bedroom Villa" → "2BEDROOMVILLA".
func normalizeLabel(label string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(label) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// roomAliases maps normalized generic labels to ordered candidate room
// codes. Order matters: the first candidate a resort offers is chosen.
var roomAliases = map[string][]string{
	"STUDIO":        {"DS", "DUO", "TS", "RS", "IR"},
	"DELUXESTUDIO":  {"DS"},
	"DUOSTUDIO":     {"DUO"},
	"TOWERSTUDIO":   {"TS"},
	"RESORTSTUDIO":  {"RS"},
	"INNROOM":       {"IR"},
	"1BEDROOM":      {"1B"},
	"ONEBEDROOM":    {"1B"},
	"1BEDROOMVILLA": {"1B"},
	"2BEDROOM":      {"2B", "BG", "TH"},
	"TWOBEDROOM":    {"2B", "BG", "TH"},
	"2BEDROOMVILLA": {"2B", "BG", "TH"},
	"BUNGALOW":      {"BG"},
	"TREEHOUSE":     {"TH"},
	"3BEDROOM":      {"GV", "CT", "PH"},
	"THREEBEDROOM":  {"GV", "CT", "PH"},
	"GRANDVILLA":    {"GV", "CT", "PH"},
	"COTTAGE":       {"CT"},
	"PENTHOUSE":     {"PH"},
}

// candidatesFor expands a normalized label into candidate room codes. An
// unknown label is treated as a literal room code.
func candidatesFor(normalized string) []string {
	if codes, ok := roomAliases[normalized]; ok {
		return codes
	}
	return []string{normalized}
}

// =============================================================================
// RESOLUTION
// =============================================================================

// ResolveRoomAndView maps a free-text room label (and optional view) to the
// concrete room and view codes used for chart lookup. Fails fast with
// UnsupportedResortError / UnsupportedRoomError; never fails on views.
func ResolveRoomAndView(reg *charts.Registry, resortCode, roomLabel, view string) (string, string, error) {
	resort, ok := reg.Resort(resortCode)
	if !ok || !reg.HasCharts(resortCode) {
		return "", "", &UnsupportedResortError{ResortCode: resortCode}
	}

	normalized := normalizeLabel(roomLabel)
	candidates := candidatesFor(normalized)

	room := ""
	for _, c := range candidates {
		if resort.SupportsRoom(c) {
			room = c
			break
		}
	}
	if room == "" {
		return "", "", &UnsupportedRoomError{
			ResortCode: resortCode,
			Label:      roomLabel,
			Candidates: candidates,
		}
	}

	view = strings.ToUpper(strings.TrimSpace(view))
	if view == "" || !resort.SupportsView(room, view) {
		view, _ = resort.DefaultView(room)
	}
	return room, view, nil
}
