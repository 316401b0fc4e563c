/*
errors.go - Error types for the quoting engine

PURPOSE:
  Quote failures split into two classes:

  1. Configuration errors (fatal, fail fast): the resort has no chart data,
     or the room label matches nothing the resort offers. These indicate a
     data/integration bug and abort the quote before any rate lookup.
  2. Data-gap conditions (non-fatal, silent): a night outside every travel
     period quotes at zero points; a missing chart year substitutes an
     available one. Neither is an error here; callers wanting strictness
     add their own validation on top.

USAGE:
  if errors.Is(err, calc.ErrUnsupportedResort) { ... }

  var roomErr *calc.UnsupportedRoomError
  if errors.As(err, &roomErr) { ... roomErr.Label ... }
*/
package calc

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrUnsupportedResort is returned when a resort code has no chart data
	// at all.
	ErrUnsupportedResort = errors.New("unsupported resort")

	// ErrUnsupportedRoom is returned when no candidate room code for a label
	// is offered by the resort.
	ErrUnsupportedRoom = errors.New("unsupported room type")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// UnsupportedResortError reports a resort code with no chart entry.
type UnsupportedResortError struct {
	ResortCode string
}

func (e *UnsupportedResortError) Error() string {
	return fmt.Sprintf("no chart data for resort %q", e.ResortCode)
}

func (e *UnsupportedResortError) Unwrap() error { return ErrUnsupportedResort }

// UnsupportedRoomError reports a room label none of whose candidate codes
// the resort offers.
type UnsupportedRoomError struct {
	ResortCode string
	Label      string
	Candidates []string
}

func (e *UnsupportedRoomError) Error() string {
	return fmt.Sprintf("resort %s does not offer room %q (candidates tried: %v)",
		e.ResortCode, e.Label, e.Candidates)
}

func (e *UnsupportedRoomError) Unwrap() error { return ErrUnsupportedRoom }

// IsClientError reports whether the error is caused by caller input rather
// than an engine fault. The API layer maps these to 400.
func IsClientError(err error) bool {
	return errors.Is(err, ErrUnsupportedResort) || errors.Is(err, ErrUnsupportedRoom)
}
