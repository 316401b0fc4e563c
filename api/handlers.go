/*
handlers.go - HTTP API handlers for the points and pricing engine

PURPOSE:
  Exposes the quoting, pricing-cap, and payout engines via REST API.
  Handles HTTP request/response, JSON serialization, and delegates to
  domain logic.

ENDPOINTS:
  Quoting:
    POST   /api/quotes                    Quote a stay's points
    GET    /api/resorts                   Resort metadata (rooms/views)

  Pricing:
    POST   /api/pricing/caps              Guest price caps for a stay
    GET    /api/pricing/band?date=        Season + pricing band for a date
    POST   /api/pricing/suggestions       Suggested owner payouts for a stay

  Payouts:
    POST   /api/rentals/{id}/milestones   Record a milestone, release a stage
    GET    /api/rentals/{id}/payouts      Payout ledger for a rental

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, unsupported resort/room, bad dates
  - 404: Resource not found
  - 409: Milestone already recorded (webhook retry)
  - 500: Internal errors

SECURITY NOTE:
  No authentication middleware. The engine sits behind the platform's API
  gateway, which owns authn/authz.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/castaway/points-engine/calc"
	"github.com/castaway/points-engine/calendar"
	"github.com/castaway/points-engine/charts"
	"github.com/castaway/points-engine/payout"
	"github.com/castaway/points-engine/pricing"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Registry *charts.Registry
	Payouts  payout.Store
}

// NewHandler creates a new handler over a chart registry and payout store.
func NewHandler(reg *charts.Registry, store payout.Store) *Handler {
	return &Handler{Registry: reg, Payouts: store}
}

// =============================================================================
// QUOTE HANDLERS
// =============================================================================

// CreateQuote quotes a stay's points.
// POST /api/quotes
func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	summary, err := calc.CalculateStayPoints(h.Registry, calc.StayPointsInput{
		ResortCode: req.ResortCode,
		Room:       req.Room,
		View:       req.View,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Nights:     req.Nights,
		ChartYear:  req.ChartYear,
	})
	if err != nil {
		if calc.IsClientError(err) {
			writeErrorCode(w, http.StatusBadRequest, "Unsupported stay", errCode(err), err)
		} else {
			writeError(w, http.StatusBadRequest, "Invalid stay request", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, toQuoteDTO(summary))
}

// ListResorts returns calculator metadata for every resort.
// GET /api/resorts
func (h *Handler) ListResorts(w http.ResponseWriter, r *http.Request) {
	resorts := h.Registry.Resorts()
	dtos := make([]ResortDTO, len(resorts))
	for i, res := range resorts {
		dtos[i] = toResortDTO(res, h.Registry.ChartYears(res.Code))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// PRICING HANDLERS
// =============================================================================

// ComputeCaps returns the guest price caps and owner ceilings for a stay.
// POST /api/pricing/caps
func (h *Handler) ComputeCaps(w http.ResponseWriter, r *http.Request) {
	var req CapsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	checkIn, checkOut, err := parseStayRange(req.CheckIn, req.CheckOut)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid stay dates", err)
		return
	}

	summary := pricing.ComputeCapsForStay(checkIn, checkOut, req.ResortCode)
	writeJSON(w, http.StatusOK, toCapSummaryDTO(summary))
}

// GetBand returns the season and pricing band for a date.
// GET /api/pricing/band?date=YYYY-MM-DD
func (h *Handler) GetBand(w http.ResponseWriter, r *http.Request) {
	date, err := calendar.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid or missing date parameter", err)
		return
	}

	writeJSON(w, http.StatusOK, toBandDTO(pricing.BandForDate(date)))
}

// SuggestPayouts returns the suggested owner asking prices for a stay.
// POST /api/pricing/suggestions
func (h *Handler) SuggestPayouts(w http.ResponseWriter, r *http.Request) {
	var req SuggestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	checkIn, checkOut, err := parseStayRange(req.CheckIn, req.CheckOut)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid stay dates", err)
		return
	}

	capDollars, season := pricing.StayGuestPriceCap(checkIn, checkOut)
	maxPayout := pricing.MaxOwnerPayout(checkIn, checkOut)

	writeJSON(w, http.StatusOK, SuggestionsDTO{
		GuestCapDollars:       capDollars,
		Season:                string(season),
		MaxOwnerPayoutDollars: maxPayout,
		Suggestions:           pricing.SuggestedOwnerPayouts(maxPayout),
	})
}

// =============================================================================
// PAYOUT HANDLERS
// =============================================================================

// RecordMilestone records a completed milestone and, when it releases a
// payout stage, writes the ledger entry.
// POST /api/rentals/{id}/milestones
func (h *Handler) RecordMilestone(w http.ResponseWriter, r *http.Request) {
	rentalID := chi.URLParam(r, "id")

	var req MilestoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Milestone == "" {
		writeError(w, http.StatusBadRequest, "milestone is required", nil)
		return
	}

	stage, ok := payout.StageForMilestone(req.Milestone)
	if !ok {
		// Milestone moves the rental along but releases no money.
		writeJSON(w, http.StatusOK, MilestoneResponseDTO{
			RentalID:  rentalID,
			Milestone: req.Milestone,
			Stage:     nil,
		})
		return
	}

	entry := payout.Entry{
		ID:          fmt.Sprintf("po-%s-%s", rentalID, req.Milestone),
		RentalID:    rentalID,
		Milestone:   req.Milestone,
		Stage:       stage,
		AmountCents: payout.StageAmountCents(req.TotalCents, stage),
		TotalCents:  req.TotalCents,
	}

	if err := h.Payouts.Append(r.Context(), entry); err != nil {
		if errors.Is(err, payout.ErrDuplicateMilestone) {
			writeErrorCode(w, http.StatusConflict, "Milestone already recorded", "duplicate_milestone", err)
		} else {
			writeError(w, http.StatusInternalServerError, "Failed to record payout", err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, MilestoneResponseDTO{
		RentalID:    rentalID,
		Milestone:   req.Milestone,
		Stage:       &stage,
		AmountCents: entry.AmountCents,
		EntryID:     entry.ID,
	})
}

// ListPayouts returns a rental's payout ledger.
// GET /api/rentals/{id}/payouts
func (h *Handler) ListPayouts(w http.ResponseWriter, r *http.Request) {
	rentalID := chi.URLParam(r, "id")

	entries, err := h.Payouts.ListByRental(r.Context(), rentalID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list payouts", err)
		return
	}

	writeJSON(w, http.StatusOK, toPayoutEntryDTOs(entries))
}

// =============================================================================
// HELPERS
// =============================================================================

// parseStayRange parses the stay dates for the pricing endpoints. Check-in
// must parse; a bad check-out collapses the stay to one night, matching the
// engine's input-normalization fallback.
func parseStayRange(checkIn, checkOut string) (calendar.Date, calendar.Date, error) {
	in, err := calendar.ParseDate(checkIn)
	if err != nil {
		return calendar.Date{}, calendar.Date{}, err
	}
	out, err := calendar.ParseDate(checkOut)
	if err != nil {
		out = in
	}
	return in, out, nil
}

func errCode(err error) string {
	switch {
	case errors.Is(err, calc.ErrUnsupportedResort):
		return "unsupported_resort"
	case errors.Is(err, calc.ErrUnsupportedRoom):
		return "unsupported_room"
	default:
		return ""
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	writeErrorCode(w, status, message, "", err)
}

func writeErrorCode(w http.ResponseWriter, status int, message, code string, err error) {
	resp := ErrorResponse{Error: message, Code: code}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
