/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

WIRE CONVENTIONS:
  - Dates are "YYYY-MM-DD" strings (UTC calendar dates)
  - All money is integer cents; dollar fields are whole dollars and say so

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"time"

	"github.com/castaway/points-engine/calc"
	"github.com/castaway/points-engine/charts"
	"github.com/castaway/points-engine/payout"
	"github.com/castaway/points-engine/pricing"
)

// =============================================================================
// QUOTE TYPES
// =============================================================================

// QuoteRequest describes a stay to quote. Either nights or check_out sets
// the stay length.
type QuoteRequest struct {
	ResortCode string `json:"resort_code"`
	Room       string `json:"room"`
	View       string `json:"view,omitempty"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out,omitempty"`
	Nights     int    `json:"nights,omitempty"`
	ChartYear  int    `json:"chart_year,omitempty"`
}

// NightDTO is one quoted night.
type NightDTO struct {
	Date   string `json:"date"`
	Points int    `json:"points"`
}

// QuoteDTO is the quote response.
type QuoteDTO struct {
	ResortCode     string     `json:"resort_code"`
	Room           string     `json:"room"`
	View           string     `json:"view"`
	ChartYear      int        `json:"chart_year"`
	Nightly        []NightDTO `json:"nightly"`
	TotalNights    int        `json:"total_nights"`
	TotalPoints    int        `json:"total_points"`
	ZeroPointDates []string   `json:"zero_point_dates,omitempty"`
}

// =============================================================================
// PRICING TYPES
// =============================================================================

// CapsRequest asks for the guest price caps over a stay.
type CapsRequest struct {
	ResortCode string `json:"resort_code"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
}

// NightCapDTO is one night's cap evaluation.
type NightCapDTO struct {
	Night               string `json:"night"`
	Season              string `json:"season"`
	BaseCapCents        int64  `json:"base_cap_cents"`
	ResortModifierCents int64  `json:"resort_modifier_cents"`
	FinalCapCents       int64  `json:"final_cap_cents"`
}

// CapSummaryDTO is the stay-level cap response.
type CapSummaryDTO struct {
	Nights                       []NightCapDTO `json:"nights"`
	StrictestCapCents            int64         `json:"strictest_cap_cents"`
	StrictestSeason              string        `json:"strictest_season"`
	AverageCapCents              int64         `json:"average_cap_cents"`
	MaxOwnerPayoutStrictestCents int64         `json:"max_owner_payout_strictest_cents"`
	MaxOwnerPayoutAverageCents   int64         `json:"max_owner_payout_average_cents"`
}

// BandDTO is the pricing band for a date.
type BandDTO struct {
	Season              string `json:"season"`
	MinOwnerCents       int64  `json:"min_owner_cents"`
	SuggestedOwnerCents int64  `json:"suggested_owner_cents"`
	MaxOwnerCents       int64  `json:"max_owner_cents"`
	GuestCapCents       int64  `json:"guest_cap_cents"`
	FeePerPointCents    int64  `json:"fee_per_point_cents"`
}

// SuggestionsRequest asks for suggested owner payouts over a stay.
type SuggestionsRequest struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

// SuggestionsDTO is the suggested-payout response (whole dollars).
type SuggestionsDTO struct {
	GuestCapDollars       int64   `json:"guest_cap_dollars"`
	Season                string  `json:"season"`
	MaxOwnerPayoutDollars int64   `json:"max_owner_payout_dollars"`
	Suggestions           []int64 `json:"suggestions"`
}

// =============================================================================
// RESORT TYPES
// =============================================================================

// RoomDTO is one room's metadata.
type RoomDTO struct {
	Code  string   `json:"code"`
	Views []string `json:"views"`
}

// ResortDTO is one resort's calculator metadata.
type ResortDTO struct {
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	Rooms      []RoomDTO `json:"rooms"`
	ChartYears []int     `json:"chart_years"`
}

// =============================================================================
// PAYOUT TYPES
// =============================================================================

// MilestoneRequest reports a completed operational milestone for a rental.
type MilestoneRequest struct {
	Milestone  string `json:"milestone"`
	TotalCents int64  `json:"total_cents"`
}

// MilestoneResponseDTO reports whether the milestone released a payout.
// Stage is null for milestones that trigger no payout.
type MilestoneResponseDTO struct {
	RentalID    string `json:"rental_id"`
	Milestone   string `json:"milestone"`
	Stage       *int   `json:"stage"`
	AmountCents int64  `json:"amount_cents"`
	EntryID     string `json:"entry_id,omitempty"`
}

// PayoutEntryDTO is one payout ledger row.
type PayoutEntryDTO struct {
	ID          string `json:"id"`
	RentalID    string `json:"rental_id"`
	Milestone   string `json:"milestone"`
	Stage       int    `json:"stage"`
	AmountCents int64  `json:"amount_cents"`
	TotalCents  int64  `json:"total_cents"`
	CreatedAt   string `json:"created_at"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toQuoteDTO(s *calc.StaySummary) QuoteDTO {
	dto := QuoteDTO{
		ResortCode:  s.ResortCode,
		Room:        s.Room,
		View:        s.View,
		ChartYear:   s.ChartYear,
		Nightly:     make([]NightDTO, len(s.Nights)),
		TotalNights: s.TotalNights,
		TotalPoints: s.TotalPoints,
	}
	for i, n := range s.Nights {
		dto.Nightly[i] = NightDTO{Date: n.Date.String(), Points: n.Points}
	}
	for _, d := range s.ZeroPointDates {
		dto.ZeroPointDates = append(dto.ZeroPointDates, d.String())
	}
	return dto
}

func toCapSummaryDTO(s pricing.CapSummary) CapSummaryDTO {
	dto := CapSummaryDTO{
		Nights:                       make([]NightCapDTO, len(s.Nights)),
		StrictestCapCents:            s.StrictestCapCents,
		StrictestSeason:              string(s.StrictestSeason),
		AverageCapCents:              s.AverageCapCents,
		MaxOwnerPayoutStrictestCents: s.MaxOwnerPayoutStrictestCents,
		MaxOwnerPayoutAverageCents:   s.MaxOwnerPayoutAverageCents,
	}
	for i, nc := range s.Nights {
		dto.Nights[i] = NightCapDTO{
			Night:               nc.Night.String(),
			Season:              string(nc.Season),
			BaseCapCents:        nc.BaseCapCents,
			ResortModifierCents: nc.ResortModifierCents,
			FinalCapCents:       nc.FinalCapCents,
		}
	}
	return dto
}

func toBandDTO(b pricing.Band) BandDTO {
	return BandDTO{
		Season:              string(b.Season),
		MinOwnerCents:       b.MinOwnerCents,
		SuggestedOwnerCents: b.SuggestedOwnerCents,
		MaxOwnerCents:       b.MaxOwnerCents,
		GuestCapCents:       b.GuestCapCents,
		FeePerPointCents:    pricing.FeePerPointCents,
	}
}

func toResortDTO(r *charts.Resort, chartYears []int) ResortDTO {
	dto := ResortDTO{
		Code:       r.Code,
		Name:       r.Name,
		Rooms:      make([]RoomDTO, len(r.Rooms)),
		ChartYears: chartYears,
	}
	for i, rc := range r.Rooms {
		dto.Rooms[i] = RoomDTO{Code: rc.Code, Views: rc.Views}
	}
	return dto
}

func toPayoutEntryDTO(e payout.Entry) PayoutEntryDTO {
	return PayoutEntryDTO{
		ID:          e.ID,
		RentalID:    e.RentalID,
		Milestone:   e.Milestone,
		Stage:       e.Stage,
		AmountCents: e.AmountCents,
		TotalCents:  e.TotalCents,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func toPayoutEntryDTOs(entries []payout.Entry) []PayoutEntryDTO {
	dtos := make([]PayoutEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = toPayoutEntryDTO(e)
	}
	return dtos
}
