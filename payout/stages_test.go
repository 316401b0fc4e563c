package payout_test

import (
	"testing"

	"github.com/castaway/points-engine/payout"
)

// =============================================================================
// MILESTONE → STAGE MAPPING TESTS
// =============================================================================

func TestStageForMilestone(t *testing.T) {
	cases := []struct {
		code      string
		wantStage int
		wantOK    bool
	}{
		{"reservation_confirmed", 70, true},
		{"contract_executed", 70, true},
		{"check_out", 30, true},
		{"stay_completed", 30, true},
		{"matched", 0, false},
		{"payment_received", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		stage, ok := payout.StageForMilestone(c.code)
		if stage != c.wantStage || ok != c.wantOK {
			t.Errorf("StageForMilestone(%q) = (%d, %v), want (%d, %v)",
				c.code, stage, ok, c.wantStage, c.wantOK)
		}
	}
}

// =============================================================================
// STAGE AMOUNT TESTS
// =============================================================================

func TestStageAmountCents(t *testing.T) {
	cases := []struct {
		total int64
		stage int
		want  int64
	}{
		{10000, 70, 7000},
		{10000, 30, 3000},
		{99999, 70, 69999}, // 69999.3 rounds down
		{99999, 30, 30000}, // 29999.7 rounds up
		{1, 70, 1},         // 0.7 rounds up
		{0, 70, 0},
		{-500, 70, 0},
	}
	for _, c := range cases {
		got := payout.StageAmountCents(c.total, c.stage)
		if got != c.want {
			t.Errorf("StageAmountCents(%d, %d) = %d, want %d", c.total, c.stage, got, c.want)
		}
	}
}

func TestStageAmounts_OddTotal_DriftAccepted(t *testing.T) {
	// GIVEN: A total not divisible by 100
	// WHEN: Summing both stages
	// THEN: Drift of up to one cent is accepted; no remainder rule exists

	total := int64(99999)
	sum := payout.StageAmountCents(total, 70) + payout.StageAmountCents(total, 30)

	drift := sum - total
	if drift < -1 || drift > 1 {
		t.Errorf("stage sum %d drifts more than a cent from total %d", sum, total)
	}
}

func TestStageAmounts_EvenTotal_NoDrift(t *testing.T) {
	total := int64(250000)
	sum := payout.StageAmountCents(total, 70) + payout.StageAmountCents(total, 30)
	if sum != total {
		t.Errorf("evenly divisible total should sum exactly: got %d, want %d", sum, total)
	}
}
