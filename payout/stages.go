/*
Package payout maps operational milestones to owner payout stages and
persists the resulting ledger entries.

PURPOSE:
  Owners are paid in two stages: 70% when the rental is locked in
  (reservation confirmed / contract executed) and the remaining 30% once
  the guest's stay completes. This package owns the milestone → stage
  mapping, the stage amount arithmetic, and the append-only entry model.

ROUNDING:
  Each stage rounds independently (half-up). 70% + 30% of an odd total may
  differ from the total by a cent; no remainder reconciliation is applied.

SEE ALSO:
  - store.go: Persistence interface and entry model
  - store/sqlite: SQLite-backed ledger
*/
package payout

import "github.com/shopspring/decimal"

// =============================================================================
// STAGES
// =============================================================================

const (
	StageFirst = 70 // released when the rental is locked in
	StageFinal = 30 // released after the stay completes
)

// milestoneStages maps milestone codes to their payout stage. Codes outside
// this table trigger no payout at all; most operational milestones
// (matched, payment_received, points_banked) move the rental along without
// releasing money.
var milestoneStages = map[string]int{
	"reservation_confirmed": StageFirst,
	"contract_executed":     StageFirst,
	"check_out":             StageFinal,
	"stay_completed":        StageFinal,
}

// StageForMilestone returns the payout stage a milestone releases, or
// ok=false when the milestone triggers no payout.
func StageForMilestone(code string) (int, bool) {
	stage, ok := milestoneStages[code]
	return stage, ok
}

// StageAmountCents computes the stage's share of the rental total,
// rounded half-up. Non-positive totals pay nothing.
func StageAmountCents(totalCents int64, stage int) int64 {
	if totalCents <= 0 {
		return 0
	}
	return decimal.NewFromInt(totalCents).
		Mul(decimal.NewFromInt(int64(stage))).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}
