package pricing

// =============================================================================
// RESORT PRICE MODIFIERS - Flat dollar adjustment to the guest cap
// =============================================================================

// resortModifierDollars adjusts a night's guest cap before the owner
// ceiling is derived. Premium monorail resorts command more per point;
// a negative modifier discounts the cap (the final cap never goes below
// zero). Resorts absent from the table carry no adjustment.
var resortModifierDollars = map[string]int64{
	"VGF": 4,
	"PVB": 3,
	"BLT": 2,
	"AKV": 0,
	"SSR": 0,
	"OKW": -2,
}

// ResortModifierCents returns the resort's cap adjustment in cents.
// Unknown resort codes adjust by zero.
func ResortModifierCents(resortCode string) int64 {
	return resortModifierDollars[resortCode] * 100
}
