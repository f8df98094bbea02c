package pricing

import (
	"math"
	"strings"
)

// MinimumChargeCents is the charge used when the minimum-charge override
// code is applied: the whole order is forced down to fifty cents.
const MinimumChargeCents int64 = 50

// Discount is a resolved discount tier. Percent is 0 when the code was
// empty or unrecognized. MinimumCharge marks the special override code.
type Discount struct {
	Code          string
	Percent       int
	MinimumCharge bool
}

// Codes are static allow-lists; there is no expiry or usage tracking.
const minimumChargeCode = "F49D#GD3&"

var fortyPercentCodes = map[string]bool{
	"ATCOST$40": true,
}

var tenPercentCodes = map[string]bool{
	"TRAVIS":   true,
	"HYRUM":    true,
	"MASON":    true,
	"ZARA":     true,
	"DYLAN":    true,
	"KYLE":     true,
	"AMBROSE":  true,
	"FINN":     true,
	"NEWYEARS": true,
	"NEWYEAR":  true,
	"LOGAN":    true,
	"TIKTOK":   true,
}

// ResolveDiscount matches a code case-insensitively after trimming
// whitespace. Unknown codes resolve to a zero discount, not an error.
func ResolveDiscount(code string) Discount {
	upper := strings.ToUpper(strings.TrimSpace(code))
	if upper == "" {
		return Discount{}
	}
	switch {
	case upper == minimumChargeCode:
		return Discount{Code: upper, MinimumCharge: true}
	case fortyPercentCodes[upper]:
		return Discount{Code: upper, Percent: 40}
	case tenPercentCodes[upper]:
		return Discount{Code: upper, Percent: 10}
	}
	return Discount{Code: upper}
}

// PercentLabel is the value stored in processor metadata: the percent as a
// string, or "special" for the minimum-charge override.
func (d Discount) PercentLabel() string {
	if d.MinimumCharge {
		return "special"
	}
	switch d.Percent {
	case 40:
		return "40"
	case 10:
		return "10"
	}
	return "0"
}

// ItemCents converts one item's dollar cost to discounted cents. Rounding
// happens per line item, so multi-item carts accumulate rounding per line
// rather than on the order total.
func (d Discount) ItemCents(cost float64) int64 {
	charged := cost * (1 - float64(d.Percent)/100)
	return int64(math.Round(charged * 100))
}
