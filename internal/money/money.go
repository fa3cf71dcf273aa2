// Package money converts between decimal strings and the integer minor-unit
// amounts used everywhere else.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultPlaces is the number of minor-unit digits for most currencies.
const DefaultPlaces = 2

// Parse converts "12.34" to 1234 for places=2. Values with more fractional
// digits than places are rejected rather than rounded.
func Parse(s string, places int32) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	minor := d.Shift(places)
	if !minor.Equal(minor.Truncate(0)) {
		return 0, fmt.Errorf("amount %s has more than %d decimal places", d, places)
	}
	if !minor.BigInt().IsInt64() {
		return 0, fmt.Errorf("amount %s out of range", d)
	}
	return minor.IntPart(), nil
}

// Format renders a minor-unit amount with exactly places fractional digits.
func Format(v int64, places int32) string {
	return decimal.New(v, -places).StringFixed(places)
}
