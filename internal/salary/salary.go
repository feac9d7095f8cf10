// Package salary parses raw salary cells and converts grade amounts between
// pay cadences for cross-cadence comparison.
package salary

import (
	"regexp"
	"strconv"

	"github.com/jonathan/county-jobs/internal/types"
)

// monthlyThreshold is the cadence-inference cutoff: amounts above it are
// treated as monthly figures, at or below as hourly rates. This is source
// policy for the county spreadsheets, not a unit conversion.
const monthlyThreshold = 150

// HoursPerYear is the annualization factor for hourly rates (52 weeks x 40h).
const HoursPerYear = 2080

var nonNumericRe = regexp.MustCompile(`[^\d.]`)

// ParseAmount extracts a positive-or-zero numeric amount from a raw salary
// cell like "$2,000.50". Returns false for empty or non-numeric content;
// callers drop such grades silently to tolerate messy source spreadsheets.
func ParseAmount(raw string) (float64, bool) {
	cleaned := nonNumericRe.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0, false
	}
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

// InferCadence guesses the pay cadence of a raw amount.
func InferCadence(amount float64) types.Cadence {
	if amount > monthlyThreshold {
		return types.CadenceMonthly
	}
	return types.CadenceHourly
}

// AmountToAnnual converts an amount in the given cadence to its annual
// equivalent. Used only for comparison; converted values are never stored
// back onto a grade.
func AmountToAnnual(amount float64, cadence types.Cadence) float64 {
	switch cadence {
	case types.CadenceHourly:
		return amount * HoursPerYear
	case types.CadenceMonthly:
		return amount * 12
	default:
		return amount
	}
}
