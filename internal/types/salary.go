// Package types provides type definitions for the canonical job dataset and
// parsed search criteria used throughout the county-jobs system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Cadence is the pay-period unit of a salary figure.
type Cadence string

// Cadence values recognized across the dataset and query parser.
const (
	CadenceHourly  Cadence = "hourly"
	CadenceMonthly Cadence = "monthly"
	CadenceAnnual  Cadence = "annual"
)

// SalaryGrade is one step within a job code's pay scale. Cadence is inferred
// during normalization from the amount, not asserted by the source data.
type SalaryGrade struct {
	Grade    int     `json:"grade"`    // 1-14
	Amount   float64 `json:"amount"`   // always > 0; non-positive grades are dropped
	Cadence  Cadence `json:"cadence"`
	Currency string  `json:"currency"`
}
