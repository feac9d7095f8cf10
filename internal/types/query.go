package types

// JobQuery is the structured search criteria parsed from a free-text query.
// Every field is optional; an all-zero JobQuery means "match everything".
//
// Keywords is nil rather than empty when no keyword survived parsing, so
// callers can distinguish "no keyword constraint" from "zero matching tokens".
type JobQuery struct {
	Keywords      []string `json:"keywords,omitempty"`
	Jurisdiction  string   `json:"jurisdiction,omitempty"` // canonical key
	MinSalary     float64  `json:"minSalary,omitempty"`
	HasMinSalary  bool     `json:"-"`
	SalaryCadence Cadence  `json:"salaryCadence,omitempty"` // empty = unset; matcher defaults to hourly
}

// IsEmpty reports whether no criterion was extracted from the query.
func (q JobQuery) IsEmpty() bool {
	return len(q.Keywords) == 0 && q.Jurisdiction == "" && !q.HasMinSalary && q.SalaryCadence == ""
}
