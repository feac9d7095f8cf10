package types

// Job is a normalized civil-service job description. Identity within the
// dataset is the jurisdiction|code pair.
type Job struct {
	Jurisdiction        string   `json:"jurisdiction"`        // canonical snake_case key
	JurisdictionDisplay string   `json:"jurisdictionDisplay"` // human-readable name
	Code                string   `json:"code"`                // 5-digit, leading zeros preserved
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Keywords            []string `json:"keywords"` // extracted phrase snippets
}

// JobWithSalary is a Job joined with its salary grade list. SalaryGrades is
// empty when no salary row matched the jurisdiction|code key.
type JobWithSalary struct {
	Job
	SalaryGrades []SalaryGrade `json:"salaryGrades"`
}

// Key returns the jurisdiction|code identity key used to join jobs against
// the normalized salary table.
func (j Job) Key() string {
	return j.Jurisdiction + "|" + j.Code
}

// SearchIndexEntry is a derived, read-only record emitted alongside the gold
// dataset for lightweight title lookups.
type SearchIndexEntry struct {
	ID                  string   `json:"id"` // jurisdiction|code
	TitleTokens         []string `json:"titleTokens"`
	Jurisdiction        string   `json:"jurisdiction"`
	JurisdictionDisplay string   `json:"jurisdictionDisplay"`
	HasSalary           bool     `json:"hasSalary"`
}
