package search

import (
	"strings"

	"github.com/jonathan/county-jobs/internal/salary"
	"github.com/jonathan/county-jobs/internal/types"
)

// jobTitleParts is the fixed title-part vocabulary used by the lenient title
// matcher. A title and keyword set sharing at least two parts is a match.
var jobTitleParts = []string{
	"assistant", "associate", "chief", "director",
	"sheriff", "meteorologist", "probation", "officer",
}

// Search filters the canonical dataset by the parsed query. The filter
// stages run in a fixed, documented order and each stage is conditional on
// its criterion being present, so an empty query matches everything:
//
//  1. jurisdiction substring filter
//  2. lenient title match; any title matches replace the candidate set
//  3. otherwise full-text keyword match with synonym expansion, requiring
//     at least min(2, keyword count) keywords to hit
//  4. cadence-aware minimum salary filter
//
// Dataset order is preserved; there is no relevance ranking.
func (s *Store) Search(query types.JobQuery) []types.JobWithSalary {
	candidates := s.Jobs()

	if query.Jurisdiction != "" {
		candidates = filterJurisdiction(candidates, query.Jurisdiction)
	}

	if len(query.Keywords) > 0 {
		titleMatches := filterJobs(candidates, func(job types.JobWithSalary) bool {
			return matchesJobTitle(job.Title, query.Keywords)
		})
		if len(titleMatches) > 0 {
			// Title matches take priority over general full-text matching,
			// with or without a jurisdiction.
			candidates = titleMatches
		} else {
			candidates = filterJobs(candidates, func(job types.JobWithSalary) bool {
				return matchesFullText(job, query.Keywords)
			})
		}
	}

	if query.HasMinSalary {
		candidates = filterJobs(candidates, func(job types.JobWithSalary) bool {
			return meetsSalary(job.SalaryGrades, query.MinSalary, query.SalaryCadence)
		})
	}

	return candidates
}

func filterJurisdiction(jobs []types.JobWithSalary, queryJur string) []types.JobWithSalary {
	want := strings.ToLower(strings.ReplaceAll(queryJur, "_", " "))
	return filterJobs(jobs, func(job types.JobWithSalary) bool {
		have := strings.ToLower(strings.ReplaceAll(job.Jurisdiction, "_", " "))
		return strings.Contains(have, want)
	})
}

// matchesJobTitle applies the lenient title rules: two hard-coded composite
// titles that users search for constantly, then a general overlap count over
// the title-part vocabulary.
func matchesJobTitle(title string, keywords []string) bool {
	title = strings.ToLower(title)
	kw := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		kw[k] = true
	}

	if kw["assistant"] && kw["sheriff"] &&
		strings.Contains(title, "assistant") && strings.Contains(title, "sheriff") {
		return true
	}

	if kw["assistant"] && kw["chief"] && kw["probation"] && kw["officer"] &&
		strings.Contains(title, "assistant") && strings.Contains(title, "chief") &&
		strings.Contains(title, "probation") && strings.Contains(title, "officer") {
		return true
	}

	matchCount := 0
	for _, part := range jobTitleParts {
		if strings.Contains(title, part) && kw[part] {
			matchCount++
		}
	}
	return matchCount >= 2
}

// matchesFullText counts how many keywords hit the job's title+description
// through at least one synonym variant. Multi-keyword queries need two or
// more hits; a single-keyword query needs its one keyword to hit. This is an
// intentional precision/recall trade-off.
func matchesFullText(job types.JobWithSalary, keywords []string) bool {
	searchText := strings.ToLower(job.Title + " " + job.Description)

	hits := 0
	for _, raw := range keywords {
		for _, variant := range ExpandKeyword(strings.ToLower(raw)) {
			if strings.Contains(searchText, variant) {
				hits++
				break
			}
		}
	}

	required := 2
	if len(keywords) < required {
		required = len(keywords)
	}
	return hits >= required
}

// meetsSalary reports whether any grade meets the threshold in the cadence
// the user asked for (default hourly). Hourly requests compare hourly grades
// directly and convert the rest through an annual equivalent divided by 2080;
// monthly and annual requests compare annual equivalents across the board.
func meetsSalary(grades []types.SalaryGrade, minSalary float64, cadence types.Cadence) bool {
	if cadence == "" {
		cadence = types.CadenceHourly
	}
	for _, g := range grades {
		var compare float64
		if cadence == types.CadenceHourly {
			if g.Cadence == types.CadenceHourly {
				compare = g.Amount
			} else {
				compare = salary.AmountToAnnual(g.Amount, g.Cadence) / salary.HoursPerYear
			}
		} else {
			compare = salary.AmountToAnnual(g.Amount, g.Cadence)
		}
		if compare >= minSalary {
			return true
		}
	}
	return false
}

func filterJobs(jobs []types.JobWithSalary, keep func(types.JobWithSalary) bool) []types.JobWithSalary {
	out := make([]types.JobWithSalary, 0, len(jobs))
	for _, job := range jobs {
		if keep(job) {
			out = append(out, job)
		}
	}
	return out
}
