// Package parsing turns free-text job-search queries into structured
// criteria: keywords, jurisdiction, minimum salary, and salary cadence.
package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/county-jobs/internal/jurisdiction"
	"github.com/jonathan/county-jobs/internal/types"
)

// fillerWords add no search signal and are dropped from keyword lists.
var fillerWords = map[string]bool{
	"in": true, "at": true, "for": true, "the": true, "show": true,
	"me": true, "jobs": true, "job": true, "county": true, "above": true,
	"over": true, "greater": true, "than": true, "pay": true, "salary": true,
	"salaries": true, "hourly": true, "monthly": true,
}

var questionWords = map[string]bool{
	"what": true, "where": true, "how": true, "who": true, "when": true,
	"why": true, "which": true, "are": true, "is": true, "can": true,
	"could": true, "would": true, "should": true, "do": true, "does": true,
}

var (
	salaryAmountRe = regexp.MustCompile(`\$?(\d[\d,]*k?|\d*\.?\d+k)`)
	salaryStripRe  = regexp.MustCompile(`\$?\d[\d,]*k?`)
	hourlyRe       = regexp.MustCompile(`hour|hr|hourly`)
	monthlyRe      = regexp.MustCompile(`month|monthly`)
	annualRe       = regexp.MustCompile(`year|annually|annual|per year`)
	nonAlnumRe     = regexp.MustCompile(`[^a-z0-9]`)
)

// phraseTokens merges multi-word concepts into single canonical tokens
// whenever the phrase appears anywhere in the query, independent of whether
// the literal words survived keyword filtering.
var phraseTokens = []struct {
	re    *regexp.Regexp
	token string
}{
	{regexp.MustCompile(`law enforcement`), "law_enforcement"},
	{regexp.MustCompile(`district attorney`), "district_attorney"},
	{regexp.MustCompile(`public information`), "public_information"},
	{regexp.MustCompile(`human resources`), "human_resources"},
	{regexp.MustCompile(`probation officer`), "probation_officer"},
}

// ParseJobQuery extracts structured search criteria from a free-text query.
// A query yielding no criteria is not an error: every JobQuery field is
// optional and the matcher treats an empty query as "match everything".
func ParseJobQuery(query string) types.JobQuery {
	lower := strings.ToLower(strings.TrimSpace(query))

	var parsed types.JobQuery
	if key, ok := jurisdiction.MatchAlias(lower); ok {
		parsed.Jurisdiction = key
	}

	if amount, ok := extractSalary(lower); ok {
		parsed.MinSalary = amount
		parsed.HasMinSalary = true
	}

	// First matching cadence pattern wins, tested in this fixed order.
	switch {
	case hourlyRe.MatchString(lower):
		parsed.SalaryCadence = types.CadenceHourly
	case monthlyRe.MatchString(lower):
		parsed.SalaryCadence = types.CadenceMonthly
	case annualRe.MatchString(lower):
		parsed.SalaryCadence = types.CadenceAnnual
	}

	title, _ := extractJobTitle(lower)

	keywords := extractKeywordTokens(lower)

	// Title words go to the front of the list with priority.
	if title != "" {
		keywords = append(strings.Fields(title), keywords...)
	}

	for _, pt := range phraseTokens {
		if pt.re.MatchString(lower) {
			keywords = append(keywords, pt.token)
		}
	}

	// The jurisdiction's own words must not double-count as keywords.
	if parsed.Jurisdiction != "" {
		jurWords := strings.Fields(strings.ReplaceAll(parsed.Jurisdiction, "_", " "))
		keywords = filterOut(keywords, func(w string) bool {
			for _, jw := range jurWords {
				if w == jw {
					return true
				}
			}
			return false
		})
	}

	keywords = filterOut(keywords, func(w string) bool { return len(w) < 2 })
	keywords = dedupe(keywords)
	if len(keywords) > 0 {
		parsed.Keywords = keywords
	}

	return parsed
}

// extractSalary finds the first salary-looking literal ("$50,000", "70k").
// A trailing k multiplies by 1000. Only one amount is recognized per query.
func extractSalary(lower string) (float64, bool) {
	m := salaryAmountRe.FindStringSubmatch(lower)
	if m == nil {
		return 0, false
	}
	literal := m[1]
	multiplier := 1.0
	if strings.HasSuffix(literal, "k") {
		literal = strings.TrimSuffix(literal, "k")
		multiplier = 1000
	}
	literal = strings.ReplaceAll(literal, ",", "")
	amount, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return 0, false
	}
	return amount * multiplier, true
}

// extractKeywordTokens strips salary literals, splits on spaces, strips
// punctuation per token, and drops filler words, question words, and any
// token that whole-word matches a county alias.
func extractKeywordTokens(lower string) []string {
	stripped := salaryStripRe.ReplaceAllString(lower, "")
	var keywords []string
	for _, tok := range strings.Split(stripped, " ") {
		word := nonAlnumRe.ReplaceAllString(tok, "")
		if word == "" || fillerWords[word] || questionWords[word] {
			continue
		}
		if jurisdiction.IsAliasWord(word) {
			continue
		}
		keywords = append(keywords, word)
	}
	return keywords
}

func filterOut(words []string, drop func(string) bool) []string {
	out := words[:0]
	for _, w := range words {
		if !drop(w) {
			out = append(out, w)
		}
	}
	return out
}

func dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	var out []string
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
