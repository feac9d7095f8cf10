package jurisdiction

import (
	"regexp"
	"strings"
)

// Alias pairs a conversational jurisdiction phrase with its canonical key.
// The table is an ordered slice, not a map: query parsing takes the first
// matching alias, and definition order is the documented tie-break.
type Alias struct {
	Phrase string
	Key    string
	re     *regexp.Regexp
}

// countyAliases covers the spellings and abbreviations seen in real queries.
// Each phrase is matched as a bounded word, never a substring, so "la" does
// not fire inside "atlanta".
var countyAliases = []Alias{
	{Phrase: "san diego", Key: "san_diego"},
	{Phrase: "san diego county", Key: "san_diego"},
	{Phrase: "sandiego", Key: "san_diego"},
	{Phrase: "sd", Key: "san_diego"},

	{Phrase: "ventura", Key: "ventura"},
	{Phrase: "ventura county", Key: "ventura"},
	{Phrase: "vc", Key: "ventura"},

	{Phrase: "los angeles", Key: "los angeles"},
	{Phrase: "los angeles county", Key: "los angeles"},
	{Phrase: "la", Key: "los angeles"},
	{Phrase: "la county", Key: "los angeles"},

	{Phrase: "santa barbara", Key: "santa barbara"},
	{Phrase: "santa barbara county", Key: "santa barbara"},
	{Phrase: "sb", Key: "santa barbara"},

	{Phrase: "orange", Key: "orange"},
	{Phrase: "orange county", Key: "orange"},
	{Phrase: "oc", Key: "orange"},

	{Phrase: "kern", Key: "kern"},
	{Phrase: "kern county", Key: "kern"},
	{Phrase: "kn", Key: "kern"},

	{Phrase: "san bernardino", Key: "san_bernardino"},
	{Phrase: "san bernardino county", Key: "san_bernardino"},
	{Phrase: "sbc", Key: "san_bernardino"},
	{Phrase: "sb county", Key: "san_bernardino"},
}

func init() {
	for i := range countyAliases {
		countyAliases[i].re = wordBoundRe(countyAliases[i].Phrase)
	}
}

func wordBoundRe(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
}

// MatchAlias scans the query for county aliases and returns the canonical
// key of the first one that matches as a whole word.
func MatchAlias(query string) (key string, ok bool) {
	lower := strings.ToLower(query)
	for _, a := range countyAliases {
		if a.re.MatchString(lower) {
			return a.Key, true
		}
	}
	return "", false
}

// IsAliasWord reports whether a single token is itself a whole-word match
// against any alias phrase. Used to strip jurisdiction vocabulary out of
// keyword lists.
func IsAliasWord(token string) bool {
	for _, a := range countyAliases {
		if a.re.MatchString(token) {
			return true
		}
	}
	return false
}
