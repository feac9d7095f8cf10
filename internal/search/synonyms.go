package search

import "strings"

// synonymMap widens recall for specialized civil-service terms. Values are
// matched as substrings of job text, so multi-word entries are fine.
var synonymMap = map[string][]string{
	"meteorology":        {"meteorology", "meteorologist", "weather", "air quality"},
	"weather":            {"meteorology", "meteorologist", "weather", "air quality"},
	"sheriff":            {"sheriff", "law enforcement", "deputy", "corrections"},
	"probation":          {"probation", "parole", "community corrections"},
	"law_enforcement":    {"law enforcement", "sheriff", "probation", "police"},
	"district_attorney":  {"district attorney", "da", "prosecutor", "attorney"},
	"public_information": {"public information", "communications", "public relations", "pr"},
	"human_resources":    {"human resources", "hr", "personnel"},
	"officer":            {"officer", "official", "staff", "personnel"},
	"assistant":          {"assistant", "deputy", "associate"},
	"chief":              {"chief", "head", "lead", "principal", "senior"},
}

// ExpandKeyword returns the deduplicated union of a keyword's base form
// (with any trailing "related" suffix stripped), the keyword itself, and its
// synonym set. Words without a map entry expand to just themselves.
func ExpandKeyword(word string) []string {
	base := word
	if strings.HasSuffix(word, "related") {
		base = strings.TrimSuffix(word, "related")
	}

	variants := []string{base, word}
	variants = append(variants, synonymMap[base]...)

	seen := make(map[string]struct{}, len(variants))
	out := variants[:0]
	for _, v := range variants {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
