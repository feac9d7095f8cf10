package parsing

import (
	"regexp"
	"strings"
)

// titlePatterns recognize job titles inside queries. Specific multi-word
// titles are tried before the generic prefix pattern; the first match wins.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(assistant chief \w+ officer|assistant sheriff|associate meteorologist|assistant director[a-z ]+)\b`),
	regexp.MustCompile(`\b(assistant|associate|senior|chief|director|deputy)\s+(\w+(?:\s+\w+){0,3})\b`),
}

// extractJobTitle finds a job-title phrase in a lowercased query and returns
// it with the query text remaining after the phrase is removed. Returns an
// empty title when no pattern matches.
func extractJobTitle(lower string) (title, remaining string) {
	for _, re := range titlePatterns {
		if m := re.FindString(lower); m != "" {
			return m, strings.Replace(lower, m, "", 1)
		}
	}
	return "", lower
}
