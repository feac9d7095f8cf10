package etl

import (
	"regexp"
	"strings"
)

// sectionPhrases are the description section headers whose first occurrence
// yields a keyword snippet.
var sectionPhrases = []string{
	"knowledge of",
	"skills and abilities",
	"ability to",
	"required",
	"experience",
	"education",
	"certification",
	"license",
}

var (
	lineSplitRe  = regexp.MustCompile(`\n+`)
	numberedRe   = regexp.MustCompile(`^[0-9]+\.\s`)
	bulletedRe   = regexp.MustCompile(`^[•⁃-]\s`)
	snippetRunes = 100
)

// ExtractKeywords pulls descriptive phrase snippets out of a job description:
// numbered or bulleted lines verbatim (trimmed), plus the first 100 characters
// following each known section phrase, truncated at the next line break.
// The result is deduplicated, preserving first-seen order.
func ExtractKeywords(description string) []string {
	lower := strings.ToLower(description)

	var keywords []string
	seen := make(map[string]struct{})
	add := func(kw string) {
		if kw == "" {
			return
		}
		if _, ok := seen[kw]; ok {
			return
		}
		seen[kw] = struct{}{}
		keywords = append(keywords, kw)
	}

	for _, line := range lineSplitRe.Split(lower, -1) {
		t := strings.TrimSpace(line)
		if numberedRe.MatchString(t) || bulletedRe.MatchString(t) {
			add(t)
		}
	}

	for _, phrase := range sectionPhrases {
		idx := strings.Index(lower, phrase)
		if idx == -1 {
			continue
		}
		snippet := truncateRunes(lower[idx:], snippetRunes)
		if nl := strings.Index(snippet, "\n"); nl != -1 {
			snippet = snippet[:nl]
		}
		add(strings.TrimSpace(snippet))
	}

	return keywords
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
