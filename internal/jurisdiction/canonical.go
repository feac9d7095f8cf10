// Package jurisdiction maps raw jurisdiction strings from heterogeneous
// source files onto canonical keys and human-readable display names.
package jurisdiction

import (
	"regexp"
	"sort"
	"strings"
)

// overrides maps known-odd raw source spellings to canonical keys. Only
// values that the generated fallback key would get wrong need an entry.
var overrides = map[string]string{
	"sdcounty":      "san_diego",
	"kerncounty":    "kern",
	"sanbernardino": "san_bernardino",
	"ventura":       "ventura",
}

// displayNames maps canonical keys to UI display names.
var displayNames = map[string]string{
	"san_bernardino": "San Bernardino County",
	"ventura":        "Ventura County",
	"san_diego":      "San Diego County",
	"kern":           "Kern County",
}

var (
	countyWordRe = regexp.MustCompile(`\bcounty\b`)
	ctyWordRe    = regexp.MustCompile(`\bcty\b`)
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9]+`)
	edgeUscoreRe = regexp.MustCompile(`^_+|_+$`)
	multiUscore  = regexp.MustCompile(`__+`)
)

// Canonicalizer normalizes raw jurisdiction strings and records any input
// that resolved only through the generated-fallback path, for operator review.
type Canonicalizer struct {
	unseen map[string]struct{}
}

// NewCanonicalizer returns a Canonicalizer with an empty diagnostic set.
func NewCanonicalizer() *Canonicalizer {
	return &Canonicalizer{unseen: make(map[string]struct{})}
}

// Canonicalize maps a raw jurisdiction string to its canonical key.
// Lookup order: the lowercased input, the input with standalone
// "county"/"cty" removed, then the compact form with all non-alphanumerics
// stripped (so "SD County " still hits the "sdcounty" override), each against
// the override table; otherwise a generated snake_case fallback.
// Canonicalize is idempotent: feeding a canonical key back in regenerates
// the same key.
func (c *Canonicalizer) Canonicalize(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))

	noCounty := countyWordRe.ReplaceAllString(lower, "")
	noCounty = ctyWordRe.ReplaceAllString(noCounty, "")
	noCounty = strings.TrimSpace(noCounty)

	compact := nonAlnumRe.ReplaceAllString(lower, "")

	fallback := nonAlnumRe.ReplaceAllString(noCounty, "_")
	fallback = edgeUscoreRe.ReplaceAllString(fallback, "")
	fallback = multiUscore.ReplaceAllString(fallback, "_")

	for _, form := range []string{lower, noCounty, compact} {
		if key, ok := overrides[form]; ok {
			return key
		}
	}

	// Fallback-only resolutions are flagged for review; they still normalize.
	c.unseen[raw] = struct{}{}
	return fallback
}

// Unseen returns the raw strings that fell through to the fallback path,
// sorted for stable diagnostics.
func (c *Canonicalizer) Unseen() []string {
	out := make([]string, 0, len(c.unseen))
	for raw := range c.unseen {
		out = append(out, raw)
	}
	sort.Strings(out)
	return out
}

// DisplayName returns the human-readable name for a canonical key. Keys
// without an explicit entry are title-cased word by word.
func DisplayName(key string) string {
	if name, ok := displayNames[key]; ok {
		return name
	}
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
