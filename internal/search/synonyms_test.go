package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandKeyword(t *testing.T) {
	tests := []struct {
		name string
		word string
		want []string
	}{
		{
			name: "mapped word unions itself with synonyms",
			word: "sheriff",
			want: []string{"sheriff", "law enforcement", "deputy", "corrections"},
		},
		{
			name: "phrase token expands",
			word: "law_enforcement",
			want: []string{"law_enforcement", "law enforcement", "sheriff", "probation", "police"},
		},
		{
			name: "unmapped word expands to itself",
			word: "accountant",
			want: []string{"accountant"},
		},
		{
			name: "related suffix stripped to base form",
			word: "weatherrelated",
			want: []string{"weather", "weatherrelated", "meteorology", "meteorologist", "air quality"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandKeyword(tt.word))
		})
	}
}

func TestExpandKeyword_NoDuplicates(t *testing.T) {
	for _, word := range []string{"sheriff", "chief", "weatherrelated", "officer"} {
		variants := ExpandKeyword(word)
		seen := make(map[string]bool, len(variants))
		for _, v := range variants {
			assert.False(t, seen[v], "duplicate variant %q for %q", v, word)
			seen[v] = true
		}
	}
}
