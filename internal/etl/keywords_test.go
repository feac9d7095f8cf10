package etl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords_BulletLines(t *testing.T) {
	description := "Duties include:\n1. Supervise staff\n2. Prepare reports\n• Maintain records\n⁃ Respond to inquiries\n- Coordinate schedules\nNot a bullet line"

	keywords := ExtractKeywords(description)

	assert.Contains(t, keywords, "1. supervise staff")
	assert.Contains(t, keywords, "2. prepare reports")
	assert.Contains(t, keywords, "• maintain records")
	assert.Contains(t, keywords, "⁃ respond to inquiries")
	assert.Contains(t, keywords, "- coordinate schedules")
	assert.NotContains(t, keywords, "not a bullet line")
}

func TestExtractKeywords_SectionPhrases(t *testing.T) {
	description := "Knowledge of modern law enforcement practices and procedures.\nExperience in a supervisory role is required."

	keywords := ExtractKeywords(description)

	found := false
	for _, kw := range keywords {
		if strings.HasPrefix(kw, "knowledge of modern law enforcement") {
			found = true
		}
	}
	assert.True(t, found, "expected a snippet starting at the section phrase, got %v", keywords)
}

func TestExtractKeywords_SnippetTruncatedAtNewline(t *testing.T) {
	description := "Experience in payroll.\nSecond line should not leak into the snippet."

	keywords := ExtractKeywords(description)

	assert.Contains(t, keywords, "experience in payroll.")
	for _, kw := range keywords {
		assert.NotContains(t, kw, "second line")
	}
}

func TestExtractKeywords_SnippetCappedAt100Chars(t *testing.T) {
	long := "ability to " + strings.Repeat("x", 200)

	keywords := ExtractKeywords(long)

	assert.NotEmpty(t, keywords)
	for _, kw := range keywords {
		assert.LessOrEqual(t, len([]rune(kw)), 100)
	}
}

func TestExtractKeywords_Deduplicates(t *testing.T) {
	description := "• same item\n• same item\n• other item"

	keywords := ExtractKeywords(description)

	assert.Equal(t, []string{"• same item", "• other item"}, keywords)
}

func TestExtractKeywords_EmptyDescription(t *testing.T) {
	assert.Empty(t, ExtractKeywords(""))
}
