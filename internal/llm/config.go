// Package llm provides the LLM client abstraction used to turn matched jobs
// into conversational answers. The interface keeps providers swappable and
// lets tests inject fakes.
package llm

// Provider represents an LLM provider.
type Provider string

// Supported providers. Only Gemini is implemented today.
const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai" // future
)

// Config holds the model configuration for answer generation.
type Config struct {
	Provider    Provider
	Model       string
	Temperature float32
}

// DefaultConfig returns the default Gemini configuration. Temperature is
// kept low but non-zero so summaries stay consistent without reading canned.
func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Model:       "gemini-2.5-flash",
		Temperature: 0.3,
	}
}
