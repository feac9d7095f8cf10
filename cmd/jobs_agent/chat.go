package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/county-jobs/internal/assistant"
	"github.com/jonathan/county-jobs/internal/cache"
	"github.com/jonathan/county-jobs/internal/llm"
	"github.com/jonathan/county-jobs/internal/observability"
	"github.com/jonathan/county-jobs/internal/search"
)

var chatVerbose bool

var chatCmd = &cobra.Command{
	Use:   "chat <query>...",
	Short: "Answer a job-search query conversationally",
	Long:  "Parse the query, match it against the canonical dataset, and summarize the results through the configured LLM. Requires GEMINI_API_KEY.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().BoolVarP(&chatVerbose, "verbose", "v", false, "Print parsed query and matched jobs")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig.Model = cfg.Model
	}
	client, err := llm.NewClient(cmd.Context(), llmConfig, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	asst := assistant.New(search.NewStore(cfg.DataDir), client, cache.New(cfg.CacheSize))

	result, err := asst.Answer(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("chat failed: %w", err)
	}

	if chatVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintJobQuery(result.Parsed)
		printer.PrintSearchResults(result.Jobs)
	}

	fmt.Println(result.Response)
	return nil
}
