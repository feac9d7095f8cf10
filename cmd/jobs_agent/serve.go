package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/county-jobs/internal/assistant"
	"github.com/jonathan/county-jobs/internal/cache"
	"github.com/jonathan/county-jobs/internal/llm"
	"github.com/jonathan/county-jobs/internal/search"
	"github.com/jonathan/county-jobs/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the chat HTTP API server",
	Long:  `Start an HTTP server exposing POST /chat for free-text job-search queries.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config and PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig.Model = cfg.Model
	}
	client, err := llm.NewClient(context.Background(), llmConfig, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	asst := assistant.New(search.NewStore(cfg.DataDir), client, cache.New(cfg.CacheSize))
	srv := server.New(server.Config{Port: cfg.Port}, asst)

	return srv.Start()
}
