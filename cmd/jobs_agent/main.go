// Package main provides the entry point for the county job search assistant CLI.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/county-jobs/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "jobs_agent",
	Short: "County job search assistant",
	Long:  "jobs_agent normalizes raw county job and salary exports into a canonical dataset and answers free-text job-search queries against it, optionally through an LLM-backed chat API.",
}

var (
	configPath string
	dataDir    string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "Data directory holding bronze/silver/gold layers")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves effective configuration: built-in defaults, then the
// optional config file, then environment variables, then CLI flags.
func loadConfig() (config.Config, error) {
	cfg := config.DefaultConfig()

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	if v := os.Getenv("JOBS_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
