package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/county-jobs/internal/etl"
	"github.com/jonathan/county-jobs/internal/schemas"
)

var normalizeValidate bool

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Run the bronze->silver->gold ETL pipeline",
	Long:  "Normalize the raw job description and salary exports into the canonical joined dataset and search index. Re-running over unchanged input regenerates byte-identical output.",
	RunE:  runNormalize,
}

func init() {
	normalizeCmd.Flags().BoolVar(&normalizeValidate, "validate", false, "Validate bronze files against their JSON Schemas before running")
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if normalizeValidate {
		fmt.Println("Validating bronze inputs...")
		checks := []struct{ schema, file string }{
			{schemas.BronzeJobsSchema, etl.BronzeJobsFile},
			{schemas.BronzeSalariesSchema, etl.BronzeSalariesFile},
		}
		for _, c := range checks {
			schemaPath := schemas.ResolveSchemaPath(c.schema)
			if schemaPath == "" {
				return fmt.Errorf("schema not found: %s", c.schema)
			}
			if err := schemas.ValidateJSON(schemaPath, filepath.Join(cfg.DataDir, c.file)); err != nil {
				return fmt.Errorf("bronze validation failed for %s: %w", c.file, err)
			}
		}
	}

	summary, err := etl.New(cfg.DataDir).Run()
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	if len(summary.UnseenJurisdictions) > 0 {
		fmt.Printf("Warning: unmapped jurisdictions detected: %v\n", summary.UnseenJurisdictions)
	}
	fmt.Printf("Bronze->Silver->Gold complete: %d jobs, %d salary entries\n", summary.Jobs, summary.SalaryEntries)
	return nil
}
