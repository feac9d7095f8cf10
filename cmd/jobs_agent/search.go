package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/county-jobs/internal/observability"
	"github.com/jonathan/county-jobs/internal/parsing"
	"github.com/jonathan/county-jobs/internal/search"
)

var searchVerbose bool

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Parse a free-text query and print matching jobs",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().BoolVarP(&searchVerbose, "verbose", "v", false, "Print the parsed query criteria")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	parsed := parsing.ParseJobQuery(query)
	jobs := search.NewStore(cfg.DataDir).Search(parsed)

	printer := observability.NewPrinter(os.Stdout)
	if searchVerbose || cfg.Verbose {
		printer.PrintJobQuery(parsed)
	}
	printer.PrintSearchResults(jobs)

	if len(jobs) == 0 {
		return nil
	}
	fmt.Printf("\n%d job(s) matched.\n", len(jobs))
	return nil
}
