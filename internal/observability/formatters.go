// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/county-jobs/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxJobsToShow is the default number of jobs to display in result lists
	maxJobsToShow = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobQuery outputs a human-readable summary of the parsed query criteria.
func (p *Printer) PrintJobQuery(query types.JobQuery) {
	var sb strings.Builder

	if len(query.Keywords) > 0 {
		sb.WriteString(fmt.Sprintf("Keywords:     %s\n", strings.Join(query.Keywords, ", ")))
	} else {
		sb.WriteString("Keywords:     (none)\n")
	}
	if query.Jurisdiction != "" {
		sb.WriteString(fmt.Sprintf("Jurisdiction: %s\n", query.Jurisdiction))
	}
	if query.HasMinSalary {
		sb.WriteString(fmt.Sprintf("Min salary:   %.2f\n", query.MinSalary))
	}
	if query.SalaryCadence != "" {
		sb.WriteString(fmt.Sprintf("Cadence:      %s\n", query.SalaryCadence))
	}
	if query.IsEmpty() {
		sb.WriteString("(no criteria extracted; matches everything)\n")
	}

	p.printBox("PARSED QUERY", strings.TrimRight(sb.String(), "\n"))
}

// PrintSearchResults outputs the matched jobs, capped at maxJobsToShow.
func (p *Printer) PrintSearchResults(jobs []types.JobWithSalary) {
	var sb strings.Builder

	if len(jobs) == 0 {
		sb.WriteString("No jobs found for these parameters.")
	} else {
		sb.WriteString(fmt.Sprintf("Found %d job(s):\n", len(jobs)))
		for i, job := range jobs {
			if i >= maxJobsToShow {
				sb.WriteString(fmt.Sprintf("... and %d more\n", len(jobs)-maxJobsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("[%d] %s - %s (%s)\n", i+1, job.Title, job.JurisdictionDisplay, job.Code))
		}
	}

	p.printBox("SEARCH RESULTS", strings.TrimRight(sb.String(), "\n"))
}
