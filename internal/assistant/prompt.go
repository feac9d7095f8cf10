package assistant

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jonathan/county-jobs/internal/types"
)

const systemPrompt = `You are a concise job search assistant. Summarize the available jobs and make relevant recommendations. Focus on key details like title, location, and salary. Be brief and direct.`

// BuildJobSearchPrompt renders the system instructions, the matched jobs as
// numbered context lines, and the user's question into a single prompt.
func BuildJobSearchPrompt(query string, jobs []types.JobWithSalary) string {
	var context strings.Builder
	for i, job := range jobs {
		fmt.Fprintf(&context, "%d. %s (%s) - %s\n", i+1, job.Title, job.Jurisdiction, salaryRange(job.SalaryGrades))
	}

	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\nQuery: ")
	b.WriteString(query)
	b.WriteString("\n\nAvailable positions:\n")
	b.WriteString(context.String())
	b.WriteString("\nProvide a brief summary and relevant recommendations.")
	return b.String()
}

// salaryRange formats the span of a job's grade amounts, labeled with the
// first grade's cadence.
func salaryRange(grades []types.SalaryGrade) string {
	if len(grades) == 0 {
		return "Not specified"
	}
	min, max := grades[0].Amount, grades[0].Amount
	for _, g := range grades[1:] {
		if g.Amount < min {
			min = g.Amount
		}
		if g.Amount > max {
			max = g.Amount
		}
	}
	return fmt.Sprintf("$%s - $%s %s", humanize.Commaf(min), humanize.Commaf(max), grades[0].Cadence)
}
