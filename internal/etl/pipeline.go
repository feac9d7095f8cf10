// Package etl normalizes raw county job and salary exports into the
// canonical joined dataset the search layer reads. Three stages, each fully
// materialized before the next: bronze (raw files) -> silver (per-source
// normalized) -> gold (joined jobs with salaries plus a search index).
package etl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/county-jobs/internal/jurisdiction"
	"github.com/jonathan/county-jobs/internal/salary"
	"github.com/jonathan/county-jobs/internal/types"
)

// File names for each data layer, relative to the data directory.
const (
	BronzeJobsFile     = "bronze/job_descriptions.raw.json"
	BronzeSalariesFile = "bronze/salaries.raw.json"
	SilverSalariesFile = "silver/salaries.normalized.json"
	SilverJobsFile     = "silver/job_descriptions.normalized.json"
	GoldJobsFile       = "gold/jobs_with_salary.json"
	GoldIndexFile      = "gold/search_index.json"
)

const maxSalaryGrade = 14

// rawRecord is a loosely typed bronze row. The source spreadsheets are messy
// enough that codes arrive as either strings or numbers.
type rawRecord map[string]any

// stringField reads a field tolerating string or numeric JSON values.
func (r rawRecord) stringField(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// Summary reports what a pipeline run produced.
type Summary struct {
	Jobs                int
	SalaryEntries       int
	UnseenJurisdictions []string
}

// Pipeline runs the bronze->silver->gold normalization over a data directory.
type Pipeline struct {
	dataDir string
	canon   *jurisdiction.Canonicalizer
}

// New returns a Pipeline rooted at dataDir.
func New(dataDir string) *Pipeline {
	return &Pipeline{
		dataDir: dataDir,
		canon:   jurisdiction.NewCanonicalizer(),
	}
}

// Run executes the full pipeline and persists all four output datasets.
// Re-running over unchanged bronze input is idempotent: map keys are sorted
// by the JSON encoder and slice order follows the input, so the output is
// byte-for-byte identical.
func (p *Pipeline) Run() (*Summary, error) {
	var rawJobs []rawRecord
	if err := p.readJSON(BronzeJobsFile, &rawJobs); err != nil {
		return nil, fmt.Errorf("loading bronze jobs: %w", err)
	}
	var rawSalaries []rawRecord
	if err := p.readJSON(BronzeSalariesFile, &rawSalaries); err != nil {
		return nil, fmt.Errorf("loading bronze salaries: %w", err)
	}

	salaryTable := p.normalizeSalaries(rawSalaries)
	silverJobs := p.normalizeJobs(rawJobs)
	gold := joinJobs(silverJobs, salaryTable)
	index := buildIndex(gold)

	for _, out := range []struct {
		path string
		data any
	}{
		{SilverSalariesFile, salaryTable},
		{SilverJobsFile, silverJobs},
		{GoldJobsFile, gold},
		{GoldIndexFile, index},
	} {
		if err := p.writeJSON(out.path, out.data); err != nil {
			return nil, err
		}
	}

	return &Summary{
		Jobs:                len(gold),
		SalaryEntries:       len(salaryTable),
		UnseenJurisdictions: p.canon.Unseen(),
	}, nil
}

// normalizeSalaries builds the silver salary table keyed by jurisdiction|code.
// Rows missing a jurisdiction or job code are skipped, as are rows whose
// grade columns produce zero valid amounts.
func (p *Pipeline) normalizeSalaries(rows []rawRecord) map[string][]types.SalaryGrade {
	table := make(map[string][]types.SalaryGrade)
	for _, row := range rows {
		jur := row.stringField("Jurisdiction")
		code := row.stringField("Job Code")
		if jur == "" || code == "" {
			continue
		}
		key := p.canon.Canonicalize(jur) + "|" + padCode(code)

		var grades []types.SalaryGrade
		for i := 1; i <= maxSalaryGrade; i++ {
			raw := strings.TrimSpace(row.stringField(fmt.Sprintf("Salary grade %d", i)))
			amount, ok := salary.ParseAmount(raw)
			if !ok || amount <= 0 {
				continue
			}
			grades = append(grades, types.SalaryGrade{
				Grade:    i,
				Amount:   amount,
				Cadence:  salary.InferCadence(amount),
				Currency: "USD",
			})
		}
		if len(grades) > 0 {
			table[key] = grades
		}
	}
	return table
}

// normalizeJobs produces silver jobs with canonical jurisdictions, padded
// codes, trimmed text, and extracted keyword snippets.
func (p *Pipeline) normalizeJobs(rows []rawRecord) []types.Job {
	jobs := make([]types.Job, 0, len(rows))
	for _, row := range rows {
		jurKey := p.canon.Canonicalize(row.stringField("jurisdiction"))
		description := strings.TrimSpace(row.stringField("description"))
		jobs = append(jobs, types.Job{
			Jurisdiction:        jurKey,
			JurisdictionDisplay: jurisdiction.DisplayName(jurKey),
			Code:                padCode(row.stringField("code")),
			Title:               strings.TrimSpace(row.stringField("title")),
			Description:         description,
			Keywords:            ExtractKeywords(description),
		})
	}
	return jobs
}

// joinJobs attaches each silver job's grade list, defaulting to an empty
// (non-nil) slice so the gold JSON always carries a salaryGrades array.
func joinJobs(jobs []types.Job, salaryTable map[string][]types.SalaryGrade) []types.JobWithSalary {
	gold := make([]types.JobWithSalary, 0, len(jobs))
	for _, job := range jobs {
		grades := salaryTable[job.Key()]
		if grades == nil {
			grades = []types.SalaryGrade{}
		}
		gold = append(gold, types.JobWithSalary{Job: job, SalaryGrades: grades})
	}
	return gold
}

func buildIndex(gold []types.JobWithSalary) []types.SearchIndexEntry {
	index := make([]types.SearchIndexEntry, 0, len(gold))
	for _, job := range gold {
		index = append(index, types.SearchIndexEntry{
			ID:                  job.Key(),
			TitleTokens:         strings.Fields(strings.ToLower(job.Title)),
			Jurisdiction:        job.Jurisdiction,
			JurisdictionDisplay: job.JurisdictionDisplay,
			HasSalary:           len(job.SalaryGrades) > 0,
		})
	}
	return index
}

// padCode zero-pads a job code to 5 digits, preserving any existing leading
// zeros on codes already at or past that width.
func padCode(code string) string {
	code = strings.TrimSpace(code)
	for len(code) < 5 {
		code = "0" + code
	}
	return code
}

func (p *Pipeline) readJSON(rel string, v any) error {
	data, err := os.ReadFile(filepath.Join(p.dataDir, rel))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", rel, err)
	}
	return nil
}

func (p *Pipeline) writeJSON(rel string, v any) error {
	path := filepath.Join(p.dataDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", rel, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}
