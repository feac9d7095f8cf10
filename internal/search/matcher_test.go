package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/county-jobs/internal/types"
)

// newTestStore builds a Store preloaded with an in-memory dataset, bypassing
// the gold-file load.
func newTestStore(jobs []types.JobWithSalary) *Store {
	s := &Store{jobs: jobs}
	s.once.Do(func() {})
	return s
}

func testJob(jur, code, title, description string, grades ...types.SalaryGrade) types.JobWithSalary {
	if grades == nil {
		grades = []types.SalaryGrade{}
	}
	return types.JobWithSalary{
		Job: types.Job{
			Jurisdiction: jur,
			Code:         code,
			Title:        title,
			Description:  description,
		},
		SalaryGrades: grades,
	}
}

func testDataset() []types.JobWithSalary {
	return []types.JobWithSalary{
		testJob("san_diego", "00123", "Assistant Sheriff", "Oversees law enforcement operations."),
		testJob("san_diego", "00200", "Associate Meteorologist", "Forecasts weather and monitors air quality.",
			types.SalaryGrade{Grade: 1, Amount: 6000, Cadence: types.CadenceMonthly, Currency: "USD"}),
		testJob("ventura", "00300", "Deputy District Attorney", "Prosecutes criminal cases.",
			types.SalaryGrade{Grade: 1, Amount: 70.38, Cadence: types.CadenceHourly, Currency: "USD"}),
		testJob("kern", "00400", "Payroll Clerk", "Processes county payroll records.",
			types.SalaryGrade{Grade: 1, Amount: 20, Cadence: types.CadenceHourly, Currency: "USD"}),
	}
}

func TestSearch_EmptyQueryMatchesEverything(t *testing.T) {
	store := newTestStore(testDataset())
	results := store.Search(types.JobQuery{})
	assert.Len(t, results, 4)
	assert.Equal(t, "00123", results[0].Code, "dataset order is preserved")
}

func TestSearch_JurisdictionSubstring(t *testing.T) {
	store := newTestStore(testDataset())
	results := store.Search(types.JobQuery{Jurisdiction: "san_diego"})
	require.Len(t, results, 2)
	for _, job := range results {
		assert.Equal(t, "san_diego", job.Jurisdiction)
	}
}

func TestSearch_TitleMatchWithoutSalaryGrades(t *testing.T) {
	store := newTestStore(testDataset())
	results := store.Search(types.JobQuery{
		Keywords:     []string{"assistant", "sheriff"},
		Jurisdiction: "san_diego",
	})
	require.Len(t, results, 1)
	assert.Equal(t, "Assistant Sheriff", results[0].Title)
}

func TestSearch_TitleMatchesReplaceCandidates(t *testing.T) {
	jobs := append(testDataset(),
		testJob("ventura", "00500", "Records Technician", "Supports the assistant sheriff with deputy records."))
	store := newTestStore(jobs)

	// The technician's description would pass full text, but a title match
	// exists elsewhere in the dataset, so full text never runs.
	results := store.Search(types.JobQuery{Keywords: []string{"assistant", "sheriff"}})
	require.Len(t, results, 1)
	assert.Equal(t, "Assistant Sheriff", results[0].Title)
}

func TestSearch_FullTextSynonymExpansion(t *testing.T) {
	store := newTestStore(testDataset())

	results := store.Search(types.JobQuery{Keywords: []string{"weather"}})
	require.Len(t, results, 1)
	assert.Equal(t, "Associate Meteorologist", results[0].Title)
}

func TestSearch_FullTextRequiredHits(t *testing.T) {
	store := newTestStore(testDataset())

	// Single keyword needs only itself to hit.
	results := store.Search(types.JobQuery{Keywords: []string{"payroll"}})
	require.Len(t, results, 1)
	assert.Equal(t, "Payroll Clerk", results[0].Title)

	// Three keywords still need only two hits.
	results = store.Search(types.JobQuery{Keywords: []string{"payroll", "records", "zzzzz"}})
	require.Len(t, results, 1)
	assert.Equal(t, "Payroll Clerk", results[0].Title)

	// One hit out of three is not enough.
	results = store.Search(types.JobQuery{Keywords: []string{"payroll", "yyyyy", "zzzzz"}})
	assert.Empty(t, results)
}

func TestSearch_SalaryCadenceRoundTrip(t *testing.T) {
	store := newTestStore(testDataset())

	// A 6000 monthly grade is about 34.6 hourly, so an hourly floor of 34
	// passes and 35 does not.
	results := store.Search(types.JobQuery{
		Keywords:      []string{"weather"},
		MinSalary:     34,
		HasMinSalary:  true,
		SalaryCadence: types.CadenceHourly,
	})
	require.Len(t, results, 1)
	assert.Equal(t, "Associate Meteorologist", results[0].Title)

	results = store.Search(types.JobQuery{
		Keywords:      []string{"weather"},
		MinSalary:     35,
		HasMinSalary:  true,
		SalaryCadence: types.CadenceHourly,
	})
	assert.Empty(t, results)
}

func TestSearch_SalaryFilterDropsGradelessJobs(t *testing.T) {
	store := newTestStore(testDataset())
	results := store.Search(types.JobQuery{MinSalary: 1, HasMinSalary: true})
	require.Len(t, results, 3, "the gradeless job cannot meet any salary floor")
	for _, job := range results {
		assert.NotEmpty(t, job.SalaryGrades)
	}
}

func TestMeetsSalary(t *testing.T) {
	hourly := []types.SalaryGrade{{Grade: 1, Amount: 70.38, Cadence: types.CadenceHourly}}
	monthly := []types.SalaryGrade{{Grade: 1, Amount: 6000, Cadence: types.CadenceMonthly}}

	tests := []struct {
		name      string
		grades    []types.SalaryGrade
		minSalary float64
		cadence   types.Cadence
		want      bool
	}{
		{"hourly grade direct comparison", hourly, 70, types.CadenceHourly, true},
		{"hourly grade below floor", hourly, 71, types.CadenceHourly, false},
		{"default cadence is hourly", monthly, 34, "", true},
		{"monthly request compares annual equivalents", monthly, 72000, types.CadenceMonthly, true},
		{"annual request compares annual equivalents", hourly, 146000, types.CadenceAnnual, true},
		{"annual floor above all grades", monthly, 72001, types.CadenceAnnual, false},
		{"no grades never matches", nil, 1, types.CadenceHourly, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, meetsSalary(tt.grades, tt.minSalary, tt.cadence))
		})
	}
}

func TestMatchesJobTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		keywords []string
		want     bool
	}{
		{"composite assistant sheriff", "Assistant Sheriff", []string{"assistant", "sheriff"}, true},
		{"composite chief probation officer", "Assistant Chief Probation Officer",
			[]string{"assistant", "chief", "probation", "officer"}, true},
		{"two-part overlap", "Chief Probation Officer", []string{"probation", "officer"}, true},
		{"single overlap insufficient", "Probation Aide", []string{"probation", "clerk"}, false},
		{"no overlap", "Payroll Clerk", []string{"assistant", "sheriff"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesJobTitle(tt.title, tt.keywords))
		})
	}
}
