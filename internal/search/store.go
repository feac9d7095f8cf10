// Package search matches parsed job queries against the canonical dataset
// produced by the ETL pipeline: jurisdiction filtering, lenient synonym-aware
// title/keyword matching, and cadence-aware salary thresholds.
package search

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/jonathan/county-jobs/internal/etl"
	"github.com/jonathan/county-jobs/internal/types"
)

// Store holds the canonical dataset, loaded lazily from the gold layer on
// first access and treated as read-only for the process lifetime. Concurrent
// queries share the single load through sync.Once; a fresh process is
// required to pick up new ETL output.
type Store struct {
	goldPath string
	once     sync.Once
	jobs     []types.JobWithSalary
}

// NewStore returns a Store reading the gold dataset under dataDir.
func NewStore(dataDir string) *Store {
	return &Store{goldPath: filepath.Join(dataDir, etl.GoldJobsFile)}
}

// Jobs returns the canonical dataset. A missing or corrupt gold file is a
// recoverable condition: it is logged once and the dataset is treated as
// empty, so searches simply return no results.
func (s *Store) Jobs() []types.JobWithSalary {
	s.once.Do(func() {
		data, err := os.ReadFile(s.goldPath)
		if err != nil {
			log.Printf("Error loading jobs from %s: %v", s.goldPath, err)
			return
		}
		if err := json.Unmarshal(data, &s.jobs); err != nil {
			log.Printf("Error parsing jobs dataset %s: %v", s.goldPath, err)
			s.jobs = nil
		}
	})
	return s.jobs
}
