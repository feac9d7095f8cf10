// Package assistant orchestrates the answer flow for a chat query: cache
// lookup, query parsing, job matching, prompt construction, and the LLM call.
package assistant

import (
	"context"
	"fmt"

	"github.com/jonathan/county-jobs/internal/cache"
	"github.com/jonathan/county-jobs/internal/llm"
	"github.com/jonathan/county-jobs/internal/parsing"
	"github.com/jonathan/county-jobs/internal/search"
	"github.com/jonathan/county-jobs/internal/types"
)

// NoResultsMessage is returned when no job matches the parsed criteria.
// An empty result set is not an error.
const NoResultsMessage = "I couldn't find any jobs matching your criteria. Could you try rephrasing your search?"

// Assistant answers free-text job-search queries. The LLM client is an
// interface so tests can inject fakes; the cache is optional.
type Assistant struct {
	store  *search.Store
	client llm.Client
	cache  *cache.Cache
}

// Result is the outcome of answering a query, including the intermediate
// parse and match results for verbose display.
type Result struct {
	Response  string
	Parsed    types.JobQuery
	Jobs      []types.JobWithSalary
	FromCache bool
}

// New creates an Assistant. A nil responses cache disables caching.
func New(store *search.Store, client llm.Client, responses *cache.Cache) *Assistant {
	return &Assistant{store: store, client: client, cache: responses}
}

// Answer runs the full flow for one query. Only LLM failures surface as
// errors; parse and match stages are total functions and an empty match set
// yields NoResultsMessage.
func (a *Assistant) Answer(ctx context.Context, query string) (*Result, error) {
	if a.cache != nil {
		if cached, ok := a.cache.Get(query); ok {
			return &Result{Response: cached, FromCache: true}, nil
		}
	}

	parsed := parsing.ParseJobQuery(query)
	jobs := a.store.Search(parsed)
	result := &Result{Parsed: parsed, Jobs: jobs}

	if len(jobs) == 0 {
		result.Response = NoResultsMessage
		return result, nil
	}

	prompt := BuildJobSearchPrompt(query, jobs)
	response, err := a.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generating answer: %w", err)
	}

	result.Response = response
	if a.cache != nil {
		a.cache.Set(query, response)
	}
	return result, nil
}
