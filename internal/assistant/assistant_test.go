package assistant

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/county-jobs/internal/cache"
	"github.com/jonathan/county-jobs/internal/etl"
	"github.com/jonathan/county-jobs/internal/search"
)

// fakeClient records prompts and returns canned responses.
type fakeClient struct {
	response string
	err      error
	calls    int
	lastGot  string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.lastGot = prompt
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func newTestStore(t *testing.T) *search.Store {
	t.Helper()
	dataDir := t.TempDir()
	goldPath := filepath.Join(dataDir, etl.GoldJobsFile)
	require.NoError(t, os.MkdirAll(filepath.Dir(goldPath), 0o755))
	require.NoError(t, os.WriteFile(goldPath, []byte(`[
		{
			"jurisdiction": "san_diego",
			"jurisdictionDisplay": "San Diego County",
			"code": "00123",
			"title": "Assistant Sheriff",
			"description": "Oversees law enforcement operations.",
			"salaryGrades": [
				{"grade": 1, "amount": 70.38, "cadence": "hourly", "currency": "USD"}
			]
		}
	]`), 0o644))
	return search.NewStore(dataDir)
}

func TestAnswer_Success(t *testing.T) {
	client := &fakeClient{response: "Try the Assistant Sheriff role."}
	a := New(newTestStore(t), client, nil)

	result, err := a.Answer(context.Background(), "assistant sheriff jobs in san diego")
	require.NoError(t, err)

	assert.Equal(t, "Try the Assistant Sheriff role.", result.Response)
	assert.False(t, result.FromCache)
	assert.Equal(t, "san_diego", result.Parsed.Jurisdiction)
	require.Len(t, result.Jobs, 1)
	assert.Contains(t, client.lastGot, "Assistant Sheriff (san_diego)")
	assert.Contains(t, client.lastGot, "assistant sheriff jobs in san diego")
}

func TestAnswer_NoResults(t *testing.T) {
	client := &fakeClient{response: "unused"}
	a := New(newTestStore(t), client, nil)

	result, err := a.Answer(context.Background(), "underwater basket weaving jobs")
	require.NoError(t, err)

	assert.Equal(t, NoResultsMessage, result.Response)
	assert.Empty(t, result.Jobs)
	assert.Zero(t, client.calls, "no LLM call when nothing matched")
}

func TestAnswer_CacheHit(t *testing.T) {
	client := &fakeClient{response: "fresh answer"}
	a := New(newTestStore(t), client, cache.New(10))

	first, err := a.Answer(context.Background(), "assistant sheriff jobs")
	require.NoError(t, err)
	assert.False(t, first.FromCache)

	second, err := a.Answer(context.Background(), "assistant sheriff jobs")
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, "fresh answer", second.Response)
	assert.Equal(t, 1, client.calls)
}

func TestAnswer_LLMErrorSurfaces(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	a := New(newTestStore(t), client, cache.New(10))

	_, err := a.Answer(context.Background(), "assistant sheriff jobs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")

	// Failures are not cached.
	client.err = nil
	client.response = "recovered"
	result, err := a.Answer(context.Background(), "assistant sheriff jobs")
	require.NoError(t, err)
	assert.False(t, result.FromCache)
	assert.Equal(t, "recovered", result.Response)
}
