package loader

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salt-nlp/workbank-cli/internal/config"
)

const workerCSV = `Task ID,Task,Occupation (O*NET-SOC Title),Domain,Automation Desire Rating,Job Security Rating,Enjoyment Rating,Worker ID
T001,Create marketing materials,Marketing Managers,Marketing,4.2,3.1,3.8,W001
T001,Create marketing materials,Marketing Managers,Marketing,3.8,3.5,4.0,W002
T002,Analyze survey responses,Analysts,Research,4.7,2.8,2.9,W003
`

const expertCSV = `Task ID,Task,Expert Capability Rating,Expert ID,Confidence
T001,Create marketing materials,3.5,E001,4.2
T002,Analyze survey responses,4.1,E002,4.5
`

const taskCSV = `Task ID,Task,Occupation (O*NET-SOC Title),O*NET-SOC Code,Domain,Task Category
T001,Create marketing materials,Marketing Managers,11-2021.00,Marketing,Creative
T002,Analyze survey responses,Analysts,13-1161.00,Research,Analytical
`

// stubFetcher serves canned CSV bodies by URL suffix, or a fixed error.
// Downloads run concurrently, so the call counter is mutex-guarded.
type stubFetcher struct {
	mu    sync.Mutex
	files map[string]string
	err   error
	calls int
}

func (s *stubFetcher) Download(_ context.Context, url string) (io.ReadCloser, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for suffix, body := range s.files {
		if strings.HasSuffix(url, suffix) {
			return io.NopCloser(strings.NewReader(body)), nil
		}
	}
	return nil, errors.New("no stub for " + url)
}

func testDatasetConfig() config.DatasetConfig {
	return config.DatasetConfig{
		Repo:       "SALT-NLP/WORKBank",
		BaseURL:    "https://huggingface.co",
		Revision:   "main",
		WorkerPath: "worker_data/domain_worker_desires.csv",
		ExpertPath: "expert_ratings/expert_rated_technological_capability.csv",
		TaskPath:   "task_data/task_statement_with_metadata.csv",
		CacheTTL:   time.Hour,
	}
}

func remoteStub() *stubFetcher {
	return &stubFetcher{files: map[string]string{
		"domain_worker_desires.csv":                 workerCSV,
		"expert_rated_technological_capability.csv": expertCSV,
		"task_statement_with_metadata.csv":          taskCSV,
	}}
}

func TestLoad_RemoteSuccess(t *testing.T) {
	stub := remoteStub()
	l := New(stub, testDatasetConfig())

	snap := l.Load(context.Background())

	assert.Equal(t, SourceRemote, snap.Source)
	assert.Empty(t, snap.Reason)
	assert.NotEmpty(t, snap.ID)
	assert.Len(t, snap.Tables.Workers, 3)
	assert.Len(t, snap.Tables.Experts, 2)
	assert.Len(t, snap.Tables.Tasks, 2)
	assert.Equal(t, 3, stub.calls)
}

func TestLoad_RemoteFailureFallsBack(t *testing.T) {
	stub := &stubFetcher{err: errors.New("connection refused")}
	l := New(stub, testDatasetConfig())

	snap := l.Load(context.Background())

	assert.Equal(t, SourceFallback, snap.Source)
	assert.Contains(t, snap.Reason, "connection refused")
	assert.NotEmpty(t, snap.Tables.Workers)
	assert.NotEmpty(t, snap.Tables.Experts)
	assert.NotEmpty(t, snap.Tables.Tasks)
}

func TestLoad_PartialFailureFallsBack(t *testing.T) {
	// Expert resource missing: no partial-result mode, the whole remote
	// attempt is abandoned.
	stub := &stubFetcher{files: map[string]string{
		"domain_worker_desires.csv":        workerCSV,
		"task_statement_with_metadata.csv": taskCSV,
	}}
	l := New(stub, testDatasetConfig())

	snap := l.Load(context.Background())
	assert.Equal(t, SourceFallback, snap.Source)
}

func TestLoad_MalformedRemoteDataFallsBack(t *testing.T) {
	stub := remoteStub()
	stub.files["domain_worker_desires.csv"] = strings.Replace(workerCSV, "4.2", "9.9", 1)
	l := New(stub, testDatasetConfig())

	snap := l.Load(context.Background())
	assert.Equal(t, SourceFallback, snap.Source)
	assert.Contains(t, snap.Reason, "rating out of range")
}

func TestLoad_RemoteResultIsCached(t *testing.T) {
	stub := remoteStub()
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := New(stub, testDatasetConfig(), WithClock(func() time.Time { return current }))

	first := l.Load(context.Background())
	second := l.Load(context.Background())

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 3, stub.calls)

	// Advance past the TTL: the loader refetches.
	current = current.Add(2 * time.Hour)
	third := l.Load(context.Background())
	assert.NotEqual(t, first.ID, third.ID)
	assert.Equal(t, 6, stub.calls)
}

func TestLoad_FallbackIsNeverCached(t *testing.T) {
	stub := &stubFetcher{err: errors.New("offline")}
	l := New(stub, testDatasetConfig())

	first := l.Load(context.Background())
	second := l.Load(context.Background())

	assert.Equal(t, SourceFallback, first.Source)
	assert.Equal(t, SourceFallback, second.Source)
	// Each load retried the remote source.
	assert.Equal(t, 6, stub.calls)
}

func TestValidateTables_Fallback(t *testing.T) {
	snap := FallbackSnapshot("test")
	require.NoError(t, ValidateTables(snap.Tables))
}

func TestValidateTables_EmptyWorkers(t *testing.T) {
	snap := FallbackSnapshot("test")
	tables := snap.Tables
	tables.Workers = nil
	assert.Error(t, ValidateTables(tables))
}

func TestValidateTables_DuplicateTaskMetadata(t *testing.T) {
	tables := FallbackSnapshot("test").Tables
	tables.Tasks = append(tables.Tasks, tables.Tasks[0])
	assert.Error(t, ValidateTables(tables))
}

func TestResourceURL(t *testing.T) {
	l := New(remoteStub(), testDatasetConfig())
	url := l.resourceURL("worker_data/domain_worker_desires.csv")
	assert.Equal(t, "https://huggingface.co/datasets/SALT-NLP/WORKBank/resolve/main/worker_data/domain_worker_desires.csv", url)
}
