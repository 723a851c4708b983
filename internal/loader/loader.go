// Package loader obtains the three WORKBank tables from the remote dataset
// repository, substituting a deterministic built-in table set when the
// remote source is unavailable. Remote results are cached in memory for a
// bounded window; the fallback is never cached.
package loader

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/salt-nlp/workbank-cli/internal/config"
	"github.com/salt-nlp/workbank-cli/internal/fetcher"
	"github.com/salt-nlp/workbank-cli/internal/model"
)

// Source tags where a snapshot's tables came from.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Snapshot is one immutable load of the three raw tables, tagged with its
// provenance so callers can distinguish remote data from the built-in
// fallback without log inspection.
type Snapshot struct {
	ID        string          `json:"id"`
	Source    Source          `json:"source"`
	Reason    string          `json:"reason,omitempty"` // why the fallback was used
	FetchedAt time.Time       `json:"fetched_at"`
	Tables    model.RawTables `json:"tables"`
}

// Loader fetches and caches dataset snapshots.
type Loader struct {
	fetcher fetcher.Fetcher
	cfg     config.DatasetConfig
	cache   *snapshotCache
}

// Option customizes a Loader.
type Option func(*Loader)

// WithClock overrides the cache clock. Tests use this to control expiry.
func WithClock(now func() time.Time) Option {
	return func(l *Loader) {
		l.cache.now = now
	}
}

// New creates a Loader over the given fetcher and dataset configuration.
func New(f fetcher.Fetcher, cfg config.DatasetConfig, opts ...Option) *Loader {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	l := &Loader{
		fetcher: f,
		cfg:     cfg,
		cache:   newSnapshotCache(ttl),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the current snapshot. It attempts the remote dataset first
// (through the cache) and falls back to the built-in tables on any failure.
// Source failures never propagate to the caller.
func (l *Loader) Load(ctx context.Context) *Snapshot {
	if snap, ok := l.cache.get(l.cfg.Repo); ok {
		return snap
	}

	snap, err := l.loadRemote(ctx)
	if err != nil {
		zap.L().Warn("remote dataset unavailable, using fallback tables",
			zap.String("repo", l.cfg.Repo),
			zap.Error(err),
		)
		fb := FallbackSnapshot(err.Error())
		fb.FetchedAt = l.cache.now()
		logSnapshot(fb)
		return fb
	}

	l.cache.put(l.cfg.Repo, snap)
	logSnapshot(snap)
	return snap
}

// loadRemote fetches and decodes all three resources. Any failure fails the
// whole attempt: there is no partial-result mode.
func (l *Loader) loadRemote(ctx context.Context) (*Snapshot, error) {
	var tables model.RawTables

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := fetchResource[model.WorkerResponse](gCtx, l.fetcher, l.resourceURL(l.cfg.WorkerPath))
		if err != nil {
			return eris.Wrap(err, "loader: worker responses")
		}
		tables.Workers = rows
		return nil
	})
	g.Go(func() error {
		rows, err := fetchResource[model.ExpertRating](gCtx, l.fetcher, l.resourceURL(l.cfg.ExpertPath))
		if err != nil {
			return eris.Wrap(err, "loader: expert ratings")
		}
		tables.Experts = rows
		return nil
	})
	g.Go(func() error {
		rows, err := fetchResource[model.TaskMetadata](gCtx, l.fetcher, l.resourceURL(l.cfg.TaskPath))
		if err != nil {
			return eris.Wrap(err, "loader: task metadata")
		}
		tables.Tasks = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Malformed remote data counts as source-unavailable, same as a
	// transport error.
	if err := ValidateTables(tables); err != nil {
		return nil, eris.Wrap(err, "loader: remote schema validation")
	}

	return &Snapshot{
		ID:        uuid.New().String(),
		Source:    SourceRemote,
		FetchedAt: l.cache.now(),
		Tables:    tables,
	}, nil
}

// resourceURL builds the row-oriented resource URL for a relative path.
func (l *Loader) resourceURL(path string) string {
	base := strings.TrimRight(l.cfg.BaseURL, "/")
	revision := l.cfg.Revision
	if revision == "" {
		revision = "main"
	}
	return fmt.Sprintf("%s/datasets/%s/resolve/%s/%s", base, l.cfg.Repo, revision, path)
}

// fetchResource downloads one resource and decodes it into typed rows.
func fetchResource[T any](ctx context.Context, f fetcher.Fetcher, url string) ([]T, error) {
	body, err := f.Download(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close() //nolint:errcheck

	return fetcher.DecodeCSV[T](body)
}

// ValidateTables checks the schema contract shared by the remote and
// fallback paths: key fields present and all ratings on the 1-5 scale.
func ValidateTables(t model.RawTables) error {
	if len(t.Workers) == 0 {
		return eris.New("worker table is empty")
	}
	for i, w := range t.Workers {
		if w.TaskID == "" || w.WorkerID == "" {
			return eris.Errorf("worker row %d: missing task or worker identifier", i)
		}
		if !model.InRatingRange(w.AutomationDesire) || !model.InRatingRange(w.JobSecurity) || !model.InRatingRange(w.Enjoyment) {
			return eris.Errorf("worker row %d (task %s): rating out of range", i, w.TaskID)
		}
	}
	for i, e := range t.Experts {
		if e.TaskID == "" || e.ExpertID == "" {
			return eris.Errorf("expert row %d: missing task or expert identifier", i)
		}
		if !model.InRatingRange(e.Capability) || !model.InRatingRange(e.Confidence) {
			return eris.Errorf("expert row %d (task %s): rating out of range", i, e.TaskID)
		}
	}
	seen := make(map[string]bool, len(t.Tasks))
	for i, m := range t.Tasks {
		if m.TaskID == "" {
			return eris.Errorf("task metadata row %d: missing task identifier", i)
		}
		if seen[m.TaskID] {
			return eris.Errorf("task metadata row %d: duplicate task %s", i, m.TaskID)
		}
		seen[m.TaskID] = true
	}
	return nil
}

func logSnapshot(s *Snapshot) {
	zap.L().Info("dataset snapshot loaded",
		zap.String("snapshot_id", s.ID),
		zap.String("source", string(s.Source)),
		zap.Int("worker_rows", len(s.Tables.Workers)),
		zap.Int("expert_rows", len(s.Tables.Experts)),
		zap.Int("task_rows", len(s.Tables.Tasks)),
	)
}
