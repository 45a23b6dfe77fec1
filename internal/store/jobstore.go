// Package store owns the in-memory job corpus and its vector index. The
// pair is held as one immutable snapshot swapped atomically on refresh;
// readers are never blocked and never observe a partially built corpus.
package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"careermatch-engine/internal/domain"
	"careermatch-engine/internal/index"
	"careermatch-engine/internal/sources"
)

var (
	ErrNotFound          = errors.New("job not found")
	ErrRefreshInProgress = errors.New("refresh already in progress")
)

type State string

const (
	StateEmpty      State = "empty"
	StateRefreshing State = "refreshing"
	StateReady      State = "ready"
)

// Snapshot pairs the normalized jobs with the index built from them.
// Index position i always corresponds to Jobs[i]; the two are replaced
// together, never mutated.
type Snapshot struct {
	Jobs    []domain.NormalizedJob
	Encoder index.Encoder
	Index   *index.FlatIndex
}

type RefreshStatus struct {
	State     State  `json:"state"`
	Running   bool   `json:"running"`
	LastRunAt string `json:"last_run_at"`
	LastOkAt  string `json:"last_ok_at"`
	LastError string `json:"last_error"`
	LastAdded int    `json:"last_added"`
	JobCount  int    `json:"job_count"`
}

type Options struct {
	// Fetchers in priority order; dedup keeps the first occurrence of a
	// job id scanning in this order.
	Fetchers       []sources.Fetcher
	Builder        index.Builder
	Archive        *Archive
	SourceTimeout  time.Duration
	PerSourceLimit int
	// OnRefreshed runs after a successful snapshot swap.
	OnRefreshed func(added int)
}

type JobStore struct {
	fetchers       []sources.Fetcher
	builder        index.Builder
	archive        *Archive
	sourceTimeout  time.Duration
	perSourceLimit int
	onRefreshed    func(int)

	refreshMu sync.Mutex // held for the duration of one refresh
	snap      atomic.Value

	statusMu sync.Mutex
	status   RefreshStatus
}

func New(opts Options) *JobStore {
	if opts.SourceTimeout <= 0 {
		opts.SourceTimeout = 30 * time.Second
	}
	if opts.PerSourceLimit <= 0 {
		opts.PerSourceLimit = 100
	}
	s := &JobStore{
		fetchers:       opts.Fetchers,
		builder:        opts.Builder,
		archive:        opts.Archive,
		sourceTimeout:  opts.SourceTimeout,
		perSourceLimit: opts.PerSourceLimit,
		onRefreshed:    opts.OnRefreshed,
	}
	s.snap.Store(&Snapshot{Jobs: []domain.NormalizedJob{}})
	s.status.State = StateEmpty
	return s
}

// Current returns the live snapshot without blocking on any refresh.
func (s *JobStore) Current() *Snapshot {
	return s.snap.Load().(*Snapshot)
}

// Get looks a job up by id in the current snapshot.
func (s *JobStore) Get(jobID string) (domain.NormalizedJob, error) {
	for _, j := range s.Current().Jobs {
		if j.JobID == jobID {
			return j, nil
		}
	}
	return domain.NormalizedJob{}, ErrNotFound
}

func (s *JobStore) Status() RefreshStatus {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	st := s.status
	st.JobCount = len(s.Current().Jobs)
	return st
}

// List returns jobs from the current snapshot, or runs a live search
// against the configured sources when search is non-empty. The live path
// never touches the snapshot.
func (s *JobStore) List(ctx context.Context, limit int, search, location string) []domain.NormalizedJob {
	if limit <= 0 {
		limit = 20
	}

	if strings.TrimSpace(search) == "" {
		jobs := s.Current().Jobs
		if len(jobs) > limit {
			jobs = jobs[:limit]
		}
		return jobs
	}

	opts := sources.FetchOptions{Query: search, Limit: limit, Location: location}
	batches := s.collect(ctx, opts)
	jobs := dedupeNormalize(batches)
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs
}
