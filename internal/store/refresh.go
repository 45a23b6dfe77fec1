package store

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"careermatch-engine/internal/domain"
	"careermatch-engine/internal/normalize"
	"careermatch-engine/internal/sources"
)

// Refresh repopulates the corpus: every configured source is fetched with
// an independent timeout (a failing source contributes zero records),
// records are deduplicated by job id in declared source order, normalized,
// indexed, and the snapshot is swapped atomically. If nothing survives
// from any source the built-in sample dataset is loaded instead.
//
// Synchronous: the caller observes the swap once Refresh returns. Only one
// refresh runs at a time; a concurrent call returns ErrRefreshInProgress
// while readers keep seeing the old snapshot.
func (s *JobStore) Refresh(ctx context.Context) (int, error) {
	if !s.refreshMu.TryLock() {
		return 0, ErrRefreshInProgress
	}
	defer s.refreshMu.Unlock()

	s.setRefreshing()

	batches := s.collect(ctx, sources.FetchOptions{Limit: s.perSourceLimit})
	jobs := dedupeNormalize(batches)

	if len(jobs) == 0 {
		log.Printf("[store] no jobs from any source, loading sample data")
		jobs = dedupeNormalize([][]domain.RawJobRecord{sources.SampleJobs(0)})
	}

	texts := make([]string, len(jobs))
	for i, j := range jobs {
		texts[i] = j.MatchText()
	}
	enc, ix := s.builder.Build(ctx, texts)

	s.snap.Store(&Snapshot{Jobs: jobs, Encoder: enc, Index: ix})
	s.setReady(len(jobs))
	log.Printf("[store] refresh complete: %d jobs indexed", len(jobs))

	if s.archive != nil {
		if err := s.archive.SaveJobs(ctx, jobs); err != nil {
			log.Printf("[store] archive write failed: %v", err)
		}
	}
	if s.onRefreshed != nil {
		s.onRefreshed(len(jobs))
	}
	return len(jobs), nil
}

// collect fans out to every fetcher with a per-source timeout. Results are
// kept in fetcher slots so the declared source order survives whatever
// order the fetches complete in. A source failure is logged and leaves an
// empty slot; it never cancels the siblings.
func (s *JobStore) collect(ctx context.Context, opts sources.FetchOptions) [][]domain.RawJobRecord {
	batches := make([][]domain.RawJobRecord, len(s.fetchers))

	var g errgroup.Group
	for i, f := range s.fetchers {
		i, f := i, f
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(ctx, s.sourceTimeout)
			defer cancel()

			recs, err := f.Fetch(fctx, opts)
			if err != nil {
				log.Printf("[store] source=%s unavailable: %v", f.Name(), err)
				return nil
			}
			log.Printf("[store] source=%s records=%d", f.Name(), len(recs))
			batches[i] = recs
			return nil
		})
	}
	_ = g.Wait()

	return batches
}

// dedupeNormalize sanitizes, normalizes, and deduplicates a set of source
// batches. First occurrence of a job id wins; records without an id are
// dropped.
func dedupeNormalize(batches [][]domain.RawJobRecord) []domain.NormalizedJob {
	seen := make(map[string]struct{})
	var out []domain.NormalizedJob
	for _, batch := range batches {
		for _, raw := range batch {
			job := normalize.Normalize(raw)
			if job.JobID == "" {
				continue
			}
			if _, dup := seen[job.JobID]; dup {
				continue
			}
			seen[job.JobID] = struct{}{}
			out = append(out, job)
		}
	}
	return out
}

func (s *JobStore) setRefreshing() {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.State = StateRefreshing
	s.status.Running = true
	s.status.LastRunAt = time.Now().UTC().Format(time.RFC3339)
}

func (s *JobStore) setReady(added int) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.State = StateReady
	s.status.Running = false
	s.status.LastOkAt = time.Now().UTC().Format(time.RFC3339)
	s.status.LastError = ""
	s.status.LastAdded = added
}
