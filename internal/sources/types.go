// Package sources holds the external job-board fetchers. Every fetcher is
// best-effort: a failure or timeout contributes zero records and never
// aborts a refresh.
package sources

import (
	"context"

	"careermatch-engine/internal/domain"
)

// FetchOptions parameterizes a fetch. Query empty means "latest postings";
// non-empty means a live search. Location is a provider hint (Adzuna
// country code) and may be ignored.
type FetchOptions struct {
	Query    string
	Limit    int
	Location string
}

type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, opts FetchOptions) ([]domain.RawJobRecord, error)
}
