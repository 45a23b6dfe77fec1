package sources

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"context"

	"careermatch-engine/internal/domain"
)

// RemoteOK serves its whole feed as one JSON array. The first element is a
// legal notice, not a job; entries that don't decode as postings are
// skipped rather than failing the fetch.
type RemoteOK struct {
	BaseURLs []string // tried in order until one answers
	hc       *http.Client
	limiter  *HostLimiter
}

func NewRemoteOK(limiter *HostLimiter) *RemoteOK {
	return &RemoteOK{
		BaseURLs: []string{
			"https://remoteok.io/api/jobs",
			"https://remoteok.io/api",
		},
		hc:      &http.Client{Timeout: 30 * time.Second},
		limiter: limiter,
	}
}

func (s *RemoteOK) Name() string { return "remoteok" }

func (s *RemoteOK) Fetch(ctx context.Context, opts FetchOptions) ([]domain.RawJobRecord, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	var lastErr error
	for _, base := range s.BaseURLs {
		endpoint := base
		if opts.Query != "" {
			q := url.Values{}
			q.Set("search", opts.Query)
			q.Set("limit", strconv.Itoa(limit))
			endpoint = base + "?" + q.Encode()
		}

		jobs, err := s.fetchEndpoint(ctx, endpoint, limit)
		if err != nil {
			lastErr = err
			continue
		}
		return jobs, nil
	}
	return nil, fmt.Errorf("remoteok: all endpoints failed: %w", lastErr)
}

func (s *RemoteOK) fetchEndpoint(ctx context.Context, endpoint string, limit int) ([]domain.RawJobRecord, error) {
	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, endpoint); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "CareerMatch/1.0 (+local)")
	req.Header.Set("Accept", "application/json")

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remoteok get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remoteok status %d", res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, 8<<20))
	if err != nil {
		return nil, err
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("remoteok parse: %w", err)
	}

	var out []domain.RawJobRecord
	for _, raw := range entries {
		if len(out) >= limit {
			break
		}
		p, ok := decodePosting(raw)
		if !ok {
			continue
		}
		out = append(out, domain.RawJobRecord{Source: "remoteok", Flat: p})
	}
	return out, nil
}

// remoteokPosting tolerates the feed's loose typing: ids arrive as numbers
// or strings depending on the entry.
type remoteokPosting struct {
	ID          any      `json:"id"`
	Position    string   `json:"position"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Salary      string   `json:"salary"`
	URL         string   `json:"url"`
	Date        string   `json:"date"`
}

func decodePosting(raw json.RawMessage) (*domain.FlatPosting, bool) {
	var p remoteokPosting
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, false
	}
	if p.Position == "" && p.Title == "" {
		return nil, false // the legal-notice element and other junk
	}
	return &domain.FlatPosting{
		ID:          stringID(p.ID),
		Position:    p.Position,
		Title:       p.Title,
		Company:     p.Company,
		Location:    p.Location,
		Description: p.Description,
		Tags:        p.Tags,
		Salary:      p.Salary,
		URL:         p.URL,
		Date:        p.Date,
	}, true
}

// stringID renders whatever raw identifier the provider sent as a string;
// absent ids become "" and are dropped by the dedup pass.
func stringID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(id)
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return fmt.Sprint(id)
	}
}
