package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"careermatch-engine/internal/domain"
)

// Adzuna queries the Adzuna REST search API per configured country, in the
// declared country order so dedup stays deterministic. Records are tagged
// "adzuna_<country>". A failing country is logged and skipped.
type Adzuna struct {
	AppID     string
	AppKey    string
	Countries []string
	BaseURL   string // override for tests
	hc        *http.Client
	limiter   *HostLimiter
}

func NewAdzuna(appID, appKey string, countries []string, limiter *HostLimiter) *Adzuna {
	return &Adzuna{
		AppID:     appID,
		AppKey:    appKey,
		Countries: countries,
		BaseURL:   "https://api.adzuna.com/v1/api/jobs",
		hc:        &http.Client{Timeout: 30 * time.Second},
		limiter:   limiter,
	}
}

func (s *Adzuna) Name() string { return "adzuna" }

func (s *Adzuna) Fetch(ctx context.Context, opts FetchOptions) ([]domain.RawJobRecord, error) {
	if s.AppID == "" || s.AppKey == "" {
		return nil, fmt.Errorf("adzuna credentials not configured")
	}

	countries := s.Countries
	if opts.Location != "" {
		countries = []string{opts.Location}
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	var out []domain.RawJobRecord
	for _, country := range countries {
		jobs, err := s.fetchCountry(ctx, country, opts.Query, limit)
		if err != nil {
			log.Printf("[adzuna] country=%s err=%v", country, err)
			continue
		}
		out = append(out, jobs...)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("adzuna: no country returned results")
	}
	return out, nil
}

func (s *Adzuna) fetchCountry(ctx context.Context, country, query string, limit int) ([]domain.RawJobRecord, error) {
	if limit > 50 {
		limit = 50
	}

	q := url.Values{}
	q.Set("app_id", s.AppID)
	q.Set("app_key", s.AppKey)
	q.Set("results_per_page", strconv.Itoa(limit))
	q.Set("content-type", "application/json")
	if query != "" {
		q.Set("what", query)
	}
	endpoint := fmt.Sprintf("%s/%s/search/1?%s", s.BaseURL, country, q.Encode())

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, endpoint); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("adzuna get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("adzuna status %d", res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, 8<<20))
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Results []domain.AdzunaPosting `json:"results"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("adzuna parse: %w", err)
	}

	source := "adzuna_" + country
	out := make([]domain.RawJobRecord, 0, len(parsed.Results))
	for i := range parsed.Results {
		out = append(out, domain.RawJobRecord{Source: source, Adzuna: &parsed.Results[i]})
	}
	return out, nil
}
