package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careermatch-engine/internal/config"
	"careermatch-engine/internal/domain"
	"careermatch-engine/internal/events"
	"careermatch-engine/internal/index"
	"careermatch-engine/internal/resume"
	"careermatch-engine/internal/sources"
	"careermatch-engine/internal/store"
)

type stubFetcher struct {
	records []domain.RawJobRecord
}

func (stubFetcher) Name() string { return "stub" }

func (f stubFetcher) Fetch(context.Context, sources.FetchOptions) ([]domain.RawJobRecord, error) {
	return f.records, nil
}

func testConfig() config.Config {
	var cfg config.Config
	cfg.App.Port = 8000
	cfg.Refresh.IntervalSeconds = 1800
	cfg.Refresh.SourceTimeoutSeconds = 30
	cfg.Refresh.PerSourceLimit = 100
	cfg.Matching.SemanticWeight = 0.7
	cfg.Matching.KeywordWeight = 0.3
	cfg.Matching.RelevanceFloor = 0.1
	cfg.Matching.MaxResults = 20
	return cfg
}

func testServer(t *testing.T, recs ...domain.RawJobRecord) (*httptest.Server, *store.JobStore) {
	t.Helper()

	js := store.New(store.Options{
		Fetchers:      []sources.Fetcher{stubFetcher{records: recs}},
		Builder:       index.Builder{},
		SourceTimeout: 2 * time.Second,
	})

	cfgVal := &atomic.Value{}
	cfgVal.Store(testConfig())
	cfgPath := filepath.Join(t.TempDir(), "config.yml")

	mux := NewMux(Deps{
		Store:     js,
		Hub:       events.NewHub(),
		Extractor: resume.PlainTextExtractor{},
		CfgVal:    cfgVal,
		UserCfgPath: cfgPath,
		LoadCfg: func() (config.Config, error) {
			return config.Load(cfgPath)
		},
	})

	srv := httptest.NewServer(Chain(mux, RequestID, Recover))
	t.Cleanup(srv.Close)
	return srv, js
}

func goJob(id string) domain.RawJobRecord {
	return domain.RawJobRecord{
		Source: "test",
		Flat: &domain.FlatPosting{
			ID:          id,
			Title:       "Go Engineer",
			Company:     "Acme",
			Location:    "Remote",
			Description: "Backend services in Go with Postgres and Kubernetes.",
			Tags:        []string{"go", "kubernetes"},
		},
	}
}

func TestListJobs(t *testing.T) {
	srv, js := testServer(t, goJob("j1"), goJob("j2"))
	_, err := js.Refresh(context.Background())
	require.NoError(t, err)

	resp, err := http.Get(srv.URL + "/jobs?limit=1")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Jobs  []domain.NormalizedJob `json:"jobs"`
		Count int                    `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, "j1", body.Jobs[0].JobID)
}

func TestListJobsRejectsBadLimit(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/jobs?limit=0")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetJobNotFound(t *testing.T) {
	srv, js := testServer(t, goJob("j1"))
	_, err := js.Refresh(context.Background())
	require.NoError(t, err)

	resp, err := http.Get(srv.URL + "/jobs/missing")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var e APIError
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	assert.Equal(t, "not_found", e.Error.Code)
	assert.NotEmpty(t, e.Error.RequestID)
}

func TestGetJobByID(t *testing.T) {
	srv, js := testServer(t, goJob("j1"))
	_, err := js.Refresh(context.Background())
	require.NoError(t, err)

	resp, err := http.Get(srv.URL + "/jobs/j1")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var job domain.NormalizedJob
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&job))
	assert.Equal(t, "Go Engineer", job.Title)
}

func TestAnalyzeResume(t *testing.T) {
	srv, _ := testServer(t)

	body := "Senior Software Engineer with 5 years of experience in Python, Go and AWS."
	resp, err := http.Post(srv.URL+"/analyze-resume", "text/plain", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		AnalysisID string               `json:"analysis_id"`
		Profile    domain.ResumeProfile `json:"profile"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.AnalysisID)
	assert.Contains(t, out.Profile.Skills, "Python")
	require.NotNil(t, out.Profile.ExperienceYears)
	assert.Equal(t, 5, *out.Profile.ExperienceYears)
}

func TestAnalyzeResumeEmptyBody(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Post(srv.URL+"/analyze-resume", "text/plain", strings.NewReader("   "))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMatchJobs(t *testing.T) {
	srv, js := testServer(t, goJob("j1"))
	_, err := js.Refresh(context.Background())
	require.NoError(t, err)

	payload := `{"resume_text": "Go developer, 4 years of experience with Kubernetes and Postgres."}`
	resp, err := http.Post(srv.URL+"/match-jobs", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Matches []domain.MatchResult `json:"matches"`
		Count   int                  `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, 1, out.Count)
	m := out.Matches[0]
	assert.Equal(t, "j1", m.JobID)
	assert.Greater(t, m.MatchScore, 0.1)
	assert.LessOrEqual(t, m.MatchScore, 1.0)
}

func TestMatchJobsEmptyCorpus(t *testing.T) {
	srv, _ := testServer(t)

	payload := `{"resume_text": "Go developer with Kubernetes."}`
	resp, err := http.Post(srv.URL+"/match-jobs", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Matches []domain.MatchResult `json:"matches"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Empty(t, out.Matches)
}

func TestMatchJobsMissingText(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Post(srv.URL+"/match-jobs", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRefreshEndpointAndStatus(t *testing.T) {
	srv, _ := testServer(t, goJob("j1"))

	resp, err := http.Post(srv.URL+"/refresh-jobs", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		OK   bool `json:"ok"`
		Jobs int  `json:"jobs"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.OK)
	assert.Equal(t, 1, out.Jobs)

	st, err := http.Get(srv.URL + "/refresh/status")
	require.NoError(t, err)
	defer st.Body.Close()

	var status store.RefreshStatus
	require.NoError(t, json.NewDecoder(st.Body).Decode(&status))
	assert.Equal(t, store.StateReady, status.State)
	assert.Equal(t, 1, status.JobCount)
}

func TestConfigGetHidesAppKey(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/config")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cfg config.Config
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cfg))
	assert.Empty(t, cfg.Sources.Adzuna.AppKey)
	assert.Equal(t, 8000, cfg.App.Port)
}

func TestConfigPutRejectsInvalid(t *testing.T) {
	srv, _ := testServer(t)

	cfg := testConfig()
	cfg.App.Port = -1
	b, _ := json.Marshal(cfg)

	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/config", strings.NewReader(string(b)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var vr config.Validation
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&vr))
	assert.NotEmpty(t, vr.Errors)
}

func TestConfigPutRoundTrip(t *testing.T) {
	srv, _ := testServer(t)

	cfg := testConfig()
	cfg.Matching.MaxResults = 10
	b, _ := json.Marshal(cfg)

	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/config", strings.NewReader(string(b)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var saved config.Config
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&saved))
	assert.Equal(t, 10, saved.Matching.MaxResults)
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Post(srv.URL+"/jobs", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, true, out["ok"])
}
