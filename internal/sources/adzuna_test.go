package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adzunaResponse = `{"results": [
  {"id": "900", "title": "Platform Engineer",
   "company": {"display_name": "Infra Ltd"},
   "location": {"display_name": "London"},
   "category": {"label": "IT Jobs"},
   "description": "Run the platform", "salary_min": 60000, "salary_max": 90000,
   "redirect_url": "https://adzuna.example/900", "created": "2024-02-01"}
]}`

func TestAdzunaFetchTagsPerCountry(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		require.Equal(t, "id", r.URL.Query().Get("app_id"))
		require.Equal(t, "key", r.URL.Query().Get("app_key"))
		_, _ = w.Write([]byte(adzunaResponse))
	}))
	defer srv.Close()

	s := NewAdzuna("id", "key", []string{"us", "gb"}, nil)
	s.BaseURL = srv.URL

	recs, err := s.Fetch(context.Background(), FetchOptions{Limit: 10})
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "adzuna_us", recs[0].Source)
	assert.Equal(t, "adzuna_gb", recs[1].Source)
	require.NotNil(t, recs[0].Adzuna)
	assert.Equal(t, "900", recs[0].Adzuna.ID)
	assert.Equal(t, "Infra Ltd", recs[0].Adzuna.Company.DisplayName)

	require.Len(t, paths, 2)
	assert.True(t, strings.HasPrefix(paths[0], "/us/"))
	assert.True(t, strings.HasPrefix(paths[1], "/gb/"))
}

func TestAdzunaFetchSkipsFailingCountry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/us/") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(adzunaResponse))
	}))
	defer srv.Close()

	s := NewAdzuna("id", "key", []string{"us", "gb"}, nil)
	s.BaseURL = srv.URL

	recs, err := s.Fetch(context.Background(), FetchOptions{})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "adzuna_gb", recs[0].Source)
}

func TestAdzunaFetchWithoutCredentials(t *testing.T) {
	s := NewAdzuna("", "", []string{"us"}, nil)
	_, err := s.Fetch(context.Background(), FetchOptions{})
	assert.Error(t, err)
}

func TestAdzunaSearchPassesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "golang", r.URL.Query().Get("what"))
		_, _ = w.Write([]byte(adzunaResponse))
	}))
	defer srv.Close()

	s := NewAdzuna("id", "key", []string{"us"}, nil)
	s.BaseURL = srv.URL

	recs, err := s.Fetch(context.Background(), FetchOptions{Query: "golang", Location: "us"})
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}
