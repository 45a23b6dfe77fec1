package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const remoteokFeed = `[
  {"legal": "API terms of service"},
  {"id": 101, "position": "Go Engineer", "company": "Acme", "location": "Remote",
   "description": "Build services", "tags": ["go", "backend"], "url": "https://r.ok/101"},
  {"id": "102", "position": "Rust Engineer", "company": "Beta",
   "description": "Systems work", "tags": ["rust"], "url": "https://r.ok/102"}
]`

func TestRemoteOKFetchParsesFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(remoteokFeed))
	}))
	defer srv.Close()

	s := NewRemoteOK(nil)
	s.BaseURLs = []string{srv.URL}

	recs, err := s.Fetch(context.Background(), FetchOptions{Limit: 10})
	require.NoError(t, err)
	require.Len(t, recs, 2) // legal notice skipped

	assert.Equal(t, "remoteok", recs[0].Source)
	require.NotNil(t, recs[0].Flat)
	assert.Equal(t, "101", recs[0].Flat.ID) // numeric id rendered as string
	assert.Equal(t, "Go Engineer", recs[0].Flat.Position)
	assert.Equal(t, "102", recs[1].Flat.ID)
}

func TestRemoteOKFetchRespectsLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(remoteokFeed))
	}))
	defer srv.Close()

	s := NewRemoteOK(nil)
	s.BaseURLs = []string{srv.URL}

	recs, err := s.Fetch(context.Background(), FetchOptions{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestRemoteOKFetchTriesFallbackEndpoint(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer bad.Close()
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(remoteokFeed))
	}))
	defer good.Close()

	s := NewRemoteOK(nil)
	s.BaseURLs = []string{bad.URL, good.URL}

	recs, err := s.Fetch(context.Background(), FetchOptions{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestRemoteOKFetchAllEndpointsDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := NewRemoteOK(nil)
	s.BaseURLs = []string{srv.URL}

	_, err := s.Fetch(context.Background(), FetchOptions{})
	assert.Error(t, err)
}

func TestStringID(t *testing.T) {
	assert.Equal(t, "", stringID(nil))
	assert.Equal(t, "abc", stringID(" abc "))
	assert.Equal(t, "3", stringID(float64(3)))
	assert.Equal(t, "3.5", stringID(float64(3.5)))
}
