package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"careermatch-engine/internal/store"
)

type JobsHandler struct {
	Store *store.JobStore
}

// List serves the current corpus, or runs a live search against the
// configured sources when ?search= is present.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 20
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 200 {
			WriteError(w, r, http.StatusBadRequest, "invalid_limit", "limit must be 1..200")
			return
		}
		limit = n
	}

	jobs := h.Store.List(r.Context(), limit, q.Get("search"), q.Get("location"))
	writeJSON(w, map[string]any{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

func (h JobsHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/jobs/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid job id")
		return
	}

	job, err := h.Store.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		WriteError(w, r, http.StatusNotFound, "not_found", "job not found")
		return
	}
	writeJSON(w, job)
}
