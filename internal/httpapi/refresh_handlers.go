package httpapi

import (
	"errors"
	"net/http"

	"careermatch-engine/internal/events"
	"careermatch-engine/internal/store"
)

type RefreshHandler struct {
	Store *store.JobStore
	Hub   *events.Hub
}

// Run triggers a synchronous refresh. A refresh already in flight is
// reported, not queued.
func (h RefreshHandler) Run(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.Envelope(reqID, events.TypeRefreshStarted, nil))

	added, err := h.Store.Refresh(r.Context())
	if errors.Is(err, store.ErrRefreshInProgress) {
		WriteError(w, r, http.StatusConflict, "refresh_in_progress", "a refresh is already running")
		return
	}
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "refresh_failed", err.Error())
		return
	}

	writeJSON(w, map[string]any{"ok": true, "jobs": added})
}

func (h RefreshHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Store.Status())
}
