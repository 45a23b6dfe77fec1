package httpapi

import (
	"net/http"

	"careermatch-engine/internal/store"
)

type HealthHandler struct {
	Store *store.JobStore
}

func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	st := h.Store.Status()
	writeJSON(w, map[string]any{
		"ok":    true,
		"state": st.State,
		"jobs":  st.JobCount,
	})
}
