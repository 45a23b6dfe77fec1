package httpapi

import "net/http"

// NewMux wires the HTTP surface. The caller wraps it in middleware and
// owns the server lifecycle.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	jh := JobsHandler{Store: d.Store}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	}))
	mux.HandleFunc("/jobs/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.GetByPath, // expects /jobs/{id}
	}))

	rh := ResumeHandler{
		Store:     d.Store,
		Archive:   d.Archive,
		Hub:       d.Hub,
		Extractor: d.Extractor,
		CfgVal:    d.CfgVal,
	}
	mux.HandleFunc("/analyze-resume", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: rh.Analyze,
	}))
	mux.HandleFunc("/match-jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: rh.Match,
	}))

	fh := RefreshHandler{Store: d.Store, Hub: d.Hub}
	mux.HandleFunc("/refresh-jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: fh.Run,
	}))
	mux.HandleFunc("/refresh/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: fh.Status,
	}))

	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
		Hub:         d.Hub,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	sh := SecretsHandler{}
	mux.HandleFunc("/api/secrets/adzuna", methodMux(map[string]http.HandlerFunc{
		http.MethodPost:   sh.SetAdzunaCredentials,
		http.MethodDelete: sh.DeleteAdzunaCredentials,
	}))

	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	hh := HealthHandler{Store: d.Store}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	return mux
}
