package httpapi

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"sync/atomic"

	"careermatch-engine/internal/config"
	"careermatch-engine/internal/domain"
	"careermatch-engine/internal/events"
	"careermatch-engine/internal/match"
	"careermatch-engine/internal/resume"
	"careermatch-engine/internal/store"
)

const maxResumeBytes = 5 << 20

type ResumeHandler struct {
	Store     *store.JobStore
	Archive   *store.Archive
	Hub       *events.Hub
	Extractor resume.Extractor
	CfgVal    *atomic.Value
}

// Analyze accepts a resume as a multipart upload (field "file") or as the
// raw request body and returns the extracted profile.
func (h ResumeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	data, err := readResume(r)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_resume", err.Error())
		return
	}

	text, err := h.Extractor.Extract(data)
	if err != nil {
		WriteError(w, r, http.StatusUnprocessableEntity, "extract_failed", err.Error())
		return
	}
	if strings.TrimSpace(text) == "" {
		WriteError(w, r, http.StatusBadRequest, "empty_resume", "resume contains no readable text")
		return
	}

	profile := resume.Analyze(text)

	analysisID := RequestIDFrom(r.Context())
	if h.Archive != nil && analysisID != "" {
		if err := h.Archive.SaveAnalysis(r.Context(), analysisID, profile); err != nil {
			log.Printf("[resume] archive write failed: %v", err)
		}
	}

	h.Hub.Publish(events.Envelope(analysisID, events.TypeResumeAnalyzed, map[string]any{
		"skills":   len(profile.Skills),
		"keywords": len(profile.Keywords),
	}))

	writeJSON(w, map[string]any{
		"analysis_id": analysisID,
		"profile":     profile,
	})
}

type matchJobsReq struct {
	ResumeText string `json:"resume_text"`
}

// Match analyzes the posted resume text and ranks the current corpus
// against it. An empty corpus yields an empty result set, not an error.
func (h ResumeHandler) Match(w http.ResponseWriter, r *http.Request) {
	var req matchJobsReq
	if err := json.NewDecoder(io.LimitReader(r.Body, maxResumeBytes)).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		WriteError(w, r, http.StatusBadRequest, "empty_resume", "resume_text is required")
		return
	}

	profile := resume.Analyze(req.ResumeText)

	cfg := h.CfgVal.Load().(config.Config)
	ranker := match.Ranker{
		Weights: match.Weights{
			Semantic:       cfg.Matching.SemanticWeight,
			Keyword:        cfg.Matching.KeywordWeight,
			RelevanceFloor: cfg.Matching.RelevanceFloor,
			MaxResults:     cfg.Matching.MaxResults,
		},
		StopWords: cfg.Matching.StopWords,
	}

	snap := h.Store.Current()
	results := ranker.Rank(r.Context(), profile, snap.Jobs, snap.Encoder, snap.Index)
	if results == nil {
		results = []domain.MatchResult{}
	}

	writeJSON(w, map[string]any{
		"profile": profile,
		"matches": results,
		"count":   len(results),
	})
}

func readResume(r *http.Request) ([]byte, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxResumeBytes); err != nil {
			return nil, err
		}
		f, _, err := r.FormFile("file")
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(io.LimitReader(f, maxResumeBytes))
	}
	return io.ReadAll(io.LimitReader(r.Body, maxResumeBytes))
}
