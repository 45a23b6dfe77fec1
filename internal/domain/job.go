package domain

import "strings"

// NormalizedJob is the canonical job record after source-specific field
// mapping. Immutable once created; match scores live on MatchResult only.
type NormalizedJob struct {
	JobID       string   `json:"job_id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Salary      string   `json:"salary"`
	URL         string   `json:"url"`
	PostedDate  string   `json:"posted_date"`
	Source      string   `json:"source"`
}

// MatchText is the text the vector index and keyword scorer run against.
func (j NormalizedJob) MatchText() string {
	return j.Description + " " + strings.Join(j.Tags, " ")
}

// MatchResult decorates a job with the scores computed for one resume.
type MatchResult struct {
	NormalizedJob
	MatchScore    float64 `json:"match_score"`
	SemanticScore float64 `json:"semantic_score"`
	KeywordScore  float64 `json:"keyword_score"`
}

// AdzunaPosting is the structured-API provider shape: nested display-name
// objects and numeric salary bounds.
type AdzunaPosting struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	RedirectURL string  `json:"redirect_url"`
	Created     string  `json:"created"`
	SalaryMin   float64 `json:"salary_min"`
	SalaryMax   float64 `json:"salary_max"`
	Company     struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Category struct {
		Label string `json:"label"`
	} `json:"category"`
}

// FlatPosting is the default shape for flat providers (RemoteOK, samples).
type FlatPosting struct {
	ID          string   `json:"id"`
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

// RawJobRecord is a tagged variant over the known provider payload shapes.
// Exactly one of the pointers is set; Source identifies the origin
// ("remoteok", "adzuna_us", "sample", ...).
type RawJobRecord struct {
	Source string
	Adzuna *AdzunaPosting
	Flat   *FlatPosting
}
