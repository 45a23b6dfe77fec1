package domain

// ResumeProfile is computed fresh per analysis request and never cached.
type ResumeProfile struct {
	Skills          []string         `json:"skills"`
	ExperienceYears *int             `json:"experience_years"`
	JobTitles       []string         `json:"job_titles"`
	Education       []string         `json:"education"`
	Keywords        []string         `json:"keywords"`
	Summary         string           `json:"summary"`
	ATSScore        *ATSScore        `json:"ats_score,omitempty"`
	Weaknesses      []ResumeWeakness `json:"weaknesses"`
}

// ATSScore is the heuristic scorecard over resume text. All fields in [0,1].
type ATSScore struct {
	OverallScore        float64 `json:"overall_score"`
	KeywordOptimization float64 `json:"keyword_optimization"`
	FormattingScore     float64 `json:"formatting_score"`
	ContentQuality      float64 `json:"content_quality"`
	ActionVerbs         float64 `json:"action_verbs"`
	MetricsUsage        float64 `json:"metrics_usage"`
	ContactInfo         float64 `json:"contact_info"`
	SummaryQuality      float64 `json:"summary_quality"`
	ExperienceDetail    float64 `json:"experience_detail"`
	EducationRelevance  float64 `json:"education_relevance"`
}

type ResumeWeakness struct {
	Category    string `json:"category"`
	Severity    string `json:"severity"` // low, medium, high
	Description string `json:"description"`
	Suggestion  string `json:"suggestion"`
	Impact      string `json:"impact"`
}
