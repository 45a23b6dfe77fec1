package resume

import (
	"regexp"
	"strings"

	"careermatch-engine/internal/domain"
)

var (
	wordPattern    = regexp.MustCompile(`\b\w{4,}\b`)
	emailPattern   = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)
	datePattern    = regexp.MustCompile(`(?i)\d{4}|jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec`)
	sectionPattern = regexp.MustCompile(`(?i)skills|experience|education|projects|languages|certifications|awards`)
	summaryPattern = regexp.MustCompile(`(?i)summary|objective|profile|about`)

	metricsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\d+%`),
		regexp.MustCompile(`(?i)\$\d+`),
		regexp.MustCompile(`(?i)\d+\s+users?`),
		regexp.MustCompile(`(?i)\d+\s+projects?`),
		regexp.MustCompile(`(?i)\d+x`),
		regexp.MustCompile(`(?i)\d+\s*k`),
	}

	actionVerbs = []string{
		"developed", "implemented", "managed", "created", "designed", "built",
		"maintained", "improved", "architected", "engineered", "optimized",
		"automated", "collaborated", "led", "deployed", "launched", "spearheaded",
	}
)

// scoreATS runs the flat weighted-sum scorecard over resume text. Each
// sub-score is a clamped linear ramp; the weights sum to 1.
func scoreATS(text string) domain.ATSScore {
	lower := strings.ToLower(text)

	wordCount := len(wordPattern.FindAllString(text, -1))
	keywordScore := ramp(float64(wordCount-30) / 200)

	contentScore := ramp(float64(len(text)-500) / 3500)

	newlines := strings.Count(text, "\n")
	formattingScore := ramp(float64(newlines) / 25)
	if formattingScore < 0.3 {
		formattingScore = 0.3
	}

	verbCount := 0
	for _, v := range actionVerbs {
		if strings.Contains(lower, v) {
			verbCount++
		}
	}
	actionScore := ramp(float64(verbCount) / 8)

	metricsCount := 0
	for _, p := range metricsPatterns {
		metricsCount += len(p.FindAllString(text, -1))
	}
	metricsScore := ramp(float64(metricsCount) / 5)

	summaryScore := 0.45
	if summaryPattern.MatchString(text) {
		summaryScore = 0.95
	}

	contactScore := 0.3
	if emailPattern.MatchString(text) {
		contactScore = 1.0
	}

	experienceScore := ramp(float64(len(datePattern.FindAllString(text, -1))) / 10)
	educationScore := ramp(float64(len(sectionPattern.FindAllString(text, -1))) / 4)

	overall := keywordScore*0.25 +
		contentScore*0.20 +
		formattingScore*0.15 +
		actionScore*0.10 +
		metricsScore*0.10 +
		summaryScore*0.10 +
		contactScore*0.05 +
		experienceScore*0.03 +
		educationScore*0.02
	if overall > 0.99 {
		overall = 0.99
	}

	return domain.ATSScore{
		OverallScore:        overall,
		KeywordOptimization: keywordScore,
		ContentQuality:      contentScore,
		FormattingScore:     formattingScore,
		ActionVerbs:         actionScore,
		MetricsUsage:        metricsScore,
		SummaryQuality:      summaryScore,
		ContactInfo:         contactScore,
		ExperienceDetail:    experienceScore,
		EducationRelevance:  educationScore,
	}
}

func ramp(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}
