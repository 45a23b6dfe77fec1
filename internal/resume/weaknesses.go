package resume

import (
	"fmt"
	"regexp"
	"strings"

	"careermatch-engine/internal/domain"
)

var (
	genericPhrases = []string{"responsible for", "duties include", "helped with"}
	commonTypos    = []string{"teh", "recieve", "seperate", "occured"}

	quantifiedPattern = regexp.MustCompile(`\d+%|\$\d+|\d+\s+users?|\d+\s+projects?`)
	passivePatterns   = []*regexp.Regexp{
		regexp.MustCompile(`(?i)was\s+\w+ed`),
		regexp.MustCompile(`(?i)were\s+\w+ed`),
		regexp.MustCompile(`(?i)been\s+\w+ed`),
	}
)

// detectWeaknesses flags common resume problems with simple rules.
func detectWeaknesses(text string) []domain.ResumeWeakness {
	lower := strings.ToLower(text)
	weaknesses := []domain.ResumeWeakness{}

	if !summaryPattern.MatchString(text) {
		weaknesses = append(weaknesses, domain.ResumeWeakness{
			Category:    "Missing Summary",
			Severity:    "medium",
			Description: "No professional summary or objective found",
			Suggestion:  "Add a compelling summary at the top of your resume",
			Impact:      "Reduces initial impact and clarity of career goals",
		})
	}

	genericCount := 0
	for _, phrase := range genericPhrases {
		if strings.Contains(lower, phrase) {
			genericCount++
		}
	}
	if genericCount > 2 {
		weaknesses = append(weaknesses, domain.ResumeWeakness{
			Category:    "Generic Language",
			Severity:    "high",
			Description: fmt.Sprintf("Found %d generic phrases that weaken impact", genericCount),
			Suggestion:  "Replace with specific achievements and action verbs",
			Impact:      "Makes resume less compelling and memorable",
		})
	}

	if !quantifiedPattern.MatchString(text) {
		weaknesses = append(weaknesses, domain.ResumeWeakness{
			Category:    "Missing Quantifiable Results",
			Severity:    "high",
			Description: "No specific metrics or quantifiable achievements found",
			Suggestion:  "Add specific numbers, percentages, and measurable outcomes",
			Impact:      "Reduces credibility and impact of achievements",
		})
	}

	passiveCount := 0
	for _, p := range passivePatterns {
		passiveCount += len(p.FindAllString(text, -1))
	}
	if passiveCount > 3 {
		weaknesses = append(weaknesses, domain.ResumeWeakness{
			Category:    "Passive Voice",
			Severity:    "medium",
			Description: fmt.Sprintf("Found %d instances of passive voice", passiveCount),
			Suggestion:  "Use active voice and strong action verbs",
			Impact:      "Makes achievements sound less impactful",
		})
	}

	typoCount := 0
	for _, typo := range commonTypos {
		if strings.Contains(lower, typo) {
			typoCount++
		}
	}
	if typoCount > 0 {
		weaknesses = append(weaknesses, domain.ResumeWeakness{
			Category:    "Potential Typos",
			Severity:    "low",
			Description: fmt.Sprintf("Found %d potential spelling issues", typoCount),
			Suggestion:  "Proofread carefully and use spell check",
			Impact:      "Creates negative first impression",
		})
	}

	return weaknesses
}
