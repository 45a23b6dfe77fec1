// Package resume extracts a structured profile from resume text with plain
// regex heuristics. No NLP: a skill dictionary, title patterns, and a few
// scorecards. Analysis never fails; empty input yields a minimal profile.
package resume

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"careermatch-engine/internal/domain"
	"careermatch-engine/internal/match"
)

var skillDictionary = []string{
	"python", "javascript", "java", "react", "node.js", "sql", "mongodb",
	"aws", "docker", "kubernetes", "git", "html", "css", "typescript",
	"angular", "vue.js", "django", "flask", "fastapi", "spring", "go",
	"machine learning", "ai", "data science", "devops", "agile", "scrum",
	"jira", "figma", "photoshop", "illustrator", "excel", "powerpoint",
	"word", "salesforce", "tableau", "power bi",
}

var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`senior\s+\w+`),
	regexp.MustCompile(`junior\s+\w+`),
	regexp.MustCompile(`lead\s+\w+`),
	regexp.MustCompile(`principal\s+\w+`),
	regexp.MustCompile(`developer`),
	regexp.MustCompile(`engineer`),
	regexp.MustCompile(`manager`),
	regexp.MustCompile(`director`),
	regexp.MustCompile(`analyst`),
	regexp.MustCompile(`designer`),
	regexp.MustCompile(`architect`),
	regexp.MustCompile(`consultant`),
	regexp.MustCompile(`specialist`),
}

// first pattern match wins for years of experience
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s+years?\s+of\s+experience`),
	regexp.MustCompile(`experience:\s*(\d+)\s+years?`),
	regexp.MustCompile(`(\d+)\s+years?\s+in\s+\w+`),
}

var educationKeywords = []string{"bachelor", "master", "phd", "degree", "university", "college"}

var titleCaser = cases.Title(language.English)

var keywordToken = regexp.MustCompile(`[a-z0-9][a-z0-9+#.\-]*`)

// Analyze extracts skills, titles, education lines, years of experience,
// and a keyword set from resume text. Limits mirror what the match pipeline
// and the UI can usefully consume.
func Analyze(text string) domain.ResumeProfile {
	lower := strings.ToLower(text)
	lines := strings.Split(lower, "\n")

	var skills []string
	for _, skill := range skillDictionary {
		if strings.Contains(lower, skill) {
			skills = append(skills, titleCaser.String(skill))
		}
	}

	var titles []string
	seenTitle := make(map[string]struct{})
	for _, p := range titlePatterns {
		for _, m := range p.FindAllString(lower, -1) {
			t := titleCaser.String(m)
			if _, ok := seenTitle[t]; ok {
				continue
			}
			seenTitle[t] = struct{}{}
			titles = append(titles, t)
		}
	}

	var education []string
	for _, line := range lines {
		for _, kw := range educationKeywords {
			if strings.Contains(line, kw) {
				education = append(education, strings.TrimSpace(line))
				break
			}
		}
	}

	var years *int
	for _, p := range experiencePatterns {
		if m := p.FindStringSubmatch(lower); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				years = &n
			}
			break
		}
	}

	profile := domain.ResumeProfile{
		Skills:          cap20(skills),
		ExperienceYears: years,
		JobTitles:       capN(titles, 10),
		Education:       capN(education, 5),
		Keywords:        keywordSet(skills, lower),
		Weaknesses:      []domain.ResumeWeakness{},
	}
	profile.Summary = summarize(profile)

	ats := scoreATS(text)
	profile.ATSScore = &ats
	profile.Weaknesses = detectWeaknesses(text)
	return profile
}

// keywordSet is the union of detected skills and the filtered free-text
// tokens of the resume; this is exactly the set the ranker consumes.
func keywordSet(skills []string, lowerText string) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(kw string) {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if len(kw) < 3 {
			return
		}
		if _, ok := seen[kw]; ok {
			return
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}

	for _, s := range skills {
		add(s)
	}
	stop := make(map[string]struct{}, len(match.DefaultStopWords))
	for _, w := range match.DefaultStopWords {
		stop[w] = struct{}{}
	}
	for _, tok := range keywordToken.FindAllString(lowerText, -1) {
		if _, bad := stop[tok]; bad {
			continue
		}
		add(tok)
	}
	return capN(out, 50)
}

func summarize(p domain.ResumeProfile) string {
	years := "relevant"
	if p.ExperienceYears != nil {
		years = strconv.Itoa(*p.ExperienceYears)
	}
	focus := "technology"
	if len(p.Skills) > 0 {
		focus = strings.Join(capN(p.Skills, 5), ", ")
	}
	roles := "various roles"
	if len(p.JobTitles) > 0 {
		roles = strings.Join(capN(p.JobTitles, 3), ", ")
	}
	return fmt.Sprintf("Professional with %s years of experience in %s. Skilled in %s.", years, focus, roles)
}

func cap20(s []string) []string { return capN(s, 20) }

func capN(s []string, n int) []string {
	if s == nil {
		return []string{}
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}
