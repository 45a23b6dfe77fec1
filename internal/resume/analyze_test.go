package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane@example.com

Summary
Senior engineer with 7 years of experience building backend systems.

Skills: Python, Docker, AWS, Machine Learning

Experience
Developed and deployed services processing 500 users daily, improved
latency by 40%.

Education
Bachelor of Science, State University, 2015
`

func TestAnalyzeExtractsSkills(t *testing.T) {
	p := Analyze(sampleResume)
	assert.Contains(t, p.Skills, "Python")
	assert.Contains(t, p.Skills, "Docker")
	assert.Contains(t, p.Skills, "Aws")
	assert.Contains(t, p.Skills, "Machine Learning")
}

func TestAnalyzeExperienceYearsFirstMatchWins(t *testing.T) {
	p := Analyze(sampleResume)
	require.NotNil(t, p.ExperienceYears)
	assert.Equal(t, 7, *p.ExperienceYears)

	p2 := Analyze("3 years of experience and later 10 years of experience")
	require.NotNil(t, p2.ExperienceYears)
	assert.Equal(t, 3, *p2.ExperienceYears)
}

func TestAnalyzeJobTitles(t *testing.T) {
	p := Analyze(sampleResume)
	assert.Contains(t, p.JobTitles, "Senior Engineer")
}

func TestAnalyzeEducationLines(t *testing.T) {
	p := Analyze(sampleResume)
	require.NotEmpty(t, p.Education)
	assert.Contains(t, p.Education[0], "bachelor")
}

func TestAnalyzeKeywordsLowercasedAndDeduped(t *testing.T) {
	p := Analyze(sampleResume)
	seen := map[string]int{}
	for _, kw := range p.Keywords {
		assert.Equal(t, strings.ToLower(kw), kw)
		assert.GreaterOrEqual(t, len(kw), 3)
		seen[kw]++
	}
	for kw, n := range seen {
		assert.Equal(t, 1, n, "duplicate keyword %q", kw)
	}
	assert.Contains(t, p.Keywords, "python")
}

func TestAnalyzeEmptyTextYieldsMinimalProfile(t *testing.T) {
	p := Analyze("")
	assert.Empty(t, p.Skills)
	assert.Nil(t, p.ExperienceYears)
	assert.NotEmpty(t, p.Summary)
	assert.NotNil(t, p.ATSScore)
}

func TestAnalyzeSummaryMentionsYears(t *testing.T) {
	p := Analyze(sampleResume)
	assert.Contains(t, p.Summary, "7 years")
}

func TestATSScoreBounds(t *testing.T) {
	for _, text := range []string{"", sampleResume, strings.Repeat("developed 40% $100 ", 500)} {
		s := scoreATS(text)
		for name, v := range map[string]float64{
			"overall":    s.OverallScore,
			"keyword":    s.KeywordOptimization,
			"content":    s.ContentQuality,
			"formatting": s.FormattingScore,
			"verbs":      s.ActionVerbs,
			"metrics":    s.MetricsUsage,
			"summary":    s.SummaryQuality,
			"contact":    s.ContactInfo,
			"experience": s.ExperienceDetail,
			"education":  s.EducationRelevance,
		} {
			assert.GreaterOrEqual(t, v, 0.0, name)
			assert.LessOrEqual(t, v, 1.0, name)
		}
	}
}

func TestATSScoreRewardsContactInfo(t *testing.T) {
	with := scoreATS("reach me at jane@example.com")
	without := scoreATS("no contact details here")
	assert.Greater(t, with.ContactInfo, without.ContactInfo)
}

func TestDetectWeaknessesFlagsMissingMetrics(t *testing.T) {
	ws := detectWeaknesses("Summary: responsible for stuff")
	var categories []string
	for _, w := range ws {
		categories = append(categories, w.Category)
	}
	assert.Contains(t, categories, "Missing Quantifiable Results")
	assert.NotContains(t, categories, "Missing Summary")
}

func TestDetectWeaknessesTypos(t *testing.T) {
	ws := detectWeaknesses("I recieve many offers, 50% growth, summary")
	var categories []string
	for _, w := range ws {
		categories = append(categories, w.Category)
	}
	assert.Contains(t, categories, "Potential Typos")
}

func TestPlainTextExtractor(t *testing.T) {
	text, err := PlainTextExtractor{}.Extract([]byte("hello\x00world\nline"))
	require.NoError(t, err)
	assert.Equal(t, "helloworld\nline", text)
}
