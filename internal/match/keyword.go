package match

import "strings"

// DefaultStopWords are dropped from resume keyword sets before overlap
// scoring. Short function words dominate any resume; counting them would
// inflate every job's score equally.
var DefaultStopWords = []string{
	"and", "are", "but", "for", "from", "had", "has", "have", "her", "his",
	"its", "not", "our", "she", "the", "their", "they", "this", "was", "were",
	"who", "will", "with", "you", "your",
}

// KeywordScore returns the coverage ratio of keywords over text: the share
// of filtered keywords occurring as a case-insensitive substring. Keywords
// shorter than 3 characters and stop words are filtered first; an empty
// filtered set scores 0. Range [0,1].
func KeywordScore(keywords []string, text string, stopWords []string) float64 {
	if stopWords == nil {
		stopWords = DefaultStopWords
	}
	stop := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		stop[strings.ToLower(w)] = struct{}{}
	}

	textLower := strings.ToLower(text)

	filtered := 0
	matched := 0
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if len(kw) < 3 {
			continue
		}
		if _, ok := stop[kw]; ok {
			continue
		}
		filtered++
		if strings.Contains(textLower, kw) {
			matched++
		}
	}
	if filtered == 0 {
		return 0.0
	}
	score := float64(matched) / float64(filtered)
	if score > 1.0 {
		score = 1.0
	}
	return score
}
