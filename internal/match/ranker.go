// Package match scores jobs against a resume profile and produces the
// ranked result list. Two independent signals per job: embedding-space
// similarity and keyword coverage, combined with fixed weights.
package match

import (
	"context"
	"sort"
	"strings"

	"careermatch-engine/internal/domain"
	"careermatch-engine/internal/index"
)

// Weights are heuristic product constants, configurable rather than
// invariant. Semantic similarity is trusted more than raw lexical overlap
// because job descriptions vary wildly in phrasing.
type Weights struct {
	Semantic       float64
	Keyword        float64
	RelevanceFloor float64
	MaxResults     int
}

func DefaultWeights() Weights {
	return Weights{
		Semantic:       0.7,
		Keyword:        0.3,
		RelevanceFloor: 0.1,
		MaxResults:     20,
	}
}

type Ranker struct {
	Weights   Weights
	StopWords []string
}

// Rank scores every job, drops results at or below the relevance floor,
// sorts descending by match score (ties preserve snapshot order), and
// truncates to the result cap. A full rescan per request: the corpus is
// hundreds of jobs, not millions.
func (r Ranker) Rank(ctx context.Context, profile domain.ResumeProfile, jobs []domain.NormalizedJob, enc index.Encoder, ix *index.FlatIndex) []domain.MatchResult {
	results := make([]domain.MatchResult, 0, len(jobs))
	if len(jobs) == 0 {
		return results
	}

	w := r.Weights
	if w.Semantic == 0 && w.Keyword == 0 {
		w = DefaultWeights()
	}

	semantic := SemanticScores(ctx, enc, ix, queryText(profile), len(jobs))

	for i, job := range jobs {
		jobText := job.MatchText()
		kw := KeywordScore(profile.Keywords, jobText, r.StopWords)
		score := w.Semantic*semantic[i] + w.Keyword*kw

		if score <= w.RelevanceFloor {
			continue
		}
		results = append(results, domain.MatchResult{
			NormalizedJob: job,
			MatchScore:    score,
			SemanticScore: semantic[i],
			KeywordScore:  kw,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	if w.MaxResults > 0 && len(results) > w.MaxResults {
		results = results[:w.MaxResults]
	}
	return results
}

// queryText is the profile text encoded as the query vector: the keyword
// set carries the discriminative terms, the summary adds context.
func queryText(profile domain.ResumeProfile) string {
	return strings.Join(profile.Keywords, " ") + " " + profile.Summary
}
