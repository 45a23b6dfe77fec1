package match

import (
	"context"
	"log"

	"careermatch-engine/internal/index"
)

// NeutralSimilarity is used whenever no embedding signal is available. All
// jobs tie on the semantic dimension and keyword coverage becomes the
// effective ranking signal.
const NeutralSimilarity = 0.5

// SemanticScores encodes the profile text with the snapshot's encoder and
// queries the snapshot's index, returning one score per job position in
// [0,1]. Without an encoder or index (or on encode failure) every job gets
// NeutralSimilarity.
func SemanticScores(ctx context.Context, enc index.Encoder, ix *index.FlatIndex, profileText string, n int) []float64 {
	neutral := func() []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = NeutralSimilarity
		}
		return out
	}

	if enc == nil || ix == nil || ix.Len() != n {
		return neutral()
	}

	q, err := enc.Encode(ctx, profileText)
	if err != nil {
		log.Printf("[match] query encode failed: %v", err)
		return neutral()
	}

	scores := ix.Search(q)
	if scores == nil {
		return neutral()
	}
	for i, s := range scores {
		scores[i] = clamp01(s)
	}
	return scores
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}
