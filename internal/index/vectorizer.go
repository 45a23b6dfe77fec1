// Package index turns job texts into fixed-dimension vectors and supports
// exact nearest-neighbor queries over them by inner product. The index and
// the corpus it was built from are always replaced together; position i in
// the index corresponds to text i of the build input.
package index

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"
)

// DefaultMaxFeatures caps the vocabulary size of a fitted vectorizer.
const DefaultMaxFeatures = 5000

// Encoder embeds a text into a fixed-length numeric vector.
type Encoder interface {
	Encode(ctx context.Context, text string) ([]float32, error)
	Dim() int
}

var tokenPattern = regexp.MustCompile(`[a-z0-9][a-z0-9+#.\-]*`)

func tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	out := raw[:0]
	for _, t := range raw {
		if len(t) < 2 || isStopWord(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Vectorizer is a bag-of-weighted-terms encoder fitted on a corpus.
// Term weights are tf*idf with smooth idf; encoded vectors are
// L2-normalized so inner products are cosine similarities.
type Vectorizer struct {
	vocab map[string]int
	idf   []float32
}

// FitVectorizer learns a vocabulary (capped at maxFeatures terms, most
// document-frequent first) and idf weights from the given texts.
func FitVectorizer(texts []string, maxFeatures int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}

	df := make(map[string]int)
	for _, text := range texts {
		seen := make(map[string]struct{})
		for _, tok := range tokenize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for t := range df {
		terms = append(terms, t)
	}
	// highest document frequency first; lexicographic tie-break keeps the
	// vocabulary deterministic across refreshes
	sort.Slice(terms, func(i, j int) bool {
		if df[terms[i]] != df[terms[j]] {
			return df[terms[i]] > df[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}

	v := &Vectorizer{
		vocab: make(map[string]int, len(terms)),
		idf:   make([]float32, len(terms)),
	}
	n := float64(len(texts))
	for i, t := range terms {
		v.vocab[t] = i
		v.idf[i] = float32(math.Log((1+n)/(1+float64(df[t]))) + 1)
	}
	return v
}

func (v *Vectorizer) Dim() int { return len(v.idf) }

// Encode maps text to an L2-normalized tf-idf vector over the fitted
// vocabulary. Terms outside the vocabulary contribute nothing; a text with
// no known terms encodes to the zero vector.
func (v *Vectorizer) Encode(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, len(v.idf))
	for _, tok := range tokenize(text) {
		if i, ok := v.vocab[tok]; ok {
			vec[i] += v.idf[i]
		}
	}
	return NormalizeL2(vec), nil
}
