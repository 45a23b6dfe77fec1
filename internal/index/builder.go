package index

import (
	"context"
	"log"

	"careermatch-engine/internal/embeddings"
)

// Builder turns a batch of texts into an encoder plus a queryable index.
// With a configured embeddings provider the corpus is embedded externally;
// otherwise (or when the provider fails mid-build) a term-weight vectorizer
// is fitted on the batch. Each refresh re-fits from scratch.
type Builder struct {
	Provider    embeddings.Provider
	MaxFeatures int
}

// Build encodes texts in order and returns the encoder to use for queries
// together with the filled index. An empty batch returns (nil, nil): all
// downstream searches against a nil index short-circuit to empty results.
func (b Builder) Build(ctx context.Context, texts []string) (Encoder, *FlatIndex) {
	if len(texts) == 0 {
		return nil, nil
	}

	if b.Provider != nil {
		if enc, ix, ok := b.buildWithProvider(ctx, texts); ok {
			return enc, ix
		}
		log.Printf("[index] provider %s failed, falling back to term-weight vectors", b.Provider.ModelID())
	}

	vec := FitVectorizer(texts, b.MaxFeatures)
	ix := NewFlatIndex(vec.Dim())
	for _, text := range texts {
		v, _ := vec.Encode(ctx, text)
		_ = ix.Add(v)
	}
	return vec, ix
}

func (b Builder) buildWithProvider(ctx context.Context, texts []string) (Encoder, *FlatIndex, bool) {
	vectors := make([][]float32, 0, len(texts))
	dim := 0
	for _, text := range texts {
		emb, err := b.Provider.Embed(ctx, text)
		if err != nil {
			return nil, nil, false
		}
		if dim == 0 {
			dim = len(emb)
		}
		if len(emb) != dim {
			return nil, nil, false
		}
		vectors = append(vectors, NormalizeL2(emb))
	}

	ix := NewFlatIndex(dim)
	for _, v := range vectors {
		_ = ix.Add(v)
	}
	return providerEncoder{p: b.Provider, dim: dim}, ix, true
}

// providerEncoder adapts an embeddings.Provider to the Encoder used for
// query-time encoding, normalizing so index scores stay cosine-valued.
type providerEncoder struct {
	p   embeddings.Provider
	dim int
}

func (e providerEncoder) Dim() int { return e.dim }

func (e providerEncoder) Encode(ctx context.Context, text string) ([]float32, error) {
	emb, err := e.p.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	return NormalizeL2(emb), nil
}
