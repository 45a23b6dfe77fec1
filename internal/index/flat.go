package index

// FlatIndex stores vectors in insertion order and answers exact
// inner-product queries against all of them. Small corpora (hundreds of
// jobs) make a full scan cheaper than any approximate structure.
type FlatIndex struct {
	dim     int
	vectors [][]float32
}

func NewFlatIndex(dim int) *FlatIndex {
	return &FlatIndex{dim: dim}
}

func (ix *FlatIndex) Dim() int { return ix.dim }
func (ix *FlatIndex) Len() int { return len(ix.vectors) }

// Add appends a vector. Vectors of the wrong dimension are rejected.
func (ix *FlatIndex) Add(v []float32) error {
	if len(v) != ix.dim {
		return ErrVectorLengthMismatch
	}
	ix.vectors = append(ix.vectors, v)
	return nil
}

// Search returns the inner product of query against every stored vector,
// aligned with insertion order. A nil index or mismatched query yields nil,
// which callers treat as "no results".
func (ix *FlatIndex) Search(query []float32) []float64 {
	if ix == nil || len(query) != ix.dim {
		return nil
	}
	scores := make([]float64, len(ix.vectors))
	for i, v := range ix.vectors {
		s, _ := Dot(query, v)
		scores[i] = s
	}
	return scores
}
