package index

import "math"

// SparseVector is one row of the term-weight matrix: column ids in
// ascending order with their weights.
type SparseVector struct {
	Indices []int     `json:"indices"`
	Values  []float64 `json:"values"`
}

// Dot returns the dot product of two sparse vectors. Both operands are
// L2-normalized by construction, so this is also their cosine similarity.
func Dot(a, b SparseVector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] < b.Indices[j]:
			i++
		case a.Indices[i] > b.Indices[j]:
			j++
		default:
			sum += a.Values[i] * b.Values[j]
			i++
			j++
		}
	}
	return sum
}

// normalize scales the vector to unit L2 length in place. Zero vectors
// are left untouched.
func (v *SparseVector) normalize() {
	var sq float64
	for _, x := range v.Values {
		sq += x * x
	}
	if sq == 0 {
		return
	}
	norm := math.Sqrt(sq)
	for i := range v.Values {
		v.Values[i] /= norm
	}
}
