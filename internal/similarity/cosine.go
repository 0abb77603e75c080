package similarity

import "math"

// Cosine returns the cosine similarity of two equal-length vectors.
// Returns 0 (not NaN) when either magnitude is 0.
func Cosine(a, b []float64) float64 {
	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// CosineMatrix computes the cosine similarity between every row vector of
// a and every row vector of b. Both sides must be drawn from the same
// vocabulary or the scores are meaningless.
func CosineMatrix(a, b [][]float64) Matrix {
	m := NewMatrix(len(a), len(b))
	for i, va := range a {
		for j, vb := range b {
			m[i][j] = Cosine(va, vb)
		}
	}
	return m
}
