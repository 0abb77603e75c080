// Package similarity computes cosine and Jaccard similarity, per pair and
// as dense cross-corpus matrices.
package similarity

// Matrix is a dense similarity matrix indexed by (row, column), with
// values in [0,1]. Row i holds one source document's scores against every
// column document. A value of exactly 0 is the "no match" sentinel
// consumed by the recommendation reducer.
type Matrix [][]float64

// NewMatrix allocates a zero rows×cols matrix.
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

// Dims returns the matrix dimensions.
func (m Matrix) Dims() (rows, cols int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

// Row returns row i. The slice aliases the matrix storage.
func (m Matrix) Row(i int) []float64 { return m[i] }

// Col returns a copy of column j.
func (m Matrix) Col(j int) []float64 {
	col := make([]float64, len(m))
	for i := range m {
		col[i] = m[i][j]
	}
	return col
}
