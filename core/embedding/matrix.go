package embedding

import (
	"math"
	"sort"

	"github.com/viterin/vek/vek32"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense row-major float32 weight matrix, one row per vocabulary
// index.
type Matrix struct {
	data []float32
	rows int
	dim  int
}

// NewMatrix allocates a zeroed rows x dim matrix.
func NewMatrix(rows, dim int) *Matrix {
	return &Matrix{
		data: make([]float32, rows*dim),
		rows: rows,
		dim:  dim,
	}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Dim returns the vector dimension.
func (m *Matrix) Dim() int {
	return m.dim
}

// Row returns the i-th row. The slice shares the matrix backing array.
func (m *Matrix) Row(i int) []float32 {
	return m.data[i*m.dim : (i+1)*m.dim]
}

// Dense copies the matrix into a gonum mat.Dense for float64 consumers.
func (m *Matrix) Dense() *mat.Dense {
	out := mat.NewDense(m.rows, m.dim, nil)
	for i := 0; i < m.rows; i++ {
		row := m.Row(i)
		for j, val := range row {
			out.Set(i, j, float64(val))
		}
	}
	return out
}

// Norms returns the L2 norm of each row.
func (m *Matrix) Norms() []float32 {
	norms := make([]float32, m.rows)
	for i := 0; i < m.rows; i++ {
		row := m.Row(i)
		norms[i] = float32(math.Sqrt(float64(vek32.Dot(row, row))))
	}
	return norms
}

// Neighbor is a row index paired with its cosine similarity to a query.
type Neighbor struct {
	Index int
	Score float32
}

// Nearest returns up to k rows most similar to query by cosine similarity,
// in descending score order. Zero-norm rows (the padding row) are skipped.
func (m *Matrix) Nearest(query []float32, k int) []Neighbor {
	queryNorm := float32(math.Sqrt(float64(vek32.Dot(query, query))))
	if queryNorm == 0 || k <= 0 {
		return nil
	}

	neighbors := make([]Neighbor, 0, m.rows)
	for i := 0; i < m.rows; i++ {
		row := m.Row(i)
		norm := float32(math.Sqrt(float64(vek32.Dot(row, row))))
		if norm == 0 {
			continue
		}
		neighbors = append(neighbors, Neighbor{
			Index: i,
			Score: vek32.Dot(query, row) / (queryNorm * norm),
		})
	}

	sort.Slice(neighbors, func(a, b int) bool {
		if neighbors[a].Score != neighbors[b].Score {
			return neighbors[a].Score > neighbors[b].Score
		}
		return neighbors[a].Index < neighbors[b].Index
	})

	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors
}

// CosineSimilarity returns the cosine similarity of two vectors, or 0 when
// either has zero norm.
func CosineSimilarity(a, b []float32) float32 {
	na := float32(math.Sqrt(float64(vek32.Dot(a, a))))
	nb := float32(math.Sqrt(float64(vek32.Dot(b, b))))
	if na == 0 || nb == 0 {
		return 0
	}
	return vek32.Dot(a, b) / (na * nb)
}
