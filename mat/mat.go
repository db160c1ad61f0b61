package mat

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrColMismatch = errors.New("column size mismatch")
	ErrNoRows      = errors.New("no rows to build matrix from")
)

// NewDenseFromArray builds a row-major Dense matrix. Every row must have the same length.
func NewDenseFromArray(x [][]float64) (*mat.Dense, error) {
	m := len(x)
	if m == 0 {
		return nil, ErrNoRows
	}

	n := len(x[0])
	for i, row := range x {
		if len(row) != n {
			return nil, fmt.Errorf("at row %d, %w", i, ErrColMismatch)
		}
	}
	if n == 0 {
		return nil, ErrNoRows
	}

	// flatten to row order
	data := make([]float64, 0, m*n)
	for _, row := range x {
		data = append(data, row...)
	}
	return mat.NewDense(m, n, data), nil
}

// NewDesignMatrix returns the m x 2 matrix [1, x] used to fit an intercept and a slope.
func NewDesignMatrix(x []float64) (*mat.Dense, error) {
	rows := make([][]float64, len(x))
	for i, v := range x {
		rows[i] = []float64{1.0, v}
	}
	return NewDenseFromArray(rows)
}
