package models

import (
	"fmt"

	"github.com/aouyang1/go-regressor/dataset"
	mat_ "github.com/aouyang1/go-regressor/mat"
	"gonum.org/v1/gonum/mat"
)

// LeastSquaresQR solves the same problem as ClosedForm through a QR factorization of the [1, x]
// design matrix followed by back substitution.
func LeastSquaresQR(ds *dataset.Dataset) (*Fit, error) {
	if ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	if !hasSpread(ds.X) {
		return nil, fmt.Errorf("qr least squares over %d observations, %w", ds.Len(), ErrDegenerateVariance)
	}

	x, err := mat_.NewDesignMatrix(ds.X)
	if err != nil {
		return nil, fmt.Errorf("unable to build design matrix, %w", err)
	}
	m, n := x.Dims()
	y := mat.NewDense(1, m, ds.Y)

	qr := new(mat.QR)
	qr.Factorize(x)

	q := new(mat.Dense)
	r := new(mat.Dense)

	qr.QTo(q)
	qr.RTo(r)
	yq := new(mat.Dense)
	yq.Mul(y, q)

	c := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		c[i] = yq.At(0, i)
		for j := i + 1; j < n; j++ {
			c[i] -= c[j] * r.At(i, j)
		}
		c[i] /= r.At(i, i)
	}

	p := Params{
		Intercept: c[0],
		Slope:     c[1],
	}
	mse, err := MSE(p, ds)
	if err != nil {
		return nil, err
	}
	return &Fit{Params: p, MSE: mse}, nil
}

// hasSpread returns true if there are at least two distinct values
func hasSpread(x []float64) bool {
	for _, v := range x[1:] {
		if v != x[0] {
			return true
		}
	}
	return false
}
