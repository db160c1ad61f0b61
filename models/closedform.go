package models

import (
	"fmt"

	"github.com/aouyang1/go-regressor/dataset"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ClosedForm computes the least squares intercept and slope directly from the sample means,
//
//	b1 = sum((x - xbar)(y - ybar)) / sum((x - xbar)^2)
//	b0 = ybar - b1*xbar
//
// The dataset should be in raw units. Returns ErrDegenerateVariance if every x is identical.
func ClosedForm(ds *dataset.Dataset) (*Fit, error) {
	if ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	if !hasSpread(ds.X) {
		return nil, fmt.Errorf("closed form over %d observations, %w", ds.Len(), ErrDegenerateVariance)
	}
	xBar := stat.Mean(ds.X, nil)
	yBar := stat.Mean(ds.Y, nil)

	dx := make([]float64, ds.Len())
	dy := make([]float64, ds.Len())
	floats.AddScaledTo(dx, ds.X, -xBar, ones(ds.Len()))
	floats.AddScaledTo(dy, ds.Y, -yBar, ones(ds.Len()))

	denom := floats.Dot(dx, dx)
	if denom == 0 {
		return nil, fmt.Errorf("closed form over %d observations, %w", ds.Len(), ErrDegenerateVariance)
	}
	slope := floats.Dot(dx, dy) / denom

	p := Params{
		Intercept: yBar - slope*xBar,
		Slope:     slope,
	}
	mse, err := MSE(p, ds)
	if err != nil {
		return nil, err
	}
	return &Fit{Params: p, MSE: mse}, nil
}

func ones(n int) []float64 {
	o := make([]float64, n)
	floats.AddConst(1.0, o)
	return o
}
