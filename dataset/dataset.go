// Package dataset holds the (x, y) observations a linear regression is fit against along with
// the preprocessing applied to them before fitting.
package dataset

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyDataset       = errors.New("no observations in dataset")
	ErrDatasetLenMismatch = errors.New("x has a different length than y")
	ErrNonFinite          = errors.New("observation is not finite")
	ErrDegenerateVariance = errors.New("x has zero variance")
)

// Observation is a single (x, y) pair such as a winter year and the days the lake stayed frozen.
type Observation struct {
	X float64 `json:"year"`
	Y float64 `json:"days"`
}

// Dataset represents an ordered set of observations stored column-wise. Both slices must be of
// the same length.
type Dataset struct {
	X []float64
	Y []float64
}

// New returns a Dataset from a slice of observations. The observations are copied.
func New(obs []Observation) (*Dataset, error) {
	x := make([]float64, len(obs))
	y := make([]float64, len(obs))
	for i, o := range obs {
		x[i] = o.X
		y[i] = o.Y
	}
	return newDataset(x, y)
}

// NewFromSlices returns a Dataset given an x and y slice. Both are copied.
func NewFromSlices(x, y []float64) (*Dataset, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf(
			"x has length of %d, but y has a length of %d, %w",
			len(x), len(y), ErrDatasetLenMismatch,
		)
	}
	xSeries := make([]float64, len(x))
	ySeries := make([]float64, len(y))
	copy(xSeries, x)
	copy(ySeries, y)
	return newDataset(xSeries, ySeries)
}

func newDataset(x, y []float64) (*Dataset, error) {
	if len(y) == 0 {
		return nil, ErrEmptyDataset
	}
	for i := 0; i < len(x); i++ {
		if !isFinite(x[i]) || !isFinite(y[i]) {
			return nil, fmt.Errorf("x=%f y=%f at index %d, %w", x[i], y[i], i, ErrNonFinite)
		}
	}
	return &Dataset{X: x, Y: y}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Len returns the number of observations. A nil dataset has no observations.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Y)
}

// At returns the observation at index i.
func (d *Dataset) At(i int) Observation {
	return Observation{X: d.X[i], Y: d.Y[i]}
}

// Observations returns a copy of the dataset in row form.
func (d *Dataset) Observations() []Observation {
	obs := make([]Observation, d.Len())
	for i := range obs {
		obs[i] = d.At(i)
	}
	return obs
}

func (d *Dataset) Copy() *Dataset {
	xSeries := make([]float64, len(d.X))
	ySeries := make([]float64, len(d.Y))
	copy(xSeries, d.X)
	copy(ySeries, d.Y)
	return &Dataset{
		X: xSeries,
		Y: ySeries,
	}
}
