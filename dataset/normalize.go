package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// MinNormalizeLen is the fewest observations a sample standard deviation can be computed from
const MinNormalizeLen = 2

// Scaler stores the mean and sample standard deviation used to z-score the x column
type Scaler struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// NewScaler computes the mean and sample standard deviation of x.
func NewScaler(x []float64) (*Scaler, error) {
	if len(x) == 0 {
		return nil, ErrEmptyDataset
	}
	if len(x) < MinNormalizeLen {
		return nil, fmt.Errorf("need at least %d observations to normalize, got %d, %w", MinNormalizeLen, len(x), ErrDegenerateVariance)
	}
	mean, std := stat.MeanStdDev(x, nil)
	if std == 0 || allEqual(x) {
		return nil, ErrDegenerateVariance
	}
	return &Scaler{Mean: mean, StdDev: std}, nil
}

func allEqual(x []float64) bool {
	for _, v := range x[1:] {
		if v != x[0] {
			return false
		}
	}
	return true
}

// Transform maps a raw x value into z-score space
func (s *Scaler) Transform(x float64) float64 {
	return (x - s.Mean) / s.StdDev
}

// Inverse maps a z-score back to a raw x value
func (s *Scaler) Inverse(z float64) float64 {
	return z*s.StdDev + s.Mean
}

// Normalize returns a new dataset with every x replaced by its z-score (x - mean) / stddev. y is
// unchanged. The scaler used is returned so new x values can be mapped the same way.
func Normalize(d *Dataset) (*Dataset, *Scaler, error) {
	if d.Len() == 0 {
		return nil, nil, ErrEmptyDataset
	}
	scaler, err := NewScaler(d.X)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to normalize x, %w", err)
	}

	norm := d.Copy()
	for i, x := range norm.X {
		norm.X[i] = scaler.Transform(x)
	}
	return norm, scaler, nil
}

// Summary describes the y column of a dataset
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// Summarize returns the count, mean and sample standard deviation of y. The standard deviation
// is NaN for a single observation.
func Summarize(d *Dataset) (Summary, error) {
	if d.Len() == 0 {
		return Summary{}, ErrEmptyDataset
	}
	mean, std := stat.MeanStdDev(d.Y, nil)
	return Summary{
		Count:  d.Len(),
		Mean:   mean,
		StdDev: std,
	}, nil
}
