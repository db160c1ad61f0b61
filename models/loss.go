package models

import (
	"github.com/aouyang1/go-regressor/dataset"
	"github.com/aouyang1/go-regressor/floatsunrolled"
	"golang.org/x/sync/errgroup"
)

// MSE returns the mean squared error of the params over the dataset,
// mean((b0 + b1*x - y)^2).
func MSE(p Params, ds *dataset.Dataset) (float64, error) {
	if ds.Len() == 0 {
		return 0, ErrEmptyDataset
	}
	return newEvaluator(ds, 1).MSE(p), nil
}

// Gradient returns the partial derivatives of the MSE with respect to the intercept and slope,
//
//	g0 = 2/n * sum(b0 + b1*x - y)
//	g1 = 2/n * sum((b0 + b1*x - y) * x)
func Gradient(p Params, ds *dataset.Dataset) (Params, error) {
	if ds.Len() == 0 {
		return Params{}, ErrEmptyDataset
	}
	return newEvaluator(ds, 1).Gradient(p), nil
}

// SampleGradient returns the gradient of the squared error of a single observation,
// g0 = 2*(b0 + b1*x - y) and g1 = g0*x.
func SampleGradient(p Params, obs dataset.Observation) Params {
	g0 := 2.0 * (p.Predict(obs.X) - obs.Y)
	return Params{
		Intercept: g0,
		Slope:     g0 * obs.X,
	}
}

// lossSums holds the residual sums a chunk of observations contributes
type lossSums struct {
	residual   float64 // sum(r)
	residualX  float64 // sum(r*x)
	residualSq float64 // sum(r^2)
}

// evaluator computes the loss and gradient over a fixed dataset. With a parallelization above 1
// the observations are split into contiguous chunks whose partial sums are computed concurrently
// and combined in chunk order.
type evaluator struct {
	ds              *dataset.Dataset
	parallelization int

	// reused between evaluations, one per chunk
	residuals [][]float64
	bounds    [][2]int
	partials  []lossSums
}

func newEvaluator(ds *dataset.Dataset, parallelization int) *evaluator {
	n := ds.Len()
	if parallelization < 1 {
		parallelization = 1
	}
	if parallelization > n {
		parallelization = n
	}

	e := &evaluator{
		ds:              ds,
		parallelization: parallelization,
		residuals:       make([][]float64, parallelization),
		bounds:          make([][2]int, parallelization),
		partials:        make([]lossSums, parallelization),
	}

	chunk := n / parallelization
	rem := n % parallelization
	start := 0
	for i := 0; i < parallelization; i++ {
		size := chunk
		if i < rem {
			size++
		}
		e.bounds[i] = [2]int{start, start + size}
		e.residuals[i] = make([]float64, size)
		start += size
	}
	return e
}

func (e *evaluator) chunkSums(i int, p Params) lossSums {
	lo, hi := e.bounds[i][0], e.bounds[i][1]
	x := e.ds.X[lo:hi]
	r := floatsunrolled.ResidualsTo(e.residuals[i], p.Intercept, p.Slope, x, e.ds.Y[lo:hi])
	return lossSums{
		residual:   floatsunrolled.Sum(r),
		residualX:  floatsunrolled.Dot(r, x),
		residualSq: floatsunrolled.Dot(r, r),
	}
}

func (e *evaluator) sums(p Params) lossSums {
	if e.parallelization == 1 {
		return e.chunkSums(0, p)
	}

	var g errgroup.Group
	g.SetLimit(e.parallelization)
	for i := 0; i < e.parallelization; i++ {
		g.Go(func() error {
			e.partials[i] = e.chunkSums(i, p)
			return nil
		})
	}
	// chunk evaluation cannot fail
	_ = g.Wait()

	var total lossSums
	for _, s := range e.partials {
		total.residual += s.residual
		total.residualX += s.residualX
		total.residualSq += s.residualSq
	}
	return total
}

// MSE returns mean((b0 + b1*x - y)^2)
func (e *evaluator) MSE(p Params) float64 {
	return e.sums(p).residualSq / float64(e.ds.Len())
}

// Gradient returns the full dataset MSE gradient
func (e *evaluator) Gradient(p Params) Params {
	s := e.sums(p)
	n := float64(e.ds.Len())
	return Params{
		Intercept: 2.0 / n * s.residual,
		Slope:     2.0 / n * s.residualX,
	}
}
