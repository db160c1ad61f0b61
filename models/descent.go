package models

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/aouyang1/go-regressor/dataset"
)

// BatchGradientDescent starts at b0 = b1 = 0 and performs opt.Iterations updates of
// b <- b - eta * gradient, where the gradient is taken over the entire dataset. A record with
// the updated params and their MSE is produced after every update. The result is deterministic
// for a given dataset and options.
func BatchGradientDescent(ds *dataset.Dataset, opt *DescentOptions) (*Fit, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	if ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}

	eval := newEvaluator(ds, opt.Parallelization)

	var p Params
	trace := make(Trace, 0, opt.Iterations)
	for i := 1; i <= opt.Iterations; i++ {
		p = p.Step(eval.Gradient(p), opt.LearningRate)
		rec := Record{
			Iteration: i,
			Intercept: p.Intercept,
			Slope:     p.Slope,
			MSE:       eval.MSE(p),
		}
		trace = append(trace, rec)
		opt.report(rec)
		slog.Debug("batch gradient descent step", "iteration", i, "intercept", p.Intercept, "slope", p.Slope, "mse", rec.MSE)
	}

	mse := eval.MSE(p)
	warnDiverged("batch gradient descent", mse, opt)
	return &Fit{Params: p, MSE: mse, Trace: trace}, nil
}

// NormalizedGradientDescent z-scores x before running batch gradient descent. The returned
// params are in the normalized space, use Fit.RawParams for the raw x space.
func NormalizedGradientDescent(ds *dataset.Dataset, opt *DescentOptions) (*Fit, error) {
	if ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	norm, scaler, err := dataset.Normalize(ds)
	if err != nil {
		return nil, err
	}
	fit, err := BatchGradientDescent(norm, opt)
	if err != nil {
		return nil, err
	}
	fit.Scaler = scaler
	return fit, nil
}

// StochasticGradientDescent z-scores x and starts at b0 = b1 = 0. Every iteration draws a single
// observation uniformly at random with replacement and steps against the gradient of its squared
// error. The recorded MSE is always taken over the entire normalized dataset. If rnd is nil a
// source seeded with opt.Seed is used.
func StochasticGradientDescent(ds *dataset.Dataset, opt *DescentOptions, rnd *rand.Rand) (*Fit, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	if ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	norm, scaler, err := dataset.Normalize(ds)
	if err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = NewRand(opt.Seed)
	}

	eval := newEvaluator(norm, opt.Parallelization)
	n := norm.Len()

	var p Params
	trace := make(Trace, 0, opt.Iterations)
	for i := 1; i <= opt.Iterations; i++ {
		idx := rnd.IntN(n)
		p = p.Step(SampleGradient(p, norm.At(idx)), opt.LearningRate)
		rec := Record{
			Iteration: i,
			Intercept: p.Intercept,
			Slope:     p.Slope,
			MSE:       eval.MSE(p),
		}
		trace = append(trace, rec)
		opt.report(rec)
		slog.Debug("stochastic gradient descent step", "iteration", i, "sample", idx, "intercept", p.Intercept, "slope", p.Slope, "mse", rec.MSE)
	}

	mse := eval.MSE(p)
	warnDiverged("stochastic gradient descent", mse, opt)
	return &Fit{Params: p, MSE: mse, Trace: trace, Scaler: scaler}, nil
}

// NewRand returns a random source for stochastic gradient descent which always produces the
// same sequence for the same seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func warnDiverged(method string, mse float64, opt *DescentOptions) {
	if math.IsNaN(mse) || math.IsInf(mse, 0) {
		slog.Warn(fmt.Sprintf("%s diverged, consider a smaller learning rate or normalizing x", method),
			"iterations", opt.Iterations,
			"learning_rate", opt.LearningRate,
		)
	}
}
