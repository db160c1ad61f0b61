// Package models is a collection of simple linear regression fitting implementations. Each
// strategy fits y ~ b0 + b1*x against a dataset and reports the mean squared error of the result.
package models

import (
	"github.com/aouyang1/go-regressor/dataset"
)

// Params are the intercept (b0) and slope (b1) of a fitted line
type Params struct {
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
}

// Predict returns b0 + b1*x
func (p Params) Predict(x float64) float64 {
	return p.Intercept + p.Slope*x
}

// Step moves the params against the gradient scaled by the learning rate
func (p Params) Step(grad Params, eta float64) Params {
	return Params{
		Intercept: p.Intercept - eta*grad.Intercept,
		Slope:     p.Slope - eta*grad.Slope,
	}
}

// Denormalize converts params fit against z-scored x back to the raw x space. A nil scaler
// returns the params unchanged.
func (p Params) Denormalize(s *dataset.Scaler) Params {
	if s == nil {
		return p
	}
	slope := p.Slope / s.StdDev
	return Params{
		Intercept: p.Intercept - slope*s.Mean,
		Slope:     slope,
	}
}

// Fit is the result of a fitting strategy. Iterative strategies populate the trace. Scaler is
// set when the params were fit against normalized x.
type Fit struct {
	Params Params          `json:"params"`
	MSE    float64         `json:"mse"`
	Trace  Trace           `json:"trace,omitempty"`
	Scaler *dataset.Scaler `json:"scaler,omitempty"`
}

// RawParams returns the fitted params in the raw x space
func (f *Fit) RawParams() Params {
	return f.Params.Denormalize(f.Scaler)
}
