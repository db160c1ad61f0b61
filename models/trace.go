package models

import (
	"fmt"
	"io"
	"math"
)

// DisplayPrecision is the number of decimals params and errors are reported with
const DisplayPrecision = 2

// Record captures the state of an iterative fit after a single update
type Record struct {
	Iteration int     `json:"iteration"`
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
	MSE       float64 `json:"mse"`
}

// Params returns the intercept and slope of the record
func (r Record) Params() Params {
	return Params{Intercept: r.Intercept, Slope: r.Slope}
}

// Rounded returns a copy of the record with every real rounded to the display precision
func (r Record) Rounded() Record {
	return Record{
		Iteration: r.Iteration,
		Intercept: round(r.Intercept),
		Slope:     round(r.Slope),
		MSE:       round(r.MSE),
	}
}

// String formats the record as "iteration intercept slope mse"
func (r Record) String() string {
	return fmt.Sprintf("%d %.*f %.*f %.*f",
		r.Iteration,
		DisplayPrecision, r.Intercept,
		DisplayPrecision, r.Slope,
		DisplayPrecision, r.MSE,
	)
}

func round(v float64) float64 {
	scale := math.Pow(10, DisplayPrecision)
	return math.Round(v*scale) / scale
}

// Reporter receives every record as an iterative fit produces it
type Reporter func(Record)

// Trace is the ordered set of records produced by an iterative fit
type Trace []Record

// Last returns the final record of the trace, false if the trace is empty
func (t Trace) Last() (Record, bool) {
	if len(t) == 0 {
		return Record{}, false
	}
	return t[len(t)-1], true
}

// MSE returns the mean squared error after each iteration
func (t Trace) MSE() []float64 {
	mse := make([]float64, len(t))
	for i, r := range t {
		mse[i] = r.MSE
	}
	return mse
}

// Print writes one record per line
func (t Trace) Print(w io.Writer) error {
	for _, r := range t {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return err
		}
	}
	return nil
}
