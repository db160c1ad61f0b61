package models

import (
	"testing"

	"github.com/aouyang1/go-regressor/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosedFormExactLine(t *testing.T) {
	fit, err := ClosedForm(threeYears(t))
	require.Nil(t, err)

	assert.Equal(t, 10.0, fit.Params.Slope)
	assert.Equal(t, -19970.0, fit.Params.Intercept)
	assert.Equal(t, 0.0, fit.MSE)
	assert.Nil(t, fit.Trace)
	assert.Nil(t, fit.Scaler)
}

func TestClosedFormDegenerate(t *testing.T) {
	testData := map[string]struct {
		x   []float64
		y   []float64
		err error
	}{
		"single observation": {
			x:   []float64{2000},
			y:   []float64{30},
			err: ErrDegenerateVariance,
		},
		"identical years": {
			x:   []float64{2000, 2000, 2000},
			y:   []float64{30, 40, 50},
			err: ErrDegenerateVariance,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			ds, err := dataset.NewFromSlices(td.x, td.y)
			require.Nil(t, err)

			_, err = ClosedForm(ds)
			assert.ErrorIs(t, err, td.err)

			_, err = LeastSquaresQR(ds)
			assert.ErrorIs(t, err, td.err)
		})
	}

	_, err := ClosedForm(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = LeastSquaresQR(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestClosedFormMinimizesMSE(t *testing.T) {
	ds := generateIceCover(t, 150)
	fit, err := ClosedForm(ds)
	require.Nil(t, err)

	deltas := []Params{
		{Intercept: 1e-3},
		{Intercept: -1e-3},
		{Slope: 1e-6},
		{Slope: -1e-6},
		{Intercept: 0.5, Slope: -2e-4},
		{Intercept: -10, Slope: 5e-3},
	}
	for _, d := range deltas {
		p := Params{
			Intercept: fit.Params.Intercept + d.Intercept,
			Slope:     fit.Params.Slope + d.Slope,
		}
		mse, err := MSE(p, ds)
		require.Nil(t, err)
		assert.GreaterOrEqual(t, mse, fit.MSE-1e-9, "perturbation %+v", d)
	}
}

func TestClosedFormZeroGradient(t *testing.T) {
	ds := generateIceCover(t, 50)
	fit, err := ClosedForm(ds)
	require.Nil(t, err)

	g, err := Gradient(fit.Params, ds)
	require.Nil(t, err)
	assert.InDelta(t, 0.0, g.Intercept, 1e-8)
	assert.InDelta(t, 0.0, g.Slope, 1e-5)
}

func TestLeastSquaresQR(t *testing.T) {
	testData := map[string]*dataset.Dataset{
		"exact line":     threeYears(t),
		"ice cover":      generateIceCover(t, 150),
		"short ice data": generateIceCover(t, 5),
	}

	for name, ds := range testData {
		t.Run(name, func(t *testing.T) {
			cf, err := ClosedForm(ds)
			require.Nil(t, err)

			qr, err := LeastSquaresQR(ds)
			require.Nil(t, err)

			assert.InDelta(t, cf.Params.Slope, qr.Params.Slope, 1e-6)
			assert.InDelta(t, cf.Params.Intercept, qr.Params.Intercept, 1e-3)
			assert.InDelta(t, cf.MSE, qr.MSE, 1e-4)
		})
	}
}

func BenchmarkClosedForm(b *testing.B) {
	ds := generateIceCover(b, 1000)
	for b.Loop() {
		if _, err := ClosedForm(ds); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLeastSquaresQR(b *testing.B) {
	ds := generateIceCover(b, 1000)
	for b.Loop() {
		if _, err := LeastSquaresQR(ds); err != nil {
			b.Fatal(err)
		}
	}
}
