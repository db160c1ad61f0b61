package models

import (
	"testing"

	"github.com/aouyang1/go-regressor/dataset"
	"github.com/stretchr/testify/require"
)

func threeYears(t testing.TB) *dataset.Dataset {
	ds, err := dataset.NewFromSlices(
		[]float64{2000, 2001, 2002},
		[]float64{30, 40, 50},
	)
	require.Nil(t, err)
	return ds
}

// generateIceCover simulates a century and a half of shrinking lake ice cover
func generateIceCover(t testing.TB, n int) *dataset.Dataset {
	rnd := NewRand(42)
	x := dataset.GenerateX(n, 1855, 1)
	y := dataset.AddNoise(dataset.GenerateLinearY(x, 458.0, -0.17), 17.0, rnd)
	ds, err := dataset.NewFromSlices(x, y)
	require.Nil(t, err)
	return ds
}
