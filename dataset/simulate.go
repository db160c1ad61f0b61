package dataset

import (
	"math/rand/v2"
)

// GenerateX returns n evenly spaced x values starting at start
func GenerateX(n int, start, step float64) []float64 {
	x := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x = append(x, start+step*float64(i))
	}
	return x
}

// GenerateLinearY returns intercept + slope*x for every x
func GenerateLinearY(x []float64, intercept, slope float64) []float64 {
	y := make([]float64, 0, len(x))
	for _, v := range x {
		y = append(y, intercept+slope*v)
	}
	return y
}

// AddNoise adds normally distributed noise with the given scale to y in place
func AddNoise(y []float64, scale float64, rnd *rand.Rand) []float64 {
	for i := range y {
		y[i] += rnd.NormFloat64() * scale
	}
	return y
}
