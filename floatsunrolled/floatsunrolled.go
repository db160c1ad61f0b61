// floatsunrolled is inspired by the SIMD blog post
// https://github.com/camdencheek/simd_blog/blob/main/main.go
//
// The kernels process UnrollBatch elements per step and finish any remainder one element at a
// time so they accept slices of any length.
package floatsunrolled

import (
	"errors"
)

const UnrollBatch = 4

var (
	ErrSliceLengthMismatch       = errors.New("slices must have equal lengths")
	ErrOutputSliceLengthMismatch = errors.New("output slice length not the same as input")
)

func Sum(s []float64) float64 {
	var sum float64
	n := len(s) - len(s)%UnrollBatch
	for i := 0; i < n; i += UnrollBatch {
		sTmp := s[i : i+UnrollBatch : i+UnrollBatch]
		sum += sTmp[0] + sTmp[1] + sTmp[2] + sTmp[3]
	}
	for i := n; i < len(s); i++ {
		sum += s[i]
	}
	return sum
}

func Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		panic(ErrSliceLengthMismatch)
	}

	var sum float64
	n := len(a) - len(a)%UnrollBatch
	for i := 0; i < n; i += UnrollBatch {
		aTmp := a[i : i+UnrollBatch : i+UnrollBatch]
		bTmp := b[i : i+UnrollBatch : i+UnrollBatch]
		s0 := aTmp[0] * bTmp[0]
		s1 := aTmp[1] * bTmp[1]
		s2 := aTmp[2] * bTmp[2]
		s3 := aTmp[3] * bTmp[3]
		sum += s0 + s1 + s2 + s3
	}
	for i := n; i < len(a); i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// ResidualsTo stores intercept + slope*x[i] - y[i] in dst. If dst is nil a new slice is allocated.
func ResidualsTo(dst []float64, intercept, slope float64, x, y []float64) []float64 {
	if len(x) != len(y) {
		panic(ErrSliceLengthMismatch)
	}

	if dst == nil {
		dst = make([]float64, len(x))
	} else if len(dst) != len(x) {
		panic(ErrOutputSliceLengthMismatch)
	}

	n := len(x) - len(x)%UnrollBatch
	for i := 0; i < n; i += UnrollBatch {
		dstTmp := dst[i : i+UnrollBatch : i+UnrollBatch]
		xTmp := x[i : i+UnrollBatch : i+UnrollBatch]
		yTmp := y[i : i+UnrollBatch : i+UnrollBatch]
		dstTmp[0] = intercept + slope*xTmp[0] - yTmp[0]
		dstTmp[1] = intercept + slope*xTmp[1] - yTmp[1]
		dstTmp[2] = intercept + slope*xTmp[2] - yTmp[2]
		dstTmp[3] = intercept + slope*xTmp[3] - yTmp[3]
	}
	for i := n; i < len(x); i++ {
		dst[i] = intercept + slope*x[i] - y[i]
	}

	return dst
}
