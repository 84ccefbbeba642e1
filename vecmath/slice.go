package vecmath

import (
	"errors"
	"fmt"
	"math"
)

// ErrDimensionMismatch is returned when two slice operands have different
// lengths. It is the only hard failure class in this package; every other
// degenerate input maps to a defined output value.
var ErrDimensionMismatch = errors.New("vecmath: dimension mismatch")

// Diff returns the element-wise difference a - b.
func Diff(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: len(a)=%d len(b)=%d", ErrDimensionMismatch, len(a), len(b))
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out, nil
}

// Dot returns the inner product of a and b. The operands may have any
// length as long as the two lengths match.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: len(a)=%d len(b)=%d", ErrDimensionMismatch, len(a), len(b))
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum, nil
}

// Mean returns the arithmetic mean of every scalar in v. It is a mean over
// the flattened collection, not a per-axis centroid; callers that want a
// centroid of several vectors must flatten per axis before calling.
// An empty slice yields NaN.
func Mean(v []float64) float64 {
	if len(v) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}
