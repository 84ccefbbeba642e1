// Filename: vecmath/slice_test.go
package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	t.Parallel()

	t.Run("elementwise", func(t *testing.T) {
		t.Parallel()
		got, err := Diff([]float64{5, 3, 1}, []float64{1, 1, 1})
		require.NoError(t, err)
		assert.Equal(t, []float64{4, 2, 0}, got)
	})

	t.Run("arity_generic", func(t *testing.T) {
		t.Parallel()
		got, err := Diff([]float64{1, 2, 3, 4, 5}, []float64{5, 4, 3, 2, 1})
		require.NoError(t, err)
		assert.Equal(t, []float64{-4, -2, 0, 2, 4}, got)
	})

	t.Run("dimension_mismatch", func(t *testing.T) {
		t.Parallel()
		_, err := Diff([]float64{1, 2}, []float64{1, 2, 3})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})
}

func TestDot(t *testing.T) {
	t.Parallel()

	t.Run("inner_product", func(t *testing.T) {
		t.Parallel()
		got, err := Dot([]float64{1, 2, 3}, []float64{4, -5, 6})
		require.NoError(t, err)
		assert.InDelta(t, 12.0, got, 1e-12)
	})

	t.Run("empty_operands", func(t *testing.T) {
		t.Parallel()
		got, err := Dot(nil, nil)
		require.NoError(t, err)
		assert.Zero(t, got)
	})

	t.Run("dimension_mismatch", func(t *testing.T) {
		t.Parallel()
		_, err := Dot([]float64{1}, []float64{1, 2})
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})
}

func TestMean(t *testing.T) {
	t.Parallel()

	// Mean flattens: it is the scalar mean of every component handed in,
	// not a per-axis centroid.
	assert.InDelta(t, 2.0, Mean([]float64{1, 2, 3}), 1e-12)
	assert.InDelta(t, 0.5, Mean([]float64{1, 0, 1, 0}), 1e-12)
	assert.InDelta(t, -4.0, Mean([]float64{-4}), 1e-12)
	assert.True(t, math.IsNaN(Mean(nil)))
}
