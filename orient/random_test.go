// Filename: orient/random_test.go
package orient

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource feeds predetermined variates, making the sampling
// functions fully deterministic for unit assertions.
type scriptedSource struct {
	scalars []float64
	vecs    [][]float64
}

func (s *scriptedSource) Uniform() float64 {
	v := s.scalars[0]
	s.scalars = s.scalars[1:]
	return v
}

func (s *scriptedSource) UniformVec(n int) []float64 {
	v := s.vecs[0]
	s.vecs = s.vecs[1:]
	if len(v) != n {
		panic("scriptedSource: unexpected vector arity")
	}
	return v
}

func TestRandUnitVec3(t *testing.T) {
	t.Parallel()

	t.Run("scripted_draw", func(t *testing.T) {
		t.Parallel()
		// Draws 0.9,0.5,0.5 center to (0.4,0,0), normalizing to +x.
		src := &scriptedSource{vecs: [][]float64{{0.9, 0.5, 0.5}}}
		v := RandUnitVec3(src)
		assert.InDelta(t, 1.0, v.X, 1e-12)
		assert.InDelta(t, 0.0, v.Y, 1e-12)
		assert.InDelta(t, 0.0, v.Z, 1e-12)
	})

	t.Run("always_unit_magnitude", func(t *testing.T) {
		t.Parallel()
		src := NewRandSource(rand.New(rand.NewSource(42)))
		for i := 0; i < 1000; i++ {
			assert.InDelta(t, 1.0, RandUnitVec3(src).Mag(), 1e-9)
		}
	})
}

func TestRandVec3(t *testing.T) {
	t.Parallel()

	t.Run("scripted_draw", func(t *testing.T) {
		t.Parallel()
		// Unit draw is +x; the scalar draw 0.6 scales it to 0.6*5.
		src := &scriptedSource{
			vecs:    [][]float64{{0.9, 0.5, 0.5}},
			scalars: []float64{0.6},
		}
		v := RandVec3(5.0, src)
		assert.InDelta(t, 3.0, v.X, 1e-12)
		assert.InDelta(t, 0.0, v.Y, 1e-12)
		assert.InDelta(t, 0.0, v.Z, 1e-12)
	})

	t.Run("magnitude_distribution", func(t *testing.T) {
		t.Parallel()
		const (
			trials  = 20000
			maxNorm = 5.0
		)
		src := NewRandSource(rand.New(rand.NewSource(99)))

		var magSum float64
		var dirSum [3]float64
		for i := 0; i < trials; i++ {
			v := RandVec3(maxNorm, src)
			m := v.Mag()
			require.GreaterOrEqual(t, m, 0.0)
			require.Less(t, m, maxNorm)
			magSum += m
			dirSum[0] += v.X
			dirSum[1] += v.Y
			dirSum[2] += v.Z
		}

		// Magnitudes are uniform in [0, maxNorm), so the mean converges
		// to maxNorm/2; directions are uniform on the sphere, so the
		// mean vector converges to zero. Tolerances sit far outside the
		// sampling noise for this trial count.
		assert.InDelta(t, maxNorm/2, magSum/trials, 0.1)
		for axis := 0; axis < 3; axis++ {
			assert.InDelta(t, 0.0, dirSum[axis]/trials, 0.1)
		}
	})
}

func TestNewRandSource(t *testing.T) {
	t.Parallel()

	src := NewRandSource(rand.New(rand.NewSource(7)))

	for i := 0; i < 100; i++ {
		u := src.Uniform()
		assert.GreaterOrEqual(t, u, 0.0)
		assert.Less(t, u, 1.0)
	}

	vec := src.UniformVec(5)
	require.Len(t, vec, 5)
	for _, u := range vec {
		assert.GreaterOrEqual(t, u, 0.0)
		assert.Less(t, u, 1.0)
	}

	// Two sources with the same seed replay the same stream; that is the
	// reproducibility contract call sites rely on.
	a := NewRandSource(rand.New(rand.NewSource(123)))
	b := NewRandSource(rand.New(rand.NewSource(123)))
	assert.Equal(t, a.UniformVec(8), b.UniformVec(8))
}

func TestRandUnitVec3NaNOnZeroDraw(t *testing.T) {
	t.Parallel()

	// The zero-probability degenerate draw is documented, not guarded.
	src := &scriptedSource{vecs: [][]float64{{0.5, 0.5, 0.5}}}
	v := RandUnitVec3(src)
	assert.True(t, math.IsNaN(v.X))
}
