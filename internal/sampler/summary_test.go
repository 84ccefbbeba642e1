// Filename: internal/sampler/summary_test.go
package sampler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/driftline/rbcore/vecmath"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	t.Run("known_batch", func(t *testing.T) {
		t.Parallel()
		batch := []vecmath.Vec3{
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 2, Z: 0},
			{X: 0, Y: 0, Z: 3},
		}
		s := Summarize(batch)
		assert.Equal(t, 3, s.Count)
		assert.InDelta(t, 2.0, s.MeanMag, 1e-12)
		assert.InDelta(t, 1.0, s.MinMag, 1e-12)
		assert.InDelta(t, 3.0, s.MaxMag, 1e-12)
		assert.InDelta(t, 1.0/3.0, s.MeanDir.X, 1e-12)
		assert.InDelta(t, 2.0/3.0, s.MeanDir.Y, 1e-12)
		assert.InDelta(t, 1.0, s.MeanDir.Z, 1e-12)
	})

	t.Run("empty_batch", func(t *testing.T) {
		t.Parallel()
		s := Summarize(nil)
		assert.Zero(t, s.Count)
		assert.True(t, math.IsNaN(s.MeanMag))
		assert.True(t, math.IsNaN(s.MinMag))
		assert.True(t, math.IsNaN(s.MaxMag))
		assert.Equal(t, vecmath.Vec3{}, s.MeanDir)
	})
}
