package orient

import (
	"math/rand"

	"github.com/driftline/rbcore/vecmath"
)

// Source supplies uniform variates in [0, 1). It is an injected
// capability: this package never owns, seeds or shares a generator, so
// reproducibility and thread-safety are entirely the caller's to control.
// A Source that is not internally synchronized must not be shared across
// goroutines; give each goroutine its own stream.
type Source interface {
	// Uniform returns a single float in [0, 1).
	Uniform() float64
	// UniformVec returns n independent floats in [0, 1).
	UniformVec(n int) []float64
}

// randSource adapts a math/rand generator to the Source capability.
type randSource struct {
	r *rand.Rand
}

// NewRandSource wraps r as a Source. The wrapper inherits r's
// synchronization properties: a plain rand.New result is single-goroutine.
func NewRandSource(r *rand.Rand) Source {
	return randSource{r: r}
}

func (s randSource) Uniform() float64 {
	return s.r.Float64()
}

func (s randSource) UniformVec(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = s.r.Float64()
	}
	return out
}

// RandUnitVec3 samples a direction by drawing three uniforms in
// [-0.5, 0.5) and normalizing. The exact-zero draw, which would produce
// NaN components, has probability zero and is deliberately not
// special-cased.
func RandUnitVec3(src Source) vecmath.Vec3 {
	u := src.UniformVec(3)
	v := vecmath.Vec3{X: u[0] - 0.5, Y: u[1] - 0.5, Z: u[2] - 0.5}
	return v.Unit()
}

// RandVec3 samples a vector whose magnitude is uniform in [0, maxNorm)
// and whose direction is uniform on the sphere. Note the magnitude is
// uniform in length, not uniform over the ball volume; callers that need
// volumetric uniformity must resample accordingly.
func RandVec3(maxNorm float64, src Source) vecmath.Vec3 {
	return RandUnitVec3(src).Scale(src.Uniform() * maxNorm)
}
