package orient

import "math"

// Extractor recovers a quaternion from a rotation matrix. Two
// implementations exist with different sign conventions; the host
// simulator has call sites that depend on each, so both are kept behind
// this interface until sign-sensitive usage is consolidated. For any
// well-conditioned orthonormal input the two results agree up to a global
// sign flip, since q and -q describe the same rotation.
type Extractor interface {
	Quat(m Mat3) Quat
}

var (
	// Shepperd is the primary extractor: trace-based Shepperd's method
	// with the result negated to the simulator's sign convention.
	Shepperd Extractor = shepperd{}

	// Legacy is the older unnegated formula. Retained for call sites
	// that bake in its sign; prefer Shepperd for new code.
	Legacy Extractor = legacy{}
)

// Quat converts m using the primary (Shepperd) extractor.
func (m Mat3) Quat() Quat {
	return Shepperd.Quat(m)
}

type shepperd struct{}

// Quat implements Shepperd's method. The branch keys on the trace when it
// is positive and otherwise on the dominant diagonal entry, so the sqrt
// argument stays >= 1 and the divisor s never vanishes for any input with
// trace >= -1.
func (shepperd) Quat(m Mat3) Quat {
	trace := m.Trace()
	var q Quat

	if trace > 0 {
		s := math.Sqrt(trace + 1)
		q.W = s * 0.5
		s = 0.5 / s
		q.X = (m[2][1] - m[1][2]) * s
		q.Y = (m[0][2] - m[2][0]) * s
		q.Z = (m[1][0] - m[0][1]) * s
	} else if m[0][0] >= m[1][1] && m[0][0] >= m[2][2] {
		s := math.Sqrt(1 + m[0][0] - m[1][1] - m[2][2])
		invS := 0.5 / s
		q.X = 0.5 * s
		q.Y = (m[1][0] + m[0][1]) * invS
		q.Z = (m[2][0] + m[0][2]) * invS
		q.W = (m[2][1] - m[1][2]) * invS
	} else if m[1][1] > m[2][2] {
		s := math.Sqrt(1 + m[1][1] - m[0][0] - m[2][2])
		invS := 0.5 / s
		q.X = (m[0][1] + m[1][0]) * invS
		q.Y = 0.5 * s
		q.Z = (m[1][2] + m[2][1]) * invS
		q.W = (m[0][2] - m[2][0]) * invS
	} else {
		s := math.Sqrt(1 + m[2][2] - m[0][0] - m[1][1])
		invS := 0.5 / s
		q.X = (m[0][2] + m[2][0]) * invS
		q.Y = (m[1][2] + m[2][1]) * invS
		q.Z = 0.5 * s
		q.W = (m[1][0] - m[0][1]) * invS
	}

	return q.Neg()
}

type legacy struct{}

// Quat implements the older 0.25/s variant. Unlike the Shepperd
// extractor the result is not negated.
func (legacy) Quat(m Mat3) Quat {
	trace := m.Trace()
	var q Quat

	if trace > 0 {
		s := 0.5 / math.Sqrt(trace+1)
		q.W = 0.25 / s
		q.X = (m[2][1] - m[1][2]) * s
		q.Y = (m[0][2] - m[2][0]) * s
		q.Z = (m[1][0] - m[0][1]) * s
	} else if m[0][0] > m[1][1] && m[0][0] > m[2][2] {
		s := 2.0 * math.Sqrt(1+m[0][0]-m[1][1]-m[2][2])
		q.W = (m[2][1] - m[1][2]) / s
		q.X = 0.25 * s
		q.Y = (m[0][1] + m[1][0]) / s
		q.Z = (m[0][2] + m[2][0]) / s
	} else if m[1][1] > m[2][2] {
		s := 2.0 * math.Sqrt(1+m[1][1]-m[0][0]-m[2][2])
		q.W = (m[0][2] - m[2][0]) / s
		q.X = (m[0][1] + m[1][0]) / s
		q.Y = 0.25 * s
		q.Z = (m[1][2] + m[2][1]) / s
	} else {
		s := 2.0 * math.Sqrt(1+m[2][2]-m[0][0]-m[1][1])
		q.W = (m[1][0] - m[0][1]) / s
		q.X = (m[0][2] + m[2][0]) / s
		q.Y = (m[1][2] + m[2][1]) / s
		q.Z = 0.25 * s
	}

	return q
}
