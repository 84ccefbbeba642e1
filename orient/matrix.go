package orient

import (
	"math"

	"github.com/driftline/rbcore/vecmath"
)

// Mat3 is a 3x3 rotation matrix, indexed [row][col]. The columns are the
// rotated basis vectors: column 0 is the front axis, column 1 the left
// axis, column 2 the up axis. Producers guarantee orthonormality for valid
// rotations; consumers do not re-verify it.
type Mat3 [3][3]float64

// Identity returns the identity rotation.
func Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Trace returns the sum of the diagonal entries.
func (m Mat3) Trace() float64 {
	return m[0][0] + m[1][1] + m[2][2]
}

// Front returns column 0, the rotated forward axis.
func (m Mat3) Front() vecmath.Vec3 {
	return vecmath.Vec3{X: m[0][0], Y: m[1][0], Z: m[2][0]}
}

// Left returns column 1, the rotated left axis.
func (m Mat3) Left() vecmath.Vec3 {
	return vecmath.Vec3{X: m[0][1], Y: m[1][1], Z: m[2][1]}
}

// Up returns column 2, the rotated up axis.
func (m Mat3) Up() vecmath.Vec3 {
	return vecmath.Vec3{X: m[0][2], Y: m[1][2], Z: m[2][2]}
}

// Mat3 builds the rotation matrix for the angles in e, with the same
// front/left/up column convention as Quat.Mat3. Composing Quat.Euler with
// this function reproduces Quat.Mat3 away from the gimbal-lock poles; the
// round trip is verified by property tests rather than assumed bit-exact.
func (e Euler) Mat3() Mat3 {
	cp := math.Cos(e.Pitch)
	cy := math.Cos(e.Yaw)
	cr := math.Cos(e.Roll)
	sp := math.Sin(e.Pitch)
	sy := math.Sin(e.Yaw)
	sr := math.Sin(e.Roll)

	var theta Mat3

	// front
	theta[0][0] = cp * cy
	theta[1][0] = cp * sy
	theta[2][0] = sp

	// left
	theta[0][1] = cy*sp*sr - cr*sy
	theta[1][1] = sy*sp*sr + cr*cy
	theta[2][1] = -cp * sr

	// up
	theta[0][2] = -cr*cy*sp - sr*sy
	theta[1][2] = -cr*sy*sp + sr*cy
	theta[2][2] = cp * cr

	return theta
}
