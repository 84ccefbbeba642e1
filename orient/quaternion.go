// Package orient converts between the three standard representations of a
// rigid-body orientation: unit quaternion, 3x3 rotation matrix, and
// pitch/yaw/roll Euler angles. The conventions are those of the host
// simulator, not the textbook ones: matrices are built from the negated
// quaternion, columns hold the front/left/up basis vectors, and the Euler
// output is (-pitch, yaw, -roll). Do not "correct" any sign here without
// checking the simulator's coordinate system first.
//
// Every conversion is a total, stateless function. Degenerate inputs
// (zero quaternion, non-orthonormal matrix) produce defined but physically
// meaningless outputs rather than errors.
package orient

import "math"

// Quat is a (w, x, y, z) quaternion. It represents a rotation when its
// norm is 1; conversions tolerate other norms as documented per function.
type Quat struct {
	W float64 `json:"w"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Euler holds pitch, yaw and roll in radians. Pitch stays within
// [-pi/2, pi/2] by construction of the quaternion conversion.
type Euler struct {
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
	Roll  float64 `json:"roll"`
}

// Norm returns the squared norm of q, i.e. the dot product of q with itself.
func (q Quat) Norm() float64 {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

// Neg returns q with all four components negated. q and Neg(q) describe
// the same rotation.
func (q Quat) Neg() Quat {
	return Quat{W: -q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Euler converts q to pitch/yaw/roll using the aerospace atan2/asin
// sequence. At gimbal lock (|sin pitch| > 1 after rounding) the pitch is
// clamped to +-pi/2. The result is reordered and negated to
// (-pitch, yaw, -roll) for the simulator's left-handed frame.
func (q Quat) Euler() Euler {
	sinrCosp := 2 * (q.W*q.X + q.Y*q.Z)
	cosrCosp := 1 - 2*(q.X*q.X+q.Y*q.Y)
	sinp := 2 * (q.W*q.Y - q.Z*q.X)
	sinyCosp := 2 * (q.W*q.Z + q.X*q.Y)
	cosyCosp := 1 - 2*(q.Y*q.Y+q.Z*q.Z)

	roll := math.Atan2(sinrCosp, cosrCosp)
	var pitch float64
	if math.Abs(sinp) > 1 {
		pitch = math.Copysign(math.Pi/2, sinp)
	} else {
		pitch = math.Asin(sinp)
	}
	yaw := math.Atan2(sinyCosp, cosyCosp)

	return Euler{Pitch: -pitch, Yaw: yaw, Roll: -roll}
}

// Mat3 builds the rotation matrix for q. The formula negates all four
// components and scales by 1/norm (the squared length, not the length),
// which leaves the rotation unchanged for unit input and degrades
// gracefully for non-unit input. A zero quaternion returns the all-zero
// matrix.
func (q Quat) Mat3() Mat3 {
	w := -q.W
	x := -q.X
	y := -q.Y
	z := -q.Z

	var theta Mat3

	norm := q.Norm()
	if norm == 0 {
		return theta
	}
	s := 1.0 / norm

	// front direction
	theta[0][0] = 1.0 - 2.0*s*(y*y+z*z)
	theta[1][0] = 2.0 * s * (x*y + z*w)
	theta[2][0] = 2.0 * s * (x*z - y*w)

	// left direction
	theta[0][1] = 2.0 * s * (x*y - z*w)
	theta[1][1] = 1.0 - 2.0*s*(x*x+z*z)
	theta[2][1] = 2.0 * s * (y*z + x*w)

	// up direction
	theta[0][2] = 2.0 * s * (x*z + y*w)
	theta[1][2] = 2.0 * s * (y*z - x*w)
	theta[2][2] = 1.0 - 2.0*s*(x*x+y*y)

	return theta
}
