// Package vecmath provides the fixed-dimension vector arithmetic used by the
// rigid-body simulation core. All operations are pure value-to-value functions;
// zero-magnitude inputs produce documented degenerate outputs instead of errors
// (the simulator relies on those exact values every tick).
package vecmath

import "math"

// Vec3 represents a point or direction in 3D space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// New creates a Vec3 from its three components.
func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the vector sum of v and other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns the element-wise difference v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Scale returns the vector v scaled by the scalar factor.
func (v Vec3) Scale(scalar float64) Vec3 {
	return Vec3{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar}
}

// Dot returns the inner product of v and other.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of v and other.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Mag returns the Euclidean norm of v.
func (v Vec3) Mag() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// MagSq returns the squared Euclidean norm of v.
//
// The value is computed as Mag squared rather than Dot(v, v). The two
// formulas agree for finite inputs but diverge when v carries NaN or Inf
// components; callers must not assume Dot equivalence in that case.
func (v Vec3) MagSq() float64 {
	m := v.Mag()
	return m * m
}

// Unit returns v scaled to magnitude 1.
//
// There is no zero guard: a zero-magnitude input yields NaN/Inf components.
// That degenerate output is the contract, not an error condition; callers
// that cannot tolerate it must check Mag themselves.
func (v Vec3) Unit() Vec3 {
	return v.Scale(1.0 / v.Mag())
}

// ProjectOnto returns the vector projection of v onto the direction of onto.
// When onto has zero magnitude the projection is undefined; onto is returned
// unchanged (so projecting onto the zero vector yields the zero vector).
func (v Vec3) ProjectOnto(onto Vec3) Vec3 {
	norm := onto.Mag()
	if norm == 0 {
		return onto
	}
	return v.ProjectOntoMagSq(onto, norm*norm)
}

// ProjectOntoMagSq is ProjectOnto with the squared magnitude of onto supplied
// by the caller, for call sites that already hold it. A zero magSq returns
// onto unchanged, matching ProjectOnto's degenerate policy.
func (v Vec3) ProjectOntoMagSq(onto Vec3, magSq float64) Vec3 {
	if magSq == 0 {
		return onto
	}
	return onto.Scale(v.Dot(onto) / magSq)
}

// ScalarProjectOnto returns the signed length of the projection of v onto
// the direction of onto, or 0 when onto has zero magnitude.
func (v Vec3) ScalarProjectOnto(onto Vec3) float64 {
	norm := onto.Mag()
	if norm == 0 {
		return 0
	}
	return v.Dot(onto) / norm
}

// CosineSimilarity returns the cosine of the angle between a and b.
//
// Both inputs are normalized without a zero guard, so a zero-magnitude
// input propagates NaN/Inf into the result. Guarding is the caller's
// responsibility, consistent with Unit.
func CosineSimilarity(a, b Vec3) float64 {
	return a.Unit().Dot(b.Unit())
}
