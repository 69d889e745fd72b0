package gameplayutils

import "math"

// Quaternion represents a rotation as a unit quaternion. Quaternions are the
// internal rotation representation for this package (interpolation happens in
// quaternion space to avoid gimbal lock); the external representation is the
// Rotator. Like Vectors, Quaternions have value semantics, so methods return
// modified copies.
type Quaternion struct {
	X, Y, Z, W float64
}

// NewQuaternion creates a new Quaternion with the given x, y, z, and w components.
func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{x, y, z, w}
}

// NewQuaternionIdentity returns the identity (no rotation) Quaternion.
func NewQuaternionIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

// NewQuaternionFromAxisAngle returns a Quaternion rotating around the given axis by
// the angle provided (in radians). The axis should be of unit length.
func NewQuaternionFromAxisAngle(axis Vector, angle float64) Quaternion {
	s := math.Sin(angle / 2)
	return Quaternion{axis.X * s, axis.Y * s, axis.Z * s, math.Cos(angle / 2)}
}

// Dot returns the dot product of the Quaternion and the other Quaternion.
func (quat Quaternion) Dot(other Quaternion) float64 {
	return quat.X*other.X + quat.Y*other.Y + quat.Z*other.Z + quat.W*other.W
}

// Magnitude returns the length of the Quaternion.
func (quat Quaternion) Magnitude() float64 {
	return math.Sqrt(quat.Dot(quat))
}

// Normalized returns a copy of the Quaternion scaled to unit length. A zero
// Quaternion is returned unmodified.
func (quat Quaternion) Normalized() Quaternion {
	m := quat.Magnitude()
	if m < 1e-12 {
		return quat
	}
	quat.X /= m
	quat.Y /= m
	quat.Z /= m
	quat.W /= m
	return quat
}

// Invert returns the conjugate of the Quaternion, which for unit quaternions is the
// inverse rotation.
func (quat Quaternion) Invert() Quaternion {
	quat.X = -quat.X
	quat.Y = -quat.Y
	quat.Z = -quat.Z
	return quat
}

// Negated returns a copy of the Quaternion with all four components flipped. This
// represents the same rotation (quaternions double-cover rotation space).
func (quat Quaternion) Negated() Quaternion {
	quat.X = -quat.X
	quat.Y = -quat.Y
	quat.Z = -quat.Z
	quat.W = -quat.W
	return quat
}

// Mul returns the Hamilton product of the calling Quaternion and the other
// Quaternion; the result applies other first, then the calling Quaternion.
func (quat Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		X: quat.W*other.X + quat.X*other.W + quat.Y*other.Z - quat.Z*other.Y,
		Y: quat.W*other.Y - quat.X*other.Z + quat.Y*other.W + quat.Z*other.X,
		Z: quat.W*other.Z + quat.X*other.Y - quat.Y*other.X + quat.Z*other.W,
		W: quat.W*other.W - quat.X*other.X - quat.Y*other.Y - quat.Z*other.Z,
	}
}

// RotateVector rotates the given Vector by the rotation the Quaternion represents.
func (quat Quaternion) RotateVector(vec Vector) Vector {
	// q * v * q^-1, with the usual optimization through the cross product
	qv := NewVector(quat.X, quat.Y, quat.Z)
	t := qv.Cross(vec).Scale(2)
	return vec.Add(t.Scale(quat.W)).Add(qv.Cross(t))
}

// Slerp performs a spherical linear interpolation from the calling Quaternion to the
// other Quaternion by the percentage given. The interpolation takes the shortest arc
// and runs at constant angular velocity. A percentage at or below 0 returns the
// calling Quaternion; at or above 1 returns the other Quaternion.
func (quat Quaternion) Slerp(other Quaternion, percent float64) Quaternion {

	if percent <= 0 {
		return quat
	} else if percent >= 1 {
		return other
	}

	cosTheta := quat.Dot(other)

	// Take the shortest arc; the negated quaternion is the same rotation.
	if cosTheta < 0 {
		other = other.Negated()
		cosTheta = -cosTheta
	}

	// Nearly parallel quaternions make sin(theta) unstable, so fall back to a
	// normalized lerp there.
	if cosTheta > 0.9995 {
		return Quaternion{
			X: quat.X + (other.X-quat.X)*percent,
			Y: quat.Y + (other.Y-quat.Y)*percent,
			Z: quat.Z + (other.Z-quat.Z)*percent,
			W: quat.W + (other.W-quat.W)*percent,
		}.Normalized()
	}

	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)
	theta := math.Atan2(sinTheta, cosTheta)

	ratioA := math.Sin((1-percent)*theta) / sinTheta
	ratioB := math.Sin(percent*theta) / sinTheta

	return Quaternion{
		X: quat.X*ratioA + other.X*ratioB,
		Y: quat.Y*ratioA + other.Y*ratioB,
		Z: quat.Z*ratioA + other.Z*ratioB,
		W: quat.W*ratioA + other.W*ratioB,
	}

}

// Equals returns true if the two Quaternions represent rotations close enough to
// each other, accounting for the double-cover (q and -q being the same rotation).
func (quat Quaternion) Equals(other Quaternion) bool {
	return math.Abs(quat.Dot(other)) > 1-1e-8
}
