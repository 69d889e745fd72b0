package gameplayutils

import (
	"fmt"
	"math"
)

// Rotator is the external orientation representation: pitch, yaw, and roll angles in
// degrees. Yaw rotates around the world up (Z) axis, pitch around Y, and roll around
// X, composed intrinsically in that order. Rotators are what gameplay code hands
// around; interpolation converts through Quaternions internally.
type Rotator struct {
	Pitch float64 // Rotation around the Y axis, in degrees
	Yaw   float64 // Rotation around the Z (up) axis, in degrees
	Roll  float64 // Rotation around the X axis, in degrees
}

// NewRotator creates a new Rotator with the given pitch, yaw, and roll in degrees.
func NewRotator(pitch, yaw, roll float64) Rotator {
	return Rotator{Pitch: pitch, Yaw: yaw, Roll: roll}
}

// Quaternion converts the Rotator into its Quaternion representation.
func (rot Rotator) Quaternion() Quaternion {

	cy := math.Cos(ToRadians(rot.Yaw) / 2)
	sy := math.Sin(ToRadians(rot.Yaw) / 2)
	cp := math.Cos(ToRadians(rot.Pitch) / 2)
	sp := math.Sin(ToRadians(rot.Pitch) / 2)
	cr := math.Cos(ToRadians(rot.Roll) / 2)
	sr := math.Sin(ToRadians(rot.Roll) / 2)

	return Quaternion{
		X: sr*cp*cy - cr*sp*sy,
		Y: cr*sp*cy + sr*cp*sy,
		Z: cr*cp*sy - sr*sp*cy,
		W: cr*cp*cy + sr*sp*sy,
	}

}

// Rotator converts the Quaternion back into the external pitch / yaw / roll
// representation, with angles in degrees. Pitch is reported in the [-90, 90] range
// and yaw and roll in [-180, 180].
func (quat Quaternion) Rotator() Rotator {

	quat = quat.Normalized()

	// Z-Y-X euler extraction; clamping guards against sinPitch drifting just past
	// +/-1 from floating point error.
	sinPitch := clamp(2*(quat.W*quat.Y-quat.Z*quat.X), -1, 1)

	return Rotator{
		Pitch: ToDegrees(math.Asin(sinPitch)),
		Yaw:   ToDegrees(math.Atan2(2*(quat.W*quat.Z+quat.X*quat.Y), 1-2*(quat.Y*quat.Y+quat.Z*quat.Z))),
		Roll:  ToDegrees(math.Atan2(2*(quat.W*quat.X+quat.Y*quat.Z), 1-2*(quat.X*quat.X+quat.Y*quat.Y))),
	}

}

// Normalized returns a copy of the Rotator with all angles wrapped into the
// (-180, 180] range.
func (rot Rotator) Normalized() Rotator {
	rot.Pitch = normalizeAngle(rot.Pitch)
	rot.Yaw = normalizeAngle(rot.Yaw)
	rot.Roll = normalizeAngle(rot.Roll)
	return rot
}

// Equals returns true if the two Rotators represent rotations close enough to each
// other. The comparison goes through Quaternions, so equivalent angle combinations
// (e.g. a 360 degree offset) compare as equal.
func (rot Rotator) Equals(other Rotator) bool {
	return rot.Quaternion().Equals(other.Quaternion())
}

// String returns a string representation of the Rotator, rounded for readability.
func (rot Rotator) String() string {
	return fmt.Sprintf("{P:%.2f Y:%.2f R:%.2f}", rot.Pitch, rot.Yaw, rot.Roll)
}

func normalizeAngle(degrees float64) float64 {
	degrees = math.Mod(degrees, 360)
	if degrees > 180 {
		degrees -= 360
	} else if degrees <= -180 {
		degrees += 360
	}
	return degrees
}
