package gameplayutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotatorQuaternionRoundTrip(t *testing.T) {

	rotators := []Rotator{
		{Pitch: 0, Yaw: 0, Roll: 0},
		{Pitch: 30, Yaw: 60, Roll: 45},
		{Pitch: -45, Yaw: 120, Roll: -90},
		{Pitch: 89, Yaw: -170, Roll: 10},
		{Pitch: -89, Yaw: 5, Roll: -5},
	}

	for _, rot := range rotators {

		back := rot.Quaternion().Rotator()

		assert.InDelta(t, rot.Pitch, back.Pitch, 1e-7, "pitch of %v", rot)
		assert.InDelta(t, rot.Yaw, back.Yaw, 1e-7, "yaw of %v", rot)
		assert.InDelta(t, rot.Roll, back.Roll, 1e-7, "roll of %v", rot)

	}

}

func TestRotatorQuaternionUnitLength(t *testing.T) {
	quat := NewRotator(25, -110, 70).Quaternion()
	assert.InDelta(t, 1, quat.Magnitude(), 1e-9)
}

func TestRotatorEqualsWrapsAround(t *testing.T) {
	assert.True(t, NewRotator(0, 180, 0).Equals(NewRotator(0, -180, 0)))
	assert.True(t, NewRotator(10, 370, 0).Equals(NewRotator(10, 10, 0)))
	assert.False(t, NewRotator(0, 90, 0).Equals(NewRotator(0, -90, 0)))
}

func TestRotatorNormalized(t *testing.T) {

	rot := NewRotator(270, 540, -225).Normalized()

	assert.InDelta(t, -90, rot.Pitch, 1e-9)
	assert.InDelta(t, 180, rot.Yaw, 1e-9)
	assert.InDelta(t, 135, rot.Roll, 1e-9)

}

func TestQuaternionYawRotatesAroundUp(t *testing.T) {

	// A 90 degree yaw turns +X into +Y in a right-handed, Z-up space.
	rotated := NewRotator(0, 90, 0).Quaternion().RotateVector(WorldRight)

	assert.InDelta(t, 0, rotated.X, 1e-9)
	assert.InDelta(t, 1, rotated.Y, 1e-9)
	assert.InDelta(t, 0, rotated.Z, 1e-9)

}
