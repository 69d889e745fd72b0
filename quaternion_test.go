package gameplayutils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuaternionAxisAngle(t *testing.T) {

	// Half a turn around up flips right to left.
	quat := NewQuaternionFromAxisAngle(WorldUp, math.Pi)
	assert.True(t, quat.RotateVector(WorldRight).Equals(WorldRight.Invert()))

}

func TestQuaternionMulComposes(t *testing.T) {

	yaw90 := NewQuaternionFromAxisAngle(WorldUp, math.Pi/2)

	// Two quarter turns equal a half turn.
	half := yaw90.Mul(yaw90)
	assert.True(t, half.Equals(NewQuaternionFromAxisAngle(WorldUp, math.Pi)))

}

func TestQuaternionInvertUndoesRotation(t *testing.T) {

	quat := NewRotator(30, -60, 15).Quaternion()
	vec := NewVector(2, -3, 7)

	roundTripped := quat.Invert().RotateVector(quat.RotateVector(vec))

	assert.InDelta(t, vec.X, roundTripped.X, 1e-9)
	assert.InDelta(t, vec.Y, roundTripped.Y, 1e-9)
	assert.InDelta(t, vec.Z, roundTripped.Z, 1e-9)

}

func TestQuaternionNormalized(t *testing.T) {
	assert.InDelta(t, 1, NewQuaternion(1, 2, 3, 4).Normalized().Magnitude(), 1e-9)
	assert.True(t, Quaternion{}.Normalized() == Quaternion{})
}
