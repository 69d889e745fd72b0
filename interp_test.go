package gameplayutils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween/ease"
)

// angularDistance returns the angle in radians between the rotations the two
// Rotators represent.
func angularDistance(a, b Rotator) float64 {
	d := math.Abs(a.Quaternion().Dot(b.Quaternion()))
	return 2 * math.Acos(clamp(d, 0, 1))
}

func TestSmoothRotatorInterpEndpoints(t *testing.T) {

	current := NewRotator(10, 20, 30)
	target := NewRotator(-40, 160, 0)

	// Factor of zero (zero delta time, or zero/negative speed) returns current.
	assert.True(t, current.Equals(SmoothRotatorInterp(current, target, 0, 5)))
	assert.True(t, current.Equals(SmoothRotatorInterp(current, target, 0.1, 0)))
	assert.True(t, current.Equals(SmoothRotatorInterp(current, target, 0.1, -3)))

	// Factor at or above one saturates at the target.
	assert.True(t, target.Equals(SmoothRotatorInterp(current, target, 1, 1)))
	assert.True(t, target.Equals(SmoothRotatorInterp(current, target, 0.5, 10)))

}

func TestSmoothRotatorInterpMonotonic(t *testing.T) {

	current := NewRotator(0, 0, 0)
	target := NewRotator(45, 120, -30)

	total := angularDistance(current, target)

	prev := 0.0
	for _, factor := range []float64{0.1, 0.25, 0.5, 0.75, 0.9, 1} {

		result := SmoothRotatorInterp(current, target, factor, 1)
		travelled := angularDistance(current, result)

		assert.GreaterOrEqual(t, travelled, prev-1e-9, "factor %v", factor)
		assert.LessOrEqual(t, travelled, total+1e-9, "factor %v", factor)
		prev = travelled

	}

	assert.InDelta(t, total, prev, 1e-7)

}

func TestSmoothRotatorInterpTakesShortestArc(t *testing.T) {

	// 350 degrees of yaw is 10 degrees the other way around; halfway along the
	// shortest arc sits at -5, not 175.
	halfway := SmoothRotatorInterp(NewRotator(0, 0, 0), NewRotator(0, 350, 0), 0.5, 1)

	assert.InDelta(t, -5, halfway.Normalized().Yaw, 1e-6)

}

func TestSlerpNearlyParallel(t *testing.T) {

	a := NewRotator(0, 0, 0).Quaternion()
	b := NewRotator(0, 0.001, 0).Quaternion()

	result := a.Slerp(b, 0.5)

	assert.InDelta(t, 1, result.Magnitude(), 1e-9)
	assert.True(t, result.Rotator().Yaw >= 0 && result.Rotator().Yaw <= 0.001)

}

func TestRotatorTween(t *testing.T) {

	from := NewRotator(0, 0, 0)
	to := NewRotator(0, 90, 0)

	tween := NewRotatorTween(from, to, 1, ease.Linear)

	mid, finished := tween.Update(0.5)
	assert.False(t, finished)
	assert.InDelta(t, 45, mid.Yaw, 1e-6)

	end, finished := tween.Update(0.5)
	assert.True(t, finished)
	assert.True(t, end.Equals(to))

	// Past the end, the tween keeps reporting the final rotation.
	still, _ := tween.Update(1)
	assert.True(t, still.Equals(to))

}

func TestVectorTween(t *testing.T) {

	tween := NewVectorTween(NewVector(0, 0, 0), NewVector(10, -20, 40), 2, nil)

	mid, finished := tween.Update(1)
	assert.False(t, finished)
	assert.True(t, mid.Equals(NewVector(5, -10, 20)))

	end, finished := tween.Update(1)
	assert.True(t, finished)
	assert.True(t, end.Equals(NewVector(10, -20, 40)))

}
