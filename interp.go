package gameplayutils

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SmoothRotatorInterp interpolates from the current Rotator towards the target
// Rotator, moving further along the arc the larger deltaTime and interpSpeed are.
// The interpolation happens in quaternion space (spherical, shortest-arc), so it is
// free of the gimbal artifacts naive per-angle lerping produces. The interpolation
// factor is deltaTime * interpSpeed, clamped to a 0-1 range; a factor of 0 returns
// current unchanged and a factor of 1 (or above) returns target.
//
// This is a frame-rate independent ease towards the target when called per-tick with
// the frame's delta time.
func SmoothRotatorInterp(current, target Rotator, deltaTime, interpSpeed float64) Rotator {
	percent := clamp(deltaTime*interpSpeed, 0, 1)
	return current.Quaternion().Slerp(target.Quaternion(), percent).Rotator()
}

// A RotatorTween eases from one Rotator to another over a fixed duration, using a
// gween easing function to shape the interpolation factor and quaternion slerp to
// apply it. Unlike SmoothRotatorInterp, which chases a (possibly moving) target, a
// RotatorTween plays out a fixed rotation over time.
type RotatorTween struct {
	from  Quaternion
	to    Quaternion
	tween *gween.Tween
}

// NewRotatorTween creates a tween rotating from one Rotator to another across the
// given duration (in seconds). Passing nil for the easing function defaults to
// ease.Linear, which keeps the angular velocity constant.
func NewRotatorTween(from, to Rotator, duration float64, easing ease.TweenFunc) *RotatorTween {
	if easing == nil {
		easing = ease.Linear
	}
	return &RotatorTween{
		from:  from.Quaternion(),
		to:    to.Quaternion(),
		tween: gween.New(0, 1, float32(duration), easing),
	}
}

// Update advances the tween by the given delta time (in seconds) and returns the
// current Rotator, along with whether the tween has finished. Once finished, the
// tween keeps returning the final Rotator.
func (rt *RotatorTween) Update(deltaTime float64) (Rotator, bool) {
	percent, finished := rt.tween.Update(float32(deltaTime))
	return rt.from.Slerp(rt.to, float64(percent)).Rotator(), finished
}

// A VectorTween eases a position from one Vector to another over a fixed duration,
// interpolating each component along the gween easing curve given.
type VectorTween struct {
	from  Vector
	to    Vector
	tween *gween.Tween
}

// NewVectorTween creates a tween moving from one Vector to another across the given
// duration (in seconds). Passing nil for the easing function defaults to ease.Linear.
func NewVectorTween(from, to Vector, duration float64, easing ease.TweenFunc) *VectorTween {
	if easing == nil {
		easing = ease.Linear
	}
	return &VectorTween{
		from:  from,
		to:    to,
		tween: gween.New(0, 1, float32(duration), easing),
	}
}

// Update advances the tween by the given delta time (in seconds) and returns the
// current Vector, along with whether the tween has finished.
func (vt *VectorTween) Update(deltaTime float64) (Vector, bool) {
	percent, finished := vt.tween.Update(float32(deltaTime))
	return vt.from.Lerp(vt.to, float64(percent)), finished
}
