package gameplayutils

// CalculateJumpVelocity returns the initial velocity that carries a point mass from
// start to target in exactly jumpTime seconds under idealized (drag-free) ballistic
// motion. gravityZ is the vertical component of gravitational acceleration and is
// typically negative (e.g. -980 for centimeter-scale worlds).
//
// The horizontal part of the displacement is covered at constant velocity; the
// vertical part is solved from z = z0 + v0*t + 0.5*g*t^2, rearranged for v0.
// jumpTime must be greater than zero - that's the caller's responsibility, a zero
// jumpTime divides by zero. If start and target share a horizontal position, the
// horizontal velocity is the zero vector.
func CalculateJumpVelocity(start, target Vector, gravityZ, jumpTime float64) Vector {

	displacement := target.Sub(start)
	zDiff := displacement.Z

	horizontal := displacement.Flatten()
	horizontalVelocity := horizontal.Unit().Scale(horizontal.Magnitude() / jumpTime)

	zVelocity := (zDiff - 0.5*gravityZ*jumpTime*jumpTime) / jumpTime

	return horizontalVelocity.SetZ(zVelocity)

}

// SampleJumpArc traces the ballistic arc a point mass follows when launched from
// start with the given velocity, returning steps+1 positions sampled at even time
// intervals from 0 to duration inclusive. Useful for drawing jump previews or
// checking an arc for clearance.
func SampleJumpArc(start, velocity Vector, gravityZ, duration float64, steps int) []Vector {

	if steps < 1 {
		steps = 1
	}

	points := make([]Vector, 0, steps+1)

	for i := 0; i <= steps; i++ {
		t := duration * float64(i) / float64(steps)
		points = append(points, JumpPositionAt(start, velocity, gravityZ, t))
	}

	return points

}

// JumpPositionAt returns the position of a point mass launched from start with the
// given initial velocity after t seconds of drag-free ballistic flight. Feeding the
// velocity produced by CalculateJumpVelocity back through this function reproduces
// the jump target at the solved jump time; sampling smaller times traces the arc,
// which is handy for previewing jump trajectories.
func JumpPositionAt(start, velocity Vector, gravityZ, t float64) Vector {
	pos := start.Add(velocity.Scale(t))
	pos.Z += 0.5 * gravityZ * t * t
	return pos
}
