package sim

import "kickup/internal/geom"

// ApplyTap converts a tap at world coordinates into the ball's new
// velocity. The vertical axis is always set to the flap impulse,
// overriding any prior vertical motion. Horizontally, the side of the
// tap relative to the ball selects a fixed force direction, blended
// with a fraction of the prior horizontal velocity. Both axes are then
// clamped to the tuning caps.
//
// A tap exactly at the ball's x applies no horizontal force.
// Out-of-range coordinates need no special casing: the sign of the
// delta picks the force and the clamps bound the result.
//
// The function has no side effects; the caller assigns the returned
// velocity to the ball.
func ApplyTap(ball Ball, tapX, tapY float64, cfg Tuning) geom.Vec2 {
	var force float64
	switch dx := tapX - ball.Position.X; {
	case dx > 0:
		force = cfg.TapForce
	case dx < 0:
		force = -cfg.TapForce
	}

	vx := ball.Velocity.X*cfg.TapRetention + force
	vy := cfg.FlapImpulse

	return geom.V(
		geom.ClampF(vx, -cfg.MaxVelX, cfg.MaxVelX),
		geom.ClampF(vy, -cfg.MaxVelY, cfg.MaxVelY),
	)
}
