package game

import "math"

// Ball is one circular body. Radius is fixed for the body's lifetime.
// Grounded means "resting on a near-horizontal surface"; it suppresses
// gravity and hard-stops the body, and is recomputed from contacts.
type Ball struct {
	Pos      Vec2
	Vel      Vec2
	Radius   float64
	Grounded bool
}

func NewBall(pos Vec2, radius float64) Ball {
	return Ball{Pos: pos, Radius: radius}
}

// Step advances the body one sub-step: semi-implicit Euler under gravity,
// then resolution against every level segment in order. Each contact is
// applied independently (positional push-out plus removal of the incoming
// normal velocity); overlapping segments can double-correct, which is an
// accepted approximation. Tangential velocity is untouched, so bodies
// slide without friction.
func (b *Ball) Step(level *Level, dt float64) {
	if !b.Grounded {
		b.Vel.Y -= Gravity * dt
		b.Pos = b.Pos.Add(b.Vel.Mul(dt))
	} else {
		b.Vel = Vec2{}
	}

	for _, seg := range level.Segments {
		c, ok := b.Collide(seg)
		if !ok {
			continue
		}
		b.Pos = b.Pos.Add(c.Normal.Mul(c.Penetration))
		relVel := c.Normal.Dot(b.Vel)
		if relVel < 0 {
			// Steep enough to stand on: within ~26 degrees of horizontal.
			if c.Normal.Y > math.Abs(c.Normal.X)*2 {
				b.Grounded = true
			}
			b.Vel = b.Vel.Sub(c.Normal.Mul(relVel))
		}
	}
}
