package game

// Collision is one contact: the surface normal pointing out of the
// terrain and how far the body sank past it. Produced by one test and
// consumed immediately, never stored.
type Collision struct {
	Normal      Vec2
	Penetration float64
}

// Collide tests the ball against a single segment. The nearest feature
// picks the branch: endpoint P1, endpoint P2, or the segment face. An
// endpoint branch that finds no overlap ends the test; the face branch is
// never a fallback for a miss near a cap. The face test is two-sided, so
// a body within one radius of the line is pushed back out toward
// whichever side it is on. A center sitting exactly on the line reports
// no contact.
func (b *Ball) Collide(seg Segment) (Collision, bool) {
	v := seg.P2.Sub(seg.P1)

	if v.Dot(b.Pos.Sub(seg.P1)) < 0 {
		n := b.Pos.Sub(seg.P1)
		pen := b.Radius - n.Len()
		if pen > 0 {
			return Collision{Normal: n.Normalize(), Penetration: pen}, true
		}
		return Collision{}, false
	}
	if v.Neg().Dot(b.Pos.Sub(seg.P2)) < 0 {
		n := b.Pos.Sub(seg.P2)
		pen := b.Radius - n.Len()
		if pen > 0 {
			return Collision{Normal: n.Normalize(), Penetration: pen}, true
		}
		return Collision{}, false
	}

	n := v.Normalize().Rotate90()
	d := n.Dot(b.Pos.Sub(seg.P1))
	if d > 0 && d < b.Radius {
		return Collision{Normal: n, Penetration: b.Radius - d}, true
	}
	if d < 0 && d > -b.Radius {
		return Collision{Normal: n.Neg(), Penetration: b.Radius + d}, true
	}
	return Collision{}, false
}
