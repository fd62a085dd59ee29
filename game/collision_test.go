package game

import (
	"math"
	"testing"
)

var flat = Segment{P1: Vec2{X: -1}, P2: Vec2{X: 1}}

func TestCollideFaceFromAbove(t *testing.T) {
	b := NewBall(Vec2{Y: 0.3}, 0.5)
	c, ok := b.Collide(flat)
	if !ok {
		t.Fatalf("expected contact for circle overlapping face from above")
	}
	if c.Normal != (Vec2{Y: 1}) {
		t.Fatalf("normal = %+v, want (0,1)", c.Normal)
	}
	if math.Abs(c.Penetration-0.2) > 1e-12 {
		t.Fatalf("penetration = %f, want 0.2", c.Penetration)
	}
}

func TestCollideFaceFromBelow(t *testing.T) {
	b := NewBall(Vec2{Y: -0.3}, 0.5)
	c, ok := b.Collide(flat)
	if !ok {
		t.Fatalf("expected contact for circle overlapping face from below")
	}
	if c.Normal != (Vec2{Y: -1}) {
		t.Fatalf("normal = %+v, want (0,-1)", c.Normal)
	}
	if math.Abs(c.Penetration-0.2) > 1e-12 {
		t.Fatalf("penetration = %f, want 0.2", c.Penetration)
	}
}

func TestCollideEndpointP1(t *testing.T) {
	seg := Segment{P1: Vec2{}, P2: Vec2{X: 1}}
	b := NewBall(Vec2{X: -0.3}, 0.5)
	c, ok := b.Collide(seg)
	if !ok {
		t.Fatalf("expected contact past endpoint p1")
	}
	if c.Normal != (Vec2{X: -1}) {
		t.Fatalf("normal = %+v, want (-1,0)", c.Normal)
	}
	if math.Abs(c.Penetration-0.2) > 1e-12 {
		t.Fatalf("penetration = %f, want 0.2", c.Penetration)
	}
}

func TestCollideEndpointP2(t *testing.T) {
	seg := Segment{P1: Vec2{}, P2: Vec2{X: 1}}
	b := NewBall(Vec2{X: 1.3}, 0.5)
	c, ok := b.Collide(seg)
	if !ok {
		t.Fatalf("expected contact past endpoint p2")
	}
	if c.Normal != (Vec2{X: 1}) {
		t.Fatalf("normal = %+v, want (1,0)", c.Normal)
	}
	if math.Abs(c.Penetration-0.2) > 1e-12 {
		t.Fatalf("penetration = %f, want 0.2", c.Penetration)
	}
}

func TestCollideMissBeyondEndpoint(t *testing.T) {
	seg := Segment{P1: Vec2{}, P2: Vec2{X: 1}}
	b := NewBall(Vec2{X: -0.4, Y: 0.45}, 0.5)
	if _, ok := b.Collide(seg); ok {
		t.Fatalf("expected no contact outside the endpoint cap")
	}
}

func TestCollideMissAboveFace(t *testing.T) {
	b := NewBall(Vec2{Y: 2}, 0.5)
	if _, ok := b.Collide(flat); ok {
		t.Fatalf("expected no contact for circle one diameter clear of the face")
	}
}

func TestCollideCenterOnLineNoContact(t *testing.T) {
	b := NewBall(Vec2{}, 0.5)
	if _, ok := b.Collide(flat); ok {
		t.Fatalf("expected no contact for center exactly on the line")
	}
}

func TestCollideExactTangentNoContact(t *testing.T) {
	b := NewBall(Vec2{Y: 0.5}, 0.5)
	if _, ok := b.Collide(flat); ok {
		t.Fatalf("expected no contact at exact tangency")
	}
}
