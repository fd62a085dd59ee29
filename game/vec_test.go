package game

import (
	"math"
	"testing"
)

func TestNormalizeZeroVectorIsZero(t *testing.T) {
	got := Vec2{}.Normalize()
	if got != (Vec2{}) {
		t.Fatalf("normalize of zero vector = %+v, want zero", got)
	}
	if math.IsNaN(got.X) || math.IsNaN(got.Y) {
		t.Fatalf("normalize of zero vector produced NaN: %+v", got)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	got := Vec2{X: 3, Y: -4}.Normalize()
	if math.Abs(got.Len()-1) > 1e-12 {
		t.Fatalf("normalized length = %f, want 1", got.Len())
	}
}

func TestRotate90(t *testing.T) {
	if got := (Vec2{X: 1}).Rotate90(); got != (Vec2{Y: 1}) {
		t.Fatalf("rotate90(1,0) = %+v, want (0,1)", got)
	}
	if got := (Vec2{Y: 1}).Rotate90(); got != (Vec2{X: -1}) {
		t.Fatalf("rotate90(0,1) = %+v, want (-1,0)", got)
	}
}

func TestRotatedQuarterTurnMatchesRotate90(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	a := v.Rotated(math.Pi / 2)
	b := v.Rotate90()
	if math.Abs(a.X-b.X) > 1e-12 || math.Abs(a.Y-b.Y) > 1e-12 {
		t.Fatalf("rotated quarter turn = %+v, rotate90 = %+v", a, b)
	}
}
