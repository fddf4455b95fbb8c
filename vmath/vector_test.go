package vmath

import (
	"math"
	"testing"
)

func TestNormalizeZeroSafe(t *testing.T) {
	v := Vec2{}.Normalize()
	if !v.IsZero() {
		t.Errorf("expected zero vector, got %+v", v)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	cases := []Vec2{
		{3, 4},
		{-1, 1},
		{0, -7},
		{0.001, 0.002},
	}
	for _, c := range cases {
		n := c.Normalize()
		if math.Abs(n.Length()-1.0) > 1e-9 {
			t.Errorf("Normalize(%+v) length = %v, want 1", c, n.Length())
		}
	}
}

func TestDiagonalMatchesAxialSpeed(t *testing.T) {
	// Combined input axes must not move faster than a single axis.
	axial := Vec2{1, 0}.Normalize()
	diagonal := Vec2{1, 1}.Normalize()
	if math.Abs(axial.Length()-diagonal.Length()) > 1e-9 {
		t.Errorf("axial %v vs diagonal %v", axial.Length(), diagonal.Length())
	}
}

func TestReflectPreservesSpeed(t *testing.T) {
	v := Vec2{123, -77}
	speed := v.Length()

	rx := v.ReflectAxisX()
	if rx.X != -v.X || rx.Y != v.Y {
		t.Errorf("ReflectAxisX(%+v) = %+v", v, rx)
	}
	if math.Abs(rx.Length()-speed) > 1e-9 {
		t.Errorf("ReflectAxisX changed speed: %v -> %v", speed, rx.Length())
	}

	ry := v.ReflectAxisY()
	if ry.X != v.X || ry.Y != -v.Y {
		t.Errorf("ReflectAxisY(%+v) = %+v", v, ry)
	}
	if math.Abs(ry.Length()-speed) > 1e-9 {
		t.Errorf("ReflectAxisY changed speed: %v -> %v", speed, ry.Length())
	}
}

func TestClamp(t *testing.T) {
	v := Vec2{-5, 1000}.Clamp(0, 900, 40, 600)
	if v.X != 0 || v.Y != 600 {
		t.Errorf("Clamp = %+v, want {0 600}", v)
	}
}

func TestDistance(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{3, 4}
	if d := a.Distance(b); math.Abs(d-5) > 1e-9 {
		t.Errorf("Distance = %v, want 5", d)
	}
}
