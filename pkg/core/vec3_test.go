package core

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -1, 2)

	if got := a.Add(b); got != NewVec3(5, 1, 5) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Subtract(b); got != NewVec3(-3, 3, 1) {
		t.Errorf("Subtract = %v", got)
	}
	if got := a.Dot(b); got != 4-2+6 {
		t.Errorf("Dot = %v", got)
	}
	if got := a.Cross(b); got != (Vec3{2*2 - 3*(-1), 3*4 - 1*2, 1*(-1) - 2*4}) {
		t.Errorf("Cross = %v", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0)
	n := v.Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Normalize length = %v, want 1", n.Length())
	}
	if zero := (Vec3{}).Normalize(); zero != (Vec3{}) {
		t.Errorf("Normalize of zero vector = %v, want zero", zero)
	}
}

func TestVec3NearZero(t *testing.T) {
	if !(NewVec3(1e-10, -1e-9, 0)).NearZero() {
		t.Error("expected near-zero vector to report true")
	}
	if (NewVec3(0.1, 0, 0)).NearZero() {
		t.Error("expected non-trivial vector to report false")
	}
}

func TestRayAt(t *testing.T) {
	r := NewRay(NewVec3(1, 2, 3), NewVec3(1, 0, 0))
	if got := r.At(5); got != NewVec3(6, 2, 3) {
		t.Errorf("At(5) = %v", got)
	}
}

func TestRayAtTime(t *testing.T) {
	r := NewRayAt(NewVec3(0, 0, 0), NewVec3(0, 1, 0), 0.37)
	if r.Time != 0.37 {
		t.Errorf("Time = %v, want 0.37", r.Time)
	}
}
