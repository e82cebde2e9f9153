package geom

import (
	"math"
	"testing"
)

func TestVecOps(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 4, Y: -2, Z: 1}

	if got := a.Add(b); got != (Vec3{X: 5, Y: 0, Z: 4}) {
		t.Fatalf("Add: %+v", got)
	}
	if got := a.Sub(b); got != (Vec3{X: -3, Y: 4, Z: 2}) {
		t.Fatalf("Sub: %+v", got)
	}
	if got := a.Scale(2); got != (Vec3{X: 2, Y: 4, Z: 6}) {
		t.Fatalf("Scale: %+v", got)
	}
	if got := a.Dot(b); got != 3 {
		t.Fatalf("Dot: %v", got)
	}
}

func TestLengthAndDistance(t *testing.T) {
	v := Vec3{X: 3, Y: 4}
	if v.Length() != 5 {
		t.Fatalf("Length: %v", v.Length())
	}
	if got := (Vec3{X: 1}).DistanceTo(Vec3{X: 1, Y: 0, Z: 2}); got != 2 {
		t.Fatalf("DistanceTo: %v", got)
	}
}

func TestNormalized(t *testing.T) {
	v := Vec3{X: 0, Y: 0, Z: 9}
	n := v.Normalized()
	if n != (Vec3{Z: 1}) {
		t.Fatalf("Normalized: %+v", n)
	}
	zero := Vec3{}
	if zero.Normalized() != zero {
		t.Fatal("zero vector must normalize to itself")
	}
	diag := Vec3{X: 1, Y: 1, Z: 1}.Normalized()
	if math.Abs(diag.Length()-1) > 1e-12 {
		t.Fatalf("diagonal not unit length: %v", diag.Length())
	}
}

func TestVecLerp(t *testing.T) {
	a := Vec3{X: 0, Y: 10}
	b := Vec3{X: 10, Y: 0}
	if got := a.Lerp(b, 0); got != a {
		t.Fatalf("Lerp(0): %+v", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Fatalf("Lerp(1): %+v", got)
	}
	if got := a.Lerp(b, 0.5); got != (Vec3{X: 5, Y: 5}) {
		t.Fatalf("Lerp(0.5): %+v", got)
	}
}

func TestScalarHelpers(t *testing.T) {
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Fatal("Abs")
	}
	if Gcd(12, 18) != 6 || Gcd(7, 13) != 1 {
		t.Fatal("Gcd")
	}
	if Clamp(5, 0, 1) != 1 || Clamp(-5, 0, 1) != 0 || Clamp(0.5, 0, 1) != 0.5 {
		t.Fatal("Clamp")
	}
	if Lerp(2, 4, 0.5) != 3 {
		t.Fatal("Lerp")
	}
}
