package pathfind

import (
	"math"
	"testing"

	"go-pathfinder/pkg/geom"
	"go-pathfinder/pkg/hexgeom"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEstimateModes(t *testing.T) {
	a := geom.Vec3{X: 1, Y: 2, Z: 3}
	b := geom.Vec3{X: 4, Y: 6, Z: 15}

	cases := []struct {
		mode HeuristicMode
		want float64
	}{
		{EuclideanDistance, 13},                  // 3-4-12 box diagonal
		{EuclideanDistance2D, 5},                 // 3-4-5 on the ground plane
		{ManhattanDistance, 3 + 4 + 12},
		{ManhattanDistance2D, 3 + 4},
	}
	for _, c := range cases {
		if got := Estimate(a, b, c.mode); !almostEqual(got, c.want) {
			t.Fatalf("%s: got %v want %v", c.mode, got, c.want)
		}
	}
}

func TestEstimate2DIgnoresHeight(t *testing.T) {
	a := geom.Vec3{X: 0, Y: 0, Z: 0}
	b := geom.Vec3{X: 3, Y: 4, Z: 100}
	if got := Estimate(a, b, EuclideanDistance2D); !almostEqual(got, 5) {
		t.Fatalf("euclidean2d: got %v want 5", got)
	}
	if got := Estimate(a, b, ManhattanDistance2D); !almostEqual(got, 7) {
		t.Fatalf("manhattan2d: got %v want 7", got)
	}
}

func TestEstimateZeroDistance(t *testing.T) {
	p := geom.Vec3{X: 7, Y: -2, Z: 1}
	for mode := EuclideanDistance; mode <= HexagonalDistance; mode++ {
		if got := Estimate(p, p, mode); got != 0 {
			t.Fatalf("%s: got %v want 0 for identical points", mode, got)
		}
	}
}

func TestUnknownModeEstimatesZero(t *testing.T) {
	a := geom.Vec3{X: 0}
	b := geom.Vec3{X: 10}
	if got := Estimate(a, b, HeuristicMode(42)); got != 0 {
		t.Fatalf("unknown mode: got %v want 0", got)
	}
}

func TestHexagonalEstimateAlongAxis(t *testing.T) {
	// For displacements along a hex axis line the metric collapses to the
	// Euclidean distance between the centers.
	const size = 10.0
	origin := hexgeom.Hex{}
	for _, dir := range []hexgeom.Hex{{Q: 1, R: 0}, {Q: 0, R: -1}, {Q: -1, R: 1}} {
		for steps := 1; steps <= 4; steps++ {
			target := dir.Scale(steps)
			a := origin.ToVec(size)
			b := target.ToVec(size)
			want := a.DistanceTo(b)
			if got := Estimate(a, b, HexagonalDistance); !almostEqual(got, want) {
				t.Fatalf("axis %+v x%d: got %v want %v", dir, steps, got, want)
			}
		}
	}
}

func TestHexagonalEstimateAdmissibleOnGrid(t *testing.T) {
	// The estimate must never exceed the cost of walking the hex grid, which
	// is step count times center spacing.
	const size = 10.0
	spacing := size * hexgeom.Sqrt3
	origin := hexgeom.Hex{}
	for q := -3; q <= 3; q++ {
		for r := -3; r <= 3; r++ {
			target := hexgeom.Hex{Q: q, R: r}
			steps := origin.Distance(target)
			got := Estimate(origin.ToVec(size), target.ToVec(size), HexagonalDistance)
			if got > float64(steps)*spacing+1e-9 {
				t.Fatalf("hex %+v: estimate %v exceeds walk cost %v", target, got, float64(steps)*spacing)
			}
		}
	}
}

func TestParseMode(t *testing.T) {
	for mode, name := range modeNames {
		parsed, ok := ParseMode(name)
		if !ok || parsed != mode {
			t.Fatalf("ParseMode(%q) = %v, %v", name, parsed, ok)
		}
	}
	if _, ok := ParseMode("chebyshev"); ok {
		t.Fatal("ParseMode accepted an unknown name")
	}
}
