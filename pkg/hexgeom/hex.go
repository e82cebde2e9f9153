// pkg/hexgeom/hex.go
package hexgeom

import (
	"go-pathfinder/pkg/geom"
)

// Hex is a cell of a pointy-top hexagonal grid in axial coordinates (Q, R).
type Hex struct {
	Q, R int
}

// NeighborDirections defines the 6 possible directions from a hex, starting
// from East and going counter-clockwise. The order is fixed so that neighbor
// enumeration stays deterministic.
var NeighborDirections = []Hex{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// Add returns the sum of two hexes.
func (h Hex) Add(other Hex) Hex {
	return Hex{Q: h.Q + other.Q, R: h.R + other.R}
}

// Subtract returns the difference of two hexes.
func (h Hex) Subtract(other Hex) Hex {
	return Hex{Q: h.Q - other.Q, R: h.R - other.R}
}

// Scale multiplies a hex vector by a scalar.
func (h Hex) Scale(factor int) Hex {
	return Hex{Q: h.Q * factor, R: h.R * factor}
}

// Neighbors returns the six adjacent hexes in NeighborDirections order.
func (h Hex) Neighbors() []Hex {
	result := make([]Hex, 0, 6)
	for _, d := range NeighborDirections {
		result = append(result, h.Add(d))
	}
	return result
}

// Distance returns the number of hex steps between two hexes.
func (h Hex) Distance(to Hex) int {
	dq := h.Q - to.Q
	dr := h.R - to.R
	return (geom.Abs(dq) + geom.Abs(dr) + geom.Abs(dq+dr)) / 2
}

// Lerp performs linear interpolation between two hexes, rounded to the
// nearest cell.
func (h Hex) Lerp(other Hex, t float64) Hex {
	q := float64(h.Q)*(1-t) + float64(other.Q)*t
	r := float64(h.R)*(1-t) + float64(other.R)*t
	return axialRound(q, r)
}

// LineTo returns the hexes on the straight line between two cells, both
// endpoints included.
func (h Hex) LineTo(end Hex) []Hex {
	n := h.Distance(end)
	results := make([]Hex, 0, n+1)
	for i := 0; i <= n; i++ {
		t := 1.0 / float64(max(n, 1)) * float64(i)
		results = append(results, h.Lerp(end, t))
	}
	return results
}

// ToPixel converts a hex to ground-plane pixel coordinates (pointy-top
// orientation) with the grid origin at (0, 0).
func (h Hex) ToPixel(hexSize float64) (x, y float64) {
	x = hexSize * (Sqrt3*float64(h.Q) + Sqrt3/2*float64(h.R))
	y = hexSize * (3.0 / 2.0 * float64(h.R))
	return
}

// ToVec returns the hex center as a 3D point on the ground plane (Z = 0).
func (h Hex) ToVec(hexSize float64) geom.Vec3 {
	x, y := h.ToPixel(hexSize)
	return geom.Vec3{X: x, Y: y}
}

// FromPixel converts ground-plane pixel coordinates back to the containing hex.
func FromPixel(x, y, hexSize float64) Hex {
	q := (Sqrt3/3*x - 1.0/3*y) / hexSize
	r := (2.0 / 3 * y) / hexSize
	return axialRound(q, r)
}

// AxisDirections returns the three unit vectors of the hex grid's axis lines,
// spaced 120 degrees apart on the ground plane. They are the corner directions
// the hexagonal distance metric projects displacements onto.
func AxisDirections() [3]geom.Vec3 {
	axes := [3]Hex{{Q: 1, R: 0}, {Q: 0, R: -1}, {Q: -1, R: 1}}
	var result [3]geom.Vec3
	for i, a := range axes {
		result[i] = a.ToVec(1).Normalized()
	}
	return result
}
