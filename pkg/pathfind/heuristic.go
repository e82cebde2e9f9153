// pkg/pathfind/heuristic.go
package pathfind

import (
	"log"
	"math"

	"go-pathfinder/pkg/geom"
	"go-pathfinder/pkg/hexgeom"
)

// HeuristicMode selects the distance metric used both for edge costs and for
// the remaining-distance estimate.
type HeuristicMode int

const (
	// EuclideanDistance is the straight-line distance in 3D.
	EuclideanDistance HeuristicMode = iota
	// EuclideanDistance2D is the straight-line distance on the ground plane.
	EuclideanDistance2D
	// ManhattanDistance sums the absolute per-axis differences over all
	// three axes.
	ManhattanDistance
	// ManhattanDistance2D sums the absolute differences over the ground
	// plane axes only.
	ManhattanDistance2D
	// HexagonalDistance approximates the hex-tile step count between two
	// points on a pointy-top hex grid.
	HexagonalDistance
)

var modeNames = map[HeuristicMode]string{
	EuclideanDistance:   "euclidean",
	EuclideanDistance2D: "euclidean2d",
	ManhattanDistance:   "manhattan",
	ManhattanDistance2D: "manhattan2d",
	HexagonalDistance:   "hexagonal",
}

func (m HeuristicMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseMode converts a definition-file string into a HeuristicMode.
func ParseMode(name string) (HeuristicMode, bool) {
	for mode, n := range modeNames {
		if n == name {
			return mode, true
		}
	}
	return EuclideanDistance, false
}

// hexAxes is fixed for the lifetime of the process; the hex metric projects
// displacements onto these three directions.
var hexAxes = hexgeom.AxisDirections()

// Estimate returns the estimated distance between two positions under the
// given mode. Unknown modes are reported to the default logger and estimated
// as zero, degrading the search instead of aborting it.
func Estimate(a, b geom.Vec3, mode HeuristicMode) float64 {
	return estimate(log.Default(), a, b, mode)
}

func estimate(logger *log.Logger, a, b geom.Vec3, mode HeuristicMode) float64 {
	switch mode {
	case EuclideanDistance:
		return a.DistanceTo(b)
	case EuclideanDistance2D:
		dx := b.X - a.X
		dy := b.Y - a.Y
		return math.Sqrt(dx*dx + dy*dy)
	case ManhattanDistance:
		return math.Abs(b.X-a.X) + math.Abs(b.Y-a.Y) + math.Abs(b.Z-a.Z)
	case ManhattanDistance2D:
		return math.Abs(b.X-a.X) + math.Abs(b.Y-a.Y)
	case HexagonalDistance:
		return hexEstimate(a, b)
	default:
		logger.Printf("pathfind: heuristic mode %d not implemented, estimating zero", mode)
		return 0
	}
}

// hexEstimate projects the displacement onto the three hex axis directions,
// sums the absolute dot products scaled by the Euclidean distance and halves
// the total. For displacements along an axis line this equals the Euclidean
// distance; off-axis it approximates the hex step count.
func hexEstimate(a, b geom.Vec3) float64 {
	d := b.Sub(a)
	dist := d.Length()
	if dist == 0 {
		return 0
	}
	dir := d.Scale(1 / dist)
	total := 0.0
	for _, axis := range hexAxes {
		total += math.Abs(dir.Dot(axis))
	}
	return total * dist / 2
}
