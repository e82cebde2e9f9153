// pkg/gridmap/grid.go
package gridmap

import (
	"go-pathfinder/pkg/geom"
)

// Grid is a 4-connected square grid with optional blocked cells. It is the
// second graph shape shipped with the toolkit and the baseline used by the
// breadth-first comparison tests.
type Grid struct {
	Width    int
	Height   int
	CellSize float64
	blocked  map[[2]int]struct{}
}

// New creates an open grid of the given dimensions with unit cell size.
func New(width, height int) *Grid {
	return &Grid{
		Width:    width,
		Height:   height,
		CellSize: 1,
		blocked:  make(map[[2]int]struct{}),
	}
}

// Block marks a cell as impassable.
func (g *Grid) Block(x, y int) {
	g.blocked[[2]int{x, y}] = struct{}{}
}

// Unblock clears an impassable cell.
func (g *Grid) Unblock(x, y int) {
	delete(g.blocked, [2]int{x, y})
}

// IsOpen reports whether a cell is inside the grid and passable.
func (g *Grid) IsOpen(x, y int) bool {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return false
	}
	_, blocked := g.blocked[[2]int{x, y}]
	return !blocked
}

// Cell adapts one grid square to the pathfind node contract.
type Cell struct {
	g    *Grid
	X, Y int
}

// Node returns the search node for a cell of this grid.
func (g *Grid) Node(x, y int) Cell {
	return Cell{g: g, X: x, Y: y}
}

// cellDirections is the fixed neighbor enumeration order: east, north, west,
// south.
var cellDirections = [4][2]int{{1, 0}, {0, -1}, {-1, 0}, {0, 1}}

// Connections returns the open orthogonal neighbors in fixed order.
func (c Cell) Connections() []Cell {
	result := make([]Cell, 0, 4)
	for _, d := range cellDirections {
		nx, ny := c.X+d[0], c.Y+d[1]
		if c.g.IsOpen(nx, ny) {
			result = append(result, Cell{g: c.g, X: nx, Y: ny})
		}
	}
	return result
}

// Position returns the cell center on the ground plane.
func (c Cell) Position() geom.Vec3 {
	return geom.Vec3{
		X: float64(c.X) * c.g.CellSize,
		Y: float64(c.Y) * c.g.CellSize,
	}
}
