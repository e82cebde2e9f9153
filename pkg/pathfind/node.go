// pkg/pathfind/node.go
package pathfind

import "go-pathfinder/pkg/geom"

// Node is the capability set a graph node must expose to the search. The type
// parameter is the concrete node type itself, so any graph shape (hex grid,
// square grid, waypoint graph, navmesh) can participate without adapters.
//
// Node values are used as map keys for the per-search scratch tables, so the
// concrete type must be comparable and cheap to copy. Implementations must
// only return valid nodes from Connections, and Connections must enumerate
// neighbors in a deterministic order: the tie-break between equally promising
// frontier nodes follows discovery order, and discovery order follows neighbor
// order.
type Node[T any] interface {
	comparable

	// Connections returns the nodes directly reachable from this one.
	Connections() []T

	// Position returns the node's location in world space. The Z component
	// is the height axis and is ignored by the 2D heuristic modes.
	Position() geom.Vec3
}
