// pkg/hexmap/node.go
package hexmap

import (
	"go-pathfinder/pkg/geom"
	"go-pathfinder/pkg/hexgeom"
)

// MapNode adapts one map cell to the pathfind node contract. Values are
// comparable, so two nodes for the same hex of the same map are equal.
type MapNode struct {
	m   *Map
	hex hexgeom.Hex
}

// Node returns the search node for a hex of this map.
func (m *Map) Node(hex hexgeom.Hex) MapNode {
	return MapNode{m: m, hex: hex}
}

// Hex returns the underlying cell.
func (n MapNode) Hex() hexgeom.Hex { return n.hex }

// Connections returns the passable adjacent cells in fixed direction order.
func (n MapNode) Connections() []MapNode {
	result := make([]MapNode, 0, 6)
	for _, neighbor := range n.hex.Neighbors() {
		if n.m.IsPassable(neighbor) {
			result = append(result, MapNode{m: n.m, hex: neighbor})
		}
	}
	return result
}

// Position projects the cell center onto the ground plane, with terrain
// elevation on the Z axis.
func (n MapNode) Position() geom.Vec3 {
	v := n.hex.ToVec(n.m.HexSize)
	v.Z = n.m.Heights[n.hex]
	return v
}
