package hexmap

import (
	"math/rand"
	"reflect"
	"testing"

	"go-pathfinder/pkg/pathfind"
)

func TestGenerateStaysConnected(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		m := Generate(8, 19, rand.New(rand.NewSource(seed)))
		if !m.IsPassable(m.Entry) {
			t.Fatalf("seed %d: entry not passable", seed)
		}
		if !m.IsPassable(m.Exit) {
			t.Fatalf("seed %d: exit not passable", seed)
		}
		if !m.Connected() {
			t.Fatalf("seed %d: generation disconnected entry from exit", seed)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(8, 19, rand.New(rand.NewSource(7)))
	b := Generate(8, 19, rand.New(rand.NewSource(7)))
	if !reflect.DeepEqual(a.Tiles, b.Tiles) {
		t.Fatal("same seed produced different tiles")
	}
	if !reflect.DeepEqual(a.Heights, b.Heights) {
		t.Fatal("same seed produced different heights")
	}
}

func TestNodeConnections(t *testing.T) {
	m := Generate(6, 19, rand.New(rand.NewSource(3)))

	center := m.Node(m.Entry)
	for _, neighbor := range center.Connections() {
		if !m.IsPassable(neighbor.Hex()) {
			t.Fatalf("connection to impassable hex %+v", neighbor.Hex())
		}
		if m.Entry.Distance(neighbor.Hex()) != 1 {
			t.Fatalf("connection to non-adjacent hex %+v", neighbor.Hex())
		}
	}

	// Blocking a hex must remove it from its neighbors' connections.
	var blocked bool
	for _, neighbor := range center.Connections() {
		m.SetPassable(neighbor.Hex(), false)
		blocked = true
		for _, after := range center.Connections() {
			if after.Hex() == neighbor.Hex() {
				t.Fatalf("blocked hex %+v still connected", neighbor.Hex())
			}
		}
		m.SetPassable(neighbor.Hex(), true)
		break
	}
	if !blocked {
		t.Fatal("entry has no connections to exercise")
	}
}

func TestFindPathAcrossMap(t *testing.T) {
	m := Generate(8, 19, rand.New(rand.NewSource(11)))

	result, err := pathfind.FindPath(m.Node(m.Entry), m.Node(m.Exit),
		pathfind.WithHeuristic(pathfind.HexagonalDistance))
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	if !result.Found {
		t.Fatal("no path across a connected map")
	}
	if result.Path[0].Hex() != m.Entry || result.Path[len(result.Path)-1].Hex() != m.Exit {
		t.Fatalf("path endpoints wrong: %+v ... %+v", result.Path[0].Hex(), result.Path[len(result.Path)-1].Hex())
	}
	for i := 1; i < len(result.Path); i++ {
		if result.Path[i-1].Hex().Distance(result.Path[i].Hex()) != 1 {
			t.Fatalf("path not contiguous at %d", i)
		}
	}
}

func TestHeightsAreNonNegative(t *testing.T) {
	m := Generate(8, 19, rand.New(rand.NewSource(5)))
	for hex, h := range m.Heights {
		if h < 0 {
			t.Fatalf("negative height %v at %+v", h, hex)
		}
		if !m.Contains(hex) {
			t.Fatalf("height on off-map hex %+v", hex)
		}
	}
}
