// pkg/hexmap/map.go
package hexmap

import (
	"math/rand"

	"go-pathfinder/pkg/hexgeom"
	"go-pathfinder/pkg/pathfind"
)

// Tile is one cell of the map.
type Tile struct {
	Passable bool
}

// Map is a procedurally generated pointy-top hex field with a single entry
// and exit. Generation guarantees the two stay connected.
type Map struct {
	Tiles   map[hexgeom.Hex]Tile
	Radius  int
	Entry   hexgeom.Hex
	Exit    hexgeom.Hex
	HexSize float64
	Heights map[hexgeom.Hex]float64
}

// Generate builds a map of the given radius. The rng drives every randomized
// decision, so a fixed seed reproduces the exact same map.
func Generate(radius int, hexSize float64, rng *rand.Rand) *Map {
	tiles := make(map[hexgeom.Hex]Tile)
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			tiles[hexgeom.Hex{Q: q, R: r}] = Tile{Passable: true}
		}
	}

	entry := hexgeom.Hex{Q: -(radius + 1), R: radius - radius/2 + 1}
	exit := hexgeom.Hex{Q: radius + 1, R: -(radius - radius/2 + 1)}
	tiles[entry] = Tile{Passable: true}
	tiles[exit] = Tile{Passable: true}

	m := &Map{
		Tiles:   tiles,
		Radius:  radius,
		Entry:   entry,
		Exit:    exit,
		HexSize: hexSize,
		Heights: make(map[hexgeom.Hex]float64),
	}

	exclusion := m.exclusionZones(3)
	for _, section := range m.borderSections() {
		if sectionIntersects(section, exclusion) {
			continue
		}
		switch action := rng.Intn(10); {
		case action < 3:
			m.growSection(section)
		case action < 6:
			m.carveSection(section)
		}
	}
	m.generateHeights(rng)

	return m
}

// Contains reports whether the hex is part of the map.
func (m *Map) Contains(hex hexgeom.Hex) bool {
	_, exists := m.Tiles[hex]
	return exists
}

// IsPassable reports whether the hex exists and can be walked on.
func (m *Map) IsPassable(hex hexgeom.Hex) bool {
	if tile, exists := m.Tiles[hex]; exists {
		return tile.Passable
	}
	return false
}

// SetPassable toggles walkability of an existing hex.
func (m *Map) SetPassable(hex hexgeom.Hex, passable bool) {
	if tile, exists := m.Tiles[hex]; exists {
		tile.Passable = passable
		m.Tiles[hex] = tile
	}
}

// HexesInRange returns the on-map hexes within the given step radius.
func (m *Map) HexesInRange(center hexgeom.Hex, radius int) []hexgeom.Hex {
	var result []hexgeom.Hex
	for q := -radius; q <= radius; q++ {
		for r := max(-radius, -q-radius); r <= min(radius, -q+radius); r++ {
			hex := center.Add(hexgeom.Hex{Q: q, R: r})
			if m.Contains(hex) {
				result = append(result, hex)
			}
		}
	}
	return result
}

// Connected reports whether a path from entry to exit still exists.
func (m *Map) Connected() bool {
	result, err := pathfind.FindPath(m.Node(m.Entry), m.Node(m.Exit),
		pathfind.WithHeuristic(pathfind.HexagonalDistance))
	return err == nil && result.Found
}

func (m *Map) exclusionZones(radius int) map[hexgeom.Hex]struct{} {
	exclusion := make(map[hexgeom.Hex]struct{})
	for _, hex := range m.HexesInRange(m.Entry, radius) {
		exclusion[hex] = struct{}{}
	}
	for _, hex := range m.HexesInRange(m.Exit, radius) {
		exclusion[hex] = struct{}{}
	}
	return exclusion
}

// borderSections splits the outer ring into runs of three hexes each.
func (m *Map) borderSections() [][]hexgeom.Hex {
	var sections [][]hexgeom.Hex
	radius := m.Radius
	sides := []struct {
		coords func(int) hexgeom.Hex
		start  int
		end    int
	}{
		{func(r int) hexgeom.Hex { return hexgeom.Hex{Q: radius, R: r} }, -radius, 0},
		{func(q int) hexgeom.Hex { return hexgeom.Hex{Q: q, R: radius - q} }, 0, radius},
		{func(q int) hexgeom.Hex { return hexgeom.Hex{Q: q, R: -radius} }, 0, radius},
		{func(r int) hexgeom.Hex { return hexgeom.Hex{Q: -radius, R: r} }, 0, radius},
		{func(q int) hexgeom.Hex { return hexgeom.Hex{Q: q, R: -radius - q} }, -radius, 0},
		{func(q int) hexgeom.Hex { return hexgeom.Hex{Q: q, R: radius} }, -radius, 0},
	}

	for _, side := range sides {
		for i := side.start; i <= side.end-2; i += 3 {
			section := []hexgeom.Hex{side.coords(i), side.coords(i + 1), side.coords(i + 2)}
			valid := true
			for _, hex := range section {
				if !m.Contains(hex) {
					valid = false
					break
				}
			}
			if valid {
				sections = append(sections, section)
			}
		}
	}
	return sections
}

func sectionIntersects(section []hexgeom.Hex, exclusion map[hexgeom.Hex]struct{}) bool {
	for _, hex := range section {
		if _, excluded := exclusion[hex]; excluded {
			return true
		}
	}
	return false
}

// growSection adds the off-map neighbors of a border section.
func (m *Map) growSection(section []hexgeom.Hex) {
	for _, hex := range section {
		for _, n := range hex.Neighbors() {
			if !m.Contains(n) {
				m.Tiles[n] = Tile{Passable: true}
			}
		}
	}
}

// carveSection removes a border section, but only if entry and exit remain
// connected without it. The candidate tiles are blocked for the trial search
// and restored before the decision is applied.
func (m *Map) carveSection(section []hexgeom.Hex) {
	for _, hex := range section {
		m.SetPassable(hex, false)
	}
	connected := m.Connected()
	for _, hex := range section {
		m.SetPassable(hex, true)
	}
	if !connected {
		return
	}
	for _, hex := range section {
		delete(m.Tiles, hex)
	}
}

// generateHeights builds a smooth elevation field from a few peaks spread
// across the map, keeping the terrain flat near entry and exit. Heights feed
// the Z component of node positions, so the 3D heuristic modes see them.
func (m *Map) generateHeights(rng *rand.Rand) {
	allHexes := make([]hexgeom.Hex, 0, len(m.Tiles))
	for hex := range m.Tiles {
		allHexes = append(allHexes, hex)
	}
	if len(allHexes) == 0 {
		return
	}

	const peakCount = 3
	var peaks []hexgeom.Hex
	for attempts := 0; len(peaks) < peakCount && attempts < 200; attempts++ {
		candidate := allHexes[rng.Intn(len(allHexes))]
		if m.Entry.Distance(candidate) < 3 || m.Exit.Distance(candidate) < 3 {
			continue
		}
		if len(peaks) == 0 || farEnough(candidate, peaks, m.Radius/2) {
			peaks = append(peaks, candidate)
		}
	}

	for hex := range m.Tiles {
		height := 0.0
		for _, peak := range peaks {
			d := float64(peak.Distance(hex))
			contribution := (4.0 - d) * m.HexSize * 0.25
			if contribution > 0 {
				height += contribution
			}
		}
		if height > 0 {
			m.Heights[hex] = height
		}
	}
}

func farEnough(candidate hexgeom.Hex, centers []hexgeom.Hex, minDistance int) bool {
	for _, center := range centers {
		if candidate.Distance(center) < minDistance {
			return false
		}
	}
	return true
}
