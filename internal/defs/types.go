// internal/defs/types.go
package defs

import "go-pathfinder/pkg/loot"

// Scenario pins down one reproducible search setup for the viewers.
type Scenario struct {
	ID          string  `json:"id"`
	MapRadius   int     `json:"map_radius"`
	Seed        int64   `json:"seed"`
	Heuristic   string  `json:"heuristic"`
	MaxDistance float64 `json:"max_distance"` // 0 means unlimited
}

// LootTable defines the reward drops rolled when a viewer search reaches the
// exit.
type LootTable struct {
	ID      string       `json:"id"`
	Entries []loot.Entry `json:"entries"`
}
