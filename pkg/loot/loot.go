// pkg/loot/loot.go
package loot

import (
	"errors"
	"math/rand"
)

// ErrEmptyTable is returned when rolling on a table with no positive weight.
var ErrEmptyTable = errors.New("loot: table has no entries with positive weight")

// Entry is one record of a loot table. Weight is the relative chance of the
// entry being picked; entries with non-positive weight never drop.
type Entry struct {
	ID     string `json:"id"`
	Weight int    `json:"weight"`
}

// Table is a weighted list of possible drops.
type Table struct {
	Entries []Entry
}

// TotalWeight sums the positive weights of the table.
func (t Table) TotalWeight() int {
	total := 0
	for _, entry := range t.Entries {
		if entry.Weight > 0 {
			total += entry.Weight
		}
	}
	return total
}

// Roll performs a weighted random pick. It sums the weights, draws a number in
// that range and returns the entry the draw lands on.
func (t Table) Roll(rng *rand.Rand) (string, error) {
	total := t.TotalWeight()
	if total <= 0 {
		return "", ErrEmptyTable
	}
	draw := rng.Intn(total)
	upto := 0
	for _, entry := range t.Entries {
		if entry.Weight <= 0 {
			continue
		}
		if upto+entry.Weight > draw {
			return entry.ID, nil
		}
		upto += entry.Weight
	}
	// Unreachable given the total check above.
	return t.Entries[len(t.Entries)-1].ID, nil
}
