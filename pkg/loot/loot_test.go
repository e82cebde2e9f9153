package loot

import (
	"math/rand"
	"testing"
)

func TestRollRespectsWeights(t *testing.T) {
	table := Table{Entries: []Entry{
		{ID: "common", Weight: 90},
		{ID: "rare", Weight: 10},
		{ID: "never", Weight: 0},
	}}
	rng := rand.New(rand.NewSource(1))

	counts := make(map[string]int)
	const rolls = 10000
	for i := 0; i < rolls; i++ {
		id, err := table.Roll(rng)
		if err != nil {
			t.Fatalf("Roll: %v", err)
		}
		counts[id]++
	}

	if counts["never"] != 0 {
		t.Fatalf("zero-weight entry dropped %d times", counts["never"])
	}
	if counts["common"]+counts["rare"] != rolls {
		t.Fatalf("unexpected drops: %v", counts)
	}
	// 90/10 split with generous tolerance.
	if counts["common"] < rolls*80/100 || counts["common"] > rolls*98/100 {
		t.Fatalf("common dropped %d of %d, outside expected band", counts["common"], rolls)
	}
	if counts["rare"] == 0 {
		t.Fatal("rare never dropped")
	}
}

func TestRollSingleEntry(t *testing.T) {
	table := Table{Entries: []Entry{{ID: "only", Weight: 1}}}
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		id, err := table.Roll(rng)
		if err != nil {
			t.Fatalf("Roll: %v", err)
		}
		if id != "only" {
			t.Fatalf("got %q", id)
		}
	}
}

func TestRollEmptyTable(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	if _, err := (Table{}).Roll(rng); err != ErrEmptyTable {
		t.Fatalf("empty table: got %v, want ErrEmptyTable", err)
	}
	negative := Table{Entries: []Entry{{ID: "x", Weight: -5}, {ID: "y", Weight: 0}}}
	if _, err := negative.Roll(rng); err != ErrEmptyTable {
		t.Fatalf("non-positive weights: got %v, want ErrEmptyTable", err)
	}
}

func TestTotalWeight(t *testing.T) {
	table := Table{Entries: []Entry{
		{ID: "a", Weight: 3},
		{ID: "b", Weight: -2},
		{ID: "c", Weight: 7},
	}}
	if got := table.TotalWeight(); got != 10 {
		t.Fatalf("TotalWeight: got %d want 10", got)
	}
}
