// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LootLibrary holds all loot table definitions, keyed by their ID.
var LootLibrary map[string]LootTable

// LoadScenario reads a single scenario definition file.
func LoadScenario(path string) (Scenario, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	if err := json.Unmarshal(file, &scenario); err != nil {
		return Scenario{}, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}
	if scenario.MapRadius <= 0 {
		return Scenario{}, fmt.Errorf("scenario %q: map_radius must be positive", scenario.ID)
	}
	return scenario, nil
}

// LoadLootTables reads the loot configuration file and populates LootLibrary.
func LoadLootTables(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read loot tables file: %w", err)
	}

	var tables []LootTable
	if err := json.Unmarshal(file, &tables); err != nil {
		return fmt.Errorf("failed to unmarshal loot tables: %w", err)
	}

	LootLibrary = make(map[string]LootTable)
	for _, table := range tables {
		LootLibrary[table.ID] = table
	}

	log.Printf("Loaded %d loot tables", len(LootLibrary))
	return nil
}
