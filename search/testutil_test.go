// Package search_test — shared fixtures for engine tests.
//
// The two canonical blueprints below are the well-known worked example of
// the geode-cracking problem; their expected yields at horizons 24 and 32
// are fixed golden values used across the test files.
package search_test

import (
	"testing"

	"github.com/katalvlaran/geodes/blueprint"
)

// mustBlueprint1 builds the first canonical blueprint:
// ore 4o; clay 2o; obsidian 3o+14c; geode 2o+7ob.
func mustBlueprint1(t *testing.T) blueprint.Blueprint {
	t.Helper()

	var costs [blueprint.NumMaterials]blueprint.Cost
	costs[blueprint.Ore][blueprint.Ore] = 4
	costs[blueprint.Clay][blueprint.Ore] = 2
	costs[blueprint.Obsidian][blueprint.Ore] = 3
	costs[blueprint.Obsidian][blueprint.Clay] = 14
	costs[blueprint.Geode][blueprint.Ore] = 2
	costs[blueprint.Geode][blueprint.Obsidian] = 7

	bp, err := blueprint.New(1, costs)
	if err != nil {
		t.Fatalf("blueprint 1 construction failed: %v", err)
	}

	return bp
}

// mustBlueprint2 builds the second canonical blueprint:
// ore 2o; clay 3o; obsidian 3o+8c; geode 3o+12ob.
func mustBlueprint2(t *testing.T) blueprint.Blueprint {
	t.Helper()

	var costs [blueprint.NumMaterials]blueprint.Cost
	costs[blueprint.Ore][blueprint.Ore] = 2
	costs[blueprint.Clay][blueprint.Ore] = 3
	costs[blueprint.Obsidian][blueprint.Ore] = 3
	costs[blueprint.Obsidian][blueprint.Clay] = 8
	costs[blueprint.Geode][blueprint.Ore] = 3
	costs[blueprint.Geode][blueprint.Obsidian] = 12

	bp, err := blueprint.New(2, costs)
	if err != nil {
		t.Fatalf("blueprint 2 construction failed: %v", err)
	}

	return bp
}

// Repeat runs fn count times as subtests; used for determinism checks.
func Repeat(t *testing.T, count int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < count; i++ {
		ok := t.Run("", fn)
		if !ok {
			return
		}
	}
}
