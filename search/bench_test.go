// Package search_test — benchmarks for the Branch-and-Bound engine.
//
// Policy:
//   - Deterministic fixtures (the two canonical blueprints).
//   - Inputs built outside the timer; measure only the search core.
//   - Horizons sized to finish comfortably on CI.
package search_test

import (
	"testing"

	"github.com/katalvlaran/geodes/blueprint"
	"github.com/katalvlaran/geodes/search"
)

// benchBlueprint1 rebuilds the first canonical blueprint without *testing.T.
func benchBlueprint1(b *testing.B) blueprint.Blueprint {
	b.Helper()

	var costs [blueprint.NumMaterials]blueprint.Cost
	costs[blueprint.Ore][blueprint.Ore] = 4
	costs[blueprint.Clay][blueprint.Ore] = 2
	costs[blueprint.Obsidian][blueprint.Ore] = 3
	costs[blueprint.Obsidian][blueprint.Clay] = 14
	costs[blueprint.Geode][blueprint.Ore] = 2
	costs[blueprint.Geode][blueprint.Obsidian] = 7

	bp, err := blueprint.New(1, costs)
	if err != nil {
		b.Fatalf("blueprint construction failed: %v", err)
	}

	return bp
}

// BenchmarkMaxGeodes_Horizon24 measures the full pruned search at the
// part-one horizon.
func BenchmarkMaxGeodes_Horizon24(b *testing.B) {
	bp := benchBlueprint1(b)
	opts := search.DefaultOptions(24)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.MaxGeodes(bp, opts); err != nil {
			b.Fatalf("search failed: %v", err)
		}
	}
}

// BenchmarkMaxGeodes_NoBound_Horizon12 measures the unpruned search on a
// small horizon, isolating the cost of duplicate elimination alone.
func BenchmarkMaxGeodes_NoBound_Horizon12(b *testing.B) {
	bp := benchBlueprint1(b)
	opts := search.DefaultOptions(12)
	opts.Bound = search.NoBound

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.MaxGeodes(bp, opts); err != nil {
			b.Fatalf("search failed: %v", err)
		}
	}
}
