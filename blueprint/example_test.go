package blueprint_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/geodes/blueprint"
)

// ExampleParseLine parses one canonical descriptor line and inspects the
// derived consumption caps.
func ExampleParseLine() {
	const line = "Blueprint 1: Each ore robot costs 4 ore. " +
		"Each clay robot costs 2 ore. " +
		"Each obsidian robot costs 3 ore and 14 clay. " +
		"Each geode robot costs 2 ore and 7 obsidian."

	bp, err := blueprint.ParseLine(line)
	if err != nil {
		log.Fatalf("parse: %v", err)
	}

	fmt.Println(bp.ID)
	fmt.Println(bp.Costs[blueprint.Geode][blueprint.Obsidian])
	fmt.Println(bp.MaxUseful[blueprint.Clay])
	// Output:
	// 1
	// 7
	// 14
}
