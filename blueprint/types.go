// Package blueprint - core types, sentinel errors and construction.
//
// Design principles (matching the rest of the module):
//   - Strict sentinels: only errors declared here; no fmt.Errorf where a
//     sentinel suffices.
//   - Value semantics: Blueprint and Cost are small fixed-size arrays,
//     copied freely and safe to share across goroutines.
//   - All derived data (MaxUseful) is computed exactly once, in New.
package blueprint

import (
	"errors"
	"math"
)

// Sentinel errors for blueprint construction and parsing.
var (
	// ErrNegativeCost indicates a robot cost with a negative quantity.
	ErrNegativeCost = errors.New("blueprint: negative cost quantity")

	// ErrFreeRobot indicates a robot whose cost vector is all zeros;
	// such a configuration makes the search space degenerate.
	ErrFreeRobot = errors.New("blueprint: robot with empty cost")

	// ErrBadSyntax indicates a descriptor line that does not match the
	// canonical "Blueprint N: Each <kind> robot costs ..." shape.
	ErrBadSyntax = errors.New("blueprint: malformed descriptor line")

	// ErrUnknownMaterial indicates a material name outside the four kinds.
	ErrUnknownMaterial = errors.New("blueprint: unknown material")
)

// Material enumerates the four ordered resource kinds.
// The order is significant: each kind depends only on earlier kinds, and
// Geode is the terminal (scored) material.
type Material uint8

const (
	// Ore is the primitive input material.
	Ore Material = iota
	// Clay robots cost only ore.
	Clay
	// Obsidian robots cost ore and clay.
	Obsidian
	// Geode is the terminal material; its final count is the objective.
	Geode

	// NumMaterials is the number of material kinds.
	NumMaterials = 4
)

// materialNames maps Material values to their canonical lowercase names.
var materialNames = [NumMaterials]string{"ore", "clay", "obsidian", "geode"}

// String returns the canonical lowercase material name.
func (m Material) String() string {
	if int(m) < len(materialNames) {
		return materialNames[m]
	}

	return "unknown"
}

// MaterialFromString maps a canonical lowercase name to its Material.
// Returns ErrUnknownMaterial for anything else.
func MaterialFromString(s string) (Material, error) {
	var m Material
	for m = Ore; m < NumMaterials; m++ {
		if materialNames[m] == s {
			return m, nil
		}
	}

	return 0, ErrUnknownMaterial
}

// Cost is a per-material quantity vector: Cost[m] units of material m.
type Cost [NumMaterials]int

// Blueprint is the immutable search configuration: one build cost per
// robot kind, plus the derived per-material consumption caps.
type Blueprint struct {
	// ID identifies the blueprint (used by quality.Level).
	ID int

	// Costs[k] is the cost of building one robot that harvests material k.
	Costs [NumMaterials]Cost

	// MaxUseful[m] is the maximum number of robots of kind m worth owning:
	// the largest per-tick draw of material m across all robot costs.
	// MaxUseful[Geode] is effectively unbounded.
	MaxUseful [NumMaterials]int
}

// New constructs a validated Blueprint and precomputes MaxUseful.
//
// Contracts:
//   - All cost quantities must be non-negative (ErrNegativeCost).
//   - Every robot kind must cost something (ErrFreeRobot); a free robot
//     would let the simulation build one per tick for nothing.
//
// Complexity: O(NumMaterials²) — constant for the fixed four kinds.
func New(id int, costs [NumMaterials]Cost) (Blueprint, error) {
	var (
		robot Material
		mat   Material
		total int
	)

	// Stage 1: validation.
	for robot = Ore; robot < NumMaterials; robot++ {
		total = 0
		for mat = Ore; mat < NumMaterials; mat++ {
			if costs[robot][mat] < 0 {
				return Blueprint{}, ErrNegativeCost
			}
			total += costs[robot][mat]
		}
		if total == 0 {
			return Blueprint{}, ErrFreeRobot
		}
	}

	bp := Blueprint{ID: id, Costs: costs}

	// Stage 2: consumption caps. For each non-terminal material, no recipe
	// can consume more than MaxUseful[m] units per tick, so owning more
	// than that many robots of kind m is provably wasteful.
	for mat = Ore; mat < Geode; mat++ {
		for robot = Ore; robot < NumMaterials; robot++ {
			if costs[robot][mat] > bp.MaxUseful[mat] {
				bp.MaxUseful[mat] = costs[robot][mat]
			}
		}
	}

	// Geodes are the objective; never stop building geode robots.
	bp.MaxUseful[Geode] = math.MaxInt

	return bp, nil
}
