// Package blueprint defines the immutable robot-cost configuration that
// drives the geodes search engine, plus parsing of its canonical textual
// descriptor.
//
// A Blueprint maps each robot kind (one per material) to the build cost of
// one robot of that kind. Materials form a dependency chain:
//
//	Ore → Clay → Obsidian → Geode
//
// Ore is the primitive input; each later material requires combinations of
// earlier ones to produce a new robot. Geode is the terminal material: its
// accumulated count is the objective the search engine maximizes.
//
// At construction, New derives per-material consumption caps (MaxUseful):
// for every non-terminal material, the largest single-recipe draw of that
// material across all robot costs. Owning more robots of a kind than that
// cap can never improve an outcome, since production cannot be spent
// faster than the most expensive recipe consumes it. Geode robots carry no
// cap — more is always better.
//
// All exported constructors validate their input and return sentinel
// errors; a Blueprint is never mutated after New returns.
package blueprint
