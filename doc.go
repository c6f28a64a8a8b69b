// Package geodes is an exact planner for robot-mining blueprints: given a
// production-dependency configuration and a time horizon, it computes the
// maximum amount of the terminal material (geodes) that can be harvested.
//
// 🚀 What is geodes?
//
//	A small, deterministic optimization library built around one exact
//	Branch-and-Bound engine:
//		• blueprint/ — the immutable cost configuration + textual parsing
//		• search/    — the bounded-resource Branch-and-Bound engine
//		• quality/   — quality-level and product aggregates, evaluated
//		               concurrently across independent blueprints
//		• runner/    — a thin timed harness driven by an HCL manifest
//
// ✨ Why choose geodes?
//
//   - Exact results – Branch-and-Bound with an admissible optimistic bound,
//     per-material robot caps, and duplicate-state elimination
//   - Deterministic – identical inputs always yield identical outputs,
//     regardless of exploration or scheduling order
//   - Pure Go core – the engine has no dependencies and no hidden state
//
// Quick sketch:
//
//	bp, _ := blueprint.ParseLine("Blueprint 1: Each ore robot costs 4 ore. ...")
//	res, _ := search.MaxGeodes(bp, search.DefaultOptions(24))
//	fmt.Println(res.Geodes)
//
// Dive into the per-package docs for contracts, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/geodes
package geodes
