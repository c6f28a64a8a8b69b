// Package quality aggregates search results across independent blueprints.
//
// Two aggregates are provided, matching the two classic scoring modes:
//
//   - SumLevels: Σ (blueprint ID × max geodes) over every blueprint — the
//     "quality level" total.
//   - ProductTopN: Π (max geodes) over the first n blueprints.
//
// Blueprints share no state, so each one is scored by an independent
// search invocation; evaluation fans out over a bounded worker pool and
// the aggregates are folded in input order, keeping results deterministic
// regardless of goroutine scheduling.
package quality
