// Package search provides the exact Branch-and-Bound engine that computes
// the maximum number of geodes a blueprint can yield within a fixed time
// horizon.
//
// Model (one tick of simulated time):
//
//  1. Every robot owned deposits one unit of its material into inventory.
//  2. At most one new robot may be started per tick; its cost is paid out
//     of the pre-mining inventory, and it produces nothing until the next
//     tick (one tick of construction lead time).
//  3. "Build nothing" is always a legal alternative.
//
// The raw decision tree is exponential in the horizon; three prunings make
// horizons of 24-32 ticks tractable:
//
//   - Robot caps: a robot kind is skipped once its owned count reaches the
//     blueprint's MaxUseful cap (never for geode robots).
//   - Optimistic bound: banked geodes + geode robots × ticks remaining +
//     0+1+…+(remaining−1), the best case of starting one new geode robot
//     every remaining tick. Subtrees whose bound does not strictly exceed
//     the incumbent are discarded.
//   - Duplicate elimination: states are identified by the value tuple
//     (tick, robots, inventory) and never explored twice.
//
// The search is single-threaded, allocation-light, and deterministic:
// identical inputs produce identical results and statistics. Independent
// blueprints may be solved concurrently by independent invocations; each
// owns its frontier and visited set.
//
// Use MaxGeodes with DefaultOptions(horizon) for the common case.
package search
