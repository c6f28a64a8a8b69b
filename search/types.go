// Package search - core types, configuration options and sentinel errors
// for the Branch-and-Bound geode engine.
package search

import (
	"errors"
	"time"
)

// Sentinel errors returned by the search engine.
var (
	// ErrTimeLimit indicates the soft time budget expired before the
	// pruned state space was exhausted.
	ErrTimeLimit = errors.New("search: time limit exceeded")

	// ErrUnsupportedBound indicates an unknown BoundPolicy value.
	ErrUnsupportedBound = errors.New("search: unsupported bound policy")
)

// BoundPolicy selects the optimistic-bound pruning rule.
//
// SeriesBound — the arithmetic-series bound (default; required for
// tractable horizons of 24+ ticks).
// NoBound     — disables bound pruning entirely (testing/benchmarking
// only; robot caps and duplicate elimination still apply).
type BoundPolicy int

const (
	// SeriesBound prunes subtrees whose optimistic geode total cannot
	// strictly exceed the incumbent.
	SeriesBound BoundPolicy = iota

	// NoBound explores every non-duplicate state. Exponentially slower;
	// exists to validate that pruning never changes results.
	NoBound
)

// Options configures one MaxGeodes invocation.
//
// Horizon   – number of ticks to simulate. Horizon ≤ 0 simulates nothing
// and yields zero geodes (no error).
// Bound     – pruning policy; SeriesBound unless testing.
// TimeLimit – optional soft deadline (0 = unlimited). Checked sparsely on
// the hot path; on expiry MaxGeodes returns ErrTimeLimit.
type Options struct {
	Horizon   int
	Bound     BoundPolicy
	TimeLimit time.Duration
}

// DefaultOptions returns Options for the given horizon with SeriesBound
// pruning and no time limit.
func DefaultOptions(horizon int) Options {
	return Options{
		Horizon:   horizon,
		Bound:     SeriesBound,
		TimeLimit: 0,
	}
}

// Result holds the outcome of one search invocation.
type Result struct {
	// Geodes is the maximum terminal-material count achievable within the
	// horizon.
	Geodes int

	// Explored counts states popped from the frontier.
	Explored int

	// Pruned counts states discarded by the optimistic bound (both at
	// generation time and during frontier compaction).
	Pruned int
}
