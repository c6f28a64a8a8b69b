// Package search — Branch-and-Bound (exact search over build schedules).
//
// MaxGeodes enumerates build schedules via a stack-based Branch-and-Bound
// with deterministic expansion, an admissible optimistic bound, and a soft
// time budget.
//
// Rationale (succinct):
//  1. States are small immutable value tuples (tick, robots, inventory);
//     children are fresh copies, so frontier entries never alias, and a
//     state is its own visited-set key.
//  2. Expansion follows the transition rule: pay for at most one robot out
//     of the pre-mining inventory, mine with the robots already owned,
//     advance one tick. The idle transition is always generated.
//  3. Pruning: robot caps (blueprint.MaxUseful), the arithmetic-series
//     optimistic bound (strict inequality against the incumbent), and
//     duplicate-state elimination.
//  4. Whenever the incumbent improves, the frontier is re-filtered against
//     the new bound and re-sorted so that deeper, geode-richer states pop
//     first; tightening the incumbent early is what makes the bound bite.
//  5. Soft time limit: rare deadline checks (every 1024 pops) keep hot-path
//     overhead negligible.
//
// Complexity:
//   - Worst case exponential in Horizon (exact search); the three prunings
//     make 24–32 tick horizons practical.
//   - Per state: O(1) expansion work (fixed four robot kinds) plus one
//     amortized map insertion.
//   - Memory: O(|visited|) — bounded by the pruned state space.
package search

import (
	"sort"
	"time"

	"github.com/katalvlaran/geodes/blueprint"
)

// state is an immutable simulation snapshot. It is a comparable value
// type: never mutated after creation and used directly as a map key.
type state struct {
	tick      int
	robots    [blueprint.NumMaterials]int
	inventory [blueprint.NumMaterials]int
}

// mined returns a copy of s with one tick of production applied: every
// robot deposits one unit of its material.
func (s state) mined() state {
	var m blueprint.Material
	for m = blueprint.Ore; m < blueprint.NumMaterials; m++ {
		s.inventory[m] += s.robots[m]
	}

	return s
}

// canAfford reports whether the current inventory covers the full cost in
// every material simultaneously (no partial payment).
func (s state) canAfford(c blueprint.Cost) bool {
	var m blueprint.Material
	for m = blueprint.Ore; m < blueprint.NumMaterials; m++ {
		if s.inventory[m] < c[m] {
			return false
		}
	}

	return true
}

// engine holds all search data and policies for one invocation.
// A dedicated engine struct (instead of closures) keeps dependencies
// explicit and hot-path state predictable.
type engine struct {
	// Configuration / policy
	bp       blueprint.Blueprint
	horizon  int
	useBound bool

	// Time budget
	useDeadline bool
	deadline    time.Time
	steps       int // sparse deadline check counter

	// series[r] = 0+1+…+(r−1): geodes gained by starting one new geode
	// robot on each of r remaining ticks. Computed per invocation so that
	// concurrent searches share no state.
	series []int

	// Frontier (LIFO stack) and duplicate-elimination set.
	frontier []state
	visited  map[state]struct{}

	// Incumbent and statistics.
	best     int
	explored int
	pruned   int
}

// deadlineCheck performs a rare deadline test (every 1024 pops).
func (e *engine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&1023) != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

// bound is the optimistic geode total reachable from s: banked geodes,
// plus guaranteed production of the geode robots already owned, plus the
// best case of starting one additional geode robot every remaining tick.
// Admissible: never underestimates any completion of s.
func (e *engine) bound(s state) int {
	remaining := e.horizon - s.tick + 1

	return s.inventory[blueprint.Geode] +
		s.robots[blueprint.Geode]*remaining +
		e.series[remaining]
}

// push appends s to the frontier unless it was already explored or its
// bound cannot strictly exceed the incumbent.
func (e *engine) push(s state) {
	if _, seen := e.visited[s]; seen {
		return
	}
	if e.useBound && e.bound(s) <= e.best {
		e.pruned++

		return
	}
	e.frontier = append(e.frontier, s)
}

// expand generates all legal successors of s: the idle transition plus one
// child per affordable, uncapped robot kind. Build children are pushed
// after the idle child so the LIFO frontier explores them first.
func (e *engine) expand(s state) {
	// Children share the post-mining snapshot; affordability is judged on
	// the pre-mining inventory (construction is paid before mining).
	next := s.mined()
	next.tick = s.tick + 1

	e.push(next)

	var (
		kind  blueprint.Material
		mat   blueprint.Material
		cost  blueprint.Cost
		child state
	)
	for kind = blueprint.Ore; kind < blueprint.NumMaterials; kind++ {
		// Skip robot kinds at their consumption cap (never geode robots:
		// their cap is effectively unbounded).
		if s.robots[kind] >= e.bp.MaxUseful[kind] {
			continue
		}
		cost = e.bp.Costs[kind]
		if !s.canAfford(cost) {
			continue
		}

		child = next
		for mat = blueprint.Ore; mat < blueprint.NumMaterials; mat++ {
			child.inventory[mat] -= cost[mat]
		}
		child.robots[kind]++
		e.push(child)
	}
}

// compact re-filters the frontier against the freshly improved incumbent
// and re-sorts it so states with later ticks and larger geode banks pop
// first. Order affects only speed, never the result.
func (e *engine) compact() {
	if !e.useBound {
		return
	}

	kept := e.frontier[:0]
	var s state
	for _, s = range e.frontier {
		if e.bound(s) > e.best {
			kept = append(kept, s)
		} else {
			e.pruned++
		}
	}
	e.frontier = kept

	// Stable sort keeps runs reproducible under key ties.
	sort.SliceStable(e.frontier, func(i, j int) bool {
		ki := e.frontier[i].tick * (e.frontier[i].inventory[blueprint.Geode] + 1)
		kj := e.frontier[j].tick * (e.frontier[j].inventory[blueprint.Geode] + 1)

		return ki < kj
	})
}

// MaxGeodes is the public entrypoint: it computes the maximum number of
// geodes obtainable from bp within opts.Horizon ticks, starting with one
// ore robot and an empty inventory.
//
// Contracts:
//   - bp must come from blueprint.New/Parse (validated; caps precomputed).
//   - Horizon ≤ 0 simulates zero ticks and yields Result{Geodes: 0}.
//
// Errors:
//   - ErrUnsupportedBound for an unknown Options.Bound value.
//   - ErrTimeLimit if a positive time budget expires before exhaustion.
//
// Determinism: identical inputs yield identical Result values.
func MaxGeodes(bp blueprint.Blueprint, opts Options) (Result, error) {
	switch opts.Bound {
	case SeriesBound, NoBound:
		// ok
	default:
		return Result{}, ErrUnsupportedBound
	}

	// Zero ticks of simulation: the starting inventory holds no geodes.
	if opts.Horizon <= 0 {
		return Result{}, nil
	}

	var e engine
	e.bp = bp
	e.horizon = opts.Horizon
	e.useBound = opts.Bound == SeriesBound

	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	// series[r] = r·(r−1)/2, built incrementally up to the largest
	// possible "remaining" value (horizon, at the starting tick).
	e.series = make([]int, opts.Horizon+1)
	var r int
	for r = 1; r <= opts.Horizon; r++ {
		e.series[r] = e.series[r-1] + r - 1
	}

	e.visited = make(map[state]struct{}, 1<<12)

	start := state{tick: 1}
	start.robots[blueprint.Ore] = 1
	e.frontier = append(e.frontier, start)

	var (
		s     state
		final state
		g     int
		seen  bool
	)
	for len(e.frontier) > 0 {
		if e.deadlineCheck() {
			return Result{}, ErrTimeLimit
		}

		s = e.frontier[len(e.frontier)-1]
		e.frontier = e.frontier[:len(e.frontier)-1]

		// A state may be pushed more than once before its first pop.
		if _, seen = e.visited[s]; seen {
			continue
		}
		e.visited[s] = struct{}{}
		e.explored++

		// Terminal: one final tick of production, then score.
		if s.tick == e.horizon {
			final = s.mined()
			if g = final.inventory[blueprint.Geode]; g > e.best {
				e.best = g
				e.compact()
			}

			continue
		}

		e.expand(s)
	}

	return Result{Geodes: e.best, Explored: e.explored, Pruned: e.pruned}, nil
}
