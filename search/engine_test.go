// Package search_test validates the Branch-and-Bound engine (MaxGeodes).
// Focus:
//  1. Golden yields on the two canonical blueprints (horizons 24 and 32).
//  2. Degenerate horizons (≤ 0) and option sentinels.
//  3. Monotonicity in the horizon and the initial optimistic bound.
//  4. Policy equivalence (NoBound vs SeriesBound) on a small horizon.
//  5. Determinism across repeated runs.
//  6. Soft time-budget behavior (ErrTimeLimit) without panics.
package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geodes/blueprint"
	"github.com/katalvlaran/geodes/search"
)

// -----------------------------------------
// 1) Golden yields — canonical blueprints.
// -----------------------------------------

func TestMaxGeodes_Canonical_Horizon24(t *testing.T) {
	res1, err := search.MaxGeodes(mustBlueprint1(t), search.DefaultOptions(24))
	require.NoError(t, err)
	require.Equal(t, 9, res1.Geodes)

	res2, err := search.MaxGeodes(mustBlueprint2(t), search.DefaultOptions(24))
	require.NoError(t, err)
	require.Equal(t, 12, res2.Geodes)
}

func TestMaxGeodes_Canonical_Horizon32(t *testing.T) {
	if testing.Short() {
		t.Skip("horizon-32 searches are expensive; skipped in -short mode")
	}

	res1, err := search.MaxGeodes(mustBlueprint1(t), search.DefaultOptions(32))
	require.NoError(t, err)
	require.Equal(t, 56, res1.Geodes)

	res2, err := search.MaxGeodes(mustBlueprint2(t), search.DefaultOptions(32))
	require.NoError(t, err)
	require.Equal(t, 62, res2.Geodes)
}

// ----------------------------------------------
// 2) Degenerate horizons and option sentinels.
// ----------------------------------------------

func TestMaxGeodes_HorizonZeroOrNegative(t *testing.T) {
	bp := mustBlueprint1(t)

	for _, h := range []int{0, -1, -24} {
		res, err := search.MaxGeodes(bp, search.DefaultOptions(h))
		require.NoError(t, err)
		require.Equal(t, 0, res.Geodes)
		require.Equal(t, 0, res.Explored)
	}
}

func TestMaxGeodes_UnsupportedBound(t *testing.T) {
	opts := search.DefaultOptions(24)
	opts.Bound = search.BoundPolicy(42)

	_, err := search.MaxGeodes(mustBlueprint1(t), opts)
	require.ErrorIs(t, err, search.ErrUnsupportedBound)
}

// Short horizons cannot yield geodes: the dependency chain (clay →
// obsidian → geode, each with one tick of lead time) needs many ticks.
func TestMaxGeodes_TinyHorizons_NoGeodes(t *testing.T) {
	bp := mustBlueprint1(t)

	for h := 1; h <= 8; h++ {
		res, err := search.MaxGeodes(bp, search.DefaultOptions(h))
		require.NoError(t, err)
		require.Equal(t, 0, res.Geodes, "horizon %d", h)
	}
}

// ------------------------------------------------------
// 3) Monotonicity and the initial optimistic bound.
// ------------------------------------------------------

func TestMaxGeodes_MonotoneInHorizon(t *testing.T) {
	bp := mustBlueprint1(t)

	prev := 0
	for h := 1; h <= 16; h++ {
		res, err := search.MaxGeodes(bp, search.DefaultOptions(h))
		require.NoError(t, err)
		require.GreaterOrEqual(t, res.Geodes, prev,
			"yield decreased when horizon grew to %d", h)
		prev = res.Geodes
	}
}

func TestMaxGeodes_NeverExceedsInitialBound(t *testing.T) {
	bp := mustBlueprint2(t)

	for _, h := range []int{6, 12, 18, 24} {
		res, err := search.MaxGeodes(bp, search.DefaultOptions(h))
		require.NoError(t, err)

		// From the initial state (no geodes, no geode robots) the
		// optimistic bound degenerates to the arithmetic series
		// 0+1+…+(h−1) = h·(h−1)/2.
		require.LessOrEqual(t, res.Geodes, h*(h-1)/2)
	}
}

// -------------------------------------------------------
// 4) Policy equivalence — pruning never changes results.
// -------------------------------------------------------

func TestMaxGeodes_Policies_EquivalentResults(t *testing.T) {
	// Horizon kept small so the unpruned search stays tractable.
	const horizon = 14

	cases := []struct {
		name string
		bp   func(*testing.T) blueprint.Blueprint
	}{
		{"blueprint1", mustBlueprint1},
		{"blueprint2", mustBlueprint2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bp := tc.bp(t)

			optSeries := search.DefaultOptions(horizon)

			optNo := search.DefaultOptions(horizon)
			optNo.Bound = search.NoBound

			resSeries, err := search.MaxGeodes(bp, optSeries)
			require.NoError(t, err)
			resNo, err := search.MaxGeodes(bp, optNo)
			require.NoError(t, err)

			require.Equal(t, resNo.Geodes, resSeries.Geodes)
		})
	}
}

// -------------------------------------------
// 5) Determinism — identical runs are equal.
// -------------------------------------------

func TestMaxGeodes_Determinism_Repeat4(t *testing.T) {
	bp := mustBlueprint2(t)
	opts := search.DefaultOptions(20)

	var first *search.Result
	Repeat(t, 4, func(t *testing.T) {
		res, err := search.MaxGeodes(bp, opts)
		require.NoError(t, err)
		if first == nil {
			first = &res

			return
		}
		require.Equal(t, *first, res)
	})
}

// --------------------------------------------------------------
// 6) Time budget — tiny deadline should return ErrTimeLimit.
// --------------------------------------------------------------

func TestMaxGeodes_TimeLimit_TinyBudget(t *testing.T) {
	// NoBound inflates the search tree so the deadline check is reached
	// long before the state space is exhausted.
	opts := search.DefaultOptions(24)
	opts.Bound = search.NoBound
	opts.TimeLimit = time.Nanosecond

	_, err := search.MaxGeodes(mustBlueprint1(t), opts)
	require.ErrorIs(t, err, search.ErrTimeLimit)
}
