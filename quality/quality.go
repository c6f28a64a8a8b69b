// Package quality - blueprint scoring aggregates.
//
// Design:
//   - One search invocation per blueprint; invocations are pure and own
//     all their state, so fan-out needs no locking beyond the index feed.
//   - Results land in a pre-sized slice by input index; folding happens
//     after the pool drains, so aggregation order is fixed.
//   - The first error by input order wins (deterministic error reporting).
//
// Complexity: the searches dominate; aggregation itself is O(n).
package quality

import (
	"runtime"
	"sync"

	"github.com/katalvlaran/geodes/blueprint"
	"github.com/katalvlaran/geodes/search"
)

// Level computes the quality level of a single blueprint:
// blueprint ID × maximum geode yield under opts.
func Level(bp blueprint.Blueprint, opts search.Options) (int, error) {
	res, err := search.MaxGeodes(bp, opts)
	if err != nil {
		return 0, err
	}

	return bp.ID * res.Geodes, nil
}

// SumLevels scores every blueprint under opts and returns the sum of
// quality levels. An empty slice yields 0.
func SumLevels(bps []blueprint.Blueprint, opts search.Options) (int, error) {
	geodes, err := evalAll(bps, opts)
	if err != nil {
		return 0, err
	}

	var (
		total int
		i     int
	)
	for i = range bps {
		total += bps[i].ID * geodes[i]
	}

	return total, nil
}

// ProductTopN scores the first n blueprints under opts and returns the
// product of their geode yields. n is clamped to len(bps); the empty
// product is 1.
func ProductTopN(bps []blueprint.Blueprint, n int, opts search.Options) (int, error) {
	if n > len(bps) {
		n = len(bps)
	}
	if n < 0 {
		n = 0
	}

	geodes, err := evalAll(bps[:n], opts)
	if err != nil {
		return 0, err
	}

	product := 1
	var i int
	for i = 0; i < n; i++ {
		product *= geodes[i]
	}

	return product, nil
}

// evalAll runs one search per blueprint over a bounded worker pool and
// returns per-blueprint geode yields in input order.
func evalAll(bps []blueprint.Blueprint, opts search.Options) ([]int, error) {
	n := len(bps)
	if n == 0 {
		return nil, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}

	var (
		geodes = make([]int, n)
		errs   = make([]error, n)
		jobs   = make(chan int)
		wg     sync.WaitGroup
	)

	wg.Add(workers)
	var w int
	for w = 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := search.MaxGeodes(bps[i], opts)
				if err != nil {
					errs[i] = err

					continue
				}
				geodes[i] = res.Geodes
			}
		}()
	}

	var i int
	for i = 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	// First error by input order, not by completion order.
	for i = 0; i < n; i++ {
		if errs[i] != nil {
			return nil, errs[i]
		}
	}

	return geodes, nil
}
