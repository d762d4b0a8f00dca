package modopt

import (
	"context"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// HeuristicOptions configures the randomized greedy + local-search
// strategy.
type HeuristicOptions struct {
	// K is the number of unique solutions to collect.
	K int
	// AttemptMultiplier bounds the total attempt budget at K * M.
	AttemptMultiplier int
	// LocalSearchIterations caps local-search rounds per attempt.
	LocalSearchIterations int
	// Workers bounds how many attempts run concurrently. This is an
	// enrichment beyond spec.md's literal sequential attempt loop (see
	// SPEC_FULL.md §4) — set to 1 to reproduce the original's strictly
	// sequential behavior.
	Workers int
	// Logger, if non-nil, receives Trace-level attempt/dedup events and
	// an Info-level result summary for the call.
	Logger logrus.FieldLogger
}

// DefaultHeuristicOptions returns the contract defaults from spec.md §6:
// K=60, M=20, L=30, W=8.
func DefaultHeuristicOptions() HeuristicOptions {
	return HeuristicOptions{K: 60, AttemptMultiplier: 20, LocalSearchIterations: 30, Workers: 8}
}

// Optimize runs randomized greedy construction followed by local search,
// repeating until K unique solutions are collected or the attempt
// budget (K * AttemptMultiplier) is exhausted — spec.md §4.5 in full.
//
// n < 1 yields (nil, nil), spec.md §7 kind 1's silent empty result. ctx
// is checked cooperatively between attempts.
func Optimize(ctx context.Context, modules []ModuleInfo, c Constraints, opts HeuristicOptions) ([]ModuleSolution, error) {
	n := len(modules)
	if n < 1 {
		return nil, nil
	}
	def := DefaultHeuristicOptions()
	if opts.K <= 0 {
		opts.K = def.K
	}
	if opts.AttemptMultiplier <= 0 {
		opts.AttemptMultiplier = def.AttemptMultiplier
	}
	if opts.LocalSearchIterations <= 0 {
		opts.LocalSearchIterations = def.LocalSearchIterations
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = def.Workers
	}

	maxAttempts := opts.K * opts.AttemptMultiplier
	cl := newCallLogger(opts.Logger)
	cl.debugf("optimize: n=%d K=%d maxAttempts=%d workers=%d", n, opts.K, maxAttempts, workers)

	var (
		mu       sync.Mutex
		seen     = make(map[string]struct{})
		accepted []LightweightSolution
		attempts int
	)

	sem := semaphore.NewWeighted(int64(workers))
	group, gctx := errgroup.WithContext(ctx)

	// This loop launches attempts until either the target count is met
	// or the attempt budget runs out, honoring the concurrency cap. The
	// shared seen/accepted/attempts state is the only thing that
	// couldn't be parallelized away, so it's the only thing guarded by
	// mu — everything else in one attempt (greedy construction + local
	// search) touches only its own local state.
	for {
		mu.Lock()
		full := len(accepted) >= opts.K
		exhausted := attempts >= maxAttempts
		if full || exhausted {
			mu.Unlock()
			break
		}
		attempts++
		mu.Unlock()

		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		group.Go(func() error {
			defer sem.Release(1)
			if gctx.Err() != nil {
				return nil
			}
			sol, ok := greedyConstruct(modules, c)
			if !ok {
				return nil
			}
			sol = localSearchImprove(sol, modules, opts.LocalSearchIterations, c)

			key := canonicalKey(sol.Indices)
			mu.Lock()
			defer mu.Unlock()
			if len(accepted) >= opts.K {
				return nil
			}
			if _, dup := seen[key]; dup {
				cl.tracef("optimize: duplicate solution %v discarded", sol.Indices)
				return nil
			}
			seen[key] = struct{}{}
			accepted = append(accepted, sol)
			cl.tracef("optimize: accepted solution %v score=%d (%d/%d)", sol.Indices, sol.Score, len(accepted), opts.K)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil && len(accepted) == 0 {
		return nil, err
	}

	sort.Slice(accepted, func(i, j int) bool { return accepted[i].Score > accepted[j].Score })

	solutions := make([]ModuleSolution, 0, len(accepted))
	for _, sol := range accepted {
		full, err := hydrate(sol, modules)
		if err != nil {
			return nil, err
		}
		solutions = append(solutions, full)
	}
	logSolutions(cl, solutions)
	return solutions, nil
}

// canonicalKey renders a sorted index tuple as a dedup key.
func canonicalKey(indices []int) string {
	sorted := append([]int(nil), indices...)
	sort.Ints(sorted)
	var b strings.Builder
	for i, v := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// greedyConstruct builds one 4-subset: start from a uniformly random
// module, then for three more steps pick the argmax-scoring addition
// with probability 0.8, otherwise a uniform pick among the top three by
// score. Returns ok=false if the pool can't supply four distinct
// modules.
func greedyConstruct(modules []ModuleInfo, c Constraints) (LightweightSolution, bool) {
	n := len(modules)
	if n == 0 {
		return LightweightSolution{}, false
	}

	current := []int{rand.IntN(n)}
	for step := 0; step < 3; step++ {
		type scored struct {
			idx   int
			score int
		}
		var candidates []scored
		for j := 0; j < n; j++ {
			if containsInt(current, j) {
				continue
			}
			trial := append(append([]int(nil), current...), j)
			score, err := scoreByIndices(trial, modules, c)
			if err != nil {
				continue
			}
			candidates = append(candidates, scored{idx: j, score: score})
		}
		if len(candidates) == 0 {
			return LightweightSolution{}, false
		}

		if rand.Float64() < 0.8 {
			best := candidates[0]
			for _, cand := range candidates[1:] {
				if cand.score > best.score {
					best = cand
				}
			}
			current = append(current, best.idx)
			continue
		}

		sorted := append([]scored(nil), candidates...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].score > sorted[j].score })
		top := 3
		if top > len(sorted) {
			top = len(sorted)
		}
		current = append(current, sorted[rand.IntN(top)].idx)
	}

	score, err := scoreByIndices(current, modules, c)
	if err != nil {
		return LightweightSolution{}, false
	}
	return LightweightSolution{Indices: current, Score: score}, true
}

// localSearchImprove runs first-improvement local search: each round
// tries, per position, up to min(20,n) sampled replacement candidates
// and commits the first strict improvement found, moving to the next
// round. If a full round makes no improvement past the halfway point of
// the iteration budget, search stops early — spec.md §4.5 verbatim.
func localSearchImprove(sol LightweightSolution, modules []ModuleInfo, iterations int, c Constraints) LightweightSolution {
	n := len(modules)
	best := LightweightSolution{Indices: append([]int(nil), sol.Indices...), Score: sol.Score}

	sampleCount := 20
	if sampleCount > n {
		sampleCount = n
	}

	for iter := 0; iter < iterations; iter++ {
		improved := false
		for pos := range best.Indices {
			for s := 0; s < sampleCount; s++ {
				candidate := rand.IntN(n)
				if containsInt(best.Indices, candidate) {
					continue
				}
				trial := append([]int(nil), best.Indices...)
				trial[pos] = candidate
				score, err := scoreByIndices(trial, modules, c)
				if err != nil {
					continue
				}
				if score > best.Score {
					best = LightweightSolution{Indices: trial, Score: score}
					improved = true
					break
				}
			}
			if improved {
				break
			}
		}
		if !improved && iter > iterations/2 {
			break
		}
	}
	return best
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
