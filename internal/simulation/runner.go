package simulation

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sazarkin/wcsim/internal/strategy"
	"github.com/sazarkin/wcsim/internal/tournament"
)

// Options configures a Monte Carlo run (spec.md §4.6).
type Options struct {
	// Iterations is the total number of tournaments to simulate.
	Iterations int
	// Seed fixes the base seed for reproducibility. Nil derives one from
	// the wall clock, and the one actually used is returned in Report.Seed
	// so the run can be replayed later.
	Seed *int64
	// Parallelism caps the number of concurrent workers. Zero or negative
	// means runtime.NumCPU(). One forces the sequential path, useful for
	// debugging and for the reference test fixtures.
	Parallelism int
	// Progress, if set, is invoked after every batch of 100 completed
	// iterations (and once more at the end) with a running total.
	Progress func(completed, total int)
}

// Report bundles a completed run's aggregate with its provenance.
type Report struct {
	RunID      uuid.UUID
	Seed       int64
	Strategy   string
	Aggregator *Aggregator
}

const progressBatch = 100

// Run executes opts.Iterations independent tournament simulations against
// t using strat, splitting the work into opts.Parallelism contiguous
// batches run on an errgroup pool (golang.org/x/sync/errgroup). Every
// simulation gets its own deterministically-seeded ChaCha8 stream (spec.md
// §4.6/§9): global iteration i uses seed+i, however the iterations are
// split, so the aggregate counts are reproducible given the same Seed and
// Iterations under any Parallelism.
func Run(ctx context.Context, t *tournament.Tournament, strat strategy.Strategy, opts Options) (Report, error) {
	iterations := opts.Iterations
	if iterations <= 0 {
		iterations = 0
	}

	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	if parallelism > iterations && iterations > 0 {
		parallelism = iterations
	}
	if parallelism < 1 {
		parallelism = 1
	}

	var baseSeed int64
	if opts.Seed != nil {
		baseSeed = *opts.Seed
	} else {
		baseSeed = time.Now().UnixNano()
	}

	agg := NewAggregator(t)

	if parallelism == 1 {
		if err := runSequential(t, strat, agg, baseSeed, iterations, opts.Progress); err != nil {
			return Report{}, err
		}
	} else if err := runParallel(ctx, t, strat, agg, baseSeed, iterations, parallelism, opts.Progress); err != nil {
		return Report{}, err
	}

	agg.Finalize()

	return Report{
		RunID:      uuid.New(),
		Seed:       baseSeed,
		Strategy:   strat.Name(),
		Aggregator: agg,
	}, nil
}

// runSequential returns the first error RunOnce produces. Per spec.md §7, a
// failed third-place backtracking search (tournament.AssignmentError) is a
// correctness bug in the pool table, not a recoverable per-iteration
// condition, so it must abort the run rather than silently shrink the
// aggregate's iteration count.
func runSequential(t *tournament.Tournament, strat strategy.Strategy, agg *Aggregator, baseSeed int64, iterations int, progress func(completed, total int)) error {
	completed := 0
	for i := 0; i < iterations; i++ {
		rng := newWorkerRNG(uint64(baseSeed) + uint64(i))
		res, err := RunOnce(t, strat, rng)
		if err != nil {
			return err
		}
		agg.Add(res)
		completed++
		reportProgress(progress, completed, iterations)
	}
	return nil
}

// runParallel splits iterations into parallelism contiguous batches (the
// first `iterations % parallelism` batches get one extra iteration), and
// runs each batch on its own errgroup worker. Each worker's seed sequence
// is baseSeed + (its first global iteration index) .. so the seed used for
// global iteration i is always baseSeed+i regardless of how the batches are
// split, matching the sequential path byte-for-byte.
func runParallel(ctx context.Context, t *tournament.Tournament, strat strategy.Strategy, agg *Aggregator, baseSeed int64, iterations, parallelism int, progress func(completed, total int)) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	batchSize := iterations / parallelism
	remainder := iterations % parallelism

	var completed atomic.Int64
	start := 0
	for w := 0; w < parallelism; w++ {
		size := batchSize
		if w < remainder {
			size++
		}
		offset := start
		n := size
		start += size

		g.Go(func() error {
			for i := 0; i < n; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				globalIdx := offset + i
				rng := newWorkerRNG(uint64(baseSeed) + uint64(globalIdx))
				res, err := RunOnce(t, strat, rng)
				if err != nil {
					return err
				}
				agg.Add(res)
				reportProgress(progress, int(completed.Add(1)), iterations)
			}
			return nil
		})
	}

	return g.Wait()
}

func reportProgress(progress func(completed, total int), completed, total int) {
	if progress == nil {
		return
	}
	if completed%progressBatch == 0 || completed == total {
		progress(completed, total)
	}
}
