// Package bench - sweep configuration and the worker-pool runner.
package bench

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"cloudeng.io/sync/errgroup"

	"github.com/tourlab/exactour/matrix"
	"github.com/tourlab/exactour/satsp"
	"github.com/tourlab/exactour/tsp"
)

var (
	// ErrBadConfig is returned for an inconsistent sweep configuration.
	ErrBadConfig = errors.New("bench: invalid sweep configuration")

	// ErrDisagreement is returned when two solvers report different
	// optimal costs for the same instance. It always indicates a solver
	// bug, never a property of the instance.
	ErrDisagreement = errors.New("bench: solvers disagree on optimal cost")

	// ErrBadTour is returned when a solver's reported cost does not
	// match the tour it returned, or the tour is not a valid cycle.
	ErrBadTour = errors.New("bench: reported cost does not match returned tour")
)

// Solver names a benchmarked algorithm.
type Solver string

const (
	// SolverDP is the Held–Karp dynamic-programming solver.
	SolverDP Solver = "dp"
	// SolverSAT is the pseudo-Boolean solver, unconstrained.
	SolverSAT Solver = "sat"
	// SolverSATOrdered is the pseudo-Boolean solver with one pinned
	// position, exercising the required-order feature the DP core
	// does not have.
	SolverSATOrdered Solver = "sat-ordered"
)

// Config describes one sweep.
type Config struct {
	// MinSize and MaxSize bound the instance sizes, inclusive.
	MinSize int
	MaxSize int
	// Iterations is the number of random instances per size.
	Iterations int
	// Workers bounds the worker pool; <=0 means GOMAXPROCS.
	Workers int
	// MaxCost bounds random edge costs; <=0 defaults to 100.
	MaxCost int64
	// Seed feeds the per-job RNG streams; 0 selects the stable default.
	Seed int64
	// DP, SAT, SATOrdered enable the respective solvers.
	DP         bool
	SAT        bool
	SATOrdered bool
	// TimeLimit is handed to the SAT solver per solve; 0 means unlimited.
	TimeLimit time.Duration
}

// validate normalizes defaults and rejects inconsistent configurations.
func (c *Config) validate() error {
	if c.MinSize < 1 || c.MaxSize < c.MinSize || c.Iterations < 1 {
		return ErrBadConfig
	}
	if !c.DP && !c.SAT && !c.SATOrdered {
		return ErrBadConfig
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.MaxCost <= 0 {
		c.MaxCost = 100
	}

	return nil
}

// job is one (size, iteration) cell of the sweep grid.
type job struct {
	size int
	iter int
}

// stream derives the RNG stream identifier for this job. It depends only
// on the grid cell, never on worker scheduling, so sweeps are reproducible
// at any worker count.
func (j job) stream() uint64 { return uint64(j.size)<<32 | uint64(j.iter) }

// Sweep runs the configured grid on a bounded worker pool and returns the
// collected samples. The context cancels job pickup between solves; a
// running solve is not interruptible (see the tsp and satsp contracts).
func Sweep(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var (
		jobs = make(chan job)
		rep  = newReport()
		mu   sync.Mutex // guards rep during collection
	)

	g, ctx := errgroup.WithContext(ctx)

	// Producer: enumerate the grid.
	g.Go(func() error {
		defer close(jobs)
		for size := cfg.MinSize; size <= cfg.MaxSize; size++ {
			for iter := 0; iter < cfg.Iterations; iter++ {
				select {
				case jobs <- job{size: size, iter: iter}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}

		return nil
	})

	// Workers: one goroutine each, pulling jobs until the channel drains.
	for w := 0; w < cfg.Workers; w++ {
		g.Go(func() error {
			for {
				select {
				case j, ok := <-jobs:
					if !ok {
						return nil
					}
					samples, err := runJob(cfg, j)
					if err != nil {
						return err
					}
					mu.Lock()
					rep.add(samples...)
					mu.Unlock()
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	rep.sort()

	return rep, nil
}

// runJob generates the instance for one grid cell and runs every enabled
// solver on it, cross-checking the reported optima.
func runJob(cfg Config, j job) ([]Sample, error) {
	dist, err := tsp.Random(j.size, cfg.MaxCost, tsp.DeriveRNG(cfg.Seed, j.stream()))
	if err != nil {
		return nil, err
	}

	var (
		out     []Sample
		dpCost  int64
		satCost int64
		dpRun   bool
		satRun  bool
	)

	if cfg.DP {
		s, derr := timeSolve(SolverDP, j, func() (tsp.Result, error) {
			return tsp.Exact(dist)
		})
		if derr != nil {
			return nil, derr
		}
		if derr = verifyTour(dist, s); derr != nil {
			return nil, derr
		}
		dpCost, dpRun = s.Cost, !s.TimedOut
		out = append(out, s)
	}

	if cfg.SAT {
		s, serr := timeSolve(SolverSAT, j, func() (tsp.Result, error) {
			return satsp.Solve(dist, satsp.Options{TimeLimit: cfg.TimeLimit})
		})
		if serr != nil {
			return nil, serr
		}
		if serr = verifyTour(dist, s); serr != nil {
			return nil, serr
		}
		satCost, satRun = s.Cost, !s.TimedOut
		out = append(out, s)
	}

	if cfg.SATOrdered {
		s, serr := timeSolve(SolverSATOrdered, j, func() (tsp.Result, error) {
			return satsp.Solve(dist, satsp.Options{
				TimeLimit: cfg.TimeLimit,
				Required:  requiredFor(j.size),
			})
		})
		if serr != nil {
			return nil, serr
		}
		if serr = verifyTour(dist, s); serr != nil {
			return nil, serr
		}
		// The pinned optimum legitimately differs from the free one;
		// no cost cross-check here.
		out = append(out, s)
	}

	// Cross-validation: both exact solvers finished ⇒ identical optima.
	if dpRun && satRun && dpCost != satCost {
		return nil, fmt.Errorf("%w: size=%d iter=%d dp=%d sat=%d",
			ErrDisagreement, j.size, j.iter, dpCost, satCost)
	}

	return out, nil
}

// timeSolve measures one solve, folding the solver's timeout sentinel
// into the sample instead of failing the job.
func timeSolve(sv Solver, j job, run func() (tsp.Result, error)) (Sample, error) {
	var start = time.Now()
	res, err := run()
	var elapsed = time.Since(start)

	switch {
	case errors.Is(err, satsp.ErrTimeLimit):
		return Sample{Solver: sv, Size: j.size, Iter: j.iter, Elapsed: elapsed, TimedOut: true}, nil
	case err != nil:
		return Sample{}, err
	}

	// The sample keeps its own copy so later report consumers cannot
	// alias a solver-owned slice.
	return Sample{
		Solver:  sv,
		Size:    j.size,
		Iter:    j.iter,
		Cost:    res.Cost,
		Tour:    tsp.CopyTour(res.Tour),
		Elapsed: elapsed,
	}, nil
}

// verifyTour round-trips a completed sample against its instance: the
// tour must be a valid start-anchored cycle and its recomputed edge sum
// must equal the reported optimum. Timed-out samples carry no tour.
func verifyTour(dist *matrix.Dense, s Sample) error {
	if s.TimedOut {
		return nil
	}
	if err := tsp.ValidateTour(s.Tour, s.Size, tsp.StartVertex); err != nil {
		return fmt.Errorf("%w: %s size=%d iter=%d: %v", ErrBadTour, s.Solver, s.Size, s.Iter, err)
	}

	sum, err := tsp.TourCost(dist, s.Tour)
	if err != nil {
		return err
	}
	if sum != s.Cost {
		return fmt.Errorf("%w: %s size=%d iter=%d reported %d, edges sum to %d",
			ErrBadTour, s.Solver, s.Size, s.Iter, s.Cost, sum)
	}

	return nil
}

// requiredFor mirrors the canonical ordered-solver benchmark constraint:
// pin the highest-numbered city to the first slot after the start. A
// single-city instance has nothing to pin beyond the start itself.
func requiredFor(size int) map[int]int {
	if size <= 1 {
		return map[int]int{0: 0}
	}

	return map[int]int{size - 1: 1}
}
