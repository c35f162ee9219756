// Package bench - sample collection and summary statistics.
package bench

import (
	"fmt"
	"io"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Sample is one measured solve.
type Sample struct {
	Solver   Solver        // which algorithm ran
	Size     int           // instance size (number of cities)
	Iter     int           // iteration index within the size
	Cost     int64         // reported optimal cost (zero when TimedOut)
	Tour     []int         // closed tour achieving Cost (nil when TimedOut)
	Elapsed  time.Duration // wall-clock duration of the solve
	TimedOut bool          // the SAT budget ran out; Cost is meaningless
}

// Report accumulates the samples of one sweep.
type Report struct {
	// Samples holds every measurement, sorted by (Solver, Size, Iter)
	// once the sweep finishes.
	Samples []Sample
}

func newReport() *Report { return &Report{} }

// add appends samples; callers serialize access during the sweep.
func (r *Report) add(samples ...Sample) {
	r.Samples = append(r.Samples, samples...)
}

// sort brings the samples into a deterministic order regardless of worker
// scheduling.
func (r *Report) sort() {
	sort.Slice(r.Samples, func(i, j int) bool {
		a, b := r.Samples[i], r.Samples[j]
		if a.Solver != b.Solver {
			return a.Solver < b.Solver
		}
		if a.Size != b.Size {
			return a.Size < b.Size
		}

		return a.Iter < b.Iter
	})
}

// Solvers returns the distinct solvers present, in sorted order.
func (r *Report) Solvers() []Solver {
	var (
		seen = make(map[Solver]struct{})
		out  []Solver
	)
	for _, s := range r.Samples {
		if _, ok := seen[s.Solver]; ok {
			continue
		}
		seen[s.Solver] = struct{}{}
		out = append(out, s.Solver)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Medians returns, per solver, the median solve time in seconds keyed by
// instance size. Timed-out samples are excluded: they carry no duration
// information about a completed solve.
func (r *Report) Medians(sv Solver) map[int]float64 {
	var bySize = make(map[int][]float64)
	for _, s := range r.Samples {
		if s.Solver != sv || s.TimedOut {
			continue
		}
		bySize[s.Size] = append(bySize[s.Size], s.Elapsed.Seconds())
	}

	var out = make(map[int]float64, len(bySize))
	for size, xs := range bySize {
		sort.Float64s(xs)
		out[size] = stat.Quantile(0.5, stat.Empirical, xs, nil)
	}

	return out
}

// Timeouts returns, per size, how many samples of sv ran out of budget.
func (r *Report) Timeouts(sv Solver) map[int]int {
	var out = make(map[int]int)
	for _, s := range r.Samples {
		if s.Solver == sv && s.TimedOut {
			out[s.Size]++
		}
	}

	return out
}

// WriteSummary renders a compact per-solver table of median times.
func (r *Report) WriteSummary(w io.Writer) error {
	for _, sv := range r.Solvers() {
		if _, err := fmt.Fprintf(w, "%s:\n", sv); err != nil {
			return err
		}

		var (
			medians  = r.Medians(sv)
			timeouts = r.Timeouts(sv)
			sizes    = make([]int, 0, len(medians))
		)
		for size := range medians {
			sizes = append(sizes, size)
		}
		for size := range timeouts {
			if _, ok := medians[size]; !ok {
				sizes = append(sizes, size)
			}
		}
		sort.Ints(sizes)

		for _, size := range sizes {
			if med, ok := medians[size]; ok {
				if _, err := fmt.Fprintf(w, "  size %2d: median %.6fs", size, med); err != nil {
					return err
				}
			} else {
				if _, err := fmt.Fprintf(w, "  size %2d: no completed samples", size); err != nil {
					return err
				}
			}
			if k := timeouts[size]; k > 0 {
				if _, err := fmt.Fprintf(w, " (%d timed out)", k); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}

	return nil
}
