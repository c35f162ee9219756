// Command tspbench runs the exact-TSP benchmark harness.
//
// It has two sub-commands:
//
//	sweep — run the size sweep, cross-validating the DP solver against
//	        the SAT-backed solver, and print median times per size.
//	solve — read one cost matrix (nested JSON arrays) and print the
//	        optimal cost and tour.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"

	"github.com/tourlab/exactour/bench"
	"github.com/tourlab/exactour/matrix"
	"github.com/tourlab/exactour/satsp"
	"github.com/tourlab/exactour/tsp"
)

var cmdSet *subcmd.CommandSet

type sweepFlags struct {
	MinSize    int    `subcmd:"min-size,10,smallest instance size"`
	MaxSize    int    `subcmd:"max-size,23,largest instance size"`
	Iterations int    `subcmd:"iterations,10,random instances per size"`
	Workers    int    `subcmd:"workers,0,worker pool size; 0 means GOMAXPROCS"`
	MaxCost    int64  `subcmd:"max-cost,100,largest random edge cost"`
	Seed       int64  `subcmd:"seed,0,RNG seed; 0 selects the stable default"`
	DP         bool   `subcmd:"dp,true,run the Held-Karp DP solver"`
	SAT        bool   `subcmd:"sat,false,run the SAT-backed solver"`
	SATOrdered bool   `subcmd:"sat-ordered,false,run the SAT solver with a pinned position"`
	TimeLimit  string `subcmd:"time-limit,,per-solve SAT time budget (e.g. 30s); empty means unlimited"`
	Plot       string `subcmd:"plot,,write a median-time scatter plot to this file"`
}

type solveFlags struct {
	SAT       bool   `subcmd:"sat,false,solve with the SAT-backed solver instead of DP"`
	TimeLimit string `subcmd:"time-limit,,SAT time budget (e.g. 30s); empty means unlimited"`
}

func init() {
	sweepFlagSet := subcmd.NewFlagSet()
	sweepFlagSet.MustRegisterFlagStruct(&sweepFlags{}, nil, nil)
	solveFlagSet := subcmd.NewFlagSet()
	solveFlagSet.MustRegisterFlagStruct(&solveFlags{}, nil, nil)

	sweepCmd := subcmd.NewCommand("sweep", sweepFlagSet, sweepRunner, subcmd.WithoutArguments())
	sweepCmd.Document("benchmark solvers across a range of instance sizes")

	solveCmd := subcmd.NewCommand("solve", solveFlagSet, solveRunner, subcmd.ExactlyNumArguments(1))
	solveCmd.Document("solve one cost matrix", "<matrix.json|->")

	cmdSet = subcmd.NewCommandSet(sweepCmd, solveCmd)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

// parseBudget turns an optional duration flag into a time.Duration.
func parseBudget(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}

	return time.ParseDuration(s)
}

func sweepRunner(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*sweepFlags)

	budget, err := parseBudget(fv.TimeLimit)
	if err != nil {
		return err
	}

	cfg := bench.Config{
		MinSize:    fv.MinSize,
		MaxSize:    fv.MaxSize,
		Iterations: fv.Iterations,
		Workers:    fv.Workers,
		MaxCost:    fv.MaxCost,
		Seed:       fv.Seed,
		DP:         fv.DP,
		SAT:        fv.SAT,
		SATOrdered: fv.SATOrdered,
		TimeLimit:  budget,
	}

	rep, err := bench.Sweep(ctx, cfg)
	if err != nil {
		return err
	}
	if err = rep.WriteSummary(os.Stdout); err != nil {
		return err
	}
	if fv.Plot != "" {
		if err = bench.ScatterPlot(rep, fv.Plot); err != nil {
			return err
		}
		fmt.Printf("plot written to %s\n", fv.Plot)
	}

	return nil
}

func solveRunner(_ context.Context, values interface{}, args []string) error {
	fv := values.(*solveFlags)

	dist, err := readMatrix(args[0])
	if err != nil {
		return err
	}

	var res tsp.Result
	if fv.SAT {
		budget, berr := parseBudget(fv.TimeLimit)
		if berr != nil {
			return berr
		}
		res, err = satsp.Solve(dist, satsp.Options{TimeLimit: budget})
	} else {
		res, err = tsp.Exact(dist)
	}
	if err != nil {
		return err
	}

	fmt.Printf("cost: %d\ntour: %v\n", res.Cost, res.Tour)

	return nil
}

// readMatrix loads nested JSON arrays from a file, or stdin for "-".
func readMatrix(path string) (*matrix.Dense, error) {
	var (
		r   io.Reader
		err error
	)
	if path == "-" {
		r = os.Stdin
	} else {
		f, ferr := os.Open(path)
		if ferr != nil {
			return nil, ferr
		}
		defer f.Close()
		r = f
	}

	var rows [][]int64
	if err = json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("tspbench: decoding matrix: %w", err)
	}

	return matrix.FromRows(rows)
}
