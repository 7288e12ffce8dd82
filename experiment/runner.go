// SPDX-License-Identifier: MIT
// Package: epinet/experiment
//
// runner.go - sequential plan execution.

package experiment

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/epinet/builder"
	"github.com/katalvlaran/epinet/converters"
	"github.com/katalvlaran/epinet/core"
	"github.com/katalvlaran/epinet/sir"
)

// Result is the outcome of one repetition.
type Result struct {
	RunID      string        `json:"run_id"`
	Experiment string        `json:"experiment"`
	Model      Model         `json:"model"`
	Repetition int           `json:"repetition"`
	Seed       int64         `json:"seed"`
	Elapsed    time.Duration `json:"elapsed"`
	Summary    Summary       `json:"summary"`
}

// Runner executes plans. The zero value is not usable; call NewRunner.
type Runner struct {
	logger    *log.Logger
	withPaths bool
	now       func() time.Time
	newID     func() string
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the progress logger. Panics on nil.
func WithLogger(l *log.Logger) RunnerOption {
	if l == nil {
		panic("experiment: WithLogger(nil)")
	}
	return func(r *Runner) {
		r.logger = l
	}
}

// WithPathLength enables the characteristic path length measurement.
func WithPathLength(enabled bool) RunnerOption {
	return func(r *Runner) {
		r.withPaths = enabled
	}
}

// WithClock replaces the clock used for clock-derived seeds and timings.
// Panics on nil.
func WithClock(now func() time.Time) RunnerOption {
	if now == nil {
		panic("experiment: WithClock(nil)")
	}
	return func(r *Runner) {
		r.now = now
	}
}

// NewRunner returns a Runner with a silent logger, no path lengths, the
// system clock and random UUIDs.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		logger: log.New(io.Discard),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run validates plan and executes every repetition of every experiment in
// order. On the first failure it stops and returns the results collected so
// far together with the error.
func (r *Runner) Run(ctx context.Context, plan *Plan) ([]Result, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	var results []Result
	for _, exp := range plan.Experiments {
		if exp.Model == ModelFile && exp.Repetitions > 1 {
			r.logger.Warn("file experiment runs once", "experiment", exp.Name, "repetitions", exp.Repetitions)
		}
		for rep := 0; rep < exp.Runs(); rep++ {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			res, err := r.runOne(ctx, plan, exp, rep)
			if err != nil {
				return results, fmt.Errorf("experiment %q repetition %d: %w", exp.Name, rep, err)
			}
			results = append(results, res)
		}
	}

	return results, nil
}

// runOne builds and measures a single network.
func (r *Runner) runOne(ctx context.Context, plan *Plan, exp Experiment, rep int) (Result, error) {
	start := r.now()
	seed := r.seedFor(exp, rep)

	g, err := r.build(plan, exp, seed)
	if err != nil {
		return Result{}, err
	}
	summary, err := Summarize(ctx, g, r.withPaths)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		RunID:      r.newID(),
		Experiment: exp.Name,
		Model:      exp.Model,
		Repetition: rep,
		Seed:       seed,
		Elapsed:    r.now().Sub(start),
		Summary:    summary,
	}
	r.logger.Info("run complete",
		"experiment", exp.Name, "rep", rep, "run", res.RunID,
		"n", summary.Vertices, "edges", summary.Edges, "clustering", summary.AvgClustering)

	return res, nil
}

// seedFor returns Seed+rep, or a clock-derived seed when Seed is 0.
func (r *Runner) seedFor(exp Experiment, rep int) int64 {
	if exp.Model == ModelFile {
		return 0
	}
	if exp.Seed != 0 {
		return exp.Seed + int64(rep)
	}
	seed := r.now().UnixNano() + int64(rep)
	r.logger.Info("seed taken from clock", "experiment", exp.Name, "rep", rep, "seed", seed)

	return seed
}

// build produces the network for one repetition with sir.State payloads.
func (r *Runner) build(plan *Plan, exp Experiment, seed int64) (*core.Graph[sir.State], error) {
	opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithLogger(r.logger)}

	switch exp.Model {
	case ModelErdosRenyi:
		return builder.NewErdosRenyi[sir.State](exp.N, exp.P, opts...)
	case ModelWattsStrogatz:
		return builder.NewWattsStrogatz[sir.State](exp.N, exp.K, exp.Beta, opts...)
	case ModelFile:
		return converters.LoadFile[sir.State](plan.resolve(exp.File))
	default:
		return nil, fmt.Errorf("%w: model %q", ErrInvalidPlan, exp.Model)
	}
}
