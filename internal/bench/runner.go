package bench

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/yndnr/tabsample/internal/config"
	"github.com/yndnr/tabsample/internal/telemetry/logger"
	"github.com/yndnr/tabsample/pkg/sampler"
)

// ctxCheckEvery is how many samples run between cancellation checks.
const ctxCheckEvery = 1024

// Result is the outcome for one fixture.
type Result struct {
	Shape    string `json:"shape" yaml:"shape"`
	Size     int    `json:"size" yaml:"size"`
	Verdict  string `json:"verdict" yaml:"verdict"`
	Decision string `json:"decision" yaml:"decision"`
	Errors   int    `json:"errors" yaml:"errors"`
	Stats    Stats  `json:"stats" yaml:"stats"`
}

// Report is the outcome of a bench run.
type Report struct {
	RunID      string        `json:"run_id" yaml:"run_id"`
	StartedAt  time.Time     `json:"started_at" yaml:"started_at"`
	Elapsed    time.Duration `json:"elapsed_ns" yaml:"elapsed_ns"`
	Iterations int           `json:"iterations" yaml:"iterations"`
	Results    []Result      `json:"results" yaml:"results"`
}

// Runner samples every configured fixture and times each call.
type Runner struct {
	cfg      config.BenchSection
	sampler  *sampler.Sampler
	onResult func(Result)
}

// NewRunner creates a runner. cfg should already be verified.
func NewRunner(cfg config.BenchSection, s *sampler.Sampler) *Runner {
	return &Runner{cfg: cfg, sampler: s}
}

// Fixtures returns how many fixtures Run will benchmark.
func (r *Runner) Fixtures() int {
	return len(r.cfg.Shapes) * len(r.cfg.Sizes)
}

// OnResult registers fn to be called after each fixture completes.
func (r *Runner) OnResult(fn func(Result)) {
	r.onResult = fn
}

// Run benchmarks shapes in order and sizes in order within each shape.
// A cancelled ctx stops the run and returns the results so far with
// ctx's error.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		RunID:      ulid.Make().String(),
		StartedAt:  time.Now(),
		Iterations: r.cfg.Iterations,
	}
	ctx = logger.WithRunID(ctx, report.RunID)
	log := logger.L(ctx)

	log.Info("bench started",
		"shapes", r.cfg.Shapes,
		"sizes", r.cfg.Sizes,
		"iterations", r.cfg.Iterations,
	)

	for _, shape := range r.cfg.Shapes {
		for _, size := range r.cfg.Sizes {
			res, err := r.runFixture(ctx, shape, size)
			if err != nil {
				report.Elapsed = time.Since(report.StartedAt)
				return report, err
			}
			log.Info("fixture done",
				"shape", res.Shape,
				"size", res.Size,
				"verdict", res.Verdict,
				"decision", res.Decision,
				"mean", res.Stats.Mean,
				"p99", res.Stats.P99,
				"errors", res.Errors,
			)
			report.Results = append(report.Results, res)
			if r.onResult != nil {
				r.onResult(res)
			}
		}
	}

	report.Elapsed = time.Since(report.StartedAt)
	log.Info("bench finished", "elapsed", report.Elapsed, "fixtures", len(report.Results))
	return report, nil
}

func (r *Runner) runFixture(ctx context.Context, shape string, size int) (Result, error) {
	fixture, err := Build(shape, size)
	if err != nil {
		return Result{}, err
	}

	verdict, decision := r.sampler.Classifier().Explain(fixture)
	res := Result{
		Shape:    shape,
		Size:     size,
		Verdict:  verdict.String(),
		Decision: string(decision),
	}

	samples := make([]time.Duration, 0, r.cfg.Iterations)
	for i := 0; i < r.cfg.Iterations; i++ {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		start := time.Now()
		_, err := r.sampler.SampleEntry(fixture)
		samples = append(samples, time.Since(start))
		if err != nil {
			res.Errors++
		}
	}

	res.Stats = Summarize(samples)
	return res, nil
}
