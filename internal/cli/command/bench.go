package command

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tabsample/internal/bench"
	"github.com/yndnr/tabsample/internal/cli/output"
	"github.com/yndnr/tabsample/internal/telemetry/logger"
	"github.com/yndnr/tabsample/pkg/sampler"
)

// BenchCommand returns the bench command.
func BenchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "Time sampling over generated fixtures of each shape and size",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "iterations",
				Aliases: []string{"n"},
				Usage:   "Samples per fixture",
			},
			&cli.IntSliceFlag{
				Name:  "sizes",
				Usage: "Fixture sizes (repeatable or comma-separated)",
			},
			&cli.StringSliceFlag{
				Name:  "shapes",
				Usage: "Fixture shapes: dense, strings, mixed, holey",
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: "Show per-fixture progress on stderr",
				Value: true,
			},
		},
		Action: benchAction,
	}
}

func benchOverrides(c *cli.Context) map[string]any {
	o := make(map[string]any)
	if c.IsSet("iterations") {
		o["bench.iterations"] = c.Int("iterations")
	}
	if c.IsSet("sizes") {
		o["bench.sizes"] = c.IntSlice("sizes")
	}
	if c.IsSet("shapes") {
		o["bench.shapes"] = c.StringSlice("shapes")
	}
	return o
}

func benchAction(c *cli.Context) error {
	e, err := setup(c, benchOverrides(c))
	if err != nil {
		return err
	}

	runner := bench.NewRunner(e.cfg.Bench, sampler.New(e.cfg.Sampler.Options()...))

	var bar *output.ProgressBar
	if c.Bool("progress") && e.format == output.FormatTable {
		bar = output.NewProgressBar(e.errOut, "bench", runner.Fixtures())
		runner.OnResult(func(r bench.Result) {
			bar.Step(fmt.Sprintf("%s/%d", r.Shape, r.Size))
		})
	}

	report, err := runner.Run(logger.WithLogger(c.Context, e.log))
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}

	if e.format != output.FormatTable {
		return e.formatter.Format(e.out, report)
	}

	fmt.Fprintf(e.out, "run %s: %d iterations per fixture, %s total\n\n",
		report.RunID, report.Iterations, report.Elapsed.Round(time.Millisecond))
	return e.formatter.Format(e.out, benchTable(report, ParseGlobalFlags(c).Wide))
}

func benchTable(report *bench.Report, wide bool) *output.Table {
	t := &output.Table{}
	t.SetHeaders("SHAPE", "SIZE", "VERDICT", "DECISION", "MEAN", "P50", "P99", "MAX", "ERRORS")
	if wide {
		t.Headers = append(t.Headers, "MIN", "COUNT")
	}

	for _, r := range report.Results {
		row := []string{
			r.Shape,
			fmt.Sprint(r.Size),
			r.Verdict,
			r.Decision,
			r.Stats.Mean.String(),
			r.Stats.P50.String(),
			r.Stats.P99.String(),
			r.Stats.Max.String(),
			fmt.Sprint(r.Errors),
		}
		if wide {
			row = append(row, r.Stats.Min.String(), fmt.Sprint(r.Stats.Count))
		}
		t.AddRow(row...)
	}
	return t
}
