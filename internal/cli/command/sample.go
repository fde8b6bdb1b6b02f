package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tabsample/internal/core/domain"
	"github.com/yndnr/tabsample/internal/tabledoc"
	"github.com/yndnr/tabsample/pkg/sampler"
	"github.com/yndnr/tabsample/pkg/table"
)

// SampleCommand returns the sample command.
func SampleCommand() *cli.Command {
	return &cli.Command{
		Name:      "sample",
		Usage:     "Draw uniformly random entries from a YAML table document",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "YAML table document",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "Number of draws",
				Value:   1,
			},
		},
		Action: sampleAction,
	}
}

// draw is one row of sample output.
type draw struct {
	Draw  int       `json:"draw" yaml:"draw"`
	Key   table.Key `json:"key" yaml:"key"`
	Value any       `json:"value" yaml:"value"`
}

func sampleAction(c *cli.Context) error {
	files, err := documentArgs(c)
	if err != nil {
		return err
	}
	if len(files) != 1 {
		return domain.ErrInvalidArgument.WithDetails(fmt.Sprintf("sample takes exactly one document, got %d", len(files)))
	}
	n := c.Int("count")
	if n < 1 {
		return domain.ErrInvalidArgument.WithDetails(fmt.Sprintf("--count must be at least 1, got %d", n))
	}

	e, err := setup(c, nil)
	if err != nil {
		return err
	}

	doc, err := tabledoc.LoadFile(files[0])
	if err != nil {
		return err
	}

	s := sampler.New(e.cfg.Sampler.Options()...)
	cache := sampler.NewCache(doc, s.Classifier())

	draws := make([]draw, 0, n)
	for i := 1; i <= n; i++ {
		entry, err := s.SampleCached(cache)
		if err != nil {
			return fmt.Errorf("%s: %w", files[0], err)
		}
		e.log.Debug("drew entry", "draw", i, "key", entry.Key.String(), "value", entry.Value)
		draws = append(draws, draw{Draw: i, Key: entry.Key, Value: entry.Value})
	}

	verdict, decision := cache.Explain()
	e.log.Debug("sampled document",
		"file", files[0],
		"draws", n,
		"verdict", verdict.String(),
		"decision", string(decision),
	)

	return e.formatter.Format(e.out, draws)
}
