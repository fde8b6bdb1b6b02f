package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/tabsample/internal/core/domain"
	"github.com/yndnr/tabsample/internal/tabledoc"
	"github.com/yndnr/tabsample/pkg/table"
)

// ClassifyCommand returns the classify command.
func ClassifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "classify",
		Usage:     "Print the shape verdict of YAML table documents",
		ArgsUsage: "[FILE...]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "YAML table document (repeatable)",
			},
		},
		Action: classifyAction,
	}
}

// classification is one row of classify output.
type classification struct {
	File     string `json:"file" yaml:"file"`
	Verdict  string `json:"verdict" yaml:"verdict"`
	Decision string `json:"decision" yaml:"decision"`
	Len      int    `json:"len" yaml:"len"`
	Entries  int    `json:"entries" yaml:"entries" table:"wide"`
}

// documentArgs collects --file values followed by positional arguments.
func documentArgs(c *cli.Context) ([]string, error) {
	files := append([]string(nil), c.StringSlice("file")...)
	files = append(files, c.Args().Slice()...)
	if len(files) == 0 {
		return nil, domain.ErrMissingArgument.WithDetails("at least one table document is required (--file or argument)")
	}
	return files, nil
}

func classifyAction(c *cli.Context) error {
	files, err := documentArgs(c)
	if err != nil {
		return err
	}
	e, err := setup(c, nil)
	if err != nil {
		return err
	}

	classifier := e.cfg.Sampler.Classifier()
	rows := make([]classification, 0, len(files))
	for _, path := range files {
		doc, err := tabledoc.LoadFile(path)
		if err != nil {
			return err
		}
		verdict, decision := classifier.Explain(doc)
		e.log.Debug("classified document",
			"file", path,
			"verdict", verdict.String(),
			"decision", string(decision),
		)
		rows = append(rows, classification{
			File:     path,
			Verdict:  verdict.String(),
			Decision: string(decision),
			Len:      doc.Len(),
			Entries:  table.Count(doc),
		})
	}

	return e.formatter.Format(e.out, rows)
}
