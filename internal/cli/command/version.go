package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tabsample/internal/cli/output"
	"github.com/yndnr/tabsample/internal/infra/buildinfo"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Show build information",
		Action: versionAction,
	}
}

func versionAction(c *cli.Context) error {
	flags := ParseGlobalFlags(c)
	format, err := output.ParseFormat(flags.Output)
	if err != nil {
		return err
	}

	w := c.App.Writer
	if format == output.FormatTable {
		fmt.Fprintf(w, "tabsample %s\n", buildinfo.String())
		return nil
	}
	return output.NewFormatter(format, false).Format(w, buildinfo.Get())
}
