package command

import (
	"fmt"
	"io"
	"maps"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tabsample/internal/cli/output"
	"github.com/yndnr/tabsample/internal/config"
	"github.com/yndnr/tabsample/internal/infra/buildinfo"
	"github.com/yndnr/tabsample/internal/telemetry/logger"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "tabsample",
		Usage:   "Classify table key shapes and sample entries uniformly",
		Version: buildinfo.Get().Version,
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			BenchCommand(),
			ClassifyCommand(),
			SampleCommand(),
			ServeCommand(),
			VersionCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a YAML configuration file",
			EnvVars: []string{"TABSAMPLE_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			Value:   string(output.FormatTable),
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Show wide output (more columns)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: json, text",
		},
		&cli.IntFlag{
			Name:  "large-threshold",
			Usage: "Prefix length at which the classifier trusts the end keys",
		},
		&cli.BoolFlag{
			Name:  "no-fast-path",
			Usage: "Always enumerate to classify",
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Usage: "Seed for deterministic sampling (0 = random)",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	Config string

	// Output format
	Output string // table, json, yaml
	Wide   bool
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Config: c.String("config"),
		Output: c.String("output"),
		Wide:   c.Bool("wide"),
	}
}

// globalOverrides maps the global flags the user set to config keys.
func globalOverrides(c *cli.Context) map[string]any {
	o := make(map[string]any)
	if c.IsSet("log-level") {
		o["log.level"] = c.String("log-level")
	}
	if c.IsSet("log-format") {
		o["log.format"] = c.String("log-format")
	}
	if c.IsSet("large-threshold") {
		o["sampler.large_threshold"] = c.Int("large-threshold")
	}
	if c.Bool("no-fast-path") {
		o["sampler.fast_path"] = false
	}
	if c.IsSet("seed") {
		o["sampler.seed"] = c.Uint64("seed")
	}
	return o
}

// env is what every command action starts from.
type env struct {
	cfg       *config.Config
	loader    *config.Loader
	log       logger.Logger
	out       io.Writer
	errOut    io.Writer
	formatter output.Formatter
	format    output.Format
}

// setup loads configuration with the global flag overrides plus the
// command's own, then builds the logger and output formatter.
func setup(c *cli.Context, overrides map[string]any) (*env, error) {
	flags := ParseGlobalFlags(c)

	format, err := output.ParseFormat(flags.Output)
	if err != nil {
		return nil, err
	}

	all := globalOverrides(c)
	maps.Copy(all, overrides)

	loader := config.NewLoader(flags.Config, all)
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	errOut := c.App.ErrWriter
	if errOut == nil {
		errOut = cli.ErrWriter
	}
	out := c.App.Writer
	if out == nil {
		out = os.Stdout
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: errOut,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)

	return &env{
		cfg:       cfg,
		loader:    loader,
		log:       log,
		out:       out,
		errOut:    errOut,
		formatter: output.NewFormatter(format, flags.Wide),
		format:    format,
	}, nil
}
