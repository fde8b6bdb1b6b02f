// Package command provides CLI command definitions for tabsample.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: App, global flags, configuration and logger setup
//   - bench.go: timed sampling over generated fixtures
//   - classify.go: shape verdicts for YAML table documents
//   - sample.go: random draws from a YAML table document
//   - serve.go: rate-limited sampling loop with a /metrics endpoint
//   - version.go: build information
//
// Every command loads its configuration through setup and hands its
// result to an output.Formatter.
package command
