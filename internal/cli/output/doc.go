// Package output provides output formatting for the tabsample CLI.
//
// This package handles all CLI output formatting:
//
//   - formatter.go: Formatter interface and factory
//   - table.go: Table rendering with wide mode support
//   - json.go: JSON output formatting
//   - yaml.go: YAML output formatting
//   - progress.go: Fixture progress for tabsample bench
//
// Table output is for people; json and yaml are for scripts.
package output
