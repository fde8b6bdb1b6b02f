// Package logger provides structured logging for tabsample.
//
// It wraps log/slog:
//
//   - logger.go: Logger interface, JSON/text handlers, process-wide level
//   - context.go: context-carried logger and run ID
//   - clamp.go: truncation of oversized attribute values
//
// Sampled values are arbitrary user data and may be large; every string
// or composite attribute is clamped to Config.MaxValueLen before it is
// written. The level is shared by all loggers so that serve can change it
// on a config reload.
package logger
