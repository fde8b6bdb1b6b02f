// Package config defines the tabsample configuration.
//
// This package defines the configuration structure and validation:
//
//   - spec.go: Config struct definition
//   - default.go: Default configuration values
//   - verify.go: Validation of loaded values
//   - load.go: Loading through internal/infra/confloader
//
// Configuration sources, highest priority first: flags, TABSAMPLE_*
// environment variables, a YAML file, defaults.
package config
