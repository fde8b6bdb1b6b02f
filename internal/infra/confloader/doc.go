// Package confloader provides configuration loading.
//
// This package wraps koanf to load typed configuration from several
// sources:
//
//   - Defaults: a flat key map applied first
//   - Files: YAML
//   - Environment: TABSAMPLE_SECTION_KEY variables
//   - Flags: a flat key map applied last
//
// Priority (highest to lowest):
//
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Default values
//
// Watcher reports changes to a configuration file so long-running
// commands can reload it.
package confloader
