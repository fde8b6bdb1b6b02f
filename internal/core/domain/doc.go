// Package domain defines the error model shared by tabsample.
//
// Every failure that crosses a package boundary is a *DomainError
// carrying a stable code, so callers can match with errors.Is and
// the CLI can print codes verbatim:
//
//   - SAMP: sampling failures (empty container)
//   - TABL: malformed table documents
//   - CONF: configuration validation
//   - ARG:  invalid arguments
//   - SYS:  internal errors
package domain
