// Package buildinfo provides build information for tabsample.
//
// Version, Commit and BuildTime are injected via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/tabsample/internal/infra/buildinfo.Version=v1.0.0"
//
// When they are not set, Get falls back to the module and VCS data the Go
// toolchain embeds in the binary.
package buildinfo
