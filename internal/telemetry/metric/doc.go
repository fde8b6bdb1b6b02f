// Package metric provides Prometheus metrics for tabsample.
//
// This package implements metrics collection and exposition:
//
//   - prometheus.go: registry, sampler instrumentation, HTTP handler
//   - collector.go: live container gauges collected at scrape time
//
// Metrics include:
//
//   - Sample counts and latency histograms per draw path
//   - Classification counts per verdict and decision
//   - Sampling error counters by error code
//   - Container size, prefix length and shape
//
// Metrics are exposed at /metrics in Prometheus format by tabsample serve.
package metric
