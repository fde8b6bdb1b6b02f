// Package bench drives the sampler the way a benchmarking host would.
//
//   - fixture.go: containers of each shape (dense, strings, mixed, holey)
//   - runner.go: timed sampling over every configured fixture
//   - stats.go: latency summaries
//   - loop.go: a rate-limited sampling loop for tabsample serve
package bench
