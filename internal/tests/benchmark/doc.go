// Package benchmark provides cross-package sampling benchmarks for tabsample.
//
// Run benchmarks with:
//
//	go test -bench=. -benchmem ./internal/tests/benchmark/...
//
// Run only the large fixtures:
//
//	go test -bench='/size_10000$' -benchmem -benchtime=5s ./internal/tests/benchmark/...
//
// Compare results:
//
//	go test -bench=. -benchmem -count=5 ./internal/tests/benchmark/... | tee new.txt
//	benchstat old.txt new.txt
package benchmark
