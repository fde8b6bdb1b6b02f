package benchmark

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/yndnr/tabsample/internal/bench"
	"github.com/yndnr/tabsample/internal/config"
	"github.com/yndnr/tabsample/pkg/table"
)

// Sizes defines the fixture sizes for full runs.
var Sizes = []int{100, 1000, 10000, 100000}

// SmallSizes for quick benchmarks.
var SmallSizes = []int{100, 1000, 10000}

// buildFixture builds a fixture or fails the benchmark.
func buildFixture(b *testing.B, shape string, n int) bench.Fixture {
	b.Helper()
	f, err := bench.Build(shape, n)
	if err != nil {
		b.Fatalf("Build(%s, %d): %v", shape, n, err)
	}
	return f
}

// buildSharded fills a sharded table with keys 1..n.
func buildSharded(n int) *table.Sharded {
	m := table.NewSharded()
	for i := 1; i <= n; i++ {
		m.Set(table.IntKey(int64(i)), i)
	}
	return m
}

// reportMemory reports memory usage.
func reportMemory(b *testing.B, prefix string) {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	b.ReportMetric(float64(m.Alloc)/(1024*1024), prefix+"_MB")
	b.ReportMetric(float64(m.NumGC), prefix+"_GC")
}

// runWithShapes runs benchFn for every fixture shape and size.
func runWithShapes(b *testing.B, sizes []int, benchFn func(b *testing.B, f bench.Fixture)) {
	for _, shape := range config.Shapes {
		for _, n := range sizes {
			b.Run(fmt.Sprintf("%s/size_%d", shape, n), func(b *testing.B) {
				benchFn(b, buildFixture(b, shape, n))
			})
		}
	}
}
