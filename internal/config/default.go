package config

import (
	"time"

	"github.com/yndnr/tabsample/pkg/shape"
)

// Fixture shapes understood by bench and serve.
const (
	ShapeDense   = "dense"
	ShapeStrings = "strings"
	ShapeMixed   = "mixed"
	ShapeHoley   = "holey"
)

// Shapes lists every fixture shape.
var Shapes = []string{ShapeDense, ShapeStrings, ShapeMixed, ShapeHoley}

// Default configuration values.
const (
	DefaultLargeThreshold = shape.DefaultLargeThreshold
	DefaultFastPath       = true

	DefaultIterations = 10000

	DefaultMetricsAddr     = "127.0.0.1:9464"
	DefaultRate            = 1000.0
	DefaultBurst           = 100
	DefaultServeSize       = 1000
	DefaultServeShape      = ShapeDense
	DefaultShutdownTimeout = 10 * time.Second

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// DefaultSizes are the fixture sizes bench runs when none are configured.
var DefaultSizes = []int{100, 1000, 10000}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Sampler: SamplerSection{
			LargeThreshold: DefaultLargeThreshold,
			FastPath:       DefaultFastPath,
		},
		Bench: BenchSection{
			Iterations: DefaultIterations,
			Sizes:      append([]int(nil), DefaultSizes...),
			Shapes:     append([]string(nil), Shapes...),
		},
		Serve: ServeSection{
			MetricsAddr:     DefaultMetricsAddr,
			Rate:            DefaultRate,
			Burst:           DefaultBurst,
			Size:            DefaultServeSize,
			Shape:           DefaultServeShape,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// DefaultMap returns Default as flat dotted keys for the loader. Slices
// are loaded as whole values so a file replaces them instead of merging
// element by element.
func DefaultMap() map[string]any {
	d := Default()
	return map[string]any{
		"sampler.large_threshold": d.Sampler.LargeThreshold,
		"sampler.fast_path":       d.Sampler.FastPath,
		"sampler.seed":            d.Sampler.Seed,
		"bench.iterations":        d.Bench.Iterations,
		"bench.sizes":             d.Bench.Sizes,
		"bench.shapes":            d.Bench.Shapes,
		"serve.metrics_addr":      d.Serve.MetricsAddr,
		"serve.rate":              d.Serve.Rate,
		"serve.burst":             d.Serve.Burst,
		"serve.size":              d.Serve.Size,
		"serve.shape":             d.Serve.Shape,
		"serve.shutdown_timeout":  d.Serve.ShutdownTimeout.String(),
		"log.level":               d.Log.Level,
		"log.format":              d.Log.Format,
	}
}
