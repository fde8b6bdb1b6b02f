package config

import (
	"time"

	"github.com/yndnr/tabsample/pkg/sampler"
	"github.com/yndnr/tabsample/pkg/shape"
)

// Config is the root configuration for tabsample.
type Config struct {
	Sampler SamplerSection `koanf:"sampler" json:"sampler" yaml:"sampler"`
	Bench   BenchSection   `koanf:"bench" json:"bench" yaml:"bench"`
	Serve   ServeSection   `koanf:"serve" json:"serve" yaml:"serve"`
	Log     LogSection     `koanf:"log" json:"log" yaml:"log"`
}

// SamplerSection configures classification and sampling.
type SamplerSection struct {
	// LargeThreshold is the prefix length at which the classifier trusts
	// the two end keys instead of enumerating.
	LargeThreshold int `koanf:"large_threshold" json:"large_threshold" yaml:"large_threshold"`

	FastPath bool `koanf:"fast_path" json:"fast_path" yaml:"fast_path"`

	// Seed makes sampling deterministic. 0 uses the process-wide source.
	Seed uint64 `koanf:"seed" json:"seed" yaml:"seed"`
}

// BenchSection configures tabsample bench.
type BenchSection struct {
	Iterations int      `koanf:"iterations" json:"iterations" yaml:"iterations"`
	Sizes      []int    `koanf:"sizes" json:"sizes" yaml:"sizes"`
	Shapes     []string `koanf:"shapes" json:"shapes" yaml:"shapes"`
}

// ServeSection configures tabsample serve.
type ServeSection struct {
	MetricsAddr string `koanf:"metrics_addr" json:"metrics_addr" yaml:"metrics_addr"`

	// Rate is the number of samples per second; Burst bounds catch-up.
	Rate  float64 `koanf:"rate" json:"rate" yaml:"rate"`
	Burst int     `koanf:"burst" json:"burst" yaml:"burst"`

	// Size and Shape pick the fixture sampled by the loop.
	Size  int    `koanf:"size" json:"size" yaml:"size"`
	Shape string `koanf:"shape" json:"shape" yaml:"shape"`

	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" json:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level" json:"level" yaml:"level"`
	Format string `koanf:"format" json:"format" yaml:"format"`
}

// Classifier builds the classifier described by the section.
func (s SamplerSection) Classifier() *shape.Classifier {
	return shape.New(
		shape.WithLargeThreshold(s.LargeThreshold),
		shape.WithFastPath(s.FastPath),
	)
}

// Options returns the sampler options described by the section.
func (s SamplerSection) Options() []sampler.Option {
	opts := []sampler.Option{sampler.WithClassifier(s.Classifier())}
	if s.Seed != 0 {
		opts = append(opts, sampler.WithSeed(s.Seed))
	}
	return opts
}
