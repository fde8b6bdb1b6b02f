package config

import (
	"fmt"
	"slices"

	"github.com/yndnr/tabsample/internal/core/domain"
	"github.com/yndnr/tabsample/internal/telemetry/logger"
)

// Verify validates the configuration.
func Verify(cfg *Config) error {
	if err := verifySampler(&cfg.Sampler); err != nil {
		return err
	}
	if err := verifyBench(&cfg.Bench); err != nil {
		return err
	}
	if err := verifyServe(&cfg.Serve); err != nil {
		return err
	}
	return verifyLog(&cfg.Log)
}

func invalid(format string, args ...any) error {
	return domain.ErrConfigInvalid.WithDetails(fmt.Sprintf(format, args...))
}

func verifySampler(cfg *SamplerSection) error {
	if cfg.LargeThreshold < 1 {
		return invalid("sampler.large_threshold must be at least 1, got %d", cfg.LargeThreshold)
	}
	return nil
}

func verifyBench(cfg *BenchSection) error {
	if cfg.Iterations < 1 {
		return invalid("bench.iterations must be at least 1, got %d", cfg.Iterations)
	}
	if len(cfg.Sizes) == 0 {
		return invalid("bench.sizes is empty")
	}
	for _, n := range cfg.Sizes {
		if n < 1 {
			return invalid("bench.sizes entries must be at least 1, got %d", n)
		}
	}
	if len(cfg.Shapes) == 0 {
		return invalid("bench.shapes is empty")
	}
	for _, s := range cfg.Shapes {
		if !IsShape(s) {
			return invalid("bench.shapes: unknown shape %q", s)
		}
	}
	return nil
}

func verifyServe(cfg *ServeSection) error {
	if cfg.MetricsAddr == "" {
		return invalid("serve.metrics_addr is required")
	}
	if cfg.Rate <= 0 {
		return invalid("serve.rate must be positive, got %g", cfg.Rate)
	}
	if cfg.Burst < 1 {
		return invalid("serve.burst must be at least 1, got %d", cfg.Burst)
	}
	if cfg.Size < 1 {
		return invalid("serve.size must be at least 1, got %d", cfg.Size)
	}
	if !IsShape(cfg.Shape) {
		return invalid("serve.shape: unknown shape %q", cfg.Shape)
	}
	if cfg.ShutdownTimeout <= 0 {
		return invalid("serve.shutdown_timeout must be positive, got %s", cfg.ShutdownTimeout)
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	if _, err := logger.ParseLevel(cfg.Level); err != nil {
		return invalid("log.level: unknown level %q", cfg.Level)
	}
	if _, err := logger.ParseFormat(cfg.Format); err != nil {
		return invalid("log.format: unknown format %q", cfg.Format)
	}
	return nil
}

// IsShape reports whether s names a fixture shape.
func IsShape(s string) bool {
	return slices.Contains(Shapes, s)
}
