package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/yndnr/tabsample/internal/core/domain"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Sampler.LargeThreshold != DefaultLargeThreshold {
		t.Errorf("LargeThreshold = %d, want %d", cfg.Sampler.LargeThreshold, DefaultLargeThreshold)
	}
	if !cfg.Sampler.FastPath {
		t.Error("FastPath should be enabled by default")
	}
	if cfg.Sampler.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Sampler.Seed)
	}
	if cfg.Bench.Iterations != DefaultIterations {
		t.Errorf("Iterations = %d, want %d", cfg.Bench.Iterations, DefaultIterations)
	}
	if !slices.Equal(cfg.Bench.Sizes, DefaultSizes) {
		t.Errorf("Sizes = %v, want %v", cfg.Bench.Sizes, DefaultSizes)
	}
	if !slices.Equal(cfg.Bench.Shapes, Shapes) {
		t.Errorf("Shapes = %v, want %v", cfg.Bench.Shapes, Shapes)
	}
	if cfg.Serve.MetricsAddr != DefaultMetricsAddr {
		t.Errorf("MetricsAddr = %q, want %q", cfg.Serve.MetricsAddr, DefaultMetricsAddr)
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}
	if cfg.Log.Format != DefaultLogFormat {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, DefaultLogFormat)
	}

	if err := Verify(cfg); err != nil {
		t.Errorf("Verify(Default()) = %v", err)
	}
}

func TestDefault_Independent(t *testing.T) {
	a := Default()
	a.Bench.Sizes[0] = 7
	if b := Default(); b.Bench.Sizes[0] == 7 {
		t.Error("Default() shares slices between calls")
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero threshold", func(c *Config) { c.Sampler.LargeThreshold = 0 }, "large_threshold"},
		{"zero iterations", func(c *Config) { c.Bench.Iterations = 0 }, "iterations"},
		{"no sizes", func(c *Config) { c.Bench.Sizes = nil }, "sizes"},
		{"negative size", func(c *Config) { c.Bench.Sizes = []int{10, -1} }, "sizes"},
		{"no shapes", func(c *Config) { c.Bench.Shapes = nil }, "shapes"},
		{"unknown bench shape", func(c *Config) { c.Bench.Shapes = []string{"dense", "cube"} }, "cube"},
		{"empty metrics addr", func(c *Config) { c.Serve.MetricsAddr = "" }, "metrics_addr"},
		{"zero rate", func(c *Config) { c.Serve.Rate = 0 }, "rate"},
		{"zero burst", func(c *Config) { c.Serve.Burst = 0 }, "burst"},
		{"zero serve size", func(c *Config) { c.Serve.Size = 0 }, "serve.size"},
		{"unknown serve shape", func(c *Config) { c.Serve.Shape = "ring" }, "ring"},
		{"zero shutdown timeout", func(c *Config) { c.Serve.ShutdownTimeout = 0 }, "shutdown_timeout"},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"unknown format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Verify(cfg)
			if err == nil {
				t.Fatal("Verify() should fail")
			}
			if !errors.Is(err, domain.ErrConfigInvalid) {
				t.Errorf("Verify() = %v, want ErrConfigInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Verify() = %q, want mention of %q", err.Error(), tt.want)
			}
		})
	}
}

func TestSamplerSection_Classifier(t *testing.T) {
	s := SamplerSection{LargeThreshold: 50, FastPath: false}
	c := s.Classifier()
	if c.LargeThreshold() != 50 {
		t.Errorf("LargeThreshold() = %d, want 50", c.LargeThreshold())
	}
	if c.FastPath() {
		t.Error("FastPath() should be false")
	}

	if n := len(s.Options()); n != 1 {
		t.Errorf("Options() without seed = %d options, want 1", n)
	}
	s.Seed = 9
	if n := len(s.Options()); n != 2 {
		t.Errorf("Options() with seed = %d options, want 2", n)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Serve.ShutdownTimeout != DefaultShutdownTimeout {
		t.Errorf("ShutdownTimeout = %v, want %v", cfg.Serve.ShutdownTimeout, DefaultShutdownTimeout)
	}
	if !slices.Equal(cfg.Bench.Sizes, DefaultSizes) {
		t.Errorf("Sizes = %v, want %v", cfg.Bench.Sizes, DefaultSizes)
	}
}

func TestLoad_FileEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabsample.yaml")
	content := `
sampler:
  large_threshold: 64
  seed: 42
bench:
  sizes: [10]
serve:
  shutdown_timeout: 2s
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TABSAMPLE_LOG_FORMAT", "text")
	t.Setenv("TABSAMPLE_SAMPLER_LARGE_THRESHOLD", "128")

	cfg, err := Load(path, map[string]any{"bench.iterations": 5})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Sampler.LargeThreshold != 128 {
		t.Errorf("LargeThreshold = %d, want 128 from env", cfg.Sampler.LargeThreshold)
	}
	if cfg.Sampler.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Sampler.Seed)
	}
	if !slices.Equal(cfg.Bench.Sizes, []int{10}) {
		t.Errorf("Sizes = %v, want [10] (file replaces default)", cfg.Bench.Sizes)
	}
	if cfg.Bench.Iterations != 5 {
		t.Errorf("Iterations = %d, want 5 from override", cfg.Bench.Iterations)
	}
	if cfg.Serve.ShutdownTimeout != 2*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 2s", cfg.Serve.ShutdownTimeout)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if !cfg.Sampler.FastPath {
		t.Error("FastPath default lost")
	}
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load("", map[string]any{"serve.rate": -1})
	if !errors.Is(err, domain.ErrConfigInvalid) {
		t.Fatalf("Load() = %v, want ErrConfigInvalid", err)
	}

	_, err = Load("/nonexistent/tabsample.yaml", nil)
	if !errors.Is(err, domain.ErrConfigInvalid) {
		t.Fatalf("Load(missing file) = %v, want ErrConfigInvalid", err)
	}
}

func TestLoader_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabsample.yaml")
	if err := os.WriteFile(path, []byte("serve:\n  rate: 10\n"), 0644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(path, nil)
	if l.Path() != path {
		t.Errorf("Path() = %q, want %q", l.Path(), path)
	}
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Serve.Rate != 10 {
		t.Fatalf("Rate = %g, want 10", cfg.Serve.Rate)
	}

	if err := os.WriteFile(path, []byte("serve:\n  rate: 25\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = l.Reload()
	if err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if cfg.Serve.Rate != 25 {
		t.Errorf("Rate = %g, want 25 after reload", cfg.Serve.Rate)
	}
	if cfg.Serve.MetricsAddr != DefaultMetricsAddr {
		t.Errorf("MetricsAddr = %q, defaults lost on reload", cfg.Serve.MetricsAddr)
	}
}

func TestIsShape(t *testing.T) {
	for _, s := range Shapes {
		if !IsShape(s) {
			t.Errorf("IsShape(%q) = false", s)
		}
	}
	if IsShape("Dense") {
		t.Error("IsShape is case sensitive")
	}
}
