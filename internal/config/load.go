package config

import (
	"fmt"

	"github.com/yndnr/tabsample/internal/core/domain"
	"github.com/yndnr/tabsample/internal/infra/confloader"
)

// Loader loads and reloads a verified Config.
type Loader struct {
	loader *confloader.Loader
}

// NewLoader creates a loader for the given file ("" for none). overrides
// are flat dotted keys applied above every other source.
func NewLoader(path string, overrides map[string]any) *Loader {
	return &Loader{
		loader: confloader.NewLoader(
			confloader.WithConfigFile(path),
			confloader.WithDefaults(DefaultMap()),
			confloader.WithOverrides(overrides),
		),
	}
}

// Path returns the configuration file path, or "".
func (l *Loader) Path() string {
	return l.loader.FilePath()
}

// Load reads every source and verifies the result.
func (l *Loader) Load() (*Config, error) {
	return l.load(l.loader.Load)
}

// Reload re-reads every source from scratch and verifies the result.
func (l *Loader) Reload() (*Config, error) {
	return l.load(l.loader.Reload)
}

func (l *Loader) load(fn func(any) error) (*Config, error) {
	var cfg Config
	if err := fn(&cfg); err != nil {
		return nil, domain.ErrConfigInvalid.WithCause(fmt.Errorf("load config: %w", err))
	}
	if err := Verify(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load loads a verified configuration from path and overrides.
func Load(path string, overrides map[string]any) (*Config, error) {
	return NewLoader(path, overrides).Load()
}
