package bench

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/yndnr/tabsample/internal/telemetry/logger"
	"github.com/yndnr/tabsample/pkg/sampler"
)

// Loop samples one container continuously at a limited rate.
type Loop struct {
	container sampler.VersionedContainer
	limiter   *rate.Limiter

	sampler atomic.Pointer[sampler.Sampler]
	cache   atomic.Pointer[sampler.Cache]

	samples atomic.Uint64
	errors  atomic.Uint64
	running atomic.Bool
}

// NewLoop creates a loop drawing from c at perSecond samples per second
// with the given burst.
func NewLoop(c sampler.VersionedContainer, s *sampler.Sampler, perSecond float64, burst int) *Loop {
	l := &Loop{
		container: c,
		limiter:   rate.NewLimiter(rate.Limit(perSecond), burst),
	}
	l.SetSampler(s)
	return l
}

// SetSampler swaps the sampler. The verdict cache is rebuilt with the new
// sampler's classifier.
func (l *Loop) SetSampler(s *sampler.Sampler) {
	l.cache.Store(sampler.NewCache(l.container, s.Classifier()))
	l.sampler.Store(s)
}

// SetRate changes the pacing. It takes effect for the next sample.
func (l *Loop) SetRate(perSecond float64, burst int) {
	l.limiter.SetLimit(rate.Limit(perSecond))
	l.limiter.SetBurst(burst)
}

// Rate returns the current pacing.
func (l *Loop) Rate() (float64, int) {
	return float64(l.limiter.Limit()), l.limiter.Burst()
}

// Samples returns the number of successful draws so far.
func (l *Loop) Samples() uint64 {
	return l.samples.Load()
}

// Errors returns the number of failed draws so far.
func (l *Loop) Errors() uint64 {
	return l.errors.Load()
}

// Running reports whether Run is currently drawing samples.
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Ready returns nil while the loop is running.
func (l *Loop) Ready() error {
	if !l.running.Load() {
		return errors.New("sampling loop not running")
	}
	return nil
}

// Run samples until ctx is done. It returns nil on cancellation.
func (l *Loop) Run(ctx context.Context) error {
	l.running.Store(true)
	defer l.running.Store(false)

	log := logger.L(ctx)
	limit, burst := l.Rate()
	log.Info("sampling loop started", "rate", limit, "burst", burst)

	for {
		if err := l.limiter.Wait(ctx); err != nil {
			// Wait also fails when the next token lies past ctx's
			// deadline; no further sample could run in time either way.
			if _, ok := ctx.Deadline(); ok || ctx.Err() != nil {
				log.Info("sampling loop stopped",
					"samples", l.samples.Load(),
					"errors", l.errors.Load(),
				)
				return nil
			}
			return err
		}

		s, cache := l.sampler.Load(), l.cache.Load()
		if _, err := s.SampleCached(cache); err != nil {
			// Only the first failure is logged; the metrics carry the rest.
			if l.errors.Add(1) == 1 {
				log.Warn("sample failed", "error", err)
			}
			continue
		}
		l.samples.Add(1)
	}
}
