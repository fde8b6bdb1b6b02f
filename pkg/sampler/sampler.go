package sampler

import (
	"fmt"
	"time"

	"github.com/yndnr/tabsample/pkg/shape"
	"github.com/yndnr/tabsample/pkg/table"
)

// Entry is a sampled key-value pair.
type Entry = table.Entry

// Sampler draws uniformly random entries.
type Sampler struct {
	classifier *shape.Classifier
	source     Source
	observer   Observer
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithSource sets the random source. nil keeps the process-wide source.
func WithSource(src Source) Option {
	return func(s *Sampler) {
		if src != nil {
			s.source = src
		}
	}
}

// WithSeed uses a deterministic source seeded with seed.
func WithSeed(seed uint64) Option {
	return func(s *Sampler) {
		s.source = NewSeededSource(seed)
	}
}

// WithClassifier sets the classifier. nil keeps shape.Default().
func WithClassifier(c *shape.Classifier) Option {
	return func(s *Sampler) {
		if c != nil {
			s.classifier = c
		}
	}
}

// WithObserver attaches instrumentation.
func WithObserver(o Observer) Option {
	return func(s *Sampler) {
		s.observer = o
	}
}

// New creates a sampler.
func New(opts ...Option) *Sampler {
	s := &Sampler{
		classifier: shape.Default(),
		source:     globalSource{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Classifier returns the classifier the sampler dispatches on.
func (s *Sampler) Classifier() *shape.Classifier {
	return s.classifier
}

// SampleEntry returns a uniformly random (key, value) pair over the
// present, non-null entries of c. It never mutates c.
func (s *Sampler) SampleEntry(c table.Container) (Entry, error) {
	var start time.Time
	if s.observer != nil {
		start = time.Now()
	}

	verdict, decision := s.classifier.Explain(c)
	if s.observer != nil {
		s.observer.ObserveClassification(verdict, decision)
	}

	entry, path, err := s.draw(c, verdict)
	if s.observer != nil {
		s.observer.ObserveSample(path, time.Since(start), err)
	}
	return entry, err
}

// SampleIndex is SampleEntry under the name used by index-oriented callers.
func (s *Sampler) SampleIndex(c table.Container) (Entry, error) {
	return s.SampleEntry(c)
}

// SampleValue returns only the value of a random entry.
func (s *Sampler) SampleValue(c table.Container) (any, error) {
	e, err := s.SampleEntry(c)
	if err != nil {
		return nil, err
	}
	return e.Value, nil
}

// SampleCached draws using the verdict held by cache, reclassifying only
// when the container has changed since the verdict was computed. Only
// reclassifications reach the observer.
func (s *Sampler) SampleCached(cache *Cache) (Entry, error) {
	var start time.Time
	if s.observer != nil {
		start = time.Now()
	}

	verdict, decision, fresh := cache.lookup()
	if fresh && s.observer != nil {
		s.observer.ObserveClassification(verdict, decision)
	}

	entry, path, err := s.draw(cache.container, verdict)
	if s.observer != nil {
		s.observer.ObserveSample(path, time.Since(start), err)
	}
	return entry, err
}

func (s *Sampler) draw(c table.Container, v shape.Verdict) (Entry, Path, error) {
	if v.IsDense() {
		i := 1 + s.source.IntN(v.Len())
		if value, ok := table.GetIndex(c, i); ok && !table.IsNull(value) {
			return Entry{Key: table.IntKey(int64(i)), Value: value}, PathDense, nil
		}
		e, err := s.drawSparse(c)
		return e, PathFallback, err
	}

	e, err := s.drawSparse(c)
	return e, PathSparse, err
}

func (s *Sampler) drawSparse(c table.Container) (Entry, error) {
	entries := table.NonNullEntries(c)
	if len(entries) == 0 {
		return Entry{}, ErrEmptyContainer.WithDetails(fmt.Sprintf("len=%d, non-null entries=0", c.Len()))
	}
	return entries[s.source.IntN(len(entries))], nil
}

var defaultSampler = New()

// SampleEntry draws from c with the default classifier and the
// process-wide random source.
func SampleEntry(c table.Container) (Entry, error) {
	return defaultSampler.SampleEntry(c)
}

// SampleIndex is an alias of SampleEntry.
func SampleIndex(c table.Container) (Entry, error) {
	return defaultSampler.SampleEntry(c)
}
