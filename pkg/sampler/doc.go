// Package sampler draws uniformly random entries from a table.Container.
//
// Each draw classifies the container first. A Dense(n) container is
// sampled in O(1) by drawing an index in 1..n; anything else is sampled
// by enumerating its non-null entries and drawing a position in that
// list, which costs O(n).
//
// Usage:
//
//	s := sampler.New(sampler.WithSeed(42))
//	entry, err := s.SampleEntry(container)
//	if errors.Is(err, sampler.ErrEmptyContainer) {
//		// nothing to draw from
//	}
//
// A Sampler built with WithSeed or with a caller-supplied *rand.Rand is
// deterministic and is not safe for concurrent use. The default source
// is the process-wide generator, which is.
//
// For repeated draws from the same container, a Cache keeps the verdict
// until the container's version changes.
package sampler
