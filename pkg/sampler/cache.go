package sampler

import (
	"sync"

	"github.com/yndnr/tabsample/pkg/shape"
	"github.com/yndnr/tabsample/pkg/table"
)

// VersionedContainer is a container that counts its mutations.
type VersionedContainer interface {
	table.Container
	table.Versioned
}

// Cache holds a container's verdict and recomputes it only when the
// container's version has moved. Cache is safe for concurrent use; the
// container it wraps still needs the caller's own synchronization.
type Cache struct {
	container  VersionedContainer
	classifier *shape.Classifier

	mu       sync.Mutex
	verdict  shape.Verdict
	decision shape.Decision
	version  uint64
	valid    bool
}

// NewCache creates a verdict cache. nil classifier means shape.Default().
func NewCache(c VersionedContainer, classifier *shape.Classifier) *Cache {
	if classifier == nil {
		classifier = shape.Default()
	}
	return &Cache{
		container:  c,
		classifier: classifier,
	}
}

// Verdict returns the cached verdict, reclassifying if stale.
func (c *Cache) Verdict() shape.Verdict {
	v, _ := c.Explain()
	return v
}

// Explain returns the cached verdict and the decision that produced it.
func (c *Cache) Explain() (shape.Verdict, shape.Decision) {
	v, d, _ := c.lookup()
	return v, d
}

// lookup is Explain that also reports whether this call reclassified.
func (c *Cache) lookup() (shape.Verdict, shape.Decision, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	version := c.container.Version()
	if c.valid && version == c.version {
		return c.verdict, c.decision, false
	}
	c.verdict, c.decision = c.classifier.Explain(c.container)
	c.version = version
	c.valid = true
	return c.verdict, c.decision, true
}

// Invalidate forces the next Verdict call to reclassify.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()
}

// Container returns the wrapped container.
func (c *Cache) Container() VersionedContainer {
	return c.container
}
