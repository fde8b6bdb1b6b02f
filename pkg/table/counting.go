package table

import "sync/atomic"

// Counting wraps a Container and counts calls to it. It is used to
// verify how much work classification and sampling perform.
type Counting struct {
	inner  Container
	lens   atomic.Int64
	ranges atomic.Int64
	gets   atomic.Int64
}

// NewCounting wraps c.
func NewCounting(c Container) *Counting {
	return &Counting{inner: c}
}

// Len forwards to the wrapped container.
func (c *Counting) Len() int {
	c.lens.Add(1)
	return c.inner.Len()
}

// Range forwards to the wrapped container.
func (c *Counting) Range(fn func(key Key, value any) bool) {
	c.ranges.Add(1)
	c.inner.Range(fn)
}

// Get forwards to the wrapped container.
func (c *Counting) Get(key Key) (any, bool) {
	c.gets.Add(1)
	return c.inner.Get(key)
}

// Lens returns the number of Len calls.
func (c *Counting) Lens() int64 { return c.lens.Load() }

// Ranges returns the number of Range calls.
func (c *Counting) Ranges() int64 { return c.ranges.Load() }

// Gets returns the number of Get calls.
func (c *Counting) Gets() int64 { return c.gets.Load() }

// Reset zeroes all counters.
func (c *Counting) Reset() {
	c.lens.Store(0)
	c.ranges.Store(0)
	c.gets.Store(0)
}

// Unwrap returns the wrapped container.
func (c *Counting) Unwrap() Container {
	return c.inner
}
