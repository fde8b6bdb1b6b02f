package shape

import "github.com/yndnr/tabsample/pkg/table"

// DefaultLargeThreshold is the prefix length at which the fast path applies.
const DefaultLargeThreshold = 1000

// Classifier decides the shape of containers. It holds only settings and
// is safe for concurrent use.
type Classifier struct {
	largeThreshold int
	fastPath       bool
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLargeThreshold sets the fast-path threshold. n <= 0 keeps the default.
func WithLargeThreshold(n int) Option {
	return func(c *Classifier) {
		if n > 0 {
			c.largeThreshold = n
		}
	}
}

// WithFastPath enables or disables the large-table fast path.
func WithFastPath(enabled bool) Option {
	return func(c *Classifier) {
		c.fastPath = enabled
	}
}

// WithoutFastPath forces a full enumeration for every container.
func WithoutFastPath() Option {
	return WithFastPath(false)
}

// New creates a classifier. The fast path is on by default.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		largeThreshold: DefaultLargeThreshold,
		fastPath:       true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LargeThreshold returns the fast-path threshold.
func (c *Classifier) LargeThreshold() int {
	return c.largeThreshold
}

// FastPath reports whether the fast path is enabled.
func (c *Classifier) FastPath() bool {
	return c.fastPath
}

// Classify returns the container's verdict.
func (c *Classifier) Classify(t table.Container) Verdict {
	v, _ := c.Explain(t)
	return v
}

// Explain returns the verdict and the step that decided it.
func (c *Classifier) Explain(t table.Container) (Verdict, Decision) {
	n := t.Len()
	if n <= 0 {
		return Sparse, DecisionEmpty
	}

	if c.fastPath && n >= c.largeThreshold && nonNull(t, 1) && nonNull(t, n) {
		return Dense(n), DecisionFast
	}

	matched := 0
	violation := false
	t.Range(func(key table.Key, value any) bool {
		i, ok := key.Int()
		if !ok || i < 1 || i > int64(n) {
			violation = true
			return false
		}
		if !table.IsNull(value) {
			matched++
		}
		return true
	})

	if violation {
		return Sparse, DecisionKey
	}
	if matched == n {
		return Dense(n), DecisionScan
	}
	return Sparse, DecisionScan
}

func nonNull(t table.Container, i int) bool {
	v, ok := t.Get(table.IntKey(int64(i)))
	return ok && !table.IsNull(v)
}

var defaultClassifier = New()

// Default returns the classifier used by the package-level Classify.
func Default() *Classifier {
	return defaultClassifier
}

// Classify classifies t with the default settings.
func Classify(t table.Container) Verdict {
	return defaultClassifier.Classify(t)
}
