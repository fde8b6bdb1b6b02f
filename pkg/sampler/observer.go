package sampler

import (
	"time"

	"github.com/yndnr/tabsample/pkg/shape"
)

// Path names the draw strategy that served a sample.
type Path string

const (
	// PathDense is the O(1) index draw.
	PathDense Path = "dense"
	// PathSparse is the O(n) enumeration draw.
	PathSparse Path = "sparse"
	// PathFallback is an enumeration draw taken after the index draw
	// landed on an absent or null slot of a fast-path Dense verdict.
	PathFallback Path = "fallback"
)

// Observer receives instrumentation events. Implementations must be
// safe for concurrent use when the Sampler is shared.
type Observer interface {
	ObserveClassification(v shape.Verdict, d shape.Decision)
	ObserveSample(path Path, elapsed time.Duration, err error)
}
