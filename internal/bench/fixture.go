package bench

import (
	"fmt"

	"github.com/yndnr/tabsample/internal/config"
	"github.com/yndnr/tabsample/internal/core/domain"
	"github.com/yndnr/tabsample/pkg/table"
)

// Fixture is a container built for benchmarking.
type Fixture interface {
	table.Container
	table.Versioned
}

// holeEvery is the stride of null values in a holey fixture.
const holeEvery = 7

// Build creates a fixture of the named shape with n entries.
//
//   - dense: a Sequence holding 1..n
//   - strings: a Map with n string keys
//   - mixed: a Map with integer keys 1..n/2 followed by string keys
//   - holey: a Map with integer keys 1..n where every seventh value is
//     null, except the two ends
func Build(shape string, n int) (Fixture, error) {
	if n < 1 {
		return nil, domain.ErrInvalidArgument.WithDetails(fmt.Sprintf("fixture size must be at least 1, got %d", n))
	}

	switch shape {
	case config.ShapeDense:
		seq := table.NewSequenceWithCapacity(n)
		for i := 1; i <= n; i++ {
			seq.Append(i)
		}
		return seq, nil

	case config.ShapeStrings:
		m := table.NewMapWithCapacity(n)
		for i := 1; i <= n; i++ {
			m.Set(stringKey(i), i)
		}
		return m, nil

	case config.ShapeMixed:
		m := table.NewMapWithCapacity(n)
		half := n / 2
		for i := 1; i <= half; i++ {
			m.Set(table.IntKey(int64(i)), i)
		}
		for i := half + 1; i <= n; i++ {
			m.Set(stringKey(i), i)
		}
		return m, nil

	case config.ShapeHoley:
		m := table.NewMapWithCapacity(n)
		for i := 1; i <= n; i++ {
			var v any = i
			if i%holeEvery == 0 && i != n {
				v = nil
			}
			m.Set(table.IntKey(int64(i)), v)
		}
		return m, nil
	}

	return nil, domain.ErrInvalidArgument.WithDetails(fmt.Sprintf("unknown fixture shape %q", shape))
}

func stringKey(i int) table.Key {
	return table.StringKey(fmt.Sprintf("key-%06d", i))
}
