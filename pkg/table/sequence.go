package table

import (
	"fmt"

	"github.com/yndnr/tabsample/internal/core/domain"
)

// Sequence is contiguous slice storage. Its keys are always exactly
// 1..n, so Len is n. Slots may hold null values.
type Sequence struct {
	items   []any
	version uint64
}

// NewSequence creates a sequence holding values at keys 1..len(values).
func NewSequence(values ...any) *Sequence {
	items := make([]any, len(values))
	copy(items, values)
	return &Sequence{items: items}
}

// NewSequenceWithCapacity creates an empty sequence with preallocated storage.
func NewSequenceWithCapacity(capacity int) *Sequence {
	if capacity < 0 {
		capacity = 0
	}
	return &Sequence{items: make([]any, 0, capacity)}
}

// Len returns the number of slots.
func (s *Sequence) Len() int {
	return len(s.items)
}

// Get returns the value at an integer key in 1..Len.
func (s *Sequence) Get(key Key) (any, bool) {
	i, ok := key.Int()
	if !ok || i < 1 || i > int64(len(s.items)) {
		return nil, false
	}
	return s.items[i-1], true
}

// Range visits slots in index order.
func (s *Sequence) Range(fn func(key Key, value any) bool) {
	for i, v := range s.items {
		if !fn(IntKey(int64(i+1)), v) {
			return
		}
	}
}

// Append adds a value at key Len+1.
func (s *Sequence) Append(value any) {
	s.items = append(s.items, value)
	s.version++
}

// Set stores a value at index i. i may be Len+1 to append; any other
// index outside 1..Len is rejected because it would leave a hole.
func (s *Sequence) Set(i int, value any) error {
	switch {
	case i >= 1 && i <= len(s.items):
		s.items[i-1] = value
	case i == len(s.items)+1:
		s.items = append(s.items, value)
	default:
		return domain.ErrInvalidArgument.WithDetails(fmt.Sprintf("index %d outside 1..%d", i, len(s.items)+1))
	}
	s.version++
	return nil
}

// Pop removes and returns the last slot.
func (s *Sequence) Pop() (any, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	last := len(s.items) - 1
	v := s.items[last]
	s.items[last] = nil
	s.items = s.items[:last]
	s.version++
	return v, true
}

// Version returns the mutation counter.
func (s *Sequence) Version() uint64 {
	return s.version
}
