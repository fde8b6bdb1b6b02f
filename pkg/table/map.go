package table

// Map is keyed storage. Iteration follows insertion order, except that
// a Delete moves the last entry into the deleted slot; the order is
// therefore deterministic for a given sequence of operations.
//
// The integer prefix length is maintained incrementally, so Len is O(1).
type Map struct {
	index   map[Key]int
	entries []Entry
	border  int
	version uint64
}

// NewMap creates an empty map.
func NewMap() *Map {
	return NewMapWithCapacity(0)
}

// NewMapWithCapacity creates an empty map with preallocated storage.
func NewMapWithCapacity(capacity int) *Map {
	if capacity < 0 {
		capacity = 0
	}
	return &Map{
		index:   make(map[Key]int, capacity),
		entries: make([]Entry, 0, capacity),
	}
}

// FromEntries builds a map from entries; later duplicates overwrite
// earlier values but keep the first position.
func FromEntries(entries ...Entry) *Map {
	m := NewMapWithCapacity(len(entries))
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Len returns the size of the maximal run of present integer keys 1..n.
func (m *Map) Len() int {
	return m.border
}

// Get retrieves a value by key.
func (m *Map) Get(key Key) (any, bool) {
	pos, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.entries[pos].Value, true
}

// Has checks if a key exists.
func (m *Map) Has(key Key) bool {
	_, ok := m.index[key]
	return ok
}

// Count returns the number of present keys.
func (m *Map) Count() int {
	return len(m.entries)
}

// Range visits entries in iteration order.
func (m *Map) Range(fn func(key Key, value any) bool) {
	for _, e := range m.entries {
		if !fn(e.Key, e.Value) {
			return
		}
	}
}

// Set stores a key-value pair. A null value keeps the key present.
func (m *Map) Set(key Key, value any) {
	m.version++
	if pos, ok := m.index[key]; ok {
		m.entries[pos].Value = value
		return
	}

	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: key, Value: value})

	if i, ok := key.Int(); ok && i == int64(m.border)+1 {
		m.border++
		for m.Has(IntKey(int64(m.border) + 1)) {
			m.border++
		}
	}
}

// Delete removes a key. Returns true if the key was present.
func (m *Map) Delete(key Key) bool {
	pos, ok := m.index[key]
	if !ok {
		return false
	}
	m.version++

	last := len(m.entries) - 1
	if pos != last {
		moved := m.entries[last]
		m.entries[pos] = moved
		m.index[moved.Key] = pos
	}
	m.entries[last] = Entry{}
	m.entries = m.entries[:last]
	delete(m.index, key)

	if i, ok := key.Int(); ok && i >= 1 && i <= int64(m.border) {
		m.border = int(i) - 1
	}
	return true
}

// Clear removes all entries.
func (m *Map) Clear() {
	m.index = make(map[Key]int)
	clear(m.entries)
	m.entries = m.entries[:0]
	m.border = 0
	m.version++
}

// Version returns the mutation counter.
func (m *Map) Version() uint64 {
	return m.version
}
