package table

// Keys returns every key in iteration order.
func Keys(c Container) []Key {
	keys := make([]Key, 0, c.Len())
	c.Range(func(key Key, _ any) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Entries returns every key-value pair in iteration order.
func Entries(c Container) []Entry {
	entries := make([]Entry, 0, c.Len())
	c.Range(func(key Key, value any) bool {
		entries = append(entries, Entry{Key: key, Value: value})
		return true
	})
	return entries
}

// NonNullEntries returns the pairs whose value is not null.
func NonNullEntries(c Container) []Entry {
	entries := make([]Entry, 0, c.Len())
	c.Range(func(key Key, value any) bool {
		if !IsNull(value) {
			entries = append(entries, Entry{Key: key, Value: value})
		}
		return true
	})
	return entries
}

// Count returns the number of present keys, null-valued ones included.
func Count(c Container) int {
	n := 0
	c.Range(func(Key, any) bool {
		n++
		return true
	})
	return n
}
