package table

// Container is the capability set shape classification and sampling
// rely on. Implementations own their storage; callers borrow them for
// the duration of a call.
type Container interface {
	// Len returns the size of the maximal contiguous run of present
	// integer keys 1..n. A container without key 1 has Len 0.
	Len() int

	// Range visits every (key, value) pair exactly once, in the
	// container's iteration order. The callback returns false to stop.
	Range(fn func(key Key, value any) bool)

	// Get returns the value stored under key and whether the key is
	// present. A present key may hold a null value.
	Get(key Key) (any, bool)
}

// Versioned is implemented by containers that count their mutations.
// The version changes on every mutation, which lets callers cache
// derived facts about the contents.
type Versioned interface {
	Version() uint64
}

// Entry is a key-value pair.
type Entry struct {
	Key   Key `json:"key" yaml:"key"`
	Value any `json:"value" yaml:"value"`
}

// IsNull reports whether v is the null value. Only an untyped nil is
// null; a typed nil pointer stored in an interface is a value.
func IsNull(v any) bool {
	return v == nil
}

// GetIndex looks up the integer key i.
func GetIndex(c Container, i int) (any, bool) {
	return c.Get(IntKey(int64(i)))
}
