package table

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/yndnr/tabsample/internal/core/domain"
)

// Kind identifies the type of a Key.
type Kind uint8

const (
	// KindInvalid is the zero Kind; the zero Key has it.
	KindInvalid Kind = iota
	// KindInt is an integer key.
	KindInt
	// KindString is a string key.
	KindString
	// KindOther is any other comparable key (floats, bools, structs).
	KindOther
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindOther:
		return "other"
	default:
		return "invalid"
	}
}

// Key is a container key. Keys are comparable and usable as map keys.
type Key struct {
	kind Kind
	i    int64
	s    string
	o    any
}

// IntKey returns an integer key.
func IntKey(i int64) Key {
	return Key{kind: KindInt, i: i}
}

// StringKey returns a string key. The string "1" is not the integer 1.
func StringKey(s string) Key {
	return Key{kind: KindString, s: s}
}

// AnyKey converts a Go value into a Key.
//
// Every integer type becomes KindInt, as does a float with an integral
// value (2.0 is the key 2). Strings become KindString. Any other
// comparable value becomes KindOther. nil, NaN and values that cannot be
// map keys (slices, maps, funcs, or structs and interfaces holding them)
// are rejected, as is any value not equal to itself.
func AnyKey(v any) (Key, error) {
	switch x := v.(type) {
	case nil:
		return Key{}, domain.ErrTableKeyUnsupported.WithDetails("nil key")
	case Key:
		return x, nil
	case int:
		return IntKey(int64(x)), nil
	case int8:
		return IntKey(int64(x)), nil
	case int16:
		return IntKey(int64(x)), nil
	case int32:
		return IntKey(int64(x)), nil
	case int64:
		return IntKey(x), nil
	case uint:
		return uintKey(uint64(x)), nil
	case uint8:
		return IntKey(int64(x)), nil
	case uint16:
		return IntKey(int64(x)), nil
	case uint32:
		return IntKey(int64(x)), nil
	case uint64:
		return uintKey(x), nil
	case float32:
		return floatKey(float64(x))
	case float64:
		return floatKey(x)
	case string:
		return StringKey(x), nil
	}

	// Type comparability is not enough: struct{X any} is comparable but
	// panics as a map key once X holds a slice.
	rv := reflect.ValueOf(v)
	if !rv.Comparable() {
		return Key{}, domain.ErrTableKeyUnsupported.WithDetails(fmt.Sprintf("non-comparable key %T", v))
	}
	if !rv.Equal(rv) {
		return Key{}, domain.ErrTableKeyUnsupported.WithDetails(fmt.Sprintf("key %T is not equal to itself", v))
	}
	return Key{kind: KindOther, o: v}, nil
}

func uintKey(u uint64) Key {
	if u > math.MaxInt64 {
		return Key{kind: KindOther, o: u}
	}
	return IntKey(int64(u))
}

func floatKey(f float64) (Key, error) {
	if math.IsNaN(f) {
		return Key{}, domain.ErrTableKeyUnsupported.WithDetails("NaN key")
	}
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return IntKey(int64(f)), nil
	}
	return Key{kind: KindOther, o: f}, nil
}

// Kind returns the key's kind.
func (k Key) Kind() Kind {
	return k.kind
}

// Int returns the integer value and true for a KindInt key.
func (k Key) Int() (int64, bool) {
	return k.i, k.kind == KindInt
}

// Str returns the string value and true for a KindString key.
func (k Key) Str() (string, bool) {
	return k.s, k.kind == KindString
}

// Interface returns the key as a plain Go value.
func (k Key) Interface() any {
	switch k.kind {
	case KindInt:
		return k.i
	case KindString:
		return k.s
	case KindOther:
		return k.o
	default:
		return nil
	}
}

// String formats the key for display. String keys are quoted so that
// "1" and 1 print differently.
func (k Key) String() string {
	switch k.kind {
	case KindInt:
		return strconv.FormatInt(k.i, 10)
	case KindString:
		return strconv.Quote(k.s)
	case KindOther:
		return fmt.Sprintf("%v", k.o)
	default:
		return "<invalid>"
	}
}

// MarshalText lets keys appear in JSON and YAML output.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// appendBytes appends a kind-tagged encoding of the key, used for hashing.
func (k Key) appendBytes(b []byte) []byte {
	b = append(b, byte(k.kind))
	switch k.kind {
	case KindInt:
		u := uint64(k.i)
		for i := 0; i < 8; i++ {
			b = append(b, byte(u>>(8*i)))
		}
	case KindString:
		b = append(b, k.s...)
	case KindOther:
		b = fmt.Appendf(b, "%T:%v", k.o, k.o)
	}
	return b
}
