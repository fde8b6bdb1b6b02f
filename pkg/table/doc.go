// Package table provides the container abstraction sampled by tabsample.
//
// A Container maps a Key (integer, string, or any other comparable value)
// to a value of any type and exposes exactly what shape classification
// and sampling need:
//
//   - Len: size of the maximal run of present integer keys 1..n
//   - Range: visit every (key, value) pair exactly once
//   - Get: keyed lookup with a presence flag, so a present key holding
//     a null value is distinguishable from an absent key
//
// Three storage variants implement it:
//
//   - Sequence: contiguous slice storage, keys are always 1..n
//   - Map: keyed storage with insertion-ordered iteration and an
//     incrementally maintained prefix length
//   - Sharded: concurrent keyed storage with per-shard RWMutex
//
// Usage:
//
//	seq := table.NewSequence("a", "b", "c")
//	m := table.NewMap()
//	m.Set(table.StringKey("name"), "tabsample")
//
// Thread Safety:
//
// Sequence and Map are not safe for concurrent mutation; callers hold
// their own lock. Every Sharded operation is safe on its own, but a
// Range concurrent with writes may observe a mix of old and new state.
package table
