// Package tabledoc loads containers from YAML documents.
//
// A top-level sequence becomes a table.Sequence keyed 1..n. A top-level
// mapping becomes an insertion-ordered table.Map whose keys are
// normalised with table.AnyKey, so "1: a" and "1.0: a" name the same
// integer key. An empty document is an empty Map. A YAML null value is a
// present key holding null.
package tabledoc
