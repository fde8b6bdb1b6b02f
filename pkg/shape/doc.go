// Package shape classifies the key space of a table.Container.
//
// A container is Dense(n) when its keys are exactly the integers 1..n,
// each present with a non-null value. Everything else is Sparse: empty
// containers, string or mixed keys, holes, out-of-range keys, and
// null-valued slots.
//
// Containers whose prefix length reaches the large threshold (1000 by
// default) take a fast path: if keys 1 and n are present and non-null,
// the container is reported Dense(n) without enumerating it. The fast
// path does not look for holes between 1 and n. Callers that classify
// untrusted or adversarial input can disable it with WithoutFastPath.
//
// Classification is a pure function of the container's current contents
// and never fails.
package shape
