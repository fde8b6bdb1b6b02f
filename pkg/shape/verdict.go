package shape

import "strconv"

// Verdict is the result of classification: Dense(n) or Sparse.
type Verdict struct {
	length int
}

// Sparse is the verdict for any container that is not dense.
var Sparse = Verdict{}

// Dense returns the verdict for keys exactly 1..n. n < 1 yields Sparse.
func Dense(n int) Verdict {
	if n < 1 {
		return Sparse
	}
	return Verdict{length: n}
}

// IsDense reports whether the verdict is Dense.
func (v Verdict) IsDense() bool {
	return v.length > 0
}

// Len returns n for Dense(n) and 0 for Sparse.
func (v Verdict) Len() int {
	return v.length
}

// String returns "dense(n)" or "sparse".
func (v Verdict) String() string {
	if v.IsDense() {
		return "dense(" + strconv.Itoa(v.length) + ")"
	}
	return "sparse"
}

// Kind returns "dense" or "sparse", suitable as a metric label.
func (v Verdict) Kind() string {
	if v.IsDense() {
		return "dense"
	}
	return "sparse"
}

// MarshalText renders the verdict as its String form.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Decision records which step of the algorithm produced a verdict.
type Decision string

const (
	// DecisionEmpty: Len was 0.
	DecisionEmpty Decision = "empty"
	// DecisionFast: the large-table fast path accepted the container.
	DecisionFast Decision = "fast"
	// DecisionKey: enumeration stopped at a non-integer or out-of-range key.
	DecisionKey Decision = "key"
	// DecisionScan: enumeration completed and compared the non-null count.
	DecisionScan Decision = "scan"
)
