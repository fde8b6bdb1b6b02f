package bench

import (
	"slices"
	"time"
)

// Stats summarises a set of latencies.
type Stats struct {
	Count int           `json:"count" yaml:"count"`
	Min   time.Duration `json:"min_ns" yaml:"min_ns"`
	Mean  time.Duration `json:"mean_ns" yaml:"mean_ns"`
	P50   time.Duration `json:"p50_ns" yaml:"p50_ns"`
	P99   time.Duration `json:"p99_ns" yaml:"p99_ns"`
	Max   time.Duration `json:"max_ns" yaml:"max_ns"`
}

// Summarize computes Stats using nearest-rank percentiles. samples is
// sorted in place.
func Summarize(samples []time.Duration) Stats {
	if len(samples) == 0 {
		return Stats{}
	}
	slices.Sort(samples)

	var total time.Duration
	for _, d := range samples {
		total += d
	}

	return Stats{
		Count: len(samples),
		Min:   samples[0],
		Mean:  total / time.Duration(len(samples)),
		P50:   percentile(samples, 50),
		P99:   percentile(samples, 99),
		Max:   samples[len(samples)-1],
	}
}

// percentile expects sorted input.
func percentile(sorted []time.Duration, p int) time.Duration {
	rank := (p*len(sorted) + 99) / 100
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}
