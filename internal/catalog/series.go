package catalog

import (
	"cmp"
	"slices"
)

// seriesEntry is the constraint for records held in a Series: element
// sets (keyed by epoch and reference center) and state vectors (keyed
// by epoch).
type seriesEntry[T any] interface {
	epochJD() float64
	sameKey(T) bool
}

// Series is a time series strictly ascending by epoch with at most one
// entry per key.  The invariant holds after every Merge, not just at
// rest.
type Series[T seriesEntry[T]] []T

// Merge folds an unordered batch into the series and returns the
// result.  The batch is sorted ascending by epoch first, then each
// record either replaces the existing entry with the same key, is
// inserted before the first entry with a greater key, or is appended.
//
// Replacement means conflicts resolve last writer wins, so the order
// batches are folded is observable; the pipeline folds sources in
// lexicographic file order to keep builds reproducible.
//
// This is a stable linear merge rather than a re-sort: entries not
// touched by the batch keep their positions.  Per-body series stay
// small enough that the linear walk is not a concern.
func (s Series[T]) Merge(batch []T) Series[T] {
	sorted := append([]T(nil), batch...)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(a.epochJD(), b.epochJD())
	})
	for _, in := range sorted {
		s = s.put(in)
	}
	return s
}

func (s Series[T]) put(in T) Series[T] {
	for i, have := range s {
		if have.sameKey(in) {
			s[i] = in
			return s
		}
		if have.epochJD() > in.epochJD() {
			return slices.Insert(s, i, in)
		}
	}
	return append(s, in)
}

// At returns the entry at exactly the given epoch.
func (s Series[T]) At(epoch float64) (T, bool) {
	for _, have := range s {
		if have.epochJD() == epoch {
			return have, true
		}
		if have.epochJD() > epoch {
			break
		}
	}
	var zero T
	return zero, false
}
