package common

import (
	"cmp"
	"maps"
	"slices"
)

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	return slices.Sorted(maps.Keys(m))
}

// Dedupe returns the sorted, duplicate-free copy of s.
func Dedupe[S ~[]E, E cmp.Ordered](s S) S {
	out := slices.Clone(s)
	slices.Sort(out)

	return slices.Compact(out)
}
