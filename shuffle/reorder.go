package shuffle

import "fmt"

// Reorder places every element of xs at the position p names for it:
// out[p[i]] = xs[i].
//
// Preconditions:
//   - len(xs) == len(p), else ErrLengthMismatch.
//   - p is a permutation of 0..len(p)-1, else ErrNotPermutation.
//
// Example: Reorder([0 1 2], [2 0 1]) == [1 2 0].
//
// Complexity: O(n) time, O(n) space.
func Reorder[T any](xs []T, p []int) ([]T, error) {
	if len(xs) != len(p) {
		return nil, fmt.Errorf("%w: len(xs)=%d len(p)=%d", ErrLengthMismatch, len(xs), len(p))
	}
	if !IsPermutation(p) {
		return nil, fmt.Errorf("%w: %v", ErrNotPermutation, p)
	}

	out := make([]T, len(xs))
	for i, x := range xs {
		out[p[i]] = x
	}
	return out, nil
}

// Inverse returns q with q[p[i]] = i, so Reorder(Reorder(xs, p), q) == xs.
func Inverse(p []int) ([]int, error) {
	if !IsPermutation(p) {
		return nil, fmt.Errorf("%w: %v", ErrNotPermutation, p)
	}
	q := make([]int, len(p))
	for i, v := range p {
		q[v] = i
	}
	return q, nil
}

// IsPermutation reports whether p holds each of 0..len(p)-1 exactly once.
// The empty slice is a permutation.
func IsPermutation(p []int) bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
