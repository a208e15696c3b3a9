package shuffle

// RandomRange returns a permutation of 0..n-1 perturbed by local shuffles.
//
// Algorithm:
//  1. xs = [0, 1, ..., n-1].
//  2. If span ≤ 1, return xs untouched.
//  3. Walk left to right: draw a window length w ∈ [2, span], shuffle
//     xs[i : i+w] (clipped at n), advance i by w.
//
// Guarantees:
//   - n ≤ 0 ⇒ empty (non-nil) slice.
//   - The result is always a permutation of 0..n-1.
//   - No element moves span or more positions away from its index.
//
// src==nil uses System().
//
// Complexity: O(n) time, O(n) space.
func RandomRange(n, span int, src Source) []int {
	if n <= 0 {
		return []int{}
	}

	xs := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		xs[i] = i
	}
	if span <= 1 {
		return xs
	}
	if src == nil {
		src = System()
	}

	var w, end int
	for i = 0; i < n; i = end {
		w = 2 + src.Intn(span-1)
		end = min(i+w, n)
		shuffleWindow(xs[i:end], src)
	}

	return xs
}

// Derangement returns a permutation of 0..n-1 with no fixed points when n ≥ 2.
//
// It starts from RandomRange(n, span, src) and swaps every surviving fixed
// point i with its right neighbour (left neighbour for the last index).
// A swap turns both positions into non-fixed points and leaves every other
// position alone, so one left-to-right pass is enough. Displacement stays
// within max(span, 1).
//
// n == 1 ⇒ [0] (a single element cannot be deranged); n ≤ 0 ⇒ empty slice.
//
// Complexity: O(n) time, O(n) space.
func Derangement(n, span int, src Source) []int {
	p := RandomRange(n, span, src)
	if n < 2 {
		return p
	}

	var i, j int
	for i = 0; i < n; i++ {
		if p[i] != i {
			continue
		}
		j = i + 1
		if j == n {
			j = i - 1
		}
		p[i], p[j] = p[j], p[i]
	}

	return p
}

// RandomAlignments returns the correspondence {(i, σ(i))} for a derangement σ
// of 0..n-1 drawn with the configured span and source.
// For n == 1 the single pair is (0, 0); for n ≤ 0 the result is empty.
func RandomAlignments(n int, opts ...Option) []Pair {
	cfg := resolve(opts)
	sigma := Derangement(n, cfg.Span, cfg.Source)

	out := make([]Pair, len(sigma))
	for i, j := range sigma {
		out[i] = Pair{I: i, J: j}
	}
	return out
}
