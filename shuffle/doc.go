// Package shuffle provides the controlled-randomness primitives behind
// negative sampling: locality-bounded range shuffles, near-derangements
// and positional reordering of sequences.
//
// 🚀 What is it for?
//
//	A negative training sample pairs a sentence with a sentence that is NOT
//	its translation. Picking that partner uniformly at random produces pairs
//	that are trivially easy to reject. shuffle keeps partners close: every
//	index is displaced by at most Span positions, so the synthetic
//	misalignment stays locally plausible.
//
// ✨ Key features:
//   - RandomRange  : permutation of 0..n-1 built from shuffled windows of
//     length 2..span; span ≤ 1 returns the identity.
//   - Derangement  : RandomRange with every surviving fixed point swapped
//     with a neighbour; no fixed points for n ≥ 2.
//   - RandomAlignments: (i, σ(i)) pairs for a derangement σ.
//   - Reorder      : out[p[i]] = xs[i], generic over element type.
//   - Inverse / IsPermutation: helpers for validating and undoing Reorder.
//
// ⚙️ Usage:
//
//	src := shuffle.NewSource(42)            // deterministic
//	p := shuffle.Derangement(8, 4, src)     // no p[i] == i
//	ys, err := shuffle.Reorder(xs, p)       // ys[p[i]] == xs[i]
//
// Randomness:
//
//	Every operation receives its Source explicitly. System() wraps the
//	process-wide math/rand generator and is safe for concurrent use;
//	NewSource returns a seeded *rand.Rand that must stay on one goroutine.
//
// Complexity:
//
//   - RandomRange, Derangement: O(n) time, O(n) space.
//   - Reorder, Inverse, IsPermutation: O(n) time, O(n) space.
//
// Errors (sentinel):
//
//   - ErrLengthMismatch: Reorder got a permutation of a different length.
//   - ErrNotPermutation: Reorder/Inverse got something that is not a
//     permutation of 0..n-1.
package shuffle
