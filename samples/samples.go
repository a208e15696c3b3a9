package samples

import (
	"fmt"

	"github.com/katalvlaran/yalign/shuffle"
)

// Identity returns the alignment {(i, i) : 0 ≤ i < n}.
func Identity(n int) []Alignment {
	if n <= 0 {
		return nil
	}
	out := make([]Alignment, n)
	for i := range out {
		out[i] = Alignment{I: i, J: i}
	}
	return out
}

// Generate returns the positive samples of the identity alignment of (a, b)
// followed by its negative samples.
//
// Returns ErrSizeMismatch when len(a) != len(b).
func Generate(a, b []string, opts ...Option) ([]Sample, error) {
	if err := checkSizes(a, b); err != nil {
		return nil, err
	}
	alignments := Identity(len(a))

	pos, err := Aligned(a, b, alignments)
	if err != nil {
		return nil, err
	}
	neg, err := NonAligned(a, b, alignments, opts...)
	if err != nil {
		return nil, err
	}
	return append(pos, neg...), nil
}

// Aligned emits one positive Sample per alignment, in alignment order.
func Aligned(a, b []string, alignments []Alignment) ([]Sample, error) {
	if err := validate(a, b, alignments); err != nil {
		return nil, err
	}

	out := make([]Sample, 0, len(alignments))
	for _, al := range alignments {
		out = append(out, Sample{
			Label: true,
			LenA:  len(a),
			IdxA:  al.I,
			TextA: a[al.I],
			LenB:  len(b),
			IdxB:  al.J,
			TextB: b[al.J],
		})
	}
	return out, nil
}

// NonAligned emits one negative Sample per alignment.
//
// Algorithm:
//  1. js[k] = B-side index of alignment k.
//  2. σ = shuffle.Derangement(len(alignments), span).
//  3. moved = Reorder(js, σ), so moved[σ(k)] = js[k] and moved[k] ≠ js[k].
//  4. Pair A-side of alignment k with B-side moved[k].
//
// Because the true set is a partial bijection, the only true partner of
// alignment k's A-side is js[k], which step 3 excludes. Fewer than two
// alignments produce no negatives.
func NonAligned(a, b []string, alignments []Alignment, opts ...Option) ([]Sample, error) {
	if err := validate(a, b, alignments); err != nil {
		return nil, err
	}
	n := len(alignments)
	if n < 2 {
		return nil, nil
	}
	cfg := resolve(opts)

	js := make([]int, n)
	for k, al := range alignments {
		js[k] = al.J
	}
	moved, err := shuffle.Reorder(js, shuffle.Derangement(n, cfg.Span, cfg.Source))
	if err != nil {
		return nil, err
	}

	out := make([]Sample, 0, n)
	for k, al := range alignments {
		out = append(out, Sample{
			Label: false,
			LenA:  len(a),
			IdxA:  al.I,
			TextA: a[al.I],
			LenB:  len(b),
			IdxB:  moved[k],
			TextB: b[moved[k]],
		})
	}
	return out, nil
}

func checkSizes(a, b []string) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: len(A)=%d len(B)=%d", ErrSizeMismatch, len(a), len(b))
	}
	return nil
}

// validate checks sizes, index ranges and that no index repeats on either side.
func validate(a, b []string, alignments []Alignment) error {
	if err := checkSizes(a, b); err != nil {
		return err
	}
	seenA := make(map[int]struct{}, len(alignments))
	seenB := make(map[int]struct{}, len(alignments))
	for _, al := range alignments {
		if al.I < 0 || al.I >= len(a) || al.J < 0 || al.J >= len(b) {
			return fmt.Errorf("%w: (%d, %d) for sizes %d×%d", ErrAlignmentRange, al.I, al.J, len(a), len(b))
		}
		if _, dup := seenA[al.I]; dup {
			return fmt.Errorf("%w: A[%d]", ErrAlignmentDuplicate, al.I)
		}
		if _, dup := seenB[al.J]; dup {
			return fmt.Errorf("%w: B[%d]", ErrAlignmentDuplicate, al.J)
		}
		seenA[al.I] = struct{}{}
		seenB[al.J] = struct{}{}
	}
	return nil
}
