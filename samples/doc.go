// Package samples turns two parallel sentence sequences into labeled
// training samples for a "are these mutual translations?" classifier.
//
// Overview:
//
//   - Aligned emits one positive Sample per true alignment (i, j).
//   - NonAligned emits one negative Sample per true alignment, pairing the
//     A-side of each alignment with the B-side of another one, chosen through
//     a locality-bounded derangement (see package shuffle). A true pair is
//     never emitted as a negative and no Sample is emitted twice.
//   - Generate combines both for the identity alignment of a document.
//
// Counts for a document of n sentence pairs:
//
//	n == 0 → 0 samples
//	n == 1 → 1 positive, 0 negatives (one element cannot be deranged)
//	n ≥ 2  → n positives, n negatives
//
// Sample layout mirrors the 7-field record consumed downstream:
//
//	(label, lenA, idxA, textA, lenB, idxB, textB)
//
// lenA/lenB carry the document size so feature extractors can use relative
// position; Sample is comparable and may be used as a map key.
//
// Error handling (sentinel):
//
//   - ErrSizeMismatch      : len(A) != len(B).
//   - ErrAlignmentRange    : an alignment index falls outside A or B.
//   - ErrAlignmentDuplicate: an A-side or B-side index repeats in the true set.
//
// Preconditions are checked before anything is produced; nothing is ever
// truncated or padded to make inputs fit.
package samples
