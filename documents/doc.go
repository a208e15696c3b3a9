// Package documents groups a stream of aligned sentence pairs into
// pseudo-documents of random, bounded size.
//
// Negative samples are drawn inside one document, so the document size sets
// how far apart the sentences of a negative pair can be. Split chooses every
// size uniformly from [max(1, Min), Max] before filling the next document.
//
// Behaviour:
//
//   - Pairs are consumed in order; only the document being filled is buffered.
//   - The last document may be shorter than Min but is never empty.
//   - An empty stream yields no documents.
//   - Breaking out of the range loop stops pulling from the upstream sequence.
//
// Over N input pairs the number of documents D satisfies, up to rounding,
//
//	N/Max ≤ D ≤ N/max(1, Min)
//
// Usage:
//
//	for doc := range documents.Split(pairs, documents.WithBounds(5, 30)) {
//	    out, err := samples.Generate(doc.A, doc.B)
//	    ...
//	}
package documents
