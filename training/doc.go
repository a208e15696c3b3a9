// Package training is the top-level sample pipeline: it reads aligned
// sentence pairs from a line-oriented corpus, chunks them into documents and
// flattens every document's positive and negative samples into one lazy
// sequence.
//
//	io.Reader ─► Pairs ─► documents.Split ─► samples.Generate ─► iter.Seq[samples.Sample]
//
// Record formats:
//
//	TabSeparated  one pair per line: "A\tB" (blank lines skipped)
//	Interleaved   alternating lines: A, B, A, B, ...
//
// A Stream is single-pass: the reader is consumed by the first range over
// Samples. Read and parse failures end the sequence and are reported by Err,
// in the style of bufio.Scanner. Samples yielded before the failure are valid.
//
// Chunk sizes and negative pairings draw from two independent streams derived
// from the configured Source, so changing the document bounds does not change
// how a given document is deranged under a fixed seed.
package training
