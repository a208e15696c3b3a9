// Package yalign prepares labeled training data for a sentence-alignment
// classifier: a model that decides whether two sentences, one per language,
// are translations of each other.
//
// 🚀 What does it produce?
//
//	A balanced stream of samples (label, lenA, idxA, textA, lenB, idxB, textB):
//		• positive samples - the true aligned pairs of a document
//		• negative samples - plausible but wrong pairs, drawn from nearby
//		  sentences so the classifier must learn more than sentence length
//
// ✨ Pipeline
//
//	text / HTML ─► corpus ─► aligned pairs ─► documents ─► samples ─► sink
//
// Subpackages:
//
//	corpus/    - sentence extraction from plain text or HTML (NFC, whitespace folding)
//	documents/ - lazy splitting of a pair stream into randomly sized documents
//	samples/   - positive and negative sample generation for one document
//	shuffle/   - locality-bounded shuffles, derangements, reorder, random sources
//	training/  - corpus reader ➜ documents ➜ samples, as one lazy stream
//	sink/      - TSV and Parquet writers for samples
//
// Commands:
//
//	cmd/yalign-samples - corpus file ➜ training samples file (TSV or Parquet)
//	cmd/yalign-corpus  - text or HTML file ➜ one sentence per line
//
// Randomness is always injected through a shuffle.Source; pass a seed to get
// byte-identical output across runs.
//
// Quick start:
//
//	st := training.NewStream(f, training.WithSeed(42))
//	for s := range st.Samples() {
//		fmt.Println(s.Fields())
//	}
//	if err := st.Err(); err != nil { ... }
package yalign
