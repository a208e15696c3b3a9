// Package corpus extracts clean, ordered sentences from plain text or HTML,
// the raw material for building an aligned sentence-pair corpus.
//
// Pipeline per input:
//
//	HTML  ─► visible text blocks ─► normalize ─► split into sentences
//	text  ─► one block           ─► normalize ─► split into sentences
//
// Normalization applies Unicode NFC and collapses every run of whitespace
// (spaces, tabs, newlines, no-break spaces) into a single space.
//
// A sentence ends at a run of '.', '!' or '?' that is followed by whitespace
// or by the end of the block. The run stays attached ("Wow!!", "I cried..").
// Sentences are trimmed and empty ones dropped, so callers never see blank
// or padded entries.
//
// Markup handling: text inside script, style, noscript, template and title
// is ignored, as are comments and doctype declarations. Block-level elements
// (p, div, li, br, headings, table cells, ...) end the current text block;
// inline elements (b, i, a, span, ...) do not. Entities are decoded.
//
// Every function is a pure function of its input and safe for concurrent use.
package corpus
