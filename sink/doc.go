// Package sink persists training samples.
//
// The core packages produce samples.Sample values and know nothing about
// storage; a sink consumes them through the Writer interface:
//
//	TSV     - one sample per line, seven tab-separated fields, for humans and
//	          line-oriented tools.
//	Parquet - columnar, SNAPPY-compressed file with the Row schema, for
//	          training pipelines that read Parquet directly.
//
// Drain copies a lazy sample sequence into any Writer, so a corpus can be
// turned into a training file without holding it in memory.
package sink
