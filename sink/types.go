package sink

import (
	"errors"

	"github.com/katalvlaran/yalign/samples"
)

// Sentinel errors.
var (
	// ErrUnknownFormat indicates an output format other than "tsv" or "parquet".
	ErrUnknownFormat = errors.New("sink: unknown output format")

	// ErrClosed is returned by Write after Close.
	ErrClosed = errors.New("sink: writer closed")
)

// Output format names accepted by Create.
const (
	FormatTSV     = "tsv"
	FormatParquet = "parquet"
)

// Writer receives samples one at a time. Close flushes buffered data; the
// Writer must not be used afterwards.
type Writer interface {
	Write(s samples.Sample) error
	Close() error
}

// Row is the Parquet schema of one sample.
type Row struct {
	Label bool   `parquet:"name=label, type=BOOLEAN"`
	LenA  int32  `parquet:"name=len_a, type=INT32"`
	IdxA  int32  `parquet:"name=idx_a, type=INT32"`
	TextA string `parquet:"name=text_a, type=BYTE_ARRAY, convertedtype=UTF8"`
	LenB  int32  `parquet:"name=len_b, type=INT32"`
	IdxB  int32  `parquet:"name=idx_b, type=INT32"`
	TextB string `parquet:"name=text_b, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// RowOf converts a Sample to its Parquet row.
func RowOf(s samples.Sample) Row {
	return Row{
		Label: s.Label,
		LenA:  int32(s.LenA),
		IdxA:  int32(s.IdxA),
		TextA: s.TextA,
		LenB:  int32(s.LenB),
		IdxB:  int32(s.IdxB),
		TextB: s.TextB,
	}
}

// Sample converts the row back.
func (r Row) Sample() samples.Sample {
	return samples.Sample{
		Label: r.Label,
		LenA:  int(r.LenA),
		IdxA:  int(r.IdxA),
		TextA: r.TextA,
		LenB:  int(r.LenB),
		IdxB:  int(r.IdxB),
		TextB: r.TextB,
	}
}
