package sink

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/yalign/samples"
)

// FormatFor infers the output format from the file extension:
// ".parquet" selects Parquet, anything else TSV.
func FormatFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return FormatParquet
	}
	return FormatTSV
}

// Create opens a Writer of the named format at path. An empty format is
// inferred with FormatFor.
func Create(path, format string) (Writer, error) {
	if format == "" {
		format = FormatFor(path)
	}
	switch strings.ToLower(format) {
	case FormatTSV:
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("sink: create %s: %w", path, err)
		}
		t := NewTSV(f)
		t.closer = f
		return t, nil
	case FormatParquet:
		return NewParquet(path, DefaultParallel)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Drain writes every sample of seq to w and returns how many were written.
// It stops at the first write error. w is not closed.
func Drain(seq iter.Seq[samples.Sample], w Writer) (int, error) {
	var n int
	for s := range seq {
		if err := w.Write(s); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
