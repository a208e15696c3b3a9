package sink

import (
	"bufio"
	"io"
	"strings"

	"github.com/katalvlaran/yalign/samples"
)

// fieldCleaner keeps record and field separators out of sentence text.
var fieldCleaner = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

// TSV writes samples as tab-separated lines in Sample.Fields order.
type TSV struct {
	bw     *bufio.Writer
	closer io.Closer
	closed bool
}

// NewTSV buffers writes to w. Close flushes but does not close w.
func NewTSV(w io.Writer) *TSV {
	return &TSV{bw: bufio.NewWriter(w)}
}

// Write appends one line.
func (t *TSV) Write(s samples.Sample) error {
	if t.closed {
		return ErrClosed
	}
	fields := s.Fields()
	for i, f := range fields {
		if i > 0 {
			if err := t.bw.WriteByte('\t'); err != nil {
				return err
			}
		}
		if _, err := fieldCleaner.WriteString(t.bw, f); err != nil {
			return err
		}
	}
	return t.bw.WriteByte('\n')
}

// Close flushes buffered lines, then closes the file if the TSV owns one.
func (t *TSV) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	err := t.bw.Flush()
	if t.closer != nil {
		if cerr := t.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
