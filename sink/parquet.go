package sink

import (
	"fmt"

	"github.com/katalvlaran/yalign/samples"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// DefaultParallel is the number of goroutines the Parquet writer and reader
// use to encode or decode columns.
const DefaultParallel = 2

// Parquet writes samples to a local Parquet file.
type Parquet struct {
	fw     source.ParquetFile
	pw     *writer.ParquetWriter
	closed bool
}

// NewParquet creates (or truncates) path. parallel < 1 uses DefaultParallel.
func NewParquet(path string, parallel int64) (*Parquet, error) {
	if parallel < 1 {
		parallel = DefaultParallel
	}
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return nil, fmt.Errorf("sink: create %s: %w", path, err)
	}
	pw, err := writer.NewParquetWriter(fw, new(Row), parallel)
	if err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("sink: parquet writer for %s: %w", path, err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY
	return &Parquet{fw: fw, pw: pw}, nil
}

// Write appends one row.
func (p *Parquet) Write(s samples.Sample) error {
	if p.closed {
		return ErrClosed
	}
	if err := p.pw.Write(RowOf(s)); err != nil {
		return fmt.Errorf("sink: parquet write: %w", err)
	}
	return nil
}

// Close writes the footer and closes the file.
func (p *Parquet) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	err := p.pw.WriteStop()
	if cerr := p.fw.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("sink: parquet close: %w", err)
	}
	return nil
}

// ReadParquet loads every sample stored in path.
func ReadParquet(path string) ([]samples.Sample, error) {
	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, fmt.Errorf("sink: open %s: %w", path, err)
	}
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, new(Row), DefaultParallel)
	if err != nil {
		return nil, fmt.Errorf("sink: parquet reader for %s: %w", path, err)
	}
	defer pr.ReadStop()

	n := int(pr.GetNumRows())
	if n == 0 {
		return nil, nil
	}
	rows := make([]Row, n)
	if err = pr.Read(&rows); err != nil {
		return nil, fmt.Errorf("sink: parquet read %s: %w", path, err)
	}

	out := make([]samples.Sample, len(rows))
	for i, r := range rows {
		out[i] = r.Sample()
	}
	return out, nil
}
