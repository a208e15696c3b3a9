package sink_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/katalvlaran/yalign/samples"
	"github.com/katalvlaran/yalign/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() []samples.Sample {
	return []samples.Sample{
		{Label: true, LenA: 2, IdxA: 0, TextA: "The cat sleeps.", LenB: 2, IdxB: 0, TextB: "Le chat dort."},
		{Label: true, LenA: 2, IdxA: 1, TextA: "Café\tau lait.", LenB: 2, IdxB: 1, TextB: "Line\nbreak."},
		{Label: false, LenA: 2, IdxA: 0, TextA: "The cat sleeps.", LenB: 2, IdxB: 1, TextB: "Line\nbreak."},
		{Label: false, LenA: 2, IdxA: 1, TextA: "Café\tau lait.", LenB: 2, IdxB: 0, TextB: "Le chat dort."},
	}
}

// TestTSV_Lines checks field order, labels and separator cleaning.
func TestTSV_Lines(t *testing.T) {
	var buf bytes.Buffer
	w := sink.NewTSV(&buf)
	for _, s := range fixture()[:3] {
		require.NoError(t, w.Write(s))
	}
	require.NoError(t, w.Close())

	want := "1\t2\t0\tThe cat sleeps.\t2\t0\tLe chat dort.\n" +
		"1\t2\t1\tCafé au lait.\t2\t1\tLine break.\n" +
		"0\t2\t0\tThe cat sleeps.\t2\t1\tLine break.\n"
	assert.Equal(t, want, buf.String())
}

// TestTSV_WriteAfterClose reports ErrClosed; Close is idempotent.
func TestTSV_WriteAfterClose(t *testing.T) {
	w := sink.NewTSV(&bytes.Buffer{})
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	assert.ErrorIs(t, w.Write(samples.Sample{}), sink.ErrClosed)
}

// TestParquet_RoundTrip writes and reads back the same samples.
func TestParquet_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.parquet")
	w, err := sink.NewParquet(path, 1)
	require.NoError(t, err)
	for _, s := range fixture() {
		require.NoError(t, w.Write(s))
	}
	require.NoError(t, w.Close())
	assert.ErrorIs(t, w.Write(samples.Sample{}), sink.ErrClosed)

	got, err := sink.ReadParquet(path)
	require.NoError(t, err)
	assert.Equal(t, fixture(), got)
}

// TestReadParquet_Missing wraps the open failure.
func TestReadParquet_Missing(t *testing.T) {
	_, err := sink.ReadParquet(filepath.Join(t.TempDir(), "absent.parquet"))
	require.Error(t, err)
}

// TestCreate_Formats covers explicit, inferred and unknown formats.
func TestCreate_Formats(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, sink.FormatParquet, sink.FormatFor("out.PARQUET"))
	assert.Equal(t, sink.FormatTSV, sink.FormatFor("out.tsv"))
	assert.Equal(t, sink.FormatTSV, sink.FormatFor("out"))

	tsvPath := filepath.Join(dir, "out.tsv")
	w, err := sink.Create(tsvPath, "")
	require.NoError(t, err)
	require.NoError(t, w.Write(fixture()[0]))
	require.NoError(t, w.Close())
	data, err := os.ReadFile(tsvPath)
	require.NoError(t, err)
	assert.Equal(t, "1\t2\t0\tThe cat sleeps.\t2\t0\tLe chat dort.\n", string(data))

	pqPath := filepath.Join(dir, "out.bin")
	w, err = sink.Create(pqPath, "parquet")
	require.NoError(t, err)
	require.NoError(t, w.Write(fixture()[1]))
	require.NoError(t, w.Close())
	got, err := sink.ReadParquet(pqPath)
	require.NoError(t, err)
	assert.Equal(t, fixture()[1:2], got)

	_, err = sink.Create(filepath.Join(dir, "x"), "csv")
	assert.ErrorIs(t, err, sink.ErrUnknownFormat)
}

// failingWriter rejects the third sample.
type failingWriter struct{ n int }

var errFull = errors.New("full")

func (f *failingWriter) Write(samples.Sample) error {
	f.n++
	if f.n == 3 {
		return errFull
	}
	return nil
}

func (f *failingWriter) Close() error { return nil }

// TestDrain counts writes and stops at the first error.
func TestDrain(t *testing.T) {
	var buf bytes.Buffer
	w := sink.NewTSV(&buf)
	n, err := sink.Drain(slices.Values(fixture()), w)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, 4, n)
	assert.Equal(t, 4, bytes.Count(buf.Bytes(), []byte("\n")))

	n, err = sink.Drain(slices.Values(fixture()), &failingWriter{})
	assert.ErrorIs(t, err, errFull)
	assert.Equal(t, 2, n)
}

// TestRow_Conversion keeps every field.
func TestRow_Conversion(t *testing.T) {
	for _, s := range fixture() {
		assert.Equal(t, s, sink.RowOf(s).Sample())
	}
}
