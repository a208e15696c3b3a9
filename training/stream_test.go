package training_test

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/katalvlaran/yalign/documents"
	"github.com/katalvlaran/yalign/samples"
	"github.com/katalvlaran/yalign/training"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// interleaved returns lines "0".."n-1", one per line.
func interleaved(n int) io.Reader {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprint(i)
	}
	return strings.NewReader(strings.Join(lines, "\n"))
}

// tabbed returns n "a<i>\tb<i>" lines.
func tabbed(n int) io.Reader {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "a%d\tb%d\n", i, i)
	}
	return strings.NewReader(sb.String())
}

// TestTrainingSamples_EmptyInput yields nothing.
func TestTrainingSamples_EmptyInput(t *testing.T) {
	got, err := training.TrainingSamples(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestTrainingSamples_AlignedAndNonAligned reads eight interleaved lines as
// four pairs: one document, four positives and four negatives.
func TestTrainingSamples_AlignedAndNonAligned(t *testing.T) {
	got, err := training.TrainingSamples(interleaved(8), training.WithFormat(training.Interleaved), training.WithSeed(1))
	require.NoError(t, err)
	require.Len(t, got, 8)

	pos := 0
	for _, s := range got {
		if s.Label {
			pos++
			assert.Equal(t, s.IdxA, s.IdxB)
		} else {
			assert.NotEqual(t, s.IdxA, s.IdxB)
		}
		assert.Equal(t, 4, s.LenA)
		assert.Equal(t, 4, s.LenB)
	}
	assert.Equal(t, 4, pos)
}

// TestStream_TabSeparated checks stats and balance over many documents.
func TestStream_TabSeparated(t *testing.T) {
	st := training.NewStream(tabbed(1000), training.WithBounds(5, 10), training.WithSeed(3))
	got := slices.Collect(st.Samples())
	require.NoError(t, st.Err())

	stats := st.Stats()
	assert.Equal(t, 1000, stats.Pairs)
	assert.Equal(t, 1000, stats.Positive)
	assert.Equal(t, len(got), stats.Samples())
	assert.GreaterOrEqual(t, stats.Documents, 100)
	assert.LessOrEqual(t, stats.Documents, 201)

	// A one-pair final document is the only way to lose negatives.
	assert.GreaterOrEqual(t, stats.Negative, 999)

	for _, s := range got {
		if !s.Label {
			continue
		}
		assert.Equal(t, strings.TrimPrefix(s.TextA, "a"), strings.TrimPrefix(s.TextB, "b"))
	}
}

// TestStream_NegativesNeverTrue checks every negative against the corpus truth.
func TestStream_NegativesNeverTrue(t *testing.T) {
	st := training.NewStream(tabbed(3000), training.WithSeed(11), training.WithSpan(4))
	for s := range st.Samples() {
		if s.Label {
			continue
		}
		require.NotEqual(t, strings.TrimPrefix(s.TextA, "a"), strings.TrimPrefix(s.TextB, "b"))
	}
	require.NoError(t, st.Err())
}

// TestStream_SkipsBlankLinesAndCarriageReturns in tab-separated mode.
func TestStream_SkipsBlankLinesAndCarriageReturns(t *testing.T) {
	in := "Hello.\tHola.\r\n\r\n   \nBye.\tAdiós.\r\n"
	got, err := training.TrainingSamples(strings.NewReader(in), training.WithSeed(1))
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, samples.Sample{Label: true, LenA: 2, IdxA: 0, TextA: "Hello.", LenB: 2, IdxB: 0, TextB: "Hola."}, got[0])
	assert.Equal(t, samples.Sample{Label: true, LenA: 2, IdxA: 1, TextA: "Bye.", LenB: 2, IdxB: 1, TextB: "Adiós."}, got[1])
}

// TestStream_MalformedRecords reports the line number via ErrMalformedRecord.
func TestStream_MalformedRecords(t *testing.T) {
	_, err := training.TrainingSamples(strings.NewReader("a\tb\nno tab here\n"))
	require.ErrorIs(t, err, training.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "line 2")

	got, err := training.TrainingSamples(strings.NewReader("a\tb\tc\nd\te\n"))
	require.ErrorIs(t, err, training.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "line 1")
	assert.Empty(t, got)

	_, err = training.TrainingSamples(interleaved(5), training.WithFormat(training.Interleaved))
	require.ErrorIs(t, err, training.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "line 5")
}

// TestStream_PartialOutputBeforeError keeps valid samples read before the failure.
func TestStream_PartialOutputBeforeError(t *testing.T) {
	in := "a\tb\nc\td\nbroken\n"
	got, err := training.TrainingSamples(strings.NewReader(in), training.WithSeed(2))
	require.ErrorIs(t, err, training.ErrMalformedRecord)
	assert.Len(t, got, 4)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

// TestStream_ReadError wraps reader failures in ErrRead.
func TestStream_ReadError(t *testing.T) {
	_, err := training.TrainingSamples(failingReader{})
	require.ErrorIs(t, err, training.ErrRead)
	assert.Contains(t, err.Error(), "disk on fire")
}

// TestStream_LineTooLong surfaces bufio.ErrTooLong as a read failure.
func TestStream_LineTooLong(t *testing.T) {
	in := strings.Repeat("x", 64) + "\t" + strings.Repeat("y", 64) + "\n"
	_, err := training.TrainingSamples(strings.NewReader(in), training.WithMaxLineBytes(16))
	require.ErrorIs(t, err, training.ErrRead)
}

// TestStream_SinglePass: the reader is consumed by the first pass.
func TestStream_SinglePass(t *testing.T) {
	st := training.NewStream(tabbed(12), training.WithSeed(4))
	first := slices.Collect(st.Samples())
	second := slices.Collect(st.Samples())
	assert.NotEmpty(t, first)
	assert.Empty(t, second)
}

// TestStream_EarlyStop stops reading when the consumer stops.
func TestStream_EarlyStop(t *testing.T) {
	st := training.NewStream(tabbed(10000), training.WithBounds(5, 5), training.WithSeed(4))
	n := 0
	for range st.Samples() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 5, st.Stats().Pairs)
	assert.Equal(t, 1, st.Stats().Documents)
	require.NoError(t, st.Err())
}

// TestStream_SeedDeterminism produces identical streams for identical seeds.
func TestStream_SeedDeterminism(t *testing.T) {
	a, err := training.TrainingSamples(tabbed(400), training.WithSeed(99))
	require.NoError(t, err)
	b, err := training.TrainingSamples(tabbed(400), training.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestPairs reads both formats directly.
func TestPairs(t *testing.T) {
	seq, errf := training.Pairs(strings.NewReader("A\nB\nC\nD\n"), training.Interleaved, 0)
	assert.Equal(t, []documents.Pair{{A: "A", B: "B"}, {A: "C", B: "D"}}, slices.Collect(seq))
	assert.NoError(t, errf())

	seq, errf = training.Pairs(strings.NewReader("A\tB\tC\n"), training.TabSeparated, 0)
	assert.Equal(t, []documents.Pair{{A: "A", B: "B\tC"}}, slices.Collect(seq))
	assert.NoError(t, errf())
}

// TestParseFormat maps names and rejects unknown ones.
func TestParseFormat(t *testing.T) {
	cases := map[string]training.Format{
		"tab": training.TabSeparated, "TSV": training.TabSeparated, "": training.TabSeparated,
		"interleaved": training.Interleaved, " lines ": training.Interleaved,
	}
	for in, want := range cases {
		got, err := training.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := training.ParseFormat("xml")
	assert.ErrorIs(t, err, training.ErrUnknownFormat)

	assert.Equal(t, "tab", training.TabSeparated.String())
	assert.Equal(t, "interleaved", training.Interleaved.String())
}

// TestOptions_Panics follows the option-constructor contract.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { training.WithFormat(training.Format(7)) })
	assert.Panics(t, func() { training.WithBounds(10, 2) })
	assert.Panics(t, func() { training.WithSource(nil) })
	assert.Panics(t, func() { training.WithMaxLineBytes(0) })
}
