package training

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/yalign/documents"
	"github.com/katalvlaran/yalign/shuffle"
)

// Sentinel errors reported by Stream.Err and the Pairs reader.
var (
	// ErrMalformedRecord indicates a line that cannot be turned into a pair.
	ErrMalformedRecord = errors.New("training: malformed record")

	// ErrRead wraps failures of the underlying reader.
	ErrRead = errors.New("training: read failed")

	// ErrUnknownFormat indicates an unrecognised record format name.
	ErrUnknownFormat = errors.New("training: unknown record format")
)

// Format selects how corpus lines map to sentence pairs.
type Format int

const (
	// TabSeparated reads one pair per line as "A<TAB>B".
	TabSeparated Format = iota
	// Interleaved reads consecutive lines as A, B, A, B, ...
	Interleaved
)

// String returns the name accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case TabSeparated:
		return "tab"
	case Interleaved:
		return "interleaved"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "tab"/"tsv" and "interleaved"/"lines" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tab", "tsv", "":
		return TabSeparated, nil
	case "interleaved", "lines":
		return Interleaved, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// DefaultMaxLineBytes caps a single corpus line.
const DefaultMaxLineBytes = 1 << 20

// Options configures a Stream.
type Options struct {
	Format       Format
	Min, Max     int // document bounds, see documents.WithBounds
	Span         int // negative-sampling locality, see shuffle.RandomRange
	Source       shuffle.Source
	MaxLineBytes int
}

// Option is a functional option for Options.
type Option func(*Options)

// DefaultOptions returns tab-separated records, default document bounds,
// shuffle.DefaultSpan and the system Source.
func DefaultOptions() Options {
	return Options{
		Format:       TabSeparated,
		Min:          documents.DefaultMin,
		Max:          documents.DefaultMax,
		Span:         shuffle.DefaultSpan,
		Source:       shuffle.System(),
		MaxLineBytes: DefaultMaxLineBytes,
	}
}

// WithFormat selects the record format.
func WithFormat(f Format) Option {
	if f != TabSeparated && f != Interleaved {
		panic(ErrUnknownFormat.Error())
	}
	return func(o *Options) {
		o.Format = f
	}
}

// WithBounds sets the document size range; validated like documents.WithBounds.
func WithBounds(min, max int) Option {
	documents.WithBounds(min, max)
	return func(o *Options) {
		o.Min = min
		o.Max = max
	}
}

// WithSpan sets the negative-sampling locality.
func WithSpan(span int) Option {
	return func(o *Options) {
		o.Span = span
	}
}

// WithSource sets the parent randomness. Panics on nil.
func WithSource(src shuffle.Source) Option {
	if src == nil {
		panic("training: WithSource(nil)")
	}
	return func(o *Options) {
		o.Source = src
	}
}

// WithSeed is shorthand for WithSource(shuffle.NewSource(seed)).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Source = shuffle.NewSource(seed)
	}
}

// WithMaxLineBytes caps the length of one corpus line. Panics on n <= 0.
func WithMaxLineBytes(n int) Option {
	if n <= 0 {
		panic("training: WithMaxLineBytes(n <= 0)")
	}
	return func(o *Options) {
		o.MaxLineBytes = n
	}
}

// Stats counts what a Stream has produced so far.
type Stats struct {
	Pairs     int
	Documents int
	Positive  int
	Negative  int
}

// Samples returns Positive + Negative.
func (s Stats) Samples() int { return s.Positive + s.Negative }
