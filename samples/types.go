package samples

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/yalign/shuffle"
)

// Sentinel errors returned by the sample generators.
var (
	// ErrSizeMismatch indicates the two sides of a document differ in length.
	ErrSizeMismatch = errors.New("samples: Documents must be the same size")

	// ErrAlignmentRange indicates an alignment points outside one of the sides.
	ErrAlignmentRange = errors.New("samples: alignment index out of range")

	// ErrAlignmentDuplicate indicates the true alignment set is not a partial bijection.
	ErrAlignmentDuplicate = errors.New("samples: alignment index used twice")
)

// Alignment claims that A[I] corresponds to B[J].
type Alignment = shuffle.Pair

// Sample is one labeled training example.
type Sample struct {
	Label bool   // true: TextA and TextB are mutual translations
	LenA  int    // length of the enclosing document, A side
	IdxA  int    // position of TextA in its document
	TextA string // sentence on the A side
	LenB  int    // length of the enclosing document, B side
	IdxB  int    // position of TextB in its document
	TextB string // sentence on the B side
}

// Fields renders the sample as its 7 fields in record order; the label is "1" or "0".
func (s Sample) Fields() []string {
	label := "0"
	if s.Label {
		label = "1"
	}
	return []string{
		label,
		strconv.Itoa(s.LenA),
		strconv.Itoa(s.IdxA),
		s.TextA,
		strconv.Itoa(s.LenB),
		strconv.Itoa(s.IdxB),
		s.TextB,
	}
}

// Options configures negative sampling.
//
//   - Span  : locality bound of the derangement (shuffle.RandomRange semantics).
//   - Source: randomness; defaults to shuffle.System().
type Options struct {
	Span   int
	Source shuffle.Source
}

// Option is a functional option for Options.
type Option func(*Options)

// DefaultOptions returns Span=shuffle.DefaultSpan and the system Source.
func DefaultOptions() Options {
	return Options{
		Span:   shuffle.DefaultSpan,
		Source: shuffle.System(),
	}
}

// WithSpan sets the derangement locality.
func WithSpan(span int) Option {
	return func(o *Options) {
		o.Span = span
	}
}

// WithSource sets the randomness. Panics on nil.
func WithSource(src shuffle.Source) Option {
	if src == nil {
		panic("samples: WithSource(nil)")
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

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
