package shuffle

import "errors"

// DefaultSpan bounds window length for RandomRange when no span is given.
const DefaultSpan = 10

// Sentinel errors returned by the shuffle primitives.
var (
	// ErrLengthMismatch indicates that a sequence and its permutation differ in length.
	ErrLengthMismatch = errors.New("shuffle: sequence and permutation must be the same length")

	// ErrNotPermutation indicates that an index slice is not a permutation of 0..n-1.
	ErrNotPermutation = errors.New("shuffle: indexes are not a permutation")
)

// Source is the randomness a shuffle needs. *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform integer in [0, n). n > 0.
	Intn(n int) int
	// Shuffle permutes n elements by calling swap, Fisher–Yates style.
	Shuffle(n int, swap func(i, j int))
}

// Pair is a correspondence between position I on one side and J on the other.
type Pair struct {
	I int
	J int
}

// Options configures RandomAlignments.
//
//   - Span  : locality bound; see RandomRange. Values ≤ 1 disable window shuffling.
//   - Source: randomness; nil means System().
type Options struct {
	Span   int
	Source Source
}

// Option is a functional option for Options.
type Option func(*Options)

// DefaultOptions returns Span=DefaultSpan and the system Source.
func DefaultOptions() Options {
	return Options{
		Span:   DefaultSpan,
		Source: System(),
	}
}

// WithSpan sets the locality bound. Any value is accepted; span ≤ 1 means
// "no window shuffling".
func WithSpan(span int) Option {
	return func(o *Options) {
		o.Span = span
	}
}

// WithSource sets the randomness. Panics on nil to surface programmer error early.
func WithSource(src Source) Option {
	if src == nil {
		panic("shuffle: WithSource(nil)")
	}
	return func(o *Options) {
		o.Source = src
	}
}

// WithSeed is shorthand for WithSource(NewSource(seed)).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Source = NewSource(seed)
	}
}

// resolve applies opts on top of DefaultOptions.
func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == nil {
		cfg.Source = System()
	}
	return cfg
}
