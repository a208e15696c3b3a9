package documents

import (
	"errors"

	"github.com/katalvlaran/yalign/shuffle"
)

// Default document bounds.
const (
	DefaultMin = 5
	DefaultMax = 30
)

// ErrBadBounds indicates Max is smaller than the effective minimum max(1, Min).
var ErrBadBounds = errors.New("documents: max must be >= max(1, min)")

// Pair is one aligned sentence pair: A and B are mutual translations.
type Pair struct {
	A string
	B string
}

// Document is a contiguous chunk of pairs, split into its two parallel sides.
// len(A) == len(B) always holds.
type Document struct {
	A []string
	B []string
}

// Len returns the number of sentence pairs in the document.
func (d Document) Len() int { return len(d.A) }

// Options configures Split.
type Options struct {
	Min    int            // minimum document size; values < 1 mean 1
	Max    int            // maximum document size
	Source shuffle.Source // size draws; defaults to shuffle.System()
}

// Option is a functional option for Options.
type Option func(*Options)

// DefaultOptions returns Min=DefaultMin, Max=DefaultMax and the system Source.
func DefaultOptions() Options {
	return Options{
		Min:    DefaultMin,
		Max:    DefaultMax,
		Source: shuffle.System(),
	}
}

// WithBounds sets the document size range. A min below 1 is clamped to 1.
// Panics with ErrBadBounds when max < max(1, min).
func WithBounds(min, max int) Option {
	if min < 1 {
		min = 1
	}
	if max < min {
		panic(ErrBadBounds.Error())
	}
	return func(o *Options) {
		o.Min = min
		o.Max = max
	}
}

// WithSource sets the randomness for size draws. Panics on nil.
func WithSource(src shuffle.Source) Option {
	if src == nil {
		panic("documents: WithSource(nil)")
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
	if cfg.Min < 1 {
		cfg.Min = 1
	}
	return cfg
}
