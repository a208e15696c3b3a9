package training

import (
	"io"
	"iter"

	"github.com/katalvlaran/yalign/documents"
	"github.com/katalvlaran/yalign/samples"
	"github.com/katalvlaran/yalign/shuffle"
)

// Stream turns a corpus reader into labeled training samples.
type Stream struct {
	r     io.Reader
	cfg   Options
	err   error
	stats Stats
}

// NewStream prepares a Stream over r. Nothing is read until Samples is ranged over.
func NewStream(r io.Reader, opts ...Option) *Stream {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Stream{r: r, cfg: cfg}
}

// Samples lazily yields every document's positive samples followed by its
// negative samples, documents in input order.
func (s *Stream) Samples() iter.Seq[samples.Sample] {
	return func(yield func(samples.Sample) bool) {
		if s.r == nil {
			return
		}
		pairs, pairsErr := Pairs(s.r, s.cfg.Format, s.cfg.MaxLineBytes)
		s.r = nil

		sizes := shuffle.DeriveSource(s.cfg.Source, 1)
		negatives := shuffle.DeriveSource(s.cfg.Source, 2)

		counted := func(yieldPair func(documents.Pair) bool) {
			for p := range pairs {
				s.stats.Pairs++
				if !yieldPair(p) {
					return
				}
			}
		}
		docs := documents.Split(counted,
			documents.WithBounds(s.cfg.Min, s.cfg.Max),
			documents.WithSource(sizes),
		)

		for doc := range docs {
			s.stats.Documents++
			batch, err := samples.Generate(doc.A, doc.B,
				samples.WithSource(negatives),
				samples.WithSpan(s.cfg.Span),
			)
			if err != nil {
				s.err = err
				return
			}
			for _, smp := range batch {
				if smp.Label {
					s.stats.Positive++
				} else {
					s.stats.Negative++
				}
				if !yield(smp) {
					return
				}
			}
		}

		if err := pairsErr(); err != nil {
			s.err = err
		}
	}
}

// Err returns the first error that ended the sequence, if any.
func (s *Stream) Err() error { return s.err }

// Stats reports counts accumulated so far.
func (s *Stream) Stats() Stats { return s.stats }

// TrainingSamples is a convenience over NewStream(r, opts...).Samples() that
// collects everything into memory.
func TrainingSamples(r io.Reader, opts ...Option) ([]samples.Sample, error) {
	st := NewStream(r, opts...)
	var out []samples.Sample
	for smp := range st.Samples() {
		out = append(out, smp)
	}
	return out, st.Err()
}
