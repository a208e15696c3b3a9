package training

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/katalvlaran/yalign/documents"
)

// Pairs reads aligned sentence pairs from r in the given format.
// The sequence is single-pass; the returned function reports the first read
// or parse error once the sequence has ended (nil on clean EOF).
// maxLineBytes ≤ 0 uses DefaultMaxLineBytes.
func Pairs(r io.Reader, format Format, maxLineBytes int) (iter.Seq[documents.Pair], func() error) {
	if maxLineBytes <= 0 {
		maxLineBytes = DefaultMaxLineBytes
	}
	pr := &pairReader{format: format}
	pr.sc = bufio.NewScanner(r)
	pr.sc.Buffer(make([]byte, 0, min(64*1024, maxLineBytes)), maxLineBytes)

	return pr.all, func() error { return pr.err }
}

type pairReader struct {
	sc     *bufio.Scanner
	format Format
	line   int
	err    error
}

func (pr *pairReader) all(yield func(documents.Pair) bool) {
	for {
		p, ok := pr.next()
		if !ok || !yield(p) {
			return
		}
	}
}

// next returns the next pair; ok is false at EOF or after an error.
func (pr *pairReader) next() (documents.Pair, bool) {
	if pr.err != nil {
		return documents.Pair{}, false
	}
	switch pr.format {
	case Interleaved:
		a, ok := pr.scan()
		if !ok {
			return documents.Pair{}, false
		}
		b, ok := pr.scan()
		if !ok {
			if pr.err == nil {
				pr.err = fmt.Errorf("%w: line %d: sentence without a translation", ErrMalformedRecord, pr.line)
			}
			return documents.Pair{}, false
		}
		return documents.Pair{A: a, B: b}, true
	default:
		for {
			line, ok := pr.scan()
			if !ok {
				return documents.Pair{}, false
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			a, b, found := strings.Cut(line, "\t")
			if !found {
				pr.err = fmt.Errorf("%w: line %d: missing tab separator", ErrMalformedRecord, pr.line)
				return documents.Pair{}, false
			}
			if strings.Contains(b, "\t") {
				pr.err = fmt.Errorf("%w: line %d: more than two tab-separated fields", ErrMalformedRecord, pr.line)
				return documents.Pair{}, false
			}
			return documents.Pair{A: a, B: b}, true
		}
	}
}

// scan reads one line, stripping a trailing carriage return.
func (pr *pairReader) scan() (string, bool) {
	if !pr.sc.Scan() {
		if err := pr.sc.Err(); err != nil {
			pr.err = fmt.Errorf("%w: after line %d: %w", ErrRead, pr.line, err)
		}
		return "", false
	}
	pr.line++
	return strings.TrimSuffix(pr.sc.Text(), "\r"), true
}
