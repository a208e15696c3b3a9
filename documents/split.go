package documents

import "iter"

// Split lazily groups pairs into Documents whose sizes are drawn uniformly
// from [max(1, Min), Max]. The returned sequence can be ranged over again if
// pairs can; each pass draws fresh sizes.
//
// Complexity: O(N) time over N pairs, O(Max) buffered memory.
func Split(pairs iter.Seq[Pair], opts ...Option) iter.Seq[Document] {
	cfg := resolve(opts)

	return func(yield func(Document) bool) {
		if pairs == nil {
			return
		}

		var (
			size int
			doc  Document
		)
		for p := range pairs {
			if doc.A == nil {
				size = cfg.drawSize()
				doc = Document{A: make([]string, 0, size), B: make([]string, 0, size)}
			}
			doc.A = append(doc.A, p.A)
			doc.B = append(doc.B, p.B)
			if len(doc.A) < size {
				continue
			}
			if !yield(doc) {
				return
			}
			doc = Document{}
		}

		if doc.Len() > 0 {
			yield(doc)
		}
	}
}

// drawSize returns a size in [Min, Max].
func (o Options) drawSize() int {
	return o.Min + o.Source.Intn(o.Max-o.Min+1)
}
