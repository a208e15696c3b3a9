package corpus

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"
)

// ErrMarkup wraps tokenizer failures other than end of input.
var ErrMarkup = errors.New("corpus: cannot tokenize markup")

// hidden elements never contribute visible text.
var hidden = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Template: true,
	atom.Title:    true,
}

// block elements terminate the current text block.
var block = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Body: true, atom.Br: true, atom.Caption: true, atom.Dd: true, atom.Details: true,
	atom.Dialog: true, atom.Div: true, atom.Dl: true, atom.Dt: true, atom.Fieldset: true,
	atom.Figcaption: true, atom.Figure: true, atom.Footer: true, atom.Form: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Head: true, atom.Header: true, atom.Hr: true, atom.Html: true, atom.Li: true,
	atom.Main: true, atom.Nav: true, atom.Ol: true, atom.Option: true, atom.P: true,
	atom.Pre: true, atom.Section: true, atom.Summary: true, atom.Table: true,
	atom.Tbody: true, atom.Td: true, atom.Tfoot: true, atom.Th: true, atom.Thead: true,
	atom.Tr: true, atom.Ul: true,
}

// Extract sniffs raw and dispatches to FromHTML or FromText. Input counts as
// HTML when mimetype detects a document, or when it contains at least one
// start or end tag of a known HTML element (fragments such as "<span>...").
func Extract(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	if mimetype.Detect([]byte(raw)).Is("text/html") || hasKnownTag(raw) {
		return FromHTML(raw)
	}
	return FromText(raw), nil
}

// hasKnownTag reports whether raw holds a start, end or self-closing tag
// naming a standard HTML element.
func hasKnownTag(raw string) bool {
	z := html.NewTokenizer(strings.NewReader(raw))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if atom.Lookup(name) != 0 {
				return true
			}
		}
	}
}

// FromText treats text as a single block and splits it into sentences.
func FromText(text string) []string {
	return split(normalize(text), nil)
}

// FromHTML returns the sentences of the visible text in markup, in document order.
func FromHTML(markup string) ([]string, error) {
	var (
		out  []string
		cur  strings.Builder
		skip int
	)
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		out = split(normalize(cur.String()), out)
		cur.Reset()
	}

	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			flush()
			if err := z.Err(); err != nil && !errors.Is(err, io.EOF) {
				return out, fmt.Errorf("%w: %w", ErrMarkup, err)
			}
			return out, nil

		case html.TextToken:
			if skip == 0 {
				cur.Write(z.Text())
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if block[a] {
				flush()
			}
			if hidden[a] && tt == html.StartTagToken {
				skip++
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if hidden[a] && skip > 0 {
				skip--
			}
			if block[a] {
				flush()
			}
		}
	}
}

// Sentences normalizes text and splits it into sentences.
func Sentences(text string) []string {
	return split(normalize(text), nil)
}

// normalize applies NFC and collapses whitespace runs to one space, trimming the ends.
func normalize(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// split appends the sentences of normalized text to out.
func split(text string, out []string) []string {
	start := 0
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isTerminal(r) {
			i += size
			continue
		}

		// Consume the whole punctuation run.
		j := i + size
		for j < len(text) {
			nr, ns := utf8.DecodeRuneInString(text[j:])
			if !isTerminal(nr) {
				break
			}
			j += ns
		}

		if j == len(text) || text[j] == ' ' {
			out = appendSentence(out, text[start:j])
			start = j
		}
		i = j
	}
	return appendSentence(out, text[start:])
}

func appendSentence(out []string, s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return out
	}
	return append(out, s)
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
