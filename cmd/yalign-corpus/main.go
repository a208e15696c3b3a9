// Command yalign-corpus extracts sentences from a text or HTML document and
// prints one sentence per line.
//
// Usage:
//
//	yalign-corpus [-max-bytes N] [file]
//
// Without a file argument the document is read from stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/yalign/corpus"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("yalign-corpus: ")

	maxBytes := flag.Int64("max-bytes", 64<<20, "refuse documents larger than this")
	flag.Parse()

	in := io.Reader(os.Stdin)
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatalf("opening document: %v", err)
		}
		defer f.Close()
		in = f
	}

	raw, err := io.ReadAll(io.LimitReader(in, *maxBytes+1))
	if err != nil {
		log.Fatalf("reading document: %v", err)
	}
	if int64(len(raw)) > *maxBytes {
		log.Fatalf("document exceeds %d bytes", *maxBytes)
	}

	sentences, err := corpus.Extract(string(raw))
	if err != nil {
		log.Fatalf("extracting sentences: %v", err)
	}

	w := bufio.NewWriter(os.Stdout)
	for _, s := range sentences {
		fmt.Fprintln(w, s)
	}
	if err = w.Flush(); err != nil {
		log.Fatalf("writing output: %v", err)
	}
}
