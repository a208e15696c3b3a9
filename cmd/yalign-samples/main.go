// Command yalign-samples turns an aligned sentence-pair corpus into labeled
// training samples for a sentence-alignment classifier.
//
// Usage:
//
//	yalign-samples -input corpus.tsv -output samples.parquet [-seed 42] [-progress]
//
// Settings come from -config (YAML), then .env and YALIGN_* variables, then
// flags. Input "-" reads stdin; an empty or "-" output writes TSV to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/katalvlaran/yalign/internal/config"
	"github.com/katalvlaran/yalign/sink"
	"github.com/katalvlaran/yalign/training"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("yalign-samples: ")

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}
	if err = run(cfg); err != nil {
		log.Fatal(err)
	}
}

// loadConfig layers YAML, environment and explicitly set flags.
func loadConfig() (config.Config, error) {
	var (
		path  string
		flags config.Config
	)
	flag.StringVar(&path, "config", "", "YAML configuration file")
	flag.StringVar(&flags.Input, "input", "", "corpus file, \"-\" for stdin")
	flag.StringVar(&flags.Output, "output", "", "samples file (.parquet or .tsv), empty for stdout")
	flag.StringVar(&flags.OutputFormat, "output-format", "", "tsv or parquet (default: from -output extension)")
	flag.StringVar(&flags.RecordFormat, "record-format", "", "tab (A<TAB>B per line) or interleaved (A and B on alternate lines)")
	flag.IntVar(&flags.MinDocument, "min", 0, "minimum pairs per document")
	flag.IntVar(&flags.MaxDocument, "max", 0, "maximum pairs per document")
	flag.IntVar(&flags.Span, "span", 0, "locality of negative sampling")
	flag.Int64Var(&flags.Seed, "seed", 0, "random seed, 0 for non-deterministic")
	flag.BoolVar(&flags.Progress, "progress", false, "show a progress bar on stderr")
	flag.Parse()

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if err = config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = flags.Input
		case "output":
			cfg.Output = flags.Output
		case "output-format":
			cfg.OutputFormat = flags.OutputFormat
		case "record-format":
			cfg.RecordFormat = flags.RecordFormat
		case "min":
			cfg.MinDocument = flags.MinDocument
		case "max":
			cfg.MaxDocument = flags.MaxDocument
		case "span":
			cfg.Span = flags.Span
		case "seed":
			cfg.Seed = flags.Seed
		case "progress":
			cfg.Progress = flags.Progress
		}
	})
	return cfg, cfg.Validate()
}

func run(cfg config.Config) error {
	in, size, err := openInput(cfg.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := openOutput(cfg.Output, cfg.OutputFormat)
	if err != nil {
		return err
	}

	var (
		r   io.Reader = in
		p   *mpb.Progress
		bar *mpb.Bar
	)
	if cfg.Progress && size > 0 {
		p = mpb.New(mpb.WithWidth(80), mpb.WithOutput(os.Stderr))
		bar = p.AddBar(size,
			mpb.PrependDecorators(
				decor.Name("Reading corpus: "),
				decor.CountersKibiByte("% .1f / % .1f", decor.WCSyncSpace),
			),
			mpb.AppendDecorators(
				decor.OnComplete(decor.AverageETA(decor.ET_STYLE_GO), "done!"),
			),
		)
		proxy := bar.ProxyReader(in)
		defer proxy.Close()
		r = proxy
	}

	stream := training.NewStream(r, cfg.StreamOptions()...)
	written, werr := sink.Drain(stream.Samples(), out)
	cerr := out.Close()

	if bar != nil {
		if werr != nil || stream.Err() != nil {
			bar.Abort(false)
		} else {
			bar.SetTotal(-1, true)
		}
		p.Wait()
	}

	switch {
	case werr != nil:
		return fmt.Errorf("writing samples: %w", werr)
	case stream.Err() != nil:
		return fmt.Errorf("reading corpus: %w", stream.Err())
	case cerr != nil:
		return fmt.Errorf("closing output: %w", cerr)
	}

	st := stream.Stats()
	log.Printf("%d pairs in %d documents -> %d samples (%d positive, %d negative)",
		st.Pairs, st.Documents, written, st.Positive, st.Negative)
	return nil
}

// openInput returns the corpus reader and its size in bytes when known.
func openInput(path string) (io.ReadCloser, int64, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), 0, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening corpus: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, fmt.Errorf("stat corpus: %w", err)
	}
	return f, info.Size(), nil
}

func openOutput(path, format string) (sink.Writer, error) {
	if path == "" || path == "-" {
		if format != "" && format != sink.FormatTSV {
			return nil, fmt.Errorf("%s output needs a file, not stdout", format)
		}
		return sink.NewTSV(os.Stdout), nil
	}
	return sink.Create(path, format)
}
