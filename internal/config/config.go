// Package config loads settings for the yalign commands from a YAML file,
// a .env file and YALIGN_* environment variables, in that order of precedence
// (later sources win). Command-line flags are applied last by the commands.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/yalign/documents"
	"github.com/katalvlaran/yalign/shuffle"
	"github.com/katalvlaran/yalign/sink"
	"github.com/katalvlaran/yalign/training"
)

// ErrInvalidConfig wraps every validation and parsing failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "YALIGN_"

// Config holds the knobs of a sample-generation run.
type Config struct {
	Input        string `yaml:"input"`
	Output       string `yaml:"output"`
	OutputFormat string `yaml:"output_format"`
	RecordFormat string `yaml:"record_format"`
	MinDocument  int    `yaml:"min_document"`
	MaxDocument  int    `yaml:"max_document"`
	Span         int    `yaml:"span"`
	Seed         int64  `yaml:"seed"`
	Progress     bool   `yaml:"progress"`
}

// Default returns the library defaults: documents of 5..30 pairs, span 10,
// tab-separated input, format inferred from the output name, system randomness.
func Default() Config {
	return Config{
		RecordFormat: training.TabSeparated.String(),
		MinDocument:  documents.DefaultMin,
		MaxDocument:  documents.DefaultMax,
		Span:         shuffle.DefaultSpan,
	}
}

// Load reads a YAML file over Default. Unknown keys are rejected; an empty
// file yields the defaults. An empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// ApplyEnv loads .env files (a missing file is fine) and then overrides cfg
// with any YALIGN_* variables that are set.
func ApplyEnv(cfg *Config, envFiles ...string) error {
	_ = godotenv.Load(envFiles...)

	str := func(name string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			*dst = v
		}
	}
	num := func(name string, dst *int) error {
		v, ok := os.LookupEnv(EnvPrefix + name)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalidConfig, EnvPrefix, name, v)
		}
		*dst = n
		return nil
	}

	str("INPUT", &cfg.Input)
	str("OUTPUT", &cfg.Output)
	str("OUTPUT_FORMAT", &cfg.OutputFormat)
	str("RECORD_FORMAT", &cfg.RecordFormat)
	if err := num("MIN_DOCUMENT", &cfg.MinDocument); err != nil {
		return err
	}
	if err := num("MAX_DOCUMENT", &cfg.MaxDocument); err != nil {
		return err
	}
	if err := num("SPAN", &cfg.Span); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvPrefix + "SEED"); ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED=%q", ErrInvalidConfig, EnvPrefix, v)
		}
		cfg.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvPrefix + "PROGRESS"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sPROGRESS=%q", ErrInvalidConfig, EnvPrefix, v)
		}
		cfg.Progress = b
	}
	return nil
}

// Validate checks document bounds and format names.
func (c Config) Validate() error {
	if c.MaxDocument < 1 || c.MaxDocument < max(1, c.MinDocument) {
		return fmt.Errorf("%w: document bounds [%d, %d]", ErrInvalidConfig, c.MinDocument, c.MaxDocument)
	}
	if _, err := training.ParseFormat(c.RecordFormat); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.OutputFormat) {
	case "", sink.FormatTSV, sink.FormatParquet:
	default:
		return fmt.Errorf("%w: output format %q", ErrInvalidConfig, c.OutputFormat)
	}
	return nil
}

// StreamOptions translates the config into training stream options.
// Validate must have succeeded.
func (c Config) StreamOptions() []training.Option {
	format, _ := training.ParseFormat(c.RecordFormat)
	opts := []training.Option{
		training.WithFormat(format),
		training.WithBounds(c.MinDocument, c.MaxDocument),
		training.WithSpan(c.Span),
	}
	if c.Seed != 0 {
		opts = append(opts, training.WithSeed(c.Seed))
	}
	return opts
}
