// Package kat provides cut-style extraction of byte offsets, character
// offsets, or delimited fields from line-oriented text.
//
// Kat is a Go port of the original kat utility. Positions are written
// the way cut users write them, as a 1-based comma-separated list of
// numbers and ranges, and exactly one of the three selection modes is
// active per run.
//
// # Basic Usage
//
// Parse a position list, build a cutter, and run it over inputs:
//
//	positions, err := kat.ParseList("1,3-5")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cutter, err := kat.New(kat.Selector{Mode: kat.SelectFields, Positions: positions})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := cutter.Run([]string{"data.tsv"}); err != nil {
//	    log.Fatal(err)
//	}
//
// # One-shot extraction
//
// For in-memory input, CutString runs a selector over a string:
//
//	out, err := kat.CutString(sel, '\t', "a\tb\tc\n")
package kat

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sanjayts/kat/pkg/extract"
	"github.com/sanjayts/kat/pkg/poslist"
	"github.com/sanjayts/kat/pkg/types"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/sanjayts/kat" without subpackages.
type (
	// Range is a half-open [Start, End) span of zero-based indices.
	Range = types.Range

	// Positions is the ordered list of ranges as written by the user.
	Positions = types.Positions

	// IndexSet is the deduplicated set of zero-based indices.
	IndexSet = types.IndexSet

	// Selector is the extraction mode plus the positions to extract.
	Selector = types.Selector

	// SelectMode identifies the active extraction strategy.
	SelectMode = types.SelectMode
)

// Re-export the selection modes.
const (
	SelectBytes  = types.SelectBytes
	SelectChars  = types.SelectChars
	SelectFields = types.SelectFields
)

// StdinName is the input name that selects standard input.
const StdinName = "-"

// ParseList parses a cut-style position list such as "1,3-5,8".
func ParseList(text string) (Positions, error) {
	return poslist.Parse(text)
}

// ParseDelimiter validates a field delimiter argument.
func ParseDelimiter(s string) (byte, error) {
	return types.ParseDelimiter(s)
}

// Cutter applies one configured selector to input sources.
type Cutter struct {
	extractor extract.Extractor
	stdin     io.Reader
	out       io.Writer
	errOut    io.Writer
}

// config holds cutter configuration collected from options.
type config struct {
	delimiter byte
	stdin     io.Reader
	out       io.Writer
	errOut    io.Writer
}

// Option configures a Cutter.
type Option func(*config)

// WithDelimiter sets the field delimiter. Default is tab. Only fields
// mode consults it.
func WithDelimiter(d byte) Option {
	return func(c *config) {
		c.delimiter = d
	}
}

// WithStdin sets the reader used for the "-" input name.
// Default is os.Stdin.
func WithStdin(r io.Reader) Option {
	return func(c *config) {
		c.stdin = r
	}
}

// WithOutput sets the destination for extracted content.
// Default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.out = w
	}
}

// WithErrOutput sets the destination for per-source failure reports.
// Default is os.Stderr.
func WithErrOutput(w io.Writer) Option {
	return func(c *config) {
		c.errOut = w
	}
}

// New creates a Cutter for the given selector.
//
// By default, the cutter:
//   - Splits fields on tab (change with WithDelimiter)
//   - Reads "-" from os.Stdin and writes to os.Stdout
//   - Reports per-source failures to os.Stderr
//
// The selector must carry one of the three defined modes; the cutter
// is immutable once built.
func New(sel Selector, opts ...Option) (*Cutter, error) {
	if !sel.Mode.Valid() {
		return nil, errors.New("must specify one of --bytes, --characters, or --fields")
	}

	cfg := &config{
		delimiter: types.DefaultDelimiter,
		stdin:     os.Stdin,
		out:       os.Stdout,
		errOut:    os.Stderr,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Cutter{
		extractor: extract.ForSelector(sel, cfg.delimiter),
		stdin:     cfg.stdin,
		out:       cfg.out,
		errOut:    cfg.errOut,
	}, nil
}

// Run processes each named input in order. The name "-" selects
// standard input. A source that fails to open is reported to the error
// output as "name: error" and the remaining sources still run; a read
// or write failure mid-source is fatal. Each source is closed before
// the next one opens. An empty list means standard input.
func (c *Cutter) Run(files []string) error {
	if len(files) == 0 {
		files = []string{StdinName}
	}
	for _, file := range files {
		if err := c.runOne(file); err != nil {
			return err
		}
	}
	return nil
}

// Process streams one already-open source through the configured
// extractor.
func (c *Cutter) Process(r io.Reader) error {
	return c.extractor.Process(r, c.out)
}

// runOne opens, processes, and closes a single input source. Open
// failures are reported and swallowed; processing failures propagate.
func (c *Cutter) runOne(file string) error {
	if file == StdinName {
		return c.Process(c.stdin)
	}
	f, err := os.Open(file)
	if err != nil {
		fmt.Fprintf(c.errOut, "%s: %v\n", file, err)
		return nil
	}
	defer f.Close()
	return c.Process(f)
}

// CutString runs a selector over an in-memory input and returns the
// extracted output. Useful for tests and one-shot extraction.
func CutString(sel Selector, delim byte, input string) (string, error) {
	var out strings.Builder
	cutter, err := New(sel, WithDelimiter(delim), WithOutput(&out))
	if err != nil {
		return "", err
	}
	if err := cutter.Process(strings.NewReader(input)); err != nil {
		return "", err
	}
	return out.String(), nil
}
