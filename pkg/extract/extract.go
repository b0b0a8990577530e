// Package extract implements the three extraction strategies: byte
// offsets, character (rune) offsets, and delimited fields. Byte and
// character extraction are pure per-line functions; field extraction
// works on whole records because a quoted field may span physical
// lines. All three are also exposed as stream extractors that consume
// a reader and write one output line per input line or record.
package extract

import (
	"io"

	"github.com/sanjayts/kat/pkg/types"
)

// Extractor consumes one input source and writes the selected content
// to w, one output line per input line or record. A line that selects
// nothing still produces an empty output line.
type Extractor interface {
	Process(r io.Reader, w io.Writer) error
}

// ForSelector returns the extractor for the selector's mode. The
// delimiter only matters in fields mode and is ignored otherwise.
func ForSelector(sel types.Selector, delim byte) Extractor {
	set := sel.Positions.IndexSet()
	switch sel.Mode {
	case types.SelectChars:
		return NewChars(set)
	case types.SelectFields:
		return NewFields(set, delim)
	default:
		return NewBytes(set)
	}
}
