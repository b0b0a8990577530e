package extract

import (
	"io"

	"github.com/sanjayts/kat/pkg/types"
)

// Chars keeps the code points of line whose zero-based rune index is
// in set, in input order. Indices count runes, not bytes, so the
// result is always valid text and no lossy decode is needed.
func Chars(line string, set types.IndexSet) string {
	var buf []rune
	for i, c := range []rune(line) {
		if set.Contains(i) {
			buf = append(buf, c)
		}
	}
	return string(buf)
}

// CharExtractor streams a source through Chars line by line.
type CharExtractor struct {
	set types.IndexSet
}

// NewChars creates a character-offset extractor for the given index set.
func NewChars(set types.IndexSet) *CharExtractor {
	return &CharExtractor{set: set}
}

// Process reads r line by line and writes each line's selected runes.
func (e *CharExtractor) Process(r io.Reader, w io.Writer) error {
	return eachLine(r, w, func(line string) string {
		return Chars(line, e.set)
	})
}
