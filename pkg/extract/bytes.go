package extract

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sanjayts/kat/pkg/types"
)

// Bytes keeps the bytes of line whose zero-based offset is in set, in
// input order, and decodes the result lossily. Selected bytes can land
// in the middle of a multi-byte UTF-8 sequence; the rune conversion
// replaces each stray byte with its own U+FFFD rather than surfacing
// an error or collapsing a run of them into one marker.
func Bytes(line string, set types.IndexSet) string {
	var buf []byte
	for i := 0; i < len(line); i++ {
		if set.Contains(i) {
			buf = append(buf, line[i])
		}
	}
	return string([]rune(string(buf)))
}

// ByteExtractor streams a source through Bytes line by line.
type ByteExtractor struct {
	set types.IndexSet
}

// NewBytes creates a byte-offset extractor for the given index set.
func NewBytes(set types.IndexSet) *ByteExtractor {
	return &ByteExtractor{set: set}
}

// Process reads r line by line and writes each line's selected bytes.
func (e *ByteExtractor) Process(r io.Reader, w io.Writer) error {
	return eachLine(r, w, func(line string) string {
		return Bytes(line, e.set)
	})
}

// eachLine applies cut to every line of r and writes the results,
// newline-terminated, to w. Lines are read unbounded; there is no
// length cap. A final line without a trailing newline still counts.
func eachLine(r io.Reader, w io.Writer, cut func(string) string) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if _, werr := fmt.Fprintln(w, cut(line)); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
