package extract

import (
	"encoding/csv"
	"io"

	"github.com/sanjayts/kat/pkg/types"
)

// FieldExtractor selects delimited columns from each record of a
// source. Records follow standard CSV quoting with a single-byte
// delimiter: a quoted field may contain the delimiter or newlines, so
// one logical record can span several physical lines. Output records
// are re-serialized with the same delimiter and quoting.
type FieldExtractor struct {
	set   types.IndexSet
	delim byte
}

// NewFields creates a field extractor for the given index set and
// delimiter.
func NewFields(set types.IndexSet, delim byte) *FieldExtractor {
	return &FieldExtractor{set: set, delim: delim}
}

// Process reads delimited records from r and writes one output record
// per input record, keeping only the selected columns. Records with
// differing field counts are accepted; a record selecting no columns
// still produces an empty output record.
func (e *FieldExtractor) Process(r io.Reader, w io.Writer) error {
	reader := csv.NewReader(r)
	reader.Comma = rune(e.delim)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	writer := csv.NewWriter(w)
	writer.Comma = rune(e.delim)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		kept := make([]string, 0, len(record))
		for i, field := range record {
			if e.set.Contains(i) {
				kept = append(kept, field)
			}
		}
		if err := writer.Write(kept); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
