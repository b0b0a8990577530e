package types

import "fmt"

// SelectMode identifies which extraction strategy a run uses.
type SelectMode int

const (
	// SelectBytes selects individual bytes by zero-based offset.
	SelectBytes SelectMode = iota + 1
	// SelectChars selects code points by zero-based rune index.
	SelectChars
	// SelectFields selects delimited columns by zero-based column index.
	SelectFields
)

// String returns the human-readable mode name.
func (m SelectMode) String() string {
	switch m {
	case SelectBytes:
		return "bytes"
	case SelectChars:
		return "characters"
	case SelectFields:
		return "fields"
	default:
		return fmt.Sprintf("SelectMode(%d)", int(m))
	}
}

// Valid reports whether m is one of the three defined modes.
func (m SelectMode) Valid() bool {
	return m == SelectBytes || m == SelectChars || m == SelectFields
}

// Selector is the extraction mode chosen for a run together with the
// positions to extract. Exactly one mode is active; the selector is
// built once at startup and never mutated afterwards.
type Selector struct {
	Mode      SelectMode
	Positions Positions
}
