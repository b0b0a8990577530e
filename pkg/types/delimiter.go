package types

import "fmt"

// DefaultDelimiter separates fields when no delimiter is configured.
const DefaultDelimiter byte = '\t'

// ParseDelimiter validates a delimiter argument and returns it as a
// single byte. The delimiter must be exactly one single-byte character;
// anything else (empty, multiple characters, a multi-byte rune) is a
// configuration error.
func ParseDelimiter(s string) (byte, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("bad delimiter %q: must be a single character", s)
	}
	return s[0], nil
}
