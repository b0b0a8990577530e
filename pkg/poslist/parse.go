// Package poslist parses cut-style position lists such as "1,3-5,8"
// into ordered half-open ranges of zero-based indices.
package poslist

import (
	"strconv"
	"strings"

	"github.com/sanjayts/kat/pkg/types"
)

// Parse turns a comma-separated list of 1-based positions into ordered
// zero-based half-open ranges. Each item is either a single positive
// integer N (producing [N-1, N)) or a range N-M with N < M (producing
// [N-1, M)). Item order is preserved; overlapping ranges are kept as
// written and deduplicated later by Positions.IndexSet.
//
// The validity checks run in a fixed precedence: list-level shape
// (empty string, leading/trailing comma), item-level shape (dash at
// either end, more than one dash), numeric shape (sign characters,
// non-digits), the zero-value check, and finally range ordering.
func Parse(text string) (types.Positions, error) {
	if text == "" || strings.HasPrefix(text, ",") || strings.HasSuffix(text, ",") {
		return nil, &IllegalValueError{Value: text}
	}

	var positions types.Positions
	for _, item := range strings.Split(text, ",") {
		if strings.HasPrefix(item, "-") || strings.HasSuffix(item, "-") {
			return nil, &IllegalValueError{Value: item}
		}

		switch bounds := strings.Split(item, "-"); len(bounds) {
		case 1:
			n, err := parseValue(bounds[0])
			if err != nil {
				return nil, err
			}
			positions = append(positions, types.Range{Start: n - 1, End: n})
		case 2:
			start, err := parseValue(bounds[0])
			if err != nil {
				return nil, err
			}
			end, err := parseValue(bounds[1])
			if err != nil {
				return nil, err
			}
			if end <= start {
				return nil, &RangeOrderError{First: start, Second: end}
			}
			positions = append(positions, types.Range{Start: start - 1, End: end})
		default:
			return nil, &IllegalValueError{Value: item}
		}
	}
	return positions, nil
}

// parseValue parses one numeric component. Explicit signs are rejected
// before strconv gets a chance to accept them; leading zeros are fine
// ("007" parses to 7). A successfully parsed zero is its own error,
// distinct from the illegal-value case.
func parseValue(s string) (int, error) {
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") ||
		strings.HasSuffix(s, "-") || strings.HasSuffix(s, "+") {
		return 0, &IllegalValueError{Value: s}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &IllegalValueError{Value: s}
	}
	if n == 0 {
		return 0, ErrZeroValue
	}
	return n, nil
}
