package types

// Range is a zero-based index span [Start, End) - half-open interval.
// A Range is always non-empty: Start < End is enforced when ranges are
// parsed, not here.
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains reports whether the zero-based index i falls inside the range.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// Positions is an ordered list of ranges as written by the user.
// Ranges may overlap and need not be sorted; insertion order is the
// order the user wrote them.
type Positions []Range

// IndexSet flattens the positions into a deduplicated set of zero-based
// indices. Overlapping ranges collapse; this cannot fail.
func (p Positions) IndexSet() IndexSet {
	set := make(IndexSet)
	for _, r := range p {
		for i := r.Start; i < r.End; i++ {
			set.Add(i)
		}
	}
	return set
}

// IndexSet is a set of zero-based indices. Only membership matters;
// there is no ordering guarantee.
type IndexSet map[int]struct{}

// Add inserts the index i into the set.
func (s IndexSet) Add(i int) {
	s[i] = struct{}{}
}

// Contains reports whether the index i is in the set.
func (s IndexSet) Contains(i int) bool {
	_, ok := s[i]
	return ok
}
