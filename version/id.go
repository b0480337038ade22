package version

import (
	"fmt"
	"strconv"
	"strings"
)

// ID is the numeric decomposition of a concrete version string against a
// Pattern: one resolved integer per integer part, in declared order. This
// type is immutable — Next returns a new value.
type ID struct {
	pattern *Pattern
	values  []int
}

// IsZero reports whether the id is the zero value (not produced by a Pattern).
func (id ID) IsZero() bool { return id.pattern == nil }

// Compare orders two ids derived from the same pattern lexicographically by
// integer part. It returns -1, 0 or 1.
func (id ID) Compare(other ID) int {
	for i := range id.values {
		if i >= len(other.values) {
			break
		}
		switch {
		case id.values[i] < other.values[i]:
			return -1
		case id.values[i] > other.values[i]:
			return 1
		}
	}
	return 0
}

// Next returns the id with the last integer part advanced by one. Advancing
// past that part's upper bound does not carry into higher parts; it fails
// with ErrRangeExceeded instead.
func (id ID) Next() (ID, error) {
	ranges := id.pattern.ranges()
	last := len(id.values) - 1
	if id.values[last]+1 > ranges[last].max {
		return ID{}, fmt.Errorf("%w: part value %d at upper bound %d", ErrRangeExceeded, id.values[last], ranges[last].max)
	}
	values := make([]int, len(id.values))
	copy(values, id.values)
	values[last]++
	return ID{pattern: id.pattern, values: values}, nil
}

// String renders the id by concatenating literal parts verbatim and integer
// parts without leading zeros, in pattern order.
func (id ID) String() string {
	var b strings.Builder
	next := 0
	for _, part := range id.pattern.parts {
		if part.isRange {
			b.WriteString(strconv.Itoa(id.values[next]))
			next++
			continue
		}
		b.WriteString(part.literal)
	}
	return b.String()
}
