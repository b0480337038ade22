// Package version provides version patterns and comparable version ids used
// to order schema revisions of a document.
package version

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidPattern is returned when a pattern definition is malformed.
var ErrInvalidPattern = errors.New("invalid version pattern")

// ErrRangeExceeded is returned when advancing a version id past the upper
// bound of its last integer part.
var ErrRangeExceeded = errors.New("version range exceeded")

// Part is one element of a version pattern: either a fixed literal string
// (a separator) or an inclusive integer range rendered without leading zeros.
type Part struct {
	literal string
	min     int
	max     int
	isRange bool
}

// Literal returns a fixed-string part.
func Literal(s string) Part {
	return Part{literal: s}
}

// Range returns a bounded integer part covering [min, max] inclusive.
// Bounds are validated by NewPattern.
func Range(min, max int) Part {
	return Part{min: min, max: max, isRange: true}
}

// Pattern describes the lexical shape of version identifiers as an ordered
// sequence of parts. This type is immutable.
type Pattern struct {
	parts []Part
}

// NewPattern constructs a Pattern from the given parts.
func NewPattern(parts ...Part) (*Pattern, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: no parts", ErrInvalidPattern)
	}
	for i, p := range parts {
		if p.isRange && p.min > p.max {
			return nil, fmt.Errorf("%w: part %d has min %d > max %d", ErrInvalidPattern, i, p.min, p.max)
		}
	}
	copied := make([]Part, len(parts))
	copy(copied, parts)
	return &Pattern{parts: copied}, nil
}

// TryParse attempts to match s against the pattern. It returns the resolved
// id and true on success. A mismatch is not an error: callers use false to
// mean "invalid or absent id".
func (p *Pattern) TryParse(s string) (ID, bool) {
	values := make([]int, 0, len(p.parts))
	remaining := s

	for _, part := range p.parts {
		if !part.isRange {
			if len(remaining) < len(part.literal) || remaining[:len(part.literal)] != part.literal {
				return ID{}, false
			}
			remaining = remaining[len(part.literal):]
			continue
		}

		// Greedily consume the longest digit run whose value fits the range.
		digits := 0
		for digits < len(remaining) && remaining[digits] >= '0' && remaining[digits] <= '9' {
			digits++
		}
		matched := -1
		for l := digits; l > 0; l-- {
			run := remaining[:l]
			if l > 1 && run[0] == '0' {
				continue
			}
			value, err := strconv.Atoi(run)
			if err != nil {
				continue
			}
			if value >= part.min && value <= part.max {
				matched = l
				values = append(values, value)
				break
			}
		}
		if matched < 0 {
			return ID{}, false
		}
		remaining = remaining[matched:]
	}

	if remaining != "" {
		return ID{}, false
	}
	return ID{pattern: p, values: values}, true
}

// Oldest returns the id built by substituting every integer part with its
// lower bound.
func (p *Pattern) Oldest() ID {
	values := make([]int, 0, len(p.parts))
	for _, part := range p.parts {
		if part.isRange {
			values = append(values, part.min)
		}
	}
	return ID{pattern: p, values: values}
}

// ranges returns the integer parts in declared order.
func (p *Pattern) ranges() []Part {
	var out []Part
	for _, part := range p.parts {
		if part.isRange {
			out = append(out, part)
		}
	}
	return out
}
