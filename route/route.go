// Package route provides the Route value type used to address nodes in a
// document tree as an ordered sequence of keys.
package route

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRoute is returned when a route string contains malformed escaping.
var ErrInvalidRoute = errors.New("invalid route")

// Route is an immutable ordered sequence of keys addressing a node in a
// document tree. The zero value (no keys) addresses the tree root.
type Route struct {
	keys []string
}

// From constructs a Route directly from the given keys. No splitting or
// unescaping is performed.
func From(keys ...string) Route {
	copied := make([]string, len(keys))
	copy(copied, keys)
	return Route{keys: copied}
}

// Parse splits s on unescaped occurrences of separator and returns the
// resulting Route. A backslash escapes the separator or another backslash,
// allowing keys to contain the separator literally. Any other escape, or a
// trailing bare backslash, is malformed.
func Parse(s string, separator rune) (Route, error) {
	var keys []string
	var key strings.Builder

	escaped := false
	for _, r := range s {
		if escaped {
			if r != separator && r != '\\' {
				return Route{}, fmt.Errorf("%w: unknown escape %q in %q", ErrInvalidRoute, string(r), s)
			}
			key.WriteRune(r)
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case separator:
			keys = append(keys, key.String())
			key.Reset()
		default:
			key.WriteRune(r)
		}
	}
	if escaped {
		return Route{}, fmt.Errorf("%w: trailing escape in %q", ErrInvalidRoute, s)
	}
	keys = append(keys, key.String())

	return Route{keys: keys}, nil
}

// Add returns a new Route with key appended. The receiver is not modified.
func (r Route) Add(key string) Route {
	keys := make([]string, len(r.keys)+1)
	copy(keys, r.keys)
	keys[len(r.keys)] = key
	return Route{keys: keys}
}

// Parent returns the Route without its last key. Calling Parent on the root
// route returns the root route.
func (r Route) Parent() Route {
	if len(r.keys) == 0 {
		return r
	}
	return From(r.keys[:len(r.keys)-1]...)
}

// Len returns the number of keys.
func (r Route) Len() int { return len(r.keys) }

// Key returns the key at position i.
func (r Route) Key(i int) string { return r.keys[i] }

// Last returns the final key. Calling Last on the root route returns "".
func (r Route) Last() string {
	if len(r.keys) == 0 {
		return ""
	}
	return r.keys[len(r.keys)-1]
}

// Keys returns a copy of the key sequence.
func (r Route) Keys() []string {
	copied := make([]string, len(r.keys))
	copy(copied, r.keys)
	return copied
}

// IsRoot reports whether the route addresses the tree root.
func (r Route) IsRoot() bool { return len(r.keys) == 0 }

// Equals reports structural equality of the key sequences.
func (r Route) Equals(other Route) bool {
	if len(r.keys) != len(other.keys) {
		return false
	}
	for i, k := range r.keys {
		if other.keys[i] != k {
			return false
		}
	}
	return true
}

// String renders the route with separator '.' and escaped keys. Use Join for
// a specific separator.
func (r Route) String() string { return r.Join('.') }

// Join renders the route using the given separator, escaping separator and
// backslash occurrences inside keys so the result round-trips through Parse.
func (r Route) Join(separator rune) string {
	var b strings.Builder
	for i, key := range r.keys {
		if i > 0 {
			b.WriteRune(separator)
		}
		for _, c := range key {
			if c == separator || c == '\\' {
				b.WriteRune('\\')
			}
			b.WriteRune(c)
		}
	}
	return b.String()
}
