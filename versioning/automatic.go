package versioning

import (
	"fmt"
	"math"

	"github.com/yamlkeep/yamlkeep/document"
	"github.com/yamlkeep/yamlkeep/route"
	"github.com/yamlkeep/yamlkeep/version"
)

// Automatic is the versioning strategy that reads version ids from the
// documents themselves at a configured route.
type Automatic struct {
	pattern *version.Pattern
	route   route.Route
}

// NewAutomatic creates an Automatic strategy reading ids at rt.
func NewAutomatic(pattern *version.Pattern, rt route.Route) *Automatic {
	return &Automatic{pattern: pattern, route: rt}
}

// basicPattern accepts any positive integer as a version id.
var basicPattern = func() *version.Pattern {
	p, err := version.NewPattern(version.Range(1, math.MaxInt))
	if err != nil {
		panic(err)
	}
	return p
}()

// Basic returns automatic versioning over a plain positive-integer id stored
// under the given top-level key, the common "config-version: 3" case.
func Basic(key string) *Automatic {
	return NewAutomatic(basicPattern, route.From(key))
}

// UserVersion reads and parses the user document's id, falling back to the
// pattern's oldest id when the route is absent or the value does not match.
func (a *Automatic) UserVersion(user *document.Section) version.ID {
	if value, ok := user.GetValue(a.route); ok {
		if id, parsed := a.pattern.TryParse(stringValue(value)); parsed {
			return id
		}
	}
	return a.pattern.Oldest()
}

// DefaultsVersion reads and parses the defaults document's id.
func (a *Automatic) DefaultsVersion(defaults *document.Section) (version.ID, error) {
	value, ok := defaults.GetValue(a.route)
	if !ok {
		return version.ID{}, fmt.Errorf("%w: nothing at route %q", ErrMissingVersion, a.route)
	}
	id, parsed := a.pattern.TryParse(stringValue(value))
	if !parsed {
		return version.ID{}, fmt.Errorf("%w: %q at route %q does not match the pattern", ErrMissingVersion, stringValue(value), a.route)
	}
	return id, nil
}

// Oldest returns the pattern's oldest id.
func (a *Automatic) Oldest() version.ID { return a.pattern.Oldest() }

// StampVersion copies the defaults' version value into the user document at
// the versioning route, keeping any comments already attached there.
func (a *Automatic) StampVersion(user, defaults *document.Section) {
	if value, ok := defaults.GetValue(a.route); ok {
		user.SetValue(a.route, value)
	}
}
