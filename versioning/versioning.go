// Package versioning resolves version ids for user and defaults documents.
// There are exactly two strategies: Manual (ids supplied as strings) and
// Automatic (ids read from the documents at a configured route).
package versioning

import (
	"errors"
	"fmt"

	"github.com/yamlkeep/yamlkeep/document"
	"github.com/yamlkeep/yamlkeep/version"
)

// ErrMissingVersion is returned when the defaults document does not carry a
// valid version id. The defaults are authored alongside the code, so this is
// a configuration error, never a runtime fallback.
var ErrMissingVersion = errors.New("missing or invalid defaults version")

// Versioning obtains comparable version ids for the two sides of an update.
//
// An absent or unparsable user version is not an error: it is defined to
// mean the pattern's oldest id, so every recorded operation is replayed.
type Versioning interface {
	// UserVersion returns the user document's version id, falling back to
	// the pattern's oldest id when absent or invalid.
	UserVersion(user *document.Section) version.ID
	// DefaultsVersion returns the defaults document's version id, failing
	// with ErrMissingVersion when absent or invalid.
	DefaultsVersion(defaults *document.Section) (version.ID, error)
	// Oldest returns the pattern's oldest id.
	Oldest() version.ID
	// StampVersion writes the defaults' version id into the user document
	// after a successful update, so re-running the update is a no-op.
	// Strategies without a document route do nothing.
	StampVersion(user, defaults *document.Section)
}

// stringValue renders a version value read from a document. Plain version
// ids are often parsed by YAML as numbers, so non-strings are formatted.
func stringValue(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
