// Package updater keeps a user's YAML document aligned with a newer defaults
// document: it replays recorded per-version relocations and value mappers
// onto the user tree, then merges in the defaults under configurable
// conflict rules, preserving user comments and key order where possible.
package updater

import "github.com/yamlkeep/yamlkeep/document"

// DefaultSeparator is the route separator used when none is supplied.
const DefaultSeparator = '.'

// Outcome reports what the versioned part of an update did.
type Outcome int

const (
	// OutcomeNoVersioning means no versioning strategy was configured, so no
	// relocations or mappers could run. The merge still took place.
	OutcomeNoVersioning Outcome = iota
	// OutcomeUpToDate means both documents carry the same version, so no
	// relocations or mappers ran. The merge still took place.
	OutcomeUpToDate
	// OutcomeUpdated means version steps were replayed (or a permitted
	// downgrade skipped them) and the merge took place.
	OutcomeUpdated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoVersioning:
		return "NoVersioning"
	case OutcomeUpToDate:
		return "UpToDate"
	case OutcomeUpdated:
		return "Updated"
	default:
		return "Unknown"
	}
}

// Update brings the user document up to date against the defaults document.
//
// The user document is mutated in place; the defaults document is read-only
// throughout and must not be mutated concurrently. Updates against the same
// user document must be serialized by the caller. On error the user document
// may have been mutated up to the point of failure — policy errors (missing
// defaults version, disabled downgrade) are detected before any mutation.
func Update(user, defaults *document.Document, settings *Settings, separator rune) (Outcome, error) {
	if settings == nil {
		settings = Default()
	}
	if separator == 0 {
		separator = DefaultSeparator
	}

	outcome, ignored, err := runVersionedOperations(user, defaults, settings, separator)
	if err != nil {
		return outcome, err
	}

	mergeDocuments(user.Section, defaults.Section, settings, ignored, separator)

	if v := settings.Versioning(); v != nil {
		v.StampVersion(user.Section, defaults.Section)
	}
	return outcome, nil
}
