package updater

import (
	"errors"
	"fmt"

	"github.com/yamlkeep/yamlkeep/document"
)

// ErrUnsupportedDowngrade is returned when the user document's version is
// newer than the defaults' and downgrading is disabled.
var ErrUnsupportedDowngrade = errors.New("downgrading is not enabled")

// runVersionedOperations resolves both versions and replays the recorded
// relocations and value mappers onto the user document, for every version id
// strictly above the user's and up to the defaults', in ascending order. It
// returns the outcome and the union of ignored routes (keyed by their
// separator-joined form) registered at the visited version ids.
//
// Policy checks (missing defaults version, downgrade) happen before any
// mutation of the user document.
func runVersionedOperations(user, defaults *document.Document, settings *Settings, separator rune) (Outcome, map[string]struct{}, error) {
	v := settings.Versioning()
	if v == nil {
		return OutcomeNoVersioning, nil, nil
	}

	defaultsVersion, err := v.DefaultsVersion(defaults.Section)
	if err != nil {
		return OutcomeNoVersioning, nil, err
	}
	userVersion := v.UserVersion(user.Section)

	switch cmp := userVersion.Compare(defaultsVersion); {
	case cmp > 0:
		if !settings.EnableDowngrading() {
			return OutcomeNoVersioning, nil, fmt.Errorf("%w: document version %s is newer than defaults version %s", ErrUnsupportedDowngrade, userVersion, defaultsVersion)
		}
		// Downgrades replay nothing: recorded operations only describe
		// forward movement. Merge still runs.
		return OutcomeUpdated, nil, nil
	case cmp == 0:
		return OutcomeUpToDate, nil, nil
	}

	ignored := make(map[string]struct{})
	current := userVersion
	for {
		next, err := current.Next()
		if err != nil {
			return OutcomeUpdated, nil, fmt.Errorf("enumerating version after %s: %w", current, err)
		}
		current = next
		versionID := current.String()

		relocations, err := settings.RelocationsAt(versionID, separator)
		if err != nil {
			return OutcomeUpdated, nil, err
		}
		applyRelocations(user.Section, relocations)

		applyMappers(user.Section, settings.MappersAt(versionID))

		ignoredRoutes, err := settings.IgnoredRoutes(versionID, separator)
		if err != nil {
			return OutcomeUpdated, nil, err
		}
		for _, rt := range ignoredRoutes {
			ignored[rt.Join(separator)] = struct{}{}
		}

		if current.Compare(defaultsVersion) == 0 {
			break
		}
	}

	return OutcomeUpdated, ignored, nil
}

// applyRelocations moves each source block, with its comments and
// descendants, to its destination, overwriting whatever lived there. Absent
// sources are skipped. Relocations are applied in registration order in a
// single pass; a destination that is also a source at the same version id is
// a configuration error and is not resolved here.
func applyRelocations(root *document.Section, relocations []Relocation) {
	for _, rel := range relocations {
		block, ok := root.Remove(rel.From)
		if !ok {
			continue
		}
		root.Set(rel.To, block)
	}
}

// applyMappers replaces the value at each mapper's route with the transform
// of the old value. Routes absent at replay time are skipped.
func applyMappers(root *document.Section, mappers []Mapper) {
	for _, m := range mappers {
		block, ok := root.Get(m.Route)
		if !ok {
			continue
		}
		entry, ok := block.(*document.Entry)
		if !ok {
			continue
		}
		entry.SetValue(m.Map(entry.Value()))
	}
}
