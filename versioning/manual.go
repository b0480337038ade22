package versioning

import (
	"fmt"

	"github.com/yamlkeep/yamlkeep/document"
	"github.com/yamlkeep/yamlkeep/version"
)

// Manual is the versioning strategy with both version ids supplied as
// literal strings at construction time.
type Manual struct {
	pattern    *version.Pattern
	userID     string
	defaultsID string
}

// NewManual creates a Manual strategy over the given pattern and id strings.
func NewManual(pattern *version.Pattern, userID, defaultsID string) *Manual {
	return &Manual{pattern: pattern, userID: userID, defaultsID: defaultsID}
}

// UserVersion parses the supplied user id, falling back to the pattern's
// oldest id when it does not match.
func (m *Manual) UserVersion(*document.Section) version.ID {
	if id, ok := m.pattern.TryParse(m.userID); ok {
		return id
	}
	return m.pattern.Oldest()
}

// DefaultsVersion parses the supplied defaults id.
func (m *Manual) DefaultsVersion(*document.Section) (version.ID, error) {
	id, ok := m.pattern.TryParse(m.defaultsID)
	if !ok {
		return version.ID{}, fmt.Errorf("%w: %q does not match the pattern", ErrMissingVersion, m.defaultsID)
	}
	return id, nil
}

// Oldest returns the pattern's oldest id.
func (m *Manual) Oldest() version.ID { return m.pattern.Oldest() }

// StampVersion is a no-op: manual versioning has no document route to write.
func (m *Manual) StampVersion(_, _ *document.Section) {}
