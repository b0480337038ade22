package updater

import (
	"fmt"

	"github.com/yamlkeep/yamlkeep/route"
	"github.com/yamlkeep/yamlkeep/versioning"
)

// ValueMapper transforms the value stored at a route during replay of a
// version step.
type ValueMapper func(value any) any

// Relocation records a key move from one route to another, effective as of
// the version id it is registered under.
type Relocation struct {
	From route.Route
	To   route.Route
}

// Mapper records a value transformation at a route, effective as of the
// version id it is registered under.
type Mapper struct {
	Route route.Route
	Map   ValueMapper
}

type stringRelocation struct {
	from string
	to   string
}

// Settings is the immutable updater configuration. Build one with a Builder;
// it is read-only afterwards and safe to reuse across updates.
type Settings struct {
	autoSave          bool
	enableDowngrading bool
	keepAll           bool
	mergeRules        map[MergeRule]bool
	ignored           map[string][]route.Route
	stringIgnored     map[string][]string
	relocations       map[string][]Relocation
	stringRelocations map[string][]stringRelocation
	mappers           map[string][]Mapper
	versioning        versioning.Versioning
}

// Default returns settings with all defaults: auto-save on, downgrading
// enabled, keep-all off, default merge rules, no versioning.
func Default() *Settings {
	return NewBuilder().Build()
}

// AutoSave reports whether the document should be saved after updating.
func (s *Settings) AutoSave() bool { return s.autoSave }

// EnableDowngrading reports whether a user version newer than the defaults
// version is tolerated.
func (s *Settings) EnableDowngrading() bool { return s.enableDowngrading }

// KeepAll reports whether user content absent from the defaults is retained.
func (s *Settings) KeepAll() bool { return s.keepAll }

// Versioning returns the configured versioning strategy, or nil.
func (s *Settings) Versioning() versioning.Versioning { return s.versioning }

// PreserveUser reports whether the user's content wins for the given
// conflict rule.
func (s *Settings) PreserveUser(rule MergeRule) bool { return s.mergeRules[rule] }

// IgnoredRoutes returns the routes ignored at the given version id, merging
// the string-registered variants split by separator.
func (s *Settings) IgnoredRoutes(versionID string, separator rune) ([]route.Route, error) {
	routes := append([]route.Route(nil), s.ignored[versionID]...)
	for _, str := range s.stringIgnored[versionID] {
		rt, err := route.Parse(str, separator)
		if err != nil {
			return nil, fmt.Errorf("ignored route for version %q: %w", versionID, err)
		}
		routes = append(routes, rt)
	}
	return routes, nil
}

// RelocationsAt returns the relocations registered at the given version id,
// merging the string-registered variants split by separator. Route-based
// registrations win over string duplicates of the same source.
func (s *Settings) RelocationsAt(versionID string, separator rune) ([]Relocation, error) {
	relocations := append([]Relocation(nil), s.relocations[versionID]...)
	for _, sr := range s.stringRelocations[versionID] {
		from, err := route.Parse(sr.from, separator)
		if err != nil {
			return nil, fmt.Errorf("relocation for version %q: %w", versionID, err)
		}
		to, err := route.Parse(sr.to, separator)
		if err != nil {
			return nil, fmt.Errorf("relocation for version %q: %w", versionID, err)
		}
		duplicate := false
		for _, existing := range relocations {
			if existing.From.Equals(from) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			relocations = append(relocations, Relocation{From: from, To: to})
		}
	}
	return relocations, nil
}

// MappersAt returns the value mappers registered at the given version id.
func (s *Settings) MappersAt(versionID string) []Mapper {
	return append([]Mapper(nil), s.mappers[versionID]...)
}

// Builder constructs immutable Settings.
type Builder struct {
	settings Settings
}

// NewBuilder creates a builder preloaded with the default settings.
func NewBuilder() *Builder {
	return &Builder{settings: Settings{
		autoSave:          true,
		enableDowngrading: true,
		mergeRules:        defaultMergeRules(),
		ignored:           make(map[string][]route.Route),
		stringIgnored:     make(map[string][]string),
		relocations:       make(map[string][]Relocation),
		stringRelocations: make(map[string][]stringRelocation),
		mappers:           make(map[string][]Mapper),
	}}
}

// SetAutoSave sets whether the document is saved after updating.
func (b *Builder) SetAutoSave(autoSave bool) *Builder {
	b.settings.autoSave = autoSave
	return b
}

// SetEnableDowngrading sets whether downgrades are tolerated.
func (b *Builder) SetEnableDowngrading(enable bool) *Builder {
	b.settings.enableDowngrading = enable
	return b
}

// SetKeepAll sets whether user content absent from the defaults is retained.
func (b *Builder) SetKeepAll(keepAll bool) *Builder {
	b.settings.keepAll = keepAll
	return b
}

// SetMergeRule sets whether the user's content is preserved for one rule.
func (b *Builder) SetMergeRule(rule MergeRule, preserveUser bool) *Builder {
	b.settings.mergeRules[rule] = preserveUser
	return b
}

// SetVersioning sets the versioning strategy. Nil disables versioned
// operations entirely.
func (b *Builder) SetVersioning(v versioning.Versioning) *Builder {
	b.settings.versioning = v
	return b
}

// AddIgnoredRoutes registers routes to leave untouched during merge for
// updates passing through the given version id.
func (b *Builder) AddIgnoredRoutes(versionID string, routes ...route.Route) *Builder {
	b.settings.ignored[versionID] = append(b.settings.ignored[versionID], routes...)
	return b
}

// AddIgnoredStringRoutes registers ignored routes as separator-delimited
// strings, split when queried.
func (b *Builder) AddIgnoredStringRoutes(versionID string, routes ...string) *Builder {
	b.settings.stringIgnored[versionID] = append(b.settings.stringIgnored[versionID], routes...)
	return b
}

// AddRelocation registers a key move effective as of the given version id.
func (b *Builder) AddRelocation(versionID string, from, to route.Route) *Builder {
	b.settings.relocations[versionID] = append(b.settings.relocations[versionID], Relocation{From: from, To: to})
	return b
}

// AddStringRelocation registers a key move with separator-delimited routes,
// split when queried.
func (b *Builder) AddStringRelocation(versionID, from, to string) *Builder {
	b.settings.stringRelocations[versionID] = append(b.settings.stringRelocations[versionID], stringRelocation{from: from, to: to})
	return b
}

// AddMapper registers a value transformation effective as of the given
// version id.
func (b *Builder) AddMapper(versionID string, rt route.Route, mapper ValueMapper) *Builder {
	b.settings.mappers[versionID] = append(b.settings.mappers[versionID], Mapper{Route: rt, Map: mapper})
	return b
}

// Build returns the immutable settings. The builder must not be reused to
// produce further settings after mutating shared slices; build once per
// configuration.
func (b *Builder) Build() *Settings {
	s := b.settings
	s.mergeRules = make(map[MergeRule]bool, len(b.settings.mergeRules))
	for rule, preserve := range b.settings.mergeRules {
		s.mergeRules[rule] = preserve
	}
	s.ignored = copyMap(b.settings.ignored)
	s.stringIgnored = copyMap(b.settings.stringIgnored)
	s.relocations = copyMap(b.settings.relocations)
	s.stringRelocations = copyMap(b.settings.stringRelocations)
	s.mappers = copyMap(b.settings.mappers)
	return &s
}

func copyMap[V any](src map[string][]V) map[string][]V {
	dst := make(map[string][]V, len(src))
	for k, v := range src {
		dst[k] = append([]V(nil), v...)
	}
	return dst
}
