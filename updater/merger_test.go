package updater

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yamlkeep/yamlkeep/document"
	"github.com/yamlkeep/yamlkeep/route"
	"github.com/yamlkeep/yamlkeep/versioning"
)

func runMerge(t *testing.T, userYAML, defaultsYAML string, settings *Settings, ignored ...string) *document.Document {
	t.Helper()
	user := parseDoc(t, userYAML)
	defaults := parseDoc(t, defaultsYAML)

	ignoredSet := make(map[string]struct{}, len(ignored))
	for _, rt := range ignored {
		ignoredSet[rt] = struct{}{}
	}
	mergeDocuments(user.Section, defaults.Section, settings, ignoredSet, '.')
	return user
}

func TestMerge_CopiesMissingDefaults(t *testing.T) {
	user := runMerge(t, "a: 1\n", "a: 2\n# docs\nb:\n  c: 3\n", Default())

	value, ok := user.GetValue(mustRoute(t, "b.c"))
	require.True(t, ok)
	require.Equal(t, 3, value)

	// Comments travel with the copied block.
	block, ok := user.Get(route.From("b"))
	require.True(t, ok)
	require.Equal(t, []string{"# docs"}, block.Comments().Before)
}

func TestMerge_Mappings(t *testing.T) {
	tests := []struct {
		name         string
		preserveUser bool
		want         int
	}{
		{"preserve user", true, 1},
		{"take defaults", false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := NewBuilder().SetMergeRule(MergeRuleMappings, tt.preserveUser).Build()
			user := runMerge(t, "a: 1\n", "a: 2\n", settings)

			value, _ := user.GetValue(route.From("a"))
			require.Equal(t, tt.want, value)
		})
	}
}

func TestMerge_MappingAtSection(t *testing.T) {
	tests := []struct {
		name         string
		preserveUser bool
		wantSection  bool
	}{
		{"replace with defaults section", false, true},
		{"keep user leaf", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := NewBuilder().SetMergeRule(MergeRuleMappingAtSection, tt.preserveUser).Build()
			user := runMerge(t, "a: 1\n", "a:\n  b: 2\n", settings)

			_, isSection := user.GetSection(route.From("a"))
			require.Equal(t, tt.wantSection, isSection)
		})
	}
}

func TestMerge_SectionAtMapping(t *testing.T) {
	tests := []struct {
		name         string
		preserveUser bool
		wantSection  bool
	}{
		{"replace with defaults leaf", false, false},
		{"keep user section", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := NewBuilder().SetMergeRule(MergeRuleSectionAtMapping, tt.preserveUser).Build()
			user := runMerge(t, "a:\n  b: 2\n", "a: 1\n", settings)

			_, isSection := user.GetSection(route.From("a"))
			require.Equal(t, tt.wantSection, isSection)
		})
	}
}

func TestMerge_KeepAll(t *testing.T) {
	tests := []struct {
		name    string
		keepAll bool
		present bool
	}{
		{"extras removed", false, false},
		{"extras retained", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := NewBuilder().SetKeepAll(tt.keepAll).Build()
			user := runMerge(t, "a: 1\nextra: 9\nnested:\n  kept: 1\n  gone: 2\n", "a: 1\nnested:\n  kept: 0\n", settings)

			require.Equal(t, tt.present, user.Has(route.From("extra")))
			require.Equal(t, tt.present, user.Has(mustRoute(t, "nested.gone")))
			require.True(t, user.Has(mustRoute(t, "nested.kept")))
		})
	}
}

func TestMerge_IgnoredRouteLeftUntouched(t *testing.T) {
	userYAML := "worlds:\n  # custom\n  mine: 1\na: 1\n"
	defaultsYAML := "worlds:\n  example: 0\na: 2\n"

	user := runMerge(t, userYAML, defaultsYAML, NewBuilder().SetMergeRule(MergeRuleMappings, false).Build(), "worlds")

	// The ignored subtree is not descended into: nothing added, removed or
	// overwritten, comments intact.
	worlds, ok := user.GetSection(route.From("worlds"))
	require.True(t, ok)
	require.Equal(t, []string{"mine"}, worlds.Keys())
	mine, _ := worlds.Child("mine")
	require.Equal(t, []string{"# custom"}, mine.Comments().Before)

	// Non-ignored routes still merge.
	value, _ := user.GetValue(route.From("a"))
	require.Equal(t, 2, value)
}

func TestMerge_IgnoredExtraKeySurvivesRemoval(t *testing.T) {
	user := runMerge(t, "mine: 1\n", "a: 0\n", Default(), "mine")

	require.True(t, user.Has(route.From("mine")))
	require.True(t, user.Has(route.From("a")))
}

func TestMerge_UserKeyOrderPreserved(t *testing.T) {
	user := runMerge(t, "b: 1\na: 1\n", "a: 0\nb: 0\nc: 0\n", Default())

	// Existing keys keep their positions; new defaults are appended.
	require.Equal(t, []string{"b", "a", "c"}, user.Keys())
}

func TestUpdate_IgnoredRoutesFromVisitedVersions(t *testing.T) {
	user := parseDoc(t, "v: 1\nworlds:\n  mine: 1\n")
	defaults := parseDoc(t, "v: 2\nworlds:\n  example: 0\n")

	settings := NewBuilder().
		SetVersioning(versioning.Basic("v")).
		AddIgnoredStringRoutes("2", "worlds").
		Build()

	outcome, err := Update(user, defaults, settings, '.')
	require.NoError(t, err)
	require.Equal(t, OutcomeUpdated, outcome)

	worlds, ok := user.GetSection(route.From("worlds"))
	require.True(t, ok)
	require.Equal(t, []string{"mine"}, worlds.Keys())
}
