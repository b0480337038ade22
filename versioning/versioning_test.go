package versioning

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yamlkeep/yamlkeep/document"
	"github.com/yamlkeep/yamlkeep/route"
	"github.com/yamlkeep/yamlkeep/version"
)

func testPattern(t *testing.T) *version.Pattern {
	t.Helper()
	pattern, err := version.NewPattern(version.Range(1, 100), version.Literal("."), version.Range(0, 10))
	require.NoError(t, err)
	return pattern
}

func parseDoc(t *testing.T, data string) *document.Document {
	t.Helper()
	doc, err := document.Parse([]byte(data))
	require.NoError(t, err)
	return doc
}

func TestManual(t *testing.T) {
	pattern := testPattern(t)
	v := NewManual(pattern, "1.2", "1.4")

	user := v.UserVersion(nil)
	require.Equal(t, "1.2", user.String())

	defaults, err := v.DefaultsVersion(nil)
	require.NoError(t, err)
	require.Equal(t, "1.4", defaults.String())

	require.Equal(t, "1.0", v.Oldest().String())
}

func TestManual_InvalidUserIDMeansOldest(t *testing.T) {
	pattern := testPattern(t)

	tests := []struct {
		name   string
		userID string
	}{
		{"empty", ""},
		{"garbage", "not-a-version"},
		{"out of range", "999.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewManual(pattern, tt.userID, "1.4")
			require.Equal(t, 0, v.UserVersion(nil).Compare(v.Oldest()))
		})
	}
}

func TestManual_InvalidDefaultsID(t *testing.T) {
	v := NewManual(testPattern(t), "1.2", "oops")
	_, err := v.DefaultsVersion(nil)
	require.ErrorIs(t, err, ErrMissingVersion)
}

func TestAutomatic(t *testing.T) {
	pattern := testPattern(t)
	v := NewAutomatic(pattern, route.From("x"))

	user := parseDoc(t, "x: 1.2\ny: true\n")
	defaults := parseDoc(t, "x: 1.4\ny: false\n")

	require.Equal(t, "1.2", v.UserVersion(user.Section).String())

	defaultsVersion, err := v.DefaultsVersion(defaults.Section)
	require.NoError(t, err)
	require.Equal(t, "1.4", defaultsVersion.String())

	require.Equal(t, 0, v.Oldest().Compare(pattern.Oldest()))
}

func TestAutomatic_UserFallsBackToOldest(t *testing.T) {
	pattern := testPattern(t)
	v := NewAutomatic(pattern, route.From("x"))

	tests := []struct {
		name string
		doc  string
	}{
		{"absent", "y: true\n"},
		{"invalid", "x: nope\n"},
		{"section instead of value", "x:\n  nested: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := parseDoc(t, tt.doc)
			require.Equal(t, 0, v.UserVersion(user.Section).Compare(pattern.Oldest()))
		})
	}
}

func TestAutomatic_MissingDefaultsVersion(t *testing.T) {
	v := NewAutomatic(testPattern(t), route.From("x"))

	for name, doc := range map[string]string{
		"absent":  "y: false\n",
		"invalid": "x: nope\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := v.DefaultsVersion(parseDoc(t, doc).Section)
			require.ErrorIs(t, err, ErrMissingVersion)
		})
	}
}

func TestAutomatic_StampVersion(t *testing.T) {
	v := NewAutomatic(testPattern(t), route.From("x"))

	user := parseDoc(t, "x: 1.2\ny: true\n")
	defaults := parseDoc(t, "x: 1.4\ny: false\n")

	v.StampVersion(user.Section, defaults.Section)

	value, ok := user.GetValue(route.From("x"))
	require.True(t, ok)
	require.Equal(t, "1.4", stringValue(value))
}

func TestBasic(t *testing.T) {
	v := Basic("config-version")

	user := parseDoc(t, "config-version: 2\n")
	defaults := parseDoc(t, "config-version: 5\n")

	require.Equal(t, "2", v.UserVersion(user.Section).String())

	defaultsVersion, err := v.DefaultsVersion(defaults.Section)
	require.NoError(t, err)
	require.Equal(t, "5", defaultsVersion.String())

	require.Equal(t, "1", v.Oldest().String())
}
