package updater

import (
	"github.com/yamlkeep/yamlkeep/document"
	"github.com/yamlkeep/yamlkeep/route"
)

// merger combines the (already relocated) user tree with the defaults tree.
// The walk is driven by the defaults tree; ignored routes are skipped whole.
type merger struct {
	settings  *Settings
	ignored   map[string]struct{}
	separator rune
}

func mergeDocuments(user, defaults *document.Section, settings *Settings, ignored map[string]struct{}, separator rune) {
	m := &merger{settings: settings, ignored: ignored, separator: separator}
	m.mergeSection(user, defaults, route.From())
}

func (m *merger) isIgnored(rt route.Route) bool {
	_, ok := m.ignored[rt.Join(m.separator)]
	return ok
}

// mergeSection merges one matching section pair, recursing into child
// sections present on both sides. The user section is mutated in place; the
// defaults section is never touched.
func (m *merger) mergeSection(user, defaults *document.Section, rt route.Route) {
	for _, key := range defaults.Keys() {
		childRoute := rt.Add(key)
		if m.isIgnored(childRoute) {
			// The user's subtree, whatever its shape, stays as-is.
			continue
		}

		defaultsChild, _ := defaults.Child(key)
		userChild, present := user.Child(key)
		if !present {
			user.SetChild(key, defaultsChild.Clone())
			continue
		}

		userSection, userIsSection := userChild.(*document.Section)
		defaultsSection, defaultsIsSection := defaultsChild.(*document.Section)

		switch {
		case userIsSection && defaultsIsSection:
			m.mergeSection(userSection, defaultsSection, childRoute)
		case !userIsSection && !defaultsIsSection:
			if !m.settings.PreserveUser(MergeRuleMappings) {
				user.SetChild(key, defaultsChild.Clone())
			}
		case !userIsSection && defaultsIsSection:
			if !m.settings.PreserveUser(MergeRuleMappingAtSection) {
				user.SetChild(key, defaultsChild.Clone())
			}
		default:
			if !m.settings.PreserveUser(MergeRuleSectionAtMapping) {
				user.SetChild(key, defaultsChild.Clone())
			}
		}
	}

	if m.settings.KeepAll() {
		return
	}
	// Drop user keys with no counterpart in the defaults, unless ignored.
	// Keys under an ignored ancestor are never reached: ignored routes are
	// skipped before recursion.
	for _, key := range user.Keys() {
		if _, present := defaults.Child(key); present {
			continue
		}
		if m.isIgnored(rt.Add(key)) {
			continue
		}
		user.RemoveChild(key)
	}
}
