package updater

// MergeRule names the three type-conflict shapes that can appear at a route
// during merge. Each rule maps to a boolean: true preserves the user's
// content, false takes the defaults' content.
type MergeRule int

const (
	// MergeRuleMappings applies when both sides hold a leaf entry.
	MergeRuleMappings MergeRule = iota
	// MergeRuleMappingAtSection applies when the user holds a leaf entry
	// where the defaults hold a section.
	MergeRuleMappingAtSection
	// MergeRuleSectionAtMapping applies when the user holds a section where
	// the defaults hold a leaf entry.
	MergeRuleSectionAtMapping
)

func (r MergeRule) String() string {
	switch r {
	case MergeRuleMappings:
		return "Mappings"
	case MergeRuleMappingAtSection:
		return "MappingAtSection"
	case MergeRuleSectionAtMapping:
		return "SectionAtMapping"
	default:
		return "Unknown"
	}
}

// defaultMergeRules preserves existing user values but lets the defaults win
// whenever the shapes disagree.
func defaultMergeRules() map[MergeRule]bool {
	return map[MergeRule]bool{
		MergeRuleMappings:         true,
		MergeRuleMappingAtSection: false,
		MergeRuleSectionAtMapping: false,
	}
}
