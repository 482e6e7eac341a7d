// Package grammar implements the namespace-member grammar shared by both
// dialects: package/import/alias/dependency/doc/comment/filter/
// metadata, definitions and usages, successions, connectors, state/action
// members, and view data. KerML and SysML differ only in which keywords
// introduce a definition or a usage — everything else about the member
// grammar is identical, so both dialect packages drive this one grammar
// through a Spec rather than duplicating the member-dispatch logic.
//
// This mirrors the SysMLParser/KerMLParser trait split in the original
// implementation: one shared set of member-parsing entry points, with the
// keyword tables as the only per-dialect data.
package grammar

// Spec carries the one thing that actually differs between KerML and
// SysML: which keywords introduce a Definition or a Usage.
type Spec struct {
	// BareDefs are keywords that always introduce a Definition by
	// themselves (KerML: class, struct, datatype, ...).
	BareDefs []string

	// Nouns are keywords that introduce a Usage when used bare, and a
	// Definition when immediately followed by "def" (SysML: part, action,
	// state, ...).
	Nouns []string

	// FeatureKeyword is KerML's generic usage keyword ("feature"); empty
	// for dialects that have no such generic form.
	FeatureKeyword string
}

// modifierKeywords are usage/definition prefix flags: they never change
// what kind of member is being parsed, only attach as flag tokens on it.
var modifierKeywords = []string{
	"abstract", "variation", "readonly", "derived", "composite", "portion",
	"individual", "const", "var", "end",
}

// visibilityKeywords are the member-level visibility prefix, consumed (at
// most one) ahead of any modifiers. astview's Definition.Flags() and
// Usage.Flags() read this same token back off the tree into IsPublic.
var visibilityKeywords = []string{"private", "protected", "public"}
