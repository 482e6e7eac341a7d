// Package kerml implements the KerML dialect grammar: the
// relationship/classifier/association vocabulary that SysML itself
// builds on. It is a thin keyword table over the shared member grammar in
// dialect/grammar — KerML contributes no member-dispatch logic of its
// own, only the set of keywords that introduce a Definition (class,
// struct, datatype, behavior, function, classifier, interaction,
// predicate, metaclass, assoc/association) or a Usage (the generic
// "feature" keyword).
package kerml

import (
	"github.com/termfx/sysml-core/dialect/grammar"
	"github.com/termfx/sysml-core/syntax"
	"github.com/termfx/sysml-core/token"
)

var spec = grammar.Spec{
	BareDefs: []string{
		"class", "struct", "datatype", "behavior", "function",
		"classifier", "interaction", "predicate", "metaclass",
		"assoc", "association",
	},
	FeatureKeyword: "feature",
}

// Parse lexes and parses source as KerML, returning the lossless green
// tree plus every diagnostic collected along the way.
func Parse(source string) *syntax.ParsedFile {
	p := syntax.NewParser(source, token.KerML)
	green := grammar.ParseSourceFile(p, spec)
	return &syntax.ParsedFile{
		Green:       green,
		Diagnostics: p.Diagnostics(),
		Dialect:     token.KerML,
		Source:      source,
	}
}
