// Package sysml implements the SysML v2 dialect grammar: the
// definition/usage noun vocabulary (part, action, state, requirement,
// view, ...) layered over the shared KerML-rooted member grammar. Like
// dialect/kerml, this package is a thin keyword table over
// dialect/grammar; every noun here introduces a Usage when used bare and
// a Definition when immediately followed by "def", matching the
// SysML textual notation.
package sysml

import (
	"github.com/termfx/sysml-core/dialect/grammar"
	"github.com/termfx/sysml-core/syntax"
	"github.com/termfx/sysml-core/token"
)

var spec = grammar.Spec{
	Nouns: []string{
		"part", "item", "port", "action", "state", "calc", "calculation",
		"constraint", "requirement", "concern", "allocation", "connection",
		"interface", "flow", "message", "view", "viewpoint", "rendering",
		"attribute", "occurrence", "case", "analysis", "verification",
		"verify", "satisfy", "exhibit", "include", "assert", "assume",
		"require", "frame", "subject", "actor", "stakeholder", "objective",
		"ref", "metadata", "enum", "enumeration",
	},
}

// Parse lexes and parses source as SysML v2, returning the lossless green
// tree plus every diagnostic collected along the way.
func Parse(source string) *syntax.ParsedFile {
	p := syntax.NewParser(source, token.SysML)
	green := grammar.ParseSourceFile(p, spec)
	return &syntax.ParsedFile{
		Green:       green,
		Diagnostics: p.Diagnostics(),
		Dialect:     token.SysML,
		Source:      source,
	}
}
