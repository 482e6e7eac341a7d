package syntax

import "github.com/termfx/sysml-core/token"

// Context names a grammatical position. It is pushed onto the parser's
// explicit Context stack (not the Go call stack) so error messages and
// recovery-token decisions can describe "where we are" independently of
// how deep the recursive descent happens to be.
type Context uint8

const (
	ContextTopLevel Context = iota
	ContextPackageBody
	ContextDefinitionBody
	ContextUsageBody
	ContextNamespaceBody
	ContextImport
	ContextAlias
	ContextDependency
	ContextMultiplicity
	ContextExpression
	ContextArgumentList
	ContextArrowBody
	ContextConnectorEnds
	ContextTransition
	ContextStateBody
	ContextRequirementBody
	ContextFilter
	ContextMetadataBody
)

// description returns a short, human phrase naming the grammatical position.
func (c Context) description() string {
	switch c {
	case ContextTopLevel:
		return "top level"
	case ContextPackageBody:
		return "package body"
	case ContextDefinitionBody:
		return "definition body"
	case ContextUsageBody:
		return "usage body"
	case ContextNamespaceBody:
		return "namespace body"
	case ContextImport:
		return "import"
	case ContextAlias:
		return "alias"
	case ContextDependency:
		return "dependency"
	case ContextMultiplicity:
		return "multiplicity"
	case ContextExpression:
		return "expression"
	case ContextArgumentList:
		return "argument list"
	case ContextArrowBody:
		return "arrow-invocation body"
	case ContextConnectorEnds:
		return "connector end list"
	case ContextTransition:
		return "transition"
	case ContextStateBody:
		return "state body"
	case ContextRequirementBody:
		return "requirement body"
	case ContextFilter:
		return "filter"
	case ContextMetadataBody:
		return "metadata body"
	default:
		return "unknown context"
	}
}

// expectedDescription describes what the parser expected to see next at
// this grammatical position; used to build default error messages.
func (c Context) expectedDescription() string {
	switch c {
	case ContextTopLevel, ContextPackageBody, ContextNamespaceBody:
		return "a namespace member"
	case ContextDefinitionBody, ContextUsageBody:
		return "a member or '}'"
	case ContextImport:
		return "a qualified name"
	case ContextMultiplicity:
		return "a bound or ']'"
	case ContextExpression:
		return "an expression"
	case ContextArgumentList:
		return "an argument or ')'"
	default:
		return "a valid continuation"
	}
}

// isInDefinition reports whether c is a body context belonging to a
// Definition (as opposed to a Usage or namespace-level body).
func (c Context) isInDefinition() bool { return c == ContextDefinitionBody }

// isInBody reports whether c is any kind of brace-delimited body context.
func (c Context) isInBody() bool {
	switch c {
	case ContextDefinitionBody, ContextUsageBody, ContextNamespaceBody, ContextPackageBody,
		ContextStateBody, ContextRequirementBody, ContextMetadataBody:
		return true
	default:
		return false
	}
}

// recoverySet lists the token kinds that can legally start the next member
// at this grammatical position. error_recover consumes tokens up to (but
// not including) the first token whose kind appears here, or EOF.
func (c Context) recoverySet() map[token.Kind]bool {
	set := func(kinds ...token.Kind) map[token.Kind]bool {
		m := make(map[token.Kind]bool, len(kinds))
		for _, k := range kinds {
			m[k] = true
		}
		return m
	}
	switch c {
	case ContextTopLevel, ContextPackageBody, ContextNamespaceBody, ContextDefinitionBody, ContextUsageBody:
		return set(token.RBrace, token.Semicolon, token.At, token.Hash)
	case ContextArgumentList:
		return set(token.Comma, token.RParen)
	case ContextMultiplicity:
		return set(token.RBracket)
	case ContextConnectorEnds:
		return set(token.Comma, token.RParen, token.Semicolon)
	default:
		return set(token.Semicolon, token.RBrace)
	}
}
