// Package syntax implements the lossless green/red concrete syntax tree,
// the event-driven parser core with error recovery, and the error code
// catalogue and parse-context stack.
package syntax

// Kind identifies the grammatical category of a green node. It is a closed
// enum: every node the parser ever starts carries one of these kinds.
type Kind uint16

const (
	// NodeNone is never assigned to a real node; it is the zero value.
	NodeNone Kind = iota

	SourceFile
	Error // a span the parser could not associate with any real construct

	// Names.
	Name
	ShortName
	QualifiedName

	// Namespace members.
	Package
	LibraryPackage
	Comment
	Doc
	Import
	Alias
	Dependency
	Filter
	Metadata
	MetadataBody

	// Definitions and usages (dialect-agnostic containers; the specific
	// DefinitionKind/UsageKind is read off the first keyword token by the
	// typed AST view).
	Definition
	DefinitionBody
	Usage
	UsageBody
	NamespaceBody

	// Relationships.
	Specialization
	Subsetting
	Redefinition
	Referencing
	Typing
	TypingList
	Conjugation
	Disjoining
	FeatureInversion
	FeatureChaining

	// Multiplicity and direction.
	Multiplicity
	MultiplicityRange
	Direction

	// Feature value / connector-ish bodies.
	FeatureValue
	ValuePart

	// Connectors, bindings, successions, flows.
	ConnectorPart
	ConnectorEnd
	BindingConnector
	Succession
	SuccessionItem
	FlowConnectionUsage
	InterfaceEnd

	// Actions / states / control nodes.
	AcceptActionUsage
	SendActionUsage
	TransitionUsage
	TransitionTrigger
	TransitionGuard
	TransitionEffect
	PerformActionUsage
	StateSubactionMember
	ControlNode
	ForLoopActionUsage
	WhileLoopActionUsage
	IfActionUsage
	TerminateActionUsage
	AssignmentActionUsage
	AllocationUsage

	// View data.
	ViewRenderingMember
	ViewExposeMember
	ViewFilterMember

	// Expressions.
	ExprConditional
	ExprNullCoalesce
	ExprImplies
	ExprOr
	ExprXor
	ExprAnd
	ExprEquality
	ExprClassification
	ExprRelational
	ExprRange
	ExprAdditive
	ExprMultiplicative
	ExprExponent
	ExprUnary
	ExprExtent
	ExprPrimary
	ExprLiteral
	ExprName
	ExprInvocation
	ExprArgumentList
	ExprArgument
	ExprFeatureChain
	ExprFeatureChainSegment
	ExprArrowInvocation
	ExprArrowBody
	ExprIndex
	ExprBracketIndex
	ExprBlock
	ExprParenOrSeq
	ExprInstantiation
	ExprMetadataAccess
	ExprSelect
	ExprCollect

	kindSentinel
)

var kindNames = [...]string{
	NodeNone: "NONE", SourceFile: "SOURCE_FILE", Error: "ERROR",
	Name: "NAME", ShortName: "SHORT_NAME", QualifiedName: "QUALIFIED_NAME",
	Package: "PACKAGE", LibraryPackage: "LIBRARY_PACKAGE", Comment: "COMMENT", Doc: "DOC",
	Import: "IMPORT", Alias: "ALIAS", Dependency: "DEPENDENCY", Filter: "FILTER",
	Metadata: "METADATA", MetadataBody: "METADATA_BODY",
	Definition: "DEFINITION", DefinitionBody: "DEFINITION_BODY",
	Usage: "USAGE", UsageBody: "USAGE_BODY", NamespaceBody: "NAMESPACE_BODY",
	Specialization: "SPECIALIZATION", Subsetting: "SUBSETTING", Redefinition: "REDEFINITION",
	Referencing: "REFERENCING", Typing: "TYPING", TypingList: "TYPING_LIST",
	Conjugation: "CONJUGATION", Disjoining: "DISJOINING",
	FeatureInversion: "FEATURE_INVERSION", FeatureChaining: "FEATURE_CHAINING",
	Multiplicity: "MULTIPLICITY", MultiplicityRange: "MULTIPLICITY_RANGE", Direction: "DIRECTION",
	FeatureValue: "FEATURE_VALUE", ValuePart: "VALUE_PART",
	ConnectorPart: "CONNECTOR_PART", ConnectorEnd: "CONNECTOR_END",
	BindingConnector: "BINDING_CONNECTOR", Succession: "SUCCESSION", SuccessionItem: "SUCCESSION_ITEM",
	FlowConnectionUsage: "FLOW_CONNECTION_USAGE", InterfaceEnd: "INTERFACE_END",
	AcceptActionUsage: "ACCEPT_ACTION_USAGE", SendActionUsage: "SEND_ACTION_USAGE",
	TransitionUsage: "TRANSITION_USAGE", TransitionTrigger: "TRANSITION_TRIGGER",
	TransitionGuard: "TRANSITION_GUARD", TransitionEffect: "TRANSITION_EFFECT",
	PerformActionUsage: "PERFORM_ACTION_USAGE", StateSubactionMember: "STATE_SUBACTION_MEMBER",
	ControlNode: "CONTROL_NODE", ForLoopActionUsage: "FOR_LOOP_ACTION_USAGE",
	WhileLoopActionUsage: "WHILE_LOOP_ACTION_USAGE", IfActionUsage: "IF_ACTION_USAGE",
	TerminateActionUsage: "TERMINATE_ACTION_USAGE", AssignmentActionUsage: "ASSIGNMENT_ACTION_USAGE",
	AllocationUsage: "ALLOCATION_USAGE",
	ViewRenderingMember: "VIEW_RENDERING_MEMBER", ViewExposeMember: "VIEW_EXPOSE_MEMBER",
	ViewFilterMember: "VIEW_FILTER_MEMBER",
	ExprConditional: "EXPR_CONDITIONAL", ExprNullCoalesce: "EXPR_NULL_COALESCE",
	ExprImplies: "EXPR_IMPLIES", ExprOr: "EXPR_OR", ExprXor: "EXPR_XOR", ExprAnd: "EXPR_AND",
	ExprEquality: "EXPR_EQUALITY", ExprClassification: "EXPR_CLASSIFICATION",
	ExprRelational: "EXPR_RELATIONAL", ExprRange: "EXPR_RANGE", ExprAdditive: "EXPR_ADDITIVE",
	ExprMultiplicative: "EXPR_MULTIPLICATIVE", ExprExponent: "EXPR_EXPONENT",
	ExprUnary: "EXPR_UNARY", ExprExtent: "EXPR_EXTENT", ExprPrimary: "EXPR_PRIMARY",
	ExprLiteral: "EXPR_LITERAL", ExprName: "EXPR_NAME", ExprInvocation: "EXPR_INVOCATION",
	ExprArgumentList: "EXPR_ARGUMENT_LIST", ExprArgument: "EXPR_ARGUMENT",
	ExprFeatureChain: "EXPR_FEATURE_CHAIN", ExprFeatureChainSegment: "EXPR_FEATURE_CHAIN_SEGMENT",
	ExprArrowInvocation: "EXPR_ARROW_INVOCATION", ExprArrowBody: "EXPR_ARROW_BODY",
	ExprIndex: "EXPR_INDEX", ExprBracketIndex: "EXPR_BRACKET_INDEX", ExprBlock: "EXPR_BLOCK",
	ExprParenOrSeq: "EXPR_PAREN_OR_SEQ", ExprInstantiation: "EXPR_INSTANTIATION",
	ExprMetadataAccess: "EXPR_METADATA_ACCESS", ExprSelect: "EXPR_SELECT", ExprCollect: "EXPR_COLLECT",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "UNKNOWN_KIND"
}
