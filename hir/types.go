// Package hir implements the symbol extractor and the pure HIR model
// it produces: given a FileID and a parsed source file, ExtractSymbols
// returns an ExtractionResult — a preorder-stable list of HirSymbol plus
// scope/import filter metadata. Pure data, no interior mutation after
// extraction: downstream resolution runs off parallel
// tables keyed by ElementID or QualifiedName, never by mutating a symbol.
package hir

// RefKind classifies how a type reference must resolve downstream: by
// scope walking (TypedBy, Specializes) or by inheritance walking
// (Redefines, Subsets, References); Expression is context-dependent.
type RefKind string

const (
	RefTypedBy     RefKind = "typed_by"
	RefSpecializes RefKind = "specializes"
	RefRedefines   RefKind = "redefines"
	RefSubsets     RefKind = "subsets"
	RefReferences  RefKind = "references"
	RefExpression  RefKind = "expression"
	RefOther       RefKind = "other"
)

// IsTypeReference reports whether r resolves via scope walking.
func (r RefKind) IsTypeReference() bool { return r == RefTypedBy || r == RefSpecializes }

// IsFeatureReference reports whether r resolves via inheritance walking.
func (r RefKind) IsFeatureReference() bool {
	return r == RefRedefines || r == RefSubsets || r == RefReferences
}

// RelKind is the closed enum of semantic edges a symbol can carry
// to a target. Conjugates and Inverse round out KerML's own
// "conjugates"/"inverse" relationship operators, which need a home
// alongside the rest.
type RelKind string

const (
	RelSpecializes       RelKind = "Specializes"
	RelSubsets           RelKind = "Subsets"
	RelRedefines         RelKind = "Redefines"
	RelTypedBy           RelKind = "TypedBy"
	RelReferences        RelKind = "References"
	RelFeatureChain      RelKind = "FeatureChain"
	RelExpression        RelKind = "Expression"
	RelAbout             RelKind = "About"
	RelPerforms          RelKind = "Performs"
	RelSatisfies         RelKind = "Satisfies"
	RelExhibits          RelKind = "Exhibits"
	RelIncludes          RelKind = "Includes"
	RelAsserts           RelKind = "Asserts"
	RelVerifies          RelKind = "Verifies"
	RelAssumes           RelKind = "Assumes"
	RelRequires          RelKind = "Requires"
	RelMeta              RelKind = "Meta"
	RelCrosses           RelKind = "Crosses"
	RelAcceptedMessage   RelKind = "AcceptedMessage"
	RelAcceptVia         RelKind = "AcceptVia"
	RelSentMessage       RelKind = "SentMessage"
	RelSendVia           RelKind = "SendVia"
	RelSendTo            RelKind = "SendTo"
	RelMessageSource     RelKind = "MessageSource"
	RelMessageTarget     RelKind = "MessageTarget"
	RelAllocateSource    RelKind = "AllocateSource"
	RelAllocateTo        RelKind = "AllocateTo"
	RelBindSource        RelKind = "BindSource"
	RelBindTarget        RelKind = "BindTarget"
	RelConnectSource     RelKind = "ConnectSource"
	RelConnectTarget     RelKind = "ConnectTarget"
	RelFlowItem          RelKind = "FlowItem"
	RelFlowSource        RelKind = "FlowSource"
	RelFlowTarget        RelKind = "FlowTarget"
	RelInterfaceEnd      RelKind = "InterfaceEnd"
	RelExposes           RelKind = "Exposes"
	RelRenders           RelKind = "Renders"
	RelFilters           RelKind = "Filters"
	RelDependencySource  RelKind = "DependencySource"
	RelDependencyTarget  RelKind = "DependencyTarget"
	RelTransitionSource  RelKind = "TransitionSource"
	RelTransitionTarget  RelKind = "TransitionTarget"
	RelSuccessionSource  RelKind = "SuccessionSource"
	RelSuccessionTarget  RelKind = "SuccessionTarget"
	RelConjugates        RelKind = "Conjugates"
	RelInverse           RelKind = "Inverse"
)

// refKindOf maps a RelKind to the RefKind a type reference built from it
// should carry, mirroring helpers.rs's RefKind::from_rel_kind (by way of
// symbols.rs's from_normalized).
func refKindOf(k RelKind) RefKind {
	switch k {
	case RelTypedBy:
		return RefTypedBy
	case RelSpecializes:
		return RefSpecializes
	case RelRedefines:
		return RefRedefines
	case RelSubsets:
		return RefSubsets
	case RelReferences:
		return RefReferences
	case RelExpression:
		return RefExpression
	default:
		return RefOther
	}
}

// anonPrefix maps a RelKind to the short sigil used for synthetic
// anonymous-scope names, transcribed from helpers.rs's
// rel_kind_to_anon_prefix.
func anonPrefix(k RelKind) string {
	switch k {
	case RelSubsets:
		return ":>"
	case RelTypedBy:
		return ":"
	case RelSpecializes:
		return ":>:"
	case RelRedefines:
		return ":>>"
	case RelAbout:
		return "about:"
	case RelPerforms:
		return "perform:"
	case RelSatisfies:
		return "satisfy:"
	case RelExhibits:
		return "exhibit:"
	case RelIncludes:
		return "include:"
	case RelAsserts:
		return "assert:"
	case RelVerifies:
		return "verify:"
	case RelReferences:
		return "ref:"
	case RelMeta:
		return "meta:"
	case RelCrosses:
		return "crosses:"
	case RelExpression:
		return "~"
	case RelFeatureChain:
		return "chain:"
	case RelConjugates:
		return "~:"
	case RelTransitionSource:
		return "from:"
	case RelTransitionTarget, RelSuccessionTarget:
		return "then:"
	case RelSuccessionSource:
		return "first:"
	case RelAcceptedMessage:
		return "accept:"
	case RelAcceptVia, RelSendVia:
		return "via:"
	case RelSentMessage:
		return "send:"
	case RelSendTo, RelMessageTarget, RelAllocateTo, RelConnectTarget, RelFlowTarget, RelDependencyTarget:
		return "to:"
	case RelMessageSource:
		return "from:"
	case RelAssumes:
		return "assume:"
	case RelRequires:
		return "require:"
	case RelAllocateSource:
		return "allocate:"
	case RelBindSource:
		return "bind:"
	case RelBindTarget:
		return "=:"
	case RelConnectSource:
		return "connect:"
	case RelFlowItem:
		return "flow:"
	case RelFlowSource:
		return "from:"
	case RelInterfaceEnd:
		return "end:"
	case RelExposes:
		return "expose:"
	case RelRenders:
		return "render:"
	case RelFilters:
		return "filter:"
	case RelDependencySource:
		return "dep:"
	default:
		return "~"
	}
}

// ChainPart is one segment of a feature-chain relationship target, with
// its own resolvable span.
type ChainPart struct {
	Name  string
	Range Span
}

// Span is a half-open source range expressed as 1-based (line, col) pairs
// at both ends, used throughout for name/type-ref spans.
type Span struct {
	StartLine, StartCol int
	EndLine, EndCol     int
}

// Relationship is an extracted, typed edge from a symbol to a target
// either a simple name or a feature chain, each segment
// carrying its own range.
type Relationship struct {
	Kind  RelKind
	Target string // flattened: "::"-joined for a qualified name, "."-joined for an expression feature chain
	Chain []ChainPart
	Range Span
}

// TypeRef is the IDE-facing form of a reference: a target name, an
// optional resolved target (filled in by a later layer, always nil here),
// and a resolution-kind classification.
type TypeRef struct {
	Target         string
	ResolvedTarget *string
	Kind           RefKind
	Range          Span
}

// TypeRefChain is the chained form of TypeRef: one TypeRef per segment.
type TypeRefChain struct {
	Parts []TypeRef
}

// TypeRefEntry is a simple-xor-chain tagged union: exactly one of Simple
// or Chain is non-nil.
type TypeRefEntry struct {
	Simple *TypeRef
	Chain  *TypeRefChain
}

// Value is a parsed value expression: enough structure for
// display and round-tripping, not full semantic evaluation.
type Value struct {
	Kind     string // literal|name|chain|invocation|binary|unary|ternary|range|sequence|raw
	Text     string // literal text, or raw fallback source slice
	Operator string
	Chain    []string
	Operands []*Value
}

// Multiplicity is a usage's "[lower..upper]" clause.
type Multiplicity struct {
	Lower, Upper         string
	Ordered, Nonunique, Unique bool
}

// ViewData holds the view/viewpoint/rendering-specific data a HirSymbol of
// one of those kinds carries.
type ViewData struct {
	Renders []string
	Exposes []string
	Filters []string
}

// SymbolKind is the closed set of kinds a HirSymbol can have — package,
// alias, import, comment, dependency, every definition/usage keyword, and
// the synthetic child-symbol kinds (End, Accept) that connection and
// accept-action extraction produce.
type SymbolKind string

const (
	KindPackage        SymbolKind = "Package"
	KindLibraryPackage SymbolKind = "LibraryPackage"
	KindAlias          SymbolKind = "Alias"
	KindImport         SymbolKind = "Import"
	KindComment        SymbolKind = "Comment"
	KindDoc            SymbolKind = "Doc"
	KindDependency     SymbolKind = "Dependency"
	KindFilter         SymbolKind = "Filter"
	KindMetadata       SymbolKind = "Metadata"

	KindPart          SymbolKind = "Part"
	KindItem          SymbolKind = "Item"
	KindAction        SymbolKind = "Action"
	KindBehavior      SymbolKind = "Behavior"
	KindInteraction   SymbolKind = "Interaction"
	KindPort          SymbolKind = "Port"
	KindAttribute     SymbolKind = "Attribute"
	KindConnection    SymbolKind = "Connection"
	KindInterface     SymbolKind = "Interface"
	KindAllocation    SymbolKind = "Allocation"
	KindRequirement   SymbolKind = "Requirement"
	KindConstraint    SymbolKind = "Constraint"
	KindState         SymbolKind = "State"
	KindCalculation   SymbolKind = "Calculation"
	KindView          SymbolKind = "View"
	KindViewpoint     SymbolKind = "Viewpoint"
	KindRendering     SymbolKind = "Rendering"
	KindEnumeration   SymbolKind = "Enumeration"
	KindClass         SymbolKind = "Class"
	KindStruct        SymbolKind = "Struct"
	KindDatatype      SymbolKind = "Datatype"
	KindClassifier    SymbolKind = "Classifier"
	KindMetaclass     SymbolKind = "Metaclass"
	KindUseCase       SymbolKind = "UseCase"
	KindAnalysis      SymbolKind = "Analysis"
	KindVerification  SymbolKind = "Verification"
	KindOccurrence    SymbolKind = "Occurrence"
	KindConcern       SymbolKind = "Concern"
	KindFlow          SymbolKind = "Flow"
	KindFeature       SymbolKind = "Feature" // KerML generic usage

	KindTransition SymbolKind = "Transition"
	KindAccept     SymbolKind = "Accept"
	KindSend       SymbolKind = "Send"
	KindPerform    SymbolKind = "Perform"
	KindFork       SymbolKind = "Fork"
	KindJoin       SymbolKind = "Join"
	KindMerge      SymbolKind = "Merge"
	KindDecide     SymbolKind = "Decide"
	KindEntry      SymbolKind = "Entry"
	KindDo         SymbolKind = "Do"
	KindExit       SymbolKind = "Exit"
	KindSuccession SymbolKind = "Succession"
	KindBind       SymbolKind = "Bind"
	KindConnector  SymbolKind = "Connector"
	KindEnd        SymbolKind = "End"
	KindIfAction   SymbolKind = "IfAction"
	KindWhileLoop  SymbolKind = "WhileLoop"
	KindForLoop    SymbolKind = "ForLoop"
)

// HirSymbol is one named (or deliberately anonymous) HIR entity extracted
// from a single file.
type HirSymbol struct {
	Name          string
	ShortName     string
	QualifiedName string
	ElementID     string
	File          string

	Kind SymbolKind

	NameRange      Span
	ShortNameRange *Span

	Doc string

	Supertypes          []string
	Relationships       []Relationship
	TypeRefs            []TypeRefEntry
	MetadataAnnotations []string

	IsAbstract, IsVariation, IsReadonly, IsDerived bool
	IsParallel, IsIndividual, IsEnd, IsDefault     bool
	IsOrdered, IsNonunique, IsPortion, IsPublic    bool

	Direction    string
	Multiplicity *Multiplicity
	Value        *Value
	ViewData     *ViewData
}

// ScopeFilter records a `filter @Name` member's effect on its enclosing
// scope.
type ScopeFilter struct {
	ScopeQualifiedName string
	Names              []string
}

// ImportFilter records an import's trailing `[@Name, ...]` bracket.
type ImportFilter struct {
	ImportQualifiedName string
	Names               []string
}

// ExtractionResult is the query entry point's return value.
type ExtractionResult struct {
	Symbols       []HirSymbol
	ScopeFilters  []ScopeFilter
	ImportFilters []ImportFilter
}
