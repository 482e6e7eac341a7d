package hir

// implicitDefinitionSupertype mirrors helpers.rs's
// implicit_supertype_for_definition_kind: the library supertype a
// definition of this kind gets when it declares none of its own.
func implicitDefinitionSupertype(k SymbolKind) (string, bool) {
	switch k {
	case KindPart, KindClass, KindStruct, KindClassifier:
		return "Parts::Part", true
	case KindItem:
		return "Items::Item", true
	case KindAction, KindBehavior, KindInteraction:
		return "Actions::Action", true
	case KindState:
		return "States::StateAction", true
	case KindConstraint:
		return "Constraints::ConstraintCheck", true
	case KindRequirement:
		return "Requirements::RequirementCheck", true
	case KindCalculation:
		return "Calculations::Calculation", true
	case KindPort:
		return "Ports::Port", true
	case KindConnection:
		return "Connections::BinaryConnection", true
	case KindInterface:
		return "Interfaces::Interface", true
	case KindAllocation:
		return "Allocations::Allocation", true
	case KindUseCase:
		return "UseCases::UseCase", true
	case KindAnalysis, KindVerification:
		return "AnalysisCases::AnalysisCase", true
	case KindAttribute, KindDatatype:
		return "Attributes::AttributeValue", true
	default:
		return "", false
	}
}

// implicitUsageSupertype mirrors helpers.rs's
// implicit_supertype_for_internal_usage_kind.
func implicitUsageSupertype(k SymbolKind) (string, bool) {
	switch k {
	case KindPart:
		return "Parts::Part", true
	case KindItem:
		return "Items::Item", true
	case KindAction:
		return "Actions::Action", true
	case KindState:
		return "States::StateAction", true
	case KindFlow:
		return "Flows::Message", true
	case KindConnection, KindConnector:
		return "Connections::Connection", true
	case KindInterface:
		return "Interfaces::Interface", true
	case KindAllocation:
		return "Allocations::Allocation", true
	case KindRequirement:
		return "Requirements::RequirementCheck", true
	case KindConstraint:
		return "Constraints::ConstraintCheck", true
	case KindCalculation:
		return "Calculations::Calculation", true
	case KindPort:
		return "Ports::Port", true
	case KindAttribute:
		return "Attributes::AttributeValue", true
	default:
		return "", false
	}
}

// defKeywordKind maps a Definition's introducing keyword spelling to its
// SymbolKind, covering both the KerML (class/struct/classifier/...) and
// SysML (part/item/action/...) noun vocabularies — a given file only ever
// uses its own dialect's words, so one table serving both is harmless.
func defKeywordKind(kw string) SymbolKind {
	switch kw {
	case "part":
		return KindPart
	case "item":
		return KindItem
	case "action":
		return KindAction
	case "behavior":
		return KindBehavior
	case "interaction":
		return KindInteraction
	case "port":
		return KindPort
	case "calc", "calculation":
		return KindCalculation
	case "function":
		return KindCalculation
	case "constraint":
		return KindConstraint
	case "predicate":
		return KindConstraint
	case "requirement":
		return KindRequirement
	case "concern":
		return KindConcern
	case "allocation":
		return KindAllocation
	case "connection":
		return KindConnection
	case "assoc", "association":
		return KindConnection
	case "interface":
		return KindInterface
	case "flow":
		return KindFlow
	case "view":
		return KindView
	case "viewpoint":
		return KindViewpoint
	case "rendering":
		return KindRendering
	case "enum", "enumeration":
		return KindEnumeration
	case "class":
		return KindClass
	case "struct":
		return KindStruct
	case "classifier":
		return KindClassifier
	case "datatype":
		return KindDatatype
	case "attribute":
		return KindAttribute
	case "metaclass":
		return KindMetaclass
	case "state":
		return KindState
	case "case":
		return KindUseCase
	case "analysis":
		return KindAnalysis
	case "verification":
		return KindVerification
	case "occurrence":
		return KindOccurrence
	default:
		return KindFeature
	}
}

// usageKeywordKind maps a Usage's introducing keyword the same way
// defKeywordKind does for Definition, for the (smaller) set of kinds a
// bare feature usage can carry.
func usageKeywordKind(kw string) SymbolKind {
	switch kw {
	case "part":
		return KindPart
	case "item":
		return KindItem
	case "action":
		return KindAction
	case "port":
		return KindPort
	case "calc", "calculation":
		return KindCalculation
	case "constraint":
		return KindConstraint
	case "requirement":
		return KindRequirement
	case "allocation":
		return KindAllocation
	case "connection":
		return KindConnection
	case "interface":
		return KindInterface
	case "flow":
		return KindFlow
	case "state":
		return KindState
	case "attribute":
		return KindAttribute
	case "view":
		return KindView
	case "rendering":
		return KindRendering
	case "viewpoint":
		return KindViewpoint
	case "enum":
		return KindEnumeration
	case "metadata":
		return KindMetadata
	case "":
		return KindFeature
	default:
		return KindFeature
	}
}
