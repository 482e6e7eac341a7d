package token

// Dialect selects which keyword table and grammar entry point a Parser uses.
type Dialect uint8

const (
	KerML Dialect = iota
	SysML
)

func (d Dialect) String() string {
	if d == SysML {
		return "sysml"
	}
	return "kerml"
}

// KeywordSpelling maps a keyword Kind back to its canonical source spelling.
// Built once from the per-dialect tables below so String() and error
// messages never drift from the tables that actually drive reclassification.
var KeywordSpelling = map[Kind]string{}

func reg(spelling string, k Kind) Kind {
	KeywordSpelling[k] = spelling
	return k
}

// kermlKeywords and sysmlKeywords are consulted by the parser, never by the
// lexer: the lexer always emits Ident for anything identifier-shaped, and
// the parser reclassifies it into a keyword Kind only at grammatical
// positions where a keyword is legal (so `part` used as a plain feature
// name elsewhere in the source stays an Ident).
var kermlKeywords = buildKerml()
var sysmlKeywords = buildSysml()

func buildKerml() map[string]Kind {
	m := map[string]Kind{}
	add := func(s string, k Kind) { m[s] = reg(s, k) }

	add("package", KwPackage)
	add("library", KwLibrary)
	add("private", KwPrivate)
	add("protected", KwProtected)
	add("public", KwPublic)
	add("import", KwImport)
	add("alias", KwAlias)
	add("as", KwAs)
	add("for", KwFor)
	add("dependency", KwDependency)
	add("from", KwFrom)
	add("to", KwTo)
	add("doc", KwDoc)
	add("comment", KwComment)
	add("about", KwAbout)
	add("locale", KwLocale)
	add("filter", KwFilter)
	add("specializes", KwSpecializes)
	add("subsets", KwSubsets)
	add("redefines", KwRedefines)
	add("references", KwReferences)
	add("typed", KwTypedBy)
	add("conjugates", KwConjugates)
	add("conjugate", KwConjugate)
	add("disjoint", KwDisjoint)
	add("unions", KwUnions)
	add("intersects", KwIntersects)
	add("differences", KwDifferences)
	add("inverse", KwInverseOf)
	add("chains", KwChains)
	add("featured", KwFeatured)
	add("by", KwBy)
	add("class", KwClass)
	add("struct", KwStruct)
	add("datatype", KwDatatype)
	add("behavior", KwBehavior)
	add("function", KwFunction)
	add("classifier", KwClassifier)
	add("interaction", KwInteraction)
	add("predicate", KwPredicate)
	add("metaclass", KwMetaclass)
	add("assoc", KwAssoc)
	add("association", KwAssociation)
	add("abstract", KwAbstract)
	add("variation", KwVariation)
	add("readonly", KwReadonly)
	add("derived", KwDerived)
	add("composite", KwComposite)
	add("portion", KwPortion)
	add("individual", KwIndividual)
	add("const", KwConst)
	add("end", KwEnd)
	add("in", KwIn)
	add("out", KwOut)
	add("inout", KwInout)
	add("return", KwReturn)
	add("feature", KwFeature)
	add("metadata", KwMetadata)
	add("enum", KwEnum)
	add("enumeration", KwEnumeration)
	add("all", KwAll)
	add("and", KwAnd)
	add("or", KwOr)
	add("xor", KwXor)
	add("not", KwNot)
	add("implies", KwImplies)
	add("istype", KwIstype)
	add("hastype", KwHastype)
	add("meta", KwMeta)
	add("true", KwTrue)
	add("false", KwFalse)
	add("null", KwNull)
	add("nonunique", KwNonunique)
	add("ordered", KwOrdered)
	add("unique", KwUnique)
	add("default", KwDefault)
	add("multiplicity", KwMultiplicity)
	add("expr", KwExpr)
	add("inv", KwInv)
	add("bind", KwBind)
	add("connect", KwConnect)
	add("new", KwNew)
	add("language", KwLanguage)
	add("var", KwVar)
	add("snapshot", KwSnapshot)
	add("timeslice", KwTimeslice)
	add("first", KwFirst)
	add("then", KwThen)
	add("if", KwIf)
	add("else", KwElse)
	add("while", KwWhile)
	add("loop", KwLoop)
	add("until", KwUntil)
	add("do", KwDo)
	return m
}

func buildSysml() map[string]Kind {
	// SysML is a strict superset of the KerML relationship/expression
	// keyword vocabulary, plus its own definition/usage keywords.
	m := map[string]Kind{}
	for k, v := range kermlKeywords {
		m[k] = v
	}
	add := func(s string, k Kind) { m[s] = reg(s, k) }

	add("def", KwDef)
	add("part", KwPart)
	add("item", KwItem)
	add("port", KwPort)
	add("action", KwAction)
	add("state", KwState)
	add("calc", KwCalc)
	add("calculation", KwCalculation)
	add("constraint", KwConstraint)
	add("requirement", KwRequirement)
	add("concern", KwConcern)
	add("allocation", KwAllocation)
	add("connection", KwConnection)
	add("interface", KwInterface)
	add("flow", KwFlow)
	add("message", KwMessage)
	add("view", KwView)
	add("viewpoint", KwViewpoint)
	add("rendering", KwRendering)
	add("attribute", KwAttribute)
	add("occurrence", KwOccurrence)
	add("use", KwUseCase) // "use case def"
	add("case", KwUseCase)
	add("analysis", KwAnalysis)
	add("verification", KwVerification)
	add("verify", KwVerify)
	add("satisfy", KwSatisfy)
	add("exhibit", KwExhibit)
	add("include", KwInclude)
	add("assert", KwAssert)
	add("assume", KwAssume)
	add("require", KwRequire)
	add("frame", KwFrame)
	add("subject", KwSubject)
	add("actor", KwActor)
	add("stakeholder", KwStakeholder)
	add("objective", KwObjective)
	add("ref", KwRef)
	add("succession", KwSuccession)
	add("entry", KwEntry)
	add("exit", KwExit)
	add("fork", KwFork)
	add("join", KwJoin)
	add("merge", KwMerge)
	add("decide", KwDecide)
	add("accept", KwAccept)
	add("send", KwSend)
	add("via", KwVia)
	add("at", KwAt)
	add("after", KwAfter)
	add("when", KwWhen)
	add("transition", KwTransition)
	add("assign", KwAssign)
	add("allocate", KwAllocate)
	add("expose", KwExpose)
	add("render", KwRender)
	add("perform", KwAction)
	return m
}

// LookupKeyword returns the keyword Kind for text under the given dialect,
// or (0, false) if text is not a keyword in that dialect.
func LookupKeyword(d Dialect, text string) (Kind, bool) {
	table := kermlKeywords
	if d == SysML {
		table = sysmlKeywords
	}
	k, ok := table[text]
	return k, ok
}
