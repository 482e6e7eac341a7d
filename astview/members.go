package astview

import (
	"github.com/termfx/sysml-core/syntax"
	"github.com/termfx/sysml-core/token"
)

// prefixSkip is the set of direct-token spellings that precede the actual
// definition/usage keyword and carry no kind information of their own
// (visibility and modifier prefixes); Keyword() on Definition/Usage skips
// past them to find the real introducing keyword.
var prefixSkip = map[string]bool{
	"private": true, "protected": true, "public": true,
	"abstract": true, "variation": true, "readonly": true, "derived": true,
	"composite": true, "portion": true, "individual": true, "const": true,
	"var": true, "end": true, "def": true,
}

func introducingKeyword(r *syntax.RedNode) string {
	for _, t := range r.ChildTokens() {
		if !token.IsKeyword(t.Green.Kind) {
			continue
		}
		if prefixSkip[t.Green.Text] {
			continue
		}
		return t.Green.Text
	}
	return ""
}

// Flags is the set of prefix modifiers a definition or usage keyword can
// carry.
type Flags struct {
	IsAbstract  bool
	IsVariation bool
	IsReadonly  bool
	IsDerived   bool
	IsIndividual bool
	IsPortion   bool
	IsEnd       bool
	IsPublic    bool
}

func readFlags(r *syntax.RedNode) Flags {
	f := Flags{IsPublic: true}
	for _, t := range r.ChildTokens() {
		if !token.IsKeyword(t.Green.Kind) {
			continue
		}
		switch t.Green.Text {
		case "abstract":
			f.IsAbstract = true
		case "variation":
			f.IsVariation = true
		case "readonly":
			f.IsReadonly = true
		case "derived":
			f.IsDerived = true
		case "individual":
			f.IsIndividual = true
		case "portion":
			f.IsPortion = true
		case "end":
			f.IsEnd = true
		case "private", "protected":
			f.IsPublic = false
		}
	}
	return f
}

// ---- Package ------------------------------------------------------------

type Package struct{ base }

func CastPackage(r *syntax.RedNode) (Package, bool) {
	if r == nil || (r.Green.Kind != syntax.Package && r.Green.Kind != syntax.LibraryPackage) {
		return Package{}, false
	}
	return Package{base{r}}, true
}

func (p Package) IsLibrary() bool { return p.red.Green.Kind == syntax.LibraryPackage }

func (p Package) ShortName() (ShortName, bool) { return CastShortName(p.red.FirstChild(syntax.ShortName)) }
func (p Package) Name() (Name, bool)           { return CastName(p.red.FirstChild(syntax.Name)) }

// Body returns the NAMESPACE_BODY node, or nil for a semicolon-terminated
// (empty) package.
func (p Package) Body() *syntax.RedNode { return p.red.FirstChild(syntax.NamespaceBody) }

// Members returns the direct children of the package body in source order
// (nil for an empty package).
func (p Package) Members() []*syntax.RedNode {
	if b := p.Body(); b != nil {
		return b.ChildNodes()
	}
	return nil
}

// ---- Definition -----------------------------------------------------------

type Definition struct{ base }

func CastDefinition(r *syntax.RedNode) (Definition, bool) {
	if r == nil || r.Green.Kind != syntax.Definition {
		return Definition{}, false
	}
	return Definition{base{r}}, true
}

// Keyword returns the introducing keyword's spelling ("part", "class",
// "action", …) — the dispatch key for DefinitionKind classification.
func (d Definition) Keyword() string { return introducingKeyword(d.red) }

func (d Definition) Flags() Flags { return readFlags(d.red) }

func (d Definition) ShortName() (ShortName, bool) { return CastShortName(d.red.FirstChild(syntax.ShortName)) }
func (d Definition) Name() (Name, bool)           { return CastName(d.red.FirstChild(syntax.Name)) }

func (d Definition) Specializations() []QualifiedName {
	return relationshipTargets(d.red, syntax.Specialization)
}
func (d Definition) Redefinitions() []QualifiedName { return relationshipTargets(d.red, syntax.Redefinition) }
func (d Definition) References() []QualifiedName    { return relationshipTargets(d.red, syntax.Referencing) }
func (d Definition) Typings() []QualifiedName        { return relationshipTargets(d.red, syntax.Typing) }
func (d Definition) Conjugations() []QualifiedName   { return relationshipTargets(d.red, syntax.Conjugation) }
func (d Definition) Disjoinings() []QualifiedName    { return relationshipTargets(d.red, syntax.Disjoining) }
func (d Definition) FeatureChainings() []QualifiedName {
	return relationshipTargets(d.red, syntax.FeatureChaining)
}
func (d Definition) FeatureInversions() []QualifiedName {
	return relationshipTargets(d.red, syntax.FeatureInversion)
}

func (d Definition) Body() *syntax.RedNode { return d.red.FirstChild(syntax.DefinitionBody) }

func (d Definition) Members() []*syntax.RedNode {
	if b := d.Body(); b != nil {
		return b.ChildNodes()
	}
	return nil
}

// Metadata returns every direct @Annotation member of this definition's body.
func (d Definition) Metadata() []Metadata {
	var out []Metadata
	if b := d.Body(); b != nil {
		for _, c := range b.ChildrenOfKind(syntax.Metadata) {
			out = append(out, Metadata{base{c}})
		}
	}
	return out
}

// ---- Usage ------------------------------------------------------------

type Usage struct{ base }

func CastUsage(r *syntax.RedNode) (Usage, bool) {
	if r == nil || r.Green.Kind != syntax.Usage {
		return Usage{}, false
	}
	return Usage{base{r}}, true
}

func (u Usage) Keyword() string { return introducingKeyword(u.red) }

func (u Usage) Flags() Flags { return readFlags(u.red) }

func (u Usage) Direction() (string, bool) {
	d := u.red.FirstChild(syntax.Direction)
	if d == nil {
		return "", false
	}
	for _, t := range d.ChildTokens() {
		if token.IsKeyword(t.Green.Kind) {
			return t.Green.Text, true
		}
	}
	return "", false
}

func (u Usage) ShortName() (ShortName, bool) { return CastShortName(u.red.FirstChild(syntax.ShortName)) }
func (u Usage) Name() (Name, bool)           { return CastName(u.red.FirstChild(syntax.Name)) }

func (u Usage) Specializations() []QualifiedName { return relationshipTargets(u.red, syntax.Specialization) }
func (u Usage) Subsettings() []QualifiedName      { return relationshipTargets(u.red, syntax.Subsetting) }
func (u Usage) Redefinitions() []QualifiedName    { return relationshipTargets(u.red, syntax.Redefinition) }
func (u Usage) References() []QualifiedName       { return relationshipTargets(u.red, syntax.Referencing) }
func (u Usage) Typings() []QualifiedName          { return relationshipTargets(u.red, syntax.Typing) }
func (u Usage) Conjugations() []QualifiedName     { return relationshipTargets(u.red, syntax.Conjugation) }
func (u Usage) Disjoinings() []QualifiedName      { return relationshipTargets(u.red, syntax.Disjoining) }
func (u Usage) FeatureChainings() []QualifiedName { return relationshipTargets(u.red, syntax.FeatureChaining) }
func (u Usage) FeatureInversions() []QualifiedName {
	return relationshipTargets(u.red, syntax.FeatureInversion)
}

// Multiplicity returns the usage's "[lower..upper]" clause, if present.
func (u Usage) Multiplicity() (Multiplicity, bool) {
	return CastMultiplicity(u.red.FirstChild(syntax.Multiplicity))
}

// Value returns the "= expr" / "default = expr" clause, if present.
func (u Usage) Value() (FeatureValue, bool) {
	return CastFeatureValue(u.red.FirstChild(syntax.FeatureValue))
}

func (u Usage) Body() *syntax.RedNode { return u.red.FirstChild(syntax.UsageBody) }

func (u Usage) Members() []*syntax.RedNode {
	if b := u.Body(); b != nil {
		return b.ChildNodes()
	}
	return nil
}

func (u Usage) Metadata() []Metadata {
	var out []Metadata
	if b := u.Body(); b != nil {
		for _, c := range b.ChildrenOfKind(syntax.Metadata) {
			out = append(out, Metadata{base{c}})
		}
	}
	return out
}

// TransitionUsage returns a nested TRANSITION_USAGE member of this usage's
// body, if any — used to detect a usage that is really a state transition
// in disguise.
func (u Usage) TransitionUsage() (Transition, bool) {
	if b := u.Body(); b != nil {
		return CastTransition(b.FirstChild(syntax.TransitionUsage))
	}
	return Transition{}, false
}

// PerformActionUsage returns a nested PERFORM_ACTION_USAGE member, if any.
func (u Usage) PerformActionUsage() (PerformAction, bool) {
	if b := u.Body(); b != nil {
		return CastPerformAction(b.FirstChild(syntax.PerformActionUsage))
	}
	return PerformAction{}, false
}

// ConnectorPart returns this usage's own connector-part shape, if the
// usage's body holds a bare connect clause as its defining content (rare;
// most connector usages are their own ConnectorPart namespace member, see
// CastConnectorPart in actions.go).
func (u Usage) ConnectorPart() (ConnectorPart, bool) {
	if b := u.Body(); b != nil {
		return CastConnectorPart(b.FirstChild(syntax.ConnectorPart))
	}
	return ConnectorPart{}, false
}

// ---- relationship target flattening ---------------------------------------

func relationshipTargets(r *syntax.RedNode, kind syntax.Kind) []QualifiedName {
	var out []QualifiedName
	for _, child := range r.ChildrenOfKind(kind) {
		if tl := child.FirstChild(syntax.TypingList); tl != nil {
			out = append(out, allQualifiedNames(tl)...)
			continue
		}
		out = append(out, allQualifiedNames(child)...)
	}
	return out
}

// ---- Multiplicity / FeatureValue -------------------------------------------

type Multiplicity struct{ base }

func CastMultiplicity(r *syntax.RedNode) (Multiplicity, bool) {
	if r == nil || r.Green.Kind != syntax.Multiplicity {
		return Multiplicity{}, false
	}
	return Multiplicity{base{r}}, true
}

// Bounds returns the lower and upper literal text ("*" for unbounded); for
// a single "[n]" form, lower == upper.
func (m Multiplicity) Bounds() (lower, upper string) {
	rng := m.red.FirstChild(syntax.MultiplicityRange)
	if rng == nil {
		return "", ""
	}
	var nums []string
	for _, t := range rng.ChildTokens() {
		switch t.Green.Kind {
		case token.IntLiteral, token.Star:
			nums = append(nums, t.Green.Text)
		}
	}
	if len(nums) == 0 {
		return "", ""
	}
	if len(nums) == 1 {
		return nums[0], nums[0]
	}
	return nums[0], nums[1]
}

func (m Multiplicity) hasSuffix(kw string) bool {
	for _, t := range m.red.ChildTokens() {
		if token.IsKeyword(t.Green.Kind) && t.Green.Text == kw {
			return true
		}
	}
	return false
}

func (m Multiplicity) IsOrdered() bool   { return m.hasSuffix("ordered") }
func (m Multiplicity) IsNonunique() bool { return m.hasSuffix("nonunique") }
func (m Multiplicity) IsUnique() bool    { return m.hasSuffix("unique") }

type FeatureValue struct{ base }

func CastFeatureValue(r *syntax.RedNode) (FeatureValue, bool) {
	if r == nil || r.Green.Kind != syntax.FeatureValue {
		return FeatureValue{}, false
	}
	return FeatureValue{base{r}}, true
}

func (fv FeatureValue) IsDefault() bool {
	for _, t := range fv.red.ChildTokens() {
		if token.IsKeyword(t.Green.Kind) && t.Green.Text == "default" {
			return true
		}
	}
	return false
}

// Expression returns the top expression node wrapped by this value's
// VALUE_PART child.
func (fv FeatureValue) Expression() *syntax.RedNode {
	vp := fv.red.FirstChild(syntax.ValuePart)
	if vp == nil {
		return nil
	}
	nodes := vp.ChildNodes()
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// ---- Import / Alias / Dependency / Doc / Comment / Filter / Metadata -----

type Import struct{ base }

func CastImport(r *syntax.RedNode) (Import, bool) {
	if r == nil || r.Green.Kind != syntax.Import {
		return Import{}, false
	}
	return Import{base{r}}, true
}

func (i Import) Target() (QualifiedName, bool) { return firstQualifiedName(i.red) }

func (i Import) Filter() (Filter, bool) { return CastFilter(i.red.FirstChild(syntax.Filter)) }

type Alias struct{ base }

func CastAlias(r *syntax.RedNode) (Alias, bool) {
	if r == nil || r.Green.Kind != syntax.Alias {
		return Alias{}, false
	}
	return Alias{base{r}}, true
}

func (a Alias) ShortName() (ShortName, bool) { return CastShortName(a.red.FirstChild(syntax.ShortName)) }
func (a Alias) Name() (Name, bool)           { return CastName(a.red.FirstChild(syntax.Name)) }
func (a Alias) Target() (QualifiedName, bool) { return firstQualifiedName(a.red) }

type Dependency struct{ base }

func CastDependency(r *syntax.RedNode) (Dependency, bool) {
	if r == nil || r.Green.Kind != syntax.Dependency {
		return Dependency{}, false
	}
	return Dependency{base{r}}, true
}

func (d Dependency) Name() (Name, bool) { return CastName(d.red.FirstChild(syntax.Name)) }

// Sources and Targets split the dependency's two qualified-name lists at
// the "to" keyword token that separates them in source order ("from A, B
// to C, D").
func (d Dependency) Sources() []QualifiedName { return d.splitTargets(false) }
func (d Dependency) Targets() []QualifiedName { return d.splitTargets(true) }

func (d Dependency) splitTargets(afterTo bool) []QualifiedName {
	var out []QualifiedName
	seenTo := false
	for _, c := range d.red.Children() {
		switch v := c.(type) {
		case *syntax.RedToken:
			if token.IsKeyword(v.Green.Kind) && v.Green.Text == "to" {
				seenTo = true
			}
		case *syntax.RedNode:
			if v.Green.Kind == syntax.QualifiedName && seenTo == afterTo {
				out = append(out, QualifiedName{base{v}})
			}
		}
	}
	return out
}

type Doc struct{ base }

func CastDoc(r *syntax.RedNode) (Doc, bool) {
	if r == nil || r.Green.Kind != syntax.Doc {
		return Doc{}, false
	}
	return Doc{base{r}}, true
}

func (d Doc) Text() string {
	if t := d.red.FirstToken(token.StringLiteral); t != nil {
		return t.Green.Text
	}
	return ""
}

type Comment struct{ base }

func CastComment(r *syntax.RedNode) (Comment, bool) {
	if r == nil || r.Green.Kind != syntax.Comment {
		return Comment{}, false
	}
	return Comment{base{r}}, true
}

func (c Comment) About() []QualifiedName { return allQualifiedNames(c.red) }

func (c Comment) Text() string {
	if t := c.red.FirstToken(token.StringLiteral); t != nil {
		return t.Green.Text
	}
	return ""
}

type Filter struct{ base }

func CastFilter(r *syntax.RedNode) (Filter, bool) {
	if r == nil || r.Green.Kind != syntax.Filter {
		return Filter{}, false
	}
	return Filter{base{r}}, true
}

// Targets returns every "@Name" target this filter/element-filter
// annotates, in source order.
func (f Filter) Targets() []QualifiedName { return allQualifiedNames(f.red) }

type Metadata struct{ base }

func CastMetadata(r *syntax.RedNode) (Metadata, bool) {
	if r == nil || r.Green.Kind != syntax.Metadata {
		return Metadata{}, false
	}
	return Metadata{base{r}}, true
}

func (m Metadata) Target() (QualifiedName, bool) { return firstQualifiedName(m.red) }

func (m Metadata) Body() *syntax.RedNode { return m.red.FirstChild(syntax.MetadataBody) }
