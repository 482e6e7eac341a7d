// Package rule is a Pest-like harness for parsing a single grammar
// construct in isolation, without hand-writing a full package/definition
// wrapper in every test that wants to exercise one rule. Each Rule names
// a target node kind and the smallest enclosing context that construct
// needs to parse without spurious namespace-level errors; ParseRule
// wraps the fragment in that context, parses it, and locates the
// fragment's own node inside the wrapped tree.
package rule

import (
	"fmt"

	"github.com/termfx/sysml-core/query"
	"github.com/termfx/sysml-core/syntax"
	"github.com/termfx/sysml-core/token"
)

// Rule names one grammar construct that can be parsed standalone.
type Rule string

const (
	RulePackage          Rule = "package"
	RuleImport           Rule = "import"
	RuleDependency       Rule = "dependency"
	RuleAlias            Rule = "alias"
	RuleComment          Rule = "comment"
	RuleDoc              Rule = "doc"
	RuleMetadata         Rule = "metadata"
	RuleFilter           Rule = "filter"
	RuleDefinition       Rule = "definition"
	RuleUsage            Rule = "usage"
	RuleMultiplicity     Rule = "multiplicity"
	RuleFeatureValue     Rule = "feature_value"
	RuleConnector        Rule = "connector"
	RuleBindingConnector Rule = "binding_connector"
	RuleSuccession       Rule = "succession"
	RuleTransition       Rule = "transition"
	RulePerformAction    Rule = "perform_action"
	RuleSendAction       Rule = "send_action"
	RuleAcceptAction     Rule = "accept_action"
	RuleIfAction         Rule = "if_action"
	RuleWhileLoopAction  Rule = "while_loop_action"
	RuleForLoopAction    Rule = "for_loop_action"
	RuleControlNode      Rule = "control_node"
	RuleExpression       Rule = "expression"
	RuleQualifiedName    Rule = "qualified_name"
)

// template pairs the host fragment a rule is wrapped in with the node
// kind ParseRule should look for in the resulting tree. wrap is dialect
// aware because the host keywords themselves differ per dialect (SysML's
// "part def" vs. KerML's "class").
type template struct {
	wrap func(dialect token.Dialect, fragment string) string
	kind syntax.Kind
}

// defKeyword returns a bare-definition keyword that both dialects
// recognize as introducing a namespace member, used purely as harness
// boilerplate — it has no bearing on the fragment under test.
func defKeyword(dialect token.Dialect) string {
	if dialect == token.KerML {
		return "class"
	}
	return "part def"
}

// featureKeyword returns a bare-usage keyword that both dialects
// recognize, for harness boilerplate the same way.
func featureKeyword(dialect token.Dialect) string {
	if dialect == token.KerML {
		return "feature"
	}
	return "attribute"
}

// actionKeyword returns the bare-definition keyword whose body accepts
// action-sublanguage members (send/accept/perform/control nodes/loops) —
// only SysML and KerML both recognize "behavior" this way.
func actionKeyword(dialect token.Dialect) string {
	if dialect == token.KerML {
		return "behavior"
	}
	return "action def"
}

func inPackage(dialect token.Dialect, fragment string) string {
	return fmt.Sprintf("package __rule_test__ { %s }", fragment)
}

func inDefinitionBody(dialect token.Dialect, fragment string) string {
	return fmt.Sprintf("%s __rule_test__ { %s }", defKeyword(dialect), fragment)
}

func inActionBody(dialect token.Dialect, fragment string) string {
	return fmt.Sprintf("%s __rule_test__ { %s }", actionKeyword(dialect), fragment)
}

func inFeatureValue(dialect token.Dialect, fragment string) string {
	return fmt.Sprintf("%s __rule_test__ { %s x = %s; }", defKeyword(dialect), featureKeyword(dialect), fragment)
}

func inMultiplicityContext(dialect token.Dialect, fragment string) string {
	return fmt.Sprintf("%s __rule_test__ { %s x %s; }", defKeyword(dialect), featureKeyword(dialect), fragment)
}

func inFeatureValueSuffix(dialect token.Dialect, fragment string) string {
	return fmt.Sprintf("%s __rule_test__ { %s x %s; }", defKeyword(dialect), featureKeyword(dialect), fragment)
}

func inQualifiedNameContext(dialect token.Dialect, fragment string) string {
	return fmt.Sprintf("import %s;", fragment)
}

var templates = map[Rule]template{
	RulePackage:          {wrap: func(_ token.Dialect, f string) string { return f }, kind: syntax.Package},
	RuleImport:           {wrap: inPackage, kind: syntax.Import},
	RuleDependency:       {wrap: inPackage, kind: syntax.Dependency},
	RuleAlias:            {wrap: inPackage, kind: syntax.Alias},
	RuleComment:          {wrap: inPackage, kind: syntax.Comment},
	RuleDoc:              {wrap: inPackage, kind: syntax.Doc},
	RuleMetadata:         {wrap: inPackage, kind: syntax.Metadata},
	RuleFilter:           {wrap: inPackage, kind: syntax.Filter},
	RuleDefinition:       {wrap: inPackage, kind: syntax.Definition},
	RuleUsage:            {wrap: inDefinitionBody, kind: syntax.Usage},
	RuleMultiplicity:     {wrap: inMultiplicityContext, kind: syntax.Multiplicity},
	RuleFeatureValue:     {wrap: inFeatureValueSuffix, kind: syntax.FeatureValue},
	RuleConnector:        {wrap: inDefinitionBody, kind: syntax.ConnectorPart},
	RuleBindingConnector: {wrap: inDefinitionBody, kind: syntax.BindingConnector},
	RuleSuccession:       {wrap: inDefinitionBody, kind: syntax.Succession},
	RuleTransition:       {wrap: inDefinitionBody, kind: syntax.TransitionUsage},
	RulePerformAction:    {wrap: inActionBody, kind: syntax.PerformActionUsage},
	RuleSendAction:       {wrap: inActionBody, kind: syntax.SendActionUsage},
	RuleAcceptAction:     {wrap: inActionBody, kind: syntax.AcceptActionUsage},
	RuleIfAction:         {wrap: inActionBody, kind: syntax.IfActionUsage},
	RuleWhileLoopAction:  {wrap: inActionBody, kind: syntax.WhileLoopActionUsage},
	RuleForLoopAction:    {wrap: inActionBody, kind: syntax.ForLoopActionUsage},
	RuleControlNode:      {wrap: inActionBody, kind: syntax.ControlNode},
	RuleExpression:       {wrap: inFeatureValue, kind: syntax.ValuePart},
	RuleQualifiedName:    {wrap: inQualifiedNameContext, kind: syntax.QualifiedName},
}

// ParseResult is the outcome of parsing one rule fragment: the wrapped
// file's full parse plus the fragment's own node located inside it.
type ParseResult struct {
	Rule     Rule
	Input    string
	Wrapped  string
	Parsed   *syntax.ParsedFile
	Fragment *syntax.RedNode
}

// OK reports whether parsing produced no diagnostics at all.
func (r ParseResult) OK() bool {
	return len(r.Parsed.Diagnostics) == 0
}

// Found reports whether a node of the rule's target kind was located
// inside the wrapped tree.
func (r ParseResult) Found() bool {
	return r.Fragment != nil
}

// ParseRule wraps input in the smallest host context its rule needs,
// parses it under the named dialect, and returns both the full parse and
// the located fragment node. An unknown rule panics — the rule set is
// closed and callers always pass one of the Rule constants.
func ParseRule(dialect token.Dialect, rule Rule, input string) ParseResult {
	tpl, ok := templates[rule]
	if !ok {
		panic(fmt.Sprintf("rule: unknown rule %q", rule))
	}
	wrapped := tpl.wrap(dialect, input)
	pf := query.Parse(dialect, wrapped)

	var fragment *syntax.RedNode
	for _, n := range pf.Root().Descendants() {
		if n.Green.Kind == tpl.kind {
			fragment = n
			break
		}
	}

	return ParseResult{Rule: rule, Input: input, Wrapped: wrapped, Parsed: pf, Fragment: fragment}
}
