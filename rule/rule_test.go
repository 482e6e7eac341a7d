package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/sysml-core/rule"
	"github.com/termfx/sysml-core/token"
)

func TestParseRule_Package(t *testing.T) {
	res := rule.ParseRule(token.KerML, rule.RulePackage, `package Vehicles { class Engine; }`)
	require.True(t, res.OK(), res.Parsed.Diagnostics)
	assert.True(t, res.Found())
}

func TestParseRule_ConnectorNeedsNoSurroundingBoilerplate(t *testing.T) {
	res := rule.ParseRule(token.SysML, rule.RuleConnector, `connect first ::> a to second ::> b;`)
	require.True(t, res.OK(), res.Parsed.Diagnostics)
	assert.True(t, res.Found())
}

func TestParseRule_Succession(t *testing.T) {
	res := rule.ParseRule(token.SysML, rule.RuleSuccession, `first a then b;`)
	require.True(t, res.OK(), res.Parsed.Diagnostics)
	assert.True(t, res.Found())
}

func TestParseRule_Multiplicity(t *testing.T) {
	res := rule.ParseRule(token.SysML, rule.RuleMultiplicity, `[1..*] ordered`)
	require.True(t, res.OK(), res.Parsed.Diagnostics)
	assert.True(t, res.Found())
}

func TestParseRule_Expression(t *testing.T) {
	res := rule.ParseRule(token.KerML, rule.RuleExpression, `a + b * c`)
	require.True(t, res.OK(), res.Parsed.Diagnostics)
	assert.True(t, res.Found())
}

func TestParseRule_UnknownRulePanics(t *testing.T) {
	assert.Panics(t, func() {
		rule.ParseRule(token.SysML, rule.Rule("not_a_real_rule"), `x`)
	})
}
